package config

import "fmt"

// ScoringConfig selects the formula used by the final scores view.
type ScoringConfig struct {
	// FinalFormula is league (300/50/0) or classic (3/1/0).
	FinalFormula string
}

// LoadScoringConfigFromEnv loads scoring configuration from environment variables.
func LoadScoringConfigFromEnv() ScoringConfig {
	return ScoringConfig{
		FinalFormula: GetEnv("FINAL_SCORE_FORMULA", "league"),
	}
}

// Validate validates scoring configuration.
func (c ScoringConfig) Validate() error {
	if c.FinalFormula != "league" && c.FinalFormula != "classic" {
		return fmt.Errorf("invalid FINAL_SCORE_FORMULA: %s (must be: league, classic)", c.FinalFormula)
	}
	return nil
}
