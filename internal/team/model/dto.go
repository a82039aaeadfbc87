package model

// AdjustPointsRequest adds a signed change to a team's points.
type AdjustPointsRequest struct {
	Change int `json:"change"`
}

// SetPointsRequest replaces a team's points.
type SetPointsRequest struct {
	Points int `json:"points"`
}

// RenameRequest changes a team's display name.
type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// RankedTeam is a roster entry with its dashboard position.
type RankedTeam struct {
	Rank int `json:"rank"`
	Team
}

// RosterResponse lists the roster ordered by points.
type RosterResponse struct {
	Teams []RankedTeam `json:"teams"`
}

// TeamResponse wraps a single team.
type TeamResponse struct {
	Team Team `json:"team"`
}

// SearchResult is one fuzzy match for a team name query.
type SearchResult struct {
	Team     Team `json:"team"`
	Distance int  `json:"distance"`
}

// SearchResponse lists fuzzy matches, best first.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}
