// Package service provides business logic layer for team module.
package service

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// Service defines the interface for roster operations.
type Service interface {
	// List returns the roster ordered by points.
	List(ctx context.Context) (*teamModel.RosterResponse, error)

	// AdjustPoints adds change to a team's points, never going below zero.
	AdjustPoints(ctx context.Context, teamID string, change int) (*teamModel.TeamResponse, error)

	// SetPoints replaces a team's points, never going below zero.
	SetPoints(ctx context.Context, teamID string, points int) (*teamModel.TeamResponse, error)

	// Rename changes a team's display name.
	Rename(ctx context.Context, teamID, name string) (*teamModel.TeamResponse, error)

	// Search finds teams whose names approximately match query.
	Search(ctx context.Context, query string) (*teamModel.SearchResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(st *store.Store, logger *zap.SugaredLogger) Service {
	return &service{
		store:  st,
		logger: logger,
	}
}

// List returns the roster ordered by points descending; ties keep roster order.
func (s *service) List(_ context.Context) (*teamModel.RosterResponse, error) {
	return &teamModel.RosterResponse{Teams: RankByPoints(s.store.Snapshot().Teams)}, nil
}

// RankByPoints orders teams by primary points and numbers them from 1.
func RankByPoints(teams teamModel.Roster) []teamModel.RankedTeam {
	sorted := slices.Clone(teams)
	slices.SortStableFunc(sorted, func(a, b teamModel.Team) int {
		return b.Points - a.Points
	})

	ranked := make([]teamModel.RankedTeam, 0, len(sorted))
	for i, t := range sorted {
		ranked = append(ranked, teamModel.RankedTeam{Rank: i + 1, Team: t})
	}
	return ranked
}

// AdjustPoints adds change to a team's points.
func (s *service) AdjustPoints(ctx context.Context, teamID string, change int) (*teamModel.TeamResponse, error) {
	team, err := s.updateTeam(ctx, teamID, func(t *teamModel.Team) {
		t.Points = teamModel.ClampPoints(t.Points + change)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team points adjusted", "team_id", teamID, "change", change, "points", team.Points)
	return &teamModel.TeamResponse{Team: team}, nil
}

// SetPoints replaces a team's points.
func (s *service) SetPoints(ctx context.Context, teamID string, points int) (*teamModel.TeamResponse, error) {
	team, err := s.updateTeam(ctx, teamID, func(t *teamModel.Team) {
		t.Points = teamModel.ClampPoints(points)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team points set", "team_id", teamID, "points", team.Points)
	return &teamModel.TeamResponse{Team: team}, nil
}

// Rename changes a team's display name. Competition copies keep their own names.
func (s *service) Rename(ctx context.Context, teamID, name string) (*teamModel.TeamResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	team, err := s.updateTeam(ctx, teamID, func(t *teamModel.Team) {
		t.Name = name
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team renamed", "team_id", teamID, "name", name)
	return &teamModel.TeamResponse{Team: team}, nil
}

// Search ranks teams by edit distance between query and their names, ignoring case and accents.
func (s *service) Search(_ context.Context, query string) (*teamModel.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, teamModel.ErrEmptyQuery
	}

	teams := s.store.Snapshot().Teams
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		names = append(names, t.Name)
	}

	matches := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(matches)

	results := make([]teamModel.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, teamModel.SearchResult{
			Team:     teams[m.OriginalIndex],
			Distance: m.Distance,
		})
	}

	s.logger.Debugw("team search", "query", query, "matches", len(results))
	return &teamModel.SearchResponse{Query: query, Results: results}, nil
}

func (s *service) updateTeam(ctx context.Context, teamID string, mutate func(*teamModel.Team)) (teamModel.Team, error) {
	var updated teamModel.Team
	_, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		i := cur.Teams.Find(teamID)
		if i < 0 {
			return cur, teamModel.ErrTeamNotFound
		}
		mutate(&cur.Teams[i])
		updated = cur.Teams[i]
		return cur, nil
	})
	if err != nil {
		return teamModel.Team{}, err
	}
	return updated, nil
}
