// Package query is the aggregation engine: pure scan-and-reduce pipelines
// over an immutable record-store snapshot. Every operation decomposes into
// filter, join, group-reduce and rank steps so each stage can be tested
// without a storage backend.
package query

import (
	"sort"

	"github.com/hoopsight/courtside/internal/store"
)

// DefaultScorersLimit bounds a team's leading-scorer list.
const DefaultScorersLimit = 10

// MatchupPerformersLimit bounds each side's top-performer list.
const MatchupPerformersLimit = 5

// SnapshotSource yields the current record-store snapshot. A nil snapshot
// means the store is unavailable. *store.Catalog satisfies this.
type SnapshotSource interface {
	Snapshot() *store.Snapshot
}

// PlayerGroup is one candidate identity surviving a player-name match:
// all rows sharing one exact playerName, already reduced.
type PlayerGroup struct {
	Name        string
	PlayerID    int
	GamesPlayed int
	Teams       []string
	stats       statAccumulator
}

// Disambiguator picks the intended identity when a substring query matches
// several players. Groups arrive sorted by name; a policy must pick
// deterministically so repeat queries agree.
type Disambiguator func(groups []*PlayerGroup) *PlayerGroup

// MostGamesPlayed treats career length as a proxy for "the player the
// caller meant". Ties fall to the lexicographically first name. This is a
// heuristic, not a uniqueness guarantee.
func MostGamesPlayed(groups []*PlayerGroup) *PlayerGroup {
	var best *PlayerGroup
	for _, g := range groups {
		if best == nil || g.GamesPlayed > best.GamesPlayed {
			best = g
		}
	}
	return best
}

// Engine answers the three read operations over a snapshot source.
type Engine struct {
	source SnapshotSource
	pick   Disambiguator
}

// NewEngine creates an engine with the most-games-played disambiguation
// policy.
func NewEngine(source SnapshotSource) *Engine {
	return NewEngineWithPolicy(source, MostGamesPlayed)
}

// NewEngineWithPolicy creates an engine with a custom disambiguation
// policy, keeping policy swappable without touching the scan logic.
func NewEngineWithPolicy(source SnapshotSource, pick Disambiguator) *Engine {
	return &Engine{source: source, pick: pick}
}

func (e *Engine) snapshot() (*store.Snapshot, error) {
	snap := e.source.Snapshot()
	if snap == nil {
		return nil, ErrStoreUnavailable
	}
	return snap, nil
}

// ScorerLine is one ranked row in a leading-scorers list.
type ScorerLine struct {
	Name        string  `json:"name"`
	PlayerID    int     `json:"player_id"`
	GamesPlayed int     `json:"games_played"`
	AvgPoints   float64 `json:"avg_points"`
}

// rankScorers groups the rows passing keep by player name, reduces each
// group to games played and average points, and returns the top limit
// groups. Ordering is average points descending, then games played
// descending, then name ascending, so equal inputs rank identically.
func rankScorers(rows []store.PlayerGameRecord, keep func(*store.PlayerGameRecord) bool, limit int) []ScorerLine {
	type scorerAcc struct {
		playerID int
		games    int
		points   meanAcc
	}

	groups := make(map[string]*scorerAcc)
	for i := range rows {
		row := &rows[i]
		if !keep(row) {
			continue
		}
		acc, ok := groups[row.PlayerName]
		if !ok {
			acc = &scorerAcc{playerID: row.PlayerID}
			groups[row.PlayerName] = acc
		}
		acc.games++
		acc.points.observe(row.Points)
	}

	lines := make([]ScorerLine, 0, len(groups))
	for name, acc := range groups {
		lines = append(lines, ScorerLine{
			Name:        name,
			PlayerID:    acc.playerID,
			GamesPlayed: acc.games,
			AvgPoints:   acc.points.mean(),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].AvgPoints != lines[j].AvgPoints {
			return lines[i].AvgPoints > lines[j].AvgPoints
		}
		if lines[i].GamesPlayed != lines[j].GamesPlayed {
			return lines[i].GamesPlayed > lines[j].GamesPlayed
		}
		return lines[i].Name < lines[j].Name
	})

	if len(lines) > limit {
		lines = lines[:limit]
	}
	return lines
}
