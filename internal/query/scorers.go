package query

import (
	"strings"

	"github.com/hoopsight/courtside/internal/resolve"
	"github.com/hoopsight/courtside/internal/store"
)

// TeamSummary is a franchise's all-time leading scorers. When the franchise
// has carried several abbreviations, the list folds games under all of them.
type TeamSummary struct {
	TeamName      string       `json:"team_name"`
	TeamID        int          `json:"team_id,omitempty"`
	Abbreviations []string     `json:"abbreviations"`
	Players       []ScorerLine `json:"players"`
}

// TopScorers resolves a free-text team query and ranks the franchise's
// players by career scoring average. A limit of zero or less falls back
// to DefaultScorersLimit.
func (e *Engine) TopScorers(teamQuery string, limit int) (*TeamSummary, error) {
	if strings.TrimSpace(teamQuery) == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultScorersLimit
	}

	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	match, ok := resolve.Teams(snap.Directory, teamQuery)
	if !ok {
		return nil, teamNotFound(teamQuery)
	}

	abbrs := match.Set()
	players := rankScorers(snap.PlayerGames, func(r *store.PlayerGameRecord) bool {
		_, in := abbrs[r.Team]
		return in
	}, limit)

	summary := &TeamSummary{
		TeamName:      match.Entry.FullName,
		Abbreviations: match.Abbreviations,
		Players:       players,
	}
	if match.Entry.TeamID.Valid {
		summary.TeamID = int(match.Entry.TeamID.Int32)
	}
	return summary, nil
}
