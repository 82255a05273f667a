package query

import (
	"strings"
	"sync"

	"github.com/hoopsight/courtside/internal/resolve"
	"github.com/hoopsight/courtside/internal/store"
)

// MatchupSide is one franchise's half of a head-to-head summary.
type MatchupSide struct {
	TeamName      string       `json:"team_name"`
	TeamID        int          `json:"team_id,omitempty"`
	Abbreviations []string     `json:"abbreviations"`
	Wins          int          `json:"wins"`
	TopPlayers    []ScorerLine `json:"top_players"`
}

// MatchupSummary is the historical head-to-head record between two
// franchises: win tallies plus each side's top performers in those games.
type MatchupSummary struct {
	Team1 MatchupSide `json:"team1"`
	Team2 MatchupSide `json:"team2"`
}

// Matchup resolves two team queries and reduces the games between them.
// Each side resolves to its full abbreviation set, so a relocated
// franchise's whole history counts — the same union treatment TopScorers
// gives a single team.
//
// The two per-side reductions are independent scans and run concurrently;
// the response is composed once both complete. A game present in only one
// side's team rows counts only for that side, so win tallies can undercount
// when team-game data is incomplete.
func (e *Engine) Matchup(team1Query, team2Query string) (*MatchupSummary, error) {
	if strings.TrimSpace(team1Query) == "" || strings.TrimSpace(team2Query) == "" {
		return nil, ErrEmptyQuery
	}

	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	match1, ok := resolve.Teams(snap.Directory, team1Query)
	if !ok {
		return nil, teamNotFound(team1Query)
	}
	match2, ok := resolve.Teams(snap.Directory, team2Query)
	if !ok {
		return nil, teamNotFound(team2Query)
	}

	set1, set2 := match1.Set(), match2.Set()

	var side1, side2 MatchupSide
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		side1 = matchupSide(snap, match1, set1, set2)
	}()
	go func() {
		defer wg.Done()
		side2 = matchupSide(snap, match2, set2, set1)
	}()
	wg.Wait()

	return &MatchupSummary{Team1: side1, Team2: side2}, nil
}

// matchupSide reduces one orientation of the head-to-head: wins from the
// side's own team-game rows, top performers from its player-game rows,
// both restricted to games against the other side.
func matchupSide(snap *store.Snapshot, match resolve.TeamMatch, own, other map[string]struct{}) MatchupSide {
	wins := 0
	for i := range snap.TeamGames {
		row := &snap.TeamGames[i]
		if _, in := own[row.Team]; !in {
			continue
		}
		if _, in := other[row.Opponent()]; !in {
			continue
		}
		if row.Win {
			wins++
		}
	}

	players := rankScorers(snap.PlayerGames, func(r *store.PlayerGameRecord) bool {
		if _, in := own[r.Team]; !in {
			return false
		}
		_, in := other[r.Opponent()]
		return in
	}, MatchupPerformersLimit)

	side := MatchupSide{
		TeamName:      match.Entry.FullName,
		Abbreviations: match.Abbreviations,
		Wins:          wins,
		TopPlayers:    players,
	}
	if match.Entry.TeamID.Valid {
		side.TeamID = int(match.Entry.TeamID.Int32)
	}
	return side
}
