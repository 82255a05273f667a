package query

import (
	"sort"
	"strings"

	"github.com/hoopsight/courtside/internal/resolve"
	"github.com/hoopsight/courtside/internal/store"
)

// PlayerSummary is a player's career reduced to one row: every game they
// appear in, across every team they played for.
type PlayerSummary struct {
	Name        string   `json:"name"`
	PlayerID    int      `json:"player_id"`
	Teams       []string `json:"teams"`
	GamesPlayed int      `json:"games_played"`
	StatAverages
}

// CareerSummary resolves a free-text player query to a single identity and
// reduces that player's rows to career averages.
//
// Matching is substring on the per-game player name. A query matching more
// than one distinct player does not blend them: each exact name forms its
// own group and the disambiguation policy picks one.
func (e *Engine) CareerSummary(playerQuery string) (*PlayerSummary, error) {
	if strings.TrimSpace(playerQuery) == "" {
		return nil, ErrEmptyQuery
	}

	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	groups := collectPlayerGroups(snap, playerQuery)
	if len(groups) == 0 {
		return nil, playerNotFound(playerQuery)
	}

	group := e.pick(groups)

	teams := make([]string, 0, len(group.Teams))
	teams = append(teams, group.Teams...)
	sort.Strings(teams)

	return &PlayerSummary{
		Name:         group.Name,
		PlayerID:     group.PlayerID,
		Teams:        teams,
		GamesPlayed:  group.GamesPlayed,
		StatAverages: group.stats.averages(),
	}, nil
}

// collectPlayerGroups runs the filter, join and group-reduce stages of the
// career pipeline: substring-filter rows on player name, join each row's
// team to the directory for its full name, and fold rows into one group
// per exact player name. Rows whose team has no directory entry are
// dropped entirely, matching the ingestion contract that directory gaps
// are data loss rather than unlabeled output. Groups return sorted by name.
func collectPlayerGroups(snap *store.Snapshot, playerQuery string) []*PlayerGroup {
	needle := resolve.Normalize(playerQuery)
	directory := snap.DirectoryIndex()

	type careerAcc struct {
		group *PlayerGroup
		teams map[string]struct{}
	}
	byName := make(map[string]*careerAcc)

	for i := range snap.PlayerGames {
		row := &snap.PlayerGames[i]
		if !strings.Contains(resolve.Normalize(row.PlayerName), needle) {
			continue
		}

		entry, ok := directory[row.Team]
		if !ok {
			continue
		}

		acc, ok := byName[row.PlayerName]
		if !ok {
			acc = &careerAcc{
				group: &PlayerGroup{Name: row.PlayerName, PlayerID: row.PlayerID},
				teams: make(map[string]struct{}),
			}
			byName[row.PlayerName] = acc
		}

		acc.group.GamesPlayed++
		acc.group.stats.observe(row.StatLine)
		if _, seen := acc.teams[entry.FullName]; !seen {
			acc.teams[entry.FullName] = struct{}{}
			acc.group.Teams = append(acc.group.Teams, entry.FullName)
		}
	}

	groups := make([]*PlayerGroup, 0, len(byName))
	for _, acc := range byName {
		groups = append(groups, acc.group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}
