package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/courtside/internal/store"
)

func TestCareerSummaryExactName(t *testing.T) {
	engine := testEngine()

	summary, err := engine.CareerSummary("LeBron James")
	require.NoError(t, err)

	assert.Equal(t, "LeBron James", summary.Name)
	assert.Equal(t, 23, summary.PlayerID)
	assert.Equal(t, 3, summary.GamesPlayed)
	assert.Equal(t, []string{"Los Angeles Lakers"}, summary.Teams)
	assert.InDelta(t, (30.0+25+40)/3, summary.Points, 1e-9)
}

func TestCareerSummaryNullStatsExcludedFromAverage(t *testing.T) {
	engine := testEngine()

	summary, err := engine.CareerSummary("Doe")
	require.NoError(t, err)

	// Three games with points [10, null, 20]: the null row still counts
	// as a game played but not toward the scoring average.
	assert.Equal(t, 3, summary.GamesPlayed)
	assert.InDelta(t, 15.0, summary.Points, 1e-9)
}

func TestCareerSummaryAllNullStatAveragesToZero(t *testing.T) {
	snap := &store.Snapshot{
		Directory: []store.TeamDirectoryEntry{entry("LAL", "Los Angeles Lakers", 13)},
		PlayerGames: []store.PlayerGameRecord{
			playerRow(1, 9, "Nick Van Exel", "LAL", "LAL", "BOS", true, noPts),
			playerRow(2, 9, "Nick Van Exel", "LAL", "BOS", "LAL", false, noPts),
		},
	}
	engine := NewEngine(store.NewCatalog(snap))

	summary, err := engine.CareerSummary("Van Exel")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.GamesPlayed)
	assert.Zero(t, summary.Points)
}

func TestCareerSummaryCaseAndDiacriticInsensitive(t *testing.T) {
	snap := &store.Snapshot{
		Directory: []store.TeamDirectoryEntry{entry("DEN", "Denver Nuggets", 8)},
		PlayerGames: []store.PlayerGameRecord{
			playerRow(1, 41, "Nikola Jokić", "DEN", "DEN", "LAL", true, pts(27)),
		},
	}
	engine := NewEngine(store.NewCatalog(snap))

	for _, q := range []string{"jokic", "JOKIĆ", "Jokic"} {
		summary, err := engine.CareerSummary(q)
		require.NoError(t, err, "query %q", q)
		assert.Equal(t, "Nikola Jokić", summary.Name)
	}
}

func TestCareerSummaryAmbiguousNamePicksLargestGroup(t *testing.T) {
	engine := testEngine()

	// "James" matches both LeBron James (3 games) and Mike James (2).
	// The answer must be the single larger identity, never a blend.
	summary, err := engine.CareerSummary("James")
	require.NoError(t, err)

	assert.Equal(t, "LeBron James", summary.Name)
	assert.Equal(t, 3, summary.GamesPlayed)
	assert.InDelta(t, (30.0+25+40)/3, summary.Points, 1e-9)
}

func TestCareerSummaryTiesBreakByName(t *testing.T) {
	snap := &store.Snapshot{
		Directory: []store.TeamDirectoryEntry{entry("LAL", "Los Angeles Lakers", 13)},
		PlayerGames: []store.PlayerGameRecord{
			playerRow(1, 1, "B Smith", "LAL", "LAL", "BOS", true, pts(10)),
			playerRow(2, 2, "A Smith", "LAL", "BOS", "LAL", false, pts(10)),
		},
	}
	engine := NewEngine(store.NewCatalog(snap))

	summary, err := engine.CareerSummary("Smith")
	require.NoError(t, err)
	assert.Equal(t, "A Smith", summary.Name)
}

func TestCareerSummaryDropsRowsWithoutDirectoryEntry(t *testing.T) {
	engine := testEngine()

	// Gary Payton's rows all carry a team absent from the directory, so
	// the join drops them and the player does not exist to the engine.
	_, err := engine.CareerSummary("Payton")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestCareerSummaryMultipleTeams(t *testing.T) {
	snap := &store.Snapshot{
		Directory: []store.TeamDirectoryEntry{
			entry("CHA", "Charlotte Hornets", 30),
			entry("CHH", "Charlotte Hornets", 30),
			entry("NOH", "New Orleans Hornets", 3),
		},
		PlayerGames: []store.PlayerGameRecord{
			playerRow(1, 4, "Baron Davis", "CHH", "CHH", "LAL", true, pts(18)),
			playerRow(2, 4, "Baron Davis", "NOH", "NOH", "LAL", false, pts(22)),
		},
	}
	engine := NewEngine(store.NewCatalog(snap))

	summary, err := engine.CareerSummary("Baron Davis")
	require.NoError(t, err)

	// Two abbreviations mapping to distinct franchise names both appear;
	// duplicates would collapse to one.
	assert.Equal(t, []string{"Charlotte Hornets", "New Orleans Hornets"}, summary.Teams)
}

func TestCareerSummaryNotFound(t *testing.T) {
	engine := testEngine()

	_, err := engine.CareerSummary("ZZZ-nonexistent")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestCareerSummaryEmptyQuery(t *testing.T) {
	engine := testEngine()

	for _, q := range []string{"", "   ", "\t"} {
		_, err := engine.CareerSummary(q)
		assert.ErrorIs(t, err, ErrEmptyQuery, "query %q", q)
	}
}

func TestCareerSummaryStoreUnavailable(t *testing.T) {
	engine := NewEngine(store.NewCatalog(nil))

	_, err := engine.CareerSummary("LeBron James")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCareerSummaryCustomPolicy(t *testing.T) {
	fewestGames := func(groups []*PlayerGroup) *PlayerGroup {
		var best *PlayerGroup
		for _, g := range groups {
			if best == nil || g.GamesPlayed < best.GamesPlayed {
				best = g
			}
		}
		return best
	}
	engine := NewEngineWithPolicy(store.NewCatalog(testSnapshot()), fewestGames)

	summary, err := engine.CareerSummary("James")
	require.NoError(t, err)
	assert.Equal(t, "Mike James", summary.Name)
}
