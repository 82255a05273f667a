package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsight/courtside/internal/store"
)

func entry(abbr, fullName string) store.TeamDirectoryEntry {
	return store.TeamDirectoryEntry{Abbreviation: abbr, FullName: fullName}
}

var directory = []store.TeamDirectoryEntry{
	entry("BOS", "Boston Celtics"),
	entry("CHA", "Charlotte Hornets"),
	entry("CHH", "Charlotte Hornets"),
	entry("LAL", "Los Angeles Lakers"),
	entry("SAS", "San Antonio Spurs"),
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lakers", "lakers"},
		{"  LAKERS  ", "lakers"},
		{"Jokić", "jokic"},
		{"José Calderón", "jose calderon"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Los Angeles Lakers", "lakers"))
	assert.True(t, ContainsFold("Nikola Jokić", "jokic"))
	assert.True(t, ContainsFold("Nikola Jokic", "jokić"))
	assert.False(t, ContainsFold("Boston Celtics", "lakers"))
}

func TestTeamsBySubstring(t *testing.T) {
	match, ok := Teams(directory, "lakers")
	require.True(t, ok)

	assert.Equal(t, []string{"LAL"}, match.Abbreviations)
	assert.Equal(t, "Los Angeles Lakers", match.Entry.FullName)
}

func TestTeamsByExactAbbreviation(t *testing.T) {
	match, ok := Teams(directory, "bos")
	require.True(t, ok)
	assert.Equal(t, []string{"BOS"}, match.Abbreviations)
}

func TestTeamsAbbreviationMustBeExact(t *testing.T) {
	// "HH" is a substring of the abbreviation CHH but not of any full
	// name; abbreviations only match whole.
	_, ok := Teams(directory, "HH")
	assert.False(t, ok)
}

func TestTeamsUnionAcrossFranchiseHistory(t *testing.T) {
	match, ok := Teams(directory, "Hornets")
	require.True(t, ok)

	assert.Equal(t, []string{"CHA", "CHH"}, match.Abbreviations)
	// Display metadata comes from the first matching entry.
	assert.Equal(t, "CHA", match.Entry.Abbreviation)
}

func TestTeamsSubstringCanSpanTeams(t *testing.T) {
	// "s" appears in every full name; the union covers the whole
	// directory. Broad queries are the caller's problem, not an error.
	match, ok := Teams(directory, "s")
	require.True(t, ok)
	assert.Len(t, match.Abbreviations, 5)
}

func TestTeamsNoMatch(t *testing.T) {
	_, ok := Teams(directory, "ZZZ-nonexistent")
	assert.False(t, ok)
}

func TestTeamsEmptyDirectory(t *testing.T) {
	_, ok := Teams(nil, "Lakers")
	assert.False(t, ok)
}

func TestTeamMatchSet(t *testing.T) {
	match, ok := Teams(directory, "Hornets")
	require.True(t, ok)

	set := match.Set()
	assert.Contains(t, set, "CHA")
	assert.Contains(t, set, "CHH")
	assert.NotContains(t, set, "LAL")
}

func TestSuggestRanksByDistance(t *testing.T) {
	candidates := []string{"LeBron James", "Mike James", "John Doe"}

	got := Suggest("Jon Doe", candidates, 2)
	require.NotEmpty(t, got)
	assert.Equal(t, "John Doe", got[0])
}

func TestSuggestDropsDistantCandidates(t *testing.T) {
	candidates := []string{"Boston Celtics", "Los Angeles Lakers"}

	got := Suggest("xq", candidates, 3)
	assert.Empty(t, got)
}

func TestSuggestLimits(t *testing.T) {
	candidates := []string{"Smith", "Smyth", "Smitt", "Smath"}

	got := Suggest("Smith", candidates, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "Smith", got[0])
}

func TestSuggestEmptyInputs(t *testing.T) {
	assert.Nil(t, Suggest("anything", nil, 3))
	assert.Nil(t, Suggest("anything", []string{"x"}, 0))
}
