package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNilUntilReplace(t *testing.T) {
	c := NewCatalog(nil)
	assert.Nil(t, c.Snapshot())

	snap := &Snapshot{Directory: []TeamDirectoryEntry{{Abbreviation: "LAL", FullName: "Los Angeles Lakers"}}}
	c.Replace(snap)
	assert.Same(t, snap, c.Snapshot())
}

func TestCatalogReplaceSwapsWholeSnapshot(t *testing.T) {
	first := &Snapshot{PlayerGames: make([]PlayerGameRecord, 1)}
	second := &Snapshot{PlayerGames: make([]PlayerGameRecord, 2)}

	c := NewCatalog(first)
	held := c.Snapshot()

	c.Replace(second)

	// A reader that grabbed the old snapshot keeps it intact.
	assert.Len(t, held.PlayerGames, 1)
	assert.Same(t, second, c.Snapshot())
}

func TestDirectoryIndex(t *testing.T) {
	snap := &Snapshot{Directory: []TeamDirectoryEntry{
		{Abbreviation: "BOS", FullName: "Boston Celtics"},
		{Abbreviation: "CHH", FullName: "Charlotte Hornets"},
	}}

	idx := snap.DirectoryIndex()
	require.Len(t, idx, 2)
	assert.Equal(t, "Boston Celtics", idx["BOS"].FullName)
	_, ok := idx["SEA"]
	assert.False(t, ok)
}

func TestRecordOpponent(t *testing.T) {
	home := PlayerGameRecord{Team: "LAL", OpponentHome: "LAL", OpponentAway: "BOS"}
	away := PlayerGameRecord{Team: "BOS", OpponentHome: "LAL", OpponentAway: "BOS"}
	assert.Equal(t, "BOS", home.Opponent())
	assert.Equal(t, "LAL", away.Opponent())

	team := TeamGameRecord{Team: "CHH", OpponentHome: "ORL", OpponentAway: "CHH"}
	assert.Equal(t, "ORL", team.Opponent())
}
