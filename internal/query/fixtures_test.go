package query

import (
	"database/sql"
	"time"

	"github.com/hoopsight/courtside/internal/store"
)

func pts(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

var noPts = sql.NullFloat64{}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func playerRow(gameID int, playerID int, name, team, oppHome, oppAway string, win bool, points sql.NullFloat64) store.PlayerGameRecord {
	return store.PlayerGameRecord{
		GameID:       gameID,
		GameDate:     day(gameID),
		PlayerID:     playerID,
		PlayerName:   name,
		Team:         team,
		OpponentHome: oppHome,
		OpponentAway: oppAway,
		Win:          win,
		StatLine:     store.StatLine{Points: points},
	}
}

func teamRow(gameID int, teamID int, team, oppHome, oppAway string, win bool) store.TeamGameRecord {
	return store.TeamGameRecord{
		GameID:       gameID,
		GameDate:     day(gameID),
		TeamID:       teamID,
		Team:         team,
		OpponentHome: oppHome,
		OpponentAway: oppAway,
		Win:          win,
	}
}

func entry(abbr, fullName string, teamID int) store.TeamDirectoryEntry {
	return store.TeamDirectoryEntry{
		Abbreviation: abbr,
		FullName:     fullName,
		TeamID:       sql.NullInt32{Int32: int32(teamID), Valid: true},
	}
}

// testSnapshot is a small but complete store: a franchise with two
// historical abbreviations, a player with null stats, a team missing from
// the directory, and two players sharing a surname.
func testSnapshot() *store.Snapshot {
	return &store.Snapshot{
		Directory: []store.TeamDirectoryEntry{
			entry("BOS", "Boston Celtics", 2),
			entry("CHA", "Charlotte Hornets", 30),
			entry("CHH", "Charlotte Hornets", 30),
			entry("LAL", "Los Angeles Lakers", 13),
		},
		PlayerGames: []store.PlayerGameRecord{
			// LeBron James: three games, two of them against Boston.
			playerRow(1, 23, "LeBron James", "LAL", "LAL", "BOS", true, pts(30)),
			playerRow(2, 23, "LeBron James", "LAL", "BOS", "LAL", false, pts(25)),
			playerRow(3, 23, "LeBron James", "LAL", "LAL", "CHA", true, pts(40)),
			// Mike James: fewer games, same surname.
			playerRow(1, 55, "Mike James", "BOS", "LAL", "BOS", false, pts(10)),
			playerRow(2, 55, "Mike James", "BOS", "BOS", "LAL", true, pts(12)),
			// John Doe: null points in the middle game.
			playerRow(5, 77, "John Doe", "LAL", "LAL", "BOS", true, pts(10)),
			playerRow(6, 77, "John Doe", "LAL", "CHA", "LAL", false, noPts),
			playerRow(7, 77, "John Doe", "LAL", "BOS", "LAL", false, pts(20)),
			// Gary Payton: SEA has no directory entry, so every row drops.
			playerRow(8, 20, "Gary Payton", "SEA", "SEA", "LAL", true, pts(21)),
			playerRow(9, 20, "Gary Payton", "SEA", "LAL", "SEA", false, pts(18)),
			// Hornets history across both abbreviations.
			playerRow(10, 2, "Larry Johnson", "CHH", "CHH", "BOS", true, pts(20)),
			playerRow(11, 2, "Larry Johnson", "CHH", "BOS", "CHH", false, pts(22)),
			playerRow(12, 15, "Kemba Walker", "CHA", "CHA", "BOS", false, pts(25)),
			playerRow(13, 15, "Kemba Walker", "CHA", "BOS", "CHA", true, pts(23)),
		},
		TeamGames: []store.TeamGameRecord{
			// Lakers vs Celtics: three games, Lakers win two.
			teamRow(1, 13, "LAL", "LAL", "BOS", true),
			teamRow(1, 2, "BOS", "LAL", "BOS", false),
			teamRow(2, 13, "LAL", "BOS", "LAL", false),
			teamRow(2, 2, "BOS", "BOS", "LAL", true),
			teamRow(14, 13, "LAL", "LAL", "BOS", true),
			teamRow(14, 2, "BOS", "LAL", "BOS", false),
			// Lakers split against the two Hornets eras.
			teamRow(3, 13, "LAL", "LAL", "CHA", true),
			teamRow(3, 30, "CHA", "LAL", "CHA", false),
			teamRow(15, 30, "CHH", "CHH", "LAL", true),
			teamRow(15, 13, "LAL", "CHH", "LAL", false),
		},
	}
}

func testEngine() *Engine {
	return NewEngine(store.NewCatalog(testSnapshot()))
}
