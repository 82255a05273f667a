package main

import (
	"fmt"
	"strings"

	"github.com/hoopsight/courtside/internal/store"
)

// statColumns is the shared tail of both game tables; every stat is
// nullable because source feeds drop fields game to game.
const statColumns = `
	minutes DOUBLE PRECISION,
	points DOUBLE PRECISION,
	offensive_rebounds DOUBLE PRECISION,
	defensive_rebounds DOUBLE PRECISION,
	rebounds DOUBLE PRECISION,
	assists DOUBLE PRECISION,
	steals DOUBLE PRECISION,
	blocks DOUBLE PRECISION,
	turnovers DOUBLE PRECISION,
	personal_fouls DOUBLE PRECISION,
	plus_minus DOUBLE PRECISION,
	field_goals_made DOUBLE PRECISION,
	field_goals_attempted DOUBLE PRECISION,
	field_goal_pct DOUBLE PRECISION,
	three_pointers_made DOUBLE PRECISION,
	three_pointers_attempted DOUBLE PRECISION,
	three_point_pct DOUBLE PRECISION,
	free_throws_made DOUBLE PRECISION,
	free_throws_attempted DOUBLE PRECISION,
	free_throw_pct DOUBLE PRECISION`

// createSchema creates the three record-store tables when missing. The
// DDL sticks to types both postgres and sqlite3 understand.
func createSchema(db *store.Database) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS team_directory (
			abbreviation TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			team_id INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS player_games (
			game_id INTEGER NOT NULL,
			game_date DATE NOT NULL,
			player_id INTEGER NOT NULL,
			player_name TEXT NOT NULL,
			team TEXT NOT NULL,
			opponent_home TEXT NOT NULL,
			opponent_away TEXT NOT NULL,
			win BOOLEAN NOT NULL,` + statColumns + `
		)`,
		`CREATE TABLE IF NOT EXISTS team_games (
			game_id INTEGER NOT NULL,
			game_date DATE NOT NULL,
			team_id INTEGER NOT NULL,
			team TEXT NOT NULL,
			opponent_home TEXT NOT NULL,
			opponent_away TEXT NOT NULL,
			win BOOLEAN NOT NULL,` + statColumns + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_player_games_name ON player_games (player_name)`,
		`CREATE INDEX IF NOT EXISTS idx_player_games_team ON player_games (team)`,
		`CREATE INDEX IF NOT EXISTS idx_team_games_team ON team_games (team)`,
	}

	for _, stmt := range statements {
		if _, err := db.DB().Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// placeholders renders n bind parameters in the driver's dialect:
// $1..$n for postgres, ? repeated for sqlite3.
func placeholders(driver string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		if driver == "postgres" {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
