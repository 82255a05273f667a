package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hoopsight/courtside/internal/store"
)

// PlayerGameRepository handles player box-score data access
type PlayerGameRepository struct {
	db *store.Database
}

// NewPlayerGameRepository creates a new player game repository
func NewPlayerGameRepository(db *store.Database) *PlayerGameRepository {
	return &PlayerGameRepository{db: db}
}

// LoadAll returns every player-game row, ordered for deterministic
// snapshot builds.
func (r *PlayerGameRepository) LoadAll(ctx context.Context) ([]store.PlayerGameRecord, error) {
	query := `
		SELECT game_id, game_date, player_id, player_name, team, opponent_home, opponent_away, win,
			minutes, points, offensive_rebounds, defensive_rebounds, rebounds,
			assists, steals, blocks, turnovers, personal_fouls, plus_minus,
			field_goals_made, field_goals_attempted, field_goal_pct,
			three_pointers_made, three_pointers_attempted, three_point_pct,
			free_throws_made, free_throws_attempted, free_throw_pct
		FROM player_games
		ORDER BY game_date, game_id, player_name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying player games: %w", err)
	}
	defer rows.Close()

	return r.scanPlayerGames(rows)
}

// scanPlayerGames is a helper to scan multiple player-game rows
func (r *PlayerGameRepository) scanPlayerGames(rows *sql.Rows) ([]store.PlayerGameRecord, error) {
	var records []store.PlayerGameRecord
	for rows.Next() {
		var rec store.PlayerGameRecord
		err := rows.Scan(
			&rec.GameID, &rec.GameDate, &rec.PlayerID, &rec.PlayerName, &rec.Team,
			&rec.OpponentHome, &rec.OpponentAway, &rec.Win,
			&rec.Minutes, &rec.Points, &rec.OffensiveRebounds, &rec.DefensiveRebounds, &rec.Rebounds,
			&rec.Assists, &rec.Steals, &rec.Blocks, &rec.Turnovers, &rec.PersonalFouls, &rec.PlusMinus,
			&rec.FieldGoalsMade, &rec.FieldGoalsAttempted, &rec.FieldGoalPct,
			&rec.ThreePointersMade, &rec.ThreePointersAttempted, &rec.ThreePointPct,
			&rec.FreeThrowsMade, &rec.FreeThrowsAttempted, &rec.FreeThrowPct,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player game: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
