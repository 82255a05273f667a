package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hoopsight/courtside/internal/store"
)

// TeamGameRepository handles team box-score data access
type TeamGameRepository struct {
	db *store.Database
}

// NewTeamGameRepository creates a new team game repository
func NewTeamGameRepository(db *store.Database) *TeamGameRepository {
	return &TeamGameRepository{db: db}
}

// LoadAll returns every team-game row, ordered for deterministic
// snapshot builds.
func (r *TeamGameRepository) LoadAll(ctx context.Context) ([]store.TeamGameRecord, error) {
	query := `
		SELECT game_id, game_date, team_id, team, opponent_home, opponent_away, win,
			minutes, points, offensive_rebounds, defensive_rebounds, rebounds,
			assists, steals, blocks, turnovers, personal_fouls, plus_minus,
			field_goals_made, field_goals_attempted, field_goal_pct,
			three_pointers_made, three_pointers_attempted, three_point_pct,
			free_throws_made, free_throws_attempted, free_throw_pct
		FROM team_games
		ORDER BY game_date, game_id, team
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying team games: %w", err)
	}
	defer rows.Close()

	return r.scanTeamGames(rows)
}

// scanTeamGames is a helper to scan multiple team-game rows
func (r *TeamGameRepository) scanTeamGames(rows *sql.Rows) ([]store.TeamGameRecord, error) {
	var records []store.TeamGameRecord
	for rows.Next() {
		var rec store.TeamGameRecord
		err := rows.Scan(
			&rec.GameID, &rec.GameDate, &rec.TeamID, &rec.Team,
			&rec.OpponentHome, &rec.OpponentAway, &rec.Win,
			&rec.Minutes, &rec.Points, &rec.OffensiveRebounds, &rec.DefensiveRebounds, &rec.Rebounds,
			&rec.Assists, &rec.Steals, &rec.Blocks, &rec.Turnovers, &rec.PersonalFouls, &rec.PlusMinus,
			&rec.FieldGoalsMade, &rec.FieldGoalsAttempted, &rec.FieldGoalPct,
			&rec.ThreePointersMade, &rec.ThreePointersAttempted, &rec.ThreePointPct,
			&rec.FreeThrowsMade, &rec.FreeThrowsAttempted, &rec.FreeThrowPct,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team game: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
