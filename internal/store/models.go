package store

import (
	"database/sql"
	"time"
)

// StatLine carries the nullable box-score statistic columns shared by
// player and team rows. A null value means the stat was not recorded for
// that game; averages must exclude it from both numerator and denominator.
type StatLine struct {
	Minutes                sql.NullFloat64 `json:"minutes,omitempty" db:"minutes"`
	Points                 sql.NullFloat64 `json:"points,omitempty" db:"points"`
	OffensiveRebounds      sql.NullFloat64 `json:"offensive_rebounds,omitempty" db:"offensive_rebounds"`
	DefensiveRebounds      sql.NullFloat64 `json:"defensive_rebounds,omitempty" db:"defensive_rebounds"`
	Rebounds               sql.NullFloat64 `json:"rebounds,omitempty" db:"rebounds"`
	Assists                sql.NullFloat64 `json:"assists,omitempty" db:"assists"`
	Steals                 sql.NullFloat64 `json:"steals,omitempty" db:"steals"`
	Blocks                 sql.NullFloat64 `json:"blocks,omitempty" db:"blocks"`
	Turnovers              sql.NullFloat64 `json:"turnovers,omitempty" db:"turnovers"`
	PersonalFouls          sql.NullFloat64 `json:"personal_fouls,omitempty" db:"personal_fouls"`
	PlusMinus              sql.NullFloat64 `json:"plus_minus,omitempty" db:"plus_minus"`
	FieldGoalsMade         sql.NullFloat64 `json:"field_goals_made,omitempty" db:"field_goals_made"`
	FieldGoalsAttempted    sql.NullFloat64 `json:"field_goals_attempted,omitempty" db:"field_goals_attempted"`
	FieldGoalPct           sql.NullFloat64 `json:"field_goal_pct,omitempty" db:"field_goal_pct"`
	ThreePointersMade      sql.NullFloat64 `json:"three_pointers_made,omitempty" db:"three_pointers_made"`
	ThreePointersAttempted sql.NullFloat64 `json:"three_pointers_attempted,omitempty" db:"three_pointers_attempted"`
	ThreePointPct          sql.NullFloat64 `json:"three_point_pct,omitempty" db:"three_point_pct"`
	FreeThrowsMade         sql.NullFloat64 `json:"free_throws_made,omitempty" db:"free_throws_made"`
	FreeThrowsAttempted    sql.NullFloat64 `json:"free_throws_attempted,omitempty" db:"free_throws_attempted"`
	FreeThrowPct           sql.NullFloat64 `json:"free_throw_pct,omitempty" db:"free_throw_pct"`
}

// PlayerGameRecord is one player's box-score line for one game.
// PlayerName is the join/group key: PlayerID may be absent from some feeds,
// but the spelling of a name is stable for a given identity across the set.
type PlayerGameRecord struct {
	GameID       int       `json:"game_id" db:"game_id"`
	GameDate     time.Time `json:"game_date" db:"game_date"`
	PlayerID     int       `json:"player_id" db:"player_id"`
	PlayerName   string    `json:"player_name" db:"player_name"`
	Team         string    `json:"team" db:"team"`
	OpponentHome string    `json:"opponent_home" db:"opponent_home"`
	OpponentAway string    `json:"opponent_away" db:"opponent_away"`
	Win          bool      `json:"win" db:"win"`
	StatLine
}

// Opponent returns the abbreviation of the other side in this game.
// Exactly one of OpponentHome/OpponentAway equals the row's own team.
func (r *PlayerGameRecord) Opponent() string {
	if r.OpponentHome == r.Team {
		return r.OpponentAway
	}
	return r.OpponentHome
}

// TeamGameRecord is one team's box-score line for one game, used for
// win/loss tallying.
type TeamGameRecord struct {
	GameID       int       `json:"game_id" db:"game_id"`
	GameDate     time.Time `json:"game_date" db:"game_date"`
	TeamID       int       `json:"team_id" db:"team_id"`
	Team         string    `json:"team" db:"team"`
	OpponentHome string    `json:"opponent_home" db:"opponent_home"`
	OpponentAway string    `json:"opponent_away" db:"opponent_away"`
	Win          bool      `json:"win" db:"win"`
	StatLine
}

// Opponent returns the abbreviation of the other side in this game.
func (r *TeamGameRecord) Opponent() string {
	if r.OpponentHome == r.Team {
		return r.OpponentAway
	}
	return r.OpponentHome
}

// TeamDirectoryEntry maps one canonical abbreviation to a franchise name.
// A relocated or rebranded franchise keeps one entry per historical
// abbreviation, so resolving by full name can yield several entries.
type TeamDirectoryEntry struct {
	Abbreviation string        `json:"abbreviation" db:"abbreviation"`
	FullName     string        `json:"full_name" db:"full_name"`
	TeamID       sql.NullInt32 `json:"team_id,omitempty" db:"team_id"`
}
