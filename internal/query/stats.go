package query

import (
	"database/sql"

	"github.com/hoopsight/courtside/internal/store"
)

// StatAverages holds the per-game means for every statistic field. Fields
// are flattened into summary payloads, so tags carry the avg_ prefix.
// A stat with no recorded values averages to 0 rather than null; that is
// a data-completeness policy, not a missing-data signal.
type StatAverages struct {
	Minutes                float64 `json:"avg_minutes"`
	Points                 float64 `json:"avg_points"`
	OffensiveRebounds      float64 `json:"avg_offensive_rebounds"`
	DefensiveRebounds      float64 `json:"avg_defensive_rebounds"`
	Rebounds               float64 `json:"avg_rebounds"`
	Assists                float64 `json:"avg_assists"`
	Steals                 float64 `json:"avg_steals"`
	Blocks                 float64 `json:"avg_blocks"`
	Turnovers              float64 `json:"avg_turnovers"`
	PersonalFouls          float64 `json:"avg_personal_fouls"`
	PlusMinus              float64 `json:"avg_plus_minus"`
	FieldGoalsMade         float64 `json:"avg_field_goals_made"`
	FieldGoalsAttempted    float64 `json:"avg_field_goals_attempted"`
	FieldGoalPct           float64 `json:"avg_field_goal_pct"`
	ThreePointersMade      float64 `json:"avg_three_pointers_made"`
	ThreePointersAttempted float64 `json:"avg_three_pointers_attempted"`
	ThreePointPct          float64 `json:"avg_three_point_pct"`
	FreeThrowsMade         float64 `json:"avg_free_throws_made"`
	FreeThrowsAttempted    float64 `json:"avg_free_throws_attempted"`
	FreeThrowPct           float64 `json:"avg_free_throw_pct"`
}

// meanAcc accumulates the mean of non-null values. Null observations touch
// neither the sum nor the count, so they cannot corrupt the average.
type meanAcc struct {
	sum   float64
	count int
}

func (m *meanAcc) observe(v sql.NullFloat64) {
	if !v.Valid {
		return
	}
	m.sum += v.Float64
	m.count++
}

func (m *meanAcc) mean() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// statAccumulator reduces a group of box-score lines to per-stat means.
type statAccumulator struct {
	minutes                meanAcc
	points                 meanAcc
	offensiveRebounds      meanAcc
	defensiveRebounds      meanAcc
	rebounds               meanAcc
	assists                meanAcc
	steals                 meanAcc
	blocks                 meanAcc
	turnovers              meanAcc
	personalFouls          meanAcc
	plusMinus              meanAcc
	fieldGoalsMade         meanAcc
	fieldGoalsAttempted    meanAcc
	fieldGoalPct           meanAcc
	threePointersMade      meanAcc
	threePointersAttempted meanAcc
	threePointPct          meanAcc
	freeThrowsMade         meanAcc
	freeThrowsAttempted    meanAcc
	freeThrowPct           meanAcc
}

func (a *statAccumulator) observe(line store.StatLine) {
	a.minutes.observe(line.Minutes)
	a.points.observe(line.Points)
	a.offensiveRebounds.observe(line.OffensiveRebounds)
	a.defensiveRebounds.observe(line.DefensiveRebounds)
	a.rebounds.observe(line.Rebounds)
	a.assists.observe(line.Assists)
	a.steals.observe(line.Steals)
	a.blocks.observe(line.Blocks)
	a.turnovers.observe(line.Turnovers)
	a.personalFouls.observe(line.PersonalFouls)
	a.plusMinus.observe(line.PlusMinus)
	a.fieldGoalsMade.observe(line.FieldGoalsMade)
	a.fieldGoalsAttempted.observe(line.FieldGoalsAttempted)
	a.fieldGoalPct.observe(line.FieldGoalPct)
	a.threePointersMade.observe(line.ThreePointersMade)
	a.threePointersAttempted.observe(line.ThreePointersAttempted)
	a.threePointPct.observe(line.ThreePointPct)
	a.freeThrowsMade.observe(line.FreeThrowsMade)
	a.freeThrowsAttempted.observe(line.FreeThrowsAttempted)
	a.freeThrowPct.observe(line.FreeThrowPct)
}

func (a *statAccumulator) averages() StatAverages {
	return StatAverages{
		Minutes:                a.minutes.mean(),
		Points:                 a.points.mean(),
		OffensiveRebounds:      a.offensiveRebounds.mean(),
		DefensiveRebounds:      a.defensiveRebounds.mean(),
		Rebounds:               a.rebounds.mean(),
		Assists:                a.assists.mean(),
		Steals:                 a.steals.mean(),
		Blocks:                 a.blocks.mean(),
		Turnovers:              a.turnovers.mean(),
		PersonalFouls:          a.personalFouls.mean(),
		PlusMinus:              a.plusMinus.mean(),
		FieldGoalsMade:         a.fieldGoalsMade.mean(),
		FieldGoalsAttempted:    a.fieldGoalsAttempted.mean(),
		FieldGoalPct:           a.fieldGoalPct.mean(),
		ThreePointersMade:      a.threePointersMade.mean(),
		ThreePointersAttempted: a.threePointersAttempted.mean(),
		ThreePointPct:          a.threePointPct.mean(),
		FreeThrowsMade:         a.freeThrowsMade.mean(),
		FreeThrowsAttempted:    a.freeThrowsAttempted.mean(),
		FreeThrowPct:           a.freeThrowPct.mean(),
	}
}
