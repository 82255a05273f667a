package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hoopsight/courtside/internal/store"
)

// statFields lists the nullable stat columns in table order; CSV headers
// use the same names.
var statFields = []string{
	"minutes", "points",
	"offensive_rebounds", "defensive_rebounds", "rebounds",
	"assists", "steals", "blocks", "turnovers", "personal_fouls", "plus_minus",
	"field_goals_made", "field_goals_attempted", "field_goal_pct",
	"three_pointers_made", "three_pointers_attempted", "three_point_pct",
	"free_throws_made", "free_throws_attempted", "free_throw_pct",
}

type csvLoader struct {
	db       *store.Database
	truncate bool
}

// header maps CSV column names to their positions.
type header map[string]int

func (h header) get(record []string, name string) (string, error) {
	idx, ok := h[name]
	if !ok {
		return "", fmt.Errorf("missing column %q", name)
	}
	if idx >= len(record) {
		return "", fmt.Errorf("short record: no value for %q", name)
	}
	return strings.TrimSpace(record[idx]), nil
}

func (l *csvLoader) loadDirectory(path string) (int, error) {
	cols := []string{"abbreviation", "full_name", "team_id"}
	insert := fmt.Sprintf("INSERT INTO team_directory (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders(l.db.Driver(), len(cols)))

	return l.loadFile(path, "team_directory", insert, func(h header, record []string) ([]interface{}, error) {
		abbr, err := h.get(record, "abbreviation")
		if err != nil {
			return nil, err
		}
		fullName, err := h.get(record, "full_name")
		if err != nil {
			return nil, err
		}
		teamID, err := nullableInt(h, record, "team_id")
		if err != nil {
			return nil, err
		}
		return []interface{}{abbr, fullName, teamID}, nil
	})
}

func (l *csvLoader) loadPlayerGames(path string) (int, error) {
	cols := append([]string{
		"game_id", "game_date", "player_id", "player_name",
		"team", "opponent_home", "opponent_away", "win",
	}, statFields...)
	insert := fmt.Sprintf("INSERT INTO player_games (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders(l.db.Driver(), len(cols)))

	return l.loadFile(path, "player_games", insert, func(h header, record []string) ([]interface{}, error) {
		args, err := gameKeyArgs(h, record, "player_id", "player_name")
		if err != nil {
			return nil, err
		}
		return appendStatArgs(args, h, record)
	})
}

func (l *csvLoader) loadTeamGames(path string) (int, error) {
	cols := append([]string{
		"game_id", "game_date", "team_id", "team",
		"opponent_home", "opponent_away", "win",
	}, statFields...)
	insert := fmt.Sprintf("INSERT INTO team_games (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders(l.db.Driver(), len(cols)))

	return l.loadFile(path, "team_games", insert, func(h header, record []string) ([]interface{}, error) {
		gameID, err := requiredInt(h, record, "game_id")
		if err != nil {
			return nil, err
		}
		gameDate, err := requiredDate(h, record, "game_date")
		if err != nil {
			return nil, err
		}
		teamID, err := requiredInt(h, record, "team_id")
		if err != nil {
			return nil, err
		}
		team, err := h.get(record, "team")
		if err != nil {
			return nil, err
		}
		oppHome, err := h.get(record, "opponent_home")
		if err != nil {
			return nil, err
		}
		oppAway, err := h.get(record, "opponent_away")
		if err != nil {
			return nil, err
		}
		win, err := requiredBool(h, record, "win")
		if err != nil {
			return nil, err
		}
		args := []interface{}{gameID, gameDate, teamID, team, oppHome, oppAway, win}
		return appendStatArgs(args, h, record)
	})
}

// gameKeyArgs reads the shared player-game key columns.
func gameKeyArgs(h header, record []string, idCol, nameCol string) ([]interface{}, error) {
	gameID, err := requiredInt(h, record, "game_id")
	if err != nil {
		return nil, err
	}
	gameDate, err := requiredDate(h, record, "game_date")
	if err != nil {
		return nil, err
	}
	id, err := requiredInt(h, record, idCol)
	if err != nil {
		return nil, err
	}
	name, err := h.get(record, nameCol)
	if err != nil {
		return nil, err
	}
	team, err := h.get(record, "team")
	if err != nil {
		return nil, err
	}
	oppHome, err := h.get(record, "opponent_home")
	if err != nil {
		return nil, err
	}
	oppAway, err := h.get(record, "opponent_away")
	if err != nil {
		return nil, err
	}
	win, err := requiredBool(h, record, "win")
	if err != nil {
		return nil, err
	}
	return []interface{}{gameID, gameDate, id, name, team, oppHome, oppAway, win}, nil
}

func appendStatArgs(args []interface{}, h header, record []string) ([]interface{}, error) {
	for _, field := range statFields {
		v, err := nullableFloat(h, record, field)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// loadFile streams one CSV into its table inside a single transaction.
// A malformed row aborts the whole load; partial bulk loads are worse
// than no load.
func (l *csvLoader) loadFile(path, table, insert string, toArgs func(header, []string) ([]interface{}, error)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.ReuseRecord = true

	head, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}
	h := make(header, len(head))
	for i, name := range head {
		h[strings.TrimSpace(strings.ToLower(name))] = i
	}

	tx, err := l.db.DB().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if l.truncate {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return 0, fmt.Errorf("truncating %s: %w", table, err)
		}
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", count+2, err)
		}

		args, err := toArgs(h, record)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", count+2, err)
		}

		if _, err := stmt.Exec(args...); err != nil {
			return 0, fmt.Errorf("row %d: %w", count+2, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

func requiredInt(h header, record []string, name string) (int, error) {
	s, err := h.get(record, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func requiredDate(h header, record []string, name string) (time.Time, error) {
	s, err := h.get(record, name)
	if err != nil {
		return time.Time{}, err
	}
	v, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func requiredBool(h header, record []string, name string) (bool, error) {
	s, err := h.get(record, name)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "w":
		return true, nil
	case "l":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

// nullableFloat returns nil for an empty cell so it lands as SQL NULL.
func nullableFloat(h header, record []string, name string) (interface{}, error) {
	s, err := h.get(record, name)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

// nullableInt returns nil for an empty cell so it lands as SQL NULL.
func nullableInt(h header, record []string, name string) (interface{}, error) {
	s, err := h.get(record, name)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}
