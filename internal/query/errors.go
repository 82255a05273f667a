package query

import (
	"errors"
	"fmt"
)

// The engine reports three recoverable outcomes and one fatal one. All of
// them propagate unchanged to the serving boundary; the engine never
// invents defaults for a failed resolution and never retries.
var (
	// ErrPlayerNotFound means no player-game row matched the query.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrTeamNotFound means no directory entry matched the query.
	ErrTeamNotFound = errors.New("team not found")

	// ErrEmptyQuery rejects empty or whitespace-only input before any scan.
	ErrEmptyQuery = errors.New("empty query")

	// ErrStoreUnavailable means the record store has no loaded snapshot.
	// The request fails outright; retrying is the caller's call.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

func playerNotFound(query string) error {
	return fmt.Errorf("%w: %q", ErrPlayerNotFound, query)
}

func teamNotFound(query string) error {
	return fmt.Errorf("%w: %q", ErrTeamNotFound, query)
}
