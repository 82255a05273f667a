package repository

import (
	"context"
	"fmt"

	"github.com/hoopsight/courtside/internal/store"
)

// LoadSnapshot bulk-loads all three tables into an immutable snapshot.
// This runs once at startup and again only when the caller decides to
// replace the whole store.
func LoadSnapshot(ctx context.Context, db *store.Database) (*store.Snapshot, error) {
	playerGames, err := NewPlayerGameRepository(db).LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading player games: %w", err)
	}

	teamGames, err := NewTeamGameRepository(db).LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading team games: %w", err)
	}

	directory, err := NewDirectoryRepository(db).LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading team directory: %w", err)
	}

	return &store.Snapshot{
		PlayerGames: playerGames,
		TeamGames:   teamGames,
		Directory:   directory,
	}, nil
}
