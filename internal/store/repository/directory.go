package repository

import (
	"context"
	"fmt"

	"github.com/hoopsight/courtside/internal/store"
)

// DirectoryRepository handles team directory data access
type DirectoryRepository struct {
	db *store.Database
}

// NewDirectoryRepository creates a new directory repository
func NewDirectoryRepository(db *store.Database) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// LoadAll returns every directory entry ordered by full name, then
// abbreviation. This ordering is what makes "first matching entry"
// deterministic for display metadata.
func (r *DirectoryRepository) LoadAll(ctx context.Context) ([]store.TeamDirectoryEntry, error) {
	query := `
		SELECT abbreviation, full_name, team_id
		FROM team_directory
		ORDER BY full_name, abbreviation
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying team directory: %w", err)
	}
	defer rows.Close()

	var entries []store.TeamDirectoryEntry
	for rows.Next() {
		var entry store.TeamDirectoryEntry
		if err := rows.Scan(&entry.Abbreviation, &entry.FullName, &entry.TeamID); err != nil {
			return nil, fmt.Errorf("scanning directory entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
