// Package version serves app-version rows and upgrade decisions for mobile
// clients.
package version

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AppVersion is one released client version.
type AppVersion struct {
	ID           int64     `json:"id"`
	Version      string    `json:"version"`
	Notes        string    `json:"notes"`
	ForceUpgrade bool      `json:"forceUpgrade"`
	ReleasedAt   time.Time `json:"releasedAt"`
}

// ErrNoVersions is returned when the registry holds no version rows.
var ErrNoVersions = errors.New("no version rows")

// Repository handles all app-version database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// List returns all released versions.
func (r *Repository) List(ctx context.Context) ([]AppVersion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, version, notes, force_upgrade, released_at
		 FROM app_versions ORDER BY released_at`)
	if err != nil {
		return nil, fmt.Errorf("list app versions: %w", err)
	}
	defer rows.Close()

	versions := []AppVersion{}
	for rows.Next() {
		var v AppVersion
		if err := rows.Scan(&v.ID, &v.Version, &v.Notes, &v.ForceUpgrade, &v.ReleasedAt); err != nil {
			return nil, fmt.Errorf("scan app version: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate app versions: %w", err)
	}
	return versions, nil
}
