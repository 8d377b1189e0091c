// Package artist manages registry rows for artists and their cover images.
package artist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Artist is a registry row. ImgURL is a CDN URL stored by value; no
// referential integrity with the object store is enforced.
type Artist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ImgURL    string    `json:"imgurl"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrNotFound is returned when an artist does not exist.
var ErrNotFound = errors.New("artist not found")

// Repository handles all artist database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new artist and returns the created record.
func (r *Repository) Create(ctx context.Context, name, imgURL string) (*Artist, error) {
	a := &Artist{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO artists (name, imgurl)
		 VALUES ($1, $2)
		 RETURNING id, name, imgurl, created_at`,
		name, imgURL,
	).Scan(&a.ID, &a.Name, &a.ImgURL, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return a, nil
}

// GetByName fetches an artist by exact name match (first row wins).
func (r *Repository) GetByName(ctx context.Context, name string) (*Artist, error) {
	a := &Artist{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, imgurl, created_at
		 FROM artists WHERE name = $1
		 ORDER BY id LIMIT 1`,
		name,
	).Scan(&a.ID, &a.Name, &a.ImgURL, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get artist by name: %w", err)
	}
	return a, nil
}

// GetByID fetches an artist by its id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Artist, error) {
	a := &Artist{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, imgurl, created_at
		 FROM artists WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.ImgURL, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return a, nil
}

// List returns all artists.
func (r *Repository) List(ctx context.Context) ([]Artist, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, imgurl, created_at FROM artists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := []Artist{}
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.ImgURL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

// GetImageURL fetches just the stored image URL for an artist name.
func (r *Repository) GetImageURL(ctx context.Context, name string) (string, error) {
	var imgURL string
	err := r.db.QueryRow(ctx,
		`SELECT imgurl FROM artists WHERE name = $1
		 ORDER BY id LIMIT 1`,
		name,
	).Scan(&imgURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get artist image url: %w", err)
	}
	return imgURL, nil
}
