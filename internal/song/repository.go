// Package song manages registry rows for songs and their media URLs.
package song

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Song is a registry row. AudioURL and ImgURL are CDN URLs stored by value.
type Song struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	AudioURL  string    `json:"audiourl"`
	ImgURL    string    `json:"imgurl"`
	ArtistID  int64     `json:"artist_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository handles all song database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new song and returns the created record.
func (r *Repository) Create(ctx context.Context, title, audioURL, imgURL string, artistID int64) (*Song, error) {
	s := &Song{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO songs (title, audiourl, imgurl, artist_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, audiourl, imgurl, artist_id, created_at`,
		title, audioURL, imgURL, artistID,
	).Scan(&s.ID, &s.Title, &s.AudioURL, &s.ImgURL, &s.ArtistID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}
	return s, nil
}

// ListByArtist returns all songs belonging to the given artist id.
func (r *Repository) ListByArtist(ctx context.Context, artistID int64) ([]Song, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, audiourl, imgurl, artist_id, created_at
		 FROM songs WHERE artist_id = $1 ORDER BY id`,
		artistID,
	)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var s Song
		if err := rows.Scan(&s.ID, &s.Title, &s.AudioURL, &s.ImgURL, &s.ArtistID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}
