package song

import (
	"context"
	"fmt"

	"github.com/kathavichar/api/internal/artist"
)

// Service contains business logic for song registry management.
type Service struct {
	repo      *Repository
	artistSvc *artist.Service
}

// NewService creates a new song Service.
func NewService(repo *Repository, artistSvc *artist.Service) *Service {
	return &Service{repo: repo, artistSvc: artistSvc}
}

// Create registers a song after confirming the artist exists. The existence
// check is a separate read before the insert, matching the registry's
// read-then-write semantics.
func (s *Service) Create(ctx context.Context, title, audioURL, imgURL string, artistID int64) (*Song, error) {
	if _, err := s.artistSvc.GetByID(ctx, artistID); err != nil {
		if s.artistSvc.IsNotFound(err) {
			return nil, artist.ErrNotFound
		}
		return nil, fmt.Errorf("check artist existence: %w", err)
	}

	sg, err := s.repo.Create(ctx, title, audioURL, imgURL, artistID)
	if err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}
	return sg, nil
}

// ListByArtist returns all songs for an artist id.
func (s *Service) ListByArtist(ctx context.Context, artistID int64) ([]Song, error) {
	return s.repo.ListByArtist(ctx, artistID)
}
