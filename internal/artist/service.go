package artist

import (
	"context"
	"errors"
	"fmt"
)

// Service contains business logic for artist registry management.
type Service struct {
	repo *Repository
}

// NewService creates a new artist Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ErrAlreadyExists is returned when an artist with the same name is already
// registered.
var ErrAlreadyExists = errors.New("artist already exists")

// Create registers a new artist unless the name is already taken. The
// duplicate check is a separate read before the insert; two concurrent
// creates for the same name can both pass it.
func (s *Service) Create(ctx context.Context, name, imgURL string) (*Artist, error) {
	if _, err := s.repo.GetByName(ctx, name); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check existing artist: %w", err)
	}

	a, err := s.repo.Create(ctx, name, imgURL)
	if err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return a, nil
}

// GetByID returns an artist by its id.
func (s *Service) GetByID(ctx context.Context, id int64) (*Artist, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all artists.
func (s *Service) List(ctx context.Context) ([]Artist, error) {
	return s.repo.List(ctx)
}

// ImageURL returns the stored image URL for an artist name.
func (s *Service) ImageURL(ctx context.Context, name string) (string, error) {
	return s.repo.GetImageURL(ctx, name)
}

// IsNotFound returns true when the error indicates an artist was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
