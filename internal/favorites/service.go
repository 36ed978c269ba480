// AngelaMos | 2026
// service.go

package favorites

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/litoralverde/training-api/internal/core"
	"github.com/litoralverde/training-api/internal/sections"
)

var ErrUnknownSection = errors.New("unknown section")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListForUser(
	ctx context.Context,
	userID string,
) ([]Favorite, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = []Favorite{}
	}

	return result, nil
}

// Toggle flips the favorited state and reports the resulting state, so
// callers never reason about record identity. Two toggles in a row are
// an identity operation.
func (s *Service) Toggle(
	ctx context.Context,
	userID, sectionID string,
) (bool, error) {
	if !sections.Exists(sectionID) {
		return false, ErrUnknownSection
	}

	existing, err := s.repo.Get(ctx, userID, sectionID)
	switch {
	case err == nil:
		if err := s.repo.Delete(ctx, existing.ID); err != nil &&
			!errors.Is(err, core.ErrNotFound) {
			return false, err
		}
		return false, nil

	case errors.Is(err, core.ErrNotFound):
		fav := &Favorite{
			ID:        uuid.New().String(),
			UserID:    userID,
			SectionID: sectionID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, fav); err != nil {
			// A racing toggle already inserted; the section is
			// favorited either way.
			if errors.Is(err, core.ErrDuplicateKey) {
				return true, nil
			}
			return false, err
		}
		return true, nil

	default:
		return false, err
	}
}

func (s *Service) CountForUser(
	ctx context.Context,
	userID string,
) (int64, error) {
	return s.repo.CountByUser(ctx, userID)
}
