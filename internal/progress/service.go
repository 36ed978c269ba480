// AngelaMos | 2026
// service.go

package progress

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/litoralverde/training-api/internal/sections"
)

var ErrUnknownSection = errors.New("unknown section")

// RosterInvalidator drops cached admin roster data after a progress
// write. Implementations must be safe to call best-effort.
type RosterInvalidator interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	repo        Repository
	invalidator RosterInvalidator
}

func NewService(repo Repository, invalidator RosterInvalidator) *Service {
	return &Service{
		repo:        repo,
		invalidator: invalidator,
	}
}

func (s *Service) ListForUser(
	ctx context.Context,
	userID string,
) ([]SectionProgress, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []SectionProgress{}
	}

	return records, nil
}

// Update transitions the (user, section) pair. Completing stamps the
// current time; un-completing clears the timestamp entirely.
func (s *Service) Update(
	ctx context.Context,
	userID, sectionID string,
	completed bool,
) (*SectionProgress, error) {
	if !sections.Exists(sectionID) {
		return nil, ErrUnknownSection
	}

	var completedAt *time.Time
	if completed {
		now := time.Now().UTC()
		completedAt = &now
	}

	record, err := s.repo.Upsert(ctx, userID, sectionID, completed, completedAt)
	if err != nil {
		return nil, err
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}

	slog.Debug("progress updated",
		"user_id", userID,
		"section_id", sectionID,
		"completed", completed,
	)

	return record, nil
}
