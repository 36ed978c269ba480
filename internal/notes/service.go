// AngelaMos | 2026
// service.go

package notes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

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
	userID, sectionID string,
) ([]Note, error) {
	result, err := s.repo.ListByUser(ctx, userID, sectionID)
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = []Note{}
	}

	return result, nil
}

func (s *Service) Create(
	ctx context.Context,
	userID, sectionID, content string,
) (*Note, error) {
	if !sections.Exists(sectionID) {
		return nil, ErrUnknownSection
	}

	now := time.Now().UTC()
	note := &Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		SectionID: sectionID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *Service) Update(
	ctx context.Context,
	id, userID, content string,
) (*Note, error) {
	return s.repo.UpdateContent(ctx, id, userID, content)
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *Service) CountForUser(
	ctx context.Context,
	userID string,
) (int64, error) {
	return s.repo.CountByUser(ctx, userID)
}
