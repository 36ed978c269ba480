// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"log/slog"

	"github.com/litoralverde/training-api/internal/progress"
	"github.com/litoralverde/training-api/internal/sections"
	"github.com/litoralverde/training-api/internal/user"
)

// UserDirectory lists and resolves platform accounts.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id string) (*user.User, error)
}

// ProgressSource yields a user's per-section progress records.
type ProgressSource interface {
	ListForUser(ctx context.Context, userID string) ([]progress.SectionProgress, error)
}

// UserCounter counts records owned by a user, used for the per-user
// detail view (notes, favorites).
type UserCounter interface {
	CountForUser(ctx context.Context, userID string) (int64, error)
}

type UserDetail struct {
	User           *user.User                 `json:"user"`
	Progress       []progress.SectionProgress `json:"progress"`
	NotesCount     int64                      `json:"notes_count"`
	FavoritesCount int64                      `json:"favorites_count"`
}

type Service struct {
	users     UserDirectory
	progress  ProgressSource
	notes     UserCounter
	favorites UserCounter
	cache     *RosterCache
}

func NewService(
	users UserDirectory,
	progressSource ProgressSource,
	notes UserCounter,
	favorites UserCounter,
	cache *RosterCache,
) *Service {
	return &Service{
		users:     users,
		progress:  progressSource,
		notes:     notes,
		favorites: favorites,
		cache:     cache,
	}
}

// UsersProgress builds one summary per account across the whole fixed
// catalog. Results come from the roster cache when fresh, otherwise
// they are recomputed and re-cached.
func (s *Service) UsersProgress(
	ctx context.Context,
) ([]progress.UserProgressSummary, error) {
	if roster, ok := s.cache.Get(ctx); ok {
		return roster, nil
	}

	accounts, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	total := sections.Count()
	roster := make([]progress.UserProgressSummary, 0, len(accounts))
	for _, account := range accounts {
		records, err := s.progress.ListForUser(ctx, account.ID)
		if err != nil {
			return nil, err
		}

		roster = append(roster, progress.Summarize(
			account.ID,
			account.Name,
			account.Email,
			records,
			total,
		))
	}

	s.cache.Set(ctx, roster)
	slog.Debug("admin roster recomputed", "users", len(roster))

	return roster, nil
}

func (s *Service) UserDetail(
	ctx context.Context,
	userID string,
) (*UserDetail, error) {
	account, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.progress.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	notesCount, err := s.notes.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favoritesCount, err := s.favorites.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserDetail{
		User:           account,
		Progress:       records,
		NotesCount:     notesCount,
		FavoritesCount: favoritesCount,
	}, nil
}
