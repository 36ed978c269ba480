// AngelaMos | 2026
// service_test.go

package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoralverde/training-api/internal/core"
	"github.com/litoralverde/training-api/internal/progress"
	"github.com/litoralverde/training-api/internal/user"
)

type fakeDirectory struct {
	users []user.User
}

func (f *fakeDirectory) ListUsers(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeDirectory) GetUser(
	_ context.Context,
	id string,
) (*user.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, core.ErrNotFound
}

type fakeProgressSource struct {
	byUser map[string][]progress.SectionProgress
}

func (f *fakeProgressSource) ListForUser(
	_ context.Context,
	userID string,
) ([]progress.SectionProgress, error) {
	records := f.byUser[userID]
	if records == nil {
		records = []progress.SectionProgress{}
	}
	return records, nil
}

type fakeCounter struct {
	counts map[string]int64
}

func (f *fakeCounter) CountForUser(
	_ context.Context,
	userID string,
) (int64, error) {
	return f.counts[userID], nil
}

func completedAt(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

func newTestService(t *testing.T) (*Service, *fakeProgressSource) {
	t.Helper()

	directory := &fakeDirectory{users: []user.User{
		{
			ID:    "u1",
			Email: "ana@litoralverde.com.br",
			Name:  "Ana",
			Role:  user.RoleUser,
		},
		{
			ID:    "u2",
			Email: "bruno@litoralverde.com.br",
			Name:  "Bruno",
			Role:  user.RoleUser,
		},
	}}

	source := &fakeProgressSource{byUser: map[string][]progress.SectionProgress{
		"u1": {
			{
				SectionID:   "introducao",
				Completed:   true,
				CompletedAt: completedAt(t, "2026-08-20T10:00:00Z"),
			},
			{
				SectionID:   "orcamento",
				Completed:   true,
				CompletedAt: completedAt(t, "2026-08-22T15:00:00Z"),
			},
			{SectionID: "cadastro-clientes", Completed: false},
		},
	}}

	notes := &fakeCounter{counts: map[string]int64{"u1": 3}}
	favorites := &fakeCounter{counts: map[string]int64{"u1": 2}}

	// Nil cache client: every read is a miss, writes are no-ops.
	svc := NewService(
		directory,
		source,
		notes,
		favorites,
		NewRosterCache(nil, time.Minute),
	)
	return svc, source
}

func TestUsersProgressSummarizesEveryUser(t *testing.T) {
	svc, _ := newTestService(t)

	roster, err := svc.UsersProgress(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)

	ana := roster[0]
	assert.Equal(t, "u1", ana.UserID)
	assert.Equal(t, 12, ana.TotalSections)
	assert.Equal(t, 2, ana.CompletedSections)
	assert.Equal(t, 16.67, ana.ProgressPercentage)
	require.NotNil(t, ana.LastActivity)
	assert.Equal(t, *completedAt(t, "2026-08-22T15:00:00Z"), *ana.LastActivity)

	// A user with no progress records still appears, at zero.
	bruno := roster[1]
	assert.Equal(t, "u2", bruno.UserID)
	assert.Equal(t, 0, bruno.CompletedSections)
	assert.Equal(t, 0.0, bruno.ProgressPercentage)
	assert.Nil(t, bruno.LastActivity)
}

func TestUserDetail(t *testing.T) {
	svc, _ := newTestService(t)

	detail, err := svc.UserDetail(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "ana@litoralverde.com.br", detail.User.Email)
	assert.Len(t, detail.Progress, 3)
	assert.Equal(t, int64(3), detail.NotesCount)
	assert.Equal(t, int64(2), detail.FavoritesCount)
}

func TestUserDetailUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UserDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
