// AngelaMos | 2026
// service_test.go

package notes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoralverde/training-api/internal/core"
)

type fakeRepo struct {
	notes map[string]*Note
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{notes: map[string]*Note{}}
}

func (f *fakeRepo) EnsureIndexes(_ context.Context) error {
	return nil
}

func (f *fakeRepo) Create(_ context.Context, note *Note) error {
	f.notes[note.ID] = note
	return nil
}

func (f *fakeRepo) ListByUser(
	_ context.Context,
	userID, sectionID string,
) ([]Note, error) {
	var result []Note
	for _, note := range f.notes {
		if note.UserID != userID {
			continue
		}
		if sectionID != "" && note.SectionID != sectionID {
			continue
		}
		result = append(result, *note)
	}
	return result, nil
}

func (f *fakeRepo) UpdateContent(
	_ context.Context,
	id, userID, content string,
) (*Note, error) {
	note, ok := f.notes[id]
	if !ok || note.UserID != userID {
		return nil, core.ErrNotFound
	}

	note.Content = content
	note.UpdatedAt = time.Now().UTC()
	out := *note
	return &out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id, userID string) error {
	note, ok := f.notes[id]
	if !ok || note.UserID != userID {
		return core.ErrNotFound
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeRepo) CountByUser(
	_ context.Context,
	userID string,
) (int64, error) {
	var count int64
	for _, note := range f.notes {
		if note.UserID == userID {
			count++
		}
	}
	return count, nil
}

func TestCreateRejectsUnknownSection(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), "u1", "nao-existe", "conteúdo")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestCreateSetsFields(t *testing.T) {
	svc := NewService(newFakeRepo())

	note, err := svc.Create(
		context.Background(),
		"u1",
		"introducao",
		"Anotação sobre o módulo de introdução",
	)
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "u1", note.UserID)
	assert.Equal(t, "introducao", note.SectionID)
	assert.Equal(t, "Anotação sobre o módulo de introdução", note.Content)
	assert.False(t, note.CreatedAt.IsZero())
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestListForUserFiltersBySection(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "introducao", "primeira")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", "orcamento", "segunda")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", "introducao", "de outro usuário")
	require.NoError(t, err)

	all, err := svc.ListForUser(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListForUser(ctx, "u1", "introducao")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "primeira", filtered[0].Content)
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	note, err := svc.Create(ctx, "u1", "introducao", "original")
	require.NoError(t, err)

	// Owner updates fine.
	updated, err := svc.Update(ctx, note.ID, "u1", "editado")
	require.NoError(t, err)
	assert.Equal(t, "editado", updated.Content)

	// Anyone else sees not-found, never forbidden: note IDs are not
	// probeable across accounts.
	_, err = svc.Update(ctx, note.ID, "u2", "invasão")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	note, err := svc.Create(ctx, "u1", "introducao", "para deletar")
	require.NoError(t, err)

	err = svc.Delete(ctx, note.ID, "u2")
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = svc.Delete(ctx, note.ID, "u1")
	require.NoError(t, err)

	err = svc.Delete(ctx, note.ID, "u1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestListForUserEmpty(t *testing.T) {
	svc := NewService(newFakeRepo())

	listed, err := svc.ListForUser(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}
