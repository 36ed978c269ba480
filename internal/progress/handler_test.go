// AngelaMos | 2026
// handler_test.go

package progress_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoralverde/training-api/internal/auth"
	"github.com/litoralverde/training-api/internal/config"
	"github.com/litoralverde/training-api/internal/middleware"
	"github.com/litoralverde/training-api/internal/progress"
)

type memoryRepo struct {
	records map[string]*progress.SectionProgress
}

func (m *memoryRepo) EnsureIndexes(_ context.Context) error {
	return nil
}

func (m *memoryRepo) ListByUser(
	_ context.Context,
	userID string,
) ([]progress.SectionProgress, error) {
	var result []progress.SectionProgress
	for _, rec := range m.records {
		if rec.UserID == userID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *memoryRepo) Upsert(
	_ context.Context,
	userID, sectionID string,
	completed bool,
	completedAt *time.Time,
) (*progress.SectionProgress, error) {
	key := userID + "/" + sectionID
	rec, ok := m.records[key]
	if !ok {
		rec = &progress.SectionProgress{
			ID:        key,
			UserID:    userID,
			SectionID: sectionID,
		}
		m.records[key] = rec
	}
	rec.Completed = completed
	rec.CompletedAt = completedAt
	out := *rec
	return &out, nil
}

func newTestRouter(t *testing.T) (chi.Router, string) {
	t.Helper()

	tokens, err := auth.NewTokenManager(config.JWTConfig{
		Secret:      "test-secret-key-for-handler-tests",
		TokenExpire: time.Hour,
		Issuer:      "training-api",
		Audience:    "training-platform",
	})
	require.NoError(t, err)

	token, err := tokens.Issue("u1", "ana@litoralverde.com.br", "user")
	require.NoError(t, err)

	repo := &memoryRepo{records: map[string]*progress.SectionProgress{}}
	svc := progress.NewService(repo, nil)
	handler := progress.NewHandler(svc)

	router := chi.NewRouter()
	handler.RegisterRoutes(router, middleware.Authenticator(tokens))

	return router, token
}

func TestProgressRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/progress/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateAndListProgress(t *testing.T) {
	router, token := newTestRouter(t)

	body := `{"section_id": "introducao", "completed": true}`
	req := httptest.NewRequest("POST", "/progress/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated progress.SectionProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "u1", updated.UserID)
	assert.Equal(t, "introducao", updated.SectionID)
	assert.True(t, updated.Completed)
	assert.NotNil(t, updated.CompletedAt)

	req = httptest.NewRequest("GET", "/progress/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []progress.SectionProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestUpdateProgressUnknownSection(t *testing.T) {
	router, token := newTestRouter(t)

	body := `{"section_id": "nao-existe", "completed": true}`
	req := httptest.NewRequest("POST", "/progress/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seção desconhecida")
}

func TestUpdateProgressMissingSectionID(t *testing.T) {
	router, token := newTestRouter(t)

	body := `{"completed": true}`
	req := httptest.NewRequest("POST", "/progress/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
