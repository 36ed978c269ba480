// AngelaMos | 2026
// summary_test.go

package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize("u1", "Ana", "ana@litoralverde.com.br", nil, 12)

	assert.Equal(t, "u1", summary.UserID)
	assert.Equal(t, 12, summary.TotalSections)
	assert.Equal(t, 0, summary.CompletedSections)
	assert.Equal(t, 0.0, summary.ProgressPercentage)
	assert.Nil(t, summary.LastActivity)
}

func TestSummarizeEmptyCatalog(t *testing.T) {
	records := []SectionProgress{
		{SectionID: "introducao", Completed: true},
	}

	// Zero catalog never divides; percentage stays zero.
	summary := Summarize("u1", "Ana", "ana@litoralverde.com.br", records, 0)
	assert.Equal(t, 0.0, summary.ProgressPercentage)
	assert.Equal(t, 1, summary.CompletedSections)
}

func TestSummarizePercentageRounding(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{"one third", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"five of twelve", 5, 12, 41.67},
		{"all done", 12, 12, 100.0},
		{"half", 6, 12, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]SectionProgress, tt.completed)
			for i := range records {
				records[i] = SectionProgress{Completed: true}
			}

			summary := Summarize("u1", "Ana", "a@b", records, tt.total)
			assert.Equal(t, tt.want, summary.ProgressPercentage)
		})
	}
}

func TestSummarizeIgnoresIncomplete(t *testing.T) {
	records := []SectionProgress{
		{SectionID: "introducao", Completed: true, CompletedAt: ts(t, "2026-08-01T10:00:00Z")},
		{SectionID: "cadastro-clientes", Completed: false},
		{SectionID: "orcamento", Completed: false, CompletedAt: ts(t, "2026-08-20T10:00:00Z")},
	}

	summary := Summarize("u1", "Ana", "a@b", records, 12)

	assert.Equal(t, 1, summary.CompletedSections)
	require.NotNil(t, summary.LastActivity)
	assert.Equal(t, *ts(t, "2026-08-01T10:00:00Z"), *summary.LastActivity)
}

func TestSummarizeLastActivityIsMax(t *testing.T) {
	records := []SectionProgress{
		{SectionID: "orcamento", Completed: true, CompletedAt: ts(t, "2026-08-15T09:00:00Z")},
		{SectionID: "introducao", Completed: true, CompletedAt: ts(t, "2026-08-20T14:30:00Z")},
		{SectionID: "cadastro-clientes", Completed: true, CompletedAt: ts(t, "2026-08-10T08:00:00Z")},
	}

	first := Summarize("u1", "Ana", "a@b", records, 12)

	// Reversed order must produce the same reduction.
	reversed := []SectionProgress{records[2], records[1], records[0]}
	second := Summarize("u1", "Ana", "a@b", reversed, 12)

	require.NotNil(t, first.LastActivity)
	assert.Equal(t, *ts(t, "2026-08-20T14:30:00Z"), *first.LastActivity)
	assert.Equal(t, first, second)
}

func TestSummarizeCompletedWithoutTimestamp(t *testing.T) {
	records := []SectionProgress{
		{SectionID: "introducao", Completed: true},
	}

	summary := Summarize("u1", "Ana", "a@b", records, 12)

	assert.Equal(t, 1, summary.CompletedSections)
	assert.Nil(t, summary.LastActivity)
}
