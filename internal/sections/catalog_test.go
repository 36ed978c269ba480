// AngelaMos | 2026
// catalog_test.go

package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogIsFixed(t *testing.T) {
	assert.Equal(t, 12, Count())
	assert.Len(t, Catalog, Count())
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, section := range Catalog {
		assert.False(t, seen[section.ID], "duplicate section id %q", section.ID)
		seen[section.ID] = true
	}
}

func TestCatalogOrderIsSequential(t *testing.T) {
	for i, section := range Catalog {
		assert.Equal(t, i+1, section.Order, "section %q", section.ID)
		assert.NotEmpty(t, section.Title, "section %q", section.ID)
	}
}

func TestExists(t *testing.T) {
	assert.True(t, Exists("introducao"))
	assert.True(t, Exists("status-reservas"))
	assert.False(t, Exists("nao-existe"))
	assert.False(t, Exists(""))
	assert.False(t, Exists("Introducao"))
}
