package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrycart/backend/internal/domain"
)

func TestDefaultIngredients(t *testing.T) {
	entries := DefaultIngredients()
	require.NotEmpty(t, entries)

	t.Run("ids and names are unique", func(t *testing.T) {
		seenID := make(map[string]bool)
		seenName := make(map[string]bool)
		for _, entry := range entries {
			assert.False(t, seenID[entry.ID], "duplicate id %q", entry.ID)
			assert.False(t, seenName[entry.DisplayName], "duplicate name %q", entry.DisplayName)
			seenID[entry.ID] = true
			seenName[entry.DisplayName] = true
		}
	})

	t.Run("every entry has a known category", func(t *testing.T) {
		valid := map[string]bool{
			domain.CategoryProduce: true, domain.CategoryDairy: true,
			domain.CategoryMeatSeafood: true, domain.CategoryBakery: true,
			domain.CategoryPantry: true, domain.CategorySpices: true,
			domain.CategoryFrozen: true, domain.CategoryOther: true,
		}
		for _, entry := range entries {
			assert.True(t, valid[entry.Category], "entry %q has category %q", entry.ID, entry.Category)
		}
	})

	t.Run("no synonym shadows another entry's name", func(t *testing.T) {
		names := make(map[string]bool, len(entries))
		for _, entry := range entries {
			names[entry.DisplayName] = true
		}
		for _, entry := range entries {
			for _, syn := range entry.Synonyms {
				assert.False(t, names[syn], "synonym %q of %q is also a canonical name", syn, entry.ID)
			}
		}
	})

	t.Run("curated entries are not review-flagged", func(t *testing.T) {
		for _, entry := range entries {
			assert.False(t, entry.NeedsReview, "entry %q should not need review", entry.ID)
		}
	})

	t.Run("seeds cleanly into a registry", func(t *testing.T) {
		reg := NewMemoryRegistry()
		require.NoError(t, reg.Seed(context.Background(), entries))
		assert.Equal(t, len(entries), reg.Size())

		got, err := reg.GetByName(context.Background(), "scallion")
		require.NoError(t, err)
		assert.Equal(t, "green-onion", got.ID)
	})
}
