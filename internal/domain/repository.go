package domain

import "context"

// IngredientRegistry defines the persistence interface for canonical
// ingredients. The core treats storage as key-value lookup plus atomic
// insert-if-absent; the at-most-one-entry-per-normalized-name invariant is
// the backend's responsibility (per-key lock, SETNX, ON CONFLICT DO NOTHING).
type IngredientRegistry interface {
	// GetByName resolves a normalized name or synonym to its canonical entry.
	// Returns ErrIngredientNotFound on a miss.
	GetByName(ctx context.Context, normalizedName string) (*CanonicalIngredient, error)

	// InsertIfAbsent stores the entry keyed by its normalized display name
	// unless one already exists. It returns the entry that is in the
	// registry afterwards and whether this call created it.
	InsertIfAbsent(ctx context.Context, ingredient *CanonicalIngredient) (*CanonicalIngredient, bool, error)

	// All returns every canonical entry, used by fuzzy matching.
	All(ctx context.Context) ([]CanonicalIngredient, error)
}
