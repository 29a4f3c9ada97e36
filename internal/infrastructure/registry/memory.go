package registry

import (
	"context"
	"strings"
	"sync"

	"github.com/pantrycart/backend/internal/domain"
)

// MemoryRegistry is a thread-safe in-memory ingredient registry. The
// insert-if-absent path is atomic under the write lock, so concurrent
// canonicalization of the same unseen name produces exactly one entry.
type MemoryRegistry struct {
	mu        sync.RWMutex
	byName    map[string]domain.CanonicalIngredient // normalized display name -> entry
	bySynonym map[string]string                     // normalized synonym -> display name key
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		byName:    make(map[string]domain.CanonicalIngredient),
		bySynonym: make(map[string]string),
	}
}

// GetByName resolves a name or synonym to its canonical entry.
func (r *MemoryRegistry) GetByName(ctx context.Context, name string) (*domain.CanonicalIngredient, error) {
	key := normalizeKey(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.byName[key]; ok {
		out := entry
		return &out, nil
	}
	if nameKey, ok := r.bySynonym[key]; ok {
		if entry, ok := r.byName[nameKey]; ok {
			out := entry
			return &out, nil
		}
	}
	return nil, domain.ErrIngredientNotFound
}

// InsertIfAbsent stores the entry unless one with the same normalized name
// (or a synonym covering it) already exists. Returns the entry that is in
// the registry afterwards and whether this call created it.
func (r *MemoryRegistry) InsertIfAbsent(ctx context.Context, ingredient *domain.CanonicalIngredient) (*domain.CanonicalIngredient, bool, error) {
	key := normalizeKey(ingredient.DisplayName)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.lookupLocked(key); ok {
		out := existing
		return &out, false, nil
	}

	stored := *ingredient
	stored.Synonyms = append([]string(nil), ingredient.Synonyms...)
	r.byName[key] = stored
	for _, syn := range stored.Synonyms {
		r.bySynonym[normalizeKey(syn)] = key
	}

	out := stored
	return &out, true, nil
}

// All returns a snapshot of every canonical entry.
func (r *MemoryRegistry) All(ctx context.Context) ([]domain.CanonicalIngredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CanonicalIngredient, 0, len(r.byName))
	for _, entry := range r.byName {
		copied := entry
		copied.Synonyms = append([]string(nil), entry.Synonyms...)
		out = append(out, copied)
	}
	return out, nil
}

// Seed loads curated entries, skipping any already present.
func (r *MemoryRegistry) Seed(ctx context.Context, entries []domain.CanonicalIngredient) error {
	for i := range entries {
		if _, _, err := r.InsertIfAbsent(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of canonical entries, for monitoring.
func (r *MemoryRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

func (r *MemoryRegistry) lookupLocked(key string) (domain.CanonicalIngredient, bool) {
	if entry, ok := r.byName[key]; ok {
		return entry, true
	}
	if nameKey, ok := r.bySynonym[key]; ok {
		if entry, ok := r.byName[nameKey]; ok {
			return entry, true
		}
	}
	return domain.CanonicalIngredient{}, false
}

func normalizeKey(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
