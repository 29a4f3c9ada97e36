package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrycart/backend/internal/domain"
)

var namePunctuationRegex = regexp.MustCompile(`[^\w\s]`)
var nameSpacesRegex = regexp.MustCompile(`\s+`)

// irregularPlurals are plural forms the es/s stripping rules get wrong.
var irregularPlurals = map[string]string{
	"leaves":   "leaf",
	"loaves":   "loaf",
	"halves":   "half",
	"knives":   "knife",
	"tomatoes": "tomato",
	"potatoes": "potato",
}

// nonPluralS are words ending in s that are already singular.
var nonPluralS = map[string]bool{
	"molasses":  true,
	"couscous":  true,
	"hummus":    true,
	"asparagus": true,
	"swiss":     true,
	"citrus":    true,
	"bass":      true,
	"grits":     true,
	"oats":      true,
}

// CanonicalizerConfig holds matching knobs for ingredient identity
// resolution.
type CanonicalizerConfig struct {
	EnableFuzzyMatching bool
	FuzzyEditDistance   int
}

// Canonicalizer resolves free-text ingredient names to canonical
// identities. Matching order: exact synonym, normalized form, bounded
// edit-distance fuzzy match, and finally creation of a new entry flagged
// for review. Creation relies on the registry's atomic insert-if-absent, so
// concurrent resolution of the same unseen name yields one entry.
type Canonicalizer struct {
	registry          domain.IngredientRegistry
	categorizer       *Categorizer
	enableFuzzy       bool
	fuzzyEditDistance int
	logger            *zap.Logger
}

// NewCanonicalizer creates a canonicalizer with the given configuration.
func NewCanonicalizer(
	registry domain.IngredientRegistry,
	categorizer *Categorizer,
	config CanonicalizerConfig,
	logger *zap.Logger,
) *Canonicalizer {
	fuzzyDist := config.FuzzyEditDistance
	if fuzzyDist <= 0 {
		fuzzyDist = 2
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Canonicalizer{
		registry:          registry,
		categorizer:       categorizer,
		enableFuzzy:       config.EnableFuzzyMatching,
		fuzzyEditDistance: fuzzyDist,
		logger:            logger,
	}
}

// Canonicalize resolves ingredient text to its canonical entry, creating
// one when nothing matches. Unknown ingredients never fail the call; they
// come back flagged NeedsReview for later curation.
func (c *Canonicalizer) Canonicalize(ctx context.Context, ingredientText string) (*domain.CanonicalIngredient, error) {
	raw := strings.TrimSpace(strings.ToLower(ingredientText))
	if raw == "" {
		return nil, domain.ErrInvalidRequest
	}

	// (a) exact match on the synonym table
	if found, err := c.registry.GetByName(ctx, raw); err == nil {
		return found, nil
	} else if !errors.Is(err, domain.ErrIngredientNotFound) {
		return nil, err
	}

	// (b) match after normalization
	normalized := NormalizeIngredientName(ingredientText)
	if normalized == "" {
		return nil, domain.ErrInvalidRequest
	}
	if found, err := c.registry.GetByName(ctx, normalized); err == nil {
		return found, nil
	} else if !errors.Is(err, domain.ErrIngredientNotFound) {
		return nil, err
	}

	// (c) bounded edit-distance fuzzy match against known canonical names
	if c.enableFuzzy {
		if found, err := c.fuzzyMatch(ctx, normalized); err != nil {
			return nil, err
		} else if found != nil {
			c.logger.Debug("fuzzy ingredient match",
				zap.String("input", normalized),
				zap.String("matched", found.DisplayName))
			return found, nil
		}
	}

	// (d) no match: create a review-flagged entry so novel ingredients
	// never block list generation
	category, _ := c.categorizer.Categorize(normalized)
	entry := &domain.CanonicalIngredient{
		ID:          uuid.NewString(),
		DisplayName: normalized,
		Category:    category,
		NeedsReview: true,
		CreatedAt:   time.Now().UTC(),
	}
	stored, created, err := c.registry.InsertIfAbsent(ctx, entry)
	if err != nil {
		return nil, err
	}
	if created {
		c.logger.Info("new ingredient registered for review",
			zap.String("name", normalized),
			zap.String("id", stored.ID))
	}
	return stored, nil
}

// fuzzyMatch scans known canonical names and synonyms for the closest one
// within the edit-distance bound. Names shorter than 4 runes are skipped to
// avoid false positives on short words.
func (c *Canonicalizer) fuzzyMatch(ctx context.Context, name string) (*domain.CanonicalIngredient, error) {
	all, err := c.registry.All(ctx)
	if err != nil {
		return nil, err
	}

	var best *domain.CanonicalIngredient
	bestDist := c.fuzzyEditDistance + 1

	for idx := range all {
		entry := &all[idx]
		candidates := append([]string{entry.DisplayName}, entry.Synonyms...)
		for _, candidate := range candidates {
			d, ok := boundedEditDistance(name, strings.ToLower(candidate), c.fuzzyEditDistance)
			if ok && d < bestDist {
				bestDist = d
				best = entry
			}
		}
	}
	return best, nil
}

// NormalizeIngredientName lowercases, strips punctuation and descriptor
// words, singularizes each word, and collapses whitespace.
func NormalizeIngredientName(name string) string {
	lowered := strings.ToLower(name)
	lowered = namePunctuationRegex.ReplaceAllString(lowered, " ")
	lowered = nameSpacesRegex.ReplaceAllString(lowered, " ")

	var kept []string
	for _, word := range strings.Fields(lowered) {
		if descriptorWords[word] {
			continue
		}
		kept = append(kept, singularize(word))
	}
	return strings.Join(kept, " ")
}

// singularize strips trailing es/s under a small exception list for
// irregular plurals.
func singularize(word string) string {
	if s, ok := irregularPlurals[word]; ok {
		return s
	}
	if nonPluralS[word] || len(word) < 4 {
		return word
	}
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "shes") || strings.HasSuffix(word, "ches") ||
		strings.HasSuffix(word, "sses") || strings.HasSuffix(word, "xes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	default:
		return word
	}
}

// boundedEditDistance reports the Levenshtein distance between two strings
// when it is within threshold. Both strings must be at least 4 runes;
// identical strings match at distance 0.
func boundedEditDistance(s1, s2 string, threshold int) (int, bool) {
	if s1 == s2 {
		return 0, true
	}
	if len(s1) < 4 || len(s2) < 4 {
		return 0, false
	}
	lenDiff := len(s1) - len(s2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > threshold {
		return 0, false
	}
	d := levenshteinDistance(s1, s2)
	if d > threshold {
		return 0, false
	}
	return d, true
}

// levenshteinDistance calculates the edit distance between two strings
// using two rows instead of the full matrix.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
