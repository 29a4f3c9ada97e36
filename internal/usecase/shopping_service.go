package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pantrycart/backend/internal/domain"
)

// defaultMinConfidence is the parse confidence below which a line is
// treated as Failed and routed to manual review.
const defaultMinConfidence = 0.3

// ShoppingServiceConfig holds configuration for the shopping service.
type ShoppingServiceConfig struct {
	MinConfidence       float64
	EnableFuzzyMatching bool
	FuzzyEditDistance   int
}

// ShoppingService wires the parsing pipeline end to end: raw lines through
// the lexer/parser, canonicalization against the registry, exact servings
// scaling, and order-independent aggregation into a categorized list.
type ShoppingService struct {
	parser        *LineParser
	canonicalizer *Canonicalizer
	aggregator    *Aggregator
	units         *UnitTable
	categorizer   *Categorizer
	minConfidence float64
	logger        *zap.Logger
}

// NewShoppingService creates a shopping service backed by the given
// ingredient registry.
func NewShoppingService(
	registry domain.IngredientRegistry,
	config ShoppingServiceConfig,
	logger *zap.Logger,
) *ShoppingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	minConfidence := config.MinConfidence
	if minConfidence <= 0 {
		minConfidence = defaultMinConfidence
	}

	units := NewUnitTable()
	categorizer := NewCategorizer()
	return &ShoppingService{
		parser: NewLineParser(units),
		canonicalizer: NewCanonicalizer(registry, categorizer, CanonicalizerConfig{
			EnableFuzzyMatching: config.EnableFuzzyMatching,
			FuzzyEditDistance:   config.FuzzyEditDistance,
		}, logger),
		aggregator:    NewAggregator(units, categorizer),
		units:         units,
		categorizer:   categorizer,
		minConfidence: minConfidence,
		logger:        logger,
	}
}

// Units exposes the service's unit vocabulary.
func (s *ShoppingService) Units() *UnitTable {
	return s.units
}

// ParseLine parses one raw ingredient line. Lines whose confidence falls
// below the configured threshold come back as failures so they surface to
// manual entry rather than flowing on silently.
func (s *ShoppingService) ParseLine(rawText string) (domain.ParsedIngredientLine, *domain.ParseFailure) {
	line, failure := s.parser.Parse(rawText)
	if failure != nil {
		return domain.ParsedIngredientLine{}, failure
	}
	if line.Confidence < s.minConfidence {
		return domain.ParsedIngredientLine{}, &domain.ParseFailure{
			RawText: rawText,
			Reason:  fmt.Sprintf("parse confidence %.2f below threshold %.2f", line.Confidence, s.minConfidence),
		}
	}
	return line, nil
}

// RenderLine produces the canonical text form of a parsed line.
func (s *ShoppingService) RenderLine(line domain.ParsedIngredientLine) string {
	return s.parser.Render(line)
}

// Canonicalize resolves ingredient text to its canonical identity.
func (s *ShoppingService) Canonicalize(ctx context.Context, ingredientText string) (*domain.CanonicalIngredient, error) {
	return s.canonicalizer.Canonicalize(ctx, ingredientText)
}

// BuildShoppingList parses, scales, canonicalizes, and aggregates every
// line of every planned meal. Individual malformed lines degrade to
// review-flagged entries; only a structurally empty plan or invalid
// servings is a hard failure.
func (s *ShoppingService) BuildShoppingList(ctx context.Context, meals []domain.PlannedMeal) (*domain.ShoppingList, error) {
	if len(meals) == 0 {
		return nil, domain.ErrEmptyPlan
	}

	var contributions []LineContribution
	for _, meal := range meals {
		if meal.BaseServings <= 0 || meal.TargetServings <= 0 {
			return nil, fmt.Errorf("%w: recipe %s", domain.ErrInvalidServings, meal.RecipeID)
		}
		for _, raw := range meal.RawLines {
			contrib, err := s.contributionFor(ctx, meal, raw)
			if err != nil {
				return nil, err
			}
			contributions = append(contributions, contrib)
		}
	}

	lines := s.aggregator.Aggregate(contributions)

	reviewCount := 0
	for _, line := range lines {
		if line.NeedsReview {
			reviewCount++
		}
	}
	return &domain.ShoppingList{
		Lines:            lines,
		TotalLines:       len(lines),
		NeedsReviewCount: reviewCount,
	}, nil
}

// contributionFor turns one raw line of one meal into an aggregation atom.
// Parse failures and low-confidence parses keep their raw text verbatim and
// are flagged, never dropped.
func (s *ShoppingService) contributionFor(ctx context.Context, meal domain.PlannedMeal, raw string) (LineContribution, error) {
	line, failure := s.ParseLine(raw)
	if failure != nil {
		s.logger.Debug("ingredient line needs manual review",
			zap.String("recipe", meal.RecipeID),
			zap.String("raw", failure.RawText),
			zap.String("reason", failure.Reason))
		return LineContribution{
			IngredientID: "unparsed:" + failure.RawText,
			DisplayName:  failure.RawText,
			Category:     domain.CategoryOther,
			Unit:         s.units.CountUnit(),
			Quantity:     domain.NewQuantity(1, 1),
			RecipeID:     meal.RecipeID,
			NeedsReview:  true,
		}, nil
	}

	scaled, err := ScaleLine(line, meal.BaseServings, meal.TargetServings)
	if err != nil {
		return LineContribution{}, err
	}

	canonical, err := s.canonicalizer.Canonicalize(ctx, scaled.IngredientText)
	if errors.Is(err, domain.ErrInvalidRequest) {
		// The parse passed but the name carries nothing canonicalizable
		// (punctuation-only, say). Route it to review like a parse failure
		// rather than failing the whole plan.
		s.logger.Debug("ingredient name needs manual review",
			zap.String("recipe", meal.RecipeID),
			zap.String("raw", raw))
		return LineContribution{
			IngredientID: "unparsed:" + raw,
			DisplayName:  raw,
			Category:     domain.CategoryOther,
			Unit:         s.units.CountUnit(),
			Quantity:     domain.NewQuantity(1, 1),
			RecipeID:     meal.RecipeID,
			NeedsReview:  true,
		}, nil
	}
	if err != nil {
		return LineContribution{}, fmt.Errorf("canonicalize %q: %w", scaled.IngredientText, err)
	}

	return LineContribution{
		IngredientID: canonical.ID,
		DisplayName:  canonical.DisplayName,
		Category:     canonical.Category,
		Unit:         scaled.Unit,
		Quantity:     scaled.Quantity,
		RecipeID:     meal.RecipeID,
		NeedsReview:  canonical.NeedsReview,
	}, nil
}
