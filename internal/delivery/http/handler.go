package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrycart/backend/internal/domain"
	"github.com/pantrycart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	shopping *usecase.ShoppingService
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(shopping *usecase.ShoppingService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{shopping: shopping, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pantrycart-backend",
		"version": "1.0.0",
	})
}

type parseRequest struct {
	Text string `json:"text" binding:"required"`
}

type parseResponse struct {
	Line     *domain.ParsedIngredientLine `json:"line,omitempty"`
	Failure  *domain.ParseFailure         `json:"failure,omitempty"`
	Rendered string                       `json:"rendered,omitempty"`
}

// ParseLine parses a single raw ingredient line into its structured form.
// A line the parser cannot decompose is a 200 with a failure payload, not
// an error status: the caller decides how to surface it.
func (h *Handler) ParseLine(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	line, failure := h.shopping.ParseLine(req.Text)
	if failure != nil {
		c.JSON(http.StatusOK, parseResponse{Failure: failure})
		return
	}
	c.JSON(http.StatusOK, parseResponse{
		Line:     &line,
		Rendered: h.shopping.RenderLine(line),
	})
}

type parseBatchRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// ParseBatch parses many raw lines in one call, preserving input order.
func (h *Handler) ParseBatch(c *gin.Context) {
	var req parseBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines is required"})
		return
	}
	if len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines must not be empty"})
		return
	}

	results := make([]parseResponse, 0, len(req.Lines))
	for _, raw := range req.Lines {
		line, failure := h.shopping.ParseLine(raw)
		if failure != nil {
			results = append(results, parseResponse{Failure: failure})
			continue
		}
		results = append(results, parseResponse{
			Line:     &line,
			Rendered: h.shopping.RenderLine(line),
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type canonicalizeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CanonicalizeIngredient resolves free-form ingredient text to its
// canonical registry entry, creating a review-flagged one when nothing
// matches.
func (h *Handler) CanonicalizeIngredient(c *gin.Context) {
	var req canonicalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	ingredient, err := h.shopping.Canonicalize(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
			return
		}
		h.logger.Error("canonicalize failed", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingredient registry unavailable"})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

type shoppingListRequest struct {
	Meals []domain.PlannedMeal `json:"meals" binding:"required"`
}

// BuildShoppingList aggregates a whole meal plan into one shopping list.
func (h *Handler) BuildShoppingList(c *gin.Context) {
	var req shoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meals is required"})
		return
	}

	list, err := h.shopping.BuildShoppingList(c.Request.Context(), req.Meals)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "meal plan must contain at least one meal"})
		case errors.Is(err, domain.ErrInvalidServings):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrRegistryUnavailable):
			h.logger.Error("shopping list build failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingredient registry unavailable"})
		default:
			h.logger.Error("shopping list build failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build shopping list"})
		}
		return
	}
	c.JSON(http.StatusOK, list)
}
