package domain

import "errors"

var (
	// ErrIncompatibleDimension is returned when a conversion is attempted
	// between units of different dimensions (e.g. volume to count)
	ErrIncompatibleDimension = errors.New("units belong to incompatible dimensions")

	// ErrUnknownUnit is returned when a unit alias cannot be resolved
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrEmptyPlan is returned when a shopping list is requested for a plan
	// with no meals
	ErrEmptyPlan = errors.New("meal plan contains no meals")

	// ErrInvalidServings is returned when a servings count is zero or negative
	ErrInvalidServings = errors.New("servings must be positive")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrIngredientNotFound is returned by registry lookups that miss
	ErrIngredientNotFound = errors.New("ingredient not found in registry")

	// ErrRegistryUnavailable is returned when the ingredient registry
	// backend cannot be reached
	ErrRegistryUnavailable = errors.New("ingredient registry unavailable")
)
