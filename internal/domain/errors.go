package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgUnknownEffect     = "unknown effect"
	ErrMsgUnknownIngredient = "unknown ingredient"
	ErrMsgUnknownProduct    = "unknown product"
	ErrMsgUnknownQuality    = "unknown quality"
	ErrMsgUnknownAdditive   = "unknown additive"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgNothingToSave  = "mix has no ingredients to save"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Only parsing boundaries and the recipe book return these; the reaction engine and
// calculators are total and never fail.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrUnknownEffect     = errors.New(ErrMsgUnknownEffect)
	ErrUnknownIngredient = errors.New(ErrMsgUnknownIngredient)
	ErrUnknownProduct    = errors.New(ErrMsgUnknownProduct)
	ErrUnknownQuality    = errors.New(ErrMsgUnknownQuality)
	ErrUnknownAdditive   = errors.New(ErrMsgUnknownAdditive)

	// Recipe errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrNothingToSave  = errors.New(ErrMsgNothingToSave)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
