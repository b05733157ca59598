package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgIncompatibleUnit = "incompatible unit conversion"
	ErrMsgUnknownUnit      = "unknown unit"

	ErrMsgRecipeNotFound     = "recipe not found"
	ErrMsgIngredientNotFound = "ingredient not found"
	ErrMsgMappingNotFound    = "mapping not found"

	ErrMsgInvalidInput = "invalid input"

	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// Conversion errors. ErrIncompatibleUnit marks a cross-dimension
	// pairing (e.g. kg -> l); the costing layer degrades the line to zero
	// cost instead of failing the whole recipe.
	ErrIncompatibleUnit = errors.New(ErrMsgIncompatibleUnit)
	ErrUnknownUnit      = errors.New(ErrMsgUnknownUnit)

	// Lookup errors
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrMappingNotFound    = errors.New(ErrMsgMappingNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
