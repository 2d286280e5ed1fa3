package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidMiningPower = "mining power must be positive"
	ErrMsgInvalidCatalog     = "invalid catalog"
	ErrMsgEmptyCatalog       = "catalog has no entries"

	// Session errors
	ErrMsgActionUnavailable = "action unavailable"
	ErrMsgSessionBusy       = "session is busy"
	ErrMsgSessionNotFound   = "session not found"
	ErrMsgUnknownAction     = "unknown action"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Configuration errors
	ErrInvalidMiningPower = errors.New(ErrMsgInvalidMiningPower)
	ErrInvalidCatalog     = errors.New(ErrMsgInvalidCatalog)
	ErrEmptyCatalog       = errors.New(ErrMsgEmptyCatalog)

	// Session errors
	ErrActionUnavailable = errors.New(ErrMsgActionUnavailable)
	ErrSessionBusy       = errors.New(ErrMsgSessionBusy)
	ErrSessionNotFound   = errors.New(ErrMsgSessionNotFound)
	ErrUnknownAction     = errors.New(ErrMsgUnknownAction)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
