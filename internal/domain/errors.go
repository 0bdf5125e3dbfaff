package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgSessionFinished = "session has finished"

	// Action errors
	ErrMsgUnknownAction  = "unknown action"
	ErrMsgActorNotFound  = "actor not found"
	ErrMsgActionRejected = "action rejected"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgOutcomeExists = "outcome already recorded"

	// Input errors
	ErrMsgInvalidInput   = "invalid input"
	ErrMsgInvalidBalance = "invalid balance table"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrSessionFinished = errors.New(ErrMsgSessionFinished)

	// Action errors
	ErrUnknownAction  = errors.New(ErrMsgUnknownAction)
	ErrActorNotFound  = errors.New(ErrMsgActorNotFound)
	ErrActionRejected = errors.New(ErrMsgActionRejected)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrOutcomeExists = errors.New(ErrMsgOutcomeExists)

	// Validation errors
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrInvalidBalance = errors.New(ErrMsgInvalidBalance)
)
