package handler

// Client facing error messages. Internal error details are never returned.
const (
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidLimit        = "Invalid limit parameter"
	ErrMsgMissingSessionID    = "Missing session id"
	ErrMsgSessionNotFound     = "Session not found"
	ErrMsgSessionFinished     = "Session has already finished"
	ErrMsgUnknownAction       = "Unknown action"
	ErrMsgActorNotFound       = "Actor not found"
	ErrMsgInvalidInput        = "Invalid request. Please check your inputs."
	ErrMsgOutcomeExists       = "Outcome already recorded"
	ErrMsgServerError         = "Server error occurred. Please try again."
	ErrMsgUnavailable         = "Server is temporarily unavailable. Please try again later."
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgInvalidFormat       = "Invalid request format"
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// Validation messages keyed by validator tag
const (
	ValidationMsgRequired    = "This field is required"
	ValidationMsgAction      = "Unknown action"
	ValidationMsgProfile     = "Unknown balance profile"
	ValidationMsgGender      = "Must be female or male"
	ValidationMsgInvalidChar = "Contains invalid characters"
	ValidationMsgMaxFormat   = "Must be at most %s"
	ValidationMsgMinFormat   = "Must be at least %s"
	ValidationMsgInvalid     = "Invalid value"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Query parameters
const (
	QueryParamLimit = "limit"
	URLParamID      = "id"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgServiceError     = "Session service error"
	LogMsgSessionCreated   = "Session created via API"
	LogMsgSessionEnded     = "Session ended via API"
	LogMsgActionApplied    = "Action applied"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
)
