package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/WhineTime/internal/handler"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
		gone     bool
	}{
		{
			name:     "session not found",
			err:      &APIError{Status: http.StatusNotFound, Message: handler.ErrMsgSessionNotFound},
			expected: MsgNoGame,
			gone:     true,
		},
		{
			name:     "actor not found keeps the game",
			err:      &APIError{Status: http.StatusNotFound, Message: handler.ErrMsgActorNotFound},
			expected: MsgActorNotFound,
		},
		{
			name:     "finished game",
			err:      &APIError{Status: http.StatusConflict, Message: handler.ErrMsgSessionFinished},
			expected: MsgGameOver,
			gone:     true,
		},
		{
			name:     "rejection keeps the reason",
			err:      &APIError{Status: http.StatusUnprocessableEntity, Message: "action rejected: work: on leave"},
			expected: MsgActionRejected + "\nwork: on leave",
		},
		{
			name:     "bare rejection",
			err:      &APIError{Status: http.StatusUnprocessableEntity, Message: "action rejected"},
			expected: MsgActionRejected,
		},
		{
			name:     "validation detail",
			err:      &APIError{Status: http.StatusBadRequest, Message: "Validation failed"},
			expected: MsgInvalidInput + "\nValidation failed",
		},
		{
			name:     "generic bad request",
			err:      &APIError{Status: http.StatusBadRequest, Message: handler.ErrMsgInvalidInput},
			expected: MsgInvalidInput,
		},
		{
			name:     "unavailable",
			err:      fmt.Errorf("max retries exceeded: %w", &APIError{Status: http.StatusServiceUnavailable}),
			expected: MsgServerDown,
		},
		{
			name:     "transport error",
			err:      errors.New("dial tcp: connection refused"),
			expected: MsgServerDown,
		},
		{
			name:     "other status",
			err:      &APIError{Status: http.StatusTeapot, Message: "short and stout"},
			expected: "❌ short and stout",
		},
		{
			name:     "other status without message",
			err:      &APIError{Status: http.StatusTeapot},
			expected: MsgGenericError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.err))
			assert.Equal(t, tt.gone, sessionGone(tt.err))
		})
	}
}
