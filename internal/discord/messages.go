package discord

import (
	"errors"
	"net/http"
	"strings"

	"github.com/osse101/WhineTime/internal/handler"
)

// Friendly message constants for Discord responses
const (
	MsgNoGame           = "🍼 **No game running**\nStart one with `/newgame`."
	MsgGameOver         = "🏁 **This game is over**\nStart a new one with `/newgame`."
	MsgActionRejected   = "🙅 **Can't do that right now**"
	MsgActorNotFound    = "🔍 **Nobody by that name in your household**"
	MsgInvalidInput     = "❓ **That didn't look right**\nCheck the options and try again."
	MsgServerDown       = "🔌 **Game server unavailable**\nTry again in a moment."
	MsgLeaderboardEmpty = "Nobody has finished a game yet."
	MsgGenericError     = "❌ Something went wrong."
)

// formatFriendlyError maps API failures onto messages players can act on
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgServerDown
	}

	switch apiErr.Status {
	case http.StatusNotFound:
		if apiErr.Message == handler.ErrMsgActorNotFound {
			return MsgActorNotFound
		}
		return MsgNoGame
	case http.StatusConflict:
		return MsgGameOver
	case http.StatusUnprocessableEntity:
		// "action rejected: <reason>"
		if _, reason, ok := strings.Cut(apiErr.Message, ": "); ok && reason != "" {
			return MsgActionRejected + "\n" + reason
		}
		return MsgActionRejected
	case http.StatusBadRequest:
		if apiErr.Message != "" && apiErr.Message != handler.ErrMsgInvalidInput {
			return MsgInvalidInput + "\n" + apiErr.Message
		}
		return MsgInvalidInput
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return MsgServerDown
	default:
		if apiErr.Message != "" {
			return "❌ " + apiErr.Message
		}
		return MsgGenericError
	}
}

// sessionGone reports whether the player's game no longer accepts commands
func sessionGone(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return (apiErr.Status == http.StatusNotFound && apiErr.Message != handler.ErrMsgActorNotFound) ||
		apiErr.Status == http.StatusConflict
}
