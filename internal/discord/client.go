package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/session"
)

// APIError is a non-2xx response from the game server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%sstatus %d", apiErrorPrefix, e.Status)
	}
	return apiErrorPrefix + e.Message
}

// APIClient talks to the Whine Time HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	maxRetries int
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: apiRequestTimeout},
		APIKey:     apiKey,
		maxRetries: apiMaxRetries,
		retryDelay: apiRetryDelay,
	}
}

// doRequest sends body as JSON and decodes a 2xx response into out.
// Transport failures and 5xx responses are retried with exponential backoff.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(headerAPIKey, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = decodeAPIError(resp)
			slog.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt)
			continue
		}
		return decodeResponse(resp, out)
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads the {"error": "..."} body and closes it
func decodeAPIError(resp *http.Response) error {
	defer resp.Body.Close()
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}

type createSessionBody struct {
	PlayerName string `json:"player_name,omitempty"`
	Profile    string `json:"profile,omitempty"`
}

// CreateSession starts a new game
func (c *APIClient) CreateSession(ctx context.Context, playerName, profile string) (*session.Summary, error) {
	var sum session.Summary
	err := c.doRequest(ctx, http.MethodPost, pathSessions, createSessionBody{PlayerName: playerName, Profile: profile}, &sum)
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

// GetSession returns the current snapshot of a game
func (c *APIClient) GetSession(ctx context.Context, id string) (*game.Snapshot, error) {
	var snap game.Snapshot
	if err := c.doRequest(ctx, http.MethodGet, sessionPath(id, ""), nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Act applies one player action
func (c *APIClient) Act(ctx context.Context, id string, action session.Action) (*session.ActionResult, error) {
	var res session.ActionResult
	if err := c.doRequest(ctx, http.MethodPost, sessionPath(id, "/actions"), action, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// EndSession abandons a game and returns its recorded outcome
func (c *APIClient) EndSession(ctx context.Context, id string) (*domain.Outcome, error) {
	var o domain.Outcome
	if err := c.doRequest(ctx, http.MethodDelete, sessionPath(id, ""), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOutcome returns the recorded result of a finished game
func (c *APIClient) GetOutcome(ctx context.Context, id string) (*domain.Outcome, error) {
	var o domain.Outcome
	if err := c.doRequest(ctx, http.MethodGet, sessionPath(id, "/outcome"), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Leaderboard returns the top finished games
func (c *APIClient) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var entries []domain.LeaderboardEntry
	if err := c.doRequest(ctx, http.MethodGet, pathLeaderboard+"?"+q.Encode(), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Healthz reports whether the API answers its liveness probe
func (c *APIClient) Healthz(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, pathHealthz, nil, nil)
}

func sessionPath(id, suffix string) string {
	return pathSessions + "/" + url.PathEscape(id) + suffix
}
