package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// SSEEvent is one game event read from the stream
type SSEEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	GameHours float64         `json:"game_hours,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SSEEventHandler handles a specific event type
type SSEEventHandler func(event SSEEvent) error

// SSEClient follows the API's event stream and reconnects with backoff
type SSEClient struct {
	baseURL    string
	apiKey     string
	eventTypes []string
	handlers   map[string][]SSEEventHandler
	httpClient *http.Client
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	connected  bool
}

// NewSSEClient creates a client subscribed to eventTypes. No types means all.
func NewSSEClient(baseURL, apiKey string, eventTypes []string) *SSEClient {
	return &SSEClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		eventTypes: eventTypes,
		handlers:   make(map[string][]SSEEventHandler),
		// streams stay open, so no client timeout
		httpClient: &http.Client{},
		shutdown:   make(chan struct{}),
	}
}

// OnEvent registers a handler for a specific event type
func (c *SSEClient) OnEvent(eventType string, handler SSEEventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start begins the SSE connection with auto-reconnect
func (c *SSEClient) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.connectLoop(ctx)
}

// Stop shuts the client down and waits for the loop to exit
func (c *SSEClient) Stop() {
	c.stopOnce.Do(func() { close(c.shutdown) })
	c.wg.Wait()
}

// IsConnected returns true if the client is connected
func (c *SSEClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *SSEClient) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *SSEClient) connectLoop(ctx context.Context) {
	defer c.wg.Done()

	// cancel the in-flight request on Stop
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	backoff := sseInitialBackoff
	failures := 0
	for {
		if ctx.Err() != nil {
			slog.Info(sseLogMsgClientStopped)
			return
		}

		connectedAt := time.Now()
		err := c.connect(ctx)
		c.setConnected(false)
		if ctx.Err() != nil {
			slog.Info(sseLogMsgClientStopped)
			return
		}

		// a stream that stayed up for a while earns a fresh backoff
		if time.Since(connectedAt) > sseMaxBackoff {
			backoff = sseInitialBackoff
			failures = 0
		}
		failures++
		slog.Warn(sseLogMsgConnectionFailed, "error", err, "backoff", backoff, "consecutive_failures", failures)

		select {
		case <-time.After(backoff):
			backoff = min(time.Duration(float64(backoff)*sseBackoffMultiplier), sseMaxBackoff)
		case <-ctx.Done():
			slog.Info(sseLogMsgClientStopped)
			return
		}
	}
}

func (c *SSEClient) streamURL() string {
	u := c.baseURL + pathEvents
	if len(c.eventTypes) > 0 {
		u += "?types=" + url.QueryEscape(strings.Join(c.eventTypes, ","))
	}
	return u
}

func (c *SSEClient) connect(ctx context.Context) error {
	u := c.streamURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	c.setConnected(true)
	slog.Info(sseLogMsgClientConnected, "url", u)
	return c.readEvents(resp.Body)
}

// readEvents parses the stream until it ends. A blank line ends an event.
func (c *SSEClient) readEvents(body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseBufferSize), sseBufferSize)

	var eventID, eventType, data string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if data != "" {
				c.dispatchEvent(eventID, eventType, data)
			}
			eventID, eventType, data = "", "", ""
			continue
		}

		switch {
		case strings.HasPrefix(line, "id: "):
			eventID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return errors.New("stream closed")
}

func (c *SSEClient) dispatchEvent(id, eventType, data string) {
	if eventType == sseEventKeepalive || eventType == sseEventConnected {
		return
	}

	var event SSEEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err)
		return
	}
	if eventType != "" {
		event.Type = eventType
	}
	if id != "" {
		event.ID = id
	}

	c.mu.RLock()
	handlers := c.handlers[event.Type]
	c.mu.RUnlock()

	for _, h := range handlers {
		if err := h(event); err != nil {
			slog.Error(sseLogMsgHandlerError, "event_type", event.Type, "error", err)
		}
	}
}
