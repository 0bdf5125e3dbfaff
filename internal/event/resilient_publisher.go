package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var errShutdown = errors.New("publisher shut down")

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with a background retry queue. Events that
// keep failing, or that arrive while the queue is full, go to the dead letter file.
type ResilientPublisher struct {
	bus        Bus
	deadLetter *DeadLetterWriter
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher starts the retry worker. deadLetterPath is created if missing.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		deadLetter: dl,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// Publish implements Bus. Delivery failures are handled in the background,
// so the returned error is always nil.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the wrapped bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

// PublishWithRetry publishes once and queues the event for retry on failure.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	slog.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "session_id", event.SessionID(), "error", err)

	entry := retryEntry{event: event, attempts: 1, lastErr: err}

	select {
	case <-rp.shutdown:
		rp.deadLetterEntry(entry)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
	default:
		slog.Error(LogMsgRetryQueueFull, "event_type", event.Type)
		rp.deadLetterEntry(entry)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	for entry.attempts <= rp.maxRetries {
		timer := time.NewTimer(CalculateRetryDelay(rp.retryDelay, entry.attempts))
		select {
		case <-timer.C:
		case <-rp.shutdown:
			timer.Stop()
			rp.finalAttempt(entry)
			return
		}

		err := rp.bus.Publish(context.Background(), entry.event)
		entry.attempts++
		if err == nil {
			slog.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
			return
		}
		entry.lastErr = err
		slog.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempts", entry.attempts, "error", err)
	}

	slog.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
	rp.deadLetterEntry(entry)
}

// finalAttempt gives a queued event one immediate try during shutdown.
func (rp *ResilientPublisher) finalAttempt(entry retryEntry) {
	err := rp.bus.Publish(context.Background(), entry.event)
	entry.attempts++
	if err == nil {
		return
	}
	entry.lastErr = err
	slog.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type, "error", err)
	rp.deadLetterEntry(entry)
}

func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				slog.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) deadLetterEntry(entry retryEntry) {
	if rp.deadLetter == nil {
		return
	}
	lastErr := entry.lastErr
	if lastErr == nil {
		lastErr = errShutdown
	}
	if err := rp.deadLetter.Write(entry.event, entry.attempts, lastErr); err != nil {
		slog.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue and closes the
// dead letter file. It is safe to call more than once.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	var err error
	rp.shutdownOnce.Do(func() {
		close(rp.shutdown)

		done := make(chan struct{})
		go func() {
			rp.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			slog.Warn(LogMsgShutdownTimeout)
			err = ctx.Err()
			return
		}

		if rp.deadLetter != nil {
			err = rp.deadLetter.Close()
		}
	})
	return err
}
