// Package messaging implements event bus functionality for the DNA Coaching Hub.
// It provides both in-memory and Redis-based event buses: in-memory for
// single-instance deployments and tests, Redis pub/sub when coaching tools
// on other instances need to react to completed assessments.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// InMemoryEventBus is a simple in-memory implementation of shared.EventBus.
// Suitable for single-instance deployments and testing.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	asyncMode   bool
	workerPool  chan struct{}
	logger      *slog.Logger
	closed      bool
}

// InMemoryEventBusConfig contains configuration for the in-memory bus.
type InMemoryEventBusConfig struct {
	// AsyncMode delivers events on worker goroutines instead of inline.
	AsyncMode bool

	// MaxWorkers bounds concurrent handler executions in async mode.
	MaxWorkers int

	// Logger for structured logging.
	Logger *slog.Logger
}

// NewInMemoryEventBus creates a new in-memory event bus.
func NewInMemoryEventBus(config InMemoryEventBusConfig) *InMemoryEventBus {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 8
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &InMemoryEventBus{
		handlers:   make(map[shared.EventType][]shared.EventHandler),
		asyncMode:  config.AsyncMode,
		workerPool: make(chan struct{}, config.MaxWorkers),
		logger:     config.Logger,
	}
}

// Subscribe registers a handler for an event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("messaging: handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errors.New("messaging: event bus is closed")
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("messaging: handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errors.New("messaging: event bus is closed")
	}

	b.allHandlers = append(b.allHandlers, handler)
	return nil
}

// Publish delivers an event to all matching handlers. In sync mode handler
// errors are logged and delivery continues; one bad subscriber never blocks
// the rest.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("messaging: event cannot be nil")
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return errors.New("messaging: event bus is closed")
	}
	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", "event_type", event.EventType())
		return nil
	}

	for _, handler := range handlers {
		if b.asyncMode {
			b.dispatchAsync(handler, event)
		} else {
			b.dispatch(handler, event)
		}
	}

	return nil
}

func (b *InMemoryEventBus) dispatch(handler shared.EventHandler, event shared.Event) {
	defer func() {
		if p := recover(); p != nil {
			b.logger.Error("handler panic recovered", "event_type", event.EventType(), "panic", p)
		}
	}()

	if err := handler(event); err != nil {
		b.logger.Error("handler error", "event_type", event.EventType(), "error", err)
	}
}

func (b *InMemoryEventBus) dispatchAsync(handler shared.EventHandler, event shared.Event) {
	b.workerPool <- struct{}{}
	go func() {
		defer func() { <-b.workerPool }()
		b.dispatch(handler, event)
	}()
}

// Close shuts down the bus. Pending async handlers finish on their own.
func (b *InMemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// REDIS EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// defaultChannelName is the Redis pub/sub channel for domain events.
const defaultChannelName = "dna-hub:events"

// RedisEventBus publishes events over Redis pub/sub so other instances can
// subscribe. Local handlers still run via the embedded in-memory bus, which
// keeps single-instance behavior identical with or without Redis.
type RedisEventBus struct {
	client  *redis.Client
	channel string
	local   *InMemoryEventBus
	logger  *slog.Logger

	mu     sync.Mutex
	sub    *redis.PubSub
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// RedisEventBusConfig contains configuration for the Redis event bus.
type RedisEventBusConfig struct {
	// ChannelName is the Redis channel for events (default: "dna-hub:events").
	ChannelName string

	// Local handles in-process subscriptions. Required.
	Local *InMemoryEventBus

	// Logger for structured logging.
	Logger *slog.Logger
}

// NewRedisEventBus creates a Redis-backed event bus.
func NewRedisEventBus(client *redis.Client, config RedisEventBusConfig) (*RedisEventBus, error) {
	if client == nil {
		return nil, errors.New("messaging: redis client is required")
	}
	if config.Local == nil {
		return nil, errors.New("messaging: local event bus is required")
	}
	if config.ChannelName == "" {
		config.ChannelName = defaultChannelName
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &RedisEventBus{
		client:  client,
		channel: config.ChannelName,
		local:   config.Local,
		logger:  config.Logger,
	}, nil
}

// Subscribe registers a local handler for an event type.
func (b *RedisEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	return b.local.Subscribe(eventType, handler)
}

// SubscribeAll registers a local handler for all events.
func (b *RedisEventBus) SubscribeAll(handler shared.EventHandler) error {
	return b.local.SubscribeAll(handler)
}

// Publish delivers the event locally and broadcasts its envelope to the
// Redis channel. A Redis failure is logged, not returned: local delivery
// already happened and events are best-effort notifications.
func (b *RedisEventBus) Publish(event shared.Event) error {
	if err := b.local.Publish(event); err != nil {
		return err
	}

	envelope := shared.EventEnvelope{
		Type:        event.EventType(),
		AggregateID: event.AggregateID(),
		Timestamp:   event.OccurredAt(),
		Version:     1,
	}
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("messaging: failed to marshal event payload: %w", err)
	}
	envelope.Payload = payload

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("messaging: failed to marshal event envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		b.logger.Warn("failed to broadcast event", "event_type", event.EventType(), "error", err)
	}

	return nil
}

// Listen consumes envelopes broadcast by other instances and replays them
// into the local bus. Call once; stops when Close is called.
func (b *RedisEventBus) Listen() error {
	b.mu.Lock()
	if b.sub != nil {
		b.mu.Unlock()
		return errors.New("messaging: already listening")
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.sub = b.client.Subscribe(ctx, b.channel)
	sub := b.sub
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			msg, err := sub.ReceiveMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				b.logger.Warn("pubsub receive failed", "error", err)
				continue
			}

			var envelope shared.EventEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				b.logger.Warn("malformed event envelope", "error", err)
				continue
			}

			if err := b.local.Publish(remoteEvent{envelope: envelope}); err != nil {
				b.logger.Error("failed to replay remote event", "event_type", envelope.Type, "error", err)
			}
		}
	}()

	return nil
}

// Close stops the listener and closes the subscription.
func (b *RedisEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		b.cancel()
	}
	if b.sub != nil {
		if err := b.sub.Close(); err != nil {
			return err
		}
		b.sub = nil
	}
	b.wg.Wait()
	return b.local.Close()
}

// remoteEvent adapts a received envelope back into a shared.Event.
type remoteEvent struct {
	envelope shared.EventEnvelope
}

func (e remoteEvent) EventType() shared.EventType { return e.envelope.Type }
func (e remoteEvent) OccurredAt() time.Time       { return e.envelope.Timestamp }
func (e remoteEvent) AggregateID() string         { return e.envelope.AggregateID }

func (e remoteEvent) Payload() map[string]interface{} {
	var payload map[string]interface{}
	if err := json.Unmarshal(e.envelope.Payload, &payload); err != nil {
		return map[string]interface{}{}
	}
	return payload
}
