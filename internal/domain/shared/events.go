// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"encoding/json"
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types - these drive the event-driven architecture.
// Each event represents something significant that happened in the domain.
const (
	// Assessment events
	EventAssessmentCompleted EventType = "assessment.completed"
	EventProfileSuperseded   EventType = "assessment.profile_superseded"
	EventRetakeDenied        EventType = "assessment.retake_denied"

	// System events
	EventCatalogLoaded EventType = "system.catalog_loaded"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	AggregateId   string    `json:"aggregate_id"`
	Version       int       `json:"version"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
		Version:     1,
	}
}

// WithCorrelationID sets the correlation ID for tracing.
func (e BaseEvent) WithCorrelationID(id string) BaseEvent {
	e.CorrelationID = id
	return e
}

// ══════════════════════════════════════════════════════════════════════════════
// Assessment Events
// ══════════════════════════════════════════════════════════════════════════════

// AssessmentCompletedEvent is emitted when a pipeline run reaches Complete
// and its Result has been persisted.
type AssessmentCompletedEvent struct {
	BaseEvent
	UserID              string `json:"user_id"`
	ResultID            string `json:"result_id"`
	DefaultType         string `json:"default_type"`
	Subtype             string `json:"subtype"`
	AwarenessPercentage int    `json:"awareness_percentage"`
}

// Payload implements Event interface.
func (e AssessmentCompletedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":              e.UserID,
		"result_id":            e.ResultID,
		"default_type":         e.DefaultType,
		"subtype":              e.Subtype,
		"awareness_percentage": e.AwarenessPercentage,
	}
}

// NewAssessmentCompletedEvent creates a new AssessmentCompletedEvent.
func NewAssessmentCompletedEvent(userID, resultID, defaultType, subtype string, awareness int) AssessmentCompletedEvent {
	return AssessmentCompletedEvent{
		BaseEvent:           NewBaseEvent(EventAssessmentCompleted, userID),
		UserID:              userID,
		ResultID:            resultID,
		DefaultType:         defaultType,
		Subtype:             subtype,
		AwarenessPercentage: awareness,
	}
}

// ProfileSupersededEvent is emitted when a new Result replaces a previous one
// for the same user. Results are never mutated, only superseded.
type ProfileSupersededEvent struct {
	BaseEvent
	UserID      string `json:"user_id"`
	OldResultID string `json:"old_result_id"`
	NewResultID string `json:"new_result_id"`
}

// Payload implements Event interface.
func (e ProfileSupersededEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":       e.UserID,
		"old_result_id": e.OldResultID,
		"new_result_id": e.NewResultID,
	}
}

// NewProfileSupersededEvent creates a new ProfileSupersededEvent.
func NewProfileSupersededEvent(userID, oldResultID, newResultID string) ProfileSupersededEvent {
	return ProfileSupersededEvent{
		BaseEvent:   NewBaseEvent(EventProfileSuperseded, userID),
		UserID:      userID,
		OldResultID: oldResultID,
		NewResultID: newResultID,
	}
}

// RetakeDeniedEvent is emitted when a submission is rejected by the
// eligibility gate. Useful for support and funnel analytics.
type RetakeDeniedEvent struct {
	BaseEvent
	UserID         string    `json:"user_id"`
	NextRetakeDate time.Time `json:"next_retake_date"`
}

// Payload implements Event interface.
func (e RetakeDeniedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":          e.UserID,
		"next_retake_date": e.NextRetakeDate.Format(time.RFC3339),
	}
}

// NewRetakeDeniedEvent creates a new RetakeDeniedEvent.
func NewRetakeDeniedEvent(userID string, nextRetakeDate time.Time) RetakeDeniedEvent {
	return RetakeDeniedEvent{
		BaseEvent:      NewBaseEvent(EventRetakeDenied, userID),
		UserID:         userID,
		NextRetakeDate: nextRetakeDate,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// Event Envelope (for serialization and transport)
// ══════════════════════════════════════════════════════════════════════════════

// EventEnvelope wraps an event for transport/storage.
type EventEnvelope struct {
	ID            string          `json:"id"`
	Type          EventType       `json:"type"`
	AggregateID   string          `json:"aggregate_id"`
	Timestamp     time.Time       `json:"timestamp"`
	Version       int             `json:"version"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
