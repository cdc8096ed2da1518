package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the application.
const (
	// EventTypeScoreRefresh asks the background refresher to recompute a
	// task's cached score after an engagement change.
	EventTypeScoreRefresh = "score_refresh"
)

// Event represents an application event carrying a typed JSON payload.
// It lets services announce that something happened without a direct
// dependency on whichever component reacts to it.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates what happened (e.g., EventTypeScoreRefresh)
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ScoreRefreshPayload is the payload carried by EventTypeScoreRefresh events.
// The user identifies whose profile the refreshed score is computed against.
type ScoreRefreshPayload struct {
	TaskID uuid.UUID `json:"task_id"`
	UserID uuid.UUID `json:"user_id"`
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *Event) error
}
