package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "STAGE_PROPAGATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published by the forge.
const (
	TypeStagePropagated = "STAGE_PROPAGATED"
	TypeStageCompleted  = "STAGE_COMPLETED"
	TypeUserRegistered  = "USER_REGISTERED"
)

// NewStagePropagated builds the event emitted when an edit turn propagated
// content into other stages.
func NewStagePropagated(userID string, sourceStage int, affected []int) Event {
	return BaseEvent{
		Type: TypeStagePropagated,
		Data: map[string]interface{}{
			"user_id":         userID,
			"source_stage":    sourceStage,
			"affected_stages": affected,
		},
		OccurredAt: time.Now(),
	}
}
