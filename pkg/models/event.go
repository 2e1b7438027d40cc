package models

import (
	"encoding/json"
	"time"
)

// StoredEvent is one row of the events table, the persistent backlog behind
// the live stream. The table is written with raw SQL by the event publisher;
// it has no ent entity. ID is the replay cursor: subscribers that reconnect
// fetch everything with ID greater than the last id they saw.
type StoredEvent struct {
	ID         int64           `json:"id"`
	IncidentID string          `json:"incident_id,omitempty"`
	Channel    string          `json:"channel"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EventsResponse contains events replayed after a given cursor
type EventsResponse struct {
	Events []StoredEvent `json:"events"`
}
