// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Channel model:
//
//	incidents       — fleet-wide feed: incident lifecycle mirrors and
//	                  circuit breaker status. The incident list page
//	                  subscribes here.
//	incident:<id>   — everything about one incident: lifecycle, plan,
//	                  executions, approvals. The incident detail page
//	                  subscribes here.
//
// Every event on an incident channel is persisted to the events table
// before NOTIFY fires; the row id is injected into the NOTIFY payload as
// db_event_id and doubles as the replay cursor. A reconnecting client sends
// {action: "catchup", last_event_id: N} and receives every persisted event
// with id > N in order. Lifecycle and approval events are additionally
// mirrored to the incidents channel without a second row — the mirror is
// transient, the incident-channel row is the durable copy.
//
// NOTIFY payloads are capped just under PostgreSQL's 8000-byte limit.
// Oversized payloads are replaced by a truncation envelope {type,
// incident_id, truncated: true, db_event_id}; subscribers refetch the full
// row over the REST events endpoint.
package events

// Persistent incident-channel event types (stored in DB + NOTIFY).
const (
	// Incident lifecycle — created once at ingress, then one status event
	// per state machine transition (including the terminal one).
	EventTypeIncidentCreated = "incident.created"
	EventTypeIncidentStatus  = "incident.status"

	// Analysis outcome — one event when a resolution plan is accepted.
	EventTypePlanCreated = "plan.created"

	// Execution lifecycle — started when the executor issues a command,
	// completed when the record settles. Skipped actions publish only the
	// completed event, with skip_reason set.
	EventTypeExecutionStarted   = "execution.started"
	EventTypeExecutionCompleted = "execution.completed"

	// Approval gate
	EventTypeApprovalRequested = "approval.requested"
	EventTypeApprovalDecided   = "approval.decided"
)

// Global-channel event types (stored in DB with an empty incident_id).
const (
	// Circuit breaker state changes — fleet-wide, not scoped to an incident.
	EventTypeBreakerStatus = "breaker.status"
)

// GlobalIncidentsChannel carries incident lifecycle mirrors, approval
// activity, and breaker status for the incident list page.
const GlobalIncidentsChannel = "incidents"

// IncidentChannel returns the channel name for a specific incident's events.
// Format: "incident:{incident_id}"
func IncidentChannel(incidentID string) string {
	return "incident:" + incidentID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "incident:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
