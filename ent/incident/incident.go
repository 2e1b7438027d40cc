// Code generated by ent, DO NOT EDIT.

package incident

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the incident type in the database.
	Label = "incident"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "incident_id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldAlertID holds the string denoting the alert_id field in the database.
	FieldAlertID = "alert_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldService holds the string denoting the service field in the database.
	FieldService = "service"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAlert holds the string denoting the alert field in the database.
	FieldAlert = "alert"
	// FieldAlertHistory holds the string denoting the alert_history field in the database.
	FieldAlertHistory = "alert_history"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldTerminalOutcome holds the string denoting the terminal_outcome field in the database.
	FieldTerminalOutcome = "terminal_outcome"
	// FieldTerminalReason holds the string denoting the terminal_reason field in the database.
	FieldTerminalReason = "terminal_reason"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldNextAction holds the string denoting the next_action field in the database.
	FieldNextAction = "next_action"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// EdgeApprovals holds the string denoting the approvals edge name in mutations.
	EdgeApprovals = "approvals"
	// ExecutionRecordFieldID holds the string denoting the ID field of the ExecutionRecord.
	ExecutionRecordFieldID = "execution_id"
	// ApprovalRequestFieldID holds the string denoting the ID field of the ApprovalRequest.
	ApprovalRequestFieldID = "approval_id"
	// Table holds the table name of the incident in the database.
	Table = "incidents"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "execution_records"
	// ExecutionsInverseTable is the table name for the ExecutionRecord entity.
	// It exists in this package in order to avoid circular dependency with the "executionrecord" package.
	ExecutionsInverseTable = "execution_records"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "incident_id"
	// ApprovalsTable is the table that holds the approvals relation/edge.
	ApprovalsTable = "approval_requests"
	// ApprovalsInverseTable is the table name for the ApprovalRequest entity.
	// It exists in this package in order to avoid circular dependency with the "approvalrequest" package.
	ApprovalsInverseTable = "approval_requests"
	// ApprovalsColumn is the table column denoting the approvals relation/edge.
	ApprovalsColumn = "incident_id"
)

// Columns holds all SQL columns for incident fields.
var Columns = []string{
	FieldID,
	FieldFingerprint,
	FieldAlertID,
	FieldSource,
	FieldSeverity,
	FieldService,
	FieldTitle,
	FieldDescription,
	FieldAlert,
	FieldAlertHistory,
	FieldState,
	FieldTerminalOutcome,
	FieldTerminalReason,
	FieldContext,
	FieldPlan,
	FieldNextAction,
	FieldErrorMessage,
	FieldWorkerID,
	FieldHeartbeatAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNextAction holds the default value on creation for the "next_action" field.
	DefaultNextAction int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourcePagerduty  Source = "pagerduty"
	SourceCloudwatch Source = "cloudwatch"
	SourceManual     Source = "manual"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourcePagerduty, SourceCloudwatch, SourceManual:
		return nil
	default:
		return fmt.Errorf("incident: invalid enum value for source field: %q", s)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return nil
	default:
		return fmt.Errorf("incident: invalid enum value for severity field: %q", s)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateReceived is the default value of the State enum.
const DefaultState = StateReceived

// State values.
const (
	StateReceived         State = "received"
	StateDeduplicated     State = "deduplicated"
	StateContextGathering State = "context_gathering"
	StateAnalyzing        State = "analyzing"
	StateAnalysisFailed   State = "analysis_failed"
	StateAnalysisEmpty    State = "analysis_empty"
	StateAwaitingApproval State = "awaiting_approval"
	StateResuming         State = "resuming"
	StateExecuting        State = "executing"
	StateVerifying        State = "verifying"
	StateResolved         State = "resolved"
	StateFailed           State = "failed"
	StateAbandoned        State = "abandoned"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateReceived, StateDeduplicated, StateContextGathering, StateAnalyzing, StateAnalysisFailed, StateAnalysisEmpty, StateAwaitingApproval, StateResuming, StateExecuting, StateVerifying, StateResolved, StateFailed, StateAbandoned:
		return nil
	default:
		return fmt.Errorf("incident: invalid enum value for state field: %q", s)
	}
}

// TerminalOutcome defines the type for the "terminal_outcome" enum field.
type TerminalOutcome string

// TerminalOutcome values.
const (
	TerminalOutcomeResolved  TerminalOutcome = "resolved"
	TerminalOutcomeFailed    TerminalOutcome = "failed"
	TerminalOutcomeAbandoned TerminalOutcome = "abandoned"
)

func (to TerminalOutcome) String() string {
	return string(to)
}

// TerminalOutcomeValidator is a validator for the "terminal_outcome" field enum values. It is called by the builders before save.
func TerminalOutcomeValidator(to TerminalOutcome) error {
	switch to {
	case TerminalOutcomeResolved, TerminalOutcomeFailed, TerminalOutcomeAbandoned:
		return nil
	default:
		return fmt.Errorf("incident: invalid enum value for terminal_outcome field: %q", to)
	}
}

// OrderOption defines the ordering options for the Incident queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByAlertID orders the results by the alert_id field.
func ByAlertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByService orders the results by the service field.
func ByService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldService, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByTerminalOutcome orders the results by the terminal_outcome field.
func ByTerminalOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminalOutcome, opts...).ToFunc()
}

// ByTerminalReason orders the results by the terminal_reason field.
func ByTerminalReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminalReason, opts...).ToFunc()
}

// ByNextAction orders the results by the next_action field.
func ByNextAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAction, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByApprovalsCount orders the results by approvals count.
func ByApprovalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApprovalsStep(), opts...)
	}
}

// ByApprovals orders the results by approvals terms.
func ByApprovals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApprovalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, ExecutionRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
func newApprovalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApprovalsInverseTable, ApprovalRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
	)
}
