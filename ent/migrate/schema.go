// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalRequestsColumns holds the columns for the "approval_requests" table.
	ApprovalRequestsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "action_index", Type: field.TypeInt},
		{Name: "command_preview", Type: field.TypeString, Size: 2147483647},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// ApprovalRequestsTable holds the schema information for the "approval_requests" table.
	ApprovalRequestsTable = &schema.Table{
		Name:       "approval_requests",
		Columns:    ApprovalRequestsColumns,
		PrimaryKey: []*schema.Column{ApprovalRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_requests_incidents_approvals",
				Columns:    []*schema.Column{ApprovalRequestsColumns[10]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrequest_decision_requested_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[5], ApprovalRequestsColumns[9]},
			},
			{
				Name:    "approvalrequest_incident_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[10]},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "incident_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt},
		{Name: "actor", Type: field.TypeString},
		{Name: "command", Type: field.TypeString, Size: 2147483647},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_incident_id_seq",
				Unique:  true,
				Columns: []*schema.Column{AuditEntriesColumns[1], AuditEntriesColumns[2]},
			},
			{
				Name:    "auditentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[7]},
			},
		},
	}
	// ExecutionRecordsColumns holds the columns for the "execution_records" table.
	ExecutionRecordsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "action_index", Type: field.TypeInt},
		{Name: "action_type", Type: field.TypeString},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "command", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "executing", "succeeded", "failed", "rolled_back", "skipped", "rejected"}, Default: "pending"},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stdout", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stderr", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "exit_code", Type: field.TypeInt, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "verification", Type: field.TypeJSON, Nullable: true},
		{Name: "rollback_of", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// ExecutionRecordsTable holds the schema information for the "execution_records" table.
	ExecutionRecordsTable = &schema.Table{
		Name:       "execution_records",
		Columns:    ExecutionRecordsColumns,
		PrimaryKey: []*schema.Column{ExecutionRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_records_incidents_executions",
				Columns:    []*schema.Column{ExecutionRecordsColumns[16]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionrecord_incident_id_action_index",
				Unique:  false,
				Columns: []*schema.Column{ExecutionRecordsColumns[16], ExecutionRecordsColumns[1]},
			},
			{
				Name:    "executionrecord_incident_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionRecordsColumns[16], ExecutionRecordsColumns[15]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "alert_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"pagerduty", "cloudwatch", "manual"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low"}},
		{Name: "service", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "alert", Type: field.TypeJSON},
		{Name: "alert_history", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"received", "deduplicated", "context_gathering", "analyzing", "analysis_failed", "analysis_empty", "awaiting_approval", "resuming", "executing", "verifying", "resolved", "failed", "abandoned"}, Default: "received"},
		{Name: "terminal_outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"resolved", "failed", "abandoned"}},
		{Name: "terminal_reason", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "next_action", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[10], IncidentsColumns[19]},
			},
			{
				Name:    "incident_fingerprint_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[1], IncidentsColumns[19]},
			},
			{
				Name:    "incident_state_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[10], IncidentsColumns[18]},
			},
			{
				Name:    "incident_service",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalRequestsTable,
		AuditEntriesTable,
		ExecutionRecordsTable,
		IncidentsTable,
	}
)

func init() {
	ApprovalRequestsTable.ForeignKeys[0].RefTable = IncidentsTable
	ExecutionRecordsTable.ForeignKeys[0].RefTable = IncidentsTable
}
