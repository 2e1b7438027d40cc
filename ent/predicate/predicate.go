// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalRequest is the predicate function for approvalrequest builders.
type ApprovalRequest func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// ExecutionRecord is the predicate function for executionrecord builders.
type ExecutionRecord func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)
