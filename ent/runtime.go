// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/ent/auditentry"
	"github.com/vigilops/vigil/ent/executionrecord"
	"github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalrequestFields := schema.ApprovalRequest{}.Fields()
	_ = approvalrequestFields
	// approvalrequestDescRequestedAt is the schema descriptor for requested_at field.
	approvalrequestDescRequestedAt := approvalrequestFields[10].Descriptor()
	// approvalrequest.DefaultRequestedAt holds the default value on creation for the requested_at field.
	approvalrequest.DefaultRequestedAt = approvalrequestDescRequestedAt.Default.(func() time.Time)
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[7].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	executionrecordFields := schema.ExecutionRecord{}.Fields()
	_ = executionrecordFields
	// executionrecordDescCreatedAt is the schema descriptor for created_at field.
	executionrecordDescCreatedAt := executionrecordFields[16].Descriptor()
	// executionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionrecord.DefaultCreatedAt = executionrecordDescCreatedAt.Default.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescNextAction is the schema descriptor for next_action field.
	incidentDescNextAction := incidentFields[15].Descriptor()
	// incident.DefaultNextAction holds the default value on creation for the next_action field.
	incident.DefaultNextAction = incidentDescNextAction.Default.(int)
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[19].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	// incidentDescUpdatedAt is the schema descriptor for updated_at field.
	incidentDescUpdatedAt := incidentFields[20].Descriptor()
	// incident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	incident.DefaultUpdatedAt = incidentDescUpdatedAt.Default.(func() time.Time)
	// incident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	incident.UpdateDefaultUpdatedAt = incidentDescUpdatedAt.UpdateDefault.(func() time.Time)
}
