// Code generated by ent, DO NOT EDIT.

package executionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vigilops/vigil/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldIncidentID, v))
}

// ActionIndex applies equality check predicate on the "action_index" field. It's identical to ActionIndexEQ.
func ActionIndex(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldActionIndex, v))
}

// ActionType applies equality check predicate on the "action_type" field. It's identical to ActionTypeEQ.
func ActionType(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldActionType, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldSkipReason, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldDetail, v))
}

// Stdout applies equality check predicate on the "stdout" field. It's identical to StdoutEQ.
func Stdout(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldStdout, v))
}

// Stderr applies equality check predicate on the "stderr" field. It's identical to StderrEQ.
func Stderr(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldStderr, v))
}

// ExitCode applies equality check predicate on the "exit_code" field. It's identical to ExitCodeEQ.
func ExitCode(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldExitCode, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldFinishedAt, v))
}

// RollbackOf applies equality check predicate on the "rollback_of" field. It's identical to RollbackOfEQ.
func RollbackOf(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldRollbackOf, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldIncidentID, v))
}

// ActionIndexEQ applies the EQ predicate on the "action_index" field.
func ActionIndexEQ(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldActionIndex, v))
}

// ActionIndexNEQ applies the NEQ predicate on the "action_index" field.
func ActionIndexNEQ(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldActionIndex, v))
}

// ActionIndexIn applies the In predicate on the "action_index" field.
func ActionIndexIn(vs ...int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldActionIndex, vs...))
}

// ActionIndexNotIn applies the NotIn predicate on the "action_index" field.
func ActionIndexNotIn(vs ...int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldActionIndex, vs...))
}

// ActionIndexGT applies the GT predicate on the "action_index" field.
func ActionIndexGT(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldActionIndex, v))
}

// ActionIndexGTE applies the GTE predicate on the "action_index" field.
func ActionIndexGTE(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldActionIndex, v))
}

// ActionIndexLT applies the LT predicate on the "action_index" field.
func ActionIndexLT(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldActionIndex, v))
}

// ActionIndexLTE applies the LTE predicate on the "action_index" field.
func ActionIndexLTE(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldActionIndex, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldActionType, vs...))
}

// ActionTypeGT applies the GT predicate on the "action_type" field.
func ActionTypeGT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldActionType, v))
}

// ActionTypeGTE applies the GTE predicate on the "action_type" field.
func ActionTypeGTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldActionType, v))
}

// ActionTypeLT applies the LT predicate on the "action_type" field.
func ActionTypeLT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldActionType, v))
}

// ActionTypeLTE applies the LTE predicate on the "action_type" field.
func ActionTypeLTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldActionType, v))
}

// ActionTypeContains applies the Contains predicate on the "action_type" field.
func ActionTypeContains(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContains(FieldActionType, v))
}

// ActionTypeHasPrefix applies the HasPrefix predicate on the "action_type" field.
func ActionTypeHasPrefix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasPrefix(FieldActionType, v))
}

// ActionTypeHasSuffix applies the HasSuffix predicate on the "action_type" field.
func ActionTypeHasSuffix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasSuffix(FieldActionType, v))
}

// ActionTypeEqualFold applies the EqualFold predicate on the "action_type" field.
func ActionTypeEqualFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldActionType, v))
}

// ActionTypeContainsFold applies the ContainsFold predicate on the "action_type" field.
func ActionTypeContainsFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldActionType, v))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldParams))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldCommand))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldSkipReason, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldDetail, v))
}

// StdoutEQ applies the EQ predicate on the "stdout" field.
func StdoutEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldStdout, v))
}

// StdoutNEQ applies the NEQ predicate on the "stdout" field.
func StdoutNEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldStdout, v))
}

// StdoutIn applies the In predicate on the "stdout" field.
func StdoutIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldStdout, vs...))
}

// StdoutNotIn applies the NotIn predicate on the "stdout" field.
func StdoutNotIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldStdout, vs...))
}

// StdoutGT applies the GT predicate on the "stdout" field.
func StdoutGT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldStdout, v))
}

// StdoutGTE applies the GTE predicate on the "stdout" field.
func StdoutGTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldStdout, v))
}

// StdoutLT applies the LT predicate on the "stdout" field.
func StdoutLT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldStdout, v))
}

// StdoutLTE applies the LTE predicate on the "stdout" field.
func StdoutLTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldStdout, v))
}

// StdoutContains applies the Contains predicate on the "stdout" field.
func StdoutContains(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContains(FieldStdout, v))
}

// StdoutHasPrefix applies the HasPrefix predicate on the "stdout" field.
func StdoutHasPrefix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasPrefix(FieldStdout, v))
}

// StdoutHasSuffix applies the HasSuffix predicate on the "stdout" field.
func StdoutHasSuffix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasSuffix(FieldStdout, v))
}

// StdoutIsNil applies the IsNil predicate on the "stdout" field.
func StdoutIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldStdout))
}

// StdoutNotNil applies the NotNil predicate on the "stdout" field.
func StdoutNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldStdout))
}

// StdoutEqualFold applies the EqualFold predicate on the "stdout" field.
func StdoutEqualFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldStdout, v))
}

// StdoutContainsFold applies the ContainsFold predicate on the "stdout" field.
func StdoutContainsFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldStdout, v))
}

// StderrEQ applies the EQ predicate on the "stderr" field.
func StderrEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldStderr, v))
}

// StderrNEQ applies the NEQ predicate on the "stderr" field.
func StderrNEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldStderr, v))
}

// StderrIn applies the In predicate on the "stderr" field.
func StderrIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldStderr, vs...))
}

// StderrNotIn applies the NotIn predicate on the "stderr" field.
func StderrNotIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldStderr, vs...))
}

// StderrGT applies the GT predicate on the "stderr" field.
func StderrGT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldStderr, v))
}

// StderrGTE applies the GTE predicate on the "stderr" field.
func StderrGTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldStderr, v))
}

// StderrLT applies the LT predicate on the "stderr" field.
func StderrLT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldStderr, v))
}

// StderrLTE applies the LTE predicate on the "stderr" field.
func StderrLTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldStderr, v))
}

// StderrContains applies the Contains predicate on the "stderr" field.
func StderrContains(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContains(FieldStderr, v))
}

// StderrHasPrefix applies the HasPrefix predicate on the "stderr" field.
func StderrHasPrefix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasPrefix(FieldStderr, v))
}

// StderrHasSuffix applies the HasSuffix predicate on the "stderr" field.
func StderrHasSuffix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasSuffix(FieldStderr, v))
}

// StderrIsNil applies the IsNil predicate on the "stderr" field.
func StderrIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldStderr))
}

// StderrNotNil applies the NotNil predicate on the "stderr" field.
func StderrNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldStderr))
}

// StderrEqualFold applies the EqualFold predicate on the "stderr" field.
func StderrEqualFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldStderr, v))
}

// StderrContainsFold applies the ContainsFold predicate on the "stderr" field.
func StderrContainsFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldStderr, v))
}

// ExitCodeEQ applies the EQ predicate on the "exit_code" field.
func ExitCodeEQ(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldExitCode, v))
}

// ExitCodeNEQ applies the NEQ predicate on the "exit_code" field.
func ExitCodeNEQ(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldExitCode, v))
}

// ExitCodeIn applies the In predicate on the "exit_code" field.
func ExitCodeIn(vs ...int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldExitCode, vs...))
}

// ExitCodeNotIn applies the NotIn predicate on the "exit_code" field.
func ExitCodeNotIn(vs ...int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldExitCode, vs...))
}

// ExitCodeGT applies the GT predicate on the "exit_code" field.
func ExitCodeGT(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldExitCode, v))
}

// ExitCodeGTE applies the GTE predicate on the "exit_code" field.
func ExitCodeGTE(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldExitCode, v))
}

// ExitCodeLT applies the LT predicate on the "exit_code" field.
func ExitCodeLT(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldExitCode, v))
}

// ExitCodeLTE applies the LTE predicate on the "exit_code" field.
func ExitCodeLTE(v int) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldExitCode, v))
}

// ExitCodeIsNil applies the IsNil predicate on the "exit_code" field.
func ExitCodeIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldExitCode))
}

// ExitCodeNotNil applies the NotNil predicate on the "exit_code" field.
func ExitCodeNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldExitCode))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldFinishedAt))
}

// VerificationIsNil applies the IsNil predicate on the "verification" field.
func VerificationIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldVerification))
}

// VerificationNotNil applies the NotNil predicate on the "verification" field.
func VerificationNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldVerification))
}

// RollbackOfEQ applies the EQ predicate on the "rollback_of" field.
func RollbackOfEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldRollbackOf, v))
}

// RollbackOfNEQ applies the NEQ predicate on the "rollback_of" field.
func RollbackOfNEQ(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldRollbackOf, v))
}

// RollbackOfIn applies the In predicate on the "rollback_of" field.
func RollbackOfIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldRollbackOf, vs...))
}

// RollbackOfNotIn applies the NotIn predicate on the "rollback_of" field.
func RollbackOfNotIn(vs ...string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldRollbackOf, vs...))
}

// RollbackOfGT applies the GT predicate on the "rollback_of" field.
func RollbackOfGT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldRollbackOf, v))
}

// RollbackOfGTE applies the GTE predicate on the "rollback_of" field.
func RollbackOfGTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldRollbackOf, v))
}

// RollbackOfLT applies the LT predicate on the "rollback_of" field.
func RollbackOfLT(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldRollbackOf, v))
}

// RollbackOfLTE applies the LTE predicate on the "rollback_of" field.
func RollbackOfLTE(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldRollbackOf, v))
}

// RollbackOfContains applies the Contains predicate on the "rollback_of" field.
func RollbackOfContains(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContains(FieldRollbackOf, v))
}

// RollbackOfHasPrefix applies the HasPrefix predicate on the "rollback_of" field.
func RollbackOfHasPrefix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasPrefix(FieldRollbackOf, v))
}

// RollbackOfHasSuffix applies the HasSuffix predicate on the "rollback_of" field.
func RollbackOfHasSuffix(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldHasSuffix(FieldRollbackOf, v))
}

// RollbackOfIsNil applies the IsNil predicate on the "rollback_of" field.
func RollbackOfIsNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIsNull(FieldRollbackOf))
}

// RollbackOfNotNil applies the NotNil predicate on the "rollback_of" field.
func RollbackOfNotNil() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotNull(FieldRollbackOf))
}

// RollbackOfEqualFold applies the EqualFold predicate on the "rollback_of" field.
func RollbackOfEqualFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEqualFold(FieldRollbackOf, v))
}

// RollbackOfContainsFold applies the ContainsFold predicate on the "rollback_of" field.
func RollbackOfContainsFold(v string) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldContainsFold(FieldRollbackOf, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasIncident applies the HasEdge predicate on the "incident" edge.
func HasIncident() predicate.ExecutionRecord {
	return predicate.ExecutionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IncidentTable, IncidentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncidentWith applies the HasEdge predicate on the "incident" edge with a given conditions (other predicates).
func HasIncidentWith(preds ...predicate.Incident) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(func(s *sql.Selector) {
		step := newIncidentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionRecord) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionRecord) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionRecord) predicate.ExecutionRecord {
	return predicate.ExecutionRecord(sql.NotPredicates(p))
}
