// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/ent/executionrecord"
	"github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/ent/predicate"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v incident.Severity) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *incident.Severity) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetService sets the "service" field.
func (_u *IncidentUpdate) SetService(v string) *IncidentUpdate {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableService(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdate) SetTitle(v string) *IncidentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTitle(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentUpdate) SetDescription(v string) *IncidentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableDescription(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentUpdate) ClearDescription() *IncidentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAlert sets the "alert" field.
func (_u *IncidentUpdate) SetAlert(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetAlert(v)
	return _u
}

// SetAlertHistory sets the "alert_history" field.
func (_u *IncidentUpdate) SetAlertHistory(v []map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetAlertHistory(v)
	return _u
}

// AppendAlertHistory appends value to the "alert_history" field.
func (_u *IncidentUpdate) AppendAlertHistory(v []map[string]interface{}) *IncidentUpdate {
	_u.mutation.AppendAlertHistory(v)
	return _u
}

// ClearAlertHistory clears the value of the "alert_history" field.
func (_u *IncidentUpdate) ClearAlertHistory() *IncidentUpdate {
	_u.mutation.ClearAlertHistory()
	return _u
}

// SetState sets the "state" field.
func (_u *IncidentUpdate) SetState(v incident.State) *IncidentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableState(v *incident.State) *IncidentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTerminalOutcome sets the "terminal_outcome" field.
func (_u *IncidentUpdate) SetTerminalOutcome(v incident.TerminalOutcome) *IncidentUpdate {
	_u.mutation.SetTerminalOutcome(v)
	return _u
}

// SetNillableTerminalOutcome sets the "terminal_outcome" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTerminalOutcome(v *incident.TerminalOutcome) *IncidentUpdate {
	if v != nil {
		_u.SetTerminalOutcome(*v)
	}
	return _u
}

// ClearTerminalOutcome clears the value of the "terminal_outcome" field.
func (_u *IncidentUpdate) ClearTerminalOutcome() *IncidentUpdate {
	_u.mutation.ClearTerminalOutcome()
	return _u
}

// SetTerminalReason sets the "terminal_reason" field.
func (_u *IncidentUpdate) SetTerminalReason(v string) *IncidentUpdate {
	_u.mutation.SetTerminalReason(v)
	return _u
}

// SetNillableTerminalReason sets the "terminal_reason" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTerminalReason(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTerminalReason(*v)
	}
	return _u
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (_u *IncidentUpdate) ClearTerminalReason() *IncidentUpdate {
	_u.mutation.ClearTerminalReason()
	return _u
}

// SetContext sets the "context" field.
func (_u *IncidentUpdate) SetContext(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *IncidentUpdate) ClearContext() *IncidentUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *IncidentUpdate) SetPlan(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *IncidentUpdate) ClearPlan() *IncidentUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetNextAction sets the "next_action" field.
func (_u *IncidentUpdate) SetNextAction(v int) *IncidentUpdate {
	_u.mutation.ResetNextAction()
	_u.mutation.SetNextAction(v)
	return _u
}

// SetNillableNextAction sets the "next_action" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableNextAction(v *int) *IncidentUpdate {
	if v != nil {
		_u.SetNextAction(*v)
	}
	return _u
}

// AddNextAction adds value to the "next_action" field.
func (_u *IncidentUpdate) AddNextAction(v int) *IncidentUpdate {
	_u.mutation.AddNextAction(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IncidentUpdate) SetErrorMessage(v string) *IncidentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableErrorMessage(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IncidentUpdate) ClearErrorMessage() *IncidentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *IncidentUpdate) SetWorkerID(v string) *IncidentUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableWorkerID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *IncidentUpdate) ClearWorkerID() *IncidentUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *IncidentUpdate) SetHeartbeatAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableHeartbeatAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *IncidentUpdate) ClearHeartbeatAt() *IncidentUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdate) SetUpdatedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *IncidentUpdate) SetCompletedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCompletedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *IncidentUpdate) ClearCompletedAt() *IncidentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddExecutionIDs adds the "executions" edge to the ExecutionRecord entity by IDs.
func (_u *IncidentUpdate) AddExecutionIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the ExecutionRecord entity.
func (_u *IncidentUpdate) AddExecutions(v ...*ExecutionRecord) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_u *IncidentUpdate) AddApprovalIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_u *IncidentUpdate) AddApprovals(v ...*ApprovalRequest) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the ExecutionRecord entity.
func (_u *IncidentUpdate) ClearExecutions() *IncidentUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to ExecutionRecord entities by IDs.
func (_u *IncidentUpdate) RemoveExecutionIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to ExecutionRecord entities.
func (_u *IncidentUpdate) RemoveExecutions(v ...*ExecutionRecord) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the ApprovalRequest entity.
func (_u *IncidentUpdate) ClearApprovals() *IncidentUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to ApprovalRequest entities by IDs.
func (_u *IncidentUpdate) RemoveApprovalIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to ApprovalRequest entities.
func (_u *IncidentUpdate) RemoveApprovals(v ...*ApprovalRequest) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := incident.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Incident.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TerminalOutcome(); ok {
		if err := incident.TerminalOutcomeValidator(v); err != nil {
			return &ValidationError{Name: "terminal_outcome", err: fmt.Errorf(`ent: validator failed for field "Incident.terminal_outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(incident.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incident.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Alert(); ok {
		_spec.SetField(incident.FieldAlert, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AlertHistory(); ok {
		_spec.SetField(incident.FieldAlertHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlertHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldAlertHistory, value)
		})
	}
	if _u.mutation.AlertHistoryCleared() {
		_spec.ClearField(incident.FieldAlertHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(incident.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TerminalOutcome(); ok {
		_spec.SetField(incident.FieldTerminalOutcome, field.TypeEnum, value)
	}
	if _u.mutation.TerminalOutcomeCleared() {
		_spec.ClearField(incident.FieldTerminalOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.TerminalReason(); ok {
		_spec.SetField(incident.FieldTerminalReason, field.TypeString, value)
	}
	if _u.mutation.TerminalReasonCleared() {
		_spec.ClearField(incident.FieldTerminalReason, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(incident.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(incident.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(incident.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(incident.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextAction(); ok {
		_spec.SetField(incident.FieldNextAction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextAction(); ok {
		_spec.AddField(incident.FieldNextAction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(incident.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(incident.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(incident.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(incident.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(incident.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(incident.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(incident.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(incident.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ExecutionsTable,
			Columns: []string{incident.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ExecutionsTable,
			Columns: []string{incident.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ExecutionsTable,
			Columns: []string{incident.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ApprovalsTable,
			Columns: []string{incident.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ApprovalsTable,
			Columns: []string{incident.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ApprovalsTable,
			Columns: []string{incident.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v incident.Severity) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *incident.Severity) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetService sets the "service" field.
func (_u *IncidentUpdateOne) SetService(v string) *IncidentUpdateOne {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableService(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdateOne) SetTitle(v string) *IncidentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTitle(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentUpdateOne) SetDescription(v string) *IncidentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableDescription(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentUpdateOne) ClearDescription() *IncidentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAlert sets the "alert" field.
func (_u *IncidentUpdateOne) SetAlert(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetAlert(v)
	return _u
}

// SetAlertHistory sets the "alert_history" field.
func (_u *IncidentUpdateOne) SetAlertHistory(v []map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetAlertHistory(v)
	return _u
}

// AppendAlertHistory appends value to the "alert_history" field.
func (_u *IncidentUpdateOne) AppendAlertHistory(v []map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.AppendAlertHistory(v)
	return _u
}

// ClearAlertHistory clears the value of the "alert_history" field.
func (_u *IncidentUpdateOne) ClearAlertHistory() *IncidentUpdateOne {
	_u.mutation.ClearAlertHistory()
	return _u
}

// SetState sets the "state" field.
func (_u *IncidentUpdateOne) SetState(v incident.State) *IncidentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableState(v *incident.State) *IncidentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTerminalOutcome sets the "terminal_outcome" field.
func (_u *IncidentUpdateOne) SetTerminalOutcome(v incident.TerminalOutcome) *IncidentUpdateOne {
	_u.mutation.SetTerminalOutcome(v)
	return _u
}

// SetNillableTerminalOutcome sets the "terminal_outcome" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTerminalOutcome(v *incident.TerminalOutcome) *IncidentUpdateOne {
	if v != nil {
		_u.SetTerminalOutcome(*v)
	}
	return _u
}

// ClearTerminalOutcome clears the value of the "terminal_outcome" field.
func (_u *IncidentUpdateOne) ClearTerminalOutcome() *IncidentUpdateOne {
	_u.mutation.ClearTerminalOutcome()
	return _u
}

// SetTerminalReason sets the "terminal_reason" field.
func (_u *IncidentUpdateOne) SetTerminalReason(v string) *IncidentUpdateOne {
	_u.mutation.SetTerminalReason(v)
	return _u
}

// SetNillableTerminalReason sets the "terminal_reason" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTerminalReason(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTerminalReason(*v)
	}
	return _u
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (_u *IncidentUpdateOne) ClearTerminalReason() *IncidentUpdateOne {
	_u.mutation.ClearTerminalReason()
	return _u
}

// SetContext sets the "context" field.
func (_u *IncidentUpdateOne) SetContext(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *IncidentUpdateOne) ClearContext() *IncidentUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *IncidentUpdateOne) SetPlan(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *IncidentUpdateOne) ClearPlan() *IncidentUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetNextAction sets the "next_action" field.
func (_u *IncidentUpdateOne) SetNextAction(v int) *IncidentUpdateOne {
	_u.mutation.ResetNextAction()
	_u.mutation.SetNextAction(v)
	return _u
}

// SetNillableNextAction sets the "next_action" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableNextAction(v *int) *IncidentUpdateOne {
	if v != nil {
		_u.SetNextAction(*v)
	}
	return _u
}

// AddNextAction adds value to the "next_action" field.
func (_u *IncidentUpdateOne) AddNextAction(v int) *IncidentUpdateOne {
	_u.mutation.AddNextAction(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IncidentUpdateOne) SetErrorMessage(v string) *IncidentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableErrorMessage(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IncidentUpdateOne) ClearErrorMessage() *IncidentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *IncidentUpdateOne) SetWorkerID(v string) *IncidentUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableWorkerID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *IncidentUpdateOne) ClearWorkerID() *IncidentUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *IncidentUpdateOne) SetHeartbeatAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableHeartbeatAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *IncidentUpdateOne) ClearHeartbeatAt() *IncidentUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdateOne) SetUpdatedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *IncidentUpdateOne) SetCompletedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCompletedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *IncidentUpdateOne) ClearCompletedAt() *IncidentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddExecutionIDs adds the "executions" edge to the ExecutionRecord entity by IDs.
func (_u *IncidentUpdateOne) AddExecutionIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the ExecutionRecord entity.
func (_u *IncidentUpdateOne) AddExecutions(v ...*ExecutionRecord) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_u *IncidentUpdateOne) AddApprovalIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_u *IncidentUpdateOne) AddApprovals(v ...*ApprovalRequest) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the ExecutionRecord entity.
func (_u *IncidentUpdateOne) ClearExecutions() *IncidentUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to ExecutionRecord entities by IDs.
func (_u *IncidentUpdateOne) RemoveExecutionIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to ExecutionRecord entities.
func (_u *IncidentUpdateOne) RemoveExecutions(v ...*ExecutionRecord) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the ApprovalRequest entity.
func (_u *IncidentUpdateOne) ClearApprovals() *IncidentUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to ApprovalRequest entities by IDs.
func (_u *IncidentUpdateOne) RemoveApprovalIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to ApprovalRequest entities.
func (_u *IncidentUpdateOne) RemoveApprovals(v ...*ApprovalRequest) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := incident.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Incident.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TerminalOutcome(); ok {
		if err := incident.TerminalOutcomeValidator(v); err != nil {
			return &ValidationError{Name: "terminal_outcome", err: fmt.Errorf(`ent: validator failed for field "Incident.terminal_outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(incident.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incident.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Alert(); ok {
		_spec.SetField(incident.FieldAlert, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AlertHistory(); ok {
		_spec.SetField(incident.FieldAlertHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlertHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldAlertHistory, value)
		})
	}
	if _u.mutation.AlertHistoryCleared() {
		_spec.ClearField(incident.FieldAlertHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(incident.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TerminalOutcome(); ok {
		_spec.SetField(incident.FieldTerminalOutcome, field.TypeEnum, value)
	}
	if _u.mutation.TerminalOutcomeCleared() {
		_spec.ClearField(incident.FieldTerminalOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.TerminalReason(); ok {
		_spec.SetField(incident.FieldTerminalReason, field.TypeString, value)
	}
	if _u.mutation.TerminalReasonCleared() {
		_spec.ClearField(incident.FieldTerminalReason, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(incident.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(incident.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(incident.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(incident.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextAction(); ok {
		_spec.SetField(incident.FieldNextAction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextAction(); ok {
		_spec.AddField(incident.FieldNextAction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(incident.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(incident.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(incident.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(incident.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(incident.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(incident.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(incident.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(incident.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ExecutionsTable,
			Columns: []string{incident.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ExecutionsTable,
			Columns: []string{incident.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ExecutionsTable,
			Columns: []string{incident.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ApprovalsTable,
			Columns: []string{incident.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ApprovalsTable,
			Columns: []string{incident.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ApprovalsTable,
			Columns: []string{incident.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
