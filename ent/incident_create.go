// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/ent/executionrecord"
	"github.com/vigilops/vigil/ent/incident"
)

// IncidentCreate is the builder for creating a Incident entity.
type IncidentCreate struct {
	config
	mutation *IncidentMutation
	hooks    []Hook
}

// SetFingerprint sets the "fingerprint" field.
func (_c *IncidentCreate) SetFingerprint(v string) *IncidentCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetAlertID sets the "alert_id" field.
func (_c *IncidentCreate) SetAlertID(v string) *IncidentCreate {
	_c.mutation.SetAlertID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *IncidentCreate) SetSource(v incident.Source) *IncidentCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *IncidentCreate) SetSeverity(v incident.Severity) *IncidentCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetService sets the "service" field.
func (_c *IncidentCreate) SetService(v string) *IncidentCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *IncidentCreate) SetTitle(v string) *IncidentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IncidentCreate) SetDescription(v string) *IncidentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableDescription(v *string) *IncidentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAlert sets the "alert" field.
func (_c *IncidentCreate) SetAlert(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetAlert(v)
	return _c
}

// SetAlertHistory sets the "alert_history" field.
func (_c *IncidentCreate) SetAlertHistory(v []map[string]interface{}) *IncidentCreate {
	_c.mutation.SetAlertHistory(v)
	return _c
}

// SetState sets the "state" field.
func (_c *IncidentCreate) SetState(v incident.State) *IncidentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableState(v *incident.State) *IncidentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetTerminalOutcome sets the "terminal_outcome" field.
func (_c *IncidentCreate) SetTerminalOutcome(v incident.TerminalOutcome) *IncidentCreate {
	_c.mutation.SetTerminalOutcome(v)
	return _c
}

// SetNillableTerminalOutcome sets the "terminal_outcome" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableTerminalOutcome(v *incident.TerminalOutcome) *IncidentCreate {
	if v != nil {
		_c.SetTerminalOutcome(*v)
	}
	return _c
}

// SetTerminalReason sets the "terminal_reason" field.
func (_c *IncidentCreate) SetTerminalReason(v string) *IncidentCreate {
	_c.mutation.SetTerminalReason(v)
	return _c
}

// SetNillableTerminalReason sets the "terminal_reason" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableTerminalReason(v *string) *IncidentCreate {
	if v != nil {
		_c.SetTerminalReason(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *IncidentCreate) SetContext(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *IncidentCreate) SetPlan(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetNextAction sets the "next_action" field.
func (_c *IncidentCreate) SetNextAction(v int) *IncidentCreate {
	_c.mutation.SetNextAction(v)
	return _c
}

// SetNillableNextAction sets the "next_action" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableNextAction(v *int) *IncidentCreate {
	if v != nil {
		_c.SetNextAction(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *IncidentCreate) SetErrorMessage(v string) *IncidentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableErrorMessage(v *string) *IncidentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *IncidentCreate) SetWorkerID(v string) *IncidentCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableWorkerID(v *string) *IncidentCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *IncidentCreate) SetHeartbeatAt(v time.Time) *IncidentCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableHeartbeatAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncidentCreate) SetCreatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableCreatedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IncidentCreate) SetUpdatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableUpdatedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *IncidentCreate) SetCompletedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableCompletedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentCreate) SetID(v string) *IncidentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExecutionIDs adds the "executions" edge to the ExecutionRecord entity by IDs.
func (_c *IncidentCreate) AddExecutionIDs(ids ...string) *IncidentCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the ExecutionRecord entity.
func (_c *IncidentCreate) AddExecutions(v ...*ExecutionRecord) *IncidentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_c *IncidentCreate) AddApprovalIDs(ids ...string) *IncidentCreate {
	_c.mutation.AddApprovalIDs(ids...)
	return _c
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_c *IncidentCreate) AddApprovals(v ...*ApprovalRequest) *IncidentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_c *IncidentCreate) Mutation() *IncidentMutation {
	return _c.mutation
}

// Save creates the Incident in the database.
func (_c *IncidentCreate) Save(ctx context.Context) (*Incident, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentCreate) SaveX(ctx context.Context) *Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := incident.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.NextAction(); !ok {
		v := incident.DefaultNextAction
		_c.mutation.SetNextAction(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := incident.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := incident.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentCreate) check() error {
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Incident.fingerprint"`)}
	}
	if _, ok := _c.mutation.AlertID(); !ok {
		return &ValidationError{Name: "alert_id", err: errors.New(`ent: missing required field "Incident.alert_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Incident.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := incident.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Incident.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Incident.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`ent: missing required field "Incident.service"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Incident.title"`)}
	}
	if _, ok := _c.mutation.Alert(); !ok {
		return &ValidationError{Name: "alert", err: errors.New(`ent: missing required field "Incident.alert"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Incident.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := incident.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Incident.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TerminalOutcome(); ok {
		if err := incident.TerminalOutcomeValidator(v); err != nil {
			return &ValidationError{Name: "terminal_outcome", err: fmt.Errorf(`ent: validator failed for field "Incident.terminal_outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextAction(); !ok {
		return &ValidationError{Name: "next_action", err: errors.New(`ent: missing required field "Incident.next_action"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Incident.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Incident.updated_at"`)}
	}
	return nil
}

func (_c *IncidentCreate) sqlSave(ctx context.Context) (*Incident, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Incident.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentCreate) createSpec() (*Incident, *sqlgraph.CreateSpec) {
	var (
		_node = &Incident{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incident.Table, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(incident.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.AlertID(); ok {
		_spec.SetField(incident.FieldAlertID, field.TypeString, value)
		_node.AlertID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(incident.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(incident.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Alert(); ok {
		_spec.SetField(incident.FieldAlert, field.TypeJSON, value)
		_node.Alert = value
	}
	if value, ok := _c.mutation.AlertHistory(); ok {
		_spec.SetField(incident.FieldAlertHistory, field.TypeJSON, value)
		_node.AlertHistory = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(incident.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.TerminalOutcome(); ok {
		_spec.SetField(incident.FieldTerminalOutcome, field.TypeEnum, value)
		_node.TerminalOutcome = &value
	}
	if value, ok := _c.mutation.TerminalReason(); ok {
		_spec.SetField(incident.FieldTerminalReason, field.TypeString, value)
		_node.TerminalReason = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(incident.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(incident.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.NextAction(); ok {
		_spec.SetField(incident.FieldNextAction, field.TypeInt, value)
		_node.NextAction = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(incident.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(incident.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(incident.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(incident.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(incident.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IncidentCreateBulk is the builder for creating many Incident entities in bulk.
type IncidentCreateBulk struct {
	config
	err      error
	builders []*IncidentCreate
}

// Save creates the Incident entities in the database.
func (_c *IncidentCreateBulk) Save(ctx context.Context) ([]*Incident, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Incident, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IncidentCreateBulk) SaveX(ctx context.Context) []*Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
