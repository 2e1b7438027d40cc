// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vigilops/vigil/ent/executionrecord"
	"github.com/vigilops/vigil/ent/incident"
)

// ExecutionRecordCreate is the builder for creating a ExecutionRecord entity.
type ExecutionRecordCreate struct {
	config
	mutation *ExecutionRecordMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *ExecutionRecordCreate) SetIncidentID(v string) *ExecutionRecordCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetActionIndex sets the "action_index" field.
func (_c *ExecutionRecordCreate) SetActionIndex(v int) *ExecutionRecordCreate {
	_c.mutation.SetActionIndex(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *ExecutionRecordCreate) SetActionType(v string) *ExecutionRecordCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *ExecutionRecordCreate) SetParams(v map[string]string) *ExecutionRecordCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *ExecutionRecordCreate) SetCommand(v map[string]interface{}) *ExecutionRecordCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionRecordCreate) SetStatus(v executionrecord.Status) *ExecutionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableStatus(v *executionrecord.Status) *ExecutionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *ExecutionRecordCreate) SetSkipReason(v string) *ExecutionRecordCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableSkipReason(v *string) *ExecutionRecordCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ExecutionRecordCreate) SetDetail(v string) *ExecutionRecordCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableDetail(v *string) *ExecutionRecordCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetStdout sets the "stdout" field.
func (_c *ExecutionRecordCreate) SetStdout(v string) *ExecutionRecordCreate {
	_c.mutation.SetStdout(v)
	return _c
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableStdout(v *string) *ExecutionRecordCreate {
	if v != nil {
		_c.SetStdout(*v)
	}
	return _c
}

// SetStderr sets the "stderr" field.
func (_c *ExecutionRecordCreate) SetStderr(v string) *ExecutionRecordCreate {
	_c.mutation.SetStderr(v)
	return _c
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableStderr(v *string) *ExecutionRecordCreate {
	if v != nil {
		_c.SetStderr(*v)
	}
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *ExecutionRecordCreate) SetExitCode(v int) *ExecutionRecordCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableExitCode(v *int) *ExecutionRecordCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionRecordCreate) SetStartedAt(v time.Time) *ExecutionRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableStartedAt(v *time.Time) *ExecutionRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExecutionRecordCreate) SetFinishedAt(v time.Time) *ExecutionRecordCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableFinishedAt(v *time.Time) *ExecutionRecordCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetVerification sets the "verification" field.
func (_c *ExecutionRecordCreate) SetVerification(v map[string]interface{}) *ExecutionRecordCreate {
	_c.mutation.SetVerification(v)
	return _c
}

// SetRollbackOf sets the "rollback_of" field.
func (_c *ExecutionRecordCreate) SetRollbackOf(v string) *ExecutionRecordCreate {
	_c.mutation.SetRollbackOf(v)
	return _c
}

// SetNillableRollbackOf sets the "rollback_of" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableRollbackOf(v *string) *ExecutionRecordCreate {
	if v != nil {
		_c.SetRollbackOf(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionRecordCreate) SetCreatedAt(v time.Time) *ExecutionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionRecordCreate) SetNillableCreatedAt(v *time.Time) *ExecutionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionRecordCreate) SetID(v string) *ExecutionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *ExecutionRecordCreate) SetIncident(v *Incident) *ExecutionRecordCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the ExecutionRecordMutation object of the builder.
func (_c *ExecutionRecordCreate) Mutation() *ExecutionRecordMutation {
	return _c.mutation
}

// Save creates the ExecutionRecord in the database.
func (_c *ExecutionRecordCreate) Save(ctx context.Context) (*ExecutionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionRecordCreate) SaveX(ctx context.Context) *ExecutionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionRecordCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "ExecutionRecord.incident_id"`)}
	}
	if _, ok := _c.mutation.ActionIndex(); !ok {
		return &ValidationError{Name: "action_index", err: errors.New(`ent: missing required field "ExecutionRecord.action_index"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "ExecutionRecord.action_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionRecord.created_at"`)}
	}
	if len(_c.mutation.IncidentIDs()) == 0 {
		return &ValidationError{Name: "incident", err: errors.New(`ent: missing required edge "ExecutionRecord.incident"`)}
	}
	return nil
}

func (_c *ExecutionRecordCreate) sqlSave(ctx context.Context) (*ExecutionRecord, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionRecordCreate) createSpec() (*ExecutionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionrecord.Table, sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionIndex(); ok {
		_spec.SetField(executionrecord.FieldActionIndex, field.TypeInt, value)
		_node.ActionIndex = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(executionrecord.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(executionrecord.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(executionrecord.FieldCommand, field.TypeJSON, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(executionrecord.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = &value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(executionrecord.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Stdout(); ok {
		_spec.SetField(executionrecord.FieldStdout, field.TypeString, value)
		_node.Stdout = value
	}
	if value, ok := _c.mutation.Stderr(); ok {
		_spec.SetField(executionrecord.FieldStderr, field.TypeString, value)
		_node.Stderr = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(executionrecord.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executionrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(executionrecord.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Verification(); ok {
		_spec.SetField(executionrecord.FieldVerification, field.TypeJSON, value)
		_node.Verification = value
	}
	if value, ok := _c.mutation.RollbackOf(); ok {
		_spec.SetField(executionrecord.FieldRollbackOf, field.TypeString, value)
		_node.RollbackOf = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionrecord.IncidentTable,
			Columns: []string{executionrecord.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IncidentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionRecordCreateBulk is the builder for creating many ExecutionRecord entities in bulk.
type ExecutionRecordCreateBulk struct {
	config
	err      error
	builders []*ExecutionRecordCreate
}

// Save creates the ExecutionRecord entities in the database.
func (_c *ExecutionRecordCreateBulk) Save(ctx context.Context) ([]*ExecutionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionRecordMutation)
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
func (_c *ExecutionRecordCreateBulk) SaveX(ctx context.Context) []*ExecutionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
