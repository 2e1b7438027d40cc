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
	"github.com/vigilops/vigil/ent/incident"
)

// ApprovalRequestCreate is the builder for creating a ApprovalRequest entity.
type ApprovalRequestCreate struct {
	config
	mutation *ApprovalRequestMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *ApprovalRequestCreate) SetIncidentID(v string) *ApprovalRequestCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetActionIndex sets the "action_index" field.
func (_c *ApprovalRequestCreate) SetActionIndex(v int) *ApprovalRequestCreate {
	_c.mutation.SetActionIndex(v)
	return _c
}

// SetCommandPreview sets the "command_preview" field.
func (_c *ApprovalRequestCreate) SetCommandPreview(v string) *ApprovalRequestCreate {
	_c.mutation.SetCommandPreview(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *ApprovalRequestCreate) SetRiskLevel(v approvalrequest.RiskLevel) *ApprovalRequestCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ApprovalRequestCreate) SetConfidence(v float64) *ApprovalRequestCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ApprovalRequestCreate) SetDecision(v approvalrequest.Decision) *ApprovalRequestCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecision(v *approvalrequest.Decision) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *ApprovalRequestCreate) SetDecidedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecidedBy(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ApprovalRequestCreate) SetDecidedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecidedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *ApprovalRequestCreate) SetComment(v string) *ApprovalRequestCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableComment(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *ApprovalRequestCreate) SetRequestedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRequestedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRequestCreate) SetID(v string) *ApprovalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *ApprovalRequestCreate) SetIncident(v *Incident) *ApprovalRequestCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_c *ApprovalRequestCreate) Mutation() *ApprovalRequestMutation {
	return _c.mutation
}

// Save creates the ApprovalRequest in the database.
func (_c *ApprovalRequestCreate) Save(ctx context.Context) (*ApprovalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRequestCreate) SaveX(ctx context.Context) *ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRequestCreate) defaults() {
	if _, ok := _c.mutation.Decision(); !ok {
		v := approvalrequest.DefaultDecision
		_c.mutation.SetDecision(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := approvalrequest.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRequestCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "ApprovalRequest.incident_id"`)}
	}
	if _, ok := _c.mutation.ActionIndex(); !ok {
		return &ValidationError{Name: "action_index", err: errors.New(`ent: missing required field "ApprovalRequest.action_index"`)}
	}
	if _, ok := _c.mutation.CommandPreview(); !ok {
		return &ValidationError{Name: "command_preview", err: errors.New(`ent: missing required field "ApprovalRequest.command_preview"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "ApprovalRequest.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := approvalrequest.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ApprovalRequest.confidence"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ApprovalRequest.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := approvalrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "ApprovalRequest.requested_at"`)}
	}
	if len(_c.mutation.IncidentIDs()) == 0 {
		return &ValidationError{Name: "incident", err: errors.New(`ent: missing required edge "ApprovalRequest.incident"`)}
	}
	return nil
}

func (_c *ApprovalRequestCreate) sqlSave(ctx context.Context) (*ApprovalRequest, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRequestCreate) createSpec() (*ApprovalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrequest.Table, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionIndex(); ok {
		_spec.SetField(approvalrequest.FieldActionIndex, field.TypeInt, value)
		_node.ActionIndex = value
	}
	if value, ok := _c.mutation.CommandPreview(); ok {
		_spec.SetField(approvalrequest.FieldCommandPreview, field.TypeString, value)
		_node.CommandPreview = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(approvalrequest.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(approvalrequest.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(approvalrequest.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(approvalrequest.FieldComment, field.TypeString, value)
		_node.Comment = &value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(approvalrequest.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.IncidentTable,
			Columns: []string{approvalrequest.IncidentColumn},
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

// ApprovalRequestCreateBulk is the builder for creating many ApprovalRequest entities in bulk.
type ApprovalRequestCreateBulk struct {
	config
	err      error
	builders []*ApprovalRequestCreate
}

// Save creates the ApprovalRequest entities in the database.
func (_c *ApprovalRequestCreateBulk) Save(ctx context.Context) ([]*ApprovalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRequestMutation)
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
func (_c *ApprovalRequestCreateBulk) SaveX(ctx context.Context) []*ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
