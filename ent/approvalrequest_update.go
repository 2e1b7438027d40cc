// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/ent/predicate"
)

// ApprovalRequestUpdate is the builder for updating ApprovalRequest entities.
type ApprovalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdate) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionIndex sets the "action_index" field.
func (_u *ApprovalRequestUpdate) SetActionIndex(v int) *ApprovalRequestUpdate {
	_u.mutation.ResetActionIndex()
	_u.mutation.SetActionIndex(v)
	return _u
}

// SetNillableActionIndex sets the "action_index" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableActionIndex(v *int) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetActionIndex(*v)
	}
	return _u
}

// AddActionIndex adds value to the "action_index" field.
func (_u *ApprovalRequestUpdate) AddActionIndex(v int) *ApprovalRequestUpdate {
	_u.mutation.AddActionIndex(v)
	return _u
}

// SetCommandPreview sets the "command_preview" field.
func (_u *ApprovalRequestUpdate) SetCommandPreview(v string) *ApprovalRequestUpdate {
	_u.mutation.SetCommandPreview(v)
	return _u
}

// SetNillableCommandPreview sets the "command_preview" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableCommandPreview(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetCommandPreview(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ApprovalRequestUpdate) SetRiskLevel(v approvalrequest.RiskLevel) *ApprovalRequestUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRiskLevel(v *approvalrequest.RiskLevel) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ApprovalRequestUpdate) SetConfidence(v float64) *ApprovalRequestUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableConfidence(v *float64) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ApprovalRequestUpdate) AddConfidence(v float64) *ApprovalRequestUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ApprovalRequestUpdate) SetDecision(v approvalrequest.Decision) *ApprovalRequestUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecision(v *approvalrequest.Decision) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalRequestUpdate) SetDecidedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecidedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalRequestUpdate) ClearDecidedBy() *ApprovalRequestUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalRequestUpdate) SetDecidedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecidedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalRequestUpdate) ClearDecidedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ApprovalRequestUpdate) SetComment(v string) *ApprovalRequestUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableComment(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ApprovalRequestUpdate) ClearComment() *ApprovalRequestUpdate {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdate) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := approvalrequest.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := approvalrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.decision": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.incident"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionIndex(); ok {
		_spec.SetField(approvalrequest.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionIndex(); ok {
		_spec.AddField(approvalrequest.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandPreview(); ok {
		_spec.SetField(approvalrequest.FieldCommandPreview, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(approvalrequest.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(approvalrequest.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(approvalrequest.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(approvalrequest.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(approvalrequest.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(approvalrequest.FieldComment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRequestUpdateOne is the builder for updating a single ApprovalRequest entity.
type ApprovalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// SetActionIndex sets the "action_index" field.
func (_u *ApprovalRequestUpdateOne) SetActionIndex(v int) *ApprovalRequestUpdateOne {
	_u.mutation.ResetActionIndex()
	_u.mutation.SetActionIndex(v)
	return _u
}

// SetNillableActionIndex sets the "action_index" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableActionIndex(v *int) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetActionIndex(*v)
	}
	return _u
}

// AddActionIndex adds value to the "action_index" field.
func (_u *ApprovalRequestUpdateOne) AddActionIndex(v int) *ApprovalRequestUpdateOne {
	_u.mutation.AddActionIndex(v)
	return _u
}

// SetCommandPreview sets the "command_preview" field.
func (_u *ApprovalRequestUpdateOne) SetCommandPreview(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetCommandPreview(v)
	return _u
}

// SetNillableCommandPreview sets the "command_preview" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableCommandPreview(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetCommandPreview(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ApprovalRequestUpdateOne) SetRiskLevel(v approvalrequest.RiskLevel) *ApprovalRequestUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRiskLevel(v *approvalrequest.RiskLevel) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ApprovalRequestUpdateOne) SetConfidence(v float64) *ApprovalRequestUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableConfidence(v *float64) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ApprovalRequestUpdateOne) AddConfidence(v float64) *ApprovalRequestUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ApprovalRequestUpdateOne) SetDecision(v approvalrequest.Decision) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecision(v *approvalrequest.Decision) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalRequestUpdateOne) SetDecidedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecidedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalRequestUpdateOne) ClearDecidedBy() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalRequestUpdateOne) SetDecidedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalRequestUpdateOne) ClearDecidedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ApprovalRequestUpdateOne) SetComment(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableComment(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ApprovalRequestUpdateOne) ClearComment() *ApprovalRequestUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdateOne) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdateOne) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRequestUpdateOne) Select(field string, fields ...string) *ApprovalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRequest entity.
func (_u *ApprovalRequestUpdateOne) Save(ctx context.Context) (*ApprovalRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) SaveX(ctx context.Context) *ApprovalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := approvalrequest.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := approvalrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.decision": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.incident"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrequest.FieldID)
		for _, f := range fields {
			if !approvalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrequest.FieldID {
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
	if value, ok := _u.mutation.ActionIndex(); ok {
		_spec.SetField(approvalrequest.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionIndex(); ok {
		_spec.AddField(approvalrequest.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandPreview(); ok {
		_spec.SetField(approvalrequest.FieldCommandPreview, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(approvalrequest.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(approvalrequest.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(approvalrequest.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(approvalrequest.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(approvalrequest.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(approvalrequest.FieldComment, field.TypeString)
	}
	_node = &ApprovalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
