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
	"github.com/vigilops/vigil/ent/executionrecord"
	"github.com/vigilops/vigil/ent/predicate"
)

// ExecutionRecordUpdate is the builder for updating ExecutionRecord entities.
type ExecutionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionRecordMutation
}

// Where appends a list predicates to the ExecutionRecordUpdate builder.
func (_u *ExecutionRecordUpdate) Where(ps ...predicate.ExecutionRecord) *ExecutionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionIndex sets the "action_index" field.
func (_u *ExecutionRecordUpdate) SetActionIndex(v int) *ExecutionRecordUpdate {
	_u.mutation.ResetActionIndex()
	_u.mutation.SetActionIndex(v)
	return _u
}

// SetNillableActionIndex sets the "action_index" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableActionIndex(v *int) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetActionIndex(*v)
	}
	return _u
}

// AddActionIndex adds value to the "action_index" field.
func (_u *ExecutionRecordUpdate) AddActionIndex(v int) *ExecutionRecordUpdate {
	_u.mutation.AddActionIndex(v)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ExecutionRecordUpdate) SetActionType(v string) *ExecutionRecordUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableActionType(v *string) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *ExecutionRecordUpdate) SetParams(v map[string]string) *ExecutionRecordUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *ExecutionRecordUpdate) ClearParams() *ExecutionRecordUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetCommand sets the "command" field.
func (_u *ExecutionRecordUpdate) SetCommand(v map[string]interface{}) *ExecutionRecordUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ExecutionRecordUpdate) ClearCommand() *ExecutionRecordUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionRecordUpdate) SetStatus(v executionrecord.Status) *ExecutionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableStatus(v *executionrecord.Status) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ExecutionRecordUpdate) SetSkipReason(v string) *ExecutionRecordUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableSkipReason(v *string) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ExecutionRecordUpdate) ClearSkipReason() *ExecutionRecordUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ExecutionRecordUpdate) SetDetail(v string) *ExecutionRecordUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableDetail(v *string) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *ExecutionRecordUpdate) ClearDetail() *ExecutionRecordUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetStdout sets the "stdout" field.
func (_u *ExecutionRecordUpdate) SetStdout(v string) *ExecutionRecordUpdate {
	_u.mutation.SetStdout(v)
	return _u
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableStdout(v *string) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetStdout(*v)
	}
	return _u
}

// ClearStdout clears the value of the "stdout" field.
func (_u *ExecutionRecordUpdate) ClearStdout() *ExecutionRecordUpdate {
	_u.mutation.ClearStdout()
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *ExecutionRecordUpdate) SetStderr(v string) *ExecutionRecordUpdate {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableStderr(v *string) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// ClearStderr clears the value of the "stderr" field.
func (_u *ExecutionRecordUpdate) ClearStderr() *ExecutionRecordUpdate {
	_u.mutation.ClearStderr()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *ExecutionRecordUpdate) SetExitCode(v int) *ExecutionRecordUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableExitCode(v *int) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *ExecutionRecordUpdate) AddExitCode(v int) *ExecutionRecordUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *ExecutionRecordUpdate) ClearExitCode() *ExecutionRecordUpdate {
	_u.mutation.ClearExitCode()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionRecordUpdate) SetStartedAt(v time.Time) *ExecutionRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableStartedAt(v *time.Time) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionRecordUpdate) ClearStartedAt() *ExecutionRecordUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExecutionRecordUpdate) SetFinishedAt(v time.Time) *ExecutionRecordUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableFinishedAt(v *time.Time) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExecutionRecordUpdate) ClearFinishedAt() *ExecutionRecordUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetVerification sets the "verification" field.
func (_u *ExecutionRecordUpdate) SetVerification(v map[string]interface{}) *ExecutionRecordUpdate {
	_u.mutation.SetVerification(v)
	return _u
}

// ClearVerification clears the value of the "verification" field.
func (_u *ExecutionRecordUpdate) ClearVerification() *ExecutionRecordUpdate {
	_u.mutation.ClearVerification()
	return _u
}

// SetRollbackOf sets the "rollback_of" field.
func (_u *ExecutionRecordUpdate) SetRollbackOf(v string) *ExecutionRecordUpdate {
	_u.mutation.SetRollbackOf(v)
	return _u
}

// SetNillableRollbackOf sets the "rollback_of" field if the given value is not nil.
func (_u *ExecutionRecordUpdate) SetNillableRollbackOf(v *string) *ExecutionRecordUpdate {
	if v != nil {
		_u.SetRollbackOf(*v)
	}
	return _u
}

// ClearRollbackOf clears the value of the "rollback_of" field.
func (_u *ExecutionRecordUpdate) ClearRollbackOf() *ExecutionRecordUpdate {
	_u.mutation.ClearRollbackOf()
	return _u
}

// Mutation returns the ExecutionRecordMutation object of the builder.
func (_u *ExecutionRecordUpdate) Mutation() *ExecutionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionRecord.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionRecord.incident"`)
	}
	return nil
}

func (_u *ExecutionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionrecord.Table, executionrecord.Columns, sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionIndex(); ok {
		_spec.SetField(executionrecord.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionIndex(); ok {
		_spec.AddField(executionrecord.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(executionrecord.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(executionrecord.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(executionrecord.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(executionrecord.FieldCommand, field.TypeJSON, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(executionrecord.FieldCommand, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(executionrecord.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(executionrecord.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(executionrecord.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(executionrecord.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Stdout(); ok {
		_spec.SetField(executionrecord.FieldStdout, field.TypeString, value)
	}
	if _u.mutation.StdoutCleared() {
		_spec.ClearField(executionrecord.FieldStdout, field.TypeString)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(executionrecord.FieldStderr, field.TypeString, value)
	}
	if _u.mutation.StderrCleared() {
		_spec.ClearField(executionrecord.FieldStderr, field.TypeString)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(executionrecord.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(executionrecord.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(executionrecord.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executionrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(executionrecord.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(executionrecord.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Verification(); ok {
		_spec.SetField(executionrecord.FieldVerification, field.TypeJSON, value)
	}
	if _u.mutation.VerificationCleared() {
		_spec.ClearField(executionrecord.FieldVerification, field.TypeJSON)
	}
	if value, ok := _u.mutation.RollbackOf(); ok {
		_spec.SetField(executionrecord.FieldRollbackOf, field.TypeString, value)
	}
	if _u.mutation.RollbackOfCleared() {
		_spec.ClearField(executionrecord.FieldRollbackOf, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionRecordUpdateOne is the builder for updating a single ExecutionRecord entity.
type ExecutionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionRecordMutation
}

// SetActionIndex sets the "action_index" field.
func (_u *ExecutionRecordUpdateOne) SetActionIndex(v int) *ExecutionRecordUpdateOne {
	_u.mutation.ResetActionIndex()
	_u.mutation.SetActionIndex(v)
	return _u
}

// SetNillableActionIndex sets the "action_index" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableActionIndex(v *int) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetActionIndex(*v)
	}
	return _u
}

// AddActionIndex adds value to the "action_index" field.
func (_u *ExecutionRecordUpdateOne) AddActionIndex(v int) *ExecutionRecordUpdateOne {
	_u.mutation.AddActionIndex(v)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ExecutionRecordUpdateOne) SetActionType(v string) *ExecutionRecordUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableActionType(v *string) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *ExecutionRecordUpdateOne) SetParams(v map[string]string) *ExecutionRecordUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *ExecutionRecordUpdateOne) ClearParams() *ExecutionRecordUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetCommand sets the "command" field.
func (_u *ExecutionRecordUpdateOne) SetCommand(v map[string]interface{}) *ExecutionRecordUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ExecutionRecordUpdateOne) ClearCommand() *ExecutionRecordUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionRecordUpdateOne) SetStatus(v executionrecord.Status) *ExecutionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableStatus(v *executionrecord.Status) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ExecutionRecordUpdateOne) SetSkipReason(v string) *ExecutionRecordUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableSkipReason(v *string) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ExecutionRecordUpdateOne) ClearSkipReason() *ExecutionRecordUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ExecutionRecordUpdateOne) SetDetail(v string) *ExecutionRecordUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableDetail(v *string) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *ExecutionRecordUpdateOne) ClearDetail() *ExecutionRecordUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetStdout sets the "stdout" field.
func (_u *ExecutionRecordUpdateOne) SetStdout(v string) *ExecutionRecordUpdateOne {
	_u.mutation.SetStdout(v)
	return _u
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableStdout(v *string) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetStdout(*v)
	}
	return _u
}

// ClearStdout clears the value of the "stdout" field.
func (_u *ExecutionRecordUpdateOne) ClearStdout() *ExecutionRecordUpdateOne {
	_u.mutation.ClearStdout()
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *ExecutionRecordUpdateOne) SetStderr(v string) *ExecutionRecordUpdateOne {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableStderr(v *string) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// ClearStderr clears the value of the "stderr" field.
func (_u *ExecutionRecordUpdateOne) ClearStderr() *ExecutionRecordUpdateOne {
	_u.mutation.ClearStderr()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *ExecutionRecordUpdateOne) SetExitCode(v int) *ExecutionRecordUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableExitCode(v *int) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *ExecutionRecordUpdateOne) AddExitCode(v int) *ExecutionRecordUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *ExecutionRecordUpdateOne) ClearExitCode() *ExecutionRecordUpdateOne {
	_u.mutation.ClearExitCode()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionRecordUpdateOne) SetStartedAt(v time.Time) *ExecutionRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionRecordUpdateOne) ClearStartedAt() *ExecutionRecordUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExecutionRecordUpdateOne) SetFinishedAt(v time.Time) *ExecutionRecordUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableFinishedAt(v *time.Time) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExecutionRecordUpdateOne) ClearFinishedAt() *ExecutionRecordUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetVerification sets the "verification" field.
func (_u *ExecutionRecordUpdateOne) SetVerification(v map[string]interface{}) *ExecutionRecordUpdateOne {
	_u.mutation.SetVerification(v)
	return _u
}

// ClearVerification clears the value of the "verification" field.
func (_u *ExecutionRecordUpdateOne) ClearVerification() *ExecutionRecordUpdateOne {
	_u.mutation.ClearVerification()
	return _u
}

// SetRollbackOf sets the "rollback_of" field.
func (_u *ExecutionRecordUpdateOne) SetRollbackOf(v string) *ExecutionRecordUpdateOne {
	_u.mutation.SetRollbackOf(v)
	return _u
}

// SetNillableRollbackOf sets the "rollback_of" field if the given value is not nil.
func (_u *ExecutionRecordUpdateOne) SetNillableRollbackOf(v *string) *ExecutionRecordUpdateOne {
	if v != nil {
		_u.SetRollbackOf(*v)
	}
	return _u
}

// ClearRollbackOf clears the value of the "rollback_of" field.
func (_u *ExecutionRecordUpdateOne) ClearRollbackOf() *ExecutionRecordUpdateOne {
	_u.mutation.ClearRollbackOf()
	return _u
}

// Mutation returns the ExecutionRecordMutation object of the builder.
func (_u *ExecutionRecordUpdateOne) Mutation() *ExecutionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionRecordUpdate builder.
func (_u *ExecutionRecordUpdateOne) Where(ps ...predicate.ExecutionRecord) *ExecutionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionRecordUpdateOne) Select(field string, fields ...string) *ExecutionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionRecord entity.
func (_u *ExecutionRecordUpdateOne) Save(ctx context.Context) (*ExecutionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionRecordUpdateOne) SaveX(ctx context.Context) *ExecutionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionRecord.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionRecord.incident"`)
	}
	return nil
}

func (_u *ExecutionRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionrecord.Table, executionrecord.Columns, sqlgraph.NewFieldSpec(executionrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionrecord.FieldID)
		for _, f := range fields {
			if !executionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionrecord.FieldID {
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
		_spec.SetField(executionrecord.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionIndex(); ok {
		_spec.AddField(executionrecord.FieldActionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(executionrecord.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(executionrecord.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(executionrecord.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(executionrecord.FieldCommand, field.TypeJSON, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(executionrecord.FieldCommand, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(executionrecord.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(executionrecord.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(executionrecord.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(executionrecord.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Stdout(); ok {
		_spec.SetField(executionrecord.FieldStdout, field.TypeString, value)
	}
	if _u.mutation.StdoutCleared() {
		_spec.ClearField(executionrecord.FieldStdout, field.TypeString)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(executionrecord.FieldStderr, field.TypeString, value)
	}
	if _u.mutation.StderrCleared() {
		_spec.ClearField(executionrecord.FieldStderr, field.TypeString)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(executionrecord.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(executionrecord.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(executionrecord.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executionrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(executionrecord.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(executionrecord.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Verification(); ok {
		_spec.SetField(executionrecord.FieldVerification, field.TypeJSON, value)
	}
	if _u.mutation.VerificationCleared() {
		_spec.ClearField(executionrecord.FieldVerification, field.TypeJSON)
	}
	if value, ok := _u.mutation.RollbackOf(); ok {
		_spec.SetField(executionrecord.FieldRollbackOf, field.TypeString, value)
	}
	if _u.mutation.RollbackOfCleared() {
		_spec.ClearField(executionrecord.FieldRollbackOf, field.TypeString)
	}
	_node = &ExecutionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
