// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/ent/auditentry"
	"github.com/vigilops/vigil/ent/executionrecord"
	"github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalRequest = "ApprovalRequest"
	TypeAuditEntry      = "AuditEntry"
	TypeExecutionRecord = "ExecutionRecord"
	TypeIncident        = "Incident"
)

// ApprovalRequestMutation represents an operation that mutates the ApprovalRequest nodes in the graph.
type ApprovalRequestMutation struct {
	config
	op              Op
	typ             string
	id              *string
	action_index    *int
	addaction_index *int
	command_preview *string
	risk_level      *approvalrequest.RiskLevel
	confidence      *float64
	addconfidence   *float64
	decision        *approvalrequest.Decision
	decided_by      *string
	decided_at      *time.Time
	comment         *string
	requested_at    *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*ApprovalRequest, error)
	predicates      []predicate.ApprovalRequest
}

var _ ent.Mutation = (*ApprovalRequestMutation)(nil)

// approvalrequestOption allows management of the mutation configuration using functional options.
type approvalrequestOption func(*ApprovalRequestMutation)

// newApprovalRequestMutation creates new mutation for the ApprovalRequest entity.
func newApprovalRequestMutation(c config, op Op, opts ...approvalrequestOption) *ApprovalRequestMutation {
	m := &ApprovalRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRequestID sets the ID field of the mutation.
func withApprovalRequestID(id string) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRequest
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRequest sets the old ApprovalRequest of the mutation.
func withApprovalRequest(node *ApprovalRequest) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		m.oldValue = func(context.Context) (*ApprovalRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRequest entities.
func (m *ApprovalRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *ApprovalRequestMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *ApprovalRequestMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *ApprovalRequestMutation) ResetIncidentID() {
	m.incident = nil
}

// SetActionIndex sets the "action_index" field.
func (m *ApprovalRequestMutation) SetActionIndex(i int) {
	m.action_index = &i
	m.addaction_index = nil
}

// ActionIndex returns the value of the "action_index" field in the mutation.
func (m *ApprovalRequestMutation) ActionIndex() (r int, exists bool) {
	v := m.action_index
	if v == nil {
		return
	}
	return *v, true
}

// OldActionIndex returns the old "action_index" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldActionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionIndex: %w", err)
	}
	return oldValue.ActionIndex, nil
}

// AddActionIndex adds i to the "action_index" field.
func (m *ApprovalRequestMutation) AddActionIndex(i int) {
	if m.addaction_index != nil {
		*m.addaction_index += i
	} else {
		m.addaction_index = &i
	}
}

// AddedActionIndex returns the value that was added to the "action_index" field in this mutation.
func (m *ApprovalRequestMutation) AddedActionIndex() (r int, exists bool) {
	v := m.addaction_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionIndex resets all changes to the "action_index" field.
func (m *ApprovalRequestMutation) ResetActionIndex() {
	m.action_index = nil
	m.addaction_index = nil
}

// SetCommandPreview sets the "command_preview" field.
func (m *ApprovalRequestMutation) SetCommandPreview(s string) {
	m.command_preview = &s
}

// CommandPreview returns the value of the "command_preview" field in the mutation.
func (m *ApprovalRequestMutation) CommandPreview() (r string, exists bool) {
	v := m.command_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandPreview returns the old "command_preview" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldCommandPreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandPreview: %w", err)
	}
	return oldValue.CommandPreview, nil
}

// ResetCommandPreview resets all changes to the "command_preview" field.
func (m *ApprovalRequestMutation) ResetCommandPreview() {
	m.command_preview = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *ApprovalRequestMutation) SetRiskLevel(al approvalrequest.RiskLevel) {
	m.risk_level = &al
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *ApprovalRequestMutation) RiskLevel() (r approvalrequest.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRiskLevel(ctx context.Context) (v approvalrequest.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *ApprovalRequestMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetConfidence sets the "confidence" field.
func (m *ApprovalRequestMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ApprovalRequestMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ApprovalRequestMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ApprovalRequestMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ApprovalRequestMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetDecision sets the "decision" field.
func (m *ApprovalRequestMutation) SetDecision(a approvalrequest.Decision) {
	m.decision = &a
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ApprovalRequestMutation) Decision() (r approvalrequest.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecision(ctx context.Context) (v approvalrequest.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ApprovalRequestMutation) ResetDecision() {
	m.decision = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *ApprovalRequestMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *ApprovalRequestMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecidedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *ApprovalRequestMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[approvalrequest.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *ApprovalRequestMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, approvalrequest.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *ApprovalRequestMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *ApprovalRequestMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *ApprovalRequestMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[approvalrequest.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *ApprovalRequestMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, approvalrequest.FieldDecidedAt)
}

// SetComment sets the "comment" field.
func (m *ApprovalRequestMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *ApprovalRequestMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *ApprovalRequestMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[approvalrequest.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *ApprovalRequestMutation) CommentCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *ApprovalRequestMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, approvalrequest.FieldComment)
}

// SetRequestedAt sets the "requested_at" field.
func (m *ApprovalRequestMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *ApprovalRequestMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *ApprovalRequestMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *ApprovalRequestMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[approvalrequest.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *ApprovalRequestMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *ApprovalRequestMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *ApprovalRequestMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the ApprovalRequestMutation builder.
func (m *ApprovalRequestMutation) Where(ps ...predicate.ApprovalRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRequest).
func (m *ApprovalRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRequestMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.incident != nil {
		fields = append(fields, approvalrequest.FieldIncidentID)
	}
	if m.action_index != nil {
		fields = append(fields, approvalrequest.FieldActionIndex)
	}
	if m.command_preview != nil {
		fields = append(fields, approvalrequest.FieldCommandPreview)
	}
	if m.risk_level != nil {
		fields = append(fields, approvalrequest.FieldRiskLevel)
	}
	if m.confidence != nil {
		fields = append(fields, approvalrequest.FieldConfidence)
	}
	if m.decision != nil {
		fields = append(fields, approvalrequest.FieldDecision)
	}
	if m.decided_by != nil {
		fields = append(fields, approvalrequest.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, approvalrequest.FieldDecidedAt)
	}
	if m.comment != nil {
		fields = append(fields, approvalrequest.FieldComment)
	}
	if m.requested_at != nil {
		fields = append(fields, approvalrequest.FieldRequestedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldIncidentID:
		return m.IncidentID()
	case approvalrequest.FieldActionIndex:
		return m.ActionIndex()
	case approvalrequest.FieldCommandPreview:
		return m.CommandPreview()
	case approvalrequest.FieldRiskLevel:
		return m.RiskLevel()
	case approvalrequest.FieldConfidence:
		return m.Confidence()
	case approvalrequest.FieldDecision:
		return m.Decision()
	case approvalrequest.FieldDecidedBy:
		return m.DecidedBy()
	case approvalrequest.FieldDecidedAt:
		return m.DecidedAt()
	case approvalrequest.FieldComment:
		return m.Comment()
	case approvalrequest.FieldRequestedAt:
		return m.RequestedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrequest.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case approvalrequest.FieldActionIndex:
		return m.OldActionIndex(ctx)
	case approvalrequest.FieldCommandPreview:
		return m.OldCommandPreview(ctx)
	case approvalrequest.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case approvalrequest.FieldConfidence:
		return m.OldConfidence(ctx)
	case approvalrequest.FieldDecision:
		return m.OldDecision(ctx)
	case approvalrequest.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case approvalrequest.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case approvalrequest.FieldComment:
		return m.OldComment(ctx)
	case approvalrequest.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case approvalrequest.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionIndex(v)
		return nil
	case approvalrequest.FieldCommandPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandPreview(v)
		return nil
	case approvalrequest.FieldRiskLevel:
		v, ok := value.(approvalrequest.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case approvalrequest.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case approvalrequest.FieldDecision:
		v, ok := value.(approvalrequest.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case approvalrequest.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case approvalrequest.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case approvalrequest.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case approvalrequest.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRequestMutation) AddedFields() []string {
	var fields []string
	if m.addaction_index != nil {
		fields = append(fields, approvalrequest.FieldActionIndex)
	}
	if m.addconfidence != nil {
		fields = append(fields, approvalrequest.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldActionIndex:
		return m.AddedActionIndex()
	case approvalrequest.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionIndex(v)
		return nil
	case approvalrequest.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrequest.FieldDecidedBy) {
		fields = append(fields, approvalrequest.FieldDecidedBy)
	}
	if m.FieldCleared(approvalrequest.FieldDecidedAt) {
		fields = append(fields, approvalrequest.FieldDecidedAt)
	}
	if m.FieldCleared(approvalrequest.FieldComment) {
		fields = append(fields, approvalrequest.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ClearField(name string) error {
	switch name {
	case approvalrequest.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case approvalrequest.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	case approvalrequest.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ResetField(name string) error {
	switch name {
	case approvalrequest.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case approvalrequest.FieldActionIndex:
		m.ResetActionIndex()
		return nil
	case approvalrequest.FieldCommandPreview:
		m.ResetCommandPreview()
		return nil
	case approvalrequest.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case approvalrequest.FieldConfidence:
		m.ResetConfidence()
		return nil
	case approvalrequest.FieldDecision:
		m.ResetDecision()
		return nil
	case approvalrequest.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case approvalrequest.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case approvalrequest.FieldComment:
		m.ResetComment()
		return nil
	case approvalrequest.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, approvalrequest.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvalrequest.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, approvalrequest.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case approvalrequest.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRequestMutation) ClearEdge(name string) error {
	switch name {
	case approvalrequest.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRequestMutation) ResetEdge(name string) error {
	switch name {
	case approvalrequest.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	incident_id   *string
	seq           *int
	addseq        *int
	actor         *string
	command       *string
	detail        *map[string]interface{}
	result        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditEntry, error)
	predicates    []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *AuditEntryMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AuditEntryMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AuditEntryMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetSeq sets the "seq" field.
func (m *AuditEntryMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *AuditEntryMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *AuditEntryMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *AuditEntryMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *AuditEntryMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetActor sets the "actor" field.
func (m *AuditEntryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditEntryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditEntryMutation) ResetActor() {
	m.actor = nil
}

// SetCommand sets the "command" field.
func (m *AuditEntryMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *AuditEntryMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ResetCommand resets all changes to the "command" field.
func (m *AuditEntryMutation) ResetCommand() {
	m.command = nil
}

// SetDetail sets the "detail" field.
func (m *AuditEntryMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditEntryMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditEntryMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[auditentry.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditEntryMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditEntryMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, auditentry.FieldDetail)
}

// SetResult sets the "result" field.
func (m *AuditEntryMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *AuditEntryMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AuditEntryMutation) ClearResult() {
	m.result = nil
	m.clearedFields[auditentry.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AuditEntryMutation) ResultCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AuditEntryMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, auditentry.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.incident_id != nil {
		fields = append(fields, auditentry.FieldIncidentID)
	}
	if m.seq != nil {
		fields = append(fields, auditentry.FieldSeq)
	}
	if m.actor != nil {
		fields = append(fields, auditentry.FieldActor)
	}
	if m.command != nil {
		fields = append(fields, auditentry.FieldCommand)
	}
	if m.detail != nil {
		fields = append(fields, auditentry.FieldDetail)
	}
	if m.result != nil {
		fields = append(fields, auditentry.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldIncidentID:
		return m.IncidentID()
	case auditentry.FieldSeq:
		return m.Seq()
	case auditentry.FieldActor:
		return m.Actor()
	case auditentry.FieldCommand:
		return m.Command()
	case auditentry.FieldDetail:
		return m.Detail()
	case auditentry.FieldResult:
		return m.Result()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case auditentry.FieldSeq:
		return m.OldSeq(ctx)
	case auditentry.FieldActor:
		return m.OldActor(ctx)
	case auditentry.FieldCommand:
		return m.OldCommand(ctx)
	case auditentry.FieldDetail:
		return m.OldDetail(ctx)
	case auditentry.FieldResult:
		return m.OldResult(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case auditentry.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case auditentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditentry.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case auditentry.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditentry.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, auditentry.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldDetail) {
		fields = append(fields, auditentry.FieldDetail)
	}
	if m.FieldCleared(auditentry.FieldResult) {
		fields = append(fields, auditentry.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldDetail:
		m.ClearDetail()
		return nil
	case auditentry.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case auditentry.FieldSeq:
		m.ResetSeq()
		return nil
	case auditentry.FieldActor:
		m.ResetActor()
		return nil
	case auditentry.FieldCommand:
		m.ResetCommand()
		return nil
	case auditentry.FieldDetail:
		m.ResetDetail()
		return nil
	case auditentry.FieldResult:
		m.ResetResult()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// ExecutionRecordMutation represents an operation that mutates the ExecutionRecord nodes in the graph.
type ExecutionRecordMutation struct {
	config
	op              Op
	typ             string
	id              *string
	action_index    *int
	addaction_index *int
	action_type     *string
	params          *map[string]string
	command         *map[string]interface{}
	status          *executionrecord.Status
	skip_reason     *string
	detail          *string
	stdout          *string
	stderr          *string
	exit_code       *int
	addexit_code    *int
	started_at      *time.Time
	finished_at     *time.Time
	verification    *map[string]interface{}
	rollback_of     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*ExecutionRecord, error)
	predicates      []predicate.ExecutionRecord
}

var _ ent.Mutation = (*ExecutionRecordMutation)(nil)

// executionrecordOption allows management of the mutation configuration using functional options.
type executionrecordOption func(*ExecutionRecordMutation)

// newExecutionRecordMutation creates new mutation for the ExecutionRecord entity.
func newExecutionRecordMutation(c config, op Op, opts ...executionrecordOption) *ExecutionRecordMutation {
	m := &ExecutionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionRecordID sets the ID field of the mutation.
func withExecutionRecordID(id string) executionrecordOption {
	return func(m *ExecutionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionRecord
		)
		m.oldValue = func(ctx context.Context) (*ExecutionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionRecord sets the old ExecutionRecord of the mutation.
func withExecutionRecord(node *ExecutionRecord) executionrecordOption {
	return func(m *ExecutionRecordMutation) {
		m.oldValue = func(context.Context) (*ExecutionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionRecord entities.
func (m *ExecutionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *ExecutionRecordMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *ExecutionRecordMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *ExecutionRecordMutation) ResetIncidentID() {
	m.incident = nil
}

// SetActionIndex sets the "action_index" field.
func (m *ExecutionRecordMutation) SetActionIndex(i int) {
	m.action_index = &i
	m.addaction_index = nil
}

// ActionIndex returns the value of the "action_index" field in the mutation.
func (m *ExecutionRecordMutation) ActionIndex() (r int, exists bool) {
	v := m.action_index
	if v == nil {
		return
	}
	return *v, true
}

// OldActionIndex returns the old "action_index" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldActionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionIndex: %w", err)
	}
	return oldValue.ActionIndex, nil
}

// AddActionIndex adds i to the "action_index" field.
func (m *ExecutionRecordMutation) AddActionIndex(i int) {
	if m.addaction_index != nil {
		*m.addaction_index += i
	} else {
		m.addaction_index = &i
	}
}

// AddedActionIndex returns the value that was added to the "action_index" field in this mutation.
func (m *ExecutionRecordMutation) AddedActionIndex() (r int, exists bool) {
	v := m.addaction_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionIndex resets all changes to the "action_index" field.
func (m *ExecutionRecordMutation) ResetActionIndex() {
	m.action_index = nil
	m.addaction_index = nil
}

// SetActionType sets the "action_type" field.
func (m *ExecutionRecordMutation) SetActionType(s string) {
	m.action_type = &s
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *ExecutionRecordMutation) ActionType() (r string, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldActionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *ExecutionRecordMutation) ResetActionType() {
	m.action_type = nil
}

// SetParams sets the "params" field.
func (m *ExecutionRecordMutation) SetParams(value map[string]string) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *ExecutionRecordMutation) Params() (r map[string]string, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldParams(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *ExecutionRecordMutation) ClearParams() {
	m.params = nil
	m.clearedFields[executionrecord.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *ExecutionRecordMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *ExecutionRecordMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, executionrecord.FieldParams)
}

// SetCommand sets the "command" field.
func (m *ExecutionRecordMutation) SetCommand(value map[string]interface{}) {
	m.command = &value
}

// Command returns the value of the "command" field in the mutation.
func (m *ExecutionRecordMutation) Command() (r map[string]interface{}, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldCommand(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *ExecutionRecordMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[executionrecord.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *ExecutionRecordMutation) CommandCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *ExecutionRecordMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, executionrecord.FieldCommand)
}

// SetStatus sets the "status" field.
func (m *ExecutionRecordMutation) SetStatus(e executionrecord.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionRecordMutation) Status() (r executionrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldStatus(ctx context.Context) (v executionrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetSkipReason sets the "skip_reason" field.
func (m *ExecutionRecordMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *ExecutionRecordMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldSkipReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *ExecutionRecordMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[executionrecord.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *ExecutionRecordMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *ExecutionRecordMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, executionrecord.FieldSkipReason)
}

// SetDetail sets the "detail" field.
func (m *ExecutionRecordMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *ExecutionRecordMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *ExecutionRecordMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[executionrecord.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *ExecutionRecordMutation) DetailCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *ExecutionRecordMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, executionrecord.FieldDetail)
}

// SetStdout sets the "stdout" field.
func (m *ExecutionRecordMutation) SetStdout(s string) {
	m.stdout = &s
}

// Stdout returns the value of the "stdout" field in the mutation.
func (m *ExecutionRecordMutation) Stdout() (r string, exists bool) {
	v := m.stdout
	if v == nil {
		return
	}
	return *v, true
}

// OldStdout returns the old "stdout" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldStdout(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStdout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStdout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStdout: %w", err)
	}
	return oldValue.Stdout, nil
}

// ClearStdout clears the value of the "stdout" field.
func (m *ExecutionRecordMutation) ClearStdout() {
	m.stdout = nil
	m.clearedFields[executionrecord.FieldStdout] = struct{}{}
}

// StdoutCleared returns if the "stdout" field was cleared in this mutation.
func (m *ExecutionRecordMutation) StdoutCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldStdout]
	return ok
}

// ResetStdout resets all changes to the "stdout" field.
func (m *ExecutionRecordMutation) ResetStdout() {
	m.stdout = nil
	delete(m.clearedFields, executionrecord.FieldStdout)
}

// SetStderr sets the "stderr" field.
func (m *ExecutionRecordMutation) SetStderr(s string) {
	m.stderr = &s
}

// Stderr returns the value of the "stderr" field in the mutation.
func (m *ExecutionRecordMutation) Stderr() (r string, exists bool) {
	v := m.stderr
	if v == nil {
		return
	}
	return *v, true
}

// OldStderr returns the old "stderr" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldStderr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStderr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStderr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStderr: %w", err)
	}
	return oldValue.Stderr, nil
}

// ClearStderr clears the value of the "stderr" field.
func (m *ExecutionRecordMutation) ClearStderr() {
	m.stderr = nil
	m.clearedFields[executionrecord.FieldStderr] = struct{}{}
}

// StderrCleared returns if the "stderr" field was cleared in this mutation.
func (m *ExecutionRecordMutation) StderrCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldStderr]
	return ok
}

// ResetStderr resets all changes to the "stderr" field.
func (m *ExecutionRecordMutation) ResetStderr() {
	m.stderr = nil
	delete(m.clearedFields, executionrecord.FieldStderr)
}

// SetExitCode sets the "exit_code" field.
func (m *ExecutionRecordMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *ExecutionRecordMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldExitCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *ExecutionRecordMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *ExecutionRecordMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearExitCode clears the value of the "exit_code" field.
func (m *ExecutionRecordMutation) ClearExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	m.clearedFields[executionrecord.FieldExitCode] = struct{}{}
}

// ExitCodeCleared returns if the "exit_code" field was cleared in this mutation.
func (m *ExecutionRecordMutation) ExitCodeCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldExitCode]
	return ok
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *ExecutionRecordMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	delete(m.clearedFields, executionrecord.FieldExitCode)
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExecutionRecordMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[executionrecord.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExecutionRecordMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionRecordMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, executionrecord.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExecutionRecordMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExecutionRecordMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExecutionRecordMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[executionrecord.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExecutionRecordMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExecutionRecordMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, executionrecord.FieldFinishedAt)
}

// SetVerification sets the "verification" field.
func (m *ExecutionRecordMutation) SetVerification(value map[string]interface{}) {
	m.verification = &value
}

// Verification returns the value of the "verification" field in the mutation.
func (m *ExecutionRecordMutation) Verification() (r map[string]interface{}, exists bool) {
	v := m.verification
	if v == nil {
		return
	}
	return *v, true
}

// OldVerification returns the old "verification" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldVerification(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerification: %w", err)
	}
	return oldValue.Verification, nil
}

// ClearVerification clears the value of the "verification" field.
func (m *ExecutionRecordMutation) ClearVerification() {
	m.verification = nil
	m.clearedFields[executionrecord.FieldVerification] = struct{}{}
}

// VerificationCleared returns if the "verification" field was cleared in this mutation.
func (m *ExecutionRecordMutation) VerificationCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldVerification]
	return ok
}

// ResetVerification resets all changes to the "verification" field.
func (m *ExecutionRecordMutation) ResetVerification() {
	m.verification = nil
	delete(m.clearedFields, executionrecord.FieldVerification)
}

// SetRollbackOf sets the "rollback_of" field.
func (m *ExecutionRecordMutation) SetRollbackOf(s string) {
	m.rollback_of = &s
}

// RollbackOf returns the value of the "rollback_of" field in the mutation.
func (m *ExecutionRecordMutation) RollbackOf() (r string, exists bool) {
	v := m.rollback_of
	if v == nil {
		return
	}
	return *v, true
}

// OldRollbackOf returns the old "rollback_of" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldRollbackOf(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRollbackOf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRollbackOf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRollbackOf: %w", err)
	}
	return oldValue.RollbackOf, nil
}

// ClearRollbackOf clears the value of the "rollback_of" field.
func (m *ExecutionRecordMutation) ClearRollbackOf() {
	m.rollback_of = nil
	m.clearedFields[executionrecord.FieldRollbackOf] = struct{}{}
}

// RollbackOfCleared returns if the "rollback_of" field was cleared in this mutation.
func (m *ExecutionRecordMutation) RollbackOfCleared() bool {
	_, ok := m.clearedFields[executionrecord.FieldRollbackOf]
	return ok
}

// ResetRollbackOf resets all changes to the "rollback_of" field.
func (m *ExecutionRecordMutation) ResetRollbackOf() {
	m.rollback_of = nil
	delete(m.clearedFields, executionrecord.FieldRollbackOf)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionRecord entity.
// If the ExecutionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *ExecutionRecordMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[executionrecord.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *ExecutionRecordMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *ExecutionRecordMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *ExecutionRecordMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the ExecutionRecordMutation builder.
func (m *ExecutionRecordMutation) Where(ps ...predicate.ExecutionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionRecord).
func (m *ExecutionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionRecordMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.incident != nil {
		fields = append(fields, executionrecord.FieldIncidentID)
	}
	if m.action_index != nil {
		fields = append(fields, executionrecord.FieldActionIndex)
	}
	if m.action_type != nil {
		fields = append(fields, executionrecord.FieldActionType)
	}
	if m.params != nil {
		fields = append(fields, executionrecord.FieldParams)
	}
	if m.command != nil {
		fields = append(fields, executionrecord.FieldCommand)
	}
	if m.status != nil {
		fields = append(fields, executionrecord.FieldStatus)
	}
	if m.skip_reason != nil {
		fields = append(fields, executionrecord.FieldSkipReason)
	}
	if m.detail != nil {
		fields = append(fields, executionrecord.FieldDetail)
	}
	if m.stdout != nil {
		fields = append(fields, executionrecord.FieldStdout)
	}
	if m.stderr != nil {
		fields = append(fields, executionrecord.FieldStderr)
	}
	if m.exit_code != nil {
		fields = append(fields, executionrecord.FieldExitCode)
	}
	if m.started_at != nil {
		fields = append(fields, executionrecord.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, executionrecord.FieldFinishedAt)
	}
	if m.verification != nil {
		fields = append(fields, executionrecord.FieldVerification)
	}
	if m.rollback_of != nil {
		fields = append(fields, executionrecord.FieldRollbackOf)
	}
	if m.created_at != nil {
		fields = append(fields, executionrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionrecord.FieldIncidentID:
		return m.IncidentID()
	case executionrecord.FieldActionIndex:
		return m.ActionIndex()
	case executionrecord.FieldActionType:
		return m.ActionType()
	case executionrecord.FieldParams:
		return m.Params()
	case executionrecord.FieldCommand:
		return m.Command()
	case executionrecord.FieldStatus:
		return m.Status()
	case executionrecord.FieldSkipReason:
		return m.SkipReason()
	case executionrecord.FieldDetail:
		return m.Detail()
	case executionrecord.FieldStdout:
		return m.Stdout()
	case executionrecord.FieldStderr:
		return m.Stderr()
	case executionrecord.FieldExitCode:
		return m.ExitCode()
	case executionrecord.FieldStartedAt:
		return m.StartedAt()
	case executionrecord.FieldFinishedAt:
		return m.FinishedAt()
	case executionrecord.FieldVerification:
		return m.Verification()
	case executionrecord.FieldRollbackOf:
		return m.RollbackOf()
	case executionrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionrecord.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case executionrecord.FieldActionIndex:
		return m.OldActionIndex(ctx)
	case executionrecord.FieldActionType:
		return m.OldActionType(ctx)
	case executionrecord.FieldParams:
		return m.OldParams(ctx)
	case executionrecord.FieldCommand:
		return m.OldCommand(ctx)
	case executionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case executionrecord.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case executionrecord.FieldDetail:
		return m.OldDetail(ctx)
	case executionrecord.FieldStdout:
		return m.OldStdout(ctx)
	case executionrecord.FieldStderr:
		return m.OldStderr(ctx)
	case executionrecord.FieldExitCode:
		return m.OldExitCode(ctx)
	case executionrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case executionrecord.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case executionrecord.FieldVerification:
		return m.OldVerification(ctx)
	case executionrecord.FieldRollbackOf:
		return m.OldRollbackOf(ctx)
	case executionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionrecord.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case executionrecord.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionIndex(v)
		return nil
	case executionrecord.FieldActionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case executionrecord.FieldParams:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case executionrecord.FieldCommand:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case executionrecord.FieldStatus:
		v, ok := value.(executionrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionrecord.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case executionrecord.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case executionrecord.FieldStdout:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStdout(v)
		return nil
	case executionrecord.FieldStderr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStderr(v)
		return nil
	case executionrecord.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case executionrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case executionrecord.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case executionrecord.FieldVerification:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerification(v)
		return nil
	case executionrecord.FieldRollbackOf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRollbackOf(v)
		return nil
	case executionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addaction_index != nil {
		fields = append(fields, executionrecord.FieldActionIndex)
	}
	if m.addexit_code != nil {
		fields = append(fields, executionrecord.FieldExitCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionrecord.FieldActionIndex:
		return m.AddedActionIndex()
	case executionrecord.FieldExitCode:
		return m.AddedExitCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionrecord.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionIndex(v)
		return nil
	case executionrecord.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionrecord.FieldParams) {
		fields = append(fields, executionrecord.FieldParams)
	}
	if m.FieldCleared(executionrecord.FieldCommand) {
		fields = append(fields, executionrecord.FieldCommand)
	}
	if m.FieldCleared(executionrecord.FieldSkipReason) {
		fields = append(fields, executionrecord.FieldSkipReason)
	}
	if m.FieldCleared(executionrecord.FieldDetail) {
		fields = append(fields, executionrecord.FieldDetail)
	}
	if m.FieldCleared(executionrecord.FieldStdout) {
		fields = append(fields, executionrecord.FieldStdout)
	}
	if m.FieldCleared(executionrecord.FieldStderr) {
		fields = append(fields, executionrecord.FieldStderr)
	}
	if m.FieldCleared(executionrecord.FieldExitCode) {
		fields = append(fields, executionrecord.FieldExitCode)
	}
	if m.FieldCleared(executionrecord.FieldStartedAt) {
		fields = append(fields, executionrecord.FieldStartedAt)
	}
	if m.FieldCleared(executionrecord.FieldFinishedAt) {
		fields = append(fields, executionrecord.FieldFinishedAt)
	}
	if m.FieldCleared(executionrecord.FieldVerification) {
		fields = append(fields, executionrecord.FieldVerification)
	}
	if m.FieldCleared(executionrecord.FieldRollbackOf) {
		fields = append(fields, executionrecord.FieldRollbackOf)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionRecordMutation) ClearField(name string) error {
	switch name {
	case executionrecord.FieldParams:
		m.ClearParams()
		return nil
	case executionrecord.FieldCommand:
		m.ClearCommand()
		return nil
	case executionrecord.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case executionrecord.FieldDetail:
		m.ClearDetail()
		return nil
	case executionrecord.FieldStdout:
		m.ClearStdout()
		return nil
	case executionrecord.FieldStderr:
		m.ClearStderr()
		return nil
	case executionrecord.FieldExitCode:
		m.ClearExitCode()
		return nil
	case executionrecord.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case executionrecord.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case executionrecord.FieldVerification:
		m.ClearVerification()
		return nil
	case executionrecord.FieldRollbackOf:
		m.ClearRollbackOf()
		return nil
	}
	return fmt.Errorf("unknown ExecutionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionRecordMutation) ResetField(name string) error {
	switch name {
	case executionrecord.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case executionrecord.FieldActionIndex:
		m.ResetActionIndex()
		return nil
	case executionrecord.FieldActionType:
		m.ResetActionType()
		return nil
	case executionrecord.FieldParams:
		m.ResetParams()
		return nil
	case executionrecord.FieldCommand:
		m.ResetCommand()
		return nil
	case executionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case executionrecord.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case executionrecord.FieldDetail:
		m.ResetDetail()
		return nil
	case executionrecord.FieldStdout:
		m.ResetStdout()
		return nil
	case executionrecord.FieldStderr:
		m.ResetStderr()
		return nil
	case executionrecord.FieldExitCode:
		m.ResetExitCode()
		return nil
	case executionrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case executionrecord.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case executionrecord.FieldVerification:
		m.ResetVerification()
		return nil
	case executionrecord.FieldRollbackOf:
		m.ResetRollbackOf()
		return nil
	case executionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, executionrecord.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionrecord.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, executionrecord.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case executionrecord.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionRecordMutation) ClearEdge(name string) error {
	switch name {
	case executionrecord.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown ExecutionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionRecordMutation) ResetEdge(name string) error {
	switch name {
	case executionrecord.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown ExecutionRecord edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	fingerprint         *string
	alert_id            *string
	source              *incident.Source
	severity            *incident.Severity
	service             *string
	title               *string
	description         *string
	alert               *map[string]interface{}
	alert_history       *[]map[string]interface{}
	appendalert_history []map[string]interface{}
	state               *incident.State
	terminal_outcome    *incident.TerminalOutcome
	terminal_reason     *string
	context             *map[string]interface{}
	plan                *map[string]interface{}
	next_action         *int
	addnext_action      *int
	error_message       *string
	worker_id           *string
	heartbeat_at        *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	executions          map[string]struct{}
	removedexecutions   map[string]struct{}
	clearedexecutions   bool
	approvals           map[string]struct{}
	removedapprovals    map[string]struct{}
	clearedapprovals    bool
	done                bool
	oldValue            func(context.Context) (*Incident, error)
	predicates          []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *IncidentMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *IncidentMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *IncidentMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetAlertID sets the "alert_id" field.
func (m *IncidentMutation) SetAlertID(s string) {
	m.alert_id = &s
}

// AlertID returns the value of the "alert_id" field in the mutation.
func (m *IncidentMutation) AlertID() (r string, exists bool) {
	v := m.alert_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertID returns the old "alert_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAlertID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertID: %w", err)
	}
	return oldValue.AlertID, nil
}

// ResetAlertID resets all changes to the "alert_id" field.
func (m *IncidentMutation) ResetAlertID() {
	m.alert_id = nil
}

// SetSource sets the "source" field.
func (m *IncidentMutation) SetSource(i incident.Source) {
	m.source = &i
}

// Source returns the value of the "source" field in the mutation.
func (m *IncidentMutation) Source() (r incident.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSource(ctx context.Context) (v incident.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *IncidentMutation) ResetSource() {
	m.source = nil
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(i incident.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r incident.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v incident.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
}

// SetService sets the "service" field.
func (m *IncidentMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *IncidentMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ResetService resets all changes to the "service" field.
func (m *IncidentMutation) ResetService() {
	m.service = nil
}

// SetTitle sets the "title" field.
func (m *IncidentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *IncidentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IncidentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IncidentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[incident.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IncidentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[incident.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IncidentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, incident.FieldDescription)
}

// SetAlert sets the "alert" field.
func (m *IncidentMutation) SetAlert(value map[string]interface{}) {
	m.alert = &value
}

// Alert returns the value of the "alert" field in the mutation.
func (m *IncidentMutation) Alert() (r map[string]interface{}, exists bool) {
	v := m.alert
	if v == nil {
		return
	}
	return *v, true
}

// OldAlert returns the old "alert" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAlert(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlert is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlert requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlert: %w", err)
	}
	return oldValue.Alert, nil
}

// ResetAlert resets all changes to the "alert" field.
func (m *IncidentMutation) ResetAlert() {
	m.alert = nil
}

// SetAlertHistory sets the "alert_history" field.
func (m *IncidentMutation) SetAlertHistory(value []map[string]interface{}) {
	m.alert_history = &value
	m.appendalert_history = nil
}

// AlertHistory returns the value of the "alert_history" field in the mutation.
func (m *IncidentMutation) AlertHistory() (r []map[string]interface{}, exists bool) {
	v := m.alert_history
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertHistory returns the old "alert_history" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAlertHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertHistory: %w", err)
	}
	return oldValue.AlertHistory, nil
}

// AppendAlertHistory adds value to the "alert_history" field.
func (m *IncidentMutation) AppendAlertHistory(value []map[string]interface{}) {
	m.appendalert_history = append(m.appendalert_history, value...)
}

// AppendedAlertHistory returns the list of values that were appended to the "alert_history" field in this mutation.
func (m *IncidentMutation) AppendedAlertHistory() ([]map[string]interface{}, bool) {
	if len(m.appendalert_history) == 0 {
		return nil, false
	}
	return m.appendalert_history, true
}

// ClearAlertHistory clears the value of the "alert_history" field.
func (m *IncidentMutation) ClearAlertHistory() {
	m.alert_history = nil
	m.appendalert_history = nil
	m.clearedFields[incident.FieldAlertHistory] = struct{}{}
}

// AlertHistoryCleared returns if the "alert_history" field was cleared in this mutation.
func (m *IncidentMutation) AlertHistoryCleared() bool {
	_, ok := m.clearedFields[incident.FieldAlertHistory]
	return ok
}

// ResetAlertHistory resets all changes to the "alert_history" field.
func (m *IncidentMutation) ResetAlertHistory() {
	m.alert_history = nil
	m.appendalert_history = nil
	delete(m.clearedFields, incident.FieldAlertHistory)
}

// SetState sets the "state" field.
func (m *IncidentMutation) SetState(i incident.State) {
	m.state = &i
}

// State returns the value of the "state" field in the mutation.
func (m *IncidentMutation) State() (r incident.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldState(ctx context.Context) (v incident.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *IncidentMutation) ResetState() {
	m.state = nil
}

// SetTerminalOutcome sets the "terminal_outcome" field.
func (m *IncidentMutation) SetTerminalOutcome(io incident.TerminalOutcome) {
	m.terminal_outcome = &io
}

// TerminalOutcome returns the value of the "terminal_outcome" field in the mutation.
func (m *IncidentMutation) TerminalOutcome() (r incident.TerminalOutcome, exists bool) {
	v := m.terminal_outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminalOutcome returns the old "terminal_outcome" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTerminalOutcome(ctx context.Context) (v *incident.TerminalOutcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminalOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminalOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminalOutcome: %w", err)
	}
	return oldValue.TerminalOutcome, nil
}

// ClearTerminalOutcome clears the value of the "terminal_outcome" field.
func (m *IncidentMutation) ClearTerminalOutcome() {
	m.terminal_outcome = nil
	m.clearedFields[incident.FieldTerminalOutcome] = struct{}{}
}

// TerminalOutcomeCleared returns if the "terminal_outcome" field was cleared in this mutation.
func (m *IncidentMutation) TerminalOutcomeCleared() bool {
	_, ok := m.clearedFields[incident.FieldTerminalOutcome]
	return ok
}

// ResetTerminalOutcome resets all changes to the "terminal_outcome" field.
func (m *IncidentMutation) ResetTerminalOutcome() {
	m.terminal_outcome = nil
	delete(m.clearedFields, incident.FieldTerminalOutcome)
}

// SetTerminalReason sets the "terminal_reason" field.
func (m *IncidentMutation) SetTerminalReason(s string) {
	m.terminal_reason = &s
}

// TerminalReason returns the value of the "terminal_reason" field in the mutation.
func (m *IncidentMutation) TerminalReason() (r string, exists bool) {
	v := m.terminal_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminalReason returns the old "terminal_reason" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTerminalReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminalReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminalReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminalReason: %w", err)
	}
	return oldValue.TerminalReason, nil
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (m *IncidentMutation) ClearTerminalReason() {
	m.terminal_reason = nil
	m.clearedFields[incident.FieldTerminalReason] = struct{}{}
}

// TerminalReasonCleared returns if the "terminal_reason" field was cleared in this mutation.
func (m *IncidentMutation) TerminalReasonCleared() bool {
	_, ok := m.clearedFields[incident.FieldTerminalReason]
	return ok
}

// ResetTerminalReason resets all changes to the "terminal_reason" field.
func (m *IncidentMutation) ResetTerminalReason() {
	m.terminal_reason = nil
	delete(m.clearedFields, incident.FieldTerminalReason)
}

// SetContext sets the "context" field.
func (m *IncidentMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *IncidentMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *IncidentMutation) ClearContext() {
	m.context = nil
	m.clearedFields[incident.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *IncidentMutation) ContextCleared() bool {
	_, ok := m.clearedFields[incident.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *IncidentMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, incident.FieldContext)
}

// SetPlan sets the "plan" field.
func (m *IncidentMutation) SetPlan(value map[string]interface{}) {
	m.plan = &value
}

// Plan returns the value of the "plan" field in the mutation.
func (m *IncidentMutation) Plan() (r map[string]interface{}, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *IncidentMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[incident.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *IncidentMutation) PlanCleared() bool {
	_, ok := m.clearedFields[incident.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *IncidentMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, incident.FieldPlan)
}

// SetNextAction sets the "next_action" field.
func (m *IncidentMutation) SetNextAction(i int) {
	m.next_action = &i
	m.addnext_action = nil
}

// NextAction returns the value of the "next_action" field in the mutation.
func (m *IncidentMutation) NextAction() (r int, exists bool) {
	v := m.next_action
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAction returns the old "next_action" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldNextAction(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAction: %w", err)
	}
	return oldValue.NextAction, nil
}

// AddNextAction adds i to the "next_action" field.
func (m *IncidentMutation) AddNextAction(i int) {
	if m.addnext_action != nil {
		*m.addnext_action += i
	} else {
		m.addnext_action = &i
	}
}

// AddedNextAction returns the value that was added to the "next_action" field in this mutation.
func (m *IncidentMutation) AddedNextAction() (r int, exists bool) {
	v := m.addnext_action
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextAction resets all changes to the "next_action" field.
func (m *IncidentMutation) ResetNextAction() {
	m.next_action = nil
	m.addnext_action = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *IncidentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *IncidentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *IncidentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[incident.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *IncidentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[incident.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *IncidentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, incident.FieldErrorMessage)
}

// SetWorkerID sets the "worker_id" field.
func (m *IncidentMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *IncidentMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *IncidentMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[incident.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *IncidentMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[incident.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *IncidentMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, incident.FieldWorkerID)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *IncidentMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *IncidentMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *IncidentMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[incident.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *IncidentMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *IncidentMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, incident.FieldHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IncidentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IncidentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IncidentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *IncidentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *IncidentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *IncidentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[incident.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *IncidentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *IncidentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, incident.FieldCompletedAt)
}

// AddExecutionIDs adds the "executions" edge to the ExecutionRecord entity by ids.
func (m *IncidentMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the ExecutionRecord entity.
func (m *IncidentMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the ExecutionRecord entity was cleared.
func (m *IncidentMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the ExecutionRecord entity by IDs.
func (m *IncidentMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the ExecutionRecord entity.
func (m *IncidentMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *IncidentMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *IncidentMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by ids.
func (m *IncidentMutation) AddApprovalIDs(ids ...string) {
	if m.approvals == nil {
		m.approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.approvals[ids[i]] = struct{}{}
	}
}

// ClearApprovals clears the "approvals" edge to the ApprovalRequest entity.
func (m *IncidentMutation) ClearApprovals() {
	m.clearedapprovals = true
}

// ApprovalsCleared reports if the "approvals" edge to the ApprovalRequest entity was cleared.
func (m *IncidentMutation) ApprovalsCleared() bool {
	return m.clearedapprovals
}

// RemoveApprovalIDs removes the "approvals" edge to the ApprovalRequest entity by IDs.
func (m *IncidentMutation) RemoveApprovalIDs(ids ...string) {
	if m.removedapprovals == nil {
		m.removedapprovals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approvals, ids[i])
		m.removedapprovals[ids[i]] = struct{}{}
	}
}

// RemovedApprovals returns the removed IDs of the "approvals" edge to the ApprovalRequest entity.
func (m *IncidentMutation) RemovedApprovalsIDs() (ids []string) {
	for id := range m.removedapprovals {
		ids = append(ids, id)
	}
	return
}

// ApprovalsIDs returns the "approvals" edge IDs in the mutation.
func (m *IncidentMutation) ApprovalsIDs() (ids []string) {
	for id := range m.approvals {
		ids = append(ids, id)
	}
	return
}

// ResetApprovals resets all changes to the "approvals" edge.
func (m *IncidentMutation) ResetApprovals() {
	m.approvals = nil
	m.clearedapprovals = false
	m.removedapprovals = nil
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.fingerprint != nil {
		fields = append(fields, incident.FieldFingerprint)
	}
	if m.alert_id != nil {
		fields = append(fields, incident.FieldAlertID)
	}
	if m.source != nil {
		fields = append(fields, incident.FieldSource)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.service != nil {
		fields = append(fields, incident.FieldService)
	}
	if m.title != nil {
		fields = append(fields, incident.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, incident.FieldDescription)
	}
	if m.alert != nil {
		fields = append(fields, incident.FieldAlert)
	}
	if m.alert_history != nil {
		fields = append(fields, incident.FieldAlertHistory)
	}
	if m.state != nil {
		fields = append(fields, incident.FieldState)
	}
	if m.terminal_outcome != nil {
		fields = append(fields, incident.FieldTerminalOutcome)
	}
	if m.terminal_reason != nil {
		fields = append(fields, incident.FieldTerminalReason)
	}
	if m.context != nil {
		fields = append(fields, incident.FieldContext)
	}
	if m.plan != nil {
		fields = append(fields, incident.FieldPlan)
	}
	if m.next_action != nil {
		fields = append(fields, incident.FieldNextAction)
	}
	if m.error_message != nil {
		fields = append(fields, incident.FieldErrorMessage)
	}
	if m.worker_id != nil {
		fields = append(fields, incident.FieldWorkerID)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, incident.FieldHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, incident.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, incident.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldFingerprint:
		return m.Fingerprint()
	case incident.FieldAlertID:
		return m.AlertID()
	case incident.FieldSource:
		return m.Source()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldService:
		return m.Service()
	case incident.FieldTitle:
		return m.Title()
	case incident.FieldDescription:
		return m.Description()
	case incident.FieldAlert:
		return m.Alert()
	case incident.FieldAlertHistory:
		return m.AlertHistory()
	case incident.FieldState:
		return m.State()
	case incident.FieldTerminalOutcome:
		return m.TerminalOutcome()
	case incident.FieldTerminalReason:
		return m.TerminalReason()
	case incident.FieldContext:
		return m.Context()
	case incident.FieldPlan:
		return m.Plan()
	case incident.FieldNextAction:
		return m.NextAction()
	case incident.FieldErrorMessage:
		return m.ErrorMessage()
	case incident.FieldWorkerID:
		return m.WorkerID()
	case incident.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	case incident.FieldUpdatedAt:
		return m.UpdatedAt()
	case incident.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case incident.FieldAlertID:
		return m.OldAlertID(ctx)
	case incident.FieldSource:
		return m.OldSource(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldService:
		return m.OldService(ctx)
	case incident.FieldTitle:
		return m.OldTitle(ctx)
	case incident.FieldDescription:
		return m.OldDescription(ctx)
	case incident.FieldAlert:
		return m.OldAlert(ctx)
	case incident.FieldAlertHistory:
		return m.OldAlertHistory(ctx)
	case incident.FieldState:
		return m.OldState(ctx)
	case incident.FieldTerminalOutcome:
		return m.OldTerminalOutcome(ctx)
	case incident.FieldTerminalReason:
		return m.OldTerminalReason(ctx)
	case incident.FieldContext:
		return m.OldContext(ctx)
	case incident.FieldPlan:
		return m.OldPlan(ctx)
	case incident.FieldNextAction:
		return m.OldNextAction(ctx)
	case incident.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case incident.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case incident.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case incident.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case incident.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case incident.FieldAlertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertID(v)
		return nil
	case incident.FieldSource:
		v, ok := value.(incident.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(incident.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case incident.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incident.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case incident.FieldAlert:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlert(v)
		return nil
	case incident.FieldAlertHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertHistory(v)
		return nil
	case incident.FieldState:
		v, ok := value.(incident.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case incident.FieldTerminalOutcome:
		v, ok := value.(incident.TerminalOutcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminalOutcome(v)
		return nil
	case incident.FieldTerminalReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminalReason(v)
		return nil
	case incident.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case incident.FieldPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case incident.FieldNextAction:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAction(v)
		return nil
	case incident.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case incident.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case incident.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case incident.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case incident.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	var fields []string
	if m.addnext_action != nil {
		fields = append(fields, incident.FieldNextAction)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldNextAction:
		return m.AddedNextAction()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incident.FieldNextAction:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextAction(v)
		return nil
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldDescription) {
		fields = append(fields, incident.FieldDescription)
	}
	if m.FieldCleared(incident.FieldAlertHistory) {
		fields = append(fields, incident.FieldAlertHistory)
	}
	if m.FieldCleared(incident.FieldTerminalOutcome) {
		fields = append(fields, incident.FieldTerminalOutcome)
	}
	if m.FieldCleared(incident.FieldTerminalReason) {
		fields = append(fields, incident.FieldTerminalReason)
	}
	if m.FieldCleared(incident.FieldContext) {
		fields = append(fields, incident.FieldContext)
	}
	if m.FieldCleared(incident.FieldPlan) {
		fields = append(fields, incident.FieldPlan)
	}
	if m.FieldCleared(incident.FieldErrorMessage) {
		fields = append(fields, incident.FieldErrorMessage)
	}
	if m.FieldCleared(incident.FieldWorkerID) {
		fields = append(fields, incident.FieldWorkerID)
	}
	if m.FieldCleared(incident.FieldHeartbeatAt) {
		fields = append(fields, incident.FieldHeartbeatAt)
	}
	if m.FieldCleared(incident.FieldCompletedAt) {
		fields = append(fields, incident.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldDescription:
		m.ClearDescription()
		return nil
	case incident.FieldAlertHistory:
		m.ClearAlertHistory()
		return nil
	case incident.FieldTerminalOutcome:
		m.ClearTerminalOutcome()
		return nil
	case incident.FieldTerminalReason:
		m.ClearTerminalReason()
		return nil
	case incident.FieldContext:
		m.ClearContext()
		return nil
	case incident.FieldPlan:
		m.ClearPlan()
		return nil
	case incident.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case incident.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case incident.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case incident.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case incident.FieldAlertID:
		m.ResetAlertID()
		return nil
	case incident.FieldSource:
		m.ResetSource()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldService:
		m.ResetService()
		return nil
	case incident.FieldTitle:
		m.ResetTitle()
		return nil
	case incident.FieldDescription:
		m.ResetDescription()
		return nil
	case incident.FieldAlert:
		m.ResetAlert()
		return nil
	case incident.FieldAlertHistory:
		m.ResetAlertHistory()
		return nil
	case incident.FieldState:
		m.ResetState()
		return nil
	case incident.FieldTerminalOutcome:
		m.ResetTerminalOutcome()
		return nil
	case incident.FieldTerminalReason:
		m.ResetTerminalReason()
		return nil
	case incident.FieldContext:
		m.ResetContext()
		return nil
	case incident.FieldPlan:
		m.ResetPlan()
		return nil
	case incident.FieldNextAction:
		m.ResetNextAction()
		return nil
	case incident.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case incident.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case incident.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case incident.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case incident.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.executions != nil {
		edges = append(edges, incident.EdgeExecutions)
	}
	if m.approvals != nil {
		edges = append(edges, incident.EdgeApprovals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.approvals))
		for id := range m.approvals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecutions != nil {
		edges = append(edges, incident.EdgeExecutions)
	}
	if m.removedapprovals != nil {
		edges = append(edges, incident.EdgeApprovals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.removedapprovals))
		for id := range m.removedapprovals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexecutions {
		edges = append(edges, incident.EdgeExecutions)
	}
	if m.clearedapprovals {
		edges = append(edges, incident.EdgeApprovals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	switch name {
	case incident.EdgeExecutions:
		return m.clearedexecutions
	case incident.EdgeApprovals:
		return m.clearedapprovals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	switch name {
	case incident.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case incident.EdgeApprovals:
		m.ResetApprovals()
		return nil
	}
	return fmt.Errorf("unknown Incident edge %s", name)
}
