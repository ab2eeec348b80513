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
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/auditentry"
	"github.com/MiniSankaz/fleetd/ent/predicate"
	"github.com/MiniSankaz/fleetd/ent/usagealert"
	"github.com/MiniSankaz/fleetd/ent/usagemetric"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalDecision = "ApprovalDecision"
	TypeApprovalRequest  = "ApprovalRequest"
	TypeAuditEntry       = "AuditEntry"
	TypeUsageAlert       = "UsageAlert"
	TypeUsageMetric      = "UsageMetric"
)

// ApprovalDecisionMutation represents an operation that mutates the ApprovalDecision nodes in the graph.
type ApprovalDecisionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	decider_id     *string
	choice         *string
	reason         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*ApprovalDecision, error)
	predicates     []predicate.ApprovalDecision
}

var _ ent.Mutation = (*ApprovalDecisionMutation)(nil)

// approvaldecisionOption allows management of the mutation configuration using functional options.
type approvaldecisionOption func(*ApprovalDecisionMutation)

// newApprovalDecisionMutation creates new mutation for the ApprovalDecision entity.
func newApprovalDecisionMutation(c config, op Op, opts ...approvaldecisionOption) *ApprovalDecisionMutation {
	m := &ApprovalDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalDecisionID sets the ID field of the mutation.
func withApprovalDecisionID(id string) approvaldecisionOption {
	return func(m *ApprovalDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalDecision
		)
		m.oldValue = func(ctx context.Context) (*ApprovalDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalDecision sets the old ApprovalDecision of the mutation.
func withApprovalDecision(node *ApprovalDecision) approvaldecisionOption {
	return func(m *ApprovalDecisionMutation) {
		m.oldValue = func(context.Context) (*ApprovalDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalDecision entities.
func (m *ApprovalDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *ApprovalDecisionMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ApprovalDecisionMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ApprovalDecision entity.
// If the ApprovalDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalDecisionMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ApprovalDecisionMutation) ResetRequestID() {
	m.request = nil
}

// SetDeciderID sets the "decider_id" field.
func (m *ApprovalDecisionMutation) SetDeciderID(s string) {
	m.decider_id = &s
}

// DeciderID returns the value of the "decider_id" field in the mutation.
func (m *ApprovalDecisionMutation) DeciderID() (r string, exists bool) {
	v := m.decider_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeciderID returns the old "decider_id" field's value of the ApprovalDecision entity.
// If the ApprovalDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalDecisionMutation) OldDeciderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeciderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeciderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeciderID: %w", err)
	}
	return oldValue.DeciderID, nil
}

// ResetDeciderID resets all changes to the "decider_id" field.
func (m *ApprovalDecisionMutation) ResetDeciderID() {
	m.decider_id = nil
}

// SetChoice sets the "choice" field.
func (m *ApprovalDecisionMutation) SetChoice(s string) {
	m.choice = &s
}

// Choice returns the value of the "choice" field in the mutation.
func (m *ApprovalDecisionMutation) Choice() (r string, exists bool) {
	v := m.choice
	if v == nil {
		return
	}
	return *v, true
}

// OldChoice returns the old "choice" field's value of the ApprovalDecision entity.
// If the ApprovalDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalDecisionMutation) OldChoice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoice: %w", err)
	}
	return oldValue.Choice, nil
}

// ResetChoice resets all changes to the "choice" field.
func (m *ApprovalDecisionMutation) ResetChoice() {
	m.choice = nil
}

// SetReason sets the "reason" field.
func (m *ApprovalDecisionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ApprovalDecisionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ApprovalDecision entity.
// If the ApprovalDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalDecisionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ApprovalDecisionMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[approvaldecision.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ApprovalDecisionMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[approvaldecision.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ApprovalDecisionMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, approvaldecision.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalDecision entity.
// If the ApprovalDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ApprovalDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the ApprovalRequest entity.
func (m *ApprovalDecisionMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[approvaldecision.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the ApprovalRequest entity was cleared.
func (m *ApprovalDecisionMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *ApprovalDecisionMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *ApprovalDecisionMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the ApprovalDecisionMutation builder.
func (m *ApprovalDecisionMutation) Where(ps ...predicate.ApprovalDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalDecision).
func (m *ApprovalDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalDecisionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.request != nil {
		fields = append(fields, approvaldecision.FieldRequestID)
	}
	if m.decider_id != nil {
		fields = append(fields, approvaldecision.FieldDeciderID)
	}
	if m.choice != nil {
		fields = append(fields, approvaldecision.FieldChoice)
	}
	if m.reason != nil {
		fields = append(fields, approvaldecision.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, approvaldecision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvaldecision.FieldRequestID:
		return m.RequestID()
	case approvaldecision.FieldDeciderID:
		return m.DeciderID()
	case approvaldecision.FieldChoice:
		return m.Choice()
	case approvaldecision.FieldReason:
		return m.Reason()
	case approvaldecision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvaldecision.FieldRequestID:
		return m.OldRequestID(ctx)
	case approvaldecision.FieldDeciderID:
		return m.OldDeciderID(ctx)
	case approvaldecision.FieldChoice:
		return m.OldChoice(ctx)
	case approvaldecision.FieldReason:
		return m.OldReason(ctx)
	case approvaldecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvaldecision.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case approvaldecision.FieldDeciderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeciderID(v)
		return nil
	case approvaldecision.FieldChoice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoice(v)
		return nil
	case approvaldecision.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case approvaldecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalDecisionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalDecisionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvaldecision.FieldReason) {
		fields = append(fields, approvaldecision.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalDecisionMutation) ClearField(name string) error {
	switch name {
	case approvaldecision.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown ApprovalDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalDecisionMutation) ResetField(name string) error {
	switch name {
	case approvaldecision.FieldRequestID:
		m.ResetRequestID()
		return nil
	case approvaldecision.FieldDeciderID:
		m.ResetDeciderID()
		return nil
	case approvaldecision.FieldChoice:
		m.ResetChoice()
		return nil
	case approvaldecision.FieldReason:
		m.ResetReason()
		return nil
	case approvaldecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, approvaldecision.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvaldecision.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, approvaldecision.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case approvaldecision.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalDecisionMutation) ClearEdge(name string) error {
	switch name {
	case approvaldecision.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown ApprovalDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalDecisionMutation) ResetEdge(name string) error {
	switch name {
	case approvaldecision.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown ApprovalDecision edge %s", name)
}

// ApprovalRequestMutation represents an operation that mutates the ApprovalRequest nodes in the graph.
type ApprovalRequestMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	_type                    *string
	level                    *string
	status                   *string
	title                    *string
	description              *string
	requester_id             *string
	operation                *models.OperationDescriptor
	approvers                *[]string
	appendapprovers          []string
	required_count           *int
	addrequired_count        *int
	requested_at             *time.Time
	expires_at               *time.Time
	timeout_ms               *int64
	addtimeout_ms            *int64
	context                  *models.ApprovalContext
	policy_id                *string
	escalation_level         *int
	addescalation_level      *int
	escalation_history       *[]models.EscalationEntry
	appendescalation_history []models.EscalationEntry
	bypassed_by              *string
	bypass_reason            *string
	bypassed_at              *time.Time
	resolved_at              *time.Time
	clearedFields            map[string]struct{}
	decisions                map[string]struct{}
	removeddecisions         map[string]struct{}
	cleareddecisions         bool
	audit_entries            map[string]struct{}
	removedaudit_entries     map[string]struct{}
	clearedaudit_entries     bool
	done                     bool
	oldValue                 func(context.Context) (*ApprovalRequest, error)
	predicates               []predicate.ApprovalRequest
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

// SetType sets the "type" field.
func (m *ApprovalRequestMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ApprovalRequestMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ApprovalRequestMutation) ResetType() {
	m._type = nil
}

// SetLevel sets the "level" field.
func (m *ApprovalRequestMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *ApprovalRequestMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *ApprovalRequestMutation) ResetLevel() {
	m.level = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalRequestMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalRequestMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ApprovalRequestMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *ApprovalRequestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ApprovalRequestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *ApprovalRequestMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ApprovalRequestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApprovalRequestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *ApprovalRequestMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[approvalrequest.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ApprovalRequestMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, approvalrequest.FieldDescription)
}

// SetRequesterID sets the "requester_id" field.
func (m *ApprovalRequestMutation) SetRequesterID(s string) {
	m.requester_id = &s
}

// RequesterID returns the value of the "requester_id" field in the mutation.
func (m *ApprovalRequestMutation) RequesterID() (r string, exists bool) {
	v := m.requester_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterID returns the old "requester_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRequesterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterID: %w", err)
	}
	return oldValue.RequesterID, nil
}

// ResetRequesterID resets all changes to the "requester_id" field.
func (m *ApprovalRequestMutation) ResetRequesterID() {
	m.requester_id = nil
}

// SetOperation sets the "operation" field.
func (m *ApprovalRequestMutation) SetOperation(md models.OperationDescriptor) {
	m.operation = &md
}

// Operation returns the value of the "operation" field in the mutation.
func (m *ApprovalRequestMutation) Operation() (r models.OperationDescriptor, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldOperation(ctx context.Context) (v models.OperationDescriptor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *ApprovalRequestMutation) ResetOperation() {
	m.operation = nil
}

// SetApprovers sets the "approvers" field.
func (m *ApprovalRequestMutation) SetApprovers(s []string) {
	m.approvers = &s
	m.appendapprovers = nil
}

// Approvers returns the value of the "approvers" field in the mutation.
func (m *ApprovalRequestMutation) Approvers() (r []string, exists bool) {
	v := m.approvers
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovers returns the old "approvers" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldApprovers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovers: %w", err)
	}
	return oldValue.Approvers, nil
}

// AppendApprovers adds s to the "approvers" field.
func (m *ApprovalRequestMutation) AppendApprovers(s []string) {
	m.appendapprovers = append(m.appendapprovers, s...)
}

// AppendedApprovers returns the list of values that were appended to the "approvers" field in this mutation.
func (m *ApprovalRequestMutation) AppendedApprovers() ([]string, bool) {
	if len(m.appendapprovers) == 0 {
		return nil, false
	}
	return m.appendapprovers, true
}

// ResetApprovers resets all changes to the "approvers" field.
func (m *ApprovalRequestMutation) ResetApprovers() {
	m.approvers = nil
	m.appendapprovers = nil
}

// SetRequiredCount sets the "required_count" field.
func (m *ApprovalRequestMutation) SetRequiredCount(i int) {
	m.required_count = &i
	m.addrequired_count = nil
}

// RequiredCount returns the value of the "required_count" field in the mutation.
func (m *ApprovalRequestMutation) RequiredCount() (r int, exists bool) {
	v := m.required_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCount returns the old "required_count" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRequiredCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCount: %w", err)
	}
	return oldValue.RequiredCount, nil
}

// AddRequiredCount adds i to the "required_count" field.
func (m *ApprovalRequestMutation) AddRequiredCount(i int) {
	if m.addrequired_count != nil {
		*m.addrequired_count += i
	} else {
		m.addrequired_count = &i
	}
}

// AddedRequiredCount returns the value that was added to the "required_count" field in this mutation.
func (m *ApprovalRequestMutation) AddedRequiredCount() (r int, exists bool) {
	v := m.addrequired_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequiredCount resets all changes to the "required_count" field.
func (m *ApprovalRequestMutation) ResetRequiredCount() {
	m.required_count = nil
	m.addrequired_count = nil
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

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalRequestMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalRequestMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalRequestMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *ApprovalRequestMutation) SetTimeoutMs(i int64) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *ApprovalRequestMutation) TimeoutMs() (r int64, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldTimeoutMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *ApprovalRequestMutation) AddTimeoutMs(i int64) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *ApprovalRequestMutation) AddedTimeoutMs() (r int64, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *ApprovalRequestMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetContext sets the "context" field.
func (m *ApprovalRequestMutation) SetContext(mc models.ApprovalContext) {
	m.context = &mc
}

// Context returns the value of the "context" field in the mutation.
func (m *ApprovalRequestMutation) Context() (r models.ApprovalContext, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldContext(ctx context.Context) (v models.ApprovalContext, err error) {
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
func (m *ApprovalRequestMutation) ClearContext() {
	m.context = nil
	m.clearedFields[approvalrequest.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ContextCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ApprovalRequestMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, approvalrequest.FieldContext)
}

// SetPolicyID sets the "policy_id" field.
func (m *ApprovalRequestMutation) SetPolicyID(s string) {
	m.policy_id = &s
}

// PolicyID returns the value of the "policy_id" field in the mutation.
func (m *ApprovalRequestMutation) PolicyID() (r string, exists bool) {
	v := m.policy_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyID returns the old "policy_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldPolicyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyID: %w", err)
	}
	return oldValue.PolicyID, nil
}

// ClearPolicyID clears the value of the "policy_id" field.
func (m *ApprovalRequestMutation) ClearPolicyID() {
	m.policy_id = nil
	m.clearedFields[approvalrequest.FieldPolicyID] = struct{}{}
}

// PolicyIDCleared returns if the "policy_id" field was cleared in this mutation.
func (m *ApprovalRequestMutation) PolicyIDCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldPolicyID]
	return ok
}

// ResetPolicyID resets all changes to the "policy_id" field.
func (m *ApprovalRequestMutation) ResetPolicyID() {
	m.policy_id = nil
	delete(m.clearedFields, approvalrequest.FieldPolicyID)
}

// SetEscalationLevel sets the "escalation_level" field.
func (m *ApprovalRequestMutation) SetEscalationLevel(i int) {
	m.escalation_level = &i
	m.addescalation_level = nil
}

// EscalationLevel returns the value of the "escalation_level" field in the mutation.
func (m *ApprovalRequestMutation) EscalationLevel() (r int, exists bool) {
	v := m.escalation_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationLevel returns the old "escalation_level" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldEscalationLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationLevel: %w", err)
	}
	return oldValue.EscalationLevel, nil
}

// AddEscalationLevel adds i to the "escalation_level" field.
func (m *ApprovalRequestMutation) AddEscalationLevel(i int) {
	if m.addescalation_level != nil {
		*m.addescalation_level += i
	} else {
		m.addescalation_level = &i
	}
}

// AddedEscalationLevel returns the value that was added to the "escalation_level" field in this mutation.
func (m *ApprovalRequestMutation) AddedEscalationLevel() (r int, exists bool) {
	v := m.addescalation_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalationLevel resets all changes to the "escalation_level" field.
func (m *ApprovalRequestMutation) ResetEscalationLevel() {
	m.escalation_level = nil
	m.addescalation_level = nil
}

// SetEscalationHistory sets the "escalation_history" field.
func (m *ApprovalRequestMutation) SetEscalationHistory(me []models.EscalationEntry) {
	m.escalation_history = &me
	m.appendescalation_history = nil
}

// EscalationHistory returns the value of the "escalation_history" field in the mutation.
func (m *ApprovalRequestMutation) EscalationHistory() (r []models.EscalationEntry, exists bool) {
	v := m.escalation_history
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationHistory returns the old "escalation_history" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldEscalationHistory(ctx context.Context) (v []models.EscalationEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationHistory: %w", err)
	}
	return oldValue.EscalationHistory, nil
}

// AppendEscalationHistory adds me to the "escalation_history" field.
func (m *ApprovalRequestMutation) AppendEscalationHistory(me []models.EscalationEntry) {
	m.appendescalation_history = append(m.appendescalation_history, me...)
}

// AppendedEscalationHistory returns the list of values that were appended to the "escalation_history" field in this mutation.
func (m *ApprovalRequestMutation) AppendedEscalationHistory() ([]models.EscalationEntry, bool) {
	if len(m.appendescalation_history) == 0 {
		return nil, false
	}
	return m.appendescalation_history, true
}

// ClearEscalationHistory clears the value of the "escalation_history" field.
func (m *ApprovalRequestMutation) ClearEscalationHistory() {
	m.escalation_history = nil
	m.appendescalation_history = nil
	m.clearedFields[approvalrequest.FieldEscalationHistory] = struct{}{}
}

// EscalationHistoryCleared returns if the "escalation_history" field was cleared in this mutation.
func (m *ApprovalRequestMutation) EscalationHistoryCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldEscalationHistory]
	return ok
}

// ResetEscalationHistory resets all changes to the "escalation_history" field.
func (m *ApprovalRequestMutation) ResetEscalationHistory() {
	m.escalation_history = nil
	m.appendescalation_history = nil
	delete(m.clearedFields, approvalrequest.FieldEscalationHistory)
}

// SetBypassedBy sets the "bypassed_by" field.
func (m *ApprovalRequestMutation) SetBypassedBy(s string) {
	m.bypassed_by = &s
}

// BypassedBy returns the value of the "bypassed_by" field in the mutation.
func (m *ApprovalRequestMutation) BypassedBy() (r string, exists bool) {
	v := m.bypassed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldBypassedBy returns the old "bypassed_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldBypassedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBypassedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBypassedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBypassedBy: %w", err)
	}
	return oldValue.BypassedBy, nil
}

// ClearBypassedBy clears the value of the "bypassed_by" field.
func (m *ApprovalRequestMutation) ClearBypassedBy() {
	m.bypassed_by = nil
	m.clearedFields[approvalrequest.FieldBypassedBy] = struct{}{}
}

// BypassedByCleared returns if the "bypassed_by" field was cleared in this mutation.
func (m *ApprovalRequestMutation) BypassedByCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldBypassedBy]
	return ok
}

// ResetBypassedBy resets all changes to the "bypassed_by" field.
func (m *ApprovalRequestMutation) ResetBypassedBy() {
	m.bypassed_by = nil
	delete(m.clearedFields, approvalrequest.FieldBypassedBy)
}

// SetBypassReason sets the "bypass_reason" field.
func (m *ApprovalRequestMutation) SetBypassReason(s string) {
	m.bypass_reason = &s
}

// BypassReason returns the value of the "bypass_reason" field in the mutation.
func (m *ApprovalRequestMutation) BypassReason() (r string, exists bool) {
	v := m.bypass_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldBypassReason returns the old "bypass_reason" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldBypassReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBypassReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBypassReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBypassReason: %w", err)
	}
	return oldValue.BypassReason, nil
}

// ClearBypassReason clears the value of the "bypass_reason" field.
func (m *ApprovalRequestMutation) ClearBypassReason() {
	m.bypass_reason = nil
	m.clearedFields[approvalrequest.FieldBypassReason] = struct{}{}
}

// BypassReasonCleared returns if the "bypass_reason" field was cleared in this mutation.
func (m *ApprovalRequestMutation) BypassReasonCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldBypassReason]
	return ok
}

// ResetBypassReason resets all changes to the "bypass_reason" field.
func (m *ApprovalRequestMutation) ResetBypassReason() {
	m.bypass_reason = nil
	delete(m.clearedFields, approvalrequest.FieldBypassReason)
}

// SetBypassedAt sets the "bypassed_at" field.
func (m *ApprovalRequestMutation) SetBypassedAt(t time.Time) {
	m.bypassed_at = &t
}

// BypassedAt returns the value of the "bypassed_at" field in the mutation.
func (m *ApprovalRequestMutation) BypassedAt() (r time.Time, exists bool) {
	v := m.bypassed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBypassedAt returns the old "bypassed_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldBypassedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBypassedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBypassedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBypassedAt: %w", err)
	}
	return oldValue.BypassedAt, nil
}

// ClearBypassedAt clears the value of the "bypassed_at" field.
func (m *ApprovalRequestMutation) ClearBypassedAt() {
	m.bypassed_at = nil
	m.clearedFields[approvalrequest.FieldBypassedAt] = struct{}{}
}

// BypassedAtCleared returns if the "bypassed_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) BypassedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldBypassedAt]
	return ok
}

// ResetBypassedAt resets all changes to the "bypassed_at" field.
func (m *ApprovalRequestMutation) ResetBypassedAt() {
	m.bypassed_at = nil
	delete(m.clearedFields, approvalrequest.FieldBypassedAt)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ApprovalRequestMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ApprovalRequestMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ApprovalRequestMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[approvalrequest.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ApprovalRequestMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, approvalrequest.FieldResolvedAt)
}

// AddDecisionIDs adds the "decisions" edge to the ApprovalDecision entity by ids.
func (m *ApprovalRequestMutation) AddDecisionIDs(ids ...string) {
	if m.decisions == nil {
		m.decisions = make(map[string]struct{})
	}
	for i := range ids {
		m.decisions[ids[i]] = struct{}{}
	}
}

// ClearDecisions clears the "decisions" edge to the ApprovalDecision entity.
func (m *ApprovalRequestMutation) ClearDecisions() {
	m.cleareddecisions = true
}

// DecisionsCleared reports if the "decisions" edge to the ApprovalDecision entity was cleared.
func (m *ApprovalRequestMutation) DecisionsCleared() bool {
	return m.cleareddecisions
}

// RemoveDecisionIDs removes the "decisions" edge to the ApprovalDecision entity by IDs.
func (m *ApprovalRequestMutation) RemoveDecisionIDs(ids ...string) {
	if m.removeddecisions == nil {
		m.removeddecisions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.decisions, ids[i])
		m.removeddecisions[ids[i]] = struct{}{}
	}
}

// RemovedDecisions returns the removed IDs of the "decisions" edge to the ApprovalDecision entity.
func (m *ApprovalRequestMutation) RemovedDecisionsIDs() (ids []string) {
	for id := range m.removeddecisions {
		ids = append(ids, id)
	}
	return
}

// DecisionsIDs returns the "decisions" edge IDs in the mutation.
func (m *ApprovalRequestMutation) DecisionsIDs() (ids []string) {
	for id := range m.decisions {
		ids = append(ids, id)
	}
	return
}

// ResetDecisions resets all changes to the "decisions" edge.
func (m *ApprovalRequestMutation) ResetDecisions() {
	m.decisions = nil
	m.cleareddecisions = false
	m.removeddecisions = nil
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by ids.
func (m *ApprovalRequestMutation) AddAuditEntryIDs(ids ...string) {
	if m.audit_entries == nil {
		m.audit_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_entries[ids[i]] = struct{}{}
	}
}

// ClearAuditEntries clears the "audit_entries" edge to the AuditEntry entity.
func (m *ApprovalRequestMutation) ClearAuditEntries() {
	m.clearedaudit_entries = true
}

// AuditEntriesCleared reports if the "audit_entries" edge to the AuditEntry entity was cleared.
func (m *ApprovalRequestMutation) AuditEntriesCleared() bool {
	return m.clearedaudit_entries
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to the AuditEntry entity by IDs.
func (m *ApprovalRequestMutation) RemoveAuditEntryIDs(ids ...string) {
	if m.removedaudit_entries == nil {
		m.removedaudit_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_entries, ids[i])
		m.removedaudit_entries[ids[i]] = struct{}{}
	}
}

// RemovedAuditEntries returns the removed IDs of the "audit_entries" edge to the AuditEntry entity.
func (m *ApprovalRequestMutation) RemovedAuditEntriesIDs() (ids []string) {
	for id := range m.removedaudit_entries {
		ids = append(ids, id)
	}
	return
}

// AuditEntriesIDs returns the "audit_entries" edge IDs in the mutation.
func (m *ApprovalRequestMutation) AuditEntriesIDs() (ids []string) {
	for id := range m.audit_entries {
		ids = append(ids, id)
	}
	return
}

// ResetAuditEntries resets all changes to the "audit_entries" edge.
func (m *ApprovalRequestMutation) ResetAuditEntries() {
	m.audit_entries = nil
	m.clearedaudit_entries = false
	m.removedaudit_entries = nil
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
	fields := make([]string, 0, 20)
	if m._type != nil {
		fields = append(fields, approvalrequest.FieldType)
	}
	if m.level != nil {
		fields = append(fields, approvalrequest.FieldLevel)
	}
	if m.status != nil {
		fields = append(fields, approvalrequest.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, approvalrequest.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, approvalrequest.FieldDescription)
	}
	if m.requester_id != nil {
		fields = append(fields, approvalrequest.FieldRequesterID)
	}
	if m.operation != nil {
		fields = append(fields, approvalrequest.FieldOperation)
	}
	if m.approvers != nil {
		fields = append(fields, approvalrequest.FieldApprovers)
	}
	if m.required_count != nil {
		fields = append(fields, approvalrequest.FieldRequiredCount)
	}
	if m.requested_at != nil {
		fields = append(fields, approvalrequest.FieldRequestedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, approvalrequest.FieldExpiresAt)
	}
	if m.timeout_ms != nil {
		fields = append(fields, approvalrequest.FieldTimeoutMs)
	}
	if m.context != nil {
		fields = append(fields, approvalrequest.FieldContext)
	}
	if m.policy_id != nil {
		fields = append(fields, approvalrequest.FieldPolicyID)
	}
	if m.escalation_level != nil {
		fields = append(fields, approvalrequest.FieldEscalationLevel)
	}
	if m.escalation_history != nil {
		fields = append(fields, approvalrequest.FieldEscalationHistory)
	}
	if m.bypassed_by != nil {
		fields = append(fields, approvalrequest.FieldBypassedBy)
	}
	if m.bypass_reason != nil {
		fields = append(fields, approvalrequest.FieldBypassReason)
	}
	if m.bypassed_at != nil {
		fields = append(fields, approvalrequest.FieldBypassedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, approvalrequest.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldType:
		return m.GetType()
	case approvalrequest.FieldLevel:
		return m.Level()
	case approvalrequest.FieldStatus:
		return m.Status()
	case approvalrequest.FieldTitle:
		return m.Title()
	case approvalrequest.FieldDescription:
		return m.Description()
	case approvalrequest.FieldRequesterID:
		return m.RequesterID()
	case approvalrequest.FieldOperation:
		return m.Operation()
	case approvalrequest.FieldApprovers:
		return m.Approvers()
	case approvalrequest.FieldRequiredCount:
		return m.RequiredCount()
	case approvalrequest.FieldRequestedAt:
		return m.RequestedAt()
	case approvalrequest.FieldExpiresAt:
		return m.ExpiresAt()
	case approvalrequest.FieldTimeoutMs:
		return m.TimeoutMs()
	case approvalrequest.FieldContext:
		return m.Context()
	case approvalrequest.FieldPolicyID:
		return m.PolicyID()
	case approvalrequest.FieldEscalationLevel:
		return m.EscalationLevel()
	case approvalrequest.FieldEscalationHistory:
		return m.EscalationHistory()
	case approvalrequest.FieldBypassedBy:
		return m.BypassedBy()
	case approvalrequest.FieldBypassReason:
		return m.BypassReason()
	case approvalrequest.FieldBypassedAt:
		return m.BypassedAt()
	case approvalrequest.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrequest.FieldType:
		return m.OldType(ctx)
	case approvalrequest.FieldLevel:
		return m.OldLevel(ctx)
	case approvalrequest.FieldStatus:
		return m.OldStatus(ctx)
	case approvalrequest.FieldTitle:
		return m.OldTitle(ctx)
	case approvalrequest.FieldDescription:
		return m.OldDescription(ctx)
	case approvalrequest.FieldRequesterID:
		return m.OldRequesterID(ctx)
	case approvalrequest.FieldOperation:
		return m.OldOperation(ctx)
	case approvalrequest.FieldApprovers:
		return m.OldApprovers(ctx)
	case approvalrequest.FieldRequiredCount:
		return m.OldRequiredCount(ctx)
	case approvalrequest.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case approvalrequest.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case approvalrequest.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case approvalrequest.FieldContext:
		return m.OldContext(ctx)
	case approvalrequest.FieldPolicyID:
		return m.OldPolicyID(ctx)
	case approvalrequest.FieldEscalationLevel:
		return m.OldEscalationLevel(ctx)
	case approvalrequest.FieldEscalationHistory:
		return m.OldEscalationHistory(ctx)
	case approvalrequest.FieldBypassedBy:
		return m.OldBypassedBy(ctx)
	case approvalrequest.FieldBypassReason:
		return m.OldBypassReason(ctx)
	case approvalrequest.FieldBypassedAt:
		return m.OldBypassedAt(ctx)
	case approvalrequest.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case approvalrequest.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case approvalrequest.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalrequest.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case approvalrequest.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case approvalrequest.FieldRequesterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterID(v)
		return nil
	case approvalrequest.FieldOperation:
		v, ok := value.(models.OperationDescriptor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case approvalrequest.FieldApprovers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovers(v)
		return nil
	case approvalrequest.FieldRequiredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCount(v)
		return nil
	case approvalrequest.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case approvalrequest.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case approvalrequest.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case approvalrequest.FieldContext:
		v, ok := value.(models.ApprovalContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case approvalrequest.FieldPolicyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyID(v)
		return nil
	case approvalrequest.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationLevel(v)
		return nil
	case approvalrequest.FieldEscalationHistory:
		v, ok := value.([]models.EscalationEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationHistory(v)
		return nil
	case approvalrequest.FieldBypassedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBypassedBy(v)
		return nil
	case approvalrequest.FieldBypassReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBypassReason(v)
		return nil
	case approvalrequest.FieldBypassedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBypassedAt(v)
		return nil
	case approvalrequest.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRequestMutation) AddedFields() []string {
	var fields []string
	if m.addrequired_count != nil {
		fields = append(fields, approvalrequest.FieldRequiredCount)
	}
	if m.addtimeout_ms != nil {
		fields = append(fields, approvalrequest.FieldTimeoutMs)
	}
	if m.addescalation_level != nil {
		fields = append(fields, approvalrequest.FieldEscalationLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldRequiredCount:
		return m.AddedRequiredCount()
	case approvalrequest.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	case approvalrequest.FieldEscalationLevel:
		return m.AddedEscalationLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldRequiredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequiredCount(v)
		return nil
	case approvalrequest.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	case approvalrequest.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalationLevel(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrequest.FieldDescription) {
		fields = append(fields, approvalrequest.FieldDescription)
	}
	if m.FieldCleared(approvalrequest.FieldContext) {
		fields = append(fields, approvalrequest.FieldContext)
	}
	if m.FieldCleared(approvalrequest.FieldPolicyID) {
		fields = append(fields, approvalrequest.FieldPolicyID)
	}
	if m.FieldCleared(approvalrequest.FieldEscalationHistory) {
		fields = append(fields, approvalrequest.FieldEscalationHistory)
	}
	if m.FieldCleared(approvalrequest.FieldBypassedBy) {
		fields = append(fields, approvalrequest.FieldBypassedBy)
	}
	if m.FieldCleared(approvalrequest.FieldBypassReason) {
		fields = append(fields, approvalrequest.FieldBypassReason)
	}
	if m.FieldCleared(approvalrequest.FieldBypassedAt) {
		fields = append(fields, approvalrequest.FieldBypassedAt)
	}
	if m.FieldCleared(approvalrequest.FieldResolvedAt) {
		fields = append(fields, approvalrequest.FieldResolvedAt)
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
	case approvalrequest.FieldDescription:
		m.ClearDescription()
		return nil
	case approvalrequest.FieldContext:
		m.ClearContext()
		return nil
	case approvalrequest.FieldPolicyID:
		m.ClearPolicyID()
		return nil
	case approvalrequest.FieldEscalationHistory:
		m.ClearEscalationHistory()
		return nil
	case approvalrequest.FieldBypassedBy:
		m.ClearBypassedBy()
		return nil
	case approvalrequest.FieldBypassReason:
		m.ClearBypassReason()
		return nil
	case approvalrequest.FieldBypassedAt:
		m.ClearBypassedAt()
		return nil
	case approvalrequest.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ResetField(name string) error {
	switch name {
	case approvalrequest.FieldType:
		m.ResetType()
		return nil
	case approvalrequest.FieldLevel:
		m.ResetLevel()
		return nil
	case approvalrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalrequest.FieldTitle:
		m.ResetTitle()
		return nil
	case approvalrequest.FieldDescription:
		m.ResetDescription()
		return nil
	case approvalrequest.FieldRequesterID:
		m.ResetRequesterID()
		return nil
	case approvalrequest.FieldOperation:
		m.ResetOperation()
		return nil
	case approvalrequest.FieldApprovers:
		m.ResetApprovers()
		return nil
	case approvalrequest.FieldRequiredCount:
		m.ResetRequiredCount()
		return nil
	case approvalrequest.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case approvalrequest.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case approvalrequest.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case approvalrequest.FieldContext:
		m.ResetContext()
		return nil
	case approvalrequest.FieldPolicyID:
		m.ResetPolicyID()
		return nil
	case approvalrequest.FieldEscalationLevel:
		m.ResetEscalationLevel()
		return nil
	case approvalrequest.FieldEscalationHistory:
		m.ResetEscalationHistory()
		return nil
	case approvalrequest.FieldBypassedBy:
		m.ResetBypassedBy()
		return nil
	case approvalrequest.FieldBypassReason:
		m.ResetBypassReason()
		return nil
	case approvalrequest.FieldBypassedAt:
		m.ResetBypassedAt()
		return nil
	case approvalrequest.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.decisions != nil {
		edges = append(edges, approvalrequest.EdgeDecisions)
	}
	if m.audit_entries != nil {
		edges = append(edges, approvalrequest.EdgeAuditEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvalrequest.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.decisions))
		for id := range m.decisions {
			ids = append(ids, id)
		}
		return ids
	case approvalrequest.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.audit_entries))
		for id := range m.audit_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddecisions != nil {
		edges = append(edges, approvalrequest.EdgeDecisions)
	}
	if m.removedaudit_entries != nil {
		edges = append(edges, approvalrequest.EdgeAuditEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case approvalrequest.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.removeddecisions))
		for id := range m.removeddecisions {
			ids = append(ids, id)
		}
		return ids
	case approvalrequest.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.removedaudit_entries))
		for id := range m.removedaudit_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddecisions {
		edges = append(edges, approvalrequest.EdgeDecisions)
	}
	if m.clearedaudit_entries {
		edges = append(edges, approvalrequest.EdgeAuditEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case approvalrequest.EdgeDecisions:
		return m.cleareddecisions
	case approvalrequest.EdgeAuditEntries:
		return m.clearedaudit_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRequestMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRequestMutation) ResetEdge(name string) error {
	switch name {
	case approvalrequest.EdgeDecisions:
		m.ResetDecisions()
		return nil
	case approvalrequest.EdgeAuditEntries:
		m.ResetAuditEntries()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	action         *string
	actor          *string
	severity       *string
	details        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*AuditEntry, error)
	predicates     []predicate.AuditEntry
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

// SetRequestID sets the "request_id" field.
func (m *AuditEntryMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AuditEntryMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AuditEntryMutation) ResetRequestID() {
	m.request = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
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

// SetSeverity sets the "severity" field.
func (m *AuditEntryMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AuditEntryMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSeverity(ctx context.Context) (v string, err error) {
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
func (m *AuditEntryMutation) ResetSeverity() {
	m.severity = nil
}

// SetDetails sets the "details" field.
func (m *AuditEntryMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditEntryMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditEntryMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditentry.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditEntryMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditEntryMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditentry.FieldDetails)
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

// ClearRequest clears the "request" edge to the ApprovalRequest entity.
func (m *AuditEntryMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[auditentry.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the ApprovalRequest entity was cleared.
func (m *AuditEntryMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *AuditEntryMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *AuditEntryMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
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
	fields := make([]string, 0, 6)
	if m.request != nil {
		fields = append(fields, auditentry.FieldRequestID)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.actor != nil {
		fields = append(fields, auditentry.FieldActor)
	}
	if m.severity != nil {
		fields = append(fields, auditentry.FieldSeverity)
	}
	if m.details != nil {
		fields = append(fields, auditentry.FieldDetails)
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
	case auditentry.FieldRequestID:
		return m.RequestID()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldActor:
		return m.Actor()
	case auditentry.FieldSeverity:
		return m.Severity()
	case auditentry.FieldDetails:
		return m.Details()
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
	case auditentry.FieldRequestID:
		return m.OldRequestID(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldActor:
		return m.OldActor(ctx)
	case auditentry.FieldSeverity:
		return m.OldSeverity(ctx)
	case auditentry.FieldDetails:
		return m.OldDetails(ctx)
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
	case auditentry.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditentry.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case auditentry.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
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
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldDetails) {
		fields = append(fields, auditentry.FieldDetails)
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
	case auditentry.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldRequestID:
		m.ResetRequestID()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldActor:
		m.ResetActor()
		return nil
	case auditentry.FieldSeverity:
		m.ResetSeverity()
		return nil
	case auditentry.FieldDetails:
		m.ResetDetails()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, auditentry.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditentry.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, auditentry.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case auditentry.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	switch name {
	case auditentry.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	switch name {
	case auditentry.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// UsageAlertMutation represents an operation that mutates the UsageAlert nodes in the graph.
type UsageAlertMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	_type            *string
	series           *string
	level            *string
	threshold        *float64
	addthreshold     *float64
	current_usage    *float64
	addcurrent_usage *float64
	limit_value      *float64
	addlimit_value   *float64
	message          *string
	acknowledged     *bool
	acknowledged_at  *time.Time
	acknowledged_by  *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*UsageAlert, error)
	predicates       []predicate.UsageAlert
}

var _ ent.Mutation = (*UsageAlertMutation)(nil)

// usagealertOption allows management of the mutation configuration using functional options.
type usagealertOption func(*UsageAlertMutation)

// newUsageAlertMutation creates new mutation for the UsageAlert entity.
func newUsageAlertMutation(c config, op Op, opts ...usagealertOption) *UsageAlertMutation {
	m := &UsageAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageAlertID sets the ID field of the mutation.
func withUsageAlertID(id string) usagealertOption {
	return func(m *UsageAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageAlert
		)
		m.oldValue = func(ctx context.Context) (*UsageAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageAlert sets the old UsageAlert of the mutation.
func withUsageAlert(node *UsageAlert) usagealertOption {
	return func(m *UsageAlertMutation) {
		m.oldValue = func(context.Context) (*UsageAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageAlert entities.
func (m *UsageAlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageAlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageAlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UsageAlertMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageAlertMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageAlertMutation) ResetUserID() {
	m.user_id = nil
}

// SetType sets the "type" field.
func (m *UsageAlertMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *UsageAlertMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *UsageAlertMutation) ResetType() {
	m._type = nil
}

// SetSeries sets the "series" field.
func (m *UsageAlertMutation) SetSeries(s string) {
	m.series = &s
}

// Series returns the value of the "series" field in the mutation.
func (m *UsageAlertMutation) Series() (r string, exists bool) {
	v := m.series
	if v == nil {
		return
	}
	return *v, true
}

// OldSeries returns the old "series" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldSeries(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeries: %w", err)
	}
	return oldValue.Series, nil
}

// ClearSeries clears the value of the "series" field.
func (m *UsageAlertMutation) ClearSeries() {
	m.series = nil
	m.clearedFields[usagealert.FieldSeries] = struct{}{}
}

// SeriesCleared returns if the "series" field was cleared in this mutation.
func (m *UsageAlertMutation) SeriesCleared() bool {
	_, ok := m.clearedFields[usagealert.FieldSeries]
	return ok
}

// ResetSeries resets all changes to the "series" field.
func (m *UsageAlertMutation) ResetSeries() {
	m.series = nil
	delete(m.clearedFields, usagealert.FieldSeries)
}

// SetLevel sets the "level" field.
func (m *UsageAlertMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *UsageAlertMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *UsageAlertMutation) ResetLevel() {
	m.level = nil
}

// SetThreshold sets the "threshold" field.
func (m *UsageAlertMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *UsageAlertMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *UsageAlertMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *UsageAlertMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *UsageAlertMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetCurrentUsage sets the "current_usage" field.
func (m *UsageAlertMutation) SetCurrentUsage(f float64) {
	m.current_usage = &f
	m.addcurrent_usage = nil
}

// CurrentUsage returns the value of the "current_usage" field in the mutation.
func (m *UsageAlertMutation) CurrentUsage() (r float64, exists bool) {
	v := m.current_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentUsage returns the old "current_usage" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldCurrentUsage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentUsage: %w", err)
	}
	return oldValue.CurrentUsage, nil
}

// AddCurrentUsage adds f to the "current_usage" field.
func (m *UsageAlertMutation) AddCurrentUsage(f float64) {
	if m.addcurrent_usage != nil {
		*m.addcurrent_usage += f
	} else {
		m.addcurrent_usage = &f
	}
}

// AddedCurrentUsage returns the value that was added to the "current_usage" field in this mutation.
func (m *UsageAlertMutation) AddedCurrentUsage() (r float64, exists bool) {
	v := m.addcurrent_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentUsage resets all changes to the "current_usage" field.
func (m *UsageAlertMutation) ResetCurrentUsage() {
	m.current_usage = nil
	m.addcurrent_usage = nil
}

// SetLimitValue sets the "limit_value" field.
func (m *UsageAlertMutation) SetLimitValue(f float64) {
	m.limit_value = &f
	m.addlimit_value = nil
}

// LimitValue returns the value of the "limit_value" field in the mutation.
func (m *UsageAlertMutation) LimitValue() (r float64, exists bool) {
	v := m.limit_value
	if v == nil {
		return
	}
	return *v, true
}

// OldLimitValue returns the old "limit_value" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldLimitValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLimitValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLimitValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLimitValue: %w", err)
	}
	return oldValue.LimitValue, nil
}

// AddLimitValue adds f to the "limit_value" field.
func (m *UsageAlertMutation) AddLimitValue(f float64) {
	if m.addlimit_value != nil {
		*m.addlimit_value += f
	} else {
		m.addlimit_value = &f
	}
}

// AddedLimitValue returns the value that was added to the "limit_value" field in this mutation.
func (m *UsageAlertMutation) AddedLimitValue() (r float64, exists bool) {
	v := m.addlimit_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetLimitValue resets all changes to the "limit_value" field.
func (m *UsageAlertMutation) ResetLimitValue() {
	m.limit_value = nil
	m.addlimit_value = nil
}

// SetMessage sets the "message" field.
func (m *UsageAlertMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *UsageAlertMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *UsageAlertMutation) ResetMessage() {
	m.message = nil
}

// SetAcknowledged sets the "acknowledged" field.
func (m *UsageAlertMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *UsageAlertMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *UsageAlertMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (m *UsageAlertMutation) SetAcknowledgedAt(t time.Time) {
	m.acknowledged_at = &t
}

// AcknowledgedAt returns the value of the "acknowledged_at" field in the mutation.
func (m *UsageAlertMutation) AcknowledgedAt() (r time.Time, exists bool) {
	v := m.acknowledged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedAt returns the old "acknowledged_at" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldAcknowledgedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedAt: %w", err)
	}
	return oldValue.AcknowledgedAt, nil
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (m *UsageAlertMutation) ClearAcknowledgedAt() {
	m.acknowledged_at = nil
	m.clearedFields[usagealert.FieldAcknowledgedAt] = struct{}{}
}

// AcknowledgedAtCleared returns if the "acknowledged_at" field was cleared in this mutation.
func (m *UsageAlertMutation) AcknowledgedAtCleared() bool {
	_, ok := m.clearedFields[usagealert.FieldAcknowledgedAt]
	return ok
}

// ResetAcknowledgedAt resets all changes to the "acknowledged_at" field.
func (m *UsageAlertMutation) ResetAcknowledgedAt() {
	m.acknowledged_at = nil
	delete(m.clearedFields, usagealert.FieldAcknowledgedAt)
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (m *UsageAlertMutation) SetAcknowledgedBy(s string) {
	m.acknowledged_by = &s
}

// AcknowledgedBy returns the value of the "acknowledged_by" field in the mutation.
func (m *UsageAlertMutation) AcknowledgedBy() (r string, exists bool) {
	v := m.acknowledged_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedBy returns the old "acknowledged_by" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldAcknowledgedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedBy: %w", err)
	}
	return oldValue.AcknowledgedBy, nil
}

// ClearAcknowledgedBy clears the value of the "acknowledged_by" field.
func (m *UsageAlertMutation) ClearAcknowledgedBy() {
	m.acknowledged_by = nil
	m.clearedFields[usagealert.FieldAcknowledgedBy] = struct{}{}
}

// AcknowledgedByCleared returns if the "acknowledged_by" field was cleared in this mutation.
func (m *UsageAlertMutation) AcknowledgedByCleared() bool {
	_, ok := m.clearedFields[usagealert.FieldAcknowledgedBy]
	return ok
}

// ResetAcknowledgedBy resets all changes to the "acknowledged_by" field.
func (m *UsageAlertMutation) ResetAcknowledgedBy() {
	m.acknowledged_by = nil
	delete(m.clearedFields, usagealert.FieldAcknowledgedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageAlert entity.
// If the UsageAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UsageAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UsageAlertMutation builder.
func (m *UsageAlertMutation) Where(ps ...predicate.UsageAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageAlert).
func (m *UsageAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageAlertMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, usagealert.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, usagealert.FieldType)
	}
	if m.series != nil {
		fields = append(fields, usagealert.FieldSeries)
	}
	if m.level != nil {
		fields = append(fields, usagealert.FieldLevel)
	}
	if m.threshold != nil {
		fields = append(fields, usagealert.FieldThreshold)
	}
	if m.current_usage != nil {
		fields = append(fields, usagealert.FieldCurrentUsage)
	}
	if m.limit_value != nil {
		fields = append(fields, usagealert.FieldLimitValue)
	}
	if m.message != nil {
		fields = append(fields, usagealert.FieldMessage)
	}
	if m.acknowledged != nil {
		fields = append(fields, usagealert.FieldAcknowledged)
	}
	if m.acknowledged_at != nil {
		fields = append(fields, usagealert.FieldAcknowledgedAt)
	}
	if m.acknowledged_by != nil {
		fields = append(fields, usagealert.FieldAcknowledgedBy)
	}
	if m.created_at != nil {
		fields = append(fields, usagealert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagealert.FieldUserID:
		return m.UserID()
	case usagealert.FieldType:
		return m.GetType()
	case usagealert.FieldSeries:
		return m.Series()
	case usagealert.FieldLevel:
		return m.Level()
	case usagealert.FieldThreshold:
		return m.Threshold()
	case usagealert.FieldCurrentUsage:
		return m.CurrentUsage()
	case usagealert.FieldLimitValue:
		return m.LimitValue()
	case usagealert.FieldMessage:
		return m.Message()
	case usagealert.FieldAcknowledged:
		return m.Acknowledged()
	case usagealert.FieldAcknowledgedAt:
		return m.AcknowledgedAt()
	case usagealert.FieldAcknowledgedBy:
		return m.AcknowledgedBy()
	case usagealert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagealert.FieldUserID:
		return m.OldUserID(ctx)
	case usagealert.FieldType:
		return m.OldType(ctx)
	case usagealert.FieldSeries:
		return m.OldSeries(ctx)
	case usagealert.FieldLevel:
		return m.OldLevel(ctx)
	case usagealert.FieldThreshold:
		return m.OldThreshold(ctx)
	case usagealert.FieldCurrentUsage:
		return m.OldCurrentUsage(ctx)
	case usagealert.FieldLimitValue:
		return m.OldLimitValue(ctx)
	case usagealert.FieldMessage:
		return m.OldMessage(ctx)
	case usagealert.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case usagealert.FieldAcknowledgedAt:
		return m.OldAcknowledgedAt(ctx)
	case usagealert.FieldAcknowledgedBy:
		return m.OldAcknowledgedBy(ctx)
	case usagealert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagealert.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usagealert.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case usagealert.FieldSeries:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeries(v)
		return nil
	case usagealert.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case usagealert.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case usagealert.FieldCurrentUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentUsage(v)
		return nil
	case usagealert.FieldLimitValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLimitValue(v)
		return nil
	case usagealert.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case usagealert.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case usagealert.FieldAcknowledgedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedAt(v)
		return nil
	case usagealert.FieldAcknowledgedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedBy(v)
		return nil
	case usagealert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageAlertMutation) AddedFields() []string {
	var fields []string
	if m.addthreshold != nil {
		fields = append(fields, usagealert.FieldThreshold)
	}
	if m.addcurrent_usage != nil {
		fields = append(fields, usagealert.FieldCurrentUsage)
	}
	if m.addlimit_value != nil {
		fields = append(fields, usagealert.FieldLimitValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageAlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagealert.FieldThreshold:
		return m.AddedThreshold()
	case usagealert.FieldCurrentUsage:
		return m.AddedCurrentUsage()
	case usagealert.FieldLimitValue:
		return m.AddedLimitValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagealert.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	case usagealert.FieldCurrentUsage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentUsage(v)
		return nil
	case usagealert.FieldLimitValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLimitValue(v)
		return nil
	}
	return fmt.Errorf("unknown UsageAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usagealert.FieldSeries) {
		fields = append(fields, usagealert.FieldSeries)
	}
	if m.FieldCleared(usagealert.FieldAcknowledgedAt) {
		fields = append(fields, usagealert.FieldAcknowledgedAt)
	}
	if m.FieldCleared(usagealert.FieldAcknowledgedBy) {
		fields = append(fields, usagealert.FieldAcknowledgedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageAlertMutation) ClearField(name string) error {
	switch name {
	case usagealert.FieldSeries:
		m.ClearSeries()
		return nil
	case usagealert.FieldAcknowledgedAt:
		m.ClearAcknowledgedAt()
		return nil
	case usagealert.FieldAcknowledgedBy:
		m.ClearAcknowledgedBy()
		return nil
	}
	return fmt.Errorf("unknown UsageAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageAlertMutation) ResetField(name string) error {
	switch name {
	case usagealert.FieldUserID:
		m.ResetUserID()
		return nil
	case usagealert.FieldType:
		m.ResetType()
		return nil
	case usagealert.FieldSeries:
		m.ResetSeries()
		return nil
	case usagealert.FieldLevel:
		m.ResetLevel()
		return nil
	case usagealert.FieldThreshold:
		m.ResetThreshold()
		return nil
	case usagealert.FieldCurrentUsage:
		m.ResetCurrentUsage()
		return nil
	case usagealert.FieldLimitValue:
		m.ResetLimitValue()
		return nil
	case usagealert.FieldMessage:
		m.ResetMessage()
		return nil
	case usagealert.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case usagealert.FieldAcknowledgedAt:
		m.ResetAcknowledgedAt()
		return nil
	case usagealert.FieldAcknowledgedBy:
		m.ResetAcknowledgedBy()
		return nil
	case usagealert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageAlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageAlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageAlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageAlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageAlert edge %s", name)
}

// UsageMetricMutation represents an operation that mutates the UsageMetric nodes in the graph.
type UsageMetricMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_id         *string
	agent_type       *string
	model            *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	duration_ms      *int64
	addduration_ms   *int64
	cost             *float64
	addcost          *float64
	user_id          *string
	session_id       *string
	task_id          *string
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*UsageMetric, error)
	predicates       []predicate.UsageMetric
}

var _ ent.Mutation = (*UsageMetricMutation)(nil)

// usagemetricOption allows management of the mutation configuration using functional options.
type usagemetricOption func(*UsageMetricMutation)

// newUsageMetricMutation creates new mutation for the UsageMetric entity.
func newUsageMetricMutation(c config, op Op, opts ...usagemetricOption) *UsageMetricMutation {
	m := &UsageMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageMetricID sets the ID field of the mutation.
func withUsageMetricID(id string) usagemetricOption {
	return func(m *UsageMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageMetric
		)
		m.oldValue = func(ctx context.Context) (*UsageMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageMetric sets the old UsageMetric of the mutation.
func withUsageMetric(node *UsageMetric) usagemetricOption {
	return func(m *UsageMetricMutation) {
		m.oldValue = func(context.Context) (*UsageMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageMetric entities.
func (m *UsageMetricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageMetricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageMetricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *UsageMetricMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *UsageMetricMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *UsageMetricMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetAgentType sets the "agent_type" field.
func (m *UsageMetricMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *UsageMetricMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *UsageMetricMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetModel sets the "model" field.
func (m *UsageMetricMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *UsageMetricMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *UsageMetricMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *UsageMetricMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *UsageMetricMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *UsageMetricMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *UsageMetricMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *UsageMetricMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *UsageMetricMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *UsageMetricMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *UsageMetricMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *UsageMetricMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *UsageMetricMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *UsageMetricMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *UsageMetricMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *UsageMetricMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *UsageMetricMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *UsageMetricMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCost sets the "cost" field.
func (m *UsageMetricMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *UsageMetricMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *UsageMetricMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *UsageMetricMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *UsageMetricMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetUserID sets the "user_id" field.
func (m *UsageMetricMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageMetricMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageMetricMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *UsageMetricMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UsageMetricMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *UsageMetricMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[usagemetric.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *UsageMetricMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[usagemetric.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UsageMetricMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, usagemetric.FieldSessionID)
}

// SetTaskID sets the "task_id" field.
func (m *UsageMetricMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *UsageMetricMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *UsageMetricMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[usagemetric.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *UsageMetricMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[usagemetric.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *UsageMetricMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, usagemetric.FieldTaskID)
}

// SetMetadata sets the "metadata" field.
func (m *UsageMetricMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *UsageMetricMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *UsageMetricMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[usagemetric.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *UsageMetricMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[usagemetric.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *UsageMetricMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, usagemetric.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageMetricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageMetricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageMetric entity.
// If the UsageMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageMetricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UsageMetricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UsageMetricMutation builder.
func (m *UsageMetricMutation) Where(ps ...predicate.UsageMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageMetric).
func (m *UsageMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageMetricMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent_id != nil {
		fields = append(fields, usagemetric.FieldAgentID)
	}
	if m.agent_type != nil {
		fields = append(fields, usagemetric.FieldAgentType)
	}
	if m.model != nil {
		fields = append(fields, usagemetric.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, usagemetric.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, usagemetric.FieldOutputTokens)
	}
	if m.duration_ms != nil {
		fields = append(fields, usagemetric.FieldDurationMs)
	}
	if m.cost != nil {
		fields = append(fields, usagemetric.FieldCost)
	}
	if m.user_id != nil {
		fields = append(fields, usagemetric.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usagemetric.FieldSessionID)
	}
	if m.task_id != nil {
		fields = append(fields, usagemetric.FieldTaskID)
	}
	if m.metadata != nil {
		fields = append(fields, usagemetric.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, usagemetric.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagemetric.FieldAgentID:
		return m.AgentID()
	case usagemetric.FieldAgentType:
		return m.AgentType()
	case usagemetric.FieldModel:
		return m.Model()
	case usagemetric.FieldInputTokens:
		return m.InputTokens()
	case usagemetric.FieldOutputTokens:
		return m.OutputTokens()
	case usagemetric.FieldDurationMs:
		return m.DurationMs()
	case usagemetric.FieldCost:
		return m.Cost()
	case usagemetric.FieldUserID:
		return m.UserID()
	case usagemetric.FieldSessionID:
		return m.SessionID()
	case usagemetric.FieldTaskID:
		return m.TaskID()
	case usagemetric.FieldMetadata:
		return m.Metadata()
	case usagemetric.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagemetric.FieldAgentID:
		return m.OldAgentID(ctx)
	case usagemetric.FieldAgentType:
		return m.OldAgentType(ctx)
	case usagemetric.FieldModel:
		return m.OldModel(ctx)
	case usagemetric.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case usagemetric.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case usagemetric.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case usagemetric.FieldCost:
		return m.OldCost(ctx)
	case usagemetric.FieldUserID:
		return m.OldUserID(ctx)
	case usagemetric.FieldSessionID:
		return m.OldSessionID(ctx)
	case usagemetric.FieldTaskID:
		return m.OldTaskID(ctx)
	case usagemetric.FieldMetadata:
		return m.OldMetadata(ctx)
	case usagemetric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagemetric.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case usagemetric.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case usagemetric.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case usagemetric.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case usagemetric.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case usagemetric.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case usagemetric.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case usagemetric.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usagemetric.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usagemetric.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case usagemetric.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case usagemetric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageMetricMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, usagemetric.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, usagemetric.FieldOutputTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, usagemetric.FieldDurationMs)
	}
	if m.addcost != nil {
		fields = append(fields, usagemetric.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagemetric.FieldInputTokens:
		return m.AddedInputTokens()
	case usagemetric.FieldOutputTokens:
		return m.AddedOutputTokens()
	case usagemetric.FieldDurationMs:
		return m.AddedDurationMs()
	case usagemetric.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagemetric.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case usagemetric.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case usagemetric.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case usagemetric.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown UsageMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usagemetric.FieldSessionID) {
		fields = append(fields, usagemetric.FieldSessionID)
	}
	if m.FieldCleared(usagemetric.FieldTaskID) {
		fields = append(fields, usagemetric.FieldTaskID)
	}
	if m.FieldCleared(usagemetric.FieldMetadata) {
		fields = append(fields, usagemetric.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageMetricMutation) ClearField(name string) error {
	switch name {
	case usagemetric.FieldSessionID:
		m.ClearSessionID()
		return nil
	case usagemetric.FieldTaskID:
		m.ClearTaskID()
		return nil
	case usagemetric.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown UsageMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageMetricMutation) ResetField(name string) error {
	switch name {
	case usagemetric.FieldAgentID:
		m.ResetAgentID()
		return nil
	case usagemetric.FieldAgentType:
		m.ResetAgentType()
		return nil
	case usagemetric.FieldModel:
		m.ResetModel()
		return nil
	case usagemetric.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case usagemetric.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case usagemetric.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case usagemetric.FieldCost:
		m.ResetCost()
		return nil
	case usagemetric.FieldUserID:
		m.ResetUserID()
		return nil
	case usagemetric.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usagemetric.FieldTaskID:
		m.ResetTaskID()
		return nil
	case usagemetric.FieldMetadata:
		m.ResetMetadata()
		return nil
	case usagemetric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageMetric edge %s", name)
}
