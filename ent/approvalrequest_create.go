// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/auditentry"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// ApprovalRequestCreate is the builder for creating a ApprovalRequest entity.
type ApprovalRequestCreate struct {
	config
	mutation *ApprovalRequestMutation
	hooks    []Hook
}

// SetType sets the "type" field.
func (_c *ApprovalRequestCreate) SetType(v string) *ApprovalRequestCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ApprovalRequestCreate) SetLevel(v string) *ApprovalRequestCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalRequestCreate) SetStatus(v string) *ApprovalRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableStatus(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ApprovalRequestCreate) SetTitle(v string) *ApprovalRequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApprovalRequestCreate) SetDescription(v string) *ApprovalRequestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDescription(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequesterID sets the "requester_id" field.
func (_c *ApprovalRequestCreate) SetRequesterID(v string) *ApprovalRequestCreate {
	_c.mutation.SetRequesterID(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *ApprovalRequestCreate) SetOperation(v models.OperationDescriptor) *ApprovalRequestCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetApprovers sets the "approvers" field.
func (_c *ApprovalRequestCreate) SetApprovers(v []string) *ApprovalRequestCreate {
	_c.mutation.SetApprovers(v)
	return _c
}

// SetRequiredCount sets the "required_count" field.
func (_c *ApprovalRequestCreate) SetRequiredCount(v int) *ApprovalRequestCreate {
	_c.mutation.SetRequiredCount(v)
	return _c
}

// SetNillableRequiredCount sets the "required_count" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRequiredCount(v *int) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRequiredCount(*v)
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

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalRequestCreate) SetExpiresAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *ApprovalRequestCreate) SetTimeoutMs(v int64) *ApprovalRequestCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *ApprovalRequestCreate) SetContext(v models.ApprovalContext) *ApprovalRequestCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableContext(v *models.ApprovalContext) *ApprovalRequestCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetPolicyID sets the "policy_id" field.
func (_c *ApprovalRequestCreate) SetPolicyID(v string) *ApprovalRequestCreate {
	_c.mutation.SetPolicyID(v)
	return _c
}

// SetNillablePolicyID sets the "policy_id" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillablePolicyID(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetPolicyID(*v)
	}
	return _c
}

// SetEscalationLevel sets the "escalation_level" field.
func (_c *ApprovalRequestCreate) SetEscalationLevel(v int) *ApprovalRequestCreate {
	_c.mutation.SetEscalationLevel(v)
	return _c
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableEscalationLevel(v *int) *ApprovalRequestCreate {
	if v != nil {
		_c.SetEscalationLevel(*v)
	}
	return _c
}

// SetEscalationHistory sets the "escalation_history" field.
func (_c *ApprovalRequestCreate) SetEscalationHistory(v []models.EscalationEntry) *ApprovalRequestCreate {
	_c.mutation.SetEscalationHistory(v)
	return _c
}

// SetBypassedBy sets the "bypassed_by" field.
func (_c *ApprovalRequestCreate) SetBypassedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetBypassedBy(v)
	return _c
}

// SetNillableBypassedBy sets the "bypassed_by" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableBypassedBy(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetBypassedBy(*v)
	}
	return _c
}

// SetBypassReason sets the "bypass_reason" field.
func (_c *ApprovalRequestCreate) SetBypassReason(v string) *ApprovalRequestCreate {
	_c.mutation.SetBypassReason(v)
	return _c
}

// SetNillableBypassReason sets the "bypass_reason" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableBypassReason(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetBypassReason(*v)
	}
	return _c
}

// SetBypassedAt sets the "bypassed_at" field.
func (_c *ApprovalRequestCreate) SetBypassedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetBypassedAt(v)
	return _c
}

// SetNillableBypassedAt sets the "bypassed_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableBypassedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetBypassedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ApprovalRequestCreate) SetResolvedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableResolvedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRequestCreate) SetID(v string) *ApprovalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDecisionIDs adds the "decisions" edge to the ApprovalDecision entity by IDs.
func (_c *ApprovalRequestCreate) AddDecisionIDs(ids ...string) *ApprovalRequestCreate {
	_c.mutation.AddDecisionIDs(ids...)
	return _c
}

// AddDecisions adds the "decisions" edges to the ApprovalDecision entity.
func (_c *ApprovalRequestCreate) AddDecisions(v ...*ApprovalDecision) *ApprovalRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDecisionIDs(ids...)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_c *ApprovalRequestCreate) AddAuditEntryIDs(ids ...string) *ApprovalRequestCreate {
	_c.mutation.AddAuditEntryIDs(ids...)
	return _c
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_c *ApprovalRequestCreate) AddAuditEntries(v ...*AuditEntry) *ApprovalRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditEntryIDs(ids...)
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
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequiredCount(); !ok {
		v := approvalrequest.DefaultRequiredCount
		_c.mutation.SetRequiredCount(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := approvalrequest.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		v := approvalrequest.DefaultEscalationLevel
		_c.mutation.SetEscalationLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRequestCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "ApprovalRequest.type"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ApprovalRequest.level"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalRequest.status"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ApprovalRequest.title"`)}
	}
	if _, ok := _c.mutation.RequesterID(); !ok {
		return &ValidationError{Name: "requester_id", err: errors.New(`ent: missing required field "ApprovalRequest.requester_id"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "ApprovalRequest.operation"`)}
	}
	if _, ok := _c.mutation.Approvers(); !ok {
		return &ValidationError{Name: "approvers", err: errors.New(`ent: missing required field "ApprovalRequest.approvers"`)}
	}
	if _, ok := _c.mutation.RequiredCount(); !ok {
		return &ValidationError{Name: "required_count", err: errors.New(`ent: missing required field "ApprovalRequest.required_count"`)}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "ApprovalRequest.requested_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ApprovalRequest.expires_at"`)}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "ApprovalRequest.timeout_ms"`)}
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		return &ValidationError{Name: "escalation_level", err: errors.New(`ent: missing required field "ApprovalRequest.escalation_level"`)}
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
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(approvalrequest.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(approvalrequest.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(approvalrequest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(approvalrequest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.RequesterID(); ok {
		_spec.SetField(approvalrequest.FieldRequesterID, field.TypeString, value)
		_node.RequesterID = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(approvalrequest.FieldOperation, field.TypeJSON, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Approvers(); ok {
		_spec.SetField(approvalrequest.FieldApprovers, field.TypeJSON, value)
		_node.Approvers = value
	}
	if value, ok := _c.mutation.RequiredCount(); ok {
		_spec.SetField(approvalrequest.FieldRequiredCount, field.TypeInt, value)
		_node.RequiredCount = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(approvalrequest.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrequest.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(approvalrequest.FieldTimeoutMs, field.TypeInt64, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(approvalrequest.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.PolicyID(); ok {
		_spec.SetField(approvalrequest.FieldPolicyID, field.TypeString, value)
		_node.PolicyID = value
	}
	if value, ok := _c.mutation.EscalationLevel(); ok {
		_spec.SetField(approvalrequest.FieldEscalationLevel, field.TypeInt, value)
		_node.EscalationLevel = value
	}
	if value, ok := _c.mutation.EscalationHistory(); ok {
		_spec.SetField(approvalrequest.FieldEscalationHistory, field.TypeJSON, value)
		_node.EscalationHistory = value
	}
	if value, ok := _c.mutation.BypassedBy(); ok {
		_spec.SetField(approvalrequest.FieldBypassedBy, field.TypeString, value)
		_node.BypassedBy = value
	}
	if value, ok := _c.mutation.BypassReason(); ok {
		_spec.SetField(approvalrequest.FieldBypassReason, field.TypeString, value)
		_node.BypassReason = value
	}
	if value, ok := _c.mutation.BypassedAt(); ok {
		_spec.SetField(approvalrequest.FieldBypassedAt, field.TypeTime, value)
		_node.BypassedAt = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrequest.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   approvalrequest.DecisionsTable,
			Columns: []string{approvalrequest.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvaldecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   approvalrequest.AuditEntriesTable,
			Columns: []string{approvalrequest.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
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
