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
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/auditentry"
	"github.com/MiniSankaz/fleetd/ent/predicate"
	"github.com/MiniSankaz/fleetd/pkg/models"
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

// SetType sets the "type" field.
func (_u *ApprovalRequestUpdate) SetType(v string) *ApprovalRequestUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableType(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ApprovalRequestUpdate) SetLevel(v string) *ApprovalRequestUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableLevel(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdate) SetStatus(v string) *ApprovalRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableStatus(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalRequestUpdate) SetTitle(v string) *ApprovalRequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableTitle(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRequestUpdate) SetDescription(v string) *ApprovalRequestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDescription(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRequestUpdate) ClearDescription() *ApprovalRequestUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *ApprovalRequestUpdate) SetRequesterID(v string) *ApprovalRequestUpdate {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRequesterID(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *ApprovalRequestUpdate) SetOperation(v models.OperationDescriptor) *ApprovalRequestUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableOperation(v *models.OperationDescriptor) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ApprovalRequestUpdate) SetApprovers(v []string) *ApprovalRequestUpdate {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *ApprovalRequestUpdate) AppendApprovers(v []string) *ApprovalRequestUpdate {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetRequiredCount sets the "required_count" field.
func (_u *ApprovalRequestUpdate) SetRequiredCount(v int) *ApprovalRequestUpdate {
	_u.mutation.ResetRequiredCount()
	_u.mutation.SetRequiredCount(v)
	return _u
}

// SetNillableRequiredCount sets the "required_count" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRequiredCount(v *int) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRequiredCount(*v)
	}
	return _u
}

// AddRequiredCount adds value to the "required_count" field.
func (_u *ApprovalRequestUpdate) AddRequiredCount(v int) *ApprovalRequestUpdate {
	_u.mutation.AddRequiredCount(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalRequestUpdate) SetExpiresAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableExpiresAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *ApprovalRequestUpdate) SetTimeoutMs(v int64) *ApprovalRequestUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableTimeoutMs(v *int64) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *ApprovalRequestUpdate) AddTimeoutMs(v int64) *ApprovalRequestUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetContext sets the "context" field.
func (_u *ApprovalRequestUpdate) SetContext(v models.ApprovalContext) *ApprovalRequestUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableContext(v *models.ApprovalContext) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ApprovalRequestUpdate) ClearContext() *ApprovalRequestUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetPolicyID sets the "policy_id" field.
func (_u *ApprovalRequestUpdate) SetPolicyID(v string) *ApprovalRequestUpdate {
	_u.mutation.SetPolicyID(v)
	return _u
}

// SetNillablePolicyID sets the "policy_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillablePolicyID(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetPolicyID(*v)
	}
	return _u
}

// ClearPolicyID clears the value of the "policy_id" field.
func (_u *ApprovalRequestUpdate) ClearPolicyID() *ApprovalRequestUpdate {
	_u.mutation.ClearPolicyID()
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *ApprovalRequestUpdate) SetEscalationLevel(v int) *ApprovalRequestUpdate {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableEscalationLevel(v *int) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *ApprovalRequestUpdate) AddEscalationLevel(v int) *ApprovalRequestUpdate {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetEscalationHistory sets the "escalation_history" field.
func (_u *ApprovalRequestUpdate) SetEscalationHistory(v []models.EscalationEntry) *ApprovalRequestUpdate {
	_u.mutation.SetEscalationHistory(v)
	return _u
}

// AppendEscalationHistory appends value to the "escalation_history" field.
func (_u *ApprovalRequestUpdate) AppendEscalationHistory(v []models.EscalationEntry) *ApprovalRequestUpdate {
	_u.mutation.AppendEscalationHistory(v)
	return _u
}

// ClearEscalationHistory clears the value of the "escalation_history" field.
func (_u *ApprovalRequestUpdate) ClearEscalationHistory() *ApprovalRequestUpdate {
	_u.mutation.ClearEscalationHistory()
	return _u
}

// SetBypassedBy sets the "bypassed_by" field.
func (_u *ApprovalRequestUpdate) SetBypassedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetBypassedBy(v)
	return _u
}

// SetNillableBypassedBy sets the "bypassed_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableBypassedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetBypassedBy(*v)
	}
	return _u
}

// ClearBypassedBy clears the value of the "bypassed_by" field.
func (_u *ApprovalRequestUpdate) ClearBypassedBy() *ApprovalRequestUpdate {
	_u.mutation.ClearBypassedBy()
	return _u
}

// SetBypassReason sets the "bypass_reason" field.
func (_u *ApprovalRequestUpdate) SetBypassReason(v string) *ApprovalRequestUpdate {
	_u.mutation.SetBypassReason(v)
	return _u
}

// SetNillableBypassReason sets the "bypass_reason" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableBypassReason(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetBypassReason(*v)
	}
	return _u
}

// ClearBypassReason clears the value of the "bypass_reason" field.
func (_u *ApprovalRequestUpdate) ClearBypassReason() *ApprovalRequestUpdate {
	_u.mutation.ClearBypassReason()
	return _u
}

// SetBypassedAt sets the "bypassed_at" field.
func (_u *ApprovalRequestUpdate) SetBypassedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetBypassedAt(v)
	return _u
}

// SetNillableBypassedAt sets the "bypassed_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableBypassedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetBypassedAt(*v)
	}
	return _u
}

// ClearBypassedAt clears the value of the "bypassed_at" field.
func (_u *ApprovalRequestUpdate) ClearBypassedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearBypassedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalRequestUpdate) SetResolvedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableResolvedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalRequestUpdate) ClearResolvedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// AddDecisionIDs adds the "decisions" edge to the ApprovalDecision entity by IDs.
func (_u *ApprovalRequestUpdate) AddDecisionIDs(ids ...string) *ApprovalRequestUpdate {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the ApprovalDecision entity.
func (_u *ApprovalRequestUpdate) AddDecisions(v ...*ApprovalDecision) *ApprovalRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_u *ApprovalRequestUpdate) AddAuditEntryIDs(ids ...string) *ApprovalRequestUpdate {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_u *ApprovalRequestUpdate) AddAuditEntries(v ...*AuditEntry) *ApprovalRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdate) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// ClearDecisions clears all "decisions" edges to the ApprovalDecision entity.
func (_u *ApprovalRequestUpdate) ClearDecisions() *ApprovalRequestUpdate {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to ApprovalDecision entities by IDs.
func (_u *ApprovalRequestUpdate) RemoveDecisionIDs(ids ...string) *ApprovalRequestUpdate {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to ApprovalDecision entities.
func (_u *ApprovalRequestUpdate) RemoveDecisions(v ...*ApprovalDecision) *ApprovalRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditEntry entity.
func (_u *ApprovalRequestUpdate) ClearAuditEntries() *ApprovalRequestUpdate {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditEntry entities by IDs.
func (_u *ApprovalRequestUpdate) RemoveAuditEntryIDs(ids ...string) *ApprovalRequestUpdate {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditEntry entities.
func (_u *ApprovalRequestUpdate) RemoveAuditEntries(v ...*AuditEntry) *ApprovalRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
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

func (_u *ApprovalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(approvalrequest.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(approvalrequest.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(approvalrequest.FieldRequesterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(approvalrequest.FieldOperation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(approvalrequest.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalrequest.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.RequiredCount(); ok {
		_spec.SetField(approvalrequest.FieldRequiredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredCount(); ok {
		_spec.AddField(approvalrequest.FieldRequiredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(approvalrequest.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(approvalrequest.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(approvalrequest.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(approvalrequest.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.PolicyID(); ok {
		_spec.SetField(approvalrequest.FieldPolicyID, field.TypeString, value)
	}
	if _u.mutation.PolicyIDCleared() {
		_spec.ClearField(approvalrequest.FieldPolicyID, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(approvalrequest.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(approvalrequest.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationHistory(); ok {
		_spec.SetField(approvalrequest.FieldEscalationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEscalationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalrequest.FieldEscalationHistory, value)
		})
	}
	if _u.mutation.EscalationHistoryCleared() {
		_spec.ClearField(approvalrequest.FieldEscalationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.BypassedBy(); ok {
		_spec.SetField(approvalrequest.FieldBypassedBy, field.TypeString, value)
	}
	if _u.mutation.BypassedByCleared() {
		_spec.ClearField(approvalrequest.FieldBypassedBy, field.TypeString)
	}
	if value, ok := _u.mutation.BypassReason(); ok {
		_spec.SetField(approvalrequest.FieldBypassReason, field.TypeString, value)
	}
	if _u.mutation.BypassReasonCleared() {
		_spec.ClearField(approvalrequest.FieldBypassReason, field.TypeString)
	}
	if value, ok := _u.mutation.BypassedAt(); ok {
		_spec.SetField(approvalrequest.FieldBypassedAt, field.TypeTime, value)
	}
	if _u.mutation.BypassedAtCleared() {
		_spec.ClearField(approvalrequest.FieldBypassedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approvalrequest.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
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

// SetType sets the "type" field.
func (_u *ApprovalRequestUpdateOne) SetType(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableType(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ApprovalRequestUpdateOne) SetLevel(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableLevel(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdateOne) SetStatus(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableStatus(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalRequestUpdateOne) SetTitle(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableTitle(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRequestUpdateOne) SetDescription(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDescription(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRequestUpdateOne) ClearDescription() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *ApprovalRequestUpdateOne) SetRequesterID(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRequesterID(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *ApprovalRequestUpdateOne) SetOperation(v models.OperationDescriptor) *ApprovalRequestUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableOperation(v *models.OperationDescriptor) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ApprovalRequestUpdateOne) SetApprovers(v []string) *ApprovalRequestUpdateOne {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *ApprovalRequestUpdateOne) AppendApprovers(v []string) *ApprovalRequestUpdateOne {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetRequiredCount sets the "required_count" field.
func (_u *ApprovalRequestUpdateOne) SetRequiredCount(v int) *ApprovalRequestUpdateOne {
	_u.mutation.ResetRequiredCount()
	_u.mutation.SetRequiredCount(v)
	return _u
}

// SetNillableRequiredCount sets the "required_count" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRequiredCount(v *int) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRequiredCount(*v)
	}
	return _u
}

// AddRequiredCount adds value to the "required_count" field.
func (_u *ApprovalRequestUpdateOne) AddRequiredCount(v int) *ApprovalRequestUpdateOne {
	_u.mutation.AddRequiredCount(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalRequestUpdateOne) SetExpiresAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableExpiresAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *ApprovalRequestUpdateOne) SetTimeoutMs(v int64) *ApprovalRequestUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableTimeoutMs(v *int64) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *ApprovalRequestUpdateOne) AddTimeoutMs(v int64) *ApprovalRequestUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetContext sets the "context" field.
func (_u *ApprovalRequestUpdateOne) SetContext(v models.ApprovalContext) *ApprovalRequestUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableContext(v *models.ApprovalContext) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ApprovalRequestUpdateOne) ClearContext() *ApprovalRequestUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetPolicyID sets the "policy_id" field.
func (_u *ApprovalRequestUpdateOne) SetPolicyID(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetPolicyID(v)
	return _u
}

// SetNillablePolicyID sets the "policy_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillablePolicyID(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetPolicyID(*v)
	}
	return _u
}

// ClearPolicyID clears the value of the "policy_id" field.
func (_u *ApprovalRequestUpdateOne) ClearPolicyID() *ApprovalRequestUpdateOne {
	_u.mutation.ClearPolicyID()
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *ApprovalRequestUpdateOne) SetEscalationLevel(v int) *ApprovalRequestUpdateOne {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableEscalationLevel(v *int) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *ApprovalRequestUpdateOne) AddEscalationLevel(v int) *ApprovalRequestUpdateOne {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetEscalationHistory sets the "escalation_history" field.
func (_u *ApprovalRequestUpdateOne) SetEscalationHistory(v []models.EscalationEntry) *ApprovalRequestUpdateOne {
	_u.mutation.SetEscalationHistory(v)
	return _u
}

// AppendEscalationHistory appends value to the "escalation_history" field.
func (_u *ApprovalRequestUpdateOne) AppendEscalationHistory(v []models.EscalationEntry) *ApprovalRequestUpdateOne {
	_u.mutation.AppendEscalationHistory(v)
	return _u
}

// ClearEscalationHistory clears the value of the "escalation_history" field.
func (_u *ApprovalRequestUpdateOne) ClearEscalationHistory() *ApprovalRequestUpdateOne {
	_u.mutation.ClearEscalationHistory()
	return _u
}

// SetBypassedBy sets the "bypassed_by" field.
func (_u *ApprovalRequestUpdateOne) SetBypassedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetBypassedBy(v)
	return _u
}

// SetNillableBypassedBy sets the "bypassed_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableBypassedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetBypassedBy(*v)
	}
	return _u
}

// ClearBypassedBy clears the value of the "bypassed_by" field.
func (_u *ApprovalRequestUpdateOne) ClearBypassedBy() *ApprovalRequestUpdateOne {
	_u.mutation.ClearBypassedBy()
	return _u
}

// SetBypassReason sets the "bypass_reason" field.
func (_u *ApprovalRequestUpdateOne) SetBypassReason(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetBypassReason(v)
	return _u
}

// SetNillableBypassReason sets the "bypass_reason" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableBypassReason(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetBypassReason(*v)
	}
	return _u
}

// ClearBypassReason clears the value of the "bypass_reason" field.
func (_u *ApprovalRequestUpdateOne) ClearBypassReason() *ApprovalRequestUpdateOne {
	_u.mutation.ClearBypassReason()
	return _u
}

// SetBypassedAt sets the "bypassed_at" field.
func (_u *ApprovalRequestUpdateOne) SetBypassedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetBypassedAt(v)
	return _u
}

// SetNillableBypassedAt sets the "bypassed_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableBypassedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetBypassedAt(*v)
	}
	return _u
}

// ClearBypassedAt clears the value of the "bypassed_at" field.
func (_u *ApprovalRequestUpdateOne) ClearBypassedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearBypassedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalRequestUpdateOne) SetResolvedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableResolvedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalRequestUpdateOne) ClearResolvedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// AddDecisionIDs adds the "decisions" edge to the ApprovalDecision entity by IDs.
func (_u *ApprovalRequestUpdateOne) AddDecisionIDs(ids ...string) *ApprovalRequestUpdateOne {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the ApprovalDecision entity.
func (_u *ApprovalRequestUpdateOne) AddDecisions(v ...*ApprovalDecision) *ApprovalRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_u *ApprovalRequestUpdateOne) AddAuditEntryIDs(ids ...string) *ApprovalRequestUpdateOne {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_u *ApprovalRequestUpdateOne) AddAuditEntries(v ...*AuditEntry) *ApprovalRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdateOne) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// ClearDecisions clears all "decisions" edges to the ApprovalDecision entity.
func (_u *ApprovalRequestUpdateOne) ClearDecisions() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to ApprovalDecision entities by IDs.
func (_u *ApprovalRequestUpdateOne) RemoveDecisionIDs(ids ...string) *ApprovalRequestUpdateOne {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to ApprovalDecision entities.
func (_u *ApprovalRequestUpdateOne) RemoveDecisions(v ...*ApprovalDecision) *ApprovalRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditEntry entity.
func (_u *ApprovalRequestUpdateOne) ClearAuditEntries() *ApprovalRequestUpdateOne {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditEntry entities by IDs.
func (_u *ApprovalRequestUpdateOne) RemoveAuditEntryIDs(ids ...string) *ApprovalRequestUpdateOne {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditEntry entities.
func (_u *ApprovalRequestUpdateOne) RemoveAuditEntries(v ...*AuditEntry) *ApprovalRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
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

func (_u *ApprovalRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRequest, err error) {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(approvalrequest.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(approvalrequest.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(approvalrequest.FieldRequesterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(approvalrequest.FieldOperation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(approvalrequest.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalrequest.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.RequiredCount(); ok {
		_spec.SetField(approvalrequest.FieldRequiredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredCount(); ok {
		_spec.AddField(approvalrequest.FieldRequiredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(approvalrequest.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(approvalrequest.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(approvalrequest.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(approvalrequest.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.PolicyID(); ok {
		_spec.SetField(approvalrequest.FieldPolicyID, field.TypeString, value)
	}
	if _u.mutation.PolicyIDCleared() {
		_spec.ClearField(approvalrequest.FieldPolicyID, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(approvalrequest.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(approvalrequest.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationHistory(); ok {
		_spec.SetField(approvalrequest.FieldEscalationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEscalationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalrequest.FieldEscalationHistory, value)
		})
	}
	if _u.mutation.EscalationHistoryCleared() {
		_spec.ClearField(approvalrequest.FieldEscalationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.BypassedBy(); ok {
		_spec.SetField(approvalrequest.FieldBypassedBy, field.TypeString, value)
	}
	if _u.mutation.BypassedByCleared() {
		_spec.ClearField(approvalrequest.FieldBypassedBy, field.TypeString)
	}
	if value, ok := _u.mutation.BypassReason(); ok {
		_spec.SetField(approvalrequest.FieldBypassReason, field.TypeString, value)
	}
	if _u.mutation.BypassReasonCleared() {
		_spec.ClearField(approvalrequest.FieldBypassReason, field.TypeString)
	}
	if value, ok := _u.mutation.BypassedAt(); ok {
		_spec.SetField(approvalrequest.FieldBypassedAt, field.TypeTime, value)
	}
	if _u.mutation.BypassedAtCleared() {
		_spec.ClearField(approvalrequest.FieldBypassedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approvalrequest.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
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
