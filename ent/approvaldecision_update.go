// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/predicate"
)

// ApprovalDecisionUpdate is the builder for updating ApprovalDecision entities.
type ApprovalDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalDecisionMutation
}

// Where appends a list predicates to the ApprovalDecisionUpdate builder.
func (_u *ApprovalDecisionUpdate) Where(ps ...predicate.ApprovalDecision) *ApprovalDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ApprovalDecisionUpdate) SetRequestID(v string) *ApprovalDecisionUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ApprovalDecisionUpdate) SetNillableRequestID(v *string) *ApprovalDecisionUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetDeciderID sets the "decider_id" field.
func (_u *ApprovalDecisionUpdate) SetDeciderID(v string) *ApprovalDecisionUpdate {
	_u.mutation.SetDeciderID(v)
	return _u
}

// SetNillableDeciderID sets the "decider_id" field if the given value is not nil.
func (_u *ApprovalDecisionUpdate) SetNillableDeciderID(v *string) *ApprovalDecisionUpdate {
	if v != nil {
		_u.SetDeciderID(*v)
	}
	return _u
}

// SetChoice sets the "choice" field.
func (_u *ApprovalDecisionUpdate) SetChoice(v string) *ApprovalDecisionUpdate {
	_u.mutation.SetChoice(v)
	return _u
}

// SetNillableChoice sets the "choice" field if the given value is not nil.
func (_u *ApprovalDecisionUpdate) SetNillableChoice(v *string) *ApprovalDecisionUpdate {
	if v != nil {
		_u.SetChoice(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ApprovalDecisionUpdate) SetReason(v string) *ApprovalDecisionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ApprovalDecisionUpdate) SetNillableReason(v *string) *ApprovalDecisionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ApprovalDecisionUpdate) ClearReason() *ApprovalDecisionUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetRequest sets the "request" edge to the ApprovalRequest entity.
func (_u *ApprovalDecisionUpdate) SetRequest(v *ApprovalRequest) *ApprovalDecisionUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the ApprovalDecisionMutation object of the builder.
func (_u *ApprovalDecisionUpdate) Mutation() *ApprovalDecisionMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the ApprovalRequest entity.
func (_u *ApprovalDecisionUpdate) ClearRequest() *ApprovalDecisionUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalDecisionUpdate) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalDecision.request"`)
	}
	return nil
}

func (_u *ApprovalDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvaldecision.Table, approvaldecision.Columns, sqlgraph.NewFieldSpec(approvaldecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeciderID(); ok {
		_spec.SetField(approvaldecision.FieldDeciderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choice(); ok {
		_spec.SetField(approvaldecision.FieldChoice, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(approvaldecision.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(approvaldecision.FieldReason, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvaldecision.RequestTable,
			Columns: []string{approvaldecision.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvaldecision.RequestTable,
			Columns: []string{approvaldecision.RequestColumn},
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
			err = &NotFoundError{approvaldecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalDecisionUpdateOne is the builder for updating a single ApprovalDecision entity.
type ApprovalDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalDecisionMutation
}

// SetRequestID sets the "request_id" field.
func (_u *ApprovalDecisionUpdateOne) SetRequestID(v string) *ApprovalDecisionUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ApprovalDecisionUpdateOne) SetNillableRequestID(v *string) *ApprovalDecisionUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetDeciderID sets the "decider_id" field.
func (_u *ApprovalDecisionUpdateOne) SetDeciderID(v string) *ApprovalDecisionUpdateOne {
	_u.mutation.SetDeciderID(v)
	return _u
}

// SetNillableDeciderID sets the "decider_id" field if the given value is not nil.
func (_u *ApprovalDecisionUpdateOne) SetNillableDeciderID(v *string) *ApprovalDecisionUpdateOne {
	if v != nil {
		_u.SetDeciderID(*v)
	}
	return _u
}

// SetChoice sets the "choice" field.
func (_u *ApprovalDecisionUpdateOne) SetChoice(v string) *ApprovalDecisionUpdateOne {
	_u.mutation.SetChoice(v)
	return _u
}

// SetNillableChoice sets the "choice" field if the given value is not nil.
func (_u *ApprovalDecisionUpdateOne) SetNillableChoice(v *string) *ApprovalDecisionUpdateOne {
	if v != nil {
		_u.SetChoice(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ApprovalDecisionUpdateOne) SetReason(v string) *ApprovalDecisionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ApprovalDecisionUpdateOne) SetNillableReason(v *string) *ApprovalDecisionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ApprovalDecisionUpdateOne) ClearReason() *ApprovalDecisionUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetRequest sets the "request" edge to the ApprovalRequest entity.
func (_u *ApprovalDecisionUpdateOne) SetRequest(v *ApprovalRequest) *ApprovalDecisionUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the ApprovalDecisionMutation object of the builder.
func (_u *ApprovalDecisionUpdateOne) Mutation() *ApprovalDecisionMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the ApprovalRequest entity.
func (_u *ApprovalDecisionUpdateOne) ClearRequest() *ApprovalDecisionUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the ApprovalDecisionUpdate builder.
func (_u *ApprovalDecisionUpdateOne) Where(ps ...predicate.ApprovalDecision) *ApprovalDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalDecisionUpdateOne) Select(field string, fields ...string) *ApprovalDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalDecision entity.
func (_u *ApprovalDecisionUpdateOne) Save(ctx context.Context) (*ApprovalDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalDecisionUpdateOne) SaveX(ctx context.Context) *ApprovalDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalDecisionUpdateOne) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalDecision.request"`)
	}
	return nil
}

func (_u *ApprovalDecisionUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvaldecision.Table, approvaldecision.Columns, sqlgraph.NewFieldSpec(approvaldecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvaldecision.FieldID)
		for _, f := range fields {
			if !approvaldecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvaldecision.FieldID {
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
	if value, ok := _u.mutation.DeciderID(); ok {
		_spec.SetField(approvaldecision.FieldDeciderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choice(); ok {
		_spec.SetField(approvaldecision.FieldChoice, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(approvaldecision.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(approvaldecision.FieldReason, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvaldecision.RequestTable,
			Columns: []string{approvaldecision.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvaldecision.RequestTable,
			Columns: []string{approvaldecision.RequestColumn},
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
	_node = &ApprovalDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvaldecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
