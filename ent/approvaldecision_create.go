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
)

// ApprovalDecisionCreate is the builder for creating a ApprovalDecision entity.
type ApprovalDecisionCreate struct {
	config
	mutation *ApprovalDecisionMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *ApprovalDecisionCreate) SetRequestID(v string) *ApprovalDecisionCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDeciderID sets the "decider_id" field.
func (_c *ApprovalDecisionCreate) SetDeciderID(v string) *ApprovalDecisionCreate {
	_c.mutation.SetDeciderID(v)
	return _c
}

// SetChoice sets the "choice" field.
func (_c *ApprovalDecisionCreate) SetChoice(v string) *ApprovalDecisionCreate {
	_c.mutation.SetChoice(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ApprovalDecisionCreate) SetReason(v string) *ApprovalDecisionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ApprovalDecisionCreate) SetNillableReason(v *string) *ApprovalDecisionCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalDecisionCreate) SetCreatedAt(v time.Time) *ApprovalDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalDecisionCreate) SetNillableCreatedAt(v *time.Time) *ApprovalDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalDecisionCreate) SetID(v string) *ApprovalDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the ApprovalRequest entity.
func (_c *ApprovalDecisionCreate) SetRequest(v *ApprovalRequest) *ApprovalDecisionCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the ApprovalDecisionMutation object of the builder.
func (_c *ApprovalDecisionCreate) Mutation() *ApprovalDecisionMutation {
	return _c.mutation
}

// Save creates the ApprovalDecision in the database.
func (_c *ApprovalDecisionCreate) Save(ctx context.Context) (*ApprovalDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalDecisionCreate) SaveX(ctx context.Context) *ApprovalDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalDecisionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvaldecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalDecisionCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ApprovalDecision.request_id"`)}
	}
	if _, ok := _c.mutation.DeciderID(); !ok {
		return &ValidationError{Name: "decider_id", err: errors.New(`ent: missing required field "ApprovalDecision.decider_id"`)}
	}
	if _, ok := _c.mutation.Choice(); !ok {
		return &ValidationError{Name: "choice", err: errors.New(`ent: missing required field "ApprovalDecision.choice"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalDecision.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "ApprovalDecision.request"`)}
	}
	return nil
}

func (_c *ApprovalDecisionCreate) sqlSave(ctx context.Context) (*ApprovalDecision, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalDecisionCreate) createSpec() (*ApprovalDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvaldecision.Table, sqlgraph.NewFieldSpec(approvaldecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DeciderID(); ok {
		_spec.SetField(approvaldecision.FieldDeciderID, field.TypeString, value)
		_node.DeciderID = value
	}
	if value, ok := _c.mutation.Choice(); ok {
		_spec.SetField(approvaldecision.FieldChoice, field.TypeString, value)
		_node.Choice = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(approvaldecision.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvaldecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
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
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApprovalDecisionCreateBulk is the builder for creating many ApprovalDecision entities in bulk.
type ApprovalDecisionCreateBulk struct {
	config
	err      error
	builders []*ApprovalDecisionCreate
}

// Save creates the ApprovalDecision entities in the database.
func (_c *ApprovalDecisionCreateBulk) Save(ctx context.Context) ([]*ApprovalDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalDecisionMutation)
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
func (_c *ApprovalDecisionCreateBulk) SaveX(ctx context.Context) []*ApprovalDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
