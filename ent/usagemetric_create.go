// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/MiniSankaz/fleetd/ent/usagemetric"
)

// UsageMetricCreate is the builder for creating a UsageMetric entity.
type UsageMetricCreate struct {
	config
	mutation *UsageMetricMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *UsageMetricCreate) SetAgentID(v string) *UsageMetricCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *UsageMetricCreate) SetAgentType(v string) *UsageMetricCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *UsageMetricCreate) SetModel(v string) *UsageMetricCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *UsageMetricCreate) SetInputTokens(v int) *UsageMetricCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *UsageMetricCreate) SetOutputTokens(v int) *UsageMetricCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *UsageMetricCreate) SetDurationMs(v int64) *UsageMetricCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetCost sets the "cost" field.
func (_c *UsageMetricCreate) SetCost(v float64) *UsageMetricCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UsageMetricCreate) SetUserID(v string) *UsageMetricCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *UsageMetricCreate) SetSessionID(v string) *UsageMetricCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *UsageMetricCreate) SetNillableSessionID(v *string) *UsageMetricCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *UsageMetricCreate) SetTaskID(v string) *UsageMetricCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *UsageMetricCreate) SetNillableTaskID(v *string) *UsageMetricCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *UsageMetricCreate) SetMetadata(v map[string]interface{}) *UsageMetricCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageMetricCreate) SetCreatedAt(v time.Time) *UsageMetricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageMetricCreate) SetNillableCreatedAt(v *time.Time) *UsageMetricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageMetricCreate) SetID(v string) *UsageMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UsageMetricMutation object of the builder.
func (_c *UsageMetricCreate) Mutation() *UsageMetricMutation {
	return _c.mutation
}

// Save creates the UsageMetric in the database.
func (_c *UsageMetricCreate) Save(ctx context.Context) (*UsageMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageMetricCreate) SaveX(ctx context.Context) *UsageMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageMetricCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagemetric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageMetricCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "UsageMetric.agent_id"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "UsageMetric.agent_type"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "UsageMetric.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "UsageMetric.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "UsageMetric.output_tokens"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "UsageMetric.duration_ms"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "UsageMetric.cost"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageMetric.user_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageMetric.created_at"`)}
	}
	return nil
}

func (_c *UsageMetricCreate) sqlSave(ctx context.Context) (*UsageMetric, error) {
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
			return nil, fmt.Errorf("unexpected UsageMetric.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageMetricCreate) createSpec() (*UsageMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagemetric.Table, sqlgraph.NewFieldSpec(usagemetric.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(usagemetric.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(usagemetric.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(usagemetric.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(usagemetric.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(usagemetric.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(usagemetric.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(usagemetric.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usagemetric.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(usagemetric.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(usagemetric.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(usagemetric.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagemetric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UsageMetricCreateBulk is the builder for creating many UsageMetric entities in bulk.
type UsageMetricCreateBulk struct {
	config
	err      error
	builders []*UsageMetricCreate
}

// Save creates the UsageMetric entities in the database.
func (_c *UsageMetricCreateBulk) Save(ctx context.Context) ([]*UsageMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageMetricMutation)
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
func (_c *UsageMetricCreateBulk) SaveX(ctx context.Context) []*UsageMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
