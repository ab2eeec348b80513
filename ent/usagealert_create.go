// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/MiniSankaz/fleetd/ent/usagealert"
)

// UsageAlertCreate is the builder for creating a UsageAlert entity.
type UsageAlertCreate struct {
	config
	mutation *UsageAlertMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UsageAlertCreate) SetUserID(v string) *UsageAlertCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *UsageAlertCreate) SetType(v string) *UsageAlertCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSeries sets the "series" field.
func (_c *UsageAlertCreate) SetSeries(v string) *UsageAlertCreate {
	_c.mutation.SetSeries(v)
	return _c
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_c *UsageAlertCreate) SetNillableSeries(v *string) *UsageAlertCreate {
	if v != nil {
		_c.SetSeries(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *UsageAlertCreate) SetLevel(v string) *UsageAlertCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *UsageAlertCreate) SetThreshold(v float64) *UsageAlertCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetCurrentUsage sets the "current_usage" field.
func (_c *UsageAlertCreate) SetCurrentUsage(v float64) *UsageAlertCreate {
	_c.mutation.SetCurrentUsage(v)
	return _c
}

// SetLimitValue sets the "limit_value" field.
func (_c *UsageAlertCreate) SetLimitValue(v float64) *UsageAlertCreate {
	_c.mutation.SetLimitValue(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *UsageAlertCreate) SetMessage(v string) *UsageAlertCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetAcknowledged sets the "acknowledged" field.
func (_c *UsageAlertCreate) SetAcknowledged(v bool) *UsageAlertCreate {
	_c.mutation.SetAcknowledged(v)
	return _c
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_c *UsageAlertCreate) SetNillableAcknowledged(v *bool) *UsageAlertCreate {
	if v != nil {
		_c.SetAcknowledged(*v)
	}
	return _c
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_c *UsageAlertCreate) SetAcknowledgedAt(v time.Time) *UsageAlertCreate {
	_c.mutation.SetAcknowledgedAt(v)
	return _c
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_c *UsageAlertCreate) SetNillableAcknowledgedAt(v *time.Time) *UsageAlertCreate {
	if v != nil {
		_c.SetAcknowledgedAt(*v)
	}
	return _c
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (_c *UsageAlertCreate) SetAcknowledgedBy(v string) *UsageAlertCreate {
	_c.mutation.SetAcknowledgedBy(v)
	return _c
}

// SetNillableAcknowledgedBy sets the "acknowledged_by" field if the given value is not nil.
func (_c *UsageAlertCreate) SetNillableAcknowledgedBy(v *string) *UsageAlertCreate {
	if v != nil {
		_c.SetAcknowledgedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageAlertCreate) SetCreatedAt(v time.Time) *UsageAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageAlertCreate) SetNillableCreatedAt(v *time.Time) *UsageAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageAlertCreate) SetID(v string) *UsageAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UsageAlertMutation object of the builder.
func (_c *UsageAlertCreate) Mutation() *UsageAlertMutation {
	return _c.mutation
}

// Save creates the UsageAlert in the database.
func (_c *UsageAlertCreate) Save(ctx context.Context) (*UsageAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageAlertCreate) SaveX(ctx context.Context) *UsageAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageAlertCreate) defaults() {
	if _, ok := _c.mutation.Acknowledged(); !ok {
		v := usagealert.DefaultAcknowledged
		_c.mutation.SetAcknowledged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagealert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageAlertCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageAlert.user_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "UsageAlert.type"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "UsageAlert.level"`)}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "UsageAlert.threshold"`)}
	}
	if _, ok := _c.mutation.CurrentUsage(); !ok {
		return &ValidationError{Name: "current_usage", err: errors.New(`ent: missing required field "UsageAlert.current_usage"`)}
	}
	if _, ok := _c.mutation.LimitValue(); !ok {
		return &ValidationError{Name: "limit_value", err: errors.New(`ent: missing required field "UsageAlert.limit_value"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "UsageAlert.message"`)}
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		return &ValidationError{Name: "acknowledged", err: errors.New(`ent: missing required field "UsageAlert.acknowledged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageAlert.created_at"`)}
	}
	return nil
}

func (_c *UsageAlertCreate) sqlSave(ctx context.Context) (*UsageAlert, error) {
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
			return nil, fmt.Errorf("unexpected UsageAlert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageAlertCreate) createSpec() (*UsageAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagealert.Table, sqlgraph.NewFieldSpec(usagealert.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usagealert.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(usagealert.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Series(); ok {
		_spec.SetField(usagealert.FieldSeries, field.TypeString, value)
		_node.Series = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(usagealert.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(usagealert.FieldThreshold, field.TypeFloat64, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.CurrentUsage(); ok {
		_spec.SetField(usagealert.FieldCurrentUsage, field.TypeFloat64, value)
		_node.CurrentUsage = value
	}
	if value, ok := _c.mutation.LimitValue(); ok {
		_spec.SetField(usagealert.FieldLimitValue, field.TypeFloat64, value)
		_node.LimitValue = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(usagealert.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Acknowledged(); ok {
		_spec.SetField(usagealert.FieldAcknowledged, field.TypeBool, value)
		_node.Acknowledged = value
	}
	if value, ok := _c.mutation.AcknowledgedAt(); ok {
		_spec.SetField(usagealert.FieldAcknowledgedAt, field.TypeTime, value)
		_node.AcknowledgedAt = &value
	}
	if value, ok := _c.mutation.AcknowledgedBy(); ok {
		_spec.SetField(usagealert.FieldAcknowledgedBy, field.TypeString, value)
		_node.AcknowledgedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagealert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UsageAlertCreateBulk is the builder for creating many UsageAlert entities in bulk.
type UsageAlertCreateBulk struct {
	config
	err      error
	builders []*UsageAlertCreate
}

// Save creates the UsageAlert entities in the database.
func (_c *UsageAlertCreateBulk) Save(ctx context.Context) ([]*UsageAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageAlertMutation)
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
func (_c *UsageAlertCreateBulk) SaveX(ctx context.Context) []*UsageAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
