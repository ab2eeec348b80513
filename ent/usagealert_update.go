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
	"github.com/MiniSankaz/fleetd/ent/predicate"
	"github.com/MiniSankaz/fleetd/ent/usagealert"
)

// UsageAlertUpdate is the builder for updating UsageAlert entities.
type UsageAlertUpdate struct {
	config
	hooks    []Hook
	mutation *UsageAlertMutation
}

// Where appends a list predicates to the UsageAlertUpdate builder.
func (_u *UsageAlertUpdate) Where(ps ...predicate.UsageAlert) *UsageAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageAlertUpdate) SetUserID(v string) *UsageAlertUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableUserID(v *string) *UsageAlertUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *UsageAlertUpdate) SetType(v string) *UsageAlertUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableType(v *string) *UsageAlertUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSeries sets the "series" field.
func (_u *UsageAlertUpdate) SetSeries(v string) *UsageAlertUpdate {
	_u.mutation.SetSeries(v)
	return _u
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableSeries(v *string) *UsageAlertUpdate {
	if v != nil {
		_u.SetSeries(*v)
	}
	return _u
}

// ClearSeries clears the value of the "series" field.
func (_u *UsageAlertUpdate) ClearSeries() *UsageAlertUpdate {
	_u.mutation.ClearSeries()
	return _u
}

// SetLevel sets the "level" field.
func (_u *UsageAlertUpdate) SetLevel(v string) *UsageAlertUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableLevel(v *string) *UsageAlertUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *UsageAlertUpdate) SetThreshold(v float64) *UsageAlertUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableThreshold(v *float64) *UsageAlertUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *UsageAlertUpdate) AddThreshold(v float64) *UsageAlertUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetCurrentUsage sets the "current_usage" field.
func (_u *UsageAlertUpdate) SetCurrentUsage(v float64) *UsageAlertUpdate {
	_u.mutation.ResetCurrentUsage()
	_u.mutation.SetCurrentUsage(v)
	return _u
}

// SetNillableCurrentUsage sets the "current_usage" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableCurrentUsage(v *float64) *UsageAlertUpdate {
	if v != nil {
		_u.SetCurrentUsage(*v)
	}
	return _u
}

// AddCurrentUsage adds value to the "current_usage" field.
func (_u *UsageAlertUpdate) AddCurrentUsage(v float64) *UsageAlertUpdate {
	_u.mutation.AddCurrentUsage(v)
	return _u
}

// SetLimitValue sets the "limit_value" field.
func (_u *UsageAlertUpdate) SetLimitValue(v float64) *UsageAlertUpdate {
	_u.mutation.ResetLimitValue()
	_u.mutation.SetLimitValue(v)
	return _u
}

// SetNillableLimitValue sets the "limit_value" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableLimitValue(v *float64) *UsageAlertUpdate {
	if v != nil {
		_u.SetLimitValue(*v)
	}
	return _u
}

// AddLimitValue adds value to the "limit_value" field.
func (_u *UsageAlertUpdate) AddLimitValue(v float64) *UsageAlertUpdate {
	_u.mutation.AddLimitValue(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *UsageAlertUpdate) SetMessage(v string) *UsageAlertUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableMessage(v *string) *UsageAlertUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *UsageAlertUpdate) SetAcknowledged(v bool) *UsageAlertUpdate {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableAcknowledged(v *bool) *UsageAlertUpdate {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *UsageAlertUpdate) SetAcknowledgedAt(v time.Time) *UsageAlertUpdate {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableAcknowledgedAt(v *time.Time) *UsageAlertUpdate {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *UsageAlertUpdate) ClearAcknowledgedAt() *UsageAlertUpdate {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (_u *UsageAlertUpdate) SetAcknowledgedBy(v string) *UsageAlertUpdate {
	_u.mutation.SetAcknowledgedBy(v)
	return _u
}

// SetNillableAcknowledgedBy sets the "acknowledged_by" field if the given value is not nil.
func (_u *UsageAlertUpdate) SetNillableAcknowledgedBy(v *string) *UsageAlertUpdate {
	if v != nil {
		_u.SetAcknowledgedBy(*v)
	}
	return _u
}

// ClearAcknowledgedBy clears the value of the "acknowledged_by" field.
func (_u *UsageAlertUpdate) ClearAcknowledgedBy() *UsageAlertUpdate {
	_u.mutation.ClearAcknowledgedBy()
	return _u
}

// Mutation returns the UsageAlertMutation object of the builder.
func (_u *UsageAlertUpdate) Mutation() *UsageAlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagealert.Table, usagealert.Columns, sqlgraph.NewFieldSpec(usagealert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usagealert.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(usagealert.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(usagealert.FieldSeries, field.TypeString, value)
	}
	if _u.mutation.SeriesCleared() {
		_spec.ClearField(usagealert.FieldSeries, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(usagealert.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(usagealert.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(usagealert.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentUsage(); ok {
		_spec.SetField(usagealert.FieldCurrentUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentUsage(); ok {
		_spec.AddField(usagealert.FieldCurrentUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LimitValue(); ok {
		_spec.SetField(usagealert.FieldLimitValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLimitValue(); ok {
		_spec.AddField(usagealert.FieldLimitValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(usagealert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(usagealert.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(usagealert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(usagealert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AcknowledgedBy(); ok {
		_spec.SetField(usagealert.FieldAcknowledgedBy, field.TypeString, value)
	}
	if _u.mutation.AcknowledgedByCleared() {
		_spec.ClearField(usagealert.FieldAcknowledgedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagealert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageAlertUpdateOne is the builder for updating a single UsageAlert entity.
type UsageAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageAlertMutation
}

// SetUserID sets the "user_id" field.
func (_u *UsageAlertUpdateOne) SetUserID(v string) *UsageAlertUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableUserID(v *string) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *UsageAlertUpdateOne) SetType(v string) *UsageAlertUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableType(v *string) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSeries sets the "series" field.
func (_u *UsageAlertUpdateOne) SetSeries(v string) *UsageAlertUpdateOne {
	_u.mutation.SetSeries(v)
	return _u
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableSeries(v *string) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetSeries(*v)
	}
	return _u
}

// ClearSeries clears the value of the "series" field.
func (_u *UsageAlertUpdateOne) ClearSeries() *UsageAlertUpdateOne {
	_u.mutation.ClearSeries()
	return _u
}

// SetLevel sets the "level" field.
func (_u *UsageAlertUpdateOne) SetLevel(v string) *UsageAlertUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableLevel(v *string) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *UsageAlertUpdateOne) SetThreshold(v float64) *UsageAlertUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableThreshold(v *float64) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *UsageAlertUpdateOne) AddThreshold(v float64) *UsageAlertUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetCurrentUsage sets the "current_usage" field.
func (_u *UsageAlertUpdateOne) SetCurrentUsage(v float64) *UsageAlertUpdateOne {
	_u.mutation.ResetCurrentUsage()
	_u.mutation.SetCurrentUsage(v)
	return _u
}

// SetNillableCurrentUsage sets the "current_usage" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableCurrentUsage(v *float64) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetCurrentUsage(*v)
	}
	return _u
}

// AddCurrentUsage adds value to the "current_usage" field.
func (_u *UsageAlertUpdateOne) AddCurrentUsage(v float64) *UsageAlertUpdateOne {
	_u.mutation.AddCurrentUsage(v)
	return _u
}

// SetLimitValue sets the "limit_value" field.
func (_u *UsageAlertUpdateOne) SetLimitValue(v float64) *UsageAlertUpdateOne {
	_u.mutation.ResetLimitValue()
	_u.mutation.SetLimitValue(v)
	return _u
}

// SetNillableLimitValue sets the "limit_value" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableLimitValue(v *float64) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetLimitValue(*v)
	}
	return _u
}

// AddLimitValue adds value to the "limit_value" field.
func (_u *UsageAlertUpdateOne) AddLimitValue(v float64) *UsageAlertUpdateOne {
	_u.mutation.AddLimitValue(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *UsageAlertUpdateOne) SetMessage(v string) *UsageAlertUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableMessage(v *string) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *UsageAlertUpdateOne) SetAcknowledged(v bool) *UsageAlertUpdateOne {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableAcknowledged(v *bool) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *UsageAlertUpdateOne) SetAcknowledgedAt(v time.Time) *UsageAlertUpdateOne {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableAcknowledgedAt(v *time.Time) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *UsageAlertUpdateOne) ClearAcknowledgedAt() *UsageAlertUpdateOne {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (_u *UsageAlertUpdateOne) SetAcknowledgedBy(v string) *UsageAlertUpdateOne {
	_u.mutation.SetAcknowledgedBy(v)
	return _u
}

// SetNillableAcknowledgedBy sets the "acknowledged_by" field if the given value is not nil.
func (_u *UsageAlertUpdateOne) SetNillableAcknowledgedBy(v *string) *UsageAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledgedBy(*v)
	}
	return _u
}

// ClearAcknowledgedBy clears the value of the "acknowledged_by" field.
func (_u *UsageAlertUpdateOne) ClearAcknowledgedBy() *UsageAlertUpdateOne {
	_u.mutation.ClearAcknowledgedBy()
	return _u
}

// Mutation returns the UsageAlertMutation object of the builder.
func (_u *UsageAlertUpdateOne) Mutation() *UsageAlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageAlertUpdate builder.
func (_u *UsageAlertUpdateOne) Where(ps ...predicate.UsageAlert) *UsageAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageAlertUpdateOne) Select(field string, fields ...string) *UsageAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageAlert entity.
func (_u *UsageAlertUpdateOne) Save(ctx context.Context) (*UsageAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageAlertUpdateOne) SaveX(ctx context.Context) *UsageAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageAlertUpdateOne) sqlSave(ctx context.Context) (_node *UsageAlert, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagealert.Table, usagealert.Columns, sqlgraph.NewFieldSpec(usagealert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagealert.FieldID)
		for _, f := range fields {
			if !usagealert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagealert.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usagealert.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(usagealert.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(usagealert.FieldSeries, field.TypeString, value)
	}
	if _u.mutation.SeriesCleared() {
		_spec.ClearField(usagealert.FieldSeries, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(usagealert.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(usagealert.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(usagealert.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentUsage(); ok {
		_spec.SetField(usagealert.FieldCurrentUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentUsage(); ok {
		_spec.AddField(usagealert.FieldCurrentUsage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LimitValue(); ok {
		_spec.SetField(usagealert.FieldLimitValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLimitValue(); ok {
		_spec.AddField(usagealert.FieldLimitValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(usagealert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(usagealert.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(usagealert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(usagealert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AcknowledgedBy(); ok {
		_spec.SetField(usagealert.FieldAcknowledgedBy, field.TypeString, value)
	}
	if _u.mutation.AcknowledgedByCleared() {
		_spec.ClearField(usagealert.FieldAcknowledgedBy, field.TypeString)
	}
	_node = &UsageAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagealert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
