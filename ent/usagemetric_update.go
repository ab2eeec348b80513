// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/MiniSankaz/fleetd/ent/predicate"
	"github.com/MiniSankaz/fleetd/ent/usagemetric"
)

// UsageMetricUpdate is the builder for updating UsageMetric entities.
type UsageMetricUpdate struct {
	config
	hooks    []Hook
	mutation *UsageMetricMutation
}

// Where appends a list predicates to the UsageMetricUpdate builder.
func (_u *UsageMetricUpdate) Where(ps ...predicate.UsageMetric) *UsageMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *UsageMetricUpdate) SetAgentID(v string) *UsageMetricUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableAgentID(v *string) *UsageMetricUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *UsageMetricUpdate) SetAgentType(v string) *UsageMetricUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableAgentType(v *string) *UsageMetricUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *UsageMetricUpdate) SetModel(v string) *UsageMetricUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableModel(v *string) *UsageMetricUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *UsageMetricUpdate) SetInputTokens(v int) *UsageMetricUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableInputTokens(v *int) *UsageMetricUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *UsageMetricUpdate) AddInputTokens(v int) *UsageMetricUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *UsageMetricUpdate) SetOutputTokens(v int) *UsageMetricUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableOutputTokens(v *int) *UsageMetricUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *UsageMetricUpdate) AddOutputTokens(v int) *UsageMetricUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *UsageMetricUpdate) SetDurationMs(v int64) *UsageMetricUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableDurationMs(v *int64) *UsageMetricUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *UsageMetricUpdate) AddDurationMs(v int64) *UsageMetricUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *UsageMetricUpdate) SetCost(v float64) *UsageMetricUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableCost(v *float64) *UsageMetricUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *UsageMetricUpdate) AddCost(v float64) *UsageMetricUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageMetricUpdate) SetUserID(v string) *UsageMetricUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableUserID(v *string) *UsageMetricUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *UsageMetricUpdate) SetSessionID(v string) *UsageMetricUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableSessionID(v *string) *UsageMetricUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *UsageMetricUpdate) ClearSessionID() *UsageMetricUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *UsageMetricUpdate) SetTaskID(v string) *UsageMetricUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *UsageMetricUpdate) SetNillableTaskID(v *string) *UsageMetricUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *UsageMetricUpdate) ClearTaskID() *UsageMetricUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UsageMetricUpdate) SetMetadata(v map[string]interface{}) *UsageMetricUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UsageMetricUpdate) ClearMetadata() *UsageMetricUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the UsageMetricMutation object of the builder.
func (_u *UsageMetricUpdate) Mutation() *UsageMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagemetric.Table, usagemetric.Columns, sqlgraph.NewFieldSpec(usagemetric.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(usagemetric.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(usagemetric.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(usagemetric.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(usagemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(usagemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(usagemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(usagemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(usagemetric.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(usagemetric.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(usagemetric.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(usagemetric.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usagemetric.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(usagemetric.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(usagemetric.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(usagemetric.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(usagemetric.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(usagemetric.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(usagemetric.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageMetricUpdateOne is the builder for updating a single UsageMetric entity.
type UsageMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageMetricMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *UsageMetricUpdateOne) SetAgentID(v string) *UsageMetricUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableAgentID(v *string) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *UsageMetricUpdateOne) SetAgentType(v string) *UsageMetricUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableAgentType(v *string) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *UsageMetricUpdateOne) SetModel(v string) *UsageMetricUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableModel(v *string) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *UsageMetricUpdateOne) SetInputTokens(v int) *UsageMetricUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableInputTokens(v *int) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *UsageMetricUpdateOne) AddInputTokens(v int) *UsageMetricUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *UsageMetricUpdateOne) SetOutputTokens(v int) *UsageMetricUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableOutputTokens(v *int) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *UsageMetricUpdateOne) AddOutputTokens(v int) *UsageMetricUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *UsageMetricUpdateOne) SetDurationMs(v int64) *UsageMetricUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableDurationMs(v *int64) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *UsageMetricUpdateOne) AddDurationMs(v int64) *UsageMetricUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *UsageMetricUpdateOne) SetCost(v float64) *UsageMetricUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableCost(v *float64) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *UsageMetricUpdateOne) AddCost(v float64) *UsageMetricUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageMetricUpdateOne) SetUserID(v string) *UsageMetricUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableUserID(v *string) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *UsageMetricUpdateOne) SetSessionID(v string) *UsageMetricUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableSessionID(v *string) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *UsageMetricUpdateOne) ClearSessionID() *UsageMetricUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *UsageMetricUpdateOne) SetTaskID(v string) *UsageMetricUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *UsageMetricUpdateOne) SetNillableTaskID(v *string) *UsageMetricUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *UsageMetricUpdateOne) ClearTaskID() *UsageMetricUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UsageMetricUpdateOne) SetMetadata(v map[string]interface{}) *UsageMetricUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UsageMetricUpdateOne) ClearMetadata() *UsageMetricUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the UsageMetricMutation object of the builder.
func (_u *UsageMetricUpdateOne) Mutation() *UsageMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageMetricUpdate builder.
func (_u *UsageMetricUpdateOne) Where(ps ...predicate.UsageMetric) *UsageMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageMetricUpdateOne) Select(field string, fields ...string) *UsageMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageMetric entity.
func (_u *UsageMetricUpdateOne) Save(ctx context.Context) (*UsageMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageMetricUpdateOne) SaveX(ctx context.Context) *UsageMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageMetricUpdateOne) sqlSave(ctx context.Context) (_node *UsageMetric, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagemetric.Table, usagemetric.Columns, sqlgraph.NewFieldSpec(usagemetric.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagemetric.FieldID)
		for _, f := range fields {
			if !usagemetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagemetric.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(usagemetric.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(usagemetric.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(usagemetric.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(usagemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(usagemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(usagemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(usagemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(usagemetric.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(usagemetric.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(usagemetric.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(usagemetric.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usagemetric.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(usagemetric.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(usagemetric.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(usagemetric.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(usagemetric.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(usagemetric.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(usagemetric.FieldMetadata, field.TypeJSON)
	}
	_node = &UsageMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
