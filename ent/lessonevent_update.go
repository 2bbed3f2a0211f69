// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walterairs/just-remember/ent/lessonevent"
	"github.com/walterairs/just-remember/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStarted sets the "started" field.
func (_u *LessonEventUpdate) SetStarted(v int) *LessonEventUpdate {
	_u.mutation.ResetStarted()
	_u.mutation.SetStarted(v)
	return _u
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableStarted(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetStarted(*v)
	}
	return _u
}

// AddStarted adds value to the "started" field.
func (_u *LessonEventUpdate) AddStarted(v int) *LessonEventUpdate {
	_u.mutation.AddStarted(v)
	return _u
}

// SetRequestedLimit sets the "requested_limit" field.
func (_u *LessonEventUpdate) SetRequestedLimit(v int) *LessonEventUpdate {
	_u.mutation.ResetRequestedLimit()
	_u.mutation.SetRequestedLimit(v)
	return _u
}

// SetNillableRequestedLimit sets the "requested_limit" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableRequestedLimit(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetRequestedLimit(*v)
	}
	return _u
}

// AddRequestedLimit adds value to the "requested_limit" field.
func (_u *LessonEventUpdate) AddRequestedLimit(v int) *LessonEventUpdate {
	_u.mutation.AddRequestedLimit(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *LessonEventUpdate) SetTrigger(v string) *LessonEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableTrigger(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.Started(); ok {
		if err := lessonevent.StartedValidator(v); err != nil {
			return &ValidationError{Name: "started", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.started": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedLimit(); ok {
		if err := lessonevent.RequestedLimitValidator(v); err != nil {
			return &ValidationError{Name: "requested_limit", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.requested_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := lessonevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Started(); ok {
		_spec.SetField(lessonevent.FieldStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStarted(); ok {
		_spec.AddField(lessonevent.FieldStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestedLimit(); ok {
		_spec.SetField(lessonevent.FieldRequestedLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedLimit(); ok {
		_spec.AddField(lessonevent.FieldRequestedLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(lessonevent.FieldTrigger, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetStarted sets the "started" field.
func (_u *LessonEventUpdateOne) SetStarted(v int) *LessonEventUpdateOne {
	_u.mutation.ResetStarted()
	_u.mutation.SetStarted(v)
	return _u
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableStarted(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetStarted(*v)
	}
	return _u
}

// AddStarted adds value to the "started" field.
func (_u *LessonEventUpdateOne) AddStarted(v int) *LessonEventUpdateOne {
	_u.mutation.AddStarted(v)
	return _u
}

// SetRequestedLimit sets the "requested_limit" field.
func (_u *LessonEventUpdateOne) SetRequestedLimit(v int) *LessonEventUpdateOne {
	_u.mutation.ResetRequestedLimit()
	_u.mutation.SetRequestedLimit(v)
	return _u
}

// SetNillableRequestedLimit sets the "requested_limit" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableRequestedLimit(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetRequestedLimit(*v)
	}
	return _u
}

// AddRequestedLimit adds value to the "requested_limit" field.
func (_u *LessonEventUpdateOne) AddRequestedLimit(v int) *LessonEventUpdateOne {
	_u.mutation.AddRequestedLimit(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *LessonEventUpdateOne) SetTrigger(v string) *LessonEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableTrigger(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.Started(); ok {
		if err := lessonevent.StartedValidator(v); err != nil {
			return &ValidationError{Name: "started", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.started": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedLimit(); ok {
		if err := lessonevent.RequestedLimitValidator(v); err != nil {
			return &ValidationError{Name: "requested_limit", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.requested_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := lessonevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
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
	if value, ok := _u.mutation.Started(); ok {
		_spec.SetField(lessonevent.FieldStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStarted(); ok {
		_spec.AddField(lessonevent.FieldStarted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestedLimit(); ok {
		_spec.SetField(lessonevent.FieldRequestedLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedLimit(); ok {
		_spec.AddField(lessonevent.FieldRequestedLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(lessonevent.FieldTrigger, field.TypeString, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
