// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walterairs/just-remember/ent/predicate"
	"github.com/walterairs/just-remember/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdate) SetItemID(v int) *ReviewEventUpdate {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableItemID(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *ReviewEventUpdate) AddItemID(v int) *ReviewEventUpdate {
	_u.mutation.AddItemID(v)
	return _u
}

// SetStageFrom sets the "stage_from" field.
func (_u *ReviewEventUpdate) SetStageFrom(v string) *ReviewEventUpdate {
	_u.mutation.SetStageFrom(v)
	return _u
}

// SetNillableStageFrom sets the "stage_from" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStageFrom(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStageFrom(*v)
	}
	return _u
}

// SetStageTo sets the "stage_to" field.
func (_u *ReviewEventUpdate) SetStageTo(v string) *ReviewEventUpdate {
	_u.mutation.SetStageTo(v)
	return _u
}

// SetNillableStageTo sets the "stage_to" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStageTo(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStageTo(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdate) SetCorrect(v bool) *ReviewEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCorrect(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *ReviewEventUpdate) SetMatchScore(v int) *ReviewEventUpdate {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableMatchScore(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *ReviewEventUpdate) AddMatchScore(v int) *ReviewEventUpdate {
	_u.mutation.AddMatchScore(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageFrom(); ok {
		if err := reviewevent.StageFromValidator(v); err != nil {
			return &ValidationError{Name: "stage_from", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.stage_from": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageTo(); ok {
		if err := reviewevent.StageToValidator(v); err != nil {
			return &ValidationError{Name: "stage_to", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.stage_to": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(reviewevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageFrom(); ok {
		_spec.SetField(reviewevent.FieldStageFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageTo(); ok {
		_spec.SetField(reviewevent.FieldStageTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(reviewevent.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(reviewevent.FieldMatchScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdateOne) SetItemID(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableItemID(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *ReviewEventUpdateOne) AddItemID(v int) *ReviewEventUpdateOne {
	_u.mutation.AddItemID(v)
	return _u
}

// SetStageFrom sets the "stage_from" field.
func (_u *ReviewEventUpdateOne) SetStageFrom(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStageFrom(v)
	return _u
}

// SetNillableStageFrom sets the "stage_from" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStageFrom(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStageFrom(*v)
	}
	return _u
}

// SetStageTo sets the "stage_to" field.
func (_u *ReviewEventUpdateOne) SetStageTo(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStageTo(v)
	return _u
}

// SetNillableStageTo sets the "stage_to" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStageTo(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStageTo(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdateOne) SetCorrect(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCorrect(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *ReviewEventUpdateOne) SetMatchScore(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableMatchScore(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *ReviewEventUpdateOne) AddMatchScore(v int) *ReviewEventUpdateOne {
	_u.mutation.AddMatchScore(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageFrom(); ok {
		if err := reviewevent.StageFromValidator(v); err != nil {
			return &ValidationError{Name: "stage_from", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.stage_from": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageTo(); ok {
		if err := reviewevent.StageToValidator(v); err != nil {
			return &ValidationError{Name: "stage_to", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.stage_to": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(reviewevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageFrom(); ok {
		_spec.SetField(reviewevent.FieldStageFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageTo(); ok {
		_spec.SetField(reviewevent.FieldStageTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(reviewevent.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(reviewevent.FieldMatchScore, field.TypeInt, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
