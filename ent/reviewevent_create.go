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
	"github.com/walterairs/just-remember/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ReviewEventCreate) SetSequence(v int64) *ReviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewEventCreate) SetTimestamp(v time.Time) *ReviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableTimestamp(v *time.Time) *ReviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ReviewEventCreate) SetSessionID(v string) *ReviewEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewEventCreate) SetItemID(v int) *ReviewEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetStageFrom sets the "stage_from" field.
func (_c *ReviewEventCreate) SetStageFrom(v string) *ReviewEventCreate {
	_c.mutation.SetStageFrom(v)
	return _c
}

// SetStageTo sets the "stage_to" field.
func (_c *ReviewEventCreate) SetStageTo(v string) *ReviewEventCreate {
	_c.mutation.SetStageTo(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ReviewEventCreate) SetCorrect(v bool) *ReviewEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetMatchScore sets the "match_score" field.
func (_c *ReviewEventCreate) SetMatchScore(v int) *ReviewEventCreate {
	_c.mutation.SetMatchScore(v)
	return _c
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableMatchScore(v *int) *ReviewEventCreate {
	if v != nil {
		_c.SetMatchScore(*v)
	}
	return _c
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_c *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return _c.mutation
}

// Save creates the ReviewEvent in the database.
func (_c *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		v := reviewevent.DefaultMatchScore
		_c.mutation.SetMatchScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReviewEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageFrom(); !ok {
		return &ValidationError{Name: "stage_from", err: errors.New(`ent: missing required field "ReviewEvent.stage_from"`)}
	}
	if v, ok := _c.mutation.StageFrom(); ok {
		if err := reviewevent.StageFromValidator(v); err != nil {
			return &ValidationError{Name: "stage_from", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.stage_from": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageTo(); !ok {
		return &ValidationError{Name: "stage_to", err: errors.New(`ent: missing required field "ReviewEvent.stage_to"`)}
	}
	if v, ok := _c.mutation.StageTo(); ok {
		if err := reviewevent.StageToValidator(v); err != nil {
			return &ValidationError{Name: "stage_to", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.stage_to": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ReviewEvent.correct"`)}
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		return &ValidationError{Name: "match_score", err: errors.New(`ent: missing required field "ReviewEvent.match_score"`)}
	}
	return nil
}

func (_c *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeInt, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.StageFrom(); ok {
		_spec.SetField(reviewevent.FieldStageFrom, field.TypeString, value)
		_node.StageFrom = value
	}
	if value, ok := _c.mutation.StageTo(); ok {
		_spec.SetField(reviewevent.FieldStageTo, field.TypeString, value)
		_node.StageTo = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.MatchScore(); ok {
		_spec.SetField(reviewevent.FieldMatchScore, field.TypeInt, value)
		_node.MatchScore = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewEventCreate) OnConflict(opts ...sql.ConflictOption) *ReviewEventUpsertOne {
	_c.conflict = opts
	return &ReviewEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewEventCreate) OnConflictColumns(columns ...string) *ReviewEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewEventUpsertOne{
		create: _c,
	}
}

type (
	// ReviewEventUpsertOne is the builder for "upsert"-ing
	//  one ReviewEvent node.
	ReviewEventUpsertOne struct {
		create *ReviewEventCreate
	}

	// ReviewEventUpsert is the "OnConflict" setter.
	ReviewEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *ReviewEventUpsert) SetSessionID(v string) *ReviewEventUpsert {
	u.Set(reviewevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ReviewEventUpsert) UpdateSessionID() *ReviewEventUpsert {
	u.SetExcluded(reviewevent.FieldSessionID)
	return u
}

// SetItemID sets the "item_id" field.
func (u *ReviewEventUpsert) SetItemID(v int) *ReviewEventUpsert {
	u.Set(reviewevent.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ReviewEventUpsert) UpdateItemID() *ReviewEventUpsert {
	u.SetExcluded(reviewevent.FieldItemID)
	return u
}

// AddItemID adds v to the "item_id" field.
func (u *ReviewEventUpsert) AddItemID(v int) *ReviewEventUpsert {
	u.Add(reviewevent.FieldItemID, v)
	return u
}

// SetStageFrom sets the "stage_from" field.
func (u *ReviewEventUpsert) SetStageFrom(v string) *ReviewEventUpsert {
	u.Set(reviewevent.FieldStageFrom, v)
	return u
}

// UpdateStageFrom sets the "stage_from" field to the value that was provided on create.
func (u *ReviewEventUpsert) UpdateStageFrom() *ReviewEventUpsert {
	u.SetExcluded(reviewevent.FieldStageFrom)
	return u
}

// SetStageTo sets the "stage_to" field.
func (u *ReviewEventUpsert) SetStageTo(v string) *ReviewEventUpsert {
	u.Set(reviewevent.FieldStageTo, v)
	return u
}

// UpdateStageTo sets the "stage_to" field to the value that was provided on create.
func (u *ReviewEventUpsert) UpdateStageTo() *ReviewEventUpsert {
	u.SetExcluded(reviewevent.FieldStageTo)
	return u
}

// SetCorrect sets the "correct" field.
func (u *ReviewEventUpsert) SetCorrect(v bool) *ReviewEventUpsert {
	u.Set(reviewevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *ReviewEventUpsert) UpdateCorrect() *ReviewEventUpsert {
	u.SetExcluded(reviewevent.FieldCorrect)
	return u
}

// SetMatchScore sets the "match_score" field.
func (u *ReviewEventUpsert) SetMatchScore(v int) *ReviewEventUpsert {
	u.Set(reviewevent.FieldMatchScore, v)
	return u
}

// UpdateMatchScore sets the "match_score" field to the value that was provided on create.
func (u *ReviewEventUpsert) UpdateMatchScore() *ReviewEventUpsert {
	u.SetExcluded(reviewevent.FieldMatchScore)
	return u
}

// AddMatchScore adds v to the "match_score" field.
func (u *ReviewEventUpsert) AddMatchScore(v int) *ReviewEventUpsert {
	u.Add(reviewevent.FieldMatchScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReviewEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewEventUpsertOne) UpdateNewValues() *ReviewEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(reviewevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(reviewevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewEventUpsertOne) Ignore() *ReviewEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewEventUpsertOne) DoNothing() *ReviewEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewEventCreate.OnConflict
// documentation for more info.
func (u *ReviewEventUpsertOne) Update(set func(*ReviewEventUpsert)) *ReviewEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ReviewEventUpsertOne) SetSessionID(v string) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ReviewEventUpsertOne) UpdateSessionID() *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetItemID sets the "item_id" field.
func (u *ReviewEventUpsertOne) SetItemID(v int) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetItemID(v)
	})
}

// AddItemID adds v to the "item_id" field.
func (u *ReviewEventUpsertOne) AddItemID(v int) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.AddItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ReviewEventUpsertOne) UpdateItemID() *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateItemID()
	})
}

// SetStageFrom sets the "stage_from" field.
func (u *ReviewEventUpsertOne) SetStageFrom(v string) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetStageFrom(v)
	})
}

// UpdateStageFrom sets the "stage_from" field to the value that was provided on create.
func (u *ReviewEventUpsertOne) UpdateStageFrom() *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateStageFrom()
	})
}

// SetStageTo sets the "stage_to" field.
func (u *ReviewEventUpsertOne) SetStageTo(v string) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetStageTo(v)
	})
}

// UpdateStageTo sets the "stage_to" field to the value that was provided on create.
func (u *ReviewEventUpsertOne) UpdateStageTo() *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateStageTo()
	})
}

// SetCorrect sets the "correct" field.
func (u *ReviewEventUpsertOne) SetCorrect(v bool) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *ReviewEventUpsertOne) UpdateCorrect() *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetMatchScore sets the "match_score" field.
func (u *ReviewEventUpsertOne) SetMatchScore(v int) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetMatchScore(v)
	})
}

// AddMatchScore adds v to the "match_score" field.
func (u *ReviewEventUpsertOne) AddMatchScore(v int) *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.AddMatchScore(v)
	})
}

// UpdateMatchScore sets the "match_score" field to the value that was provided on create.
func (u *ReviewEventUpsertOne) UpdateMatchScore() *ReviewEventUpsertOne {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateMatchScore()
	})
}

// Exec executes the query.
func (u *ReviewEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewEvent entities in the database.
func (_c *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewEventUpsertBulk {
	_c.conflict = opts
	return &ReviewEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewEventCreateBulk) OnConflictColumns(columns ...string) *ReviewEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewEventUpsertBulk{
		create: _c,
	}
}

// ReviewEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewEvent nodes.
type ReviewEventUpsertBulk struct {
	create *ReviewEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewEventUpsertBulk) UpdateNewValues() *ReviewEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(reviewevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(reviewevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewEventUpsertBulk) Ignore() *ReviewEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewEventUpsertBulk) DoNothing() *ReviewEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewEventCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewEventUpsertBulk) Update(set func(*ReviewEventUpsert)) *ReviewEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ReviewEventUpsertBulk) SetSessionID(v string) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ReviewEventUpsertBulk) UpdateSessionID() *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetItemID sets the "item_id" field.
func (u *ReviewEventUpsertBulk) SetItemID(v int) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetItemID(v)
	})
}

// AddItemID adds v to the "item_id" field.
func (u *ReviewEventUpsertBulk) AddItemID(v int) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.AddItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ReviewEventUpsertBulk) UpdateItemID() *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateItemID()
	})
}

// SetStageFrom sets the "stage_from" field.
func (u *ReviewEventUpsertBulk) SetStageFrom(v string) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetStageFrom(v)
	})
}

// UpdateStageFrom sets the "stage_from" field to the value that was provided on create.
func (u *ReviewEventUpsertBulk) UpdateStageFrom() *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateStageFrom()
	})
}

// SetStageTo sets the "stage_to" field.
func (u *ReviewEventUpsertBulk) SetStageTo(v string) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetStageTo(v)
	})
}

// UpdateStageTo sets the "stage_to" field to the value that was provided on create.
func (u *ReviewEventUpsertBulk) UpdateStageTo() *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateStageTo()
	})
}

// SetCorrect sets the "correct" field.
func (u *ReviewEventUpsertBulk) SetCorrect(v bool) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *ReviewEventUpsertBulk) UpdateCorrect() *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetMatchScore sets the "match_score" field.
func (u *ReviewEventUpsertBulk) SetMatchScore(v int) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.SetMatchScore(v)
	})
}

// AddMatchScore adds v to the "match_score" field.
func (u *ReviewEventUpsertBulk) AddMatchScore(v int) *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.AddMatchScore(v)
	})
}

// UpdateMatchScore sets the "match_score" field to the value that was provided on create.
func (u *ReviewEventUpsertBulk) UpdateMatchScore() *ReviewEventUpsertBulk {
	return u.Update(func(s *ReviewEventUpsert) {
		s.UpdateMatchScore()
	})
}

// Exec executes the query.
func (u *ReviewEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
