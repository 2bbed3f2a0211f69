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
	"github.com/walterairs/just-remember/ent/lessonevent"
)

// LessonEventCreate is the builder for creating a LessonEvent entity.
type LessonEventCreate struct {
	config
	mutation *LessonEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *LessonEventCreate) SetSequence(v int64) *LessonEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LessonEventCreate) SetTimestamp(v time.Time) *LessonEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableTimestamp(v *time.Time) *LessonEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStarted sets the "started" field.
func (_c *LessonEventCreate) SetStarted(v int) *LessonEventCreate {
	_c.mutation.SetStarted(v)
	return _c
}

// SetRequestedLimit sets the "requested_limit" field.
func (_c *LessonEventCreate) SetRequestedLimit(v int) *LessonEventCreate {
	_c.mutation.SetRequestedLimit(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *LessonEventCreate) SetTrigger(v string) *LessonEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// Mutation returns the LessonEventMutation object of the builder.
func (_c *LessonEventCreate) Mutation() *LessonEventMutation {
	return _c.mutation
}

// Save creates the LessonEvent in the database.
func (_c *LessonEventCreate) Save(ctx context.Context) (*LessonEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonEventCreate) SaveX(ctx context.Context) *LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lessonevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Started(); !ok {
		return &ValidationError{Name: "started", err: errors.New(`ent: missing required field "LessonEvent.started"`)}
	}
	if v, ok := _c.mutation.Started(); ok {
		if err := lessonevent.StartedValidator(v); err != nil {
			return &ValidationError{Name: "started", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.started": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedLimit(); !ok {
		return &ValidationError{Name: "requested_limit", err: errors.New(`ent: missing required field "LessonEvent.requested_limit"`)}
	}
	if v, ok := _c.mutation.RequestedLimit(); ok {
		if err := lessonevent.RequestedLimitValidator(v); err != nil {
			return &ValidationError{Name: "requested_limit", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.requested_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "LessonEvent.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := lessonevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonEventCreate) sqlSave(ctx context.Context) (*LessonEvent, error) {
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

func (_c *LessonEventCreate) createSpec() (*LessonEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonevent.Table, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lessonevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lessonevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Started(); ok {
		_spec.SetField(lessonevent.FieldStarted, field.TypeInt, value)
		_node.Started = value
	}
	if value, ok := _c.mutation.RequestedLimit(); ok {
		_spec.SetField(lessonevent.FieldRequestedLimit, field.TypeInt, value)
		_node.RequestedLimit = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(lessonevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonEventCreate) OnConflict(opts ...sql.ConflictOption) *LessonEventUpsertOne {
	_c.conflict = opts
	return &LessonEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonEventCreate) OnConflictColumns(columns ...string) *LessonEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonEventUpsertOne{
		create: _c,
	}
}

type (
	// LessonEventUpsertOne is the builder for "upsert"-ing
	//  one LessonEvent node.
	LessonEventUpsertOne struct {
		create *LessonEventCreate
	}

	// LessonEventUpsert is the "OnConflict" setter.
	LessonEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetStarted sets the "started" field.
func (u *LessonEventUpsert) SetStarted(v int) *LessonEventUpsert {
	u.Set(lessonevent.FieldStarted, v)
	return u
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateStarted() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldStarted)
	return u
}

// AddStarted adds v to the "started" field.
func (u *LessonEventUpsert) AddStarted(v int) *LessonEventUpsert {
	u.Add(lessonevent.FieldStarted, v)
	return u
}

// SetRequestedLimit sets the "requested_limit" field.
func (u *LessonEventUpsert) SetRequestedLimit(v int) *LessonEventUpsert {
	u.Set(lessonevent.FieldRequestedLimit, v)
	return u
}

// UpdateRequestedLimit sets the "requested_limit" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateRequestedLimit() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldRequestedLimit)
	return u
}

// AddRequestedLimit adds v to the "requested_limit" field.
func (u *LessonEventUpsert) AddRequestedLimit(v int) *LessonEventUpsert {
	u.Add(lessonevent.FieldRequestedLimit, v)
	return u
}

// SetTrigger sets the "trigger" field.
func (u *LessonEventUpsert) SetTrigger(v string) *LessonEventUpsert {
	u.Set(lessonevent.FieldTrigger, v)
	return u
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateTrigger() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldTrigger)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonEventUpsertOne) UpdateNewValues() *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(lessonevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(lessonevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonEventUpsertOne) Ignore() *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonEventUpsertOne) DoNothing() *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonEventCreate.OnConflict
// documentation for more info.
func (u *LessonEventUpsertOne) Update(set func(*LessonEventUpsert)) *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStarted sets the "started" field.
func (u *LessonEventUpsertOne) SetStarted(v int) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetStarted(v)
	})
}

// AddStarted adds v to the "started" field.
func (u *LessonEventUpsertOne) AddStarted(v int) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.AddStarted(v)
	})
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateStarted() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateStarted()
	})
}

// SetRequestedLimit sets the "requested_limit" field.
func (u *LessonEventUpsertOne) SetRequestedLimit(v int) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetRequestedLimit(v)
	})
}

// AddRequestedLimit adds v to the "requested_limit" field.
func (u *LessonEventUpsertOne) AddRequestedLimit(v int) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.AddRequestedLimit(v)
	})
}

// UpdateRequestedLimit sets the "requested_limit" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateRequestedLimit() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateRequestedLimit()
	})
}

// SetTrigger sets the "trigger" field.
func (u *LessonEventUpsertOne) SetTrigger(v string) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateTrigger() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateTrigger()
	})
}

// Exec executes the query.
func (u *LessonEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonEventCreateBulk is the builder for creating many LessonEvent entities in bulk.
type LessonEventCreateBulk struct {
	config
	err      error
	builders []*LessonEventCreate
	conflict []sql.ConflictOption
}

// Save creates the LessonEvent entities in the database.
func (_c *LessonEventCreateBulk) Save(ctx context.Context) ([]*LessonEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonEventMutation)
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
func (_c *LessonEventCreateBulk) SaveX(ctx context.Context) []*LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonEventUpsertBulk {
	_c.conflict = opts
	return &LessonEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonEventCreateBulk) OnConflictColumns(columns ...string) *LessonEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonEventUpsertBulk{
		create: _c,
	}
}

// LessonEventUpsertBulk is the builder for "upsert"-ing
// a bulk of LessonEvent nodes.
type LessonEventUpsertBulk struct {
	create *LessonEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonEventUpsertBulk) UpdateNewValues() *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(lessonevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(lessonevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonEventUpsertBulk) Ignore() *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonEventUpsertBulk) DoNothing() *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonEventCreateBulk.OnConflict
// documentation for more info.
func (u *LessonEventUpsertBulk) Update(set func(*LessonEventUpsert)) *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStarted sets the "started" field.
func (u *LessonEventUpsertBulk) SetStarted(v int) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetStarted(v)
	})
}

// AddStarted adds v to the "started" field.
func (u *LessonEventUpsertBulk) AddStarted(v int) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.AddStarted(v)
	})
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateStarted() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateStarted()
	})
}

// SetRequestedLimit sets the "requested_limit" field.
func (u *LessonEventUpsertBulk) SetRequestedLimit(v int) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetRequestedLimit(v)
	})
}

// AddRequestedLimit adds v to the "requested_limit" field.
func (u *LessonEventUpsertBulk) AddRequestedLimit(v int) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.AddRequestedLimit(v)
	})
}

// UpdateRequestedLimit sets the "requested_limit" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateRequestedLimit() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateRequestedLimit()
	})
}

// SetTrigger sets the "trigger" field.
func (u *LessonEventUpsertBulk) SetTrigger(v string) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateTrigger() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateTrigger()
	})
}

// Exec executes the query.
func (u *LessonEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
