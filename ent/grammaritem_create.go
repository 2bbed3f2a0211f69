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
	"github.com/walterairs/just-remember/ent/grammaritem"
)

// GrammarItemCreate is the builder for creating a GrammarItem entity.
type GrammarItemCreate struct {
	config
	mutation *GrammarItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTerm sets the "term" field.
func (_c *GrammarItemCreate) SetTerm(v string) *GrammarItemCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetReading sets the "reading" field.
func (_c *GrammarItemCreate) SetReading(v string) *GrammarItemCreate {
	_c.mutation.SetReading(v)
	return _c
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableReading(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetReading(*v)
	}
	return _c
}

// SetUsage sets the "usage" field.
func (_c *GrammarItemCreate) SetUsage(v string) *GrammarItemCreate {
	_c.mutation.SetUsage(v)
	return _c
}

// SetNillableUsage sets the "usage" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableUsage(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetUsage(*v)
	}
	return _c
}

// SetMeaning sets the "meaning" field.
func (_c *GrammarItemCreate) SetMeaning(v string) *GrammarItemCreate {
	_c.mutation.SetMeaning(v)
	return _c
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableMeaning(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetMeaning(*v)
	}
	return _c
}

// SetExample1Ja sets the "example1_ja" field.
func (_c *GrammarItemCreate) SetExample1Ja(v string) *GrammarItemCreate {
	_c.mutation.SetExample1Ja(v)
	return _c
}

// SetNillableExample1Ja sets the "example1_ja" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableExample1Ja(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetExample1Ja(*v)
	}
	return _c
}

// SetExample1En sets the "example1_en" field.
func (_c *GrammarItemCreate) SetExample1En(v string) *GrammarItemCreate {
	_c.mutation.SetExample1En(v)
	return _c
}

// SetNillableExample1En sets the "example1_en" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableExample1En(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetExample1En(*v)
	}
	return _c
}

// SetExample2Ja sets the "example2_ja" field.
func (_c *GrammarItemCreate) SetExample2Ja(v string) *GrammarItemCreate {
	_c.mutation.SetExample2Ja(v)
	return _c
}

// SetNillableExample2Ja sets the "example2_ja" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableExample2Ja(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetExample2Ja(*v)
	}
	return _c
}

// SetExample2En sets the "example2_en" field.
func (_c *GrammarItemCreate) SetExample2En(v string) *GrammarItemCreate {
	_c.mutation.SetExample2En(v)
	return _c
}

// SetNillableExample2En sets the "example2_en" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableExample2En(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetExample2En(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *GrammarItemCreate) SetNote(v string) *GrammarItemCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableNote(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *GrammarItemCreate) SetStage(v string) *GrammarItemCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableStage(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetLessonStatus sets the "lesson_status" field.
func (_c *GrammarItemCreate) SetLessonStatus(v string) *GrammarItemCreate {
	_c.mutation.SetLessonStatus(v)
	return _c
}

// SetNillableLessonStatus sets the "lesson_status" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableLessonStatus(v *string) *GrammarItemCreate {
	if v != nil {
		_c.SetLessonStatus(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *GrammarItemCreate) SetNextReviewAt(v time.Time) *GrammarItemCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableNextReviewAt(v *time.Time) *GrammarItemCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *GrammarItemCreate) SetCorrectCount(v int) *GrammarItemCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableCorrectCount(v *int) *GrammarItemCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *GrammarItemCreate) SetIncorrectCount(v int) *GrammarItemCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableIncorrectCount(v *int) *GrammarItemCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *GrammarItemCreate) SetLastReviewedAt(v time.Time) *GrammarItemCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableLastReviewedAt(v *time.Time) *GrammarItemCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GrammarItemCreate) SetCreatedAt(v time.Time) *GrammarItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GrammarItemCreate) SetNillableCreatedAt(v *time.Time) *GrammarItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the GrammarItemMutation object of the builder.
func (_c *GrammarItemCreate) Mutation() *GrammarItemMutation {
	return _c.mutation
}

// Save creates the GrammarItem in the database.
func (_c *GrammarItemCreate) Save(ctx context.Context) (*GrammarItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GrammarItemCreate) SaveX(ctx context.Context) *GrammarItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GrammarItemCreate) defaults() {
	if _, ok := _c.mutation.Reading(); !ok {
		v := grammaritem.DefaultReading
		_c.mutation.SetReading(v)
	}
	if _, ok := _c.mutation.Usage(); !ok {
		v := grammaritem.DefaultUsage
		_c.mutation.SetUsage(v)
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		v := grammaritem.DefaultMeaning
		_c.mutation.SetMeaning(v)
	}
	if _, ok := _c.mutation.Example1Ja(); !ok {
		v := grammaritem.DefaultExample1Ja
		_c.mutation.SetExample1Ja(v)
	}
	if _, ok := _c.mutation.Example1En(); !ok {
		v := grammaritem.DefaultExample1En
		_c.mutation.SetExample1En(v)
	}
	if _, ok := _c.mutation.Example2Ja(); !ok {
		v := grammaritem.DefaultExample2Ja
		_c.mutation.SetExample2Ja(v)
	}
	if _, ok := _c.mutation.Example2En(); !ok {
		v := grammaritem.DefaultExample2En
		_c.mutation.SetExample2En(v)
	}
	if _, ok := _c.mutation.Note(); !ok {
		v := grammaritem.DefaultNote
		_c.mutation.SetNote(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := grammaritem.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.LessonStatus(); !ok {
		v := grammaritem.DefaultLessonStatus
		_c.mutation.SetLessonStatus(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := grammaritem.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := grammaritem.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := grammaritem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GrammarItemCreate) check() error {
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "GrammarItem.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := grammaritem.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reading(); !ok {
		return &ValidationError{Name: "reading", err: errors.New(`ent: missing required field "GrammarItem.reading"`)}
	}
	if _, ok := _c.mutation.Usage(); !ok {
		return &ValidationError{Name: "usage", err: errors.New(`ent: missing required field "GrammarItem.usage"`)}
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		return &ValidationError{Name: "meaning", err: errors.New(`ent: missing required field "GrammarItem.meaning"`)}
	}
	if _, ok := _c.mutation.Example1Ja(); !ok {
		return &ValidationError{Name: "example1_ja", err: errors.New(`ent: missing required field "GrammarItem.example1_ja"`)}
	}
	if _, ok := _c.mutation.Example1En(); !ok {
		return &ValidationError{Name: "example1_en", err: errors.New(`ent: missing required field "GrammarItem.example1_en"`)}
	}
	if _, ok := _c.mutation.Example2Ja(); !ok {
		return &ValidationError{Name: "example2_ja", err: errors.New(`ent: missing required field "GrammarItem.example2_ja"`)}
	}
	if _, ok := _c.mutation.Example2En(); !ok {
		return &ValidationError{Name: "example2_en", err: errors.New(`ent: missing required field "GrammarItem.example2_en"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "GrammarItem.note"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "GrammarItem.stage"`)}
	}
	if _, ok := _c.mutation.LessonStatus(); !ok {
		return &ValidationError{Name: "lesson_status", err: errors.New(`ent: missing required field "GrammarItem.lesson_status"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "GrammarItem.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := grammaritem.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "GrammarItem.incorrect_count"`)}
	}
	if v, ok := _c.mutation.IncorrectCount(); ok {
		if err := grammaritem.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.incorrect_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GrammarItem.created_at"`)}
	}
	return nil
}

func (_c *GrammarItemCreate) sqlSave(ctx context.Context) (*GrammarItem, error) {
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

func (_c *GrammarItemCreate) createSpec() (*GrammarItem, *sqlgraph.CreateSpec) {
	var (
		_node = &GrammarItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(grammaritem.Table, sqlgraph.NewFieldSpec(grammaritem.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(grammaritem.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Reading(); ok {
		_spec.SetField(grammaritem.FieldReading, field.TypeString, value)
		_node.Reading = value
	}
	if value, ok := _c.mutation.Usage(); ok {
		_spec.SetField(grammaritem.FieldUsage, field.TypeString, value)
		_node.Usage = value
	}
	if value, ok := _c.mutation.Meaning(); ok {
		_spec.SetField(grammaritem.FieldMeaning, field.TypeString, value)
		_node.Meaning = value
	}
	if value, ok := _c.mutation.Example1Ja(); ok {
		_spec.SetField(grammaritem.FieldExample1Ja, field.TypeString, value)
		_node.Example1Ja = value
	}
	if value, ok := _c.mutation.Example1En(); ok {
		_spec.SetField(grammaritem.FieldExample1En, field.TypeString, value)
		_node.Example1En = value
	}
	if value, ok := _c.mutation.Example2Ja(); ok {
		_spec.SetField(grammaritem.FieldExample2Ja, field.TypeString, value)
		_node.Example2Ja = value
	}
	if value, ok := _c.mutation.Example2En(); ok {
		_spec.SetField(grammaritem.FieldExample2En, field.TypeString, value)
		_node.Example2En = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(grammaritem.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(grammaritem.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.LessonStatus(); ok {
		_spec.SetField(grammaritem.FieldLessonStatus, field.TypeString, value)
		_node.LessonStatus = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(grammaritem.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(grammaritem.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(grammaritem.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(grammaritem.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(grammaritem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GrammarItem.Create().
//		SetTerm(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GrammarItemUpsert) {
//			SetTerm(v+v).
//		}).
//		Exec(ctx)
func (_c *GrammarItemCreate) OnConflict(opts ...sql.ConflictOption) *GrammarItemUpsertOne {
	_c.conflict = opts
	return &GrammarItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GrammarItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GrammarItemCreate) OnConflictColumns(columns ...string) *GrammarItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GrammarItemUpsertOne{
		create: _c,
	}
}

type (
	// GrammarItemUpsertOne is the builder for "upsert"-ing
	//  one GrammarItem node.
	GrammarItemUpsertOne struct {
		create *GrammarItemCreate
	}

	// GrammarItemUpsert is the "OnConflict" setter.
	GrammarItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetTerm sets the "term" field.
func (u *GrammarItemUpsert) SetTerm(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldTerm, v)
	return u
}

// UpdateTerm sets the "term" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateTerm() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldTerm)
	return u
}

// SetReading sets the "reading" field.
func (u *GrammarItemUpsert) SetReading(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldReading, v)
	return u
}

// UpdateReading sets the "reading" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateReading() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldReading)
	return u
}

// SetUsage sets the "usage" field.
func (u *GrammarItemUpsert) SetUsage(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldUsage, v)
	return u
}

// UpdateUsage sets the "usage" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateUsage() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldUsage)
	return u
}

// SetMeaning sets the "meaning" field.
func (u *GrammarItemUpsert) SetMeaning(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldMeaning, v)
	return u
}

// UpdateMeaning sets the "meaning" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateMeaning() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldMeaning)
	return u
}

// SetExample1Ja sets the "example1_ja" field.
func (u *GrammarItemUpsert) SetExample1Ja(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldExample1Ja, v)
	return u
}

// UpdateExample1Ja sets the "example1_ja" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateExample1Ja() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldExample1Ja)
	return u
}

// SetExample1En sets the "example1_en" field.
func (u *GrammarItemUpsert) SetExample1En(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldExample1En, v)
	return u
}

// UpdateExample1En sets the "example1_en" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateExample1En() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldExample1En)
	return u
}

// SetExample2Ja sets the "example2_ja" field.
func (u *GrammarItemUpsert) SetExample2Ja(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldExample2Ja, v)
	return u
}

// UpdateExample2Ja sets the "example2_ja" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateExample2Ja() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldExample2Ja)
	return u
}

// SetExample2En sets the "example2_en" field.
func (u *GrammarItemUpsert) SetExample2En(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldExample2En, v)
	return u
}

// UpdateExample2En sets the "example2_en" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateExample2En() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldExample2En)
	return u
}

// SetNote sets the "note" field.
func (u *GrammarItemUpsert) SetNote(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldNote, v)
	return u
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateNote() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldNote)
	return u
}

// SetStage sets the "stage" field.
func (u *GrammarItemUpsert) SetStage(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateStage() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldStage)
	return u
}

// SetLessonStatus sets the "lesson_status" field.
func (u *GrammarItemUpsert) SetLessonStatus(v string) *GrammarItemUpsert {
	u.Set(grammaritem.FieldLessonStatus, v)
	return u
}

// UpdateLessonStatus sets the "lesson_status" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateLessonStatus() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldLessonStatus)
	return u
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *GrammarItemUpsert) SetNextReviewAt(v time.Time) *GrammarItemUpsert {
	u.Set(grammaritem.FieldNextReviewAt, v)
	return u
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateNextReviewAt() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldNextReviewAt)
	return u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (u *GrammarItemUpsert) ClearNextReviewAt() *GrammarItemUpsert {
	u.SetNull(grammaritem.FieldNextReviewAt)
	return u
}

// SetCorrectCount sets the "correct_count" field.
func (u *GrammarItemUpsert) SetCorrectCount(v int) *GrammarItemUpsert {
	u.Set(grammaritem.FieldCorrectCount, v)
	return u
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateCorrectCount() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldCorrectCount)
	return u
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *GrammarItemUpsert) AddCorrectCount(v int) *GrammarItemUpsert {
	u.Add(grammaritem.FieldCorrectCount, v)
	return u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (u *GrammarItemUpsert) SetIncorrectCount(v int) *GrammarItemUpsert {
	u.Set(grammaritem.FieldIncorrectCount, v)
	return u
}

// UpdateIncorrectCount sets the "incorrect_count" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateIncorrectCount() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldIncorrectCount)
	return u
}

// AddIncorrectCount adds v to the "incorrect_count" field.
func (u *GrammarItemUpsert) AddIncorrectCount(v int) *GrammarItemUpsert {
	u.Add(grammaritem.FieldIncorrectCount, v)
	return u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *GrammarItemUpsert) SetLastReviewedAt(v time.Time) *GrammarItemUpsert {
	u.Set(grammaritem.FieldLastReviewedAt, v)
	return u
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *GrammarItemUpsert) UpdateLastReviewedAt() *GrammarItemUpsert {
	u.SetExcluded(grammaritem.FieldLastReviewedAt)
	return u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *GrammarItemUpsert) ClearLastReviewedAt() *GrammarItemUpsert {
	u.SetNull(grammaritem.FieldLastReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GrammarItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GrammarItemUpsertOne) UpdateNewValues() *GrammarItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(grammaritem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GrammarItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GrammarItemUpsertOne) Ignore() *GrammarItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GrammarItemUpsertOne) DoNothing() *GrammarItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GrammarItemCreate.OnConflict
// documentation for more info.
func (u *GrammarItemUpsertOne) Update(set func(*GrammarItemUpsert)) *GrammarItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GrammarItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetTerm sets the "term" field.
func (u *GrammarItemUpsertOne) SetTerm(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetTerm(v)
	})
}

// UpdateTerm sets the "term" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateTerm() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateTerm()
	})
}

// SetReading sets the "reading" field.
func (u *GrammarItemUpsertOne) SetReading(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetReading(v)
	})
}

// UpdateReading sets the "reading" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateReading() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateReading()
	})
}

// SetUsage sets the "usage" field.
func (u *GrammarItemUpsertOne) SetUsage(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetUsage(v)
	})
}

// UpdateUsage sets the "usage" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateUsage() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateUsage()
	})
}

// SetMeaning sets the "meaning" field.
func (u *GrammarItemUpsertOne) SetMeaning(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetMeaning(v)
	})
}

// UpdateMeaning sets the "meaning" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateMeaning() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateMeaning()
	})
}

// SetExample1Ja sets the "example1_ja" field.
func (u *GrammarItemUpsertOne) SetExample1Ja(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample1Ja(v)
	})
}

// UpdateExample1Ja sets the "example1_ja" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateExample1Ja() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample1Ja()
	})
}

// SetExample1En sets the "example1_en" field.
func (u *GrammarItemUpsertOne) SetExample1En(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample1En(v)
	})
}

// UpdateExample1En sets the "example1_en" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateExample1En() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample1En()
	})
}

// SetExample2Ja sets the "example2_ja" field.
func (u *GrammarItemUpsertOne) SetExample2Ja(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample2Ja(v)
	})
}

// UpdateExample2Ja sets the "example2_ja" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateExample2Ja() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample2Ja()
	})
}

// SetExample2En sets the "example2_en" field.
func (u *GrammarItemUpsertOne) SetExample2En(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample2En(v)
	})
}

// UpdateExample2En sets the "example2_en" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateExample2En() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample2En()
	})
}

// SetNote sets the "note" field.
func (u *GrammarItemUpsertOne) SetNote(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateNote() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateNote()
	})
}

// SetStage sets the "stage" field.
func (u *GrammarItemUpsertOne) SetStage(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateStage() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateStage()
	})
}

// SetLessonStatus sets the "lesson_status" field.
func (u *GrammarItemUpsertOne) SetLessonStatus(v string) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetLessonStatus(v)
	})
}

// UpdateLessonStatus sets the "lesson_status" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateLessonStatus() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateLessonStatus()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *GrammarItemUpsertOne) SetNextReviewAt(v time.Time) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateNextReviewAt() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateNextReviewAt()
	})
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (u *GrammarItemUpsertOne) ClearNextReviewAt() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.ClearNextReviewAt()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *GrammarItemUpsertOne) SetCorrectCount(v int) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *GrammarItemUpsertOne) AddCorrectCount(v int) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateCorrectCount() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetIncorrectCount sets the "incorrect_count" field.
func (u *GrammarItemUpsertOne) SetIncorrectCount(v int) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetIncorrectCount(v)
	})
}

// AddIncorrectCount adds v to the "incorrect_count" field.
func (u *GrammarItemUpsertOne) AddIncorrectCount(v int) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.AddIncorrectCount(v)
	})
}

// UpdateIncorrectCount sets the "incorrect_count" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateIncorrectCount() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateIncorrectCount()
	})
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *GrammarItemUpsertOne) SetLastReviewedAt(v time.Time) *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetLastReviewedAt(v)
	})
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *GrammarItemUpsertOne) UpdateLastReviewedAt() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateLastReviewedAt()
	})
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *GrammarItemUpsertOne) ClearLastReviewedAt() *GrammarItemUpsertOne {
	return u.Update(func(s *GrammarItemUpsert) {
		s.ClearLastReviewedAt()
	})
}

// Exec executes the query.
func (u *GrammarItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GrammarItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GrammarItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GrammarItemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GrammarItemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GrammarItemCreateBulk is the builder for creating many GrammarItem entities in bulk.
type GrammarItemCreateBulk struct {
	config
	err      error
	builders []*GrammarItemCreate
	conflict []sql.ConflictOption
}

// Save creates the GrammarItem entities in the database.
func (_c *GrammarItemCreateBulk) Save(ctx context.Context) ([]*GrammarItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GrammarItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GrammarItemMutation)
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
func (_c *GrammarItemCreateBulk) SaveX(ctx context.Context) []*GrammarItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GrammarItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GrammarItemUpsert) {
//			SetTerm(v+v).
//		}).
//		Exec(ctx)
func (_c *GrammarItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *GrammarItemUpsertBulk {
	_c.conflict = opts
	return &GrammarItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GrammarItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GrammarItemCreateBulk) OnConflictColumns(columns ...string) *GrammarItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GrammarItemUpsertBulk{
		create: _c,
	}
}

// GrammarItemUpsertBulk is the builder for "upsert"-ing
// a bulk of GrammarItem nodes.
type GrammarItemUpsertBulk struct {
	create *GrammarItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GrammarItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GrammarItemUpsertBulk) UpdateNewValues() *GrammarItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(grammaritem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GrammarItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GrammarItemUpsertBulk) Ignore() *GrammarItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GrammarItemUpsertBulk) DoNothing() *GrammarItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GrammarItemCreateBulk.OnConflict
// documentation for more info.
func (u *GrammarItemUpsertBulk) Update(set func(*GrammarItemUpsert)) *GrammarItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GrammarItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetTerm sets the "term" field.
func (u *GrammarItemUpsertBulk) SetTerm(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetTerm(v)
	})
}

// UpdateTerm sets the "term" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateTerm() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateTerm()
	})
}

// SetReading sets the "reading" field.
func (u *GrammarItemUpsertBulk) SetReading(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetReading(v)
	})
}

// UpdateReading sets the "reading" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateReading() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateReading()
	})
}

// SetUsage sets the "usage" field.
func (u *GrammarItemUpsertBulk) SetUsage(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetUsage(v)
	})
}

// UpdateUsage sets the "usage" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateUsage() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateUsage()
	})
}

// SetMeaning sets the "meaning" field.
func (u *GrammarItemUpsertBulk) SetMeaning(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetMeaning(v)
	})
}

// UpdateMeaning sets the "meaning" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateMeaning() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateMeaning()
	})
}

// SetExample1Ja sets the "example1_ja" field.
func (u *GrammarItemUpsertBulk) SetExample1Ja(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample1Ja(v)
	})
}

// UpdateExample1Ja sets the "example1_ja" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateExample1Ja() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample1Ja()
	})
}

// SetExample1En sets the "example1_en" field.
func (u *GrammarItemUpsertBulk) SetExample1En(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample1En(v)
	})
}

// UpdateExample1En sets the "example1_en" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateExample1En() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample1En()
	})
}

// SetExample2Ja sets the "example2_ja" field.
func (u *GrammarItemUpsertBulk) SetExample2Ja(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample2Ja(v)
	})
}

// UpdateExample2Ja sets the "example2_ja" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateExample2Ja() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample2Ja()
	})
}

// SetExample2En sets the "example2_en" field.
func (u *GrammarItemUpsertBulk) SetExample2En(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetExample2En(v)
	})
}

// UpdateExample2En sets the "example2_en" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateExample2En() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateExample2En()
	})
}

// SetNote sets the "note" field.
func (u *GrammarItemUpsertBulk) SetNote(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateNote() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateNote()
	})
}

// SetStage sets the "stage" field.
func (u *GrammarItemUpsertBulk) SetStage(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateStage() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateStage()
	})
}

// SetLessonStatus sets the "lesson_status" field.
func (u *GrammarItemUpsertBulk) SetLessonStatus(v string) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetLessonStatus(v)
	})
}

// UpdateLessonStatus sets the "lesson_status" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateLessonStatus() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateLessonStatus()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *GrammarItemUpsertBulk) SetNextReviewAt(v time.Time) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateNextReviewAt() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateNextReviewAt()
	})
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (u *GrammarItemUpsertBulk) ClearNextReviewAt() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.ClearNextReviewAt()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *GrammarItemUpsertBulk) SetCorrectCount(v int) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *GrammarItemUpsertBulk) AddCorrectCount(v int) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateCorrectCount() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetIncorrectCount sets the "incorrect_count" field.
func (u *GrammarItemUpsertBulk) SetIncorrectCount(v int) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetIncorrectCount(v)
	})
}

// AddIncorrectCount adds v to the "incorrect_count" field.
func (u *GrammarItemUpsertBulk) AddIncorrectCount(v int) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.AddIncorrectCount(v)
	})
}

// UpdateIncorrectCount sets the "incorrect_count" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateIncorrectCount() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateIncorrectCount()
	})
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *GrammarItemUpsertBulk) SetLastReviewedAt(v time.Time) *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.SetLastReviewedAt(v)
	})
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *GrammarItemUpsertBulk) UpdateLastReviewedAt() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.UpdateLastReviewedAt()
	})
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *GrammarItemUpsertBulk) ClearLastReviewedAt() *GrammarItemUpsertBulk {
	return u.Update(func(s *GrammarItemUpsert) {
		s.ClearLastReviewedAt()
	})
}

// Exec executes the query.
func (u *GrammarItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GrammarItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GrammarItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GrammarItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
