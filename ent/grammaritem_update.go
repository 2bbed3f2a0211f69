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
	"github.com/walterairs/just-remember/ent/predicate"
)

// GrammarItemUpdate is the builder for updating GrammarItem entities.
type GrammarItemUpdate struct {
	config
	hooks    []Hook
	mutation *GrammarItemMutation
}

// Where appends a list predicates to the GrammarItemUpdate builder.
func (_u *GrammarItemUpdate) Where(ps ...predicate.GrammarItem) *GrammarItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTerm sets the "term" field.
func (_u *GrammarItemUpdate) SetTerm(v string) *GrammarItemUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableTerm(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetReading sets the "reading" field.
func (_u *GrammarItemUpdate) SetReading(v string) *GrammarItemUpdate {
	_u.mutation.SetReading(v)
	return _u
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableReading(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetReading(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *GrammarItemUpdate) SetUsage(v string) *GrammarItemUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// SetNillableUsage sets the "usage" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableUsage(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetUsage(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *GrammarItemUpdate) SetMeaning(v string) *GrammarItemUpdate {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableMeaning(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetExample1Ja sets the "example1_ja" field.
func (_u *GrammarItemUpdate) SetExample1Ja(v string) *GrammarItemUpdate {
	_u.mutation.SetExample1Ja(v)
	return _u
}

// SetNillableExample1Ja sets the "example1_ja" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableExample1Ja(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetExample1Ja(*v)
	}
	return _u
}

// SetExample1En sets the "example1_en" field.
func (_u *GrammarItemUpdate) SetExample1En(v string) *GrammarItemUpdate {
	_u.mutation.SetExample1En(v)
	return _u
}

// SetNillableExample1En sets the "example1_en" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableExample1En(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetExample1En(*v)
	}
	return _u
}

// SetExample2Ja sets the "example2_ja" field.
func (_u *GrammarItemUpdate) SetExample2Ja(v string) *GrammarItemUpdate {
	_u.mutation.SetExample2Ja(v)
	return _u
}

// SetNillableExample2Ja sets the "example2_ja" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableExample2Ja(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetExample2Ja(*v)
	}
	return _u
}

// SetExample2En sets the "example2_en" field.
func (_u *GrammarItemUpdate) SetExample2En(v string) *GrammarItemUpdate {
	_u.mutation.SetExample2En(v)
	return _u
}

// SetNillableExample2En sets the "example2_en" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableExample2En(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetExample2En(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *GrammarItemUpdate) SetNote(v string) *GrammarItemUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableNote(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *GrammarItemUpdate) SetStage(v string) *GrammarItemUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableStage(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetLessonStatus sets the "lesson_status" field.
func (_u *GrammarItemUpdate) SetLessonStatus(v string) *GrammarItemUpdate {
	_u.mutation.SetLessonStatus(v)
	return _u
}

// SetNillableLessonStatus sets the "lesson_status" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableLessonStatus(v *string) *GrammarItemUpdate {
	if v != nil {
		_u.SetLessonStatus(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *GrammarItemUpdate) SetNextReviewAt(v time.Time) *GrammarItemUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableNextReviewAt(v *time.Time) *GrammarItemUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *GrammarItemUpdate) ClearNextReviewAt() *GrammarItemUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *GrammarItemUpdate) SetCorrectCount(v int) *GrammarItemUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableCorrectCount(v *int) *GrammarItemUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *GrammarItemUpdate) AddCorrectCount(v int) *GrammarItemUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *GrammarItemUpdate) SetIncorrectCount(v int) *GrammarItemUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableIncorrectCount(v *int) *GrammarItemUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *GrammarItemUpdate) AddIncorrectCount(v int) *GrammarItemUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *GrammarItemUpdate) SetLastReviewedAt(v time.Time) *GrammarItemUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *GrammarItemUpdate) SetNillableLastReviewedAt(v *time.Time) *GrammarItemUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *GrammarItemUpdate) ClearLastReviewedAt() *GrammarItemUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the GrammarItemMutation object of the builder.
func (_u *GrammarItemUpdate) Mutation() *GrammarItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrammarItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrammarItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarItemUpdate) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := grammaritem.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := grammaritem.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncorrectCount(); ok {
		if err := grammaritem.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (_u *GrammarItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammaritem.Table, grammaritem.Columns, sqlgraph.NewFieldSpec(grammaritem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(grammaritem.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reading(); ok {
		_spec.SetField(grammaritem.FieldReading, field.TypeString, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(grammaritem.FieldUsage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(grammaritem.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example1Ja(); ok {
		_spec.SetField(grammaritem.FieldExample1Ja, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example1En(); ok {
		_spec.SetField(grammaritem.FieldExample1En, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example2Ja(); ok {
		_spec.SetField(grammaritem.FieldExample2Ja, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example2En(); ok {
		_spec.SetField(grammaritem.FieldExample2En, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(grammaritem.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(grammaritem.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonStatus(); ok {
		_spec.SetField(grammaritem.FieldLessonStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(grammaritem.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(grammaritem.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(grammaritem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(grammaritem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(grammaritem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(grammaritem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(grammaritem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(grammaritem.FieldLastReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammaritem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrammarItemUpdateOne is the builder for updating a single GrammarItem entity.
type GrammarItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrammarItemMutation
}

// SetTerm sets the "term" field.
func (_u *GrammarItemUpdateOne) SetTerm(v string) *GrammarItemUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableTerm(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetReading sets the "reading" field.
func (_u *GrammarItemUpdateOne) SetReading(v string) *GrammarItemUpdateOne {
	_u.mutation.SetReading(v)
	return _u
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableReading(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetReading(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *GrammarItemUpdateOne) SetUsage(v string) *GrammarItemUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// SetNillableUsage sets the "usage" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableUsage(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetUsage(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *GrammarItemUpdateOne) SetMeaning(v string) *GrammarItemUpdateOne {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableMeaning(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetExample1Ja sets the "example1_ja" field.
func (_u *GrammarItemUpdateOne) SetExample1Ja(v string) *GrammarItemUpdateOne {
	_u.mutation.SetExample1Ja(v)
	return _u
}

// SetNillableExample1Ja sets the "example1_ja" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableExample1Ja(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetExample1Ja(*v)
	}
	return _u
}

// SetExample1En sets the "example1_en" field.
func (_u *GrammarItemUpdateOne) SetExample1En(v string) *GrammarItemUpdateOne {
	_u.mutation.SetExample1En(v)
	return _u
}

// SetNillableExample1En sets the "example1_en" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableExample1En(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetExample1En(*v)
	}
	return _u
}

// SetExample2Ja sets the "example2_ja" field.
func (_u *GrammarItemUpdateOne) SetExample2Ja(v string) *GrammarItemUpdateOne {
	_u.mutation.SetExample2Ja(v)
	return _u
}

// SetNillableExample2Ja sets the "example2_ja" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableExample2Ja(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetExample2Ja(*v)
	}
	return _u
}

// SetExample2En sets the "example2_en" field.
func (_u *GrammarItemUpdateOne) SetExample2En(v string) *GrammarItemUpdateOne {
	_u.mutation.SetExample2En(v)
	return _u
}

// SetNillableExample2En sets the "example2_en" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableExample2En(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetExample2En(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *GrammarItemUpdateOne) SetNote(v string) *GrammarItemUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableNote(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *GrammarItemUpdateOne) SetStage(v string) *GrammarItemUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableStage(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetLessonStatus sets the "lesson_status" field.
func (_u *GrammarItemUpdateOne) SetLessonStatus(v string) *GrammarItemUpdateOne {
	_u.mutation.SetLessonStatus(v)
	return _u
}

// SetNillableLessonStatus sets the "lesson_status" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableLessonStatus(v *string) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetLessonStatus(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *GrammarItemUpdateOne) SetNextReviewAt(v time.Time) *GrammarItemUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableNextReviewAt(v *time.Time) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *GrammarItemUpdateOne) ClearNextReviewAt() *GrammarItemUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *GrammarItemUpdateOne) SetCorrectCount(v int) *GrammarItemUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableCorrectCount(v *int) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *GrammarItemUpdateOne) AddCorrectCount(v int) *GrammarItemUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *GrammarItemUpdateOne) SetIncorrectCount(v int) *GrammarItemUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableIncorrectCount(v *int) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *GrammarItemUpdateOne) AddIncorrectCount(v int) *GrammarItemUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *GrammarItemUpdateOne) SetLastReviewedAt(v time.Time) *GrammarItemUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *GrammarItemUpdateOne) SetNillableLastReviewedAt(v *time.Time) *GrammarItemUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *GrammarItemUpdateOne) ClearLastReviewedAt() *GrammarItemUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the GrammarItemMutation object of the builder.
func (_u *GrammarItemUpdateOne) Mutation() *GrammarItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the GrammarItemUpdate builder.
func (_u *GrammarItemUpdateOne) Where(ps ...predicate.GrammarItem) *GrammarItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrammarItemUpdateOne) Select(field string, fields ...string) *GrammarItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GrammarItem entity.
func (_u *GrammarItemUpdateOne) Save(ctx context.Context) (*GrammarItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarItemUpdateOne) SaveX(ctx context.Context) *GrammarItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrammarItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarItemUpdateOne) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := grammaritem.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := grammaritem.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncorrectCount(); ok {
		if err := grammaritem.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "GrammarItem.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (_u *GrammarItemUpdateOne) sqlSave(ctx context.Context) (_node *GrammarItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammaritem.Table, grammaritem.Columns, sqlgraph.NewFieldSpec(grammaritem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GrammarItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grammaritem.FieldID)
		for _, f := range fields {
			if !grammaritem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grammaritem.FieldID {
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
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(grammaritem.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reading(); ok {
		_spec.SetField(grammaritem.FieldReading, field.TypeString, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(grammaritem.FieldUsage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(grammaritem.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example1Ja(); ok {
		_spec.SetField(grammaritem.FieldExample1Ja, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example1En(); ok {
		_spec.SetField(grammaritem.FieldExample1En, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example2Ja(); ok {
		_spec.SetField(grammaritem.FieldExample2Ja, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example2En(); ok {
		_spec.SetField(grammaritem.FieldExample2En, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(grammaritem.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(grammaritem.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonStatus(); ok {
		_spec.SetField(grammaritem.FieldLessonStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(grammaritem.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(grammaritem.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(grammaritem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(grammaritem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(grammaritem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(grammaritem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(grammaritem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(grammaritem.FieldLastReviewedAt, field.TypeTime)
	}
	_node = &GrammarItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammaritem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
