// Code generated by ent, DO NOT EDIT.

package grammaritem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/walterairs/just-remember/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldID, id))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldTerm, v))
}

// Reading applies equality check predicate on the "reading" field. It's identical to ReadingEQ.
func Reading(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldReading, v))
}

// Usage applies equality check predicate on the "usage" field. It's identical to UsageEQ.
func Usage(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldUsage, v))
}

// Meaning applies equality check predicate on the "meaning" field. It's identical to MeaningEQ.
func Meaning(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldMeaning, v))
}

// Example1Ja applies equality check predicate on the "example1_ja" field. It's identical to Example1JaEQ.
func Example1Ja(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample1Ja, v))
}

// Example1En applies equality check predicate on the "example1_en" field. It's identical to Example1EnEQ.
func Example1En(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample1En, v))
}

// Example2Ja applies equality check predicate on the "example2_ja" field. It's identical to Example2JaEQ.
func Example2Ja(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample2Ja, v))
}

// Example2En applies equality check predicate on the "example2_en" field. It's identical to Example2EnEQ.
func Example2En(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample2En, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldNote, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldStage, v))
}

// LessonStatus applies equality check predicate on the "lesson_status" field. It's identical to LessonStatusEQ.
func LessonStatus(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldLessonStatus, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldNextReviewAt, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldIncorrectCount, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldLastReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldCreatedAt, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldTerm, v))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldTerm, v))
}

// ReadingEQ applies the EQ predicate on the "reading" field.
func ReadingEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldReading, v))
}

// ReadingNEQ applies the NEQ predicate on the "reading" field.
func ReadingNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldReading, v))
}

// ReadingIn applies the In predicate on the "reading" field.
func ReadingIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldReading, vs...))
}

// ReadingNotIn applies the NotIn predicate on the "reading" field.
func ReadingNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldReading, vs...))
}

// ReadingGT applies the GT predicate on the "reading" field.
func ReadingGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldReading, v))
}

// ReadingGTE applies the GTE predicate on the "reading" field.
func ReadingGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldReading, v))
}

// ReadingLT applies the LT predicate on the "reading" field.
func ReadingLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldReading, v))
}

// ReadingLTE applies the LTE predicate on the "reading" field.
func ReadingLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldReading, v))
}

// ReadingContains applies the Contains predicate on the "reading" field.
func ReadingContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldReading, v))
}

// ReadingHasPrefix applies the HasPrefix predicate on the "reading" field.
func ReadingHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldReading, v))
}

// ReadingHasSuffix applies the HasSuffix predicate on the "reading" field.
func ReadingHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldReading, v))
}

// ReadingEqualFold applies the EqualFold predicate on the "reading" field.
func ReadingEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldReading, v))
}

// ReadingContainsFold applies the ContainsFold predicate on the "reading" field.
func ReadingContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldReading, v))
}

// UsageEQ applies the EQ predicate on the "usage" field.
func UsageEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldUsage, v))
}

// UsageNEQ applies the NEQ predicate on the "usage" field.
func UsageNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldUsage, v))
}

// UsageIn applies the In predicate on the "usage" field.
func UsageIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldUsage, vs...))
}

// UsageNotIn applies the NotIn predicate on the "usage" field.
func UsageNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldUsage, vs...))
}

// UsageGT applies the GT predicate on the "usage" field.
func UsageGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldUsage, v))
}

// UsageGTE applies the GTE predicate on the "usage" field.
func UsageGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldUsage, v))
}

// UsageLT applies the LT predicate on the "usage" field.
func UsageLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldUsage, v))
}

// UsageLTE applies the LTE predicate on the "usage" field.
func UsageLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldUsage, v))
}

// UsageContains applies the Contains predicate on the "usage" field.
func UsageContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldUsage, v))
}

// UsageHasPrefix applies the HasPrefix predicate on the "usage" field.
func UsageHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldUsage, v))
}

// UsageHasSuffix applies the HasSuffix predicate on the "usage" field.
func UsageHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldUsage, v))
}

// UsageEqualFold applies the EqualFold predicate on the "usage" field.
func UsageEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldUsage, v))
}

// UsageContainsFold applies the ContainsFold predicate on the "usage" field.
func UsageContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldUsage, v))
}

// MeaningEQ applies the EQ predicate on the "meaning" field.
func MeaningEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldMeaning, v))
}

// MeaningNEQ applies the NEQ predicate on the "meaning" field.
func MeaningNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldMeaning, v))
}

// MeaningIn applies the In predicate on the "meaning" field.
func MeaningIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldMeaning, vs...))
}

// MeaningNotIn applies the NotIn predicate on the "meaning" field.
func MeaningNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldMeaning, vs...))
}

// MeaningGT applies the GT predicate on the "meaning" field.
func MeaningGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldMeaning, v))
}

// MeaningGTE applies the GTE predicate on the "meaning" field.
func MeaningGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldMeaning, v))
}

// MeaningLT applies the LT predicate on the "meaning" field.
func MeaningLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldMeaning, v))
}

// MeaningLTE applies the LTE predicate on the "meaning" field.
func MeaningLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldMeaning, v))
}

// MeaningContains applies the Contains predicate on the "meaning" field.
func MeaningContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldMeaning, v))
}

// MeaningHasPrefix applies the HasPrefix predicate on the "meaning" field.
func MeaningHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldMeaning, v))
}

// MeaningHasSuffix applies the HasSuffix predicate on the "meaning" field.
func MeaningHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldMeaning, v))
}

// MeaningEqualFold applies the EqualFold predicate on the "meaning" field.
func MeaningEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldMeaning, v))
}

// MeaningContainsFold applies the ContainsFold predicate on the "meaning" field.
func MeaningContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldMeaning, v))
}

// Example1JaEQ applies the EQ predicate on the "example1_ja" field.
func Example1JaEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample1Ja, v))
}

// Example1JaNEQ applies the NEQ predicate on the "example1_ja" field.
func Example1JaNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldExample1Ja, v))
}

// Example1JaIn applies the In predicate on the "example1_ja" field.
func Example1JaIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldExample1Ja, vs...))
}

// Example1JaNotIn applies the NotIn predicate on the "example1_ja" field.
func Example1JaNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldExample1Ja, vs...))
}

// Example1JaGT applies the GT predicate on the "example1_ja" field.
func Example1JaGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldExample1Ja, v))
}

// Example1JaGTE applies the GTE predicate on the "example1_ja" field.
func Example1JaGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldExample1Ja, v))
}

// Example1JaLT applies the LT predicate on the "example1_ja" field.
func Example1JaLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldExample1Ja, v))
}

// Example1JaLTE applies the LTE predicate on the "example1_ja" field.
func Example1JaLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldExample1Ja, v))
}

// Example1JaContains applies the Contains predicate on the "example1_ja" field.
func Example1JaContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldExample1Ja, v))
}

// Example1JaHasPrefix applies the HasPrefix predicate on the "example1_ja" field.
func Example1JaHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldExample1Ja, v))
}

// Example1JaHasSuffix applies the HasSuffix predicate on the "example1_ja" field.
func Example1JaHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldExample1Ja, v))
}

// Example1JaEqualFold applies the EqualFold predicate on the "example1_ja" field.
func Example1JaEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldExample1Ja, v))
}

// Example1JaContainsFold applies the ContainsFold predicate on the "example1_ja" field.
func Example1JaContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldExample1Ja, v))
}

// Example1EnEQ applies the EQ predicate on the "example1_en" field.
func Example1EnEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample1En, v))
}

// Example1EnNEQ applies the NEQ predicate on the "example1_en" field.
func Example1EnNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldExample1En, v))
}

// Example1EnIn applies the In predicate on the "example1_en" field.
func Example1EnIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldExample1En, vs...))
}

// Example1EnNotIn applies the NotIn predicate on the "example1_en" field.
func Example1EnNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldExample1En, vs...))
}

// Example1EnGT applies the GT predicate on the "example1_en" field.
func Example1EnGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldExample1En, v))
}

// Example1EnGTE applies the GTE predicate on the "example1_en" field.
func Example1EnGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldExample1En, v))
}

// Example1EnLT applies the LT predicate on the "example1_en" field.
func Example1EnLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldExample1En, v))
}

// Example1EnLTE applies the LTE predicate on the "example1_en" field.
func Example1EnLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldExample1En, v))
}

// Example1EnContains applies the Contains predicate on the "example1_en" field.
func Example1EnContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldExample1En, v))
}

// Example1EnHasPrefix applies the HasPrefix predicate on the "example1_en" field.
func Example1EnHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldExample1En, v))
}

// Example1EnHasSuffix applies the HasSuffix predicate on the "example1_en" field.
func Example1EnHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldExample1En, v))
}

// Example1EnEqualFold applies the EqualFold predicate on the "example1_en" field.
func Example1EnEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldExample1En, v))
}

// Example1EnContainsFold applies the ContainsFold predicate on the "example1_en" field.
func Example1EnContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldExample1En, v))
}

// Example2JaEQ applies the EQ predicate on the "example2_ja" field.
func Example2JaEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample2Ja, v))
}

// Example2JaNEQ applies the NEQ predicate on the "example2_ja" field.
func Example2JaNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldExample2Ja, v))
}

// Example2JaIn applies the In predicate on the "example2_ja" field.
func Example2JaIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldExample2Ja, vs...))
}

// Example2JaNotIn applies the NotIn predicate on the "example2_ja" field.
func Example2JaNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldExample2Ja, vs...))
}

// Example2JaGT applies the GT predicate on the "example2_ja" field.
func Example2JaGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldExample2Ja, v))
}

// Example2JaGTE applies the GTE predicate on the "example2_ja" field.
func Example2JaGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldExample2Ja, v))
}

// Example2JaLT applies the LT predicate on the "example2_ja" field.
func Example2JaLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldExample2Ja, v))
}

// Example2JaLTE applies the LTE predicate on the "example2_ja" field.
func Example2JaLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldExample2Ja, v))
}

// Example2JaContains applies the Contains predicate on the "example2_ja" field.
func Example2JaContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldExample2Ja, v))
}

// Example2JaHasPrefix applies the HasPrefix predicate on the "example2_ja" field.
func Example2JaHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldExample2Ja, v))
}

// Example2JaHasSuffix applies the HasSuffix predicate on the "example2_ja" field.
func Example2JaHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldExample2Ja, v))
}

// Example2JaEqualFold applies the EqualFold predicate on the "example2_ja" field.
func Example2JaEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldExample2Ja, v))
}

// Example2JaContainsFold applies the ContainsFold predicate on the "example2_ja" field.
func Example2JaContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldExample2Ja, v))
}

// Example2EnEQ applies the EQ predicate on the "example2_en" field.
func Example2EnEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldExample2En, v))
}

// Example2EnNEQ applies the NEQ predicate on the "example2_en" field.
func Example2EnNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldExample2En, v))
}

// Example2EnIn applies the In predicate on the "example2_en" field.
func Example2EnIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldExample2En, vs...))
}

// Example2EnNotIn applies the NotIn predicate on the "example2_en" field.
func Example2EnNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldExample2En, vs...))
}

// Example2EnGT applies the GT predicate on the "example2_en" field.
func Example2EnGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldExample2En, v))
}

// Example2EnGTE applies the GTE predicate on the "example2_en" field.
func Example2EnGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldExample2En, v))
}

// Example2EnLT applies the LT predicate on the "example2_en" field.
func Example2EnLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldExample2En, v))
}

// Example2EnLTE applies the LTE predicate on the "example2_en" field.
func Example2EnLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldExample2En, v))
}

// Example2EnContains applies the Contains predicate on the "example2_en" field.
func Example2EnContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldExample2En, v))
}

// Example2EnHasPrefix applies the HasPrefix predicate on the "example2_en" field.
func Example2EnHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldExample2En, v))
}

// Example2EnHasSuffix applies the HasSuffix predicate on the "example2_en" field.
func Example2EnHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldExample2En, v))
}

// Example2EnEqualFold applies the EqualFold predicate on the "example2_en" field.
func Example2EnEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldExample2En, v))
}

// Example2EnContainsFold applies the ContainsFold predicate on the "example2_en" field.
func Example2EnContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldExample2En, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldNote, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldStage, v))
}

// LessonStatusEQ applies the EQ predicate on the "lesson_status" field.
func LessonStatusEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldLessonStatus, v))
}

// LessonStatusNEQ applies the NEQ predicate on the "lesson_status" field.
func LessonStatusNEQ(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldLessonStatus, v))
}

// LessonStatusIn applies the In predicate on the "lesson_status" field.
func LessonStatusIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldLessonStatus, vs...))
}

// LessonStatusNotIn applies the NotIn predicate on the "lesson_status" field.
func LessonStatusNotIn(vs ...string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldLessonStatus, vs...))
}

// LessonStatusGT applies the GT predicate on the "lesson_status" field.
func LessonStatusGT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldLessonStatus, v))
}

// LessonStatusGTE applies the GTE predicate on the "lesson_status" field.
func LessonStatusGTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldLessonStatus, v))
}

// LessonStatusLT applies the LT predicate on the "lesson_status" field.
func LessonStatusLT(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldLessonStatus, v))
}

// LessonStatusLTE applies the LTE predicate on the "lesson_status" field.
func LessonStatusLTE(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldLessonStatus, v))
}

// LessonStatusContains applies the Contains predicate on the "lesson_status" field.
func LessonStatusContains(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContains(FieldLessonStatus, v))
}

// LessonStatusHasPrefix applies the HasPrefix predicate on the "lesson_status" field.
func LessonStatusHasPrefix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasPrefix(FieldLessonStatus, v))
}

// LessonStatusHasSuffix applies the HasSuffix predicate on the "lesson_status" field.
func LessonStatusHasSuffix(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldHasSuffix(FieldLessonStatus, v))
}

// LessonStatusEqualFold applies the EqualFold predicate on the "lesson_status" field.
func LessonStatusEqualFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEqualFold(FieldLessonStatus, v))
}

// LessonStatusContainsFold applies the ContainsFold predicate on the "lesson_status" field.
func LessonStatusContainsFold(v string) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldContainsFold(FieldLessonStatus, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldNextReviewAt, v))
}

// NextReviewAtIsNil applies the IsNil predicate on the "next_review_at" field.
func NextReviewAtIsNil() predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIsNull(FieldNextReviewAt))
}

// NextReviewAtNotNil applies the NotNil predicate on the "next_review_at" field.
func NextReviewAtNotNil() predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotNull(FieldNextReviewAt))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldIncorrectCount, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotNull(FieldLastReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GrammarItem {
	return predicate.GrammarItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GrammarItem) predicate.GrammarItem {
	return predicate.GrammarItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GrammarItem) predicate.GrammarItem {
	return predicate.GrammarItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GrammarItem) predicate.GrammarItem {
	return predicate.GrammarItem(sql.NotPredicates(p))
}
