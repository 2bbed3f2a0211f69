// Code generated by ent, DO NOT EDIT.

package grammaritem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the grammaritem type in the database.
	Label = "grammar_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTerm holds the string denoting the term field in the database.
	FieldTerm = "term"
	// FieldReading holds the string denoting the reading field in the database.
	FieldReading = "reading"
	// FieldUsage holds the string denoting the usage field in the database.
	FieldUsage = "usage"
	// FieldMeaning holds the string denoting the meaning field in the database.
	FieldMeaning = "meaning"
	// FieldExample1Ja holds the string denoting the example1_ja field in the database.
	FieldExample1Ja = "example1_ja"
	// FieldExample1En holds the string denoting the example1_en field in the database.
	FieldExample1En = "example1_en"
	// FieldExample2Ja holds the string denoting the example2_ja field in the database.
	FieldExample2Ja = "example2_ja"
	// FieldExample2En holds the string denoting the example2_en field in the database.
	FieldExample2En = "example2_en"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldLessonStatus holds the string denoting the lesson_status field in the database.
	FieldLessonStatus = "lesson_status"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldIncorrectCount holds the string denoting the incorrect_count field in the database.
	FieldIncorrectCount = "incorrect_count"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the grammaritem in the database.
	Table = "grammar_items"
)

// Columns holds all SQL columns for grammaritem fields.
var Columns = []string{
	FieldID,
	FieldTerm,
	FieldReading,
	FieldUsage,
	FieldMeaning,
	FieldExample1Ja,
	FieldExample1En,
	FieldExample2Ja,
	FieldExample2En,
	FieldNote,
	FieldStage,
	FieldLessonStatus,
	FieldNextReviewAt,
	FieldCorrectCount,
	FieldIncorrectCount,
	FieldLastReviewedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TermValidator is a validator for the "term" field. It is called by the builders before save.
	TermValidator func(string) error
	// DefaultReading holds the default value on creation for the "reading" field.
	DefaultReading string
	// DefaultUsage holds the default value on creation for the "usage" field.
	DefaultUsage string
	// DefaultMeaning holds the default value on creation for the "meaning" field.
	DefaultMeaning string
	// DefaultExample1Ja holds the default value on creation for the "example1_ja" field.
	DefaultExample1Ja string
	// DefaultExample1En holds the default value on creation for the "example1_en" field.
	DefaultExample1En string
	// DefaultExample2Ja holds the default value on creation for the "example2_ja" field.
	DefaultExample2Ja string
	// DefaultExample2En holds the default value on creation for the "example2_en" field.
	DefaultExample2En string
	// DefaultNote holds the default value on creation for the "note" field.
	DefaultNote string
	// DefaultStage holds the default value on creation for the "stage" field.
	DefaultStage string
	// DefaultLessonStatus holds the default value on creation for the "lesson_status" field.
	DefaultLessonStatus string
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// DefaultIncorrectCount holds the default value on creation for the "incorrect_count" field.
	DefaultIncorrectCount int
	// IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	IncorrectCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the GrammarItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTerm orders the results by the term field.
func ByTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerm, opts...).ToFunc()
}

// ByReading orders the results by the reading field.
func ByReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReading, opts...).ToFunc()
}

// ByUsage orders the results by the usage field.
func ByUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsage, opts...).ToFunc()
}

// ByMeaning orders the results by the meaning field.
func ByMeaning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeaning, opts...).ToFunc()
}

// ByExample1Ja orders the results by the example1_ja field.
func ByExample1Ja(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExample1Ja, opts...).ToFunc()
}

// ByExample1En orders the results by the example1_en field.
func ByExample1En(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExample1En, opts...).ToFunc()
}

// ByExample2Ja orders the results by the example2_ja field.
func ByExample2Ja(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExample2Ja, opts...).ToFunc()
}

// ByExample2En orders the results by the example2_en field.
func ByExample2En(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExample2En, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByLessonStatus orders the results by the lesson_status field.
func ByLessonStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonStatus, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByIncorrectCount orders the results by the incorrect_count field.
func ByIncorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectCount, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
