// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/walterairs/just-remember/ent/grammaritem"
)

// GrammarItem is the model entity for the GrammarItem schema.
type GrammarItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Term holds the value of the "term" field.
	Term string `json:"term,omitempty"`
	// Reading holds the value of the "reading" field.
	Reading string `json:"reading,omitempty"`
	// Usage holds the value of the "usage" field.
	Usage string `json:"usage,omitempty"`
	// Meaning holds the value of the "meaning" field.
	Meaning string `json:"meaning,omitempty"`
	// Example1Ja holds the value of the "example1_ja" field.
	Example1Ja string `json:"example1_ja,omitempty"`
	// Example1En holds the value of the "example1_en" field.
	Example1En string `json:"example1_en,omitempty"`
	// Example2Ja holds the value of the "example2_ja" field.
	Example2Ja string `json:"example2_ja,omitempty"`
	// Example2En holds the value of the "example2_en" field.
	Example2En string `json:"example2_en,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// Display label of the SRS stage
	Stage string `json:"stage,omitempty"`
	// Display label of the lesson status
	LessonStatus string `json:"lesson_status,omitempty"`
	// Unset for Burned and Not Started items
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GrammarItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grammaritem.FieldID, grammaritem.FieldCorrectCount, grammaritem.FieldIncorrectCount:
			values[i] = new(sql.NullInt64)
		case grammaritem.FieldTerm, grammaritem.FieldReading, grammaritem.FieldUsage, grammaritem.FieldMeaning, grammaritem.FieldExample1Ja, grammaritem.FieldExample1En, grammaritem.FieldExample2Ja, grammaritem.FieldExample2En, grammaritem.FieldNote, grammaritem.FieldStage, grammaritem.FieldLessonStatus:
			values[i] = new(sql.NullString)
		case grammaritem.FieldNextReviewAt, grammaritem.FieldLastReviewedAt, grammaritem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GrammarItem fields.
func (_m *GrammarItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grammaritem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case grammaritem.FieldTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.String
			}
		case grammaritem.FieldReading:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reading", values[i])
			} else if value.Valid {
				_m.Reading = value.String
			}
		case grammaritem.FieldUsage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field usage", values[i])
			} else if value.Valid {
				_m.Usage = value.String
			}
		case grammaritem.FieldMeaning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meaning", values[i])
			} else if value.Valid {
				_m.Meaning = value.String
			}
		case grammaritem.FieldExample1Ja:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example1_ja", values[i])
			} else if value.Valid {
				_m.Example1Ja = value.String
			}
		case grammaritem.FieldExample1En:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example1_en", values[i])
			} else if value.Valid {
				_m.Example1En = value.String
			}
		case grammaritem.FieldExample2Ja:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example2_ja", values[i])
			} else if value.Valid {
				_m.Example2Ja = value.String
			}
		case grammaritem.FieldExample2En:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example2_en", values[i])
			} else if value.Valid {
				_m.Example2En = value.String
			}
		case grammaritem.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case grammaritem.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case grammaritem.FieldLessonStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_status", values[i])
			} else if value.Valid {
				_m.LessonStatus = value.String
			}
		case grammaritem.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = new(time.Time)
				*_m.NextReviewAt = value.Time
			}
		case grammaritem.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case grammaritem.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				_m.IncorrectCount = int(value.Int64)
			}
		case grammaritem.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case grammaritem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GrammarItem.
// This includes values selected through modifiers, order, etc.
func (_m *GrammarItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GrammarItem.
// Note that you need to call GrammarItem.Unwrap() before calling this method if this GrammarItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GrammarItem) Update() *GrammarItemUpdateOne {
	return NewGrammarItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GrammarItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GrammarItem) Unwrap() *GrammarItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GrammarItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GrammarItem) String() string {
	var builder strings.Builder
	builder.WriteString("GrammarItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("term=")
	builder.WriteString(_m.Term)
	builder.WriteString(", ")
	builder.WriteString("reading=")
	builder.WriteString(_m.Reading)
	builder.WriteString(", ")
	builder.WriteString("usage=")
	builder.WriteString(_m.Usage)
	builder.WriteString(", ")
	builder.WriteString("meaning=")
	builder.WriteString(_m.Meaning)
	builder.WriteString(", ")
	builder.WriteString("example1_ja=")
	builder.WriteString(_m.Example1Ja)
	builder.WriteString(", ")
	builder.WriteString("example1_en=")
	builder.WriteString(_m.Example1En)
	builder.WriteString(", ")
	builder.WriteString("example2_ja=")
	builder.WriteString(_m.Example2Ja)
	builder.WriteString(", ")
	builder.WriteString("example2_en=")
	builder.WriteString(_m.Example2En)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("lesson_status=")
	builder.WriteString(_m.LessonStatus)
	builder.WriteString(", ")
	if v := _m.NextReviewAt; v != nil {
		builder.WriteString("next_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncorrectCount))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GrammarItems is a parsable slice of GrammarItem.
type GrammarItems []*GrammarItem
