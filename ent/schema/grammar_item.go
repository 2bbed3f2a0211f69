package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GrammarItem holds one grammar pattern together with its full
// spaced repetition state. Stage and lesson status are stored as
// their display labels so the database stays human-inspectable.
type GrammarItem struct {
	ent.Schema
}

func (GrammarItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("term").NotEmpty(),
		field.String("reading").Default(""),
		field.String("usage").Default(""),
		field.String("meaning").Default(""),
		field.String("example1_ja").Default(""),
		field.String("example1_en").Default(""),
		field.String("example2_ja").Default(""),
		field.String("example2_en").Default(""),
		field.String("note").Default(""),
		field.String("stage").
			Default("Apprentice I").
			Comment("Display label of the SRS stage"),
		field.String("lesson_status").
			Default("Not Started").
			Comment("Display label of the lesson status"),
		field.Time("next_review_at").
			Optional().
			Nillable().
			Comment("Unset for Burned and Not Started items"),
		field.Int("correct_count").
			Default(0).
			NonNegative(),
		field.Int("incorrect_count").
			Default(0).
			NonNegative(),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (GrammarItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_status"),
		index.Fields("stage"),
		index.Fields("next_review_at"),
	}
}
