package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single graded review answer.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Int("item_id").Positive(),
		field.String("stage_from").NotEmpty(),
		field.String("stage_to").NotEmpty(),
		field.Bool("correct"),
		field.Int("match_score").
			Default(0).
			Comment("Fuzzy match score 0-100; 0 when graded externally"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
	}
}
