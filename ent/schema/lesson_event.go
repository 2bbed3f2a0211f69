package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LessonEvent records a batch of items promoted into the review pool.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("started").NonNegative(),
		field.Int("requested_limit").Positive(),
		field.String("trigger").
			NotEmpty().
			Comment("manual, auto, or import"),
	}
}
