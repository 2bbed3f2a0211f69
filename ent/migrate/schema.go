// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GrammarItemsColumns holds the columns for the "grammar_items" table.
	GrammarItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "term", Type: field.TypeString},
		{Name: "reading", Type: field.TypeString, Default: ""},
		{Name: "usage", Type: field.TypeString, Default: ""},
		{Name: "meaning", Type: field.TypeString, Default: ""},
		{Name: "example1_ja", Type: field.TypeString, Default: ""},
		{Name: "example1_en", Type: field.TypeString, Default: ""},
		{Name: "example2_ja", Type: field.TypeString, Default: ""},
		{Name: "example2_en", Type: field.TypeString, Default: ""},
		{Name: "note", Type: field.TypeString, Default: ""},
		{Name: "stage", Type: field.TypeString, Default: "Apprentice I"},
		{Name: "lesson_status", Type: field.TypeString, Default: "Not Started"},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GrammarItemsTable holds the schema information for the "grammar_items" table.
	GrammarItemsTable = &schema.Table{
		Name:       "grammar_items",
		Columns:    GrammarItemsColumns,
		PrimaryKey: []*schema.Column{GrammarItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grammaritem_lesson_status",
				Unique:  false,
				Columns: []*schema.Column{GrammarItemsColumns[11]},
			},
			{
				Name:    "grammaritem_stage",
				Unique:  false,
				Columns: []*schema.Column{GrammarItemsColumns[10]},
			},
			{
				Name:    "grammaritem_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{GrammarItemsColumns[12]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "started", Type: field.TypeInt},
		{Name: "requested_limit", Type: field.TypeInt},
		{Name: "trigger", Type: field.TypeString},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeInt},
		{Name: "stage_from", Type: field.TypeString},
		{Name: "stage_to", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "match_score", Type: field.TypeInt, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GrammarItemsTable,
		LessonEventsTable,
		ReviewEventsTable,
		SettingsTable,
	}
)

func init() {
}
