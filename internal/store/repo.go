package store

import (
	"context"
	"errors"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
)

// ErrNotFound is returned when an operation references an item id
// that does not exist.
var ErrNotFound = errors.New("item not found")

// Recognized settings keys and their defaults.
const (
	SettingDailyLessonLimit = "daily_lesson_limit"
	SettingAutoStartLessons = "auto_start_lessons"

	DefaultDailyLessonLimit = "15"
	DefaultAutoStartLessons = "true"
)

// ItemRepo is the durable collection of grammar items. It performs no
// scheduling validation; state transitions are the business of the
// srs and lessons packages.
type ItemRepo interface {
	// Create persists a new item and returns its assigned id.
	Create(ctx context.Context, item grammar.Item) (int, error)

	// Update replaces all fields of an existing item.
	// Returns ErrNotFound if the id is unknown.
	Update(ctx context.Context, item grammar.Item) error

	// Get returns the item with the given id, or nil if absent.
	Get(ctx context.Context, id int) (*grammar.Item, error)

	// ListAll returns every item ordered by id.
	ListAll(ctx context.Context) ([]grammar.Item, error)

	// ListByStage returns items at the given stage.
	ListByStage(ctx context.Context, stage grammar.Stage) ([]grammar.Item, error)

	// ListByLessonStatus returns items with the given status, ordered by id.
	ListByLessonStatus(ctx context.Context, status grammar.LessonStatus) ([]grammar.Item, error)

	// ListDue returns non-Burned items whose next review time has
	// passed, ordered by ascending next review time. Items without a
	// scheduled review never match.
	ListDue(ctx context.Context, now time.Time) ([]grammar.Item, error)

	// LessonSummary returns the item count per lesson status. Every
	// status is present in the map, zero included.
	LessonSummary(ctx context.Context) (map[grammar.LessonStatus]int, error)

	// ResetAll puts every item back to Not Started / Apprentice I with
	// cleared schedule and counters. Irreversible.
	ResetAll(ctx context.Context) error

	// MakeAllDue reschedules every reviewable item to now and returns
	// how many were touched. Debug helper.
	MakeAllDue(ctx context.Context, now time.Time) (int, error)
}

// SettingsRepo is the persisted key/value configuration set.
type SettingsRepo interface {
	// Get returns the value for key, or def if the key is unset.
	Get(ctx context.Context, key, def string) (string, error)

	// Set stores value under key with upsert semantics.
	Set(ctx context.Context, key, value string) error
}

// ReviewEventData captures one graded review answer.
type ReviewEventData struct {
	SessionID  string
	ItemID     int
	StageFrom  grammar.Stage
	StageTo    grammar.Stage
	Correct    bool
	MatchScore int
}

// LessonEventData captures one lesson gate invocation.
type LessonEventData struct {
	Started int
	Limit   int
	Trigger string
}

// EventRepo provides append access to the domain event log.
type EventRepo interface {
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
}
