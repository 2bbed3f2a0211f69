// Package session assembles review sessions from due items and
// applies graded outcomes back to the store. A session is an
// ephemeral in-memory cursor; nothing about it survives a restart.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/srs"
	"github.com/walterairs/just-remember/internal/store"
)

// ErrComplete is returned when recording an outcome against a
// session whose items have all been answered.
var ErrComplete = errors.New("session complete")

// Session is an ordered run of due items with a progress cursor.
type Session struct {
	ID     string
	Items  []grammar.Item
	cursor int
}

// Build queries the due items, drops anything not yet in the review
// pool, and shuffles the rest with the caller's rng. An empty session
// is valid; callers check Done before presenting it.
func Build(ctx context.Context, items store.ItemRepo, now time.Time, rng *rand.Rand) (*Session, error) {
	due, err := items.ListDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list due items: %w", err)
	}

	reviewable := make([]grammar.Item, 0, len(due))
	for _, item := range due {
		if item.Reviewable() {
			reviewable = append(reviewable, item)
		}
	}

	rng.Shuffle(len(reviewable), func(i, j int) {
		reviewable[i], reviewable[j] = reviewable[j], reviewable[i]
	})

	return &Session{
		ID:    uuid.NewString(),
		Items: reviewable,
	}, nil
}

// Current returns the item under the cursor, or nil when done.
func (s *Session) Current() *grammar.Item {
	if s.Done() {
		return nil
	}
	return &s.Items[s.cursor]
}

// Done reports whether every item has been answered.
func (s *Session) Done() bool {
	return s.cursor >= len(s.Items)
}

// Position returns the zero-based cursor position.
func (s *Session) Position() int {
	return s.cursor
}

// Remaining returns how many items are left, the current one included.
func (s *Session) Remaining() int {
	return len(s.Items) - s.cursor
}

// Recorder persists graded outcomes.
type Recorder struct {
	items  store.ItemRepo
	events store.EventRepo
}

// NewRecorder creates a Recorder. events may be nil to skip event
// logging.
func NewRecorder(items store.ItemRepo, events store.EventRepo) *Recorder {
	return &Recorder{items: items, events: events}
}

// Record applies the outcome to the current item, persists it, and
// advances the session cursor. matchScore is the fuzzy grading score
// when graded in-app, 0 otherwise. Returns the updated item.
func (r *Recorder) Record(ctx context.Context, s *Session, correct bool, matchScore int, now time.Time) (grammar.Item, error) {
	current := s.Current()
	if current == nil {
		return grammar.Item{}, ErrComplete
	}

	updated := srs.ApplyOutcome(*current, correct, now)
	if err := r.items.Update(ctx, updated); err != nil {
		return grammar.Item{}, fmt.Errorf("persist outcome for item %d: %w", updated.ID, err)
	}

	if r.events != nil {
		_ = r.events.AppendReviewEvent(ctx, store.ReviewEventData{
			SessionID:  s.ID,
			ItemID:     updated.ID,
			StageFrom:  current.Stage,
			StageTo:    updated.Stage,
			Correct:    correct,
			MatchScore: matchScore,
		})
	}

	s.Items[s.cursor] = updated
	s.cursor++
	return updated, nil
}
