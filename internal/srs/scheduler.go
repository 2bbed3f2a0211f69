// Package srs implements the stage transition and due date rules of
// the spaced repetition schedule. All functions are pure: the clock is
// passed in and results are returned as values for the caller to
// persist.
package srs

import (
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
)

// NextStage returns the stage an item moves to after an answer.
// A correct answer advances one position; Burned stays Burned. An
// incorrect answer always resets to Apprentice I, whatever the
// current stage.
func NextStage(current grammar.Stage, correct bool) grammar.Stage {
	if !correct {
		return grammar.StageApprenticeI
	}
	if current.Terminal() {
		return current
	}
	return current + 1
}

// NextReviewAt returns when the item should next be reviewed, or nil
// for Burned items, which leave the schedule permanently.
func NextReviewAt(stage grammar.Stage, now time.Time) *time.Time {
	interval, ok := stage.Interval()
	if !ok {
		return nil
	}
	t := now.Add(interval)
	return &t
}

// ApplyOutcome folds one graded answer into an item's scheduling
// state and returns the updated item. The first answer moves an
// Available item into In Progress. The input is not mutated.
func ApplyOutcome(item grammar.Item, correct bool, now time.Time) grammar.Item {
	reviewedAt := now
	item.LastReviewedAt = &reviewedAt

	if correct {
		item.CorrectCount++
	} else {
		item.IncorrectCount++
	}

	if item.LessonStatus == grammar.Available {
		item.LessonStatus = grammar.InProgress
	}

	item.Stage = NextStage(item.Stage, correct)
	item.NextReviewAt = NextReviewAt(item.Stage, now)

	return item
}
