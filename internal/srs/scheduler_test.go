package srs

import (
	"testing"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
)

func TestNextStage_Correct_AdvancesOnePosition(t *testing.T) {
	for _, stage := range grammar.Stages() {
		if stage.Terminal() {
			continue
		}
		got := NextStage(stage, true)
		if got != stage+1 {
			t.Errorf("NextStage(%v, true) = %v, want %v", stage, got, stage+1)
		}
	}
}

func TestNextStage_Correct_BurnedStaysBurned(t *testing.T) {
	got := NextStage(grammar.StageBurned, true)
	if got != grammar.StageBurned {
		t.Errorf("NextStage(Burned, true) = %v, want Burned", got)
	}
}

func TestNextStage_Incorrect_AlwaysResetsToApprenticeI(t *testing.T) {
	for _, stage := range grammar.Stages() {
		got := NextStage(stage, false)
		if got != grammar.StageApprenticeI {
			t.Errorf("NextStage(%v, false) = %v, want Apprentice I", stage, got)
		}
	}
}

func TestNextReviewAt_MatchesStageInterval(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	wantHours := []int{4, 8, 24, 48, 168, 336, 720, 2880}
	for i, hours := range wantHours {
		stage := grammar.Stage(i)
		got := NextReviewAt(stage, now)
		if got == nil {
			t.Fatalf("NextReviewAt(%v) = nil, want a time", stage)
		}
		want := now.Add(time.Duration(hours) * time.Hour)
		if !got.Equal(want) {
			t.Errorf("NextReviewAt(%v) = %v, want %v", stage, got, want)
		}
	}
}

func TestNextReviewAt_BurnedHasNone(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if got := NextReviewAt(grammar.StageBurned, now); got != nil {
		t.Errorf("NextReviewAt(Burned) = %v, want nil", got)
	}
}

func TestApplyOutcome_FirstCorrectAnswer(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := grammar.Item{
		ID:           1,
		Term:         "〜てしまう",
		Meaning:      "to do completely; to do by accident",
		Stage:        grammar.StageApprenticeI,
		LessonStatus: grammar.Available,
	}

	got := ApplyOutcome(item, true, now)

	if got.LessonStatus != grammar.InProgress {
		t.Errorf("LessonStatus = %v, want In Progress", got.LessonStatus)
	}
	if got.Stage != grammar.StageApprenticeII {
		t.Errorf("Stage = %v, want Apprentice II", got.Stage)
	}
	if got.CorrectCount != 1 || got.IncorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 1/0", got.CorrectCount, got.IncorrectCount)
	}
	if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(now) {
		t.Errorf("LastReviewedAt = %v, want %v", got.LastReviewedAt, now)
	}
	wantNext := now.Add(8 * time.Hour)
	if got.NextReviewAt == nil || !got.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, wantNext)
	}
}

func TestApplyOutcome_IncorrectAtGuruII_ResetsFully(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := grammar.Item{
		ID:           7,
		Stage:        grammar.StageGuruII,
		LessonStatus: grammar.InProgress,
		CorrectCount: 5,
	}

	got := ApplyOutcome(item, false, now)

	if got.Stage != grammar.StageApprenticeI {
		t.Errorf("Stage = %v, want Apprentice I", got.Stage)
	}
	wantNext := now.Add(4 * time.Hour)
	if got.NextReviewAt == nil || !got.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, wantNext)
	}
	if got.CorrectCount != 5 {
		t.Errorf("CorrectCount = %d, want unchanged 5", got.CorrectCount)
	}
	if got.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", got.IncorrectCount)
	}
}

func TestApplyOutcome_EnlightenedCorrect_Burns(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := grammar.Item{
		Stage:        grammar.StageEnlightened,
		LessonStatus: grammar.InProgress,
	}

	got := ApplyOutcome(item, true, now)

	if got.Stage != grammar.StageBurned {
		t.Errorf("Stage = %v, want Burned", got.Stage)
	}
	if got.NextReviewAt != nil {
		t.Errorf("NextReviewAt = %v, want nil for Burned", got.NextReviewAt)
	}
}

func TestApplyOutcome_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := grammar.Item{
		Stage:        grammar.StageApprenticeI,
		LessonStatus: grammar.Available,
	}

	_ = ApplyOutcome(item, true, now)

	if item.Stage != grammar.StageApprenticeI {
		t.Errorf("input Stage changed to %v", item.Stage)
	}
	if item.LessonStatus != grammar.Available {
		t.Errorf("input LessonStatus changed to %v", item.LessonStatus)
	}
	if item.CorrectCount != 0 || item.LastReviewedAt != nil {
		t.Error("input counters or timestamps changed")
	}
}

func TestApplyOutcome_IntervalRelativeToLastReviewed(t *testing.T) {
	now := time.Date(2025, 6, 15, 21, 30, 0, 0, time.UTC)

	for _, stage := range grammar.Stages() {
		item := grammar.Item{Stage: stage, LessonStatus: grammar.InProgress}
		got := ApplyOutcome(item, true, now)

		interval, ok := got.Stage.Interval()
		if !ok {
			if got.NextReviewAt != nil {
				t.Errorf("stage %v: NextReviewAt set for terminal stage", got.Stage)
			}
			continue
		}
		if got.NextReviewAt == nil {
			t.Fatalf("stage %v: NextReviewAt = nil", got.Stage)
		}
		if d := got.NextReviewAt.Sub(*got.LastReviewedAt); d != interval {
			t.Errorf("stage %v: next - last = %v, want %v", got.Stage, d, interval)
		}
	}
}
