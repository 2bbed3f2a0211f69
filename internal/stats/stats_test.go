package stats

import (
	"context"
	"testing"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
)

// stubItems serves a fixed item list.
type stubItems struct {
	all []grammar.Item
}

func (s *stubItems) Create(_ context.Context, _ grammar.Item) (int, error) { return 0, nil }
func (s *stubItems) Update(_ context.Context, _ grammar.Item) error        { return nil }
func (s *stubItems) Get(_ context.Context, _ int) (*grammar.Item, error)   { return nil, nil }
func (s *stubItems) ListAll(_ context.Context) ([]grammar.Item, error)     { return s.all, nil }
func (s *stubItems) ListByStage(_ context.Context, _ grammar.Stage) ([]grammar.Item, error) {
	return nil, nil
}
func (s *stubItems) ListByLessonStatus(_ context.Context, _ grammar.LessonStatus) ([]grammar.Item, error) {
	return nil, nil
}
func (s *stubItems) ListDue(_ context.Context, _ time.Time) ([]grammar.Item, error) {
	return nil, nil
}
func (s *stubItems) LessonSummary(_ context.Context) (map[grammar.LessonStatus]int, error) {
	return nil, nil
}
func (s *stubItems) ResetAll(_ context.Context) error                       { return nil }
func (s *stubItems) MakeAllDue(_ context.Context, _ time.Time) (int, error) { return 0, nil }

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	items := &stubItems{all: []grammar.Item{
		{ID: 1, Stage: grammar.StageApprenticeII, LessonStatus: grammar.InProgress,
			CorrectCount: 3, IncorrectCount: 1, NextReviewAt: &past},
		{ID: 2, Stage: grammar.StageGuruI, LessonStatus: grammar.InProgress,
			CorrectCount: 5, IncorrectCount: 0, NextReviewAt: &future},
		{ID: 3, Stage: grammar.StageApprenticeI, LessonStatus: grammar.NotStarted},
		{ID: 4, Stage: grammar.StageBurned, LessonStatus: grammar.InProgress,
			CorrectCount: 9, IncorrectCount: 3},
	}}

	sum, err := NewService(items).Summarize(context.Background(), now)
	if err != nil {
		t.Fatal(err)
	}

	if sum.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", sum.TotalItems)
	}
	if sum.TotalReviews != 21 {
		t.Errorf("TotalReviews = %d, want 21", sum.TotalReviews)
	}
	if sum.TotalCorrect != 17 {
		t.Errorf("TotalCorrect = %d, want 17", sum.TotalCorrect)
	}
	wantAcc := float64(17) / 21 * 100
	if sum.Accuracy != wantAcc {
		t.Errorf("Accuracy = %v, want %v", sum.Accuracy, wantAcc)
	}
	if sum.DueNow != 1 {
		t.Errorf("DueNow = %d, want 1", sum.DueNow)
	}
	if sum.StageCounts[grammar.StageApprenticeII] != 1 || sum.StageCounts[grammar.StageBurned] != 1 {
		t.Errorf("StageCounts = %v", sum.StageCounts)
	}
	if sum.StageCounts[grammar.StageMaster] != 0 {
		t.Errorf("StageCounts missing zero entries: %v", sum.StageCounts)
	}
	if sum.Lessons[grammar.NotStarted] != 1 || sum.Lessons[grammar.InProgress] != 3 {
		t.Errorf("Lessons = %v", sum.Lessons)
	}
	if _, ok := sum.Lessons[grammar.Available]; !ok {
		t.Error("Lessons missing Available zero entry")
	}
}

func TestSummarize_EmptyStore(t *testing.T) {
	sum, err := NewService(&stubItems{}).Summarize(context.Background(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalItems != 0 || sum.Accuracy != 0 {
		t.Errorf("summary = %+v, want zeroes", sum)
	}
	if len(sum.StageCounts) != grammar.NumStages {
		t.Errorf("StageCounts has %d entries, want %d", len(sum.StageCounts), grammar.NumStages)
	}
}
