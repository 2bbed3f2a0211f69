package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedItem(t *testing.T, s *Store, item grammar.Item) int {
	t.Helper()
	id, err := s.Items().Create(context.Background(), item)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	return id
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenSeedsDefaultSettings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	limit, err := s.Settings().Get(ctx, SettingDailyLessonLimit, "")
	if err != nil {
		t.Fatalf("get %s: %v", SettingDailyLessonLimit, err)
	}
	if limit != DefaultDailyLessonLimit {
		t.Errorf("%s = %q, want %q", SettingDailyLessonLimit, limit, DefaultDailyLessonLimit)
	}

	auto, err := s.Settings().Get(ctx, SettingAutoStartLessons, "")
	if err != nil {
		t.Fatalf("get %s: %v", SettingAutoStartLessons, err)
	}
	if auto != DefaultAutoStartLessons {
		t.Errorf("%s = %q, want %q", SettingAutoStartLessons, auto, DefaultAutoStartLessons)
	}
}

func TestSettingsSetUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Overwrite a seeded key twice; the second write must win.
	if err := s.Settings().Set(ctx, SettingDailyLessonLimit, "20"); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := s.Settings().Set(ctx, SettingDailyLessonLimit, "5"); err != nil {
		t.Fatalf("second set: %v", err)
	}

	got, err := s.Settings().Get(ctx, SettingDailyLessonLimit, "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "5" {
		t.Errorf("value = %q, want %q", got, "5")
	}

	// Unknown keys fall back to the caller's default.
	got, err = s.Settings().Get(ctx, "no_such_key", "fallback")
	if err != nil {
		t.Fatalf("get unknown: %v", err)
	}
	if got != "fallback" {
		t.Errorf("unknown key = %q, want fallback", got)
	}
}

func TestItemCreateGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	due := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	id := seedItem(t, s, grammar.Item{
		Term:         "〜ばかり",
		Reading:      "ばかり",
		Meaning:      "just did; nothing but",
		Stage:        grammar.StageGuruI,
		LessonStatus: grammar.InProgress,
		NextReviewAt: &due,
		CorrectCount: 4,
	})

	got, err := s.Items().Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if got.Term != "〜ばかり" || got.Stage != grammar.StageGuruI || got.LessonStatus != grammar.InProgress {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.NextReviewAt == nil || !got.NextReviewAt.Equal(due) {
		t.Errorf("next review = %v, want %v", got.NextReviewAt, due)
	}
	if got.CorrectCount != 4 {
		t.Errorf("correct count = %d, want 4", got.CorrectCount)
	}
}

func TestItemUpdateUnknownID(t *testing.T) {
	s := openTestStore(t)

	err := s.Items().Update(context.Background(), grammar.Item{ID: 9999, Term: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("update unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestListDue(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	past := now.Add(-time.Hour)
	earlier := now.Add(-2 * time.Hour)
	future := now.Add(time.Hour)

	later := seedItem(t, s, grammar.Item{
		Term: "due-later", Meaning: "m",
		Stage: grammar.StageApprenticeII, LessonStatus: grammar.InProgress,
		NextReviewAt: &past,
	})
	first := seedItem(t, s, grammar.Item{
		Term: "due-first", Meaning: "m",
		Stage: grammar.StageApprenticeI, LessonStatus: grammar.Available,
		NextReviewAt: &earlier,
	})
	seedItem(t, s, grammar.Item{
		Term: "not-yet", Meaning: "m",
		Stage: grammar.StageMaster, LessonStatus: grammar.InProgress,
		NextReviewAt: &future,
	})
	seedItem(t, s, grammar.Item{
		Term: "unscheduled", Meaning: "m",
		Stage: grammar.StageApprenticeI, LessonStatus: grammar.NotStarted,
	})
	seedItem(t, s, grammar.Item{
		Term: "burned", Meaning: "m",
		Stage: grammar.StageBurned, LessonStatus: grammar.InProgress,
		NextReviewAt: &past,
	})

	due, err := s.Items().ListDue(ctx, now)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due items, want 2", len(due))
	}
	// Ordered by ascending next review time.
	if due[0].ID != first || due[1].ID != later {
		t.Errorf("order = [%d %d], want [%d %d]", due[0].ID, due[1].ID, first, later)
	}
	for _, item := range due {
		if item.Stage == grammar.StageBurned {
			t.Errorf("burned item %d in due list", item.ID)
		}
	}
}

func TestLessonSummary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedItem(t, s, grammar.Item{Term: "a", Meaning: "m", LessonStatus: grammar.NotStarted})
	seedItem(t, s, grammar.Item{Term: "b", Meaning: "m", LessonStatus: grammar.Available})
	seedItem(t, s, grammar.Item{Term: "c", Meaning: "m", LessonStatus: grammar.InProgress})
	seedItem(t, s, grammar.Item{Term: "d", Meaning: "m", LessonStatus: grammar.InProgress})

	summary, err := s.Items().LessonSummary(ctx)
	if err != nil {
		t.Fatalf("lesson summary: %v", err)
	}
	want := map[grammar.LessonStatus]int{
		grammar.NotStarted: 1,
		grammar.Available:  1,
		grammar.InProgress: 2,
	}
	for status, n := range want {
		if summary[status] != n {
			t.Errorf("%s = %d, want %d", status, summary[status], n)
		}
	}
}

func TestResetAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	id := seedItem(t, s, grammar.Item{
		Term: "progressed", Meaning: "m",
		Stage: grammar.StageEnlightened, LessonStatus: grammar.InProgress,
		NextReviewAt: &now, LastReviewedAt: &now,
		CorrectCount: 12, IncorrectCount: 3,
	})
	seedItem(t, s, grammar.Item{
		Term: "available", Meaning: "m",
		Stage: grammar.StageApprenticeI, LessonStatus: grammar.Available,
		NextReviewAt: &now,
	})

	if err := s.Items().ResetAll(ctx); err != nil {
		t.Fatalf("reset all: %v", err)
	}

	summary, err := s.Items().LessonSummary(ctx)
	if err != nil {
		t.Fatalf("lesson summary: %v", err)
	}
	if summary[grammar.NotStarted] != 2 || summary[grammar.Available] != 0 || summary[grammar.InProgress] != 0 {
		t.Errorf("summary after reset = %v, want everything Not Started", summary)
	}

	got, err := s.Items().Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stage != grammar.StageApprenticeI {
		t.Errorf("stage = %s, want Apprentice I", got.Stage)
	}
	if got.NextReviewAt != nil || got.LastReviewedAt != nil {
		t.Errorf("schedule not cleared: next=%v last=%v", got.NextReviewAt, got.LastReviewedAt)
	}
	if got.CorrectCount != 0 || got.IncorrectCount != 0 {
		t.Errorf("counters = %d/%d, want 0/0", got.CorrectCount, got.IncorrectCount)
	}
}

func TestMakeAllDue(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	active := seedItem(t, s, grammar.Item{
		Term: "scheduled-out", Meaning: "m",
		Stage: grammar.StageGuruII, LessonStatus: grammar.InProgress,
		NextReviewAt: &future,
	})
	seedItem(t, s, grammar.Item{
		Term: "waiting", Meaning: "m",
		Stage: grammar.StageApprenticeI, LessonStatus: grammar.NotStarted,
	})
	seedItem(t, s, grammar.Item{
		Term: "burned", Meaning: "m",
		Stage: grammar.StageBurned, LessonStatus: grammar.InProgress,
	})

	n, err := s.Items().MakeAllDue(ctx, now)
	if err != nil {
		t.Fatalf("make all due: %v", err)
	}
	if n != 1 {
		t.Fatalf("touched %d items, want 1", n)
	}

	due, err := s.Items().ListDue(ctx, now)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 1 || due[0].ID != active {
		t.Errorf("due after make-due = %+v, want only item %d", due, active)
	}
}

func TestEventSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events, err := s.Events()
	if err != nil {
		t.Fatalf("events: %v", err)
	}

	if err := events.AppendLessonEvent(ctx, LessonEventData{Started: 1, Limit: 15, Trigger: "manual"}); err != nil {
		t.Fatalf("append lesson event: %v", err)
	}
	if err := events.AppendReviewEvent(ctx, ReviewEventData{SessionID: "s", ItemID: 1, StageFrom: grammar.StageApprenticeI, StageTo: grammar.StageApprenticeII, Correct: true, MatchScore: 91}); err != nil {
		t.Fatalf("append review event: %v", err)
	}

	reviews, err := s.Client().ReviewEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query review events: %v", err)
	}
	lessons, err := s.Client().LessonEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query lesson events: %v", err)
	}
	if len(reviews) != 1 || len(lessons) != 1 {
		t.Fatalf("got %d review / %d lesson events, want 1 each", len(reviews), len(lessons))
	}
	// The sequence is global across both event tables.
	if reviews[0].Sequence <= lessons[0].Sequence {
		t.Errorf("review seq %d not after lesson seq %d", reviews[0].Sequence, lessons[0].Sequence)
	}
}
