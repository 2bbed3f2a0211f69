package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/store"
)

// fakeItems is a minimal in-memory ItemRepo for tests.
type fakeItems struct {
	items map[int]grammar.Item
}

func (f *fakeItems) Create(_ context.Context, item grammar.Item) (int, error) {
	id := len(f.items) + 1
	item.ID = id
	f.items[id] = item
	return id, nil
}

func (f *fakeItems) Update(_ context.Context, item grammar.Item) error {
	if _, ok := f.items[item.ID]; !ok {
		return store.ErrNotFound
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItems) Get(_ context.Context, id int) (*grammar.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeItems) ListAll(_ context.Context) ([]grammar.Item, error) {
	return f.list(func(grammar.Item) bool { return true }), nil
}

func (f *fakeItems) ListByStage(_ context.Context, stage grammar.Stage) ([]grammar.Item, error) {
	return f.list(func(it grammar.Item) bool { return it.Stage == stage }), nil
}

func (f *fakeItems) ListByLessonStatus(_ context.Context, status grammar.LessonStatus) ([]grammar.Item, error) {
	return f.list(func(it grammar.Item) bool { return it.LessonStatus == status }), nil
}

func (f *fakeItems) ListDue(_ context.Context, now time.Time) ([]grammar.Item, error) {
	return f.list(func(it grammar.Item) bool {
		return !it.Stage.Terminal() && it.NextReviewAt != nil && !it.NextReviewAt.After(now)
	}), nil
}

func (f *fakeItems) LessonSummary(_ context.Context) (map[grammar.LessonStatus]int, error) {
	return nil, nil
}

func (f *fakeItems) ResetAll(_ context.Context) error { return nil }

func (f *fakeItems) MakeAllDue(_ context.Context, _ time.Time) (int, error) { return 0, nil }

func (f *fakeItems) list(keep func(grammar.Item) bool) []grammar.Item {
	var out []grammar.Item
	for _, it := range f.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeEvents struct {
	reviews []store.ReviewEventData
}

func (f *fakeEvents) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	f.reviews = append(f.reviews, data)
	return nil
}

func (f *fakeEvents) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error {
	return nil
}

func dueAt(t time.Time) *time.Time { return &t }

func newFixture(now time.Time) *fakeItems {
	past := now.Add(-time.Hour)
	return &fakeItems{items: map[int]grammar.Item{
		1: {ID: 1, Term: "〜ながら", Stage: grammar.StageApprenticeII, LessonStatus: grammar.InProgress, NextReviewAt: dueAt(past)},
		2: {ID: 2, Term: "〜そうだ", Stage: grammar.StageApprenticeI, LessonStatus: grammar.Available, NextReviewAt: dueAt(past)},
		3: {ID: 3, Term: "〜ばかり", Stage: grammar.StageGuruI, LessonStatus: grammar.InProgress, NextReviewAt: dueAt(now.Add(time.Hour))},
		4: {ID: 4, Term: "〜つもり", Stage: grammar.StageApprenticeI, LessonStatus: grammar.NotStarted},
		5: {ID: 5, Term: "〜わけだ", Stage: grammar.StageBurned, LessonStatus: grammar.InProgress},
	}}
}

func TestBuild_OnlyDueReviewableItems(t *testing.T) {
	now := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	items := newFixture(now)

	s, err := Build(context.Background(), items, now, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Items) != 2 {
		t.Fatalf("session has %d items, want 2", len(s.Items))
	}
	ids := map[int]bool{}
	for _, item := range s.Items {
		ids[item.ID] = true
	}
	if !ids[1] || !ids[2] {
		t.Errorf("session ids = %v, want {1, 2}", ids)
	}
	if s.ID == "" {
		t.Error("session ID is empty")
	}
}

func TestBuild_NotStartedNeverIncluded(t *testing.T) {
	// Even a Not Started item with a due date must stay out.
	now := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	items := &fakeItems{items: map[int]grammar.Item{
		1: {ID: 1, Stage: grammar.StageApprenticeI, LessonStatus: grammar.NotStarted, NextReviewAt: dueAt(past)},
	}}

	s, err := Build(context.Background(), items, now, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Items) != 0 {
		t.Errorf("session has %d items, want 0", len(s.Items))
	}
	if !s.Done() {
		t.Error("empty session should be done")
	}
}

func TestBuild_ShuffleIsSeedStable(t *testing.T) {
	now := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	items := &fakeItems{items: map[int]grammar.Item{}}
	for i := 1; i <= 8; i++ {
		items.items[i] = grammar.Item{
			ID:           i,
			Stage:        grammar.StageApprenticeI,
			LessonStatus: grammar.InProgress,
			NextReviewAt: dueAt(past),
		}
	}

	a, err := Build(context.Background(), items, now, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(context.Background(), items, now, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Items {
		if a.Items[i].ID != b.Items[i].ID {
			t.Fatalf("same seed produced different orders: %v vs %v", a.Items, b.Items)
		}
	}
}

func TestRecord_PersistsAndAdvances(t *testing.T) {
	now := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	items := newFixture(now)
	events := &fakeEvents{}

	s, err := Build(context.Background(), items, now, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(items, events)

	first := *s.Current()
	updated, err := rec.Record(context.Background(), s, true, 92, now)
	if err != nil {
		t.Fatal(err)
	}

	if updated.Stage != first.Stage+1 {
		t.Errorf("Stage = %v, want %v", updated.Stage, first.Stage+1)
	}
	if s.Position() != 1 {
		t.Errorf("Position = %d, want 1", s.Position())
	}

	persisted, _ := items.Get(context.Background(), first.ID)
	if persisted.CorrectCount != first.CorrectCount+1 {
		t.Errorf("persisted CorrectCount = %d, want %d", persisted.CorrectCount, first.CorrectCount+1)
	}

	if len(events.reviews) != 1 {
		t.Fatalf("appended %d review events, want 1", len(events.reviews))
	}
	ev := events.reviews[0]
	if ev.SessionID != s.ID || ev.ItemID != first.ID || !ev.Correct || ev.MatchScore != 92 {
		t.Errorf("event = %+v", ev)
	}
}

func TestRecord_CompleteSession(t *testing.T) {
	now := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	items := newFixture(now)

	s, err := Build(context.Background(), items, now, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(items, nil)

	total := len(s.Items)
	for i := 0; i < total; i++ {
		if _, err := rec.Record(context.Background(), s, i%2 == 0, 0, now); err != nil {
			t.Fatal(err)
		}
	}

	if !s.Done() {
		t.Error("session should be done")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", s.Remaining())
	}
	if _, err := rec.Record(context.Background(), s, true, 0, now); !errors.Is(err, ErrComplete) {
		t.Errorf("err = %v, want ErrComplete", err)
	}
}

func TestRecord_FirstAnswerMovesAvailableToInProgress(t *testing.T) {
	now := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	items := &fakeItems{items: map[int]grammar.Item{
		1: {ID: 1, Stage: grammar.StageApprenticeI, LessonStatus: grammar.Available, NextReviewAt: dueAt(past)},
	}}

	s, err := Build(context.Background(), items, now, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(items, nil)

	updated, err := rec.Record(context.Background(), s, true, 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if updated.LessonStatus != grammar.InProgress {
		t.Errorf("LessonStatus = %v, want In Progress", updated.LessonStatus)
	}
	if updated.Stage != grammar.StageApprenticeII {
		t.Errorf("Stage = %v, want Apprentice II", updated.Stage)
	}
	if fmt.Sprint(updated.CorrectCount, updated.IncorrectCount) != "1 0" {
		t.Errorf("counts = %d/%d, want 1/0", updated.CorrectCount, updated.IncorrectCount)
	}
}
