package lessons

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/store"
)

// memItems is a minimal in-memory ItemRepo for tests.
type memItems struct {
	items  map[int]grammar.Item
	nextID int
}

func newMemItems() *memItems {
	return &memItems{items: make(map[int]grammar.Item), nextID: 1}
}

func (m *memItems) Create(_ context.Context, item grammar.Item) (int, error) {
	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = item
	return item.ID, nil
}

func (m *memItems) Update(_ context.Context, item grammar.Item) error {
	if _, ok := m.items[item.ID]; !ok {
		return fmt.Errorf("update item %d: %w", item.ID, store.ErrNotFound)
	}
	m.items[item.ID] = item
	return nil
}

func (m *memItems) Get(_ context.Context, id int) (*grammar.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *memItems) ListAll(_ context.Context) ([]grammar.Item, error) {
	return m.sorted(func(grammar.Item) bool { return true }), nil
}

func (m *memItems) ListByStage(_ context.Context, stage grammar.Stage) ([]grammar.Item, error) {
	return m.sorted(func(it grammar.Item) bool { return it.Stage == stage }), nil
}

func (m *memItems) ListByLessonStatus(_ context.Context, status grammar.LessonStatus) ([]grammar.Item, error) {
	return m.sorted(func(it grammar.Item) bool { return it.LessonStatus == status }), nil
}

func (m *memItems) ListDue(_ context.Context, now time.Time) ([]grammar.Item, error) {
	due := m.sorted(func(it grammar.Item) bool {
		if it.Stage.Terminal() || it.NextReviewAt == nil {
			return false
		}
		return !it.NextReviewAt.After(now)
	})
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(*due[j].NextReviewAt)
	})
	return due, nil
}

func (m *memItems) LessonSummary(_ context.Context) (map[grammar.LessonStatus]int, error) {
	summary := map[grammar.LessonStatus]int{}
	for _, status := range grammar.LessonStatuses() {
		summary[status] = 0
	}
	for _, it := range m.items {
		summary[it.LessonStatus]++
	}
	return summary, nil
}

func (m *memItems) ResetAll(_ context.Context) error {
	for id, it := range m.items {
		it.LessonStatus = grammar.NotStarted
		it.Stage = grammar.StageApprenticeI
		it.NextReviewAt = nil
		it.CorrectCount = 0
		it.IncorrectCount = 0
		it.LastReviewedAt = nil
		m.items[id] = it
	}
	return nil
}

func (m *memItems) MakeAllDue(_ context.Context, now time.Time) (int, error) {
	n := 0
	for id, it := range m.items {
		if !it.Reviewable() {
			continue
		}
		due := now
		it.NextReviewAt = &due
		m.items[id] = it
		n++
	}
	return n, nil
}

func (m *memItems) sorted(keep func(grammar.Item) bool) []grammar.Item {
	var out []grammar.Item
	for _, it := range m.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// memSettings is a minimal in-memory SettingsRepo for tests.
type memSettings map[string]string

func (m memSettings) Get(_ context.Context, key, def string) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m memSettings) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

// memEvents records appended events for assertions.
type memEvents struct {
	reviews []store.ReviewEventData
	lessons []store.LessonEventData
}

func (m *memEvents) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	m.reviews = append(m.reviews, data)
	return nil
}

func (m *memEvents) AppendLessonEvent(_ context.Context, data store.LessonEventData) error {
	m.lessons = append(m.lessons, data)
	return nil
}

func seedNotStarted(t *testing.T, items *memItems, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := items.Create(context.Background(), grammar.Item{
			Term:         fmt.Sprintf("term-%d", i+1),
			Meaning:      fmt.Sprintf("meaning %d", i+1),
			Stage:        grammar.StageApprenticeI,
			LessonStatus: grammar.NotStarted,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestStart_PromotesUpToLimitInIDOrder(t *testing.T) {
	items := newMemItems()
	seedNotStarted(t, items, 5)
	gate := NewGate(items, memSettings{}, nil)

	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	started, err := gate.Start(context.Background(), 3, now)
	if err != nil {
		t.Fatal(err)
	}

	if len(started) != 3 {
		t.Fatalf("started %d items, want 3", len(started))
	}
	for i, item := range started {
		if item.ID != i+1 {
			t.Errorf("started[%d].ID = %d, want %d", i, item.ID, i+1)
		}
		if item.LessonStatus != grammar.Available {
			t.Errorf("started[%d].LessonStatus = %v, want Available", i, item.LessonStatus)
		}
		if item.NextReviewAt == nil || !item.NextReviewAt.Equal(now) {
			t.Errorf("started[%d].NextReviewAt = %v, want %v", i, item.NextReviewAt, now)
		}
	}

	// Re-invoking with a generous limit picks up the remaining two.
	rest, err := gate.Start(context.Background(), 10, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 2 {
		t.Fatalf("second call started %d items, want 2", len(rest))
	}
	if rest[0].ID != 4 || rest[1].ID != 5 {
		t.Errorf("second call ids = %d, %d, want 4, 5", rest[0].ID, rest[1].ID)
	}
}

func TestStart_ZeroEligible(t *testing.T) {
	gate := NewGate(newMemItems(), memSettings{}, nil)

	started, err := gate.Start(context.Background(), 5, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(started) != 0 {
		t.Errorf("started %d items, want 0", len(started))
	}
}

func TestStart_RejectsNonPositiveLimit(t *testing.T) {
	gate := NewGate(newMemItems(), memSettings{}, nil)

	if _, err := gate.Start(context.Background(), 0, time.Now()); err == nil {
		t.Error("expected error for limit 0")
	}
	if _, err := gate.Start(context.Background(), -3, time.Now()); err == nil {
		t.Error("expected error for negative limit")
	}
}

func TestStart_PersistsPromotions(t *testing.T) {
	items := newMemItems()
	seedNotStarted(t, items, 20)
	gate := NewGate(items, memSettings{}, nil)

	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	started, err := gate.Start(context.Background(), 15, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(started) != 15 {
		t.Fatalf("started %d items, want 15", len(started))
	}

	summary, err := gate.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary[grammar.NotStarted] != 5 {
		t.Errorf("Not Started = %d, want 5", summary[grammar.NotStarted])
	}
	if summary[grammar.Available] != 15 {
		t.Errorf("Available = %d, want 15", summary[grammar.Available])
	}
}

func TestStart_AppendsLessonEvent(t *testing.T) {
	items := newMemItems()
	seedNotStarted(t, items, 2)
	events := &memEvents{}
	gate := NewGate(items, memSettings{}, events)

	if _, err := gate.Start(context.Background(), 5, time.Now()); err != nil {
		t.Fatal(err)
	}

	if len(events.lessons) != 1 {
		t.Fatalf("appended %d lesson events, want 1", len(events.lessons))
	}
	ev := events.lessons[0]
	if ev.Started != 2 || ev.Limit != 5 || ev.Trigger != TriggerManual {
		t.Errorf("event = %+v, want started=2 limit=5 trigger=manual", ev)
	}
}

func TestAutoStart_UsesConfiguredLimit(t *testing.T) {
	items := newMemItems()
	seedNotStarted(t, items, 20)
	settings := memSettings{store.SettingDailyLessonLimit: "15"}
	gate := NewGate(items, settings, nil)

	started, err := gate.AutoStart(context.Background(), time.Now(), TriggerAuto)
	if err != nil {
		t.Fatal(err)
	}
	if len(started) != 15 {
		t.Errorf("auto-started %d items, want 15", len(started))
	}
}

func TestAutoStart_RecordsTrigger(t *testing.T) {
	tests := []struct {
		name    string
		trigger string
	}{
		{"launch", TriggerAuto},
		{"after import", TriggerImport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newMemItems()
			seedNotStarted(t, items, 3)
			events := &memEvents{}
			gate := NewGate(items, memSettings{}, events)

			if _, err := gate.AutoStart(context.Background(), time.Now(), tt.trigger); err != nil {
				t.Fatal(err)
			}

			if len(events.lessons) != 1 {
				t.Fatalf("appended %d lesson events, want 1", len(events.lessons))
			}
			if got := events.lessons[0].Trigger; got != tt.trigger {
				t.Errorf("recorded trigger %q, want %q", got, tt.trigger)
			}
		})
	}
}

func TestAutoStart_DisabledIsNoOp(t *testing.T) {
	items := newMemItems()
	seedNotStarted(t, items, 5)
	settings := memSettings{store.SettingAutoStartLessons: "false"}
	gate := NewGate(items, settings, nil)

	started, err := gate.AutoStart(context.Background(), time.Now(), TriggerAuto)
	if err != nil {
		t.Fatal(err)
	}
	if started != nil {
		t.Errorf("auto-start returned %d items, want none", len(started))
	}

	summary, _ := gate.Summary(context.Background())
	if summary[grammar.NotStarted] != 5 {
		t.Errorf("Not Started = %d, want untouched 5", summary[grammar.NotStarted])
	}
}

func TestAutoStart_InvalidLimitSetting(t *testing.T) {
	settings := memSettings{store.SettingDailyLessonLimit: "lots"}
	gate := NewGate(newMemItems(), settings, nil)

	if _, err := gate.AutoStart(context.Background(), time.Now(), TriggerAuto); err == nil {
		t.Error("expected error for malformed limit setting")
	}
}
