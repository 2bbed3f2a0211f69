package enrich

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/llm"
)

type memItems struct {
	items map[int]grammar.Item
}

func (m *memItems) Create(_ context.Context, item grammar.Item) (int, error) {
	id := len(m.items) + 1
	item.ID = id
	m.items[id] = item
	return id, nil
}
func (m *memItems) Update(_ context.Context, item grammar.Item) error {
	m.items[item.ID] = item
	return nil
}
func (m *memItems) Get(_ context.Context, id int) (*grammar.Item, error) {
	it := m.items[id]
	return &it, nil
}
func (m *memItems) ListAll(_ context.Context) ([]grammar.Item, error) {
	out := make([]grammar.Item, 0, len(m.items))
	for id := 1; id <= len(m.items); id++ {
		out = append(out, m.items[id])
	}
	return out, nil
}
func (m *memItems) ListByStage(_ context.Context, _ grammar.Stage) ([]grammar.Item, error) {
	return nil, nil
}
func (m *memItems) ListByLessonStatus(_ context.Context, _ grammar.LessonStatus) ([]grammar.Item, error) {
	return nil, nil
}
func (m *memItems) ListDue(_ context.Context, _ time.Time) ([]grammar.Item, error) {
	return nil, nil
}
func (m *memItems) LessonSummary(_ context.Context) (map[grammar.LessonStatus]int, error) {
	return nil, nil
}
func (m *memItems) ResetAll(_ context.Context) error                       { return nil }
func (m *memItems) MakeAllDue(_ context.Context, _ time.Time) (int, error) { return 0, nil }

func suggestionJSON(t *testing.T, usage, ja, en string) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(map[string]string{
		"usage": usage, "example_ja": ja, "example_en": en,
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCandidates_OnlyIncompleteItems(t *testing.T) {
	items := &memItems{items: map[int]grammar.Item{
		1: {ID: 1, Term: "〜ながら", Usage: "verb stem + ながら", Example1JA: "歩きながら話す。"},
		2: {ID: 2, Term: "〜そうだ", Usage: ""},
		3: {ID: 3, Term: "〜ばかり", Usage: "verb た-form + ばかり", Example1JA: ""},
	}}
	svc := NewService(items, llm.NewMockProvider())

	got, err := svc.Candidates(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("candidates = %d, want 2", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("candidate ids = %d, %d, want 2, 3", got[0].ID, got[1].ID)
	}
}

func TestRun_AppliesWithoutOverwriting(t *testing.T) {
	items := &memItems{items: map[int]grammar.Item{
		1: {ID: 1, Term: "〜そうだ", Meaning: "looks like", Usage: "existing note"},
	}}
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: suggestionJSON(t, "generated note", "雨が降りそうだ。", "It looks like rain."),
	})
	svc := NewService(items, provider)

	report, err := svc.Run(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if report.Applied != 1 || report.Failed != 0 {
		t.Fatalf("report = %+v", report)
	}

	got := items.items[1]
	if got.Usage != "existing note" {
		t.Errorf("Usage overwritten: %q", got.Usage)
	}
	if got.Example1JA != "雨が降りそうだ。" || got.Example1EN != "It looks like rain." {
		t.Errorf("example not filled: %q / %q", got.Example1JA, got.Example1EN)
	}
}

func TestRun_DryRunDoesNotPersist(t *testing.T) {
	items := &memItems{items: map[int]grammar.Item{
		1: {ID: 1, Term: "〜つもり", Meaning: "intend to"},
	}}
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: suggestionJSON(t, "verb plain + つもり", "行くつもりだ。", "I intend to go."),
	})
	svc := NewService(items, provider)

	report, err := svc.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if report.Suggested != 1 || report.Applied != 0 {
		t.Fatalf("report = %+v", report)
	}
	if items.items[1].Usage != "" {
		t.Error("dry run modified the item")
	}
}

func TestRun_ProviderFailureCounts(t *testing.T) {
	items := &memItems{items: map[int]grammar.Item{
		1: {ID: 1, Term: "〜わけだ", Meaning: "no wonder"},
		2: {ID: 2, Term: "〜ばかり", Meaning: "just did"},
	}}
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: llm.ErrNotConfigured},
		llm.MockResponse{Content: suggestionJSON(t, "verb た-form + ばかり", "食べたばかりだ。", "I just ate.")},
	)
	svc := NewService(items, provider)

	report, err := svc.Run(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed != 1 || report.Applied != 1 {
		t.Errorf("report = %+v, want Failed=1 Applied=1", report)
	}
}
