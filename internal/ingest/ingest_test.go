package ingest

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/store"
)

// captureItems records created items.
type captureItems struct {
	created []grammar.Item
	failOn  string // term whose Create fails, for skip tests
}

func (c *captureItems) Create(_ context.Context, item grammar.Item) (int, error) {
	if c.failOn != "" && item.Term == c.failOn {
		return 0, context.DeadlineExceeded
	}
	item.ID = len(c.created) + 1
	c.created = append(c.created, item)
	return item.ID, nil
}

func (c *captureItems) Update(_ context.Context, _ grammar.Item) error { return nil }
func (c *captureItems) Get(_ context.Context, _ int) (*grammar.Item, error) {
	return nil, nil
}
func (c *captureItems) ListAll(_ context.Context) ([]grammar.Item, error) { return nil, nil }
func (c *captureItems) ListByStage(_ context.Context, _ grammar.Stage) ([]grammar.Item, error) {
	return nil, nil
}
func (c *captureItems) ListByLessonStatus(_ context.Context, _ grammar.LessonStatus) ([]grammar.Item, error) {
	return nil, nil
}
func (c *captureItems) ListDue(_ context.Context, _ time.Time) ([]grammar.Item, error) {
	return nil, nil
}
func (c *captureItems) LessonSummary(_ context.Context) (map[grammar.LessonStatus]int, error) {
	return nil, nil
}
func (c *captureItems) ResetAll(_ context.Context) error                      { return nil }
func (c *captureItems) MakeAllDue(_ context.Context, _ time.Time) (int, error) { return 0, nil }

var _ store.ItemRepo = (*captureItems)(nil)

const sampleTSV = "Grammar\tDetails\n" +
	"〜てしまう\tverb て-form + しまう  to do completely; to do by accident  宿題を忘れてしまった。  I forgot my homework.\n" +
	"malformed line without a tab\n" +
	"〜ながら\tverb stem + ながら  while doing ～\n"

func TestImportTSV(t *testing.T) {
	items := &captureItems{}
	im := NewImporter(items)
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	report, err := im.ImportTSV(context.Background(), []byte(sampleTSV), now)
	if err != nil {
		t.Fatal(err)
	}

	if report.Created != 2 {
		t.Errorf("Created = %d, want 2", report.Created)
	}
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}

	first := items.created[0]
	if first.Term != "〜てしまう" {
		t.Errorf("Term = %q", first.Term)
	}
	if first.Usage != "verb て-form + しまう" {
		t.Errorf("Usage = %q", first.Usage)
	}
	if first.Meaning != "to do completely; to do by accident" {
		t.Errorf("Meaning = %q", first.Meaning)
	}
	if first.Example1JA != "宿題を忘れてしまった。" {
		t.Errorf("Example1JA = %q", first.Example1JA)
	}
	if first.Example1EN != "I forgot my homework." {
		t.Errorf("Example1EN = %q", first.Example1EN)
	}
}

func TestImportTSV_InitialSchedulingState(t *testing.T) {
	items := &captureItems{}
	im := NewImporter(items)
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	if _, err := im.ImportTSV(context.Background(), []byte(sampleTSV), now); err != nil {
		t.Fatal(err)
	}

	for _, item := range items.created {
		if item.Stage != grammar.StageApprenticeI {
			t.Errorf("%q: Stage = %v, want Apprentice I", item.Term, item.Stage)
		}
		if item.LessonStatus != grammar.NotStarted {
			t.Errorf("%q: LessonStatus = %v, want Not Started", item.Term, item.LessonStatus)
		}
		if item.NextReviewAt != nil {
			t.Errorf("%q: NextReviewAt = %v, want nil", item.Term, item.NextReviewAt)
		}
		if item.CreatedAt == nil || !item.CreatedAt.Equal(now) {
			t.Errorf("%q: CreatedAt = %v, want %v", item.Term, item.CreatedAt, now)
		}
	}
}

func TestImportTSV_StorageFailureCountsAsSkip(t *testing.T) {
	items := &captureItems{failOn: "〜ながら"}
	im := NewImporter(items)

	report, err := im.ImportTSV(context.Background(), []byte(sampleTSV), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if report.Created != 1 || report.Skipped != 2 {
		t.Errorf("report = %+v, want Created=1 Skipped=2", report)
	}
}

func TestImportJSON(t *testing.T) {
	deck := `[
		{"term": "〜ばかり", "meaning": "just did; nothing but", "usage": "verb た-form + ばかり"},
		{"term": "", "meaning": "empty term is invalid"},
		{"term": "〜そうだ", "meaning": "looks like; I heard", "note": "two senses", "unknown_field": true},
		{"term": "〜つもり", "meaning": "intend to"}
	]`

	items := &captureItems{}
	im := NewImporter(items)

	report, err := im.ImportJSON(context.Background(), []byte(deck), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if report.Created != 2 {
		t.Errorf("Created = %d, want 2", report.Created)
	}
	if report.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", report.Skipped)
	}

	var terms []string
	for _, item := range items.created {
		terms = append(terms, item.Term)
	}
	sort.Strings(terms)
	if terms[0] != "〜つもり" || terms[1] != "〜ばかり" {
		t.Errorf("imported terms = %v", terms)
	}
}

func TestImportJSON_NotAnArray(t *testing.T) {
	im := NewImporter(&captureItems{})
	if _, err := im.ImportJSON(context.Background(), []byte(`{"term": "x"}`), time.Now()); err == nil {
		t.Error("expected error for non-array deck")
	}
}

func TestParseLine_ExamplePairing(t *testing.T) {
	line := "〜たり〜たり\tverb た-form + り  do things like ～  本を読んだり、音楽を聞いたりする。  I do things like reading books and listening to music.  週末は寝たり食べたりした。  On the weekend I slept and ate."
	p, ok := parseLine(line)
	if !ok {
		t.Fatal("parseLine failed")
	}
	if p.Example2JA != "週末は寝たり食べたりした。" {
		t.Errorf("Example2JA = %q", p.Example2JA)
	}
	if p.Example2EN != "On the weekend I slept and ate." {
		t.Errorf("Example2EN = %q", p.Example2EN)
	}
}
