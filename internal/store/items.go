package store

import (
	"context"
	"fmt"
	"time"

	"github.com/walterairs/just-remember/ent"
	"github.com/walterairs/just-remember/ent/grammaritem"
	"github.com/walterairs/just-remember/internal/grammar"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Create(ctx context.Context, item grammar.Item) (int, error) {
	builder := r.client.GrammarItem.Create().
		SetTerm(item.Term).
		SetReading(item.Reading).
		SetUsage(item.Usage).
		SetMeaning(item.Meaning).
		SetExample1Ja(item.Example1JA).
		SetExample1En(item.Example1EN).
		SetExample2Ja(item.Example2JA).
		SetExample2En(item.Example2EN).
		SetNote(item.Note).
		SetStage(item.Stage.String()).
		SetLessonStatus(item.LessonStatus.String()).
		SetCorrectCount(item.CorrectCount).
		SetIncorrectCount(item.IncorrectCount).
		SetNillableNextReviewAt(item.NextReviewAt).
		SetNillableLastReviewedAt(item.LastReviewedAt)

	if item.CreatedAt != nil {
		builder = builder.SetCreatedAt(*item.CreatedAt)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}
	return created.ID, nil
}

func (r *itemRepo) Update(ctx context.Context, item grammar.Item) error {
	builder := r.client.GrammarItem.UpdateOneID(item.ID).
		SetTerm(item.Term).
		SetReading(item.Reading).
		SetUsage(item.Usage).
		SetMeaning(item.Meaning).
		SetExample1Ja(item.Example1JA).
		SetExample1En(item.Example1EN).
		SetExample2Ja(item.Example2JA).
		SetExample2En(item.Example2EN).
		SetNote(item.Note).
		SetStage(item.Stage.String()).
		SetLessonStatus(item.LessonStatus.String()).
		SetCorrectCount(item.CorrectCount).
		SetIncorrectCount(item.IncorrectCount)

	if item.NextReviewAt != nil {
		builder = builder.SetNextReviewAt(*item.NextReviewAt)
	} else {
		builder = builder.ClearNextReviewAt()
	}
	if item.LastReviewedAt != nil {
		builder = builder.SetLastReviewedAt(*item.LastReviewedAt)
	} else {
		builder = builder.ClearLastReviewedAt()
	}

	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("update item %d: %w", item.ID, ErrNotFound)
		}
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	return nil
}

func (r *itemRepo) Get(ctx context.Context, id int) (*grammar.Item, error) {
	e, err := r.client.GrammarItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	item, err := itemFromEnt(e)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) ListAll(ctx context.Context) ([]grammar.Item, error) {
	rows, err := r.client.GrammarItem.Query().
		Order(ent.Asc(grammaritem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return itemsFromEnt(rows)
}

func (r *itemRepo) ListByStage(ctx context.Context, stage grammar.Stage) ([]grammar.Item, error) {
	rows, err := r.client.GrammarItem.Query().
		Where(grammaritem.StageEQ(stage.String())).
		Order(ent.Asc(grammaritem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items by stage: %w", err)
	}
	return itemsFromEnt(rows)
}

func (r *itemRepo) ListByLessonStatus(ctx context.Context, status grammar.LessonStatus) ([]grammar.Item, error) {
	rows, err := r.client.GrammarItem.Query().
		Where(grammaritem.LessonStatusEQ(status.String())).
		Order(ent.Asc(grammaritem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items by lesson status: %w", err)
	}
	return itemsFromEnt(rows)
}

func (r *itemRepo) ListDue(ctx context.Context, now time.Time) ([]grammar.Item, error) {
	rows, err := r.client.GrammarItem.Query().
		Where(
			grammaritem.NextReviewAtNotNil(),
			grammaritem.NextReviewAtLTE(now),
			grammaritem.StageNEQ(grammar.StageBurned.String()),
		).
		Order(
			ent.Asc(grammaritem.FieldNextReviewAt),
			ent.Asc(grammaritem.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due items: %w", err)
	}
	return itemsFromEnt(rows)
}

func (r *itemRepo) LessonSummary(ctx context.Context) (map[grammar.LessonStatus]int, error) {
	summary := make(map[grammar.LessonStatus]int, 3)
	for _, status := range grammar.LessonStatuses() {
		count, err := r.client.GrammarItem.Query().
			Where(grammaritem.LessonStatusEQ(status.String())).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %v items: %w", status, err)
		}
		summary[status] = count
	}
	return summary, nil
}

func (r *itemRepo) ResetAll(ctx context.Context) error {
	_, err := r.client.GrammarItem.Update().
		SetStage(grammar.StageApprenticeI.String()).
		SetLessonStatus(grammar.NotStarted.String()).
		SetCorrectCount(0).
		SetIncorrectCount(0).
		ClearNextReviewAt().
		ClearLastReviewedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reset all items: %w", err)
	}
	return nil
}

func (r *itemRepo) MakeAllDue(ctx context.Context, now time.Time) (int, error) {
	n, err := r.client.GrammarItem.Update().
		Where(
			grammaritem.LessonStatusIn(
				grammar.Available.String(),
				grammar.InProgress.String(),
			),
			grammaritem.StageNEQ(grammar.StageBurned.String()),
		).
		SetNextReviewAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("make all due: %w", err)
	}
	return n, nil
}

// itemFromEnt converts a persisted row to a domain item. Unknown
// stage or status labels fail here, at the deserialization boundary,
// so scheduling logic only ever sees valid values.
func itemFromEnt(e *ent.GrammarItem) (grammar.Item, error) {
	stage, err := grammar.ParseStage(e.Stage)
	if err != nil {
		return grammar.Item{}, fmt.Errorf("item %d: %w", e.ID, err)
	}
	status, err := grammar.ParseLessonStatus(e.LessonStatus)
	if err != nil {
		return grammar.Item{}, fmt.Errorf("item %d: %w", e.ID, err)
	}

	createdAt := e.CreatedAt
	return grammar.Item{
		ID:             e.ID,
		Term:           e.Term,
		Reading:        e.Reading,
		Usage:          e.Usage,
		Meaning:        e.Meaning,
		Example1JA:     e.Example1Ja,
		Example1EN:     e.Example1En,
		Example2JA:     e.Example2Ja,
		Example2EN:     e.Example2En,
		Note:           e.Note,
		Stage:          stage,
		LessonStatus:   status,
		NextReviewAt:   e.NextReviewAt,
		CorrectCount:   e.CorrectCount,
		IncorrectCount: e.IncorrectCount,
		LastReviewedAt: e.LastReviewedAt,
		CreatedAt:      &createdAt,
	}, nil
}

func itemsFromEnt(rows []*ent.GrammarItem) ([]grammar.Item, error) {
	items := make([]grammar.Item, 0, len(rows))
	for _, e := range rows {
		item, err := itemFromEnt(e)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
