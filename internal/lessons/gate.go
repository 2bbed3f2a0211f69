// Package lessons implements the gate that feeds imported items into
// the review pipeline, a capped batch at a time.
package lessons

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/store"
)

// Gate triggers.
const (
	TriggerManual = "manual"
	TriggerAuto   = "auto"
	TriggerImport = "import"
)

// Gate promotes Not Started items to Available. It holds no state of
// its own; item records and settings live in the store.
type Gate struct {
	items    store.ItemRepo
	settings store.SettingsRepo
	events   store.EventRepo
}

// NewGate creates a Gate. events may be nil to skip event logging.
func NewGate(items store.ItemRepo, settings store.SettingsRepo, events store.EventRepo) *Gate {
	return &Gate{items: items, settings: settings, events: events}
}

// Start promotes up to limit Not Started items, oldest first (id
// order), marking each Available and due immediately. Returns the
// promoted items in the same order. Fewer eligible items than limit
// is not an error; the result is simply shorter.
func (g *Gate) Start(ctx context.Context, limit int, now time.Time) ([]grammar.Item, error) {
	return g.start(ctx, limit, now, TriggerManual)
}

// AutoStart runs the gate with the configured daily limit if the
// auto-start setting is enabled. The trigger records what prompted
// the run (TriggerAuto on launch, TriggerImport after an import).
// Returns nil without error when auto-start is off.
func (g *Gate) AutoStart(ctx context.Context, now time.Time, trigger string) ([]grammar.Item, error) {
	enabled, err := g.autoStartEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, nil
	}

	limit, err := g.DailyLimit(ctx)
	if err != nil {
		return nil, err
	}
	return g.start(ctx, limit, now, trigger)
}

func (g *Gate) start(ctx context.Context, limit int, now time.Time, trigger string) ([]grammar.Item, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("lesson limit must be positive, got %d", limit)
	}

	eligible, err := g.items.ListByLessonStatus(ctx, grammar.NotStarted)
	if err != nil {
		return nil, fmt.Errorf("list not started items: %w", err)
	}
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	started := make([]grammar.Item, 0, len(eligible))
	for _, item := range eligible {
		due := now
		item.LessonStatus = grammar.Available
		item.NextReviewAt = &due
		if err := g.items.Update(ctx, item); err != nil {
			return started, fmt.Errorf("promote item %d: %w", item.ID, err)
		}
		started = append(started, item)
	}

	if g.events != nil && len(started) > 0 {
		_ = g.events.AppendLessonEvent(ctx, store.LessonEventData{
			Started: len(started),
			Limit:   limit,
			Trigger: trigger,
		})
	}

	return started, nil
}

// DailyLimit returns the configured daily lesson limit.
func (g *Gate) DailyLimit(ctx context.Context) (int, error) {
	raw, err := g.settings.Get(ctx, store.SettingDailyLessonLimit, store.DefaultDailyLessonLimit)
	if err != nil {
		return 0, err
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid %s setting %q", store.SettingDailyLessonLimit, raw)
	}
	return limit, nil
}

func (g *Gate) autoStartEnabled(ctx context.Context) (bool, error) {
	raw, err := g.settings.Get(ctx, store.SettingAutoStartLessons, store.DefaultAutoStartLessons)
	if err != nil {
		return false, err
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s setting %q", store.SettingAutoStartLessons, raw)
	}
	return enabled, nil
}

// Summary returns the item count per lesson status.
func (g *Gate) Summary(ctx context.Context) (map[grammar.LessonStatus]int, error) {
	return g.items.LessonSummary(ctx)
}
