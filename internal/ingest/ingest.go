// Package ingest turns external content files into Not Started items.
// Import is best effort: malformed records are counted and skipped,
// never aborting the batch.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/store"
)

// Report summarizes one import run.
type Report struct {
	Created int
	Skipped int
}

// Importer writes parsed payloads into the item store.
type Importer struct {
	items store.ItemRepo
}

// NewImporter creates an Importer.
func NewImporter(items store.ItemRepo) *Importer {
	return &Importer{items: items}
}

// payload is one parsed content record before it becomes an item.
type payload struct {
	Term       string
	Reading    string
	Usage      string
	Meaning    string
	Example1JA string
	Example1EN string
	Example2JA string
	Example2EN string
	Note       string
}

// insert persists payloads as fresh Not Started items. Individual
// failures are counted as skips.
func (im *Importer) insert(ctx context.Context, now time.Time, payloads []payload, report *Report) error {
	for _, p := range payloads {
		created := now
		item := grammar.Item{
			Term:         p.Term,
			Reading:      p.Reading,
			Usage:        p.Usage,
			Meaning:      p.Meaning,
			Example1JA:   p.Example1JA,
			Example1EN:   p.Example1EN,
			Example2JA:   p.Example2JA,
			Example2EN:   p.Example2EN,
			Note:         p.Note,
			Stage:        grammar.StageApprenticeI,
			LessonStatus: grammar.NotStarted,
			CreatedAt:    &created,
		}
		if _, err := im.items.Create(ctx, item); err != nil {
			report.Skipped++
			continue
		}
		report.Created++
	}
	return nil
}

// ImportTSV parses tab-separated grammar content and stores each row
// as a new item.
func (im *Importer) ImportTSV(ctx context.Context, data []byte, now time.Time) (Report, error) {
	payloads, skipped := parseTSV(string(data))
	report := Report{Skipped: skipped}
	if err := im.insert(ctx, now, payloads, &report); err != nil {
		return report, fmt.Errorf("import tsv: %w", err)
	}
	return report, nil
}

// ImportJSON parses and validates a JSON deck and stores each entry
// as a new item.
func (im *Importer) ImportJSON(ctx context.Context, data []byte, now time.Time) (Report, error) {
	payloads, skipped, err := parseDeck(data)
	if err != nil {
		return Report{}, err
	}
	report := Report{Skipped: skipped}
	if err := im.insert(ctx, now, payloads, &report); err != nil {
		return report, fmt.Errorf("import json: %w", err)
	}
	return report, nil
}
