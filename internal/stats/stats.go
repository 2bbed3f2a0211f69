// Package stats derives learning statistics from the item store.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/store"
)

// Summary is a point-in-time view of overall learning progress.
type Summary struct {
	TotalItems   int
	TotalReviews int
	TotalCorrect int
	Accuracy     float64 // percentage, 0 when no reviews yet
	DueNow       int
	StageCounts  map[grammar.Stage]int
	Lessons      map[grammar.LessonStatus]int
}

// Service computes summaries.
type Service struct {
	items store.ItemRepo
}

// NewService creates a stats Service.
func NewService(items store.ItemRepo) *Service {
	return &Service{items: items}
}

// Summarize computes the summary in a single pass over all items.
// Every stage and lesson status appears in the count maps, zeroes
// included, so display layers need no existence checks.
func (s *Service) Summarize(ctx context.Context, now time.Time) (*Summary, error) {
	all, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	sum := &Summary{
		StageCounts: make(map[grammar.Stage]int, grammar.NumStages),
		Lessons:     make(map[grammar.LessonStatus]int, 3),
	}
	for _, stage := range grammar.Stages() {
		sum.StageCounts[stage] = 0
	}
	for _, status := range grammar.LessonStatuses() {
		sum.Lessons[status] = 0
	}

	for _, item := range all {
		sum.TotalItems++
		sum.TotalReviews += item.TotalAnswers()
		sum.TotalCorrect += item.CorrectCount
		sum.StageCounts[item.Stage]++
		sum.Lessons[item.LessonStatus]++

		if item.Reviewable() && item.NextReviewAt != nil && !item.NextReviewAt.After(now) {
			sum.DueNow++
		}
	}

	if sum.TotalReviews > 0 {
		sum.Accuracy = float64(sum.TotalCorrect) / float64(sum.TotalReviews) * 100
	}
	return sum, nil
}
