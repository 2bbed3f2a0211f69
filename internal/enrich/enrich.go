// Package enrich fills gaps in item content (usage notes, example
// sentences) using an LLM. Purely additive: existing fields are never
// overwritten, and scheduling state is untouched.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/llm"
	"github.com/walterairs/just-remember/internal/store"
)

const systemPrompt = `You are a Japanese language reference assistant.
Given a grammar pattern and its English meaning, supply a short usage
note and one natural example sentence with its English translation.
Keep the usage note under 15 words.`

// suggestionSchema is the structured output contract.
var suggestionSchema = &llm.Schema{
	Name: "grammar-enrichment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"usage":      map[string]any{"type": "string"},
			"example_ja": map[string]any{"type": "string"},
			"example_en": map[string]any{"type": "string"},
		},
		"required":             []any{"usage", "example_ja", "example_en"},
		"additionalProperties": false,
	},
}

// Suggestion is the proposed content for one item.
type Suggestion struct {
	Usage     string `json:"usage"`
	ExampleJA string `json:"example_ja"`
	ExampleEN string `json:"example_en"`
}

// Report summarizes one enrichment run.
type Report struct {
	Suggested int
	Applied   int
	Failed    int
}

// Service drives enrichment runs.
type Service struct {
	items    store.ItemRepo
	provider llm.Provider
}

// NewService creates an enrichment Service.
func NewService(items store.ItemRepo, provider llm.Provider) *Service {
	return &Service{items: items, provider: provider}
}

// Candidates returns items missing a usage note or first example.
func (s *Service) Candidates(ctx context.Context) ([]grammar.Item, error) {
	all, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	var out []grammar.Item
	for _, item := range all {
		if item.Usage == "" || item.Example1JA == "" {
			out = append(out, item)
		}
	}
	return out, nil
}

// Suggest asks the provider for content for one item.
func (s *Service) Suggest(ctx context.Context, item grammar.Item) (*Suggestion, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Prompt: fmt.Sprintf("Pattern: %s\nMeaning: %s", item.Term, item.Meaning),
		Schema: suggestionSchema,
		// Short factual content; keep it tight and near-deterministic.
		MaxTokens:   256,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest for item %d: %w", item.ID, err)
	}

	var sug Suggestion
	if err := json.Unmarshal(resp.Content, &sug); err != nil {
		return nil, fmt.Errorf("decode suggestion for item %d: %w", item.ID, err)
	}
	return &sug, nil
}

// Apply writes a suggestion into the item's empty fields and persists.
func (s *Service) Apply(ctx context.Context, item grammar.Item, sug Suggestion) error {
	if item.Usage == "" {
		item.Usage = sug.Usage
	}
	if item.Example1JA == "" {
		item.Example1JA = sug.ExampleJA
		item.Example1EN = sug.ExampleEN
	} else if item.Example2JA == "" {
		item.Example2JA = sug.ExampleJA
		item.Example2EN = sug.ExampleEN
	}
	if err := s.items.Update(ctx, item); err != nil {
		return fmt.Errorf("apply enrichment to item %d: %w", item.ID, err)
	}
	return nil
}

// Run enriches every candidate. With apply false it only counts what
// would be suggested. Per-item failures are counted and skipped.
func (s *Service) Run(ctx context.Context, apply bool) (Report, error) {
	candidates, err := s.Candidates(ctx)
	if err != nil {
		return Report{}, err
	}

	var report Report
	for _, item := range candidates {
		sug, err := s.Suggest(ctx, item)
		if err != nil {
			report.Failed++
			continue
		}
		report.Suggested++
		if !apply {
			continue
		}
		if err := s.Apply(ctx, item, *sug); err != nil {
			report.Failed++
			continue
		}
		report.Applied++
	}
	return report, nil
}
