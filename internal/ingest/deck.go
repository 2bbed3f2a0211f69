package ingest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// deckSchema validates a JSON deck: an array of explicit payload
// objects. Only term and meaning are required.
var deckSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term":        map[string]any{"type": "string", "minLength": 1},
			"reading":     map[string]any{"type": "string"},
			"usage":       map[string]any{"type": "string"},
			"meaning":     map[string]any{"type": "string", "minLength": 1},
			"example1_ja": map[string]any{"type": "string"},
			"example1_en": map[string]any{"type": "string"},
			"example2_ja": map[string]any{"type": "string"},
			"example2_en": map[string]any{"type": "string"},
			"note":        map[string]any{"type": "string"},
		},
		"required":             []any{"term", "meaning"},
		"additionalProperties": false,
	},
}

var (
	compiledDeckSchema *jsonschema.Schema
	compileDeckOnce    sync.Once
	compileDeckErr     error
)

func getDeckSchema() (*jsonschema.Schema, error) {
	compileDeckOnce.Do(func() {
		defBytes, err := json.Marshal(deckSchema)
		if err != nil {
			compileDeckErr = fmt.Errorf("marshal deck schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileDeckErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://deck.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileDeckErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledDeckSchema, compileDeckErr = c.Compile(schemaURL)
	})
	return compiledDeckSchema, compileDeckErr
}

// deckEntry mirrors the JSON deck object layout.
type deckEntry struct {
	Term       string `json:"term"`
	Reading    string `json:"reading"`
	Usage      string `json:"usage"`
	Meaning    string `json:"meaning"`
	Example1JA string `json:"example1_ja"`
	Example1EN string `json:"example1_en"`
	Example2JA string `json:"example2_ja"`
	Example2EN string `json:"example2_en"`
	Note       string `json:"note"`
}

// parseDeck checks each entry against the deck schema (wrapped in a
// one-element array, since the schema describes a deck) and skips the
// ones that fail. A deck that is not a JSON array at all is an error.
func parseDeck(data []byte) (payloads []payload, skipped int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("parse deck: %w", err)
	}

	schema, err := getDeckSchema()
	if err != nil {
		return nil, 0, err
	}

	for _, entry := range raw {
		var parsed any
		if err := json.Unmarshal(entry, &parsed); err != nil {
			skipped++
			continue
		}
		if err := schema.Validate([]any{parsed}); err != nil {
			skipped++
			continue
		}

		var e deckEntry
		if err := json.Unmarshal(entry, &e); err != nil {
			skipped++
			continue
		}
		payloads = append(payloads, payload{
			Term:       e.Term,
			Reading:    e.Reading,
			Usage:      e.Usage,
			Meaning:    e.Meaning,
			Example1JA: e.Example1JA,
			Example1EN: e.Example1EN,
			Example2JA: e.Example2JA,
			Example2EN: e.Example2EN,
			Note:       e.Note,
		})
	}
	return payloads, skipped, nil
}
