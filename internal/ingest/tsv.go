package ingest

import (
	"strings"
	"unicode"
)

// parseTSV extracts grammar payloads from the tab-separated export
// format: a header line, then one line per pattern with the term in
// the first column and loosely double-space-delimited fields in the
// second. Field extraction is heuristic; lines that don't fit are
// skipped and counted.
func parseTSV(content string) (payloads []payload, skipped int) {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, ok := parseLine(line)
		if !ok {
			skipped++
			continue
		}
		payloads = append(payloads, p)
	}
	return payloads, skipped
}

func parseLine(line string) (payload, bool) {
	parts := strings.SplitN(line, "\t", 2)
	if len(parts) < 2 {
		return payload{}, false
	}
	term := strings.TrimSpace(parts[0])
	if term == "" {
		return payload{}, false
	}

	var fields []string
	for _, f := range strings.Split(parts[1], "  ") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	p := payload{Term: term, Reading: term}
	if len(fields) > 0 {
		p.Usage = fields[0]
	}
	if len(fields) > 1 {
		p.Meaning = fields[1]
	}

	if len(fields) <= 2 {
		return p, true
	}

	// Pair up example sentences: Japanese ones are recognized by
	// their kana, each English one attaches to the last Japanese.
	for _, f := range fields[2:] {
		switch {
		case containsKana(f):
			if p.Example1JA == "" {
				p.Example1JA = f
			} else if p.Example2JA == "" {
				p.Example2JA = f
			}
		case p.Example1JA != "" && p.Example1EN == "":
			p.Example1EN = f
		case p.Example2JA != "" && p.Example2EN == "":
			p.Example2EN = f
		}
	}

	return p, true
}

func containsKana(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}
