// Package answers grades free-text answers against an item's meaning
// with fuzzy string matching. The scheduler only ever sees the
// resulting boolean.
package answers

import (
	"strings"
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Threshold is the minimum match score (0-100) counted as correct.
const Threshold = 75

// separators that break a meaning into independently acceptable parts.
var separators = []string{",", ";", ".", "!", "?"}

// Result is the outcome of grading one answer.
type Result struct {
	Correct bool
	Score   int
	Matched string // the acceptable answer that scored best
}

// Check grades a free-text answer against a meaning. Empty input is
// always incorrect.
func Check(answer, meaning string) Result {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return Result{}
	}

	best := Result{}
	for _, acceptable := range AcceptableAnswers(meaning) {
		score := bestScore(answer, acceptable)
		if score > best.Score {
			best.Score = score
			best.Matched = acceptable
		}
	}

	best.Correct = best.Score >= Threshold
	return best
}

// bestScore takes the highest of three fuzzy metrics so that short
// answers, substrings, and reordered phrasings all get a fair shot.
func bestScore(answer, acceptable string) int {
	score := fuzzy.Ratio(answer, acceptable)
	if s := fuzzy.PartialRatio(answer, acceptable); s > score {
		score = s
	}
	if s := fuzzy.TokenSortRatio(answer, acceptable); s > score {
		score = s
	}
	return score
}

// AcceptableAnswers expands a meaning into the list of strings an
// answer is matched against: the full meaning, a placeholder-stripped
// simplification, and each separator-delimited part longer than two
// characters.
func AcceptableAnswers(meaning string) []string {
	var answers []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			answers = append(answers, s)
		}
	}

	lower := strings.ToLower(strings.TrimSpace(meaning))
	add(lower)

	simplified := strings.ReplaceAll(lower, "～ is", "")
	simplified = strings.ReplaceAll(simplified, "～ am", "")
	simplified = strings.ReplaceAll(simplified, "～ are", "")
	simplified = strings.TrimSpace(strings.ReplaceAll(simplified, "～", ""))
	add(simplified)

	for _, sep := range separators {
		if !strings.Contains(lower, sep) {
			continue
		}
		for _, part := range strings.Split(lower, sep) {
			clean := strings.TrimSpace(strings.ReplaceAll(part, "～", ""))
			if utf8.RuneCountInString(clean) > 2 {
				add(clean)
			}
		}
	}

	return answers
}
