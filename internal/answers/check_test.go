package answers

import "testing"

func TestAcceptableAnswers_ExpandsSeparatedParts(t *testing.T) {
	got := AcceptableAnswers("too; also")

	want := map[string]bool{"too; also": true, "too": true, "also": true}
	for _, a := range got {
		if !want[a] {
			t.Errorf("unexpected acceptable answer %q", a)
		}
		delete(want, a)
	}
	for missing := range want {
		t.Errorf("missing acceptable answer %q", missing)
	}
}

func TestAcceptableAnswers_StripsPlaceholders(t *testing.T) {
	got := AcceptableAnswers("～ is/am/are ～")

	found := false
	for _, a := range got {
		if a == "is/am/are" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected placeholder-stripped variant, got %v", got)
	}
}

func TestAcceptableAnswers_SkipsShortFragments(t *testing.T) {
	for _, a := range AcceptableAnswers("at, during, etc.") {
		if a == "at" {
			t.Error("two-character fragment should be dropped")
		}
	}
}

func TestCheck_ExactAndNearMatches(t *testing.T) {
	tests := []struct {
		answer  string
		meaning string
		want    bool
	}{
		{"too", "too; also", true},
		{"also", "too; also", true},
		{"go to", "go to ～ come to ～", true},
		{"come to", "go to ～ come to ～", true},
		{"during", "at, during, etc.", true},
		{"to do completely", "to do completely; to do by accident", true},
		{"to do completly", "to do completely; to do by accident", true}, // typo tolerated
		{"banana", "too; also", false},
		{"purple monkeys", "go to ～ come to ～", false},
	}
	for _, tt := range tests {
		got := Check(tt.answer, tt.meaning)
		if got.Correct != tt.want {
			t.Errorf("Check(%q, %q) = correct %v (score %d, matched %q), want %v",
				tt.answer, tt.meaning, got.Correct, got.Score, got.Matched, tt.want)
		}
	}
}

func TestCheck_EmptyAnswerIsIncorrect(t *testing.T) {
	got := Check("", "too; also")
	if got.Correct {
		t.Error("empty answer graded correct")
	}
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}

	if Check("   ", "too; also").Correct {
		t.Error("whitespace answer graded correct")
	}
}

func TestCheck_CaseInsensitive(t *testing.T) {
	if !Check("ALSO", "too; also").Correct {
		t.Error("uppercase answer should match")
	}
}
