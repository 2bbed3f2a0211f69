package grammar

import (
	"testing"
	"time"
)

func TestStageLabels_RoundTrip(t *testing.T) {
	for _, stage := range Stages() {
		got, err := ParseStage(stage.String())
		if err != nil {
			t.Fatalf("ParseStage(%q): %v", stage.String(), err)
		}
		if got != stage {
			t.Errorf("ParseStage(%q) = %v, want %v", stage.String(), got, stage)
		}
	}
}

func TestParseStage_UnknownLabel(t *testing.T) {
	if _, err := ParseStage("Apprentice V"); err == nil {
		t.Error("expected error for unknown stage label")
	}
	if _, err := ParseStage(""); err == nil {
		t.Error("expected error for empty stage label")
	}
}

func TestStageIntervals(t *testing.T) {
	tests := []struct {
		stage Stage
		want  time.Duration
	}{
		{StageApprenticeI, 4 * time.Hour},
		{StageApprenticeII, 8 * time.Hour},
		{StageApprenticeIII, 24 * time.Hour},
		{StageApprenticeIV, 48 * time.Hour},
		{StageGuruI, 168 * time.Hour},
		{StageGuruII, 336 * time.Hour},
		{StageMaster, 720 * time.Hour},
		{StageEnlightened, 2880 * time.Hour},
	}
	for _, tt := range tests {
		got, ok := tt.stage.Interval()
		if !ok {
			t.Fatalf("%v: Interval() not ok", tt.stage)
		}
		if got != tt.want {
			t.Errorf("%v: Interval() = %v, want %v", tt.stage, got, tt.want)
		}
	}

	if _, ok := StageBurned.Interval(); ok {
		t.Error("Burned should have no interval")
	}
}

func TestLessonStatusLabels_RoundTrip(t *testing.T) {
	for _, status := range LessonStatuses() {
		got, err := ParseLessonStatus(status.String())
		if err != nil {
			t.Fatalf("ParseLessonStatus(%q): %v", status.String(), err)
		}
		if got != status {
			t.Errorf("ParseLessonStatus(%q) = %v, want %v", status.String(), got, status)
		}
	}
}

func TestParseLessonStatus_UnknownLabel(t *testing.T) {
	if _, err := ParseLessonStatus("Paused"); err == nil {
		t.Error("expected error for unknown status label")
	}
}

func TestItemReviewable(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"not started", Item{Stage: StageApprenticeI, LessonStatus: NotStarted}, false},
		{"available", Item{Stage: StageApprenticeI, LessonStatus: Available}, true},
		{"in progress", Item{Stage: StageGuruI, LessonStatus: InProgress}, true},
		{"burned", Item{Stage: StageBurned, LessonStatus: InProgress}, false},
	}
	for _, tt := range tests {
		if got := tt.item.Reviewable(); got != tt.want {
			t.Errorf("%s: Reviewable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
