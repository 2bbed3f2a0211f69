package grammar

import (
	"fmt"
	"time"
)

// Stage is one position on the spaced repetition ladder. The order of
// the constants defines the promotion direction; Burned is terminal.
type Stage int

const (
	StageApprenticeI Stage = iota
	StageApprenticeII
	StageApprenticeIII
	StageApprenticeIV
	StageGuruI
	StageGuruII
	StageMaster
	StageEnlightened
	StageBurned
)

// NumStages is the total number of stages on the ladder.
const NumStages = 9

var stageLabels = [NumStages]string{
	"Apprentice I",
	"Apprentice II",
	"Apprentice III",
	"Apprentice IV",
	"Guru I",
	"Guru II",
	"Master",
	"Enlightened",
	"Burned",
}

// stageIntervals is the review interval per stage. Burned has no
// interval; it is never reviewed again.
var stageIntervals = [NumStages - 1]time.Duration{
	4 * time.Hour,
	8 * time.Hour,
	24 * time.Hour,
	48 * time.Hour,
	168 * time.Hour,  // 1 week
	336 * time.Hour,  // 2 weeks
	720 * time.Hour,  // 1 month
	2880 * time.Hour, // 4 months
}

// String returns the display label, which is also the persisted form.
func (s Stage) String() string {
	if s < 0 || int(s) >= NumStages {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageLabels[s]
}

// ParseStage maps a stored label back to a Stage. Unknown labels are
// an error; they indicate a corrupt or incompatible database.
func ParseStage(label string) (Stage, error) {
	for i, l := range stageLabels {
		if l == label {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stage label %q", label)
}

// Interval returns the review interval for the stage. ok is false for
// Burned, which has none.
func (s Stage) Interval() (d time.Duration, ok bool) {
	if s < 0 || int(s) >= len(stageIntervals) {
		return 0, false
	}
	return stageIntervals[s], true
}

// Terminal reports whether the stage is the end of the ladder.
func (s Stage) Terminal() bool {
	return s == StageBurned
}

// Stages returns all stages in ladder order.
func Stages() []Stage {
	all := make([]Stage, NumStages)
	for i := range all {
		all[i] = Stage(i)
	}
	return all
}
