package grammar

import "fmt"

// LessonStatus tracks whether an item has entered the review pool.
// Progression is Not Started -> Available -> In Progress; it only
// moves backwards through an explicit bulk reset.
type LessonStatus int

const (
	// NotStarted items have been imported but are invisible to the
	// scheduler until the lesson gate promotes them.
	NotStarted LessonStatus = iota

	// Available items passed the gate but have not been answered yet.
	Available

	// InProgress items have at least one recorded answer.
	InProgress
)

var statusLabels = [...]string{
	"Not Started",
	"Available",
	"In Progress",
}

func (s LessonStatus) String() string {
	if s < 0 || int(s) >= len(statusLabels) {
		return fmt.Sprintf("LessonStatus(%d)", int(s))
	}
	return statusLabels[s]
}

// ParseLessonStatus maps a stored label back to a LessonStatus.
func ParseLessonStatus(label string) (LessonStatus, error) {
	for i, l := range statusLabels {
		if l == label {
			return LessonStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lesson status label %q", label)
}

// LessonStatuses returns all statuses in progression order.
func LessonStatuses() []LessonStatus {
	return []LessonStatus{NotStarted, Available, InProgress}
}
