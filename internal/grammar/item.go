package grammar

import "time"

// Item is one grammar pattern with its content payload and scheduling
// state. The scheduler treats the payload as opaque; it is carried
// through every transformation unchanged.
//
// Items are plain values. Transformations return a fresh copy and the
// caller persists it explicitly through the store.
type Item struct {
	ID int

	// Content payload.
	Term      string
	Reading   string
	Usage     string
	Meaning   string
	Example1JA string
	Example1EN string
	Example2JA string
	Example2EN string
	Note       string

	// Scheduling state.
	Stage          Stage
	LessonStatus   LessonStatus
	NextReviewAt   *time.Time
	CorrectCount   int
	IncorrectCount int
	LastReviewedAt *time.Time
	CreatedAt      *time.Time
}

// Reviewable reports whether the item can appear in a review session:
// it has passed the lesson gate and is not retired.
func (it Item) Reviewable() bool {
	if it.Stage.Terminal() {
		return false
	}
	return it.LessonStatus == Available || it.LessonStatus == InProgress
}

// TotalAnswers returns the number of recorded outcomes.
func (it Item) TotalAnswers() int {
	return it.CorrectCount + it.IncorrectCount
}
