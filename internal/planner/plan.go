package planner

// TaskType is one of the five generated assignment kinds.
type TaskType string

const (
	TaskFocusedDrill TaskType = "focused-drill"
	TaskMixedDrill   TaskType = "mixed-drill"
	TaskMock         TaskType = "mock"
	TaskFlashcard    TaskType = "flashcard"
	TaskReview       TaskType = "review"
)

// TaskMix is the per-type partition of a cycle's task count.
type TaskMix struct {
	FocusedDrill int
	MixedDrill   int
	Mock         int
	Flashcard    int
	Review       int
}

// Total returns the sum of all sub-counts.
func (m TaskMix) Total() int {
	return m.FocusedDrill + m.MixedDrill + m.Mock + m.Flashcard + m.Review
}

// Expand flattens the mix into an ordered task-type list, one entry per
// task, in canonical type order.
func (m TaskMix) Expand() []TaskType {
	out := make([]TaskType, 0, m.Total())
	appendN := func(t TaskType, n int) {
		for i := 0; i < n; i++ {
			out = append(out, t)
		}
	}
	appendN(TaskFocusedDrill, m.FocusedDrill)
	appendN(TaskMixedDrill, m.MixedDrill)
	appendN(TaskMock, m.Mock)
	appendN(TaskFlashcard, m.Flashcard)
	appendN(TaskReview, m.Review)
	return out
}
