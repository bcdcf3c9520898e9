package planner

import "testing"

func TestAllocateTaskMix_WorkedExample(t *testing.T) {
	// total=5 triggers the mock; no weak skills, so no focused drills;
	// mixed = min(ceil(4×0.4), 2) = 2; the last 2 split 1/1.
	mix := AllocateTaskMix(5, 10, 0)
	want := TaskMix{Mock: 1, FocusedDrill: 0, MixedDrill: 2, Flashcard: 1, Review: 1}
	if mix != want {
		t.Errorf("AllocateTaskMix(5, 10, 0) = %+v, want %+v", mix, want)
	}
}

func TestAllocateTaskMix_MockTriggers(t *testing.T) {
	tests := []struct {
		name  string
		total int
		days  int
		want  int
	}{
		{"small cycle, far exam", 4, 30, 0},
		{"large cycle", 5, 30, 1},
		{"exam within a week", 3, 7, 1},
		{"exam past a week", 3, 8, 0},
		{"both triggers", 7, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mix := AllocateTaskMix(tt.total, tt.days, 2)
			if mix.Mock != tt.want {
				t.Errorf("mock = %d, want %d", mix.Mock, tt.want)
			}
		})
	}
}

func TestAllocateTaskMix_FocusedDrillCaps(t *testing.T) {
	// total=7, days=30: mock=1, remainder 6, ceil(6×0.4)=3.
	mix := AllocateTaskMix(7, 30, 10)
	if mix.FocusedDrill != 3 {
		t.Errorf("focused = %d, want cap of 3", mix.FocusedDrill)
	}

	// Weak-skill count binds below the cap.
	mix = AllocateTaskMix(7, 30, 1)
	if mix.FocusedDrill != 1 {
		t.Errorf("focused = %d, want 1 (bound by weak skills)", mix.FocusedDrill)
	}
}

func TestAllocateTaskMix_MixedDrillSeesPostFocusedRemainder(t *testing.T) {
	// total=7, days=30, weak=3: mock=1, focused=3, remainder 3,
	// mixed = min(ceil(3×0.4), 2) = min(2, 2) = 2, then 1 left → review.
	mix := AllocateTaskMix(7, 30, 3)
	want := TaskMix{Mock: 1, FocusedDrill: 3, MixedDrill: 2, Flashcard: 0, Review: 1}
	if mix != want {
		t.Errorf("AllocateTaskMix(7, 30, 3) = %+v, want %+v", mix, want)
	}
}

func TestAllocateTaskMix_ReviewAbsorbsOddUnit(t *testing.T) {
	// total=3, days=30, weak=0: no mock, no focused,
	// mixed = min(ceil(3×0.4), 2) = 2, 1 left → flashcard=0, review=1.
	mix := AllocateTaskMix(3, 30, 0)
	if mix.Flashcard != 0 || mix.Review != 1 {
		t.Errorf("split = flashcard %d / review %d, want 0/1", mix.Flashcard, mix.Review)
	}
}

// The five sub-counts sum to the input total across the whole valid grid.
func TestAllocateTaskMix_Conservation(t *testing.T) {
	for total := 3; total <= 7; total++ {
		for _, days := range []int{1, 7, 8, 30, 120} {
			for _, weak := range []int{0, 1, 2, 3, 5, 12} {
				mix := AllocateTaskMix(total, days, weak)
				if got := mix.Total(); got != total {
					t.Errorf("AllocateTaskMix(%d, %d, %d) sums to %d: %+v",
						total, days, weak, got, mix)
				}
				if mix.FocusedDrill < 0 || mix.MixedDrill < 0 || mix.Mock < 0 ||
					mix.Flashcard < 0 || mix.Review < 0 {
					t.Errorf("negative count in %+v", mix)
				}
			}
		}
	}
}

func TestTaskMix_Expand(t *testing.T) {
	mix := TaskMix{FocusedDrill: 2, MixedDrill: 1, Mock: 1, Flashcard: 1, Review: 2}
	tasks := mix.Expand()
	if len(tasks) != mix.Total() {
		t.Fatalf("expanded %d tasks, want %d", len(tasks), mix.Total())
	}
	want := []TaskType{
		TaskFocusedDrill, TaskFocusedDrill, TaskMixedDrill,
		TaskMock, TaskFlashcard, TaskReview, TaskReview,
	}
	for i := range want {
		if tasks[i] != want[i] {
			t.Errorf("tasks[%d] = %q, want %q", i, tasks[i], want[i])
		}
	}
}

func TestTaskCountForBudget(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{0, 3}, {29, 3}, {30, 4}, {59, 4}, {60, 5},
		{89, 5}, {90, 6}, {119, 6}, {120, 7}, {300, 7},
	}
	for _, tt := range tests {
		if got := TaskCountForBudget(tt.minutes); got != tt.want {
			t.Errorf("TaskCountForBudget(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}
