package planner

// Daily-minute thresholds for the task-count lookup.
const (
	MinDailyTasks = 3
	MaxDailyTasks = 7
)

// TaskCountForBudget maps a daily time budget in minutes to the number of
// tasks a cycle should hold:
//
//	<30 → 3, 30–59 → 4, 60–89 → 5, 90–119 → 6, ≥120 → 7
func TaskCountForBudget(dailyMinutes int) int {
	switch {
	case dailyMinutes < 30:
		return 3
	case dailyMinutes < 60:
		return 4
	case dailyMinutes < 90:
		return 5
	case dailyMinutes < 120:
		return 6
	default:
		return 7
	}
}
