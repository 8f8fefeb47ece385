package tracker

import (
	"testing"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

func day(date string, completed, total int) store.DayRecord {
	return store.DayRecord{Date: date, CompletedTasks: completed, TotalTasks: total}
}

// ============================================================
// Streaks
// ============================================================

func TestCurrentStreakConsecutive(t *testing.T) {
	days := []store.DayRecord{
		day("2025-07-24", 1, 3),
		day("2025-07-25", 2, 3),
		day("2025-07-26", 3, 3),
	}
	if got := CurrentStreak(days, "2025-07-26"); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestCurrentStreakEmptyTodayDoesNotBreak(t *testing.T) {
	days := []store.DayRecord{
		day("2025-07-24", 1, 3),
		day("2025-07-25", 2, 3),
		day("2025-07-26", 0, 3),
	}
	if got := CurrentStreak(days, "2025-07-26"); got != 2 {
		t.Fatalf("an unfinished today should keep yesterday's streak, got %d", got)
	}
}

func TestCurrentStreakGapResets(t *testing.T) {
	days := []store.DayRecord{
		day("2025-07-23", 2, 2),
		day("2025-07-24", 0, 2),
		day("2025-07-26", 1, 2),
	}
	if got := CurrentStreak(days, "2025-07-26"); got != 1 {
		t.Fatalf("gap should reset the streak, got %d", got)
	}
}

func TestCurrentStreakEmpty(t *testing.T) {
	if got := CurrentStreak(nil, "2025-07-26"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestLongestStreakIgnoresEmptyDays(t *testing.T) {
	days := []store.DayRecord{
		day("2025-07-24", 2, 3),
		day("2025-07-25", 0, 3),
		day("2025-07-26", 3, 3),
	}
	if got := CurrentStreak(days, "2025-07-26"); got != 1 {
		t.Fatalf("expected current 1, got %d", got)
	}
	if got := LongestStreak(days, "2025-07-26"); got != 1 {
		t.Fatalf("a zero-completion day splits runs, got %d", got)
	}
}

func TestLongestStreakFindsPastRun(t *testing.T) {
	days := []store.DayRecord{
		day("2025-07-10", 1, 1),
		day("2025-07-11", 1, 1),
		day("2025-07-12", 1, 1),
		day("2025-07-26", 1, 1),
	}
	if got := LongestStreak(days, "2025-07-26"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestLongestStreakAtLeastCurrent(t *testing.T) {
	days := []store.DayRecord{
		day("2025-07-25", 1, 1),
		day("2025-07-26", 1, 1),
	}
	if got := LongestStreak(days, "2025-07-26"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestLongestStreakAcrossMonthBoundary(t *testing.T) {
	days := []store.DayRecord{
		day("2025-06-30", 1, 1),
		day("2025-07-01", 1, 1),
	}
	if got := LongestStreak(days, "2025-07-26"); got != 2 {
		t.Fatalf("month boundary should not split a run, got %d", got)
	}
}

// ============================================================
// Completion rate
// ============================================================

func TestCompletionRate(t *testing.T) {
	days := []store.DayRecord{
		day("2025-07-25", 2, 4),
		day("2025-07-26", 3, 6),
	}
	if got := CompletionRate(days); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestCompletionRateRounds(t *testing.T) {
	days := []store.DayRecord{day("2025-07-26", 1, 3)}
	if got := CompletionRate(days); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	days = []store.DayRecord{day("2025-07-26", 2, 3)}
	if got := CompletionRate(days); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}

func TestCompletionRateEmpty(t *testing.T) {
	if got := CompletionRate(nil); got != 0 {
		t.Fatalf("expected 0 with no history, got %d", got)
	}
}

// ============================================================
// Heatmap
// ============================================================

func TestHeatmapValue(t *testing.T) {
	days := []store.DayRecord{day("2025-07-26", 4, 5)}
	if got := HeatmapValue(days, "2025-07-26"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := HeatmapValue(days, "2025-07-25"); got != 0 {
		t.Fatalf("missing date should read 0, got %d", got)
	}
}
