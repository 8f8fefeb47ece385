package tracker

import (
	"math"
	"sort"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

// CurrentStreak counts consecutive effective dates with at least one
// completion, walking backward from today. Today itself only counts once it
// has a completion; an empty today does not break a streak that ran through
// yesterday.
func CurrentStreak(days []store.DayRecord, today string) int {
	done := make(map[string]bool, len(days))
	for _, d := range days {
		if d.CompletedTasks > 0 {
			done[d.Date] = true
		}
	}

	streak := 0
	cursor := today
	if !done[cursor] {
		cursor = PrevDate(cursor)
	}
	for done[cursor] {
		streak++
		cursor = PrevDate(cursor)
	}
	return streak
}

// LongestStreak is the longest run of consecutive completion days on record,
// never less than the current streak.
func LongestStreak(days []store.DayRecord, today string) int {
	var dates []string
	for _, d := range days {
		if d.CompletedTasks > 0 {
			dates = append(dates, d.Date)
		}
	}
	sort.Strings(dates)

	longest := CurrentStreak(days, today)
	run := 0
	for i, date := range dates {
		if i > 0 && daysApart(dates[i-1], date) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CompletionRate is the all-time percentage of completed over total tasks,
// rounded to the nearest integer. Zero when nothing has been tracked.
func CompletionRate(days []store.DayRecord) int {
	var completed, total int
	for _, d := range days {
		completed += d.CompletedTasks
		total += d.TotalTasks
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// HeatmapValue is the completion count for date, zero when the ledger has no
// record for it.
func HeatmapValue(days []store.DayRecord, date string) int {
	if i := findDay(days, date); i >= 0 {
		return days[i].CompletedTasks
	}
	return 0
}
