package tracker

import (
	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

func findDay(days []store.DayRecord, date string) int {
	for i := range days {
		if days[i].Date == date {
			return i
		}
	}
	return -1
}

// mergeArchive unions two archive lists by task id, keeping the first-seen
// entry for each id so history recorded earlier in the day wins.
func mergeArchive(existing, incoming []store.ArchivedTask) []store.ArchivedTask {
	seen := make(map[string]bool, len(existing)+len(incoming))
	var out []store.ArchivedTask
	for _, a := range existing {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	for _, a := range incoming {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

// upsertDay recomputes the ledger record for date from the current task list
// and merges it over any existing record for that date. The totalTasks
// denominator counts repeating tasks only during day initialization, and
// every live task otherwise. Initialization overwrites the archive instead
// of merging: the new day starts clean.
func upsertDay(days []store.DayRecord, date string, tasks []store.Task, initializing bool) []store.DayRecord {
	rec := store.DayRecord{
		Date:                date,
		CompletedTaskIDs:    []string{},
		RepeatingTaskIDs:    []string{},
		NonRepeatingTaskIDs: []string{},
	}

	var completedNow []store.ArchivedTask
	for _, t := range tasks {
		if t.IsRepeating {
			rec.RepeatingTaskIDs = append(rec.RepeatingTaskIDs, t.ID)
		} else {
			rec.NonRepeatingTaskIDs = append(rec.NonRepeatingTaskIDs, t.ID)
		}
		if t.Completed {
			rec.CompletedTaskIDs = append(rec.CompletedTaskIDs, t.ID)
			completedNow = append(completedNow, store.ArchivedTask{
				ID:       t.ID,
				Text:     t.Text,
				Priority: t.Priority,
			})
		}
	}
	rec.CompletedTasks = len(rec.CompletedTaskIDs)
	if initializing {
		rec.TotalTasks = len(rec.RepeatingTaskIDs)
	} else {
		rec.TotalTasks = len(rec.RepeatingTaskIDs) + len(rec.NonRepeatingTaskIDs)
	}

	i := findDay(days, date)
	if i < 0 {
		rec.CompletedTaskTexts = mergeArchive(nil, completedNow)
		return append(days, rec)
	}

	if initializing {
		rec.CompletedTaskTexts = mergeArchive(nil, completedNow)
	} else {
		rec.CompletedTaskTexts = mergeArchive(days[i].CompletedTaskTexts, completedNow)
		rec.Remark = days[i].Remark
	}
	days[i] = rec
	return days
}

// ensureDay appends an empty record for date when none exists, so a remark
// can be attached to a past day that saw no activity.
func ensureDay(days []store.DayRecord, date string) []store.DayRecord {
	if findDay(days, date) >= 0 {
		return days
	}
	return append(days, store.DayRecord{
		Date:                date,
		CompletedTaskIDs:    []string{},
		RepeatingTaskIDs:    []string{},
		NonRepeatingTaskIDs: []string{},
	})
}

// attachRemark sets (or clears) the free-text annotation on the record for
// date. It is a no-op when no record exists.
func attachRemark(days []store.DayRecord, date, text string) ([]store.DayRecord, bool) {
	i := findDay(days, date)
	if i < 0 {
		return days, false
	}
	days[i].Remark = text
	return days, true
}
