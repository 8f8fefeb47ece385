package tracker

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

// Priorities accepted by NewTask; anything else is normalized to medium.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

func normalizePriority(p string) string {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	default:
		return PriorityMedium
	}
}

// NewTask builds a task record with a fresh id. Returns ok=false when text
// trims to empty; the input layer is expected to prevent that, the store
// enforces it regardless.
func NewTask(text, priority string, repeating bool, now time.Time) (store.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return store.Task{}, false
	}
	return store.Task{
		ID:          uuid.NewString(),
		Text:        text,
		Priority:    normalizePriority(priority),
		Timestamp:   now.UnixMilli(),
		IsRepeating: repeating,
	}, true
}

// addTask inserts at the head: the list is most-recent-first.
func addTask(tasks []store.Task, t store.Task) []store.Task {
	return append([]store.Task{t}, tasks...)
}

// toggleTask flips completion for id. The completion timestamp is set only on
// the false→true transition and kept when toggled back off. Unknown ids are
// a silent no-op.
func toggleTask(tasks []store.Task, id string, now time.Time) []store.Task {
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Completed = !tasks[i].Completed
		if tasks[i].Completed {
			tasks[i].LastCompleted = now.UnixMilli()
		}
		break
	}
	return tasks
}

func deleteTask(tasks []store.Task, id string) []store.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// updateTaskText replaces the text in place. Blank replacements are rejected.
func updateTaskText(tasks []store.Task, id, text string) ([]store.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return tasks, false
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Text = text
			return tasks, true
		}
	}
	return tasks, false
}

// pruneToRepeating is the day-changed transform: only repeating tasks
// survive, all reset to incomplete. Idempotent; applying it twice yields the
// same list as applying it once.
func pruneToRepeating(tasks []store.Task) []store.Task {
	var out []store.Task
	for _, t := range tasks {
		if !t.IsRepeating {
			continue
		}
		t.Completed = false
		out = append(out, t)
	}
	return out
}

func moveTask(tasks []store.Task, from, to int) []store.Task {
	if from < 0 || from >= len(tasks) || to < 0 || to >= len(tasks) || from == to {
		return tasks
	}
	t := tasks[from]
	tasks = append(tasks[:from], tasks[from+1:]...)
	tasks = append(tasks[:to], append([]store.Task{t}, tasks[to:]...)...)
	return tasks
}
