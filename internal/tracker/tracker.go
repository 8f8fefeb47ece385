// Package tracker implements the day rollover and task ledger core: an
// in-memory task list and per-day completion ledger, mirrored to the
// persistence store on every mutation, with a clock-driven policy that
// decides when a new day has started and what survives into it.
package tracker

import (
	"strconv"
	"time"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

// Tracker owns the live task list and the daily ledger. All methods run on
// the UI event loop; there is no internal locking. Persistence is
// best-effort: a failed save is reported to the caller and the in-memory
// state stays authoritative for the rest of the session.
type Tracker struct {
	store        *store.Store
	boundaryHour int

	tasks []store.Task
	days  []store.DayRecord

	// currentDate is the in-memory effective-date reference every clock
	// check compares against.
	currentDate string

	// loaded gates clock checks so a tick delivered before Load cannot
	// prune a task list that was never read.
	loaded bool
}

func New(s *store.Store) *Tracker {
	return &Tracker{
		store:        s,
		boundaryHour: s.GetSettingInt("day_boundary_hour", DefaultBoundaryHour),
	}
}

// BoundaryHour returns the configured day-boundary hour.
func (tr *Tracker) BoundaryHour() int { return tr.boundaryHour }

// SetBoundaryHour updates the boundary hour and persists it. The new value
// applies from the next clock check.
func (tr *Tracker) SetBoundaryHour(hour int) error {
	if hour < 0 || hour > 23 {
		hour = DefaultBoundaryHour
	}
	tr.boundaryHour = hour
	return tr.store.SetSetting("day_boundary_hour", strconv.Itoa(hour))
}

// Today returns the effective date the tracker currently considers "today".
func (tr *Tracker) Today() string { return tr.currentDate }

// Tasks returns the live task list, most recent first.
func (tr *Tracker) Tasks() []store.Task { return tr.tasks }

// Days returns the daily ledger.
func (tr *Tracker) Days() []store.DayRecord { return tr.days }

// Load reads persisted state and applies the startup rollover decision: when
// the persisted last-saved date is missing or differs from the current
// effective date, non-repeating tasks are discarded and repeating ones reset,
// otherwise everything loads unchanged.
func (tr *Tracker) Load(now time.Time) error {
	tasks, err := tr.store.LoadTasks()
	if err != nil {
		return err
	}
	days, err := tr.store.LoadDays()
	if err != nil {
		return err
	}
	lastSaved, err := tr.store.LastSavedDate()
	if err != nil {
		return err
	}

	today := EffectiveDate(now, tr.boundaryHour)
	tr.days = days

	if lastSaved == "" || lastSaved != today {
		tr.tasks = pruneToRepeating(tasks)
		tr.days = upsertDay(tr.days, today, tr.tasks, true)
		tr.currentDate = today
		tr.loaded = true
		return tr.persistAll()
	}

	tr.tasks = tasks
	tr.currentDate = today
	tr.loaded = true
	return nil
}

// CheckClock evaluates every rollover condition against the sampled clock.
// It is the single entry point for the periodic tick, the focus-regain
// signal, and the pre-mutation check, so the conditions cannot race each
// other: the transform it applies is idempotent.
//
// A forward date change rolls the day over. A backward change (the user
// turned the system clock back) only moves the in-memory reference — it must
// never destroy tasks. Returns true when a rollover was applied.
func (tr *Tracker) CheckClock(now time.Time) (bool, error) {
	if !tr.loaded {
		return false, nil
	}

	date := EffectiveDate(now, tr.boundaryHour)
	switch {
	case date == tr.currentDate:
		return false, nil
	case date > tr.currentDate:
		return true, tr.rollover(tr.currentDate, date)
	default:
		tr.currentDate = date
		return false, nil
	}
}

// rollover closes out prevDate and initializes nextDate: the previous day's
// record absorbs the final completion snapshot (including non-repeating
// tasks about to be discarded), then the task list is pruned to repeating
// tasks and today's record is created fresh.
func (tr *Tracker) rollover(prevDate, nextDate string) error {
	tr.days = upsertDay(tr.days, prevDate, tr.tasks, false)
	tr.tasks = pruneToRepeating(tr.tasks)
	tr.days = upsertDay(tr.days, nextDate, tr.tasks, true)
	tr.currentDate = nextDate
	return tr.persistAll()
}

// Add creates a task at the head of the list. Blank text is rejected without
// mutation.
func (tr *Tracker) Add(text, priority string, repeating bool, now time.Time) error {
	if _, err := tr.CheckClock(now); err != nil {
		return err
	}
	t, ok := NewTask(text, priority, repeating, now)
	if !ok {
		return nil
	}
	tr.tasks = addTask(tr.tasks, t)
	return tr.recomputeAndPersist()
}

// Toggle flips completion for id; unknown ids are a no-op.
func (tr *Tracker) Toggle(id string, now time.Time) error {
	if _, err := tr.CheckClock(now); err != nil {
		return err
	}
	tr.tasks = toggleTask(tr.tasks, id, now)
	return tr.recomputeAndPersist()
}

// Delete removes the task. Its completion, if any, survives in the day
// record's archive.
func (tr *Tracker) Delete(id string, now time.Time) error {
	if _, err := tr.CheckClock(now); err != nil {
		return err
	}
	tr.tasks = deleteTask(tr.tasks, id)
	return tr.recomputeAndPersist()
}

// UpdateText replaces a task's text. Text content is not ledger-tracked, so
// no recompute happens.
func (tr *Tracker) UpdateText(id, text string) error {
	tasks, ok := updateTaskText(tr.tasks, id, text)
	if !ok {
		return nil
	}
	tr.tasks = tasks
	return tr.store.SaveTasks(tr.tasks)
}

// Move shifts the task at index from to index to; used by manual reordering.
// No ledger effect.
func (tr *Tracker) Move(from, to int) error {
	tr.tasks = moveTask(tr.tasks, from, to)
	return tr.store.SaveTasks(tr.tasks)
}

// AttachRemark annotates the ledger record for date, creating a placeholder
// record for past days that saw no activity.
func (tr *Tracker) AttachRemark(date, text string) error {
	tr.days = ensureDay(tr.days, date)
	tr.days, _ = attachRemark(tr.days, date, text)
	return tr.store.SaveDays(tr.days)
}

// Streak returns the current and longest streaks.
func (tr *Tracker) Streak() (current, longest int) {
	return CurrentStreak(tr.days, tr.currentDate), LongestStreak(tr.days, tr.currentDate)
}

// Rate returns the all-time completion rate percentage.
func (tr *Tracker) Rate() int { return CompletionRate(tr.days) }

// TodayRecord returns today's ledger record, or a zero record when none
// exists yet.
func (tr *Tracker) TodayRecord() store.DayRecord {
	if i := findDay(tr.days, tr.currentDate); i >= 0 {
		return tr.days[i]
	}
	return store.DayRecord{Date: tr.currentDate}
}

func (tr *Tracker) recomputeAndPersist() error {
	tr.days = upsertDay(tr.days, tr.currentDate, tr.tasks, false)
	return tr.persistAll()
}

func (tr *Tracker) persistAll() error {
	if err := tr.store.SaveTasks(tr.tasks); err != nil {
		return err
	}
	if err := tr.store.SaveDays(tr.days); err != nil {
		return err
	}
	return tr.store.SetLastSavedDate(tr.currentDate)
}
