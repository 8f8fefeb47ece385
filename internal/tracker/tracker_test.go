package tracker

import (
	"testing"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

func newTestTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s), s
}

// ============================================================
// Startup
// ============================================================

func TestLoadFreshStore(t *testing.T) {
	tr, _ := newTestTracker(t)
	now := at(2025, 7, 26, 12, 0)

	if err := tr.Load(now); err != nil {
		t.Fatalf("load: %v", err)
	}
	if tr.Today() != "2025-07-26" {
		t.Fatalf("unexpected today %s", tr.Today())
	}
	if len(tr.Tasks()) != 0 {
		t.Fatalf("fresh store should have no tasks, got %d", len(tr.Tasks()))
	}
	rec := tr.TodayRecord()
	if rec.Date != "2025-07-26" || rec.TotalTasks != 0 {
		t.Fatalf("expected empty today record, got %+v", rec)
	}
}

func TestLoadSameDayKeepsTasks(t *testing.T) {
	tr, s := newTestTracker(t)
	now := at(2025, 7, 26, 12, 0)

	if err := tr.Load(now); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.Add("report", "high", false, now); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tr.Toggle(tr.Tasks()[0].ID, now); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// A restart within the same effective day loads everything unchanged.
	tr2 := New(s)
	if err := tr2.Load(at(2025, 7, 26, 23, 30)); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(tr2.Tasks()) != 1 || !tr2.Tasks()[0].Completed {
		t.Fatalf("same-day reload should keep tasks, got %+v", tr2.Tasks())
	}
}

func TestLoadNewDayPrunes(t *testing.T) {
	tr, s := newTestTracker(t)
	day1 := at(2025, 7, 26, 12, 0)

	if err := tr.Load(day1); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.Add("gym", "high", true, day1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tr.Add("one-off errand", "low", false, day1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tr.Toggle(tr.Tasks()[1].ID, day1); err != nil { // gym is at index 1 after head insert
		t.Fatalf("toggle: %v", err)
	}

	tr2 := New(s)
	if err := tr2.Load(at(2025, 7, 27, 9, 0)); err != nil {
		t.Fatalf("reload: %v", err)
	}
	tasks := tr2.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("only the repeating task should survive, got %+v", tasks)
	}
	if tasks[0].Text != "gym" || tasks[0].Completed {
		t.Fatalf("repeating task should reset to incomplete, got %+v", tasks[0])
	}

	rec := tr2.TodayRecord()
	if rec.TotalTasks != 1 || rec.CompletedTasks != 0 {
		t.Fatalf("new day record should count repeating only, got %+v", rec)
	}
}

// ============================================================
// Clock checks
// ============================================================

func TestCheckClockSameDayNoop(t *testing.T) {
	tr, _ := newTestTracker(t)
	if err := tr.Load(at(2025, 7, 26, 9, 0)); err != nil {
		t.Fatalf("load: %v", err)
	}
	rolled, err := tr.CheckClock(at(2025, 7, 26, 23, 59))
	if err != nil || rolled {
		t.Fatalf("same day must not roll over (rolled=%v err=%v)", rolled, err)
	}
}

func TestCheckClockForwardRollsOver(t *testing.T) {
	tr, _ := newTestTracker(t)
	day1 := at(2025, 7, 26, 12, 0)
	if err := tr.Load(day1); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.Add("gym", "high", true, day1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tr.Add("errand", "low", false, day1); err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, task := range tr.Tasks() {
		if err := tr.Toggle(task.ID, day1); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}

	rolled, err := tr.CheckClock(at(2025, 7, 27, 6, 0))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !rolled {
		t.Fatal("forward date change should roll over")
	}
	if tr.Today() != "2025-07-27" {
		t.Fatalf("today should advance, got %s", tr.Today())
	}
	if len(tr.Tasks()) != 1 || tr.Tasks()[0].Completed {
		t.Fatalf("expected one reset repeating task, got %+v", tr.Tasks())
	}

	// The closed-out day keeps its final snapshot, archive included.
	days := tr.Days()
	i := findDay(days, "2025-07-26")
	if i < 0 {
		t.Fatal("previous day record missing")
	}
	if days[i].CompletedTasks != 2 || days[i].TotalTasks != 2 {
		t.Fatalf("previous day should close at 2/2, got %+v", days[i])
	}
	if len(days[i].CompletedTaskTexts) != 2 {
		t.Fatalf("archive should hold both completions, got %+v", days[i].CompletedTaskTexts)
	}
}

func TestCheckClockBoundaryHour(t *testing.T) {
	tr, _ := newTestTracker(t)
	if err := tr.Load(at(2025, 7, 26, 23, 0)); err != nil {
		t.Fatalf("load: %v", err)
	}

	// 02:00 the next calendar day is still effective 2025-07-26.
	rolled, err := tr.CheckClock(at(2025, 7, 27, 2, 0))
	if err != nil || rolled {
		t.Fatalf("pre-boundary tick must not roll (rolled=%v err=%v)", rolled, err)
	}

	rolled, err = tr.CheckClock(at(2025, 7, 27, 5, 0))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !rolled || tr.Today() != "2025-07-27" {
		t.Fatalf("05:00 should start the new day, rolled=%v today=%s", rolled, tr.Today())
	}
}

func TestCheckClockIdempotent(t *testing.T) {
	tr, _ := newTestTracker(t)
	day1 := at(2025, 7, 26, 12, 0)
	if err := tr.Load(day1); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.Add("gym", "medium", true, day1); err != nil {
		t.Fatalf("add: %v", err)
	}

	next := at(2025, 7, 27, 9, 0)
	if rolled, _ := tr.CheckClock(next); !rolled {
		t.Fatal("first check should roll")
	}
	tasksAfter := len(tr.Tasks())
	daysAfter := len(tr.Days())

	// A second check at the same instant changes nothing.
	rolled, err := tr.CheckClock(next)
	if err != nil || rolled {
		t.Fatalf("second check must be a no-op (rolled=%v err=%v)", rolled, err)
	}
	if len(tr.Tasks()) != tasksAfter || len(tr.Days()) != daysAfter {
		t.Fatal("repeated check mutated state")
	}
}

func TestCheckClockBackwardGuard(t *testing.T) {
	tr, _ := newTestTracker(t)
	day1 := at(2025, 7, 26, 12, 0)
	if err := tr.Load(day1); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.Add("errand", "low", false, day1); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Clock turned back a day: tasks must survive, reference moves back.
	rolled, err := tr.CheckClock(at(2025, 7, 25, 12, 0))
	if err != nil || rolled {
		t.Fatalf("backward change must not roll (rolled=%v err=%v)", rolled, err)
	}
	if len(tr.Tasks()) != 1 {
		t.Fatal("backward change destroyed tasks")
	}
	if tr.Today() != "2025-07-25" {
		t.Fatalf("reference should follow the clock back, got %s", tr.Today())
	}

	// When the clock recovers, the forward check fires exactly once.
	rolled, err = tr.CheckClock(at(2025, 7, 26, 12, 0))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !rolled || tr.Today() != "2025-07-26" {
		t.Fatalf("recovery should roll forward, rolled=%v today=%s", rolled, tr.Today())
	}
}

func TestCheckClockBeforeLoad(t *testing.T) {
	tr, _ := newTestTracker(t)
	rolled, err := tr.CheckClock(at(2025, 7, 26, 12, 0))
	if err != nil || rolled {
		t.Fatalf("unloaded tracker must ignore clock checks (rolled=%v err=%v)", rolled, err)
	}
}

// ============================================================
// Mutations
// ============================================================

func TestAddBlankRejected(t *testing.T) {
	tr, _ := newTestTracker(t)
	now := at(2025, 7, 26, 12, 0)
	if err := tr.Load(now); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.Add("   ", "high", false, now); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(tr.Tasks()) != 0 {
		t.Fatal("blank text should not create a task")
	}
	if tr.TodayRecord().TotalTasks != 0 {
		t.Fatal("blank add should not touch the ledger")
	}
}

func TestMutationsUpdateLedger(t *testing.T) {
	tr, _ := newTestTracker(t)
	now := at(2025, 7, 26, 12, 0)
	if err := tr.Load(now); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := tr.Add("report", "high", false, now); err != nil {
		t.Fatalf("add: %v", err)
	}
	if rec := tr.TodayRecord(); rec.TotalTasks != 1 || rec.CompletedTasks != 0 {
		t.Fatalf("after add: %+v", rec)
	}

	id := tr.Tasks()[0].ID
	if err := tr.Toggle(id, now); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if rec := tr.TodayRecord(); rec.CompletedTasks != 1 {
		t.Fatalf("after toggle: %+v", rec)
	}

	// Deleting a completed task keeps its completion in the archive.
	if err := tr.Delete(id, now); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rec := tr.TodayRecord()
	if rec.TotalTasks != 0 {
		t.Fatalf("after delete total should drop, got %+v", rec)
	}
	if len(rec.CompletedTaskTexts) != 1 || rec.CompletedTaskTexts[0].Text != "report" {
		t.Fatalf("archive should keep the deleted completion, got %+v", rec.CompletedTaskTexts)
	}
}

func TestAttachRemarkToQuietDay(t *testing.T) {
	tr, _ := newTestTracker(t)
	if err := tr.Load(at(2025, 7, 26, 12, 0)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.AttachRemark("2025-07-20", "was travelling"); err != nil {
		t.Fatalf("remark: %v", err)
	}
	i := findDay(tr.Days(), "2025-07-20")
	if i < 0 || tr.Days()[i].Remark != "was travelling" {
		t.Fatal("remark on a day with no activity should create a placeholder record")
	}
}

// ============================================================
// Persistence round trip
// ============================================================

func TestStateSurvivesRestart(t *testing.T) {
	tr, s := newTestTracker(t)
	now := at(2025, 7, 26, 12, 0)
	if err := tr.Load(now); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := tr.Add("gym", "high", true, now); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tr.Toggle(tr.Tasks()[0].ID, now); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := tr.AttachRemark("2025-07-26", "solid"); err != nil {
		t.Fatalf("remark: %v", err)
	}

	tr2 := New(s)
	if err := tr2.Load(at(2025, 7, 26, 18, 0)); err != nil {
		t.Fatalf("reload: %v", err)
	}
	tasks := tr2.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "gym" || !tasks[0].Completed {
		t.Fatalf("tasks did not round-trip: %+v", tasks)
	}
	if tasks[0].LastCompleted == 0 {
		t.Fatal("lastCompleted lost in round trip")
	}
	rec := tr2.TodayRecord()
	if rec.CompletedTasks != 1 || rec.Remark != "solid" {
		t.Fatalf("day record did not round-trip: %+v", rec)
	}
}

func TestSetBoundaryHourPersists(t *testing.T) {
	tr, s := newTestTracker(t)
	if err := tr.SetBoundaryHour(3); err != nil {
		t.Fatalf("set: %v", err)
	}
	if tr.BoundaryHour() != 3 {
		t.Fatalf("expected 3, got %d", tr.BoundaryHour())
	}
	if got := New(s).BoundaryHour(); got != 3 {
		t.Fatalf("setting should persist, got %d", got)
	}

	if err := tr.SetBoundaryHour(40); err != nil {
		t.Fatalf("set: %v", err)
	}
	if tr.BoundaryHour() != DefaultBoundaryHour {
		t.Fatalf("out-of-range hour should fall back, got %d", tr.BoundaryHour())
	}
}
