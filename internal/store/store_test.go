package store

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Migration and defaults
// ============================================================

func TestMigrationSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	defaults := map[string]string{
		"day_boundary_hour":   "5",
		"pomodoro_work":       "1500",
		"pomodoro_break":      "300",
		"pomodoro_long_break": "900",
		"pomodoro_count":      "4",
	}
	for key, want := range defaults {
		got, err := s.GetSetting(key)
		if err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", key, want, got)
		}
	}
}

func TestGetSettingInt(t *testing.T) {
	s := newTestStore(t)

	if got := s.GetSettingInt("day_boundary_hour", 99); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := s.GetSettingInt("no_such_key", 42); got != 42 {
		t.Fatalf("missing key should fall back, got %d", got)
	}

	if err := s.SetSetting("day_boundary_hour", "not a number"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.GetSettingInt("day_boundary_hour", 5); got != 5 {
		t.Fatalf("non-numeric value should fall back, got %d", got)
	}
}

func TestSetSettingUpserts(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting("day_boundary_hour", "7"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := s.GetSetting("day_boundary_hour"); got != "7" {
		t.Fatalf("expected 7, got %s", got)
	}

	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) < 5 {
		t.Fatalf("expected seeded settings, got %d", len(all))
	}
}

// ============================================================
// Key-value documents
// ============================================================

func TestTasksRoundTrip(t *testing.T) {
	s := newTestStore(t)

	tasks, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("fresh store should be empty, got %d", len(tasks))
	}

	in := []Task{{
		ID:            "a1",
		Text:          "write report",
		Priority:      "high",
		Completed:     true,
		Timestamp:     1753500000000,
		IsRepeating:   true,
		LastCompleted: 1753540000000,
	}}
	if err := s.SaveTasks(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestDaysRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []DayRecord{{
		Date:                "2025-07-26",
		CompletedTasks:      2,
		TotalTasks:          3,
		CompletedTaskIDs:    []string{"a", "b"},
		RepeatingTaskIDs:    []string{"a"},
		NonRepeatingTaskIDs: []string{"b", "c"},
		CompletedTaskTexts:  []ArchivedTask{{ID: "a", Text: "gym", Priority: "high"}},
		Remark:              "good",
	}}
	if err := s.SaveDays(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.LoadDays()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Remark != "good" || out[0].CompletedTaskTexts[0].Text != "gym" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestLastSavedDate(t *testing.T) {
	s := newTestStore(t)

	date, err := s.LastSavedDate()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if date != "" {
		t.Fatalf("expected empty on fresh store, got %q", date)
	}

	if err := s.SetLastSavedDate("2025-07-26"); err != nil {
		t.Fatalf("save: %v", err)
	}
	date, err = s.LastSavedDate()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if date != "2025-07-26" {
		t.Fatalf("expected 2025-07-26, got %q", date)
	}
}

func TestMalformedDocumentTreatedAsAbsent(t *testing.T) {
	s := newTestStore(t)

	if err := s.setKV(KeyTasks, `{"not": "an array"`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	tasks, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("malformed data must not error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("malformed data should read as empty, got %+v", tasks)
	}

	if err := s.setKV(KeyDailyData, `42`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	days, err := s.LoadDays()
	if err != nil || len(days) != 0 {
		t.Fatalf("wrong-shape data should read as empty (err=%v days=%+v)", err, days)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveTasks(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, ok, err := s.getKV(KeyTasks)
	if err != nil || !ok {
		t.Fatalf("expected stored value (ok=%v err=%v)", ok, err)
	}
	if raw != "[]" {
		t.Fatalf("nil slice should persist as [], got %s", raw)
	}
}

func TestEventsAndLinksRoundTrip(t *testing.T) {
	s := newTestStore(t)

	events := []Event{{ID: "e1", Title: "dentist", Date: "2025-08-02"}}
	if err := s.SaveEvents(events); err != nil {
		t.Fatalf("save events: %v", err)
	}
	gotEvents, err := s.LoadEvents()
	if err != nil || len(gotEvents) != 1 || gotEvents[0] != events[0] {
		t.Fatalf("events round trip (err=%v): %+v", err, gotEvents)
	}

	links := []Link{{ID: "l1", Title: "docs", URL: "https://example.com"}}
	if err := s.SaveLinks(links); err != nil {
		t.Fatalf("save links: %v", err)
	}
	gotLinks, err := s.LoadLinks()
	if err != nil || len(gotLinks) != 1 || gotLinks[0] != links[0] {
		t.Fatalf("links round trip (err=%v): %+v", err, gotLinks)
	}
}

// ============================================================
// Pomodoro sessions
// ============================================================

func TestPomodoroLifecycle(t *testing.T) {
	s := newTestStore(t)

	p, err := s.StartPomodoro(1500, 300, 4)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if p.Status != "working" || p.WorkDuration != 1500 || p.TargetCount != 4 {
		t.Fatalf("unexpected session: %+v", p)
	}
	if p.CompletedCount != 0 || p.CompletedAt != nil {
		t.Fatalf("fresh session should be unfinished: %+v", p)
	}

	if err := s.IncrementPomodoro(p.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := s.UpdatePomodoroStatus(p.ID, "short_break"); err != nil {
		t.Fatalf("status: %v", err)
	}
	p, err = s.GetPomodoro(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.CompletedCount != 1 || p.Status != "short_break" {
		t.Fatalf("unexpected after increment: %+v", p)
	}

	if err := s.CompletePomodoro(p.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	p, _ = s.GetPomodoro(p.ID)
	if p.Status != "completed" || p.CompletedCount != 4 || p.CompletedAt == nil {
		t.Fatalf("unexpected after complete: %+v", p)
	}
}

func TestPomodoroCancel(t *testing.T) {
	s := newTestStore(t)
	p, err := s.StartPomodoro(1500, 300, 4)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.CancelPomodoro(p.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	p, _ = s.GetPomodoro(p.ID)
	if p.Status != "cancelled" || p.CompletedAt == nil {
		t.Fatalf("unexpected after cancel: %+v", p)
	}
}

func TestPomodoroStats(t *testing.T) {
	s := newTestStore(t)

	p, err := s.StartPomodoro(1500, 300, 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.CompletePomodoro(p.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// A cancelled session must not count.
	q, _ := s.StartPomodoro(1500, 300, 2)
	s.CancelPomodoro(q.ID)

	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC().Add(time.Hour)
	completed, totalWork, err := s.GetPomodoroStats(from, to)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if completed != 1 {
		t.Fatalf("expected 1 completed session, got %d", completed)
	}
	if totalWork != 1500*2 {
		t.Fatalf("expected %d seconds of work, got %d", 1500*2, totalWork)
	}
}
