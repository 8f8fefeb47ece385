package store

import "time"

// Task is a single to-do item. JSON field names match the persisted
// todo-tracker-tasks document so existing data keeps loading.
type Task struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Priority      string `json:"priority"` // high, medium, low
	Completed     bool   `json:"completed"`
	Timestamp     int64  `json:"timestamp"` // creation time, epoch millis
	IsRepeating   bool   `json:"isRepeating"`
	LastCompleted int64  `json:"lastCompleted,omitempty"` // epoch millis, 0 = never
}

// ArchivedTask is the surviving trace of a completed task after it has been
// deleted from the live list.
type ArchivedTask struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
}

// DayRecord is one day of the ledger, keyed by Date (YYYY-MM-DD). At most one
// record exists per date.
type DayRecord struct {
	Date                string         `json:"date"`
	CompletedTasks      int            `json:"completedTasks"`
	TotalTasks          int            `json:"totalTasks"`
	CompletedTaskIDs    []string       `json:"completedTaskIds"`
	RepeatingTaskIDs    []string       `json:"repeatingTaskIds"`
	NonRepeatingTaskIDs []string       `json:"nonRepeatingTaskIds"`
	CompletedTaskTexts  []ArchivedTask `json:"completedTaskTexts,omitempty"`
	Remark              string         `json:"remark,omitempty"`
}

// Event is an upcoming-events widget entry.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
}

// Link is a quick-links widget entry.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type PomodoroSession struct {
	ID             int64
	WorkDuration   int
	BreakDuration  int
	CompletedCount int
	TargetCount    int
	Status         string // idle, working, short_break, long_break, completed, cancelled
	StartedAt      time.Time
	CompletedAt    *time.Time
}

type Setting struct {
	Key   string
	Value string
}
