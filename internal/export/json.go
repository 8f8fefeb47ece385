package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

type jsonExport struct {
	ExportedAt string            `json:"exported_at"`
	TaskCount  int               `json:"task_count"`
	DayCount   int               `json:"day_count"`
	Tasks      []store.Task      `json:"tasks"`
	Days       []store.DayRecord `json:"days"`
}

// ToJSON writes the full tracker snapshot: the live task list plus the daily
// ledger, in their persisted JSON shapes.
func ToJSON(tasks []store.Task, days []store.DayRecord, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		TaskCount:  len(tasks),
		DayCount:   len(days),
		Tasks:      tasks,
		Days:       days,
	}
	if out.Tasks == nil {
		out.Tasks = []store.Task{}
	}
	if out.Days == nil {
		out.Days = []store.DayRecord{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
