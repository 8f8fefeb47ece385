package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

// ToCSV writes one row per ledger day, oldest first.
func ToCSV(days []store.DayRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Completed", "Total", "Rate (%)", "Remark"}); err != nil {
		return err
	}

	sorted := make([]store.DayRecord, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	for _, d := range sorted {
		rate := 0
		if d.TotalTasks > 0 {
			rate = 100 * d.CompletedTasks / d.TotalTasks
		}
		row := []string{
			d.Date,
			fmt.Sprintf("%d", d.CompletedTasks),
			fmt.Sprintf("%d", d.TotalTasks),
			fmt.Sprintf("%d", rate),
			d.Remark,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
