package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

// ToCSV writes the time-entry log to path, one row per entry.
func ToCSV(entries []domain.TimeEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Task", "Date", "Start", "End", "Duration (s)", "Duration"}); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.TaskTitle,
			e.Date,
			e.StartTime.Local().Format(time.RFC3339),
			e.EndTime.Local().Format(time.RFC3339),
			fmt.Sprintf("%d", e.Duration),
			formatDuration(e.Duration),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
