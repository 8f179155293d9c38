package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	TaskCount  int           `json:"task_count"`
	EntryCount int           `json:"entry_count"`
	Tasks      []domain.Task `json:"tasks"`
	Entries    []jsonEntry   `json:"entries"`
}

type jsonEntry struct {
	ID          string `json:"id"`
	TaskID      string `json:"task_id"`
	Task        string `json:"task"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DurationSec int64  `json:"duration_seconds"`
	Duration    string `json:"duration"`
}

// ToJSON writes tasks and time entries to path as a single document.
func ToJSON(tasks []domain.Task, entries []domain.TimeEntry, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		TaskCount:  len(tasks),
		EntryCount: len(entries),
		Tasks:      tasks,
	}

	for _, e := range entries {
		export.Entries = append(export.Entries, jsonEntry{
			ID:          e.ID,
			TaskID:      e.TaskID,
			Task:        e.TaskTitle,
			Date:        e.Date,
			StartTime:   e.StartTime.Local().Format(time.RFC3339),
			EndTime:     e.EndTime.Local().Format(time.RFC3339),
			DurationSec: e.Duration,
			Duration:    formatDuration(e.Duration),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
