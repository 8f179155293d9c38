package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

func sampleEntries() []domain.TimeEntry {
	start := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	return []domain.TimeEntry{
		{
			ID:        "1",
			TaskID:    "10",
			TaskTitle: "Fix login",
			Duration:  5400,
			StartTime: start,
			EndTime:   start.Add(90 * time.Minute),
			Date:      "2024-02-01",
		},
		{
			ID:        "2",
			TaskID:    "11",
			TaskTitle: "Write docs",
			Duration:  65,
			StartTime: start.Add(2 * time.Hour),
			EndTime:   start.Add(2*time.Hour + 65*time.Second),
			Date:      "2024-02-01",
		},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(sampleEntries(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][6] != "Duration" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Fix login" || rows[1][5] != "5400" || rows[1][6] != "01:30:00" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
	if rows[2][6] != "00:01:05" {
		t.Fatalf("unexpected duration formatting: %v", rows[2])
	}
}

func TestToCSVEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if len(data) == 0 {
		t.Fatal("expected at least the header row")
	}
}

func TestToJSON(t *testing.T) {
	tasks := []domain.Task{
		{ID: "10", Title: "Fix login", Priority: domain.PriorityHigh, Status: domain.StatusOpen},
	}
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToJSON(tasks, sampleEntries(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		TaskCount  int `json:"task_count"`
		EntryCount int `json:"entry_count"`
		Tasks      []struct {
			ID string `json:"id"`
		} `json:"tasks"`
		Entries []struct {
			Task     string `json:"task"`
			Duration string `json:"duration"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if doc.TaskCount != 1 || doc.EntryCount != 2 {
		t.Fatalf("unexpected counts: %+v", doc)
	}
	if doc.Tasks[0].ID != "10" {
		t.Fatalf("unexpected tasks: %+v", doc.Tasks)
	}
	if doc.Entries[0].Task != "Fix login" || doc.Entries[0].Duration != "01:30:00" {
		t.Fatalf("unexpected entries: %+v", doc.Entries)
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(nil, filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
