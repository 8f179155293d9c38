package view

import (
	"math"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

// trendDays is the fixed trailing window for the trend series.
const trendDays = 30

// TrendPoint is one calendar day of the trend series.
type TrendPoint struct {
	Date            string  // YYYY-MM-DD
	Label           string  // e.g. "Jan 02"
	Open            int     // tasks created this day, by status
	InProgress      int
	PendingApproval int
	Closed          int
	TotalTasks      int
	Hours           float64 // tracked time, rounded to 2 decimals
	Sessions        int     // time entries logged this day
}

// TrendSeries buckets task creation and tracked time into the trailing 30
// calendar days ending at now, oldest first. The result always has exactly
// 30 points.
func TrendSeries(tasks []domain.Task, entries []domain.TimeEntry, now time.Time) []TrendPoint {
	tasksByDay := make(map[string][]domain.Task)
	for _, t := range tasks {
		day := t.CreatedAt.In(now.Location()).Format("2006-01-02")
		tasksByDay[day] = append(tasksByDay[day], t)
	}
	entriesByDay := make(map[string][]domain.TimeEntry)
	for _, e := range entries {
		entriesByDay[e.Date] = append(entriesByDay[e.Date], e)
	}

	series := make([]TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format("2006-01-02")

		p := TrendPoint{
			Date:  dateStr,
			Label: day.Format("Jan 02"),
		}
		for _, t := range tasksByDay[dateStr] {
			p.TotalTasks++
			switch t.Status {
			case domain.StatusOpen:
				p.Open++
			case domain.StatusInProgress:
				p.InProgress++
			case domain.StatusPendingApproval:
				p.PendingApproval++
			case domain.StatusClosed:
				p.Closed++
			}
		}

		var seconds int64
		for _, e := range entriesByDay[dateStr] {
			seconds += e.Duration
			p.Sessions++
		}
		p.Hours = math.Round(float64(seconds)/3600*100) / 100

		series = append(series, p)
	}
	return series
}

// TimeByTask sums logged duration per task id.
func TimeByTask(entries []domain.TimeEntry) map[string]int64 {
	totals := make(map[string]int64)
	for _, e := range entries {
		totals[e.TaskID] += e.Duration
	}
	return totals
}

// TaskTotal sums the logged duration for one task.
func TaskTotal(entries []domain.TimeEntry, taskID string) int64 {
	var total int64
	for _, e := range entries {
		if e.TaskID == taskID {
			total += e.Duration
		}
	}
	return total
}

// TodaySeconds sums durations of entries logged on now's calendar day.
func TodaySeconds(entries []domain.TimeEntry, now time.Time) int64 {
	today := now.Format("2006-01-02")
	var total int64
	for _, e := range entries {
		if e.Date == today {
			total += e.Duration
		}
	}
	return total
}

// TodayEntries returns the entries logged on now's calendar day.
func TodayEntries(entries []domain.TimeEntry, now time.Time) []domain.TimeEntry {
	today := now.Format("2006-01-02")
	var out []domain.TimeEntry
	for _, e := range entries {
		if e.Date == today {
			out = append(out, e)
		}
	}
	return out
}
