package store

import (
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(s string) *time.Time {
	t := mustTime(s)
	return &t
}

func hoursPtr(h float64) *float64 { return &h }

// seedTasks returns the demo dataset used when no stored snapshot exists.
func seedTasks() []domain.Task {
	return []domain.Task{
		{
			ID:             "1",
			Title:          "Fix login authentication bug",
			Description:    "Users are unable to login with special characters in their password. Need to update regex validation.",
			Priority:       domain.PriorityHigh,
			Status:         domain.StatusInProgress,
			Assignee:       "John Developer",
			DueDate:        timePtr("2024-01-15T00:00:00Z"),
			EstimatedHours: hoursPtr(4),
			Tags:           []string{"authentication", "security", "bug"},
			TimeSpent:      120,
			CreatedAt:      mustTime("2024-01-10T09:00:00Z"),
			UpdatedAt:      mustTime("2024-01-12T14:30:00Z"),
		},
		{
			ID:             "2",
			Title:          "Implement dark mode toggle",
			Description:    "Add a dark mode toggle to the application header for better user experience.",
			Priority:       domain.PriorityMedium,
			Status:         domain.StatusOpen,
			Assignee:       "John Developer",
			DueDate:        timePtr("2024-01-20T00:00:00Z"),
			EstimatedHours: hoursPtr(6),
			Tags:           []string{"ui", "feature", "accessibility"},
			TimeSpent:      0,
			CreatedAt:      mustTime("2024-01-11T10:15:00Z"),
			UpdatedAt:      mustTime("2024-01-11T10:15:00Z"),
		},
		{
			ID:             "3",
			Title:          "Database optimization for large datasets",
			Description:    "Optimize database queries to handle large datasets more efficiently. Current queries are too slow.",
			Priority:       domain.PriorityCritical,
			Status:         domain.StatusPendingApproval,
			Assignee:       "John Developer",
			DueDate:        timePtr("2024-01-12T00:00:00Z"),
			EstimatedHours: hoursPtr(8),
			Tags:           []string{"database", "performance", "optimization"},
			TimeSpent:      480,
			CreatedAt:      mustTime("2024-01-08T08:00:00Z"),
			UpdatedAt:      mustTime("2024-01-12T16:45:00Z"),
		},
		{
			ID:             "4",
			Title:          "Add user profile pictures",
			Description:    "Allow users to upload and display profile pictures in their dashboard.",
			Priority:       domain.PriorityLow,
			Status:         domain.StatusClosed,
			Assignee:       "John Developer",
			DueDate:        timePtr("2024-01-05T00:00:00Z"),
			EstimatedHours: hoursPtr(3),
			Tags:           []string{"ui", "profile", "feature"},
			TimeSpent:      180,
			CreatedAt:      mustTime("2024-01-03T11:30:00Z"),
			UpdatedAt:      mustTime("2024-01-05T15:20:00Z"),
		},
		{
			ID:             "5",
			Title:          "Mobile responsive improvements",
			Description:    "Improve mobile responsiveness for the task cards and forms.",
			Priority:       domain.PriorityMedium,
			Status:         domain.StatusOpen,
			Assignee:       "John Developer",
			DueDate:        timePtr("2024-01-25T00:00:00Z"),
			EstimatedHours: hoursPtr(5),
			Tags:           []string{"mobile", "responsive", "ui"},
			TimeSpent:      0,
			CreatedAt:      mustTime("2024-01-12T13:20:00Z"),
			UpdatedAt:      mustTime("2024-01-12T13:20:00Z"),
		},
	}
}

func seedTimeEntries() []domain.TimeEntry {
	return []domain.TimeEntry{
		{
			ID:        "1",
			TaskID:    "1",
			TaskTitle: "Fix login authentication bug",
			Duration:  120,
			StartTime: mustTime("2024-01-12T09:00:00Z"),
			EndTime:   mustTime("2024-01-12T11:00:00Z"),
			Date:      "2024-01-12",
		},
		{
			ID:        "2",
			TaskID:    "3",
			TaskTitle: "Database optimization for large datasets",
			Duration:  240,
			StartTime: mustTime("2024-01-12T10:00:00Z"),
			EndTime:   mustTime("2024-01-12T14:00:00Z"),
			Date:      "2024-01-12",
		},
		{
			ID:        "3",
			TaskID:    "4",
			TaskTitle: "Add user profile pictures",
			Duration:  180,
			StartTime: mustTime("2024-01-05T13:00:00Z"),
			EndTime:   mustTime("2024-01-05T16:00:00Z"),
			Date:      "2024-01-05",
		},
	}
}
