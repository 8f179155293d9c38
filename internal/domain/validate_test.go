package domain

import (
	"testing"
)

func validTaskInput() TaskInput {
	return TaskInput{
		Title:       "Fix login bug",
		Description: "Session cookie expires too early",
		Assignee:    "John Developer",
		Priority:    PriorityHigh,
		Status:      StatusOpen,
	}
}

func TestValidateTaskAccepts(t *testing.T) {
	if verr := ValidateTask(validTaskInput()); verr != nil {
		t.Fatalf("expected valid input, got %v", verr)
	}
}

func TestValidateTaskRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TaskInput)
		field  string
	}{
		{"missing title", func(in *TaskInput) { in.Title = "" }, "title"},
		{"missing description", func(in *TaskInput) { in.Description = "" }, "description"},
		{"missing assignee", func(in *TaskInput) { in.Assignee = "" }, "assignee"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validTaskInput()
			tc.mutate(&in)
			verr := ValidateTask(in)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if verr.Field(tc.field) == "" {
				t.Fatalf("expected error on %s, got %+v", tc.field, verr.FieldErrors)
			}
		})
	}
}

func TestValidateTaskUnknownEnums(t *testing.T) {
	in := validTaskInput()
	in.Priority = "urgent"
	if verr := ValidateTask(in); verr == nil || verr.Field("priority") == "" {
		t.Fatalf("expected priority error, got %v", verr)
	}

	in = validTaskInput()
	in.Status = "done"
	if verr := ValidateTask(in); verr == nil || verr.Field("status") == "" {
		t.Fatalf("expected status error, got %v", verr)
	}
}

func TestValidateTaskEstimatedHours(t *testing.T) {
	neg := -1.0
	in := validTaskInput()
	in.EstimatedHours = &neg
	if verr := ValidateTask(in); verr == nil || verr.Field("estimatedHours") == "" {
		t.Fatalf("expected estimatedHours error, got %v", verr)
	}

	zero := 0.0
	in = validTaskInput()
	in.EstimatedHours = &zero
	if verr := ValidateTask(in); verr != nil {
		t.Fatalf("zero estimate is allowed, got %v", verr)
	}

	in = validTaskInput()
	in.EstimatedHours = nil
	if verr := ValidateTask(in); verr != nil {
		t.Fatalf("nil estimate is allowed, got %v", verr)
	}
}

func TestValidateTaskCollectsMultipleErrors(t *testing.T) {
	verr := ValidateTask(TaskInput{Priority: PriorityLow, Status: StatusOpen})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.FieldErrors) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", verr.FieldErrors)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{}
	verr.add("title", "Title is required")
	got := verr.Error()
	if got != "validation failed: title: Title is required" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	order := []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Fatalf("%s must rank above %s", order[i], order[i-1])
		}
	}
	if Priority("unknown").Rank() != 0 {
		t.Fatal("unknown priority must rank 0")
	}
}

func TestStatusRankOrdering(t *testing.T) {
	order := []Status{StatusOpen, StatusInProgress, StatusPendingApproval, StatusClosed}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Fatalf("%s must rank after %s", order[i], order[i-1])
		}
	}
}
