// Package task defines the task record and its validation rules.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// StatusOpen is the default workflow status. The status field is carried
// independently of the completed flag; neither drives the other.
const StatusOpen = "open"

// idSize is the length of generated task IDs.
const idSize = 16

// ErrEmptyTitle indicates a missing or whitespace-only title.
var ErrEmptyTitle = errors.New("title required")

// Task represents a single to-do item.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	Status      string    `json:"status"`
}

// ParsePriority parses a priority string. Empty input yields the default
// (medium); anything else must be one of low, medium, high.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return PriorityMedium, nil
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority: %s", s)
	}
}

// New creates a task with a fresh ID and defaults applied: due date falls
// back to now, priority to medium, status to open. Returns ErrEmptyTitle
// if the trimmed title is empty.
func New(title, description string, due time.Time, priority Priority) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrEmptyTitle
	}
	if due.IsZero() {
		due = time.Now()
	}
	if priority == "" {
		priority = PriorityMedium
	}
	return Task{
		ID:          NewID(),
		Title:       title,
		Description: description,
		DueDate:     due,
		Priority:    priority,
		Completed:   false,
		Status:      StatusOpen,
	}, nil
}

// NewID generates a new unique task ID.
func NewID() string {
	return gonanoid.Must(idSize)
}

// Fields carries a partial update. Nil fields are left untouched by Apply.
type Fields struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *Priority
	Completed   *bool
	Status      *string
}

// Apply merges the supplied fields over t. The ID is never changed.
// Returns ErrEmptyTitle if a title is supplied but blank.
func Apply(t Task, f Fields) (Task, error) {
	if f.Title != nil {
		if strings.TrimSpace(*f.Title) == "" {
			return Task{}, ErrEmptyTitle
		}
		t.Title = *f.Title
	}
	if f.Description != nil {
		t.Description = *f.Description
	}
	if f.DueDate != nil {
		t.DueDate = *f.DueDate
	}
	if f.Priority != nil {
		t.Priority = *f.Priority
	}
	if f.Completed != nil {
		t.Completed = *f.Completed
	}
	if f.Status != nil {
		t.Status = *f.Status
	}
	return t, nil
}
