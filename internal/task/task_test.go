package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/task"
)

func TestNewAppliesDefaults(t *testing.T) {
	before := time.Now()
	got, err := task.New("Pay rent", "", time.Time{}, "")
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Pay rent", got.Title)
	assert.Equal(t, task.PriorityMedium, got.Priority)
	assert.Equal(t, task.StatusOpen, got.Status)
	assert.False(t, got.Completed)
	assert.False(t, got.DueDate.Before(before), "zero due date should default to creation time")
}

func TestNewKeepsExplicitFields(t *testing.T) {
	due := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	got, err := task.New("Pay rent", "internet included", due, task.PriorityHigh)
	require.NoError(t, err)

	assert.Equal(t, "internet included", got.Description)
	assert.True(t, got.DueDate.Equal(due))
	assert.Equal(t, task.PriorityHigh, got.Priority)
}

func TestNewRejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := task.New(title, "", time.Time{}, "")
		assert.ErrorIs(t, err, task.ErrEmptyTitle, "title %q", title)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := task.NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    task.Priority
		wantErr bool
	}{
		{"", task.PriorityMedium, false},
		{"low", task.PriorityLow, false},
		{"medium", task.PriorityMedium, false},
		{"high", task.PriorityHigh, false},
		{" High ", task.PriorityHigh, false},
		{"urgent", "", true},
	}
	for _, tt := range tests {
		got, err := task.ParsePriority(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestApplyMergesOnlySuppliedFields(t *testing.T) {
	due := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	orig, err := task.New("Pay rent", "old desc", due, task.PriorityLow)
	require.NoError(t, err)

	title := "Pay rent (Jan)"
	completed := true
	got, err := task.Apply(orig, task.Fields{Title: &title, Completed: &completed})
	require.NoError(t, err)

	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, "Pay rent (Jan)", got.Title)
	assert.True(t, got.Completed)
	// Unsupplied fields preserved
	assert.Equal(t, "old desc", got.Description)
	assert.True(t, got.DueDate.Equal(due))
	assert.Equal(t, task.PriorityLow, got.Priority)
	assert.Equal(t, task.StatusOpen, got.Status)
}

func TestApplyRejectsBlankTitle(t *testing.T) {
	orig, err := task.New("Pay rent", "", time.Time{}, "")
	require.NoError(t, err)

	blank := "   "
	_, err = task.Apply(orig, task.Fields{Title: &blank})
	assert.ErrorIs(t, err, task.ErrEmptyTitle)
}

func TestStatusIndependentOfCompleted(t *testing.T) {
	orig, err := task.New("Pay rent", "", time.Time{}, "")
	require.NoError(t, err)

	completed := true
	got, err := task.Apply(orig, task.Fields{Completed: &completed})
	require.NoError(t, err)

	assert.True(t, got.Completed)
	assert.Equal(t, task.StatusOpen, got.Status, "completing must not flip status")
}
