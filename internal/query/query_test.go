package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/query"
	"taskdeck/internal/task"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    query.Mode
		wantErr bool
	}{
		{"", query.ModeAll, false},
		{"all", query.ModeAll, false},
		{"active", query.ModeActive, false},
		{"completed", query.ModeCompleted, false},
		{" Active ", query.ModeActive, false},
		{"open", "", true},
	}
	for _, tt := range tests {
		got, err := query.ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestRunSortsByDueDateAscending(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "Pay rent", DueDate: day(5)},
		{ID: "2", Title: "Call dentist", DueDate: day(1)},
		{ID: "3", Title: "Walk dog", DueDate: day(3)},
	}

	got := query.Run(tasks, "", query.ModeAll)
	assert.Equal(t, []string{"Call dentist", "Walk dog", "Pay rent"}, titles(got))
}

func TestRunEmptySearchAllModeReturnsEverything(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "a", DueDate: day(2), Completed: true},
		{ID: "2", Title: "b", DueDate: day(1)},
	}

	got := query.Run(tasks, "", query.ModeAll)
	assert.Len(t, got, 2)
}

func TestRunStableTieOrder(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "first", DueDate: day(1)},
		{ID: "2", Title: "second", DueDate: day(1)},
		{ID: "3", Title: "third", DueDate: day(1)},
	}

	got := query.Run(tasks, "", query.ModeAll)
	assert.Equal(t, []string{"first", "second", "third"}, titles(got), "equal due dates keep input order")
}

func TestRunSearchMatchesTitleAndDescription(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "Buy milk", DueDate: day(1)},
		{ID: "2", Title: "Shopping", Description: "milk, eggs, bread", DueDate: day(2)},
		{ID: "3", Title: "Walk dog", DueDate: day(3)},
	}

	got := query.Run(tasks, "MILK", query.ModeAll)
	assert.Equal(t, []string{"Buy milk", "Shopping"}, titles(got))
}

func TestRunSearchComposesWithFilter(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "Buy milk", Completed: false, DueDate: day(1)},
		{ID: "2", Title: "Buy Milkshake", Completed: true, DueDate: day(2)},
		{ID: "3", Title: "Walk dog", Completed: false, DueDate: day(3)},
	}

	got := query.Run(tasks, "milk", query.ModeActive)
	assert.Equal(t, []string{"Buy milk"}, titles(got))
}

func TestRunCompletedMode(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "open one", DueDate: day(1)},
		{ID: "2", Title: "closed one", Completed: true, DueDate: day(2)},
	}

	got := query.Run(tasks, "", query.ModeCompleted)
	assert.Equal(t, []string{"closed one"}, titles(got))
}

func TestRunDoesNotMutateInput(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "later", DueDate: day(9)},
		{ID: "2", Title: "sooner", DueDate: day(1)},
	}

	_ = query.Run(tasks, "", query.ModeAll)
	assert.Equal(t, []string{"later", "sooner"}, titles(tasks), "input order must be untouched")
}

func TestRunIsDeterministic(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Title: "a", DueDate: day(2)},
		{ID: "2", Title: "b", DueDate: day(1)},
		{ID: "3", Title: "c", DueDate: day(1), Completed: true},
	}

	first := query.Run(tasks, "", query.ModeAll)
	second := query.Run(tasks, "", query.ModeAll)
	assert.Equal(t, first, second)
}
