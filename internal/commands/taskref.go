package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"taskdeck/internal/query"
	"taskdeck/internal/repo"
	"taskdeck/internal/task"
)

// TaskRef represents a parsed task reference: either the 1-based row number
// of the full due-date-sorted view, or a raw task ID.
type TaskRef struct {
	Num   int    // 1-based row number when IsNum
	ID    string // task ID otherwise
	IsNum bool
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. No args -> error: task reference required
// 2. All digits -> row number into the sorted view (as printed by list)
// 3. Anything else -> treated as a task ID
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	ref := args[0]
	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil || num < 1 {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
		}
		return TaskRef{Num: num, IsNum: true}, nil
	}

	return TaskRef{ID: ref}, nil
}

// ResolveTaskRef resolves a reference against the repository's collection.
// Row numbers index the same due-date-sorted view the list command prints.
// The returned errors are user-facing and always exitcode.UserError material.
func ResolveTaskRef(rp *repo.Repository, ref TaskRef) (task.Task, error) {
	tasks := rp.Tasks()

	if ref.IsNum {
		view := query.Run(tasks, "", query.ModeAll)
		if ref.Num > len(view) {
			return task.Task{}, fmt.Errorf("task number out of range: %d", ref.Num)
		}
		return view[ref.Num-1], nil
	}

	for _, t := range tasks {
		if t.ID == ref.ID {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("task not found: %s", ref.ID)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
