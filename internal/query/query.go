// Package query produces filtered, searched, and sorted projections of a
// task collection. It is stateless: same inputs, same output, every call.
package query

import (
	"fmt"
	"sort"
	"strings"

	"taskdeck/internal/task"
)

// Mode constrains results by completion status.
type Mode string

const (
	ModeAll       Mode = "all"
	ModeActive    Mode = "active"
	ModeCompleted Mode = "completed"
)

// ParseMode parses a filter mode string. Empty input yields ModeAll.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ModeAll, nil
	case ModeAll:
		return ModeAll, nil
	case ModeActive:
		return ModeActive, nil
	case ModeCompleted:
		return ModeCompleted, nil
	default:
		return "", fmt.Errorf("invalid filter: %s", s)
	}
}

// Run returns the tasks matching search and mode, ordered ascending by due
// date. The sort is stable, so equal due dates keep their input order. The
// input slice is never modified.
func Run(tasks []task.Task, search string, mode Mode) []task.Task {
	needle := strings.ToLower(search)

	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesMode(t, mode) {
			continue
		}
		if needle != "" && !matchesSearch(t, needle) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// matchesMode reports whether t passes the completion filter.
func matchesMode(t task.Task, mode Mode) bool {
	switch mode {
	case ModeActive:
		return !t.Completed
	case ModeCompleted:
		return t.Completed
	default:
		return true
	}
}

// matchesSearch reports whether the lower-cased needle occurs in the title
// or, when present, the description.
func matchesSearch(t task.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if t.Description != "" && strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	return false
}
