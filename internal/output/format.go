// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/task"
)

// DueDateFormat is the display format for due dates.
const DueDateFormat = "2006-01-02"

// descIndent aligns the description line under the title column.
const descIndent = "                              "

// FormatTask formats a task row.
// Format: "{N:>4}  [x|space] {DUE}  {PRIORITY:<6}  {TITLE}\n", followed by
// an indented description line when the task has one.
func FormatTask(w io.Writer, num int, t task.Task) {
	box := " "
	if t.Completed {
		box = "x"
	}
	title := normalizeTitle(t.Title)
	fmt.Fprintf(w, "%4d  [%s] %s  %-6s  %s\n", num, box, t.DueDate.Format(DueDateFormat), t.Priority, title)

	if desc := normalizeTitle(t.Description); t.Description != "" && desc != "(untitled)" {
		fmt.Fprintf(w, "%s%s\n", descIndent, desc)
	}
}

// FormatTaskBrief formats a single-line confirmation for a task,
// used after mutations.
func FormatTaskBrief(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%s  %s\n", t.ID, normalizeTitle(t.Title))
}

// normalizeTitle normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(s string) string {
	// Replace newlines with spaces
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
