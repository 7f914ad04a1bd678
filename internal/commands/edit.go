package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/repo"
	"taskdeck/internal/task"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only the flags the user supplies are
// applied; everything else on the task is preserved.
type EditCmd struct {
	title    string
	desc     string
	due      string
	priority string
	status   string

	set map[string]bool
	fs  *flag.FlagSet
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Edit fields of a task" }
func (c *EditCmd) Usage() string {
	return "taskdeck edit [--title <text>] [--desc <text>] [--due <date>] [--priority <p>] [--status <s>] <ref>"
}
func (c *EditCmd) NeedsStore() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.desc, "desc", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.status, "status", "", "")
}

// SetFields marks flags as supplied with the given values (for testing).
func (c *EditCmd) SetFields(fields map[string]string) {
	c.set = make(map[string]bool)
	for name, value := range fields {
		c.set[name] = true
		switch name {
		case "title":
			c.title = value
		case "desc":
			c.desc = value
		case "due":
			c.due = value
		case "priority":
			c.priority = value
		case "status":
			c.status = value
		}
	}
}

// supplied reports whether the named flag was set on the command line.
func (c *EditCmd) supplied(name string) bool {
	if c.set != nil {
		return c.set[name]
	}
	if c.fs == nil {
		return false
	}
	found := false
	c.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, rp *repo.Repository, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var fields task.Fields
	changed := false

	if c.supplied("title") {
		fields.Title = &c.title
		changed = true
	}
	if c.supplied("desc") {
		fields.Description = &c.desc
		changed = true
	}
	if c.supplied("due") {
		due, err := ParseDueDate(c.due)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		fields.DueDate = &due
		changed = true
	}
	if c.supplied("priority") {
		priority, err := task.ParsePriority(c.priority)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		fields.Priority = &priority
		changed = true
	}
	if c.supplied("status") {
		fields.Status = &c.status
		changed = true
	}

	if !changed {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	t, err := ResolveTaskRef(rp, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	id := t.ID
	t, err = rp.Update(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrEmptyTitle):
			fmt.Fprintln(errOut, "error: title required")
			return exitcode.UserError
		case errors.Is(err, repo.ErrNotFound):
			fmt.Fprintf(errOut, "error: task not found: %s\n", id)
			return exitcode.UserError
		default:
			fmt.Fprintf(errOut, "error: store error: %v\n", err)
			return exitcode.StoreError
		}
	}

	if !cfg.Quiet {
		output.FormatTaskBrief(out, t)
	}
	return exitcode.Success
}
