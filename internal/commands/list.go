package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/query"
	"taskdeck/internal/repo"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskdeck` (no args) and `taskdeck list [flags]`.
type ListCmd struct {
	search string
	filter string
}

// SetFilter sets the filter mode (for testing).
func (c *ListCmd) SetFilter(filter string) {
	c.filter = filter
}

// SetSearch sets the search text (for testing).
func (c *ListCmd) SetSearch(search string) {
	c.search = search
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "taskdeck list [--search <text>] [--filter all|active|completed]"
}
func (c *ListCmd) NeedsStore() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, rp *repo.Repository, args []string, out, errOut io.Writer) int {
	// Bare words after the flags are treated as search text, so
	// `taskdeck list milk` works like `taskdeck list --search milk`.
	search := c.search
	if len(args) > 0 {
		if search != "" {
			fmt.Fprintln(errOut, "error: search text given twice")
			return exitcode.UserError
		}
		search = strings.Join(args, " ")
	}

	mode, err := query.ParseMode(c.filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	tasks := rp.Tasks()
	view := query.Run(tasks, search, mode)

	if len(view) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	// Row numbers come from the unfiltered sorted view so that the refs
	// taken by done/rm/edit stay valid regardless of search and filter.
	rows := make(map[string]int)
	for i, t := range query.Run(tasks, "", query.ModeAll) {
		rows[t.ID] = i + 1
	}

	for _, t := range view {
		output.FormatTask(out, rows[t.ID], t)
	}
	return exitcode.Success
}
