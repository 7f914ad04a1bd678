package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/repo"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskdeck help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, rp *repo.Repository, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskdeck                                           List all tasks
  taskdeck list [common flags] [--search <text>] [--filter all|active|completed]
  taskdeck add [common flags] [--desc <text>] [--due <date>] [--priority low|medium|high] <title...>
  taskdeck edit [common flags] [--title <text>] [--desc <text>] [--due <date>] [--priority <p>] [--status <s>] <ref>
  taskdeck done [common flags] <ref>
  taskdeck rm [common flags] <ref>
  taskdeck help
  taskdeck version

A <ref> is either a row number from the list output or a task ID.
Dates are YYYY-MM-DD or RFC 3339.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
