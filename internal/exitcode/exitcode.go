// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found, blank title).
	UserError = 1

	// ConfigError indicates a configuration error (unusable config dir).
	ConfigError = 2

	// StoreError indicates a storage error (unreadable or unwritable database).
	StoreError = 3
)
