package cmd

import (
	"context"

	"github.com/spf13/pflag"
)

// Command is the lifecycle shared by every ddct subcommand: flags are bound,
// options completed and validated, then the command runs.
type Command interface {
	// AddFlags registers command-specific flags with the provided FlagSet.
	AddFlags(fs *pflag.FlagSet)

	// Complete fills in derived options (config, clients, streams).
	Complete() error

	// Validate checks that the completed options are usable.
	Validate() error

	// Run executes the command.
	Run(ctx context.Context) error
}
