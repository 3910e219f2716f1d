package check

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/datera/ddct/pkg/validate"
)

const (
	cmdName  = "check"
	cmdShort = "Run deployment checks against this host"
)

const cmdLong = `
Runs the built-in checks, plus those of any requested plugin, concurrently
and reports every failure and warning with its diagnostic code.

Connection details are read from a config file (--config, or the first of
./datera-config.json, ~/datera-config.json, ~/.datera-config.json,
~/.datera-config), then DAT_* environment variables, then flags.

The command exits non-zero when any check fails. Warnings are reported but
never change the exit status.
`

const cmdExample = `
  # Run every built-in check
  ddct check

  # Include the cinder volume plugin checks
  ddct check --plugins cinder_volume

  # Only ARP and IRQ checks, as JSON
  ddct check --tags arp,irq -o json

  # Everything except network reachability
  ddct check --not-tags connection
`

// AddCommand adds the check subcommand to the root command.
func AddCommand(root *cobra.Command) {
	streams := genericiooptions.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}

	command := validate.NewCheckCommand(streams)

	cmd := &cobra.Command{
		Use:          cmdName,
		Short:        cmdShort,
		Long:         cmdLong,
		Example:      cmdExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := command.Complete(); err != nil {
				return fmt.Errorf("completing command: %w", err)
			}

			if err := command.Validate(); err != nil {
				return fmt.Errorf("validating command: %w", err)
			}

			return command.Run(cmd.Context())
		},
	}

	command.AddFlags(cmd.Flags())

	root.AddCommand(cmd)
}
