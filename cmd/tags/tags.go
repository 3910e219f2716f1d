package tags

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/datera/ddct/pkg/validate"
)

const (
	cmdName  = "tags"
	cmdShort = "List the tags checks can be selected by"
)

const cmdExample = `
  # Tags of the built-in checks
  ddct tags

  # Including plugin checks
  ddct tags --plugins cinder_volume
`

// AddCommand adds the tags subcommand to the root command.
func AddCommand(root *cobra.Command) {
	streams := genericiooptions.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}

	command := validate.NewTagsCommand(streams)

	cmd := &cobra.Command{
		Use:          cmdName,
		Short:        cmdShort,
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
