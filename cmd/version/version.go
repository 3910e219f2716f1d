package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datera/ddct/internal/version"
	printerjson "github.com/datera/ddct/pkg/printer/json"
	printeryaml "github.com/datera/ddct/pkg/printer/yaml"
)

const (
	cmdName  = "version"
	cmdShort = "Show version information"
)

type info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Date    string `json:"date"    yaml:"date"`
}

// AddCommand adds the version subcommand to the root command.
func AddCommand(root *cobra.Command) {
	var outputFormat string

	cmd := &cobra.Command{
		Use:          cmdName,
		Short:        cmdShort,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := info{
				Version: version.GetVersion(),
				Commit:  version.GetCommit(),
				Date:    version.GetDate(),
			}

			switch outputFormat {
			case "json":
				return printerjson.NewRenderer(printerjson.WithWriter[info](cmd.OutOrStdout())).Render(v)
			case "yaml":
				return printeryaml.NewRenderer(printeryaml.WithWriter[info](cmd.OutOrStdout())).Render(v)
			default:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "ddct version %s (commit: %s, built: %s)\n", v.Version, v.Commit, v.Date)
				if err != nil {
					return fmt.Errorf("failed to write version information: %w", err)
				}

				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|yaml)")

	root.AddCommand(cmd)
}
