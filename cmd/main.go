package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/datera/ddct/cmd/check"
	"github.com/datera/ddct/cmd/list"
	"github.com/datera/ddct/cmd/tags"
	"github.com/datera/ddct/cmd/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "ddct",
		Short: "Datera Deployment Check Tool",
		Long: `ddct validates that a host is ready to consume Datera storage.

It runs a catalog of independent checks (OS settings, network reachability,
daemon state, configuration files) and reports failures and warnings by code.`,
		SilenceErrors: true,
	}

	version.AddCommand(cmd)
	check.AddCommand(cmd)
	tags.AddCommand(cmd)
	list.AddCommand(cmd)

	if err := cmd.Execute(); err != nil {
		if _, writeErr := os.Stderr.WriteString(err.Error() + "\n"); writeErr != nil {
			os.Exit(1)
		}
		os.Exit(1)
	}
}
