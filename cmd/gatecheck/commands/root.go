// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCmd constructs the gatecheck root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("GATECHECK_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	var verbose bool

	cmd := &cobra.Command{
		Use:           "gatecheck",
		Short:         "gatecheck - presubmit checks for Git repositories",
		Long:          "gatecheck runs an ordered program of presubmit checks over the files of a Git repository and reports a single pass/fail verdict.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of gatecheck",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gatecheck version %s\n", version)
		},
	})

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
