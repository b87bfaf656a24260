// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/gatecheck/internal/checks"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available check programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range checks.Names() {
				fmt.Fprintf(out, "%s:\n", name)
				program, err := checks.Program(name)
				if err != nil {
					return err
				}
				for _, c := range program {
					fmt.Fprintf(out, "  %s\n", c.Name())
				}
			}
			return nil
		},
	}
}
