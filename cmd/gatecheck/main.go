// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bartekus/gatecheck/cmd/gatecheck/commands"
	"github.com/bartekus/gatecheck/cmd/gatecheck/internal/clierr"
)

func main() {
	// An interrupt cancels the context; the engine converts it into a
	// Cancel outcome for the running check and aborts the program.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
