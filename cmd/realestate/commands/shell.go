package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"realestate/internal/shell"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive command shell over the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt)
			defer stop()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			sh := shell.New(a.services, a.portfolio, os.Stdin, os.Stdout, os.Stderr)
			sh.Prompt = true
			if err := sh.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
