package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"realestate/internal/broker"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print catalog events published to Redis by running servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Events.RedisURL == "" {
				return fmt.Errorf("events.redis_url (or REDIS_URL) is required to watch")
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pub, err := broker.Dial(ctx, cfg.Events)
			if err != nil {
				return err
			}
			defer pub.Close()

			events, err := pub.Subscribe(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s. Ctrl-C to stop.\n", pub.Channel())
			for e := range events {
				fmt.Fprintf(out, "%s %-20s %s #%d\n",
					e.Time.Format("15:04:05"), e.Type, e.Entity, e.RecordID)
			}
			return nil
		},
	}
}
