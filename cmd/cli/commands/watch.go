package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
	"github.com/mdelacruz/volunteerhub/pkg/db"
)

// WatchCmd creates the watch command
func WatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the store and print a summary whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, _ := cmd.Flags().GetInt("interval")
			interval := app.Cfg.PollInterval()
			if cmd.Flags().Changed("interval") {
				interval = time.Duration(seconds) * time.Second
			}

			ctx, stop := signal.NotifyContext(app.Ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("\nWatching store every %s (press Ctrl+C to stop)\n", interval)

			err := services.Watch(ctx, app.Database, app.Logger, interval, printSnapshot)
			if errors.Is(err, context.Canceled) {
				fmt.Println("\nStopped.")
				return nil
			}
			return err
		},
	}

	cmd.Flags().Int("interval", 0, "Poll interval in seconds (overrides config)")
	return cmd
}

// printSnapshot prints one change notification: collection counts and the
// event table with derived slot counts.
func printSnapshot(snap services.Snapshot) {
	open := 0
	for _, p := range snap.Pending {
		if p.Status == db.PendingStatusPending {
			open++
		}
	}
	fmt.Printf("\n[%s] events=%d volunteers=%d pending=%d(open %d) users=%d saved=%d\n",
		time.Now().Format("15:04:05"),
		len(snap.Events), len(snap.Volunteers), len(snap.Pending), open,
		len(snap.Users), len(snap.SavedEvents))
	for _, e := range snap.Events {
		printEventLine(e)
	}
}
