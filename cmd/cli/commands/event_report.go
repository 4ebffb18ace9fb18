package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// EventReportCmd creates the eventReport command
func EventReportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "eventReport",
		Short: "Show cancelled events and events with no open slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cancelled, full, err := services.CancelledAndFull(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nCancelled events (%d):\n", len(cancelled))
			if len(cancelled) == 0 {
				fmt.Println("  none")
			}
			for _, e := range cancelled {
				fmt.Printf("  %s%s  %s on %s%s\n", colorRed, e.ID, e.Title, e.Date, colorReset)
			}

			fmt.Printf("\nFull events (%d):\n", len(full))
			if len(full) == 0 {
				fmt.Println("  none")
			}
			for _, e := range full {
				fmt.Printf("  %s%s  %s on %s [%d/%d]%s\n",
					colorYellow, e.ID, e.Title, e.Date, e.CurrentVolunteers, e.MaxVolunteers, colorReset)
			}
			fmt.Println()

			return nil
		},
	}
}
