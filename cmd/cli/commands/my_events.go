package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// MyEventsCmd creates the myEvents command
func MyEventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "myEvents <email>",
		Short: "Show your events grouped by registration status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.MyEvents(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			printEventGroup("Active", colorGreen, result.Active)
			printEventGroup("Pending approval", colorYellow, result.Pending)
			printEventGroup("Removed", colorRed, result.Removed)
			printEventGroup("Cancelled", colorDim, result.Cancelled)
			fmt.Println()

			return nil
		},
	}
}

// printEventGroup prints one status group of a volunteer's event listing.
func printEventGroup(label, color string, entries []services.RegisteredEvent) {
	fmt.Printf("\n%s%s (%d):%s\n", color, label, len(entries), colorReset)
	if len(entries) == 0 {
		fmt.Println("  none")
		return
	}
	for _, entry := range entries {
		fmt.Printf("  %s  %s on %s as %s\n",
			entry.Event.ID, entry.Event.Title, entry.Event.Date, entry.Position)
	}
}
