package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// UnsaveEventCmd creates the unsaveEvent command
func UnsaveEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unsaveEvent <event_id>",
		Short: "Remove an event from the saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.UnsaveEvent(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Event %s unsaved\n\n", args[0])
			return nil
		},
	}
}
