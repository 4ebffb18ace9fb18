package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// SaveEventCmd creates the saveEvent command
func SaveEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "saveEvent <email> <event_id>",
		Short: "Save an event to your list for later",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.SaveEvent(app.Ctx, app.Database, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Event %s saved\n\n", args[1])
			return nil
		},
	}
}
