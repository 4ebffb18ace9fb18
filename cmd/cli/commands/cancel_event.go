package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// CancelEventCmd creates the cancelEvent command
func CancelEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelEvent <event_id>",
		Short: "Cancel an event, keeping its volunteer records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.CancelEvent(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Event %s cancelled\n\n", args[0])
			return nil
		},
	}
}
