package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// CancelRequestCmd creates the cancelRequest command
func CancelRequestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelRequest <email> <event_id>",
		Short: "Withdraw your own pending registration request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.CancelRequest(app.Ctx, app.Database, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Request for event %s cancelled\n\n", args[1])
			return nil
		},
	}
}
