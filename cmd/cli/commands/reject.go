package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// RejectCmd creates the reject command
func RejectCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <request_id>",
		Short: "Reject a pending registration request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RejectRequest(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Request %s rejected\n\n", args[0])
			return nil
		},
	}
}
