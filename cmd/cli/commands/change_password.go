package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// ChangePasswordCmd creates the changePassword command
func ChangePasswordCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "changePassword <email> <current_password> <new_password>",
		Short: "Change an account's password after verifying the current one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ChangePassword(app.Ctx, app.Database, app.Logger,
				args[0], args[1], args[2]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Password changed\n\n")
			return nil
		},
	}
}
