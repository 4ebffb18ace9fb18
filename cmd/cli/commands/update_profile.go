package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// UpdateProfileCmd creates the updateProfile command
func UpdateProfileCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateProfile <email>",
		Short: "Update the username, phone, or picture of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			phone, _ := cmd.Flags().GetString("phone")
			picture, _ := cmd.Flags().GetString("picture")

			user, err := services.UpdateProfile(app.Ctx, app.Database, app.Logger, args[0], services.ProfileInput{
				Username:       username,
				Phone:          phone,
				ProfilePicture: picture,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Profile updated\n\n")
			fmt.Printf("Username: %s\n", user.Username)
			fmt.Printf("Phone:    %s\n\n", user.Phone)

			return nil
		},
	}

	cmd.Flags().String("username", "", "New username")
	cmd.Flags().String("phone", "", "New phone number")
	cmd.Flags().String("picture", "", "New profile picture URL")

	return cmd
}
