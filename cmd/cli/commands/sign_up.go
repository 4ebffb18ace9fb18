package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// SignUpCmd creates the signUp command
func SignUpCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signUp",
		Short: "Create a new user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")
			email, _ := cmd.Flags().GetString("email")
			phone, _ := cmd.Flags().GetString("phone")
			picture, _ := cmd.Flags().GetString("picture")
			role, _ := cmd.Flags().GetString("role")

			user, err := services.SignUp(app.Ctx, app.Database, app.Logger, services.SignUpInput{
				Username:       username,
				Password:       password,
				FirstName:      firstName,
				LastName:       lastName,
				Email:          email,
				Phone:          phone,
				ProfilePicture: picture,
				Role:           role,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Account created\n\n")
			fmt.Printf("User ID:  %s\n", user.ID)
			fmt.Printf("Username: %s\n", user.Username)
			fmt.Printf("Role:     %s\n\n", user.Role)

			return nil
		},
	}

	cmd.Flags().String("username", "", "Account username")
	cmd.Flags().String("password", "", "Account password")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("picture", "", "Profile picture URL")
	cmd.Flags().String("role", "user", "Account role (admin, volunteer or user)")

	return cmd
}
