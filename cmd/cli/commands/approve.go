package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <request_id>",
		Short: "Approve a pending registration request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteer, err := services.ApproveRequest(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Request approved\n\n")
			fmt.Printf("Volunteer: %s (%s)\n", volunteer.Name, volunteer.Email)
			fmt.Printf("Events:    %d assigned\n\n", len(volunteer.AssignedEvents))

			return nil
		},
	}
}
