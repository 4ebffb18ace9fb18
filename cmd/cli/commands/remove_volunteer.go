package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// RemoveVolunteerCmd creates the removeVolunteer command
func RemoveVolunteerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeVolunteer <volunteer_id> <event_id>",
		Short: "Remove a volunteer from an event, keeping their history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveFromEvent(app.Ctx, app.Database, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Volunteer %s removed from event %s\n\n", args[0], args[1])
			return nil
		},
	}
}
