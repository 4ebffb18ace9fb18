package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// EditEventCmd creates the editEvent command
func EditEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editEvent <event_id>",
		Short: "Edit an existing event's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := eventInputFromFlags(cmd)
			if err != nil {
				return err
			}

			event, err := services.UpdateEvent(app.Ctx, app.Database, app.Logger, args[0], input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event updated\n\n")
			fmt.Printf("Event ID: %s\n", event.ID)
			fmt.Printf("Title:    %s\n", event.Title)
			fmt.Printf("When:     %s %s\n", event.Date, event.Time)
			fmt.Printf("Where:    %s\n", event.Location)
			fmt.Printf("Slots:    %d\n\n", event.MaxVolunteers)

			return nil
		},
	}

	addEventFlags(cmd)
	return cmd
}
