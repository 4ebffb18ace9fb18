package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// ListVolunteersCmd creates the listVolunteers command
func ListVolunteersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listVolunteers",
		Short: "List all volunteers and their event assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteers, err := services.ListVolunteers(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(volunteers) == 0 {
				fmt.Println("\nNo volunteers found.")
				return nil
			}

			fmt.Printf("\nFound %d volunteers:\n\n", len(volunteers))
			for _, v := range volunteers {
				active := 0
				for _, id := range v.AssignedEvents {
					if !v.IsRemoved(id) {
						active++
					}
				}
				fmt.Printf("- %s (%s) - %s - %d active events\n", v.Name, v.ID, v.Email, active)
			}
			fmt.Println()

			return nil
		},
	}
}
