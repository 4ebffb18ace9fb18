package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// SavedEventsCmd creates the savedEvents command
func SavedEventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "savedEvents <email>",
		Short: "List your saved events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := services.ListSaved(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			if len(saved) == 0 {
				fmt.Println("\nNo saved events.")
				return nil
			}

			fmt.Printf("\nFound %d saved events:\n\n", len(saved))
			for _, e := range saved {
				printEventLine(e)
			}
			fmt.Println()

			return nil
		},
	}
}
