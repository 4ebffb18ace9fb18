package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// SetPositionCmd creates the setPosition command
func SetPositionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setPosition <email> <event_id> <position>",
		Short: "Change a volunteer's position on an event or pending request",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ChangePosition(app.Ctx, app.Database, app.Logger,
				args[0], args[1], args[2]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Position changed to %s\n\n", args[2])
			return nil
		},
	}
}
