package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
)

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "register <email> <name> <event_id> <position>",
		Short: "Request registration for an event in the given position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := services.RequestRegistration(app.Ctx, app.Database, app.Logger,
				args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Registration requested\n\n")
			fmt.Printf("Request ID: %s\n", request.ID)
			fmt.Printf("Event:      %s (%s)\n", request.EventTitle, request.EventID)
			fmt.Printf("Position:   %s\n", request.Position)
			fmt.Printf("Requested:  %s\n\n", time.UnixMilli(request.Timestamp).Format("2006-01-02 15:04:05"))

			return nil
		},
	}
}
