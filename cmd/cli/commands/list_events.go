package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
	"github.com/mdelacruz/volunteerhub/pkg/db"
)

// ANSI color codes shared by the listing commands
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// ListEventsCmd creates the listEvents command
func ListEventsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listEvents",
		Short: "List all events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")

			events, err := services.ListEvents(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}
			if category != "" {
				filtered := events[:0]
				for _, e := range events {
					if e.HasCategory(category) {
						filtered = append(filtered, e)
					}
				}
				events = filtered
			}

			if len(events) == 0 {
				fmt.Println("\nNo events found.")
				return nil
			}

			fmt.Printf("\nFound %d events:\n\n", len(events))
			for _, e := range events {
				printEventLine(e)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("category", "", "Only show events offering this position")
	return cmd
}

// printEventLine prints one catalog row with a colored slot marker.
func printEventLine(e db.Event) {
	fmt.Printf("- %s  %s on %s %s at %s  %s\n",
		e.ID, e.Title, e.Date, e.Time, e.Location, slotLabel(e))
	if len(e.VolunteerCategories) > 0 {
		fmt.Printf("  %sPositions: %s%s\n", colorDim, strings.Join(e.VolunteerCategories, ", "), colorReset)
	}
}

// slotLabel renders the slot state of an event: red when cancelled, yellow
// when full, green otherwise.
func slotLabel(e db.Event) string {
	if e.Canceled {
		return colorRed + "[cancelled]" + colorReset
	}
	count := fmt.Sprintf("[%d/%d]", e.CurrentVolunteers, e.MaxVolunteers)
	if services.IsFull(e) {
		return colorYellow + count + " full" + colorReset
	}
	return colorGreen + count + colorReset
}
