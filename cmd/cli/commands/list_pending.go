package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
	"github.com/mdelacruz/volunteerhub/pkg/db"
)

// ListPendingCmd creates the listPending command
func ListPendingCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listPending",
		Short: "List registration requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			pending, err := services.ListPending(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}
			if !all {
				open := pending[:0]
				for _, p := range pending {
					if p.Status == db.PendingStatusPending {
						open = append(open, p)
					}
				}
				pending = open
			}

			if len(pending) == 0 {
				fmt.Println("\nNo pending requests.")
				return nil
			}

			fmt.Printf("\nFound %d requests:\n\n", len(pending))
			for _, p := range pending {
				fmt.Printf("- %s  %s%-9s%s %s <%s> for %s as %s (%s)\n",
					p.ID,
					statusColor(p.Status), p.Status, colorReset,
					p.VolunteerName, p.VolunteerEmail,
					p.EventTitle, p.Position,
					time.UnixMilli(p.Timestamp).Format("2006-01-02 15:04"))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include approved and rejected requests")
	return cmd
}

// statusColor maps a request status to its display color.
func statusColor(status db.PendingStatus) string {
	switch status {
	case db.PendingStatusApproved:
		return colorGreen
	case db.PendingStatusRejected:
		return colorRed
	default:
		return colorYellow
	}
}
