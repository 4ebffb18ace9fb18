package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/volunteerhub/pkg/core/services"
	"github.com/mdelacruz/volunteerhub/pkg/db"
)

// CreateEventCmd creates the createEvent command
func CreateEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createEvent",
		Short: "Create a new volunteering event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := eventInputFromFlags(cmd)
			if err != nil {
				return err
			}

			event, err := services.CreateEvent(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event created\n\n")
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

// addEventFlags registers the shared event field flags used by createEvent
// and editEvent.
func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Event title")
	cmd.Flags().String("date", "", "Event date (e.g. 2026-09-12)")
	cmd.Flags().String("time", "", "Event start time (e.g. 10:00 AM)")
	cmd.Flags().String("description", "", "Event description")
	cmd.Flags().String("location", "", "Event location")
	cmd.Flags().Float64("lat", 0, "Location latitude")
	cmd.Flags().Float64("lng", 0, "Location longitude")
	cmd.Flags().String("cover-photo", "", "Cover photo URL")
	cmd.Flags().StringSlice("category", nil, "Volunteer position category (repeatable)")
	cmd.Flags().StringSlice("tag", nil, "Event tag (repeatable)")
	cmd.Flags().Int("max", 0, "Maximum number of volunteers")
}

// eventInputFromFlags collects the event field flags into a service input.
func eventInputFromFlags(cmd *cobra.Command) (services.EventInput, error) {
	title, _ := cmd.Flags().GetString("title")
	date, _ := cmd.Flags().GetString("date")
	timeOfDay, _ := cmd.Flags().GetString("time")
	description, _ := cmd.Flags().GetString("description")
	location, _ := cmd.Flags().GetString("location")
	coverPhoto, _ := cmd.Flags().GetString("cover-photo")
	categories, _ := cmd.Flags().GetStringSlice("category")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	maxVolunteers, _ := cmd.Flags().GetInt("max")

	input := services.EventInput{
		Title:               title,
		Date:                date,
		Time:                timeOfDay,
		Description:         description,
		Location:            location,
		CoverPhoto:          coverPhoto,
		VolunteerCategories: categories,
		Tags:                tags,
		MaxVolunteers:       maxVolunteers,
	}

	// Coordinates are attached only when both halves were given.
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
			return input, fmt.Errorf("--lat and --lng must be given together")
		}
		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")
		input.LocationCoordinates = &db.Coordinates{Latitude: lat, Longitude: lng}
	}

	return input, nil
}
