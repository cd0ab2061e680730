package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"househunt/internal/booking"
)

func newShowCmd() *cobra.Command {
	var checkin, checkout string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show property details",
		Long:  "Show full details for a property. With --checkin and --checkout, previews the total price for the stay.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], checkin, checkout)
		},
	}

	cmd.Flags().StringVar(&checkin, "checkin", "", "check-in date (YYYY-MM-DD) for a price preview")
	cmd.Flags().StringVar(&checkout, "checkout", "", "check-out date (YYYY-MM-DD) for a price preview")

	return cmd
}

func runShow(ctx context.Context, id, checkin, checkout string) error {
	c := newAPIClient()

	prop, err := c.GetProperty(ctx, id)
	if err != nil {
		return err
	}

	viewer := currentViewer()

	// The viewer's bookings on this property, when logged in. Failure to
	// fetch them only degrades the display.
	var existing []booking.Booking
	if viewer != nil {
		existing, err = c.UserBookingsForProperty(ctx, prop.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: fetching your bookings: %v\n", err)
		}
	}

	if isJSON() {
		return printJSON(struct {
			Property interface{}       `json:"property"`
			Bookings []booking.Booking `json:"bookings,omitempty"`
		}{prop, existing})
	}

	printListingDetail(prop)

	if booking.IsOwner(*prop, viewer) {
		fmt.Println("\nYou own this property. Use 'hh remove' to delete it.")
		return nil
	}

	if len(existing) > 0 {
		fmt.Printf("\nYou already have a booking here (%s to %s).\n",
			existing[0].StartDate, existing[0].EndDate)
	}

	if checkin != "" || checkout != "" {
		r := booking.ParseDateRange(checkin, checkout)
		if !r.IsValid() {
			fmt.Println("\nInvalid dates: check-out must be after check-in.")
			return nil
		}
		total := booking.TotalPrice(prop.Price, r)
		fmt.Printf("\n%d nights from %s to %s: %s total\n",
			r.Nights(), r.StartDate(), r.EndDate(), formatPrice(total))
	}

	return nil
}
