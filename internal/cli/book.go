package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"househunt/internal/booking"
)

func newBookCmd() *cobra.Command {
	var checkin, checkout string
	var strictDates bool

	cmd := &cobra.Command{
		Use:   "book <id>",
		Short: "Book a stay at a property",
		Long:  "Book a property for a date range. The total price is the nightly rate times the number of nights.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(cmd.Context(), args[0], checkin, checkout, strictDates)
		},
	}

	cmd.Flags().StringVar(&checkin, "checkin", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkout, "checkout", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&strictDates, "strict-dates", false, "only treat bookings with overlapping dates as conflicts")
	_ = cmd.MarkFlagRequired("checkin")
	_ = cmd.MarkFlagRequired("checkout")

	return cmd
}

func runBook(ctx context.Context, id, checkin, checkout string, strictDates bool) error {
	viewer := currentViewer()
	if viewer == nil {
		// Fail before touching the network; the service would refuse
		// anyway.
		return booking.ErrUnauthenticated
	}

	r := booking.ParseDateRange(checkin, checkout)
	if !r.IsValid() {
		return booking.ErrInvalidDateRange
	}

	// The earliest selectable check-in is today.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if r.CheckIn.Before(today) {
		return fmt.Errorf("check-in date %s is in the past", r.StartDate())
	}

	c := newAPIClient()

	prop, err := c.GetProperty(ctx, id)
	if err != nil {
		return err
	}

	existing, err := c.UserBookingsForProperty(ctx, prop.ID)
	if err != nil {
		return fmt.Errorf("fetching your bookings: %w", err)
	}

	mode := booking.ConflictSameProperty
	if strictDates {
		mode = booking.ConflictDateOverlap
	}
	svc := booking.NewService(c, booking.Checker{Mode: mode})

	created, err := svc.Create(ctx, viewer, *prop, r, existing)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("Booked %s for %d nights (%s to %s).\n",
		displayTitle(prop), r.Nights(), r.StartDate(), r.EndDate())
	fmt.Printf("Total: %s\n", formatPrice(created.TotalPrice))
	fmt.Println("\nSee your trips with 'hh trips'.")
	return nil
}
