package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"househunt/internal/booking"
)

func newTripsCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "trips",
		Short: "List your bookings",
		Long:  "List every stay you have booked, newest check-in last.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrips(cmd.Context(), offline)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "show the last cached trips instead of fetching")

	return cmd
}

func runTrips(ctx context.Context, offline bool) error {
	if offline {
		return runTripsOffline()
	}

	if currentViewer() == nil {
		return booking.ErrUnauthenticated
	}

	trips, err := newAPIClient().UserBookings(ctx)
	if err != nil {
		return err
	}

	cacheTrips(trips)

	if isJSON() {
		return printJSON(trips)
	}
	return printTripsTable(trips)
}

func runTripsOffline() error {
	repo, db, err := openCache()
	if err != nil {
		return err
	}
	defer closeDB(db)

	trips, err := repo.Trips()
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Println("No cached trips. Run 'hh trips' online first.")
		return nil
	}

	if isJSON() {
		return printJSON(trips)
	}
	return printTripsTable(trips)
}

// cacheTrips writes fetched trips to the offline cache, best effort.
func cacheTrips(trips []booking.Booking) {
	repo, db, err := openCache()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening cache: %v\n", err)
		return
	}
	defer closeDB(db)

	if err := repo.ReplaceTrips(trips); err != nil {
		fmt.Fprintf(os.Stderr, "warning: caching trips: %v\n", err)
	}
}
