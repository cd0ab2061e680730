package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"househunt/internal/booking"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a property you own",
		Long:  "Delete one of your own listings from the marketplace. Cached feeds are refreshed on the next browse.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), args[0])
		},
	}
}

func runRemove(ctx context.Context, id string) error {
	c := newAPIClient()

	prop, err := c.GetProperty(ctx, id)
	if err != nil {
		return err
	}

	svc := booking.NewService(c, booking.Checker{})
	if err := svc.DeleteProperty(ctx, currentViewer(), *prop); err != nil {
		return err
	}

	fmt.Printf("Deleted %s.\n", displayTitle(prop))
	return nil
}
