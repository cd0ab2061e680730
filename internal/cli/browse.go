package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"househunt/internal/feed"
	"househunt/internal/listing"
)

func newBrowseCmd() *cobra.Command {
	var category string
	var offline bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the listing feed",
		Long:  "Browse rental listings, optionally filtered by category. Categories: " + strings.Join(listing.Categories, ", ") + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), category, offline)
		},
	}

	cmd.Flags().StringVar(&category, "category", listing.CategoryAll, "category to filter by (All = unfiltered)")
	cmd.Flags().BoolVar(&offline, "offline", false, "show the last cached results instead of fetching")

	return cmd
}

func runBrowse(ctx context.Context, category string, offline bool) error {
	if !listing.ValidCategory(category) {
		return fmt.Errorf("unknown category %q (known: %s)", category, strings.Join(listing.Categories, ", "))
	}
	return runFeed(ctx, feed.Query{Category: category}, offline)
}

// runFeed fetches a feed query into a fresh store and renders the result.
// Successful fetches are written through to the offline cache.
func runFeed(ctx context.Context, q feed.Query, offline bool) error {
	if offline {
		return runFeedOffline(q)
	}

	svc := feed.NewService(newAPIClient(), feed.NewStore())
	props, err := svc.Fetch(ctx, q)
	if err != nil {
		return err
	}

	cacheListings(q.String(), props)

	if isJSON() {
		return printJSON(props)
	}
	return printListingTable(props)
}

func runFeedOffline(q feed.Query) error {
	repo, db, err := openCache()
	if err != nil {
		return err
	}
	defer closeDB(db)

	props, err := repo.Listings(q.String())
	if err != nil {
		return err
	}
	if len(props) == 0 {
		fmt.Printf("Nothing cached for %s. Run without --offline first.\n", q)
		return nil
	}

	if isJSON() {
		return printJSON(props)
	}
	return printListingTable(props)
}

// cacheListings writes fetched listings to the offline cache, best effort.
func cacheListings(query string, props []listing.Property) {
	repo, db, err := openCache()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening cache: %v\n", err)
		return
	}
	defer closeDB(db)

	if err := repo.ReplaceListings(query, props); err != nil {
		fmt.Fprintf(os.Stderr, "warning: caching listings: %v\n", err)
	}
}
