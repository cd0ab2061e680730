// Package cli defines the cobra command tree for the hh marketplace client.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"househunt/internal/api"
	"househunt/internal/cache"
)

var (
	flagFormat string
	flagServer string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hh",
		Short:         "Browse and book rental properties",
		Long:          "A client for the HouseHunt rental marketplace. Browse listings by category, search, view property details, and book stays.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "marketplace server URL (default: from config or http://localhost:3001)")

	root.AddCommand(
		newBrowseCmd(),
		newSearchCmd(),
		newShowCmd(),
		newBookCmd(),
		newTripsCmd(),
		newRemoveCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the marketplace API using the
// stored credential, if any.
func newAPIClient() *api.Client {
	return api.New(getServerURL(), getToken())
}

// openCache opens the offline cache database at its default path.
func openCache() (*cache.Repository, *sql.DB, error) {
	path, err := cache.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := cache.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRepository(db), db, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the cache database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing cache: %v\n", err)
	}
}
