package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"househunt/internal/booking"
	"househunt/internal/listing"
)

// Repository reads and writes the offline cache.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a cache repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ReplaceListings replaces the cached result set for one feed query.
func (r *Repository) ReplaceListings(query string, props []listing.Property) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM listings WHERE query = ?", query); err != nil {
		return fmt.Errorf("clearing cached listings: %w", err)
	}

	const insertSQL = `INSERT INTO listings
		(id, query, creator_id, title, city, province, country, category, type, price, photo_paths)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, p := range props {
		photos, err := json.Marshal(p.PhotoPaths)
		if err != nil {
			return fmt.Errorf("marshaling photo paths: %w", err)
		}
		if _, err := tx.Exec(insertSQL,
			p.ID, query, p.Creator.ID, p.Title,
			p.City, p.Province, p.Country,
			p.Category, p.Type, p.Price, string(photos),
		); err != nil {
			return fmt.Errorf("caching listing %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Listings returns the cached result set for one feed query, in insertion
// order.
func (r *Repository) Listings(query string) ([]listing.Property, error) {
	rows, err := r.db.Query(`SELECT id, creator_id, title, city, province, country, category, type, price, photo_paths
		FROM listings WHERE query = ? ORDER BY rowid`, query)
	if err != nil {
		return nil, fmt.Errorf("querying cached listings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			fmt.Printf("warning: closing rows: %v\n", closeErr)
		}
	}()

	var props []listing.Property
	for rows.Next() {
		var p listing.Property
		var photos string
		if err := rows.Scan(&p.ID, &p.Creator.ID, &p.Title,
			&p.City, &p.Province, &p.Country,
			&p.Category, &p.Type, &p.Price, &photos); err != nil {
			return nil, fmt.Errorf("scanning cached listing: %w", err)
		}
		if err := json.Unmarshal([]byte(photos), &p.PhotoPaths); err != nil {
			return nil, fmt.Errorf("decoding photo paths: %w", err)
		}
		props = append(props, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached listings: %w", err)
	}

	return props, nil
}

// ReplaceTrips replaces the cached copy of the viewer's bookings.
func (r *Repository) ReplaceTrips(bookings []booking.Booking) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM trips"); err != nil {
		return fmt.Errorf("clearing cached trips: %w", err)
	}

	const insertSQL = `INSERT INTO trips
		(id, listing_id, title, start_date, end_date, total_price)
		VALUES (?, ?, ?, ?, ?, ?)`

	for _, b := range bookings {
		if _, err := tx.Exec(insertSQL,
			b.ID, b.Listing.ID, b.Listing.Title,
			b.StartDate, b.EndDate, b.TotalPrice,
		); err != nil {
			return fmt.Errorf("caching trip %s: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Trips returns the cached copy of the viewer's bookings.
func (r *Repository) Trips() ([]booking.Booking, error) {
	rows, err := r.db.Query(`SELECT id, listing_id, title, start_date, end_date, total_price
		FROM trips ORDER BY start_date`)
	if err != nil {
		return nil, fmt.Errorf("querying cached trips: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			fmt.Printf("warning: closing rows: %v\n", closeErr)
		}
	}()

	var trips []booking.Booking
	for rows.Next() {
		var b booking.Booking
		if err := rows.Scan(&b.ID, &b.Listing.ID, &b.Listing.Title,
			&b.StartDate, &b.EndDate, &b.TotalPrice); err != nil {
			return nil, fmt.Errorf("scanning cached trip: %w", err)
		}
		trips = append(trips, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached trips: %w", err)
	}

	return trips, nil
}
