package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"househunt/internal/booking"
	"househunt/internal/listing"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// displayTitle returns the listing's title, falling back to its location.
func displayTitle(p *listing.Property) string {
	if p.Title != "" {
		return p.Title
	}
	return p.Location()
}

// printListingTable prints the feed as a formatted table.
func printListingTable(props []listing.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		fmt.Println("Try adjusting your search terms or browse our categories.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tCATEGORY\tTYPE\tPRICE/NIGHT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t--------\t--------\t----\t-----------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for i := range props {
		p := &props[i]
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, truncate(displayTitle(p), 30), truncate(p.Location(), 32),
			p.Category, p.Type, formatPrice(p.Price)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d properties\n", len(props))
	return nil
}

// printListingDetail prints a single property in text format.
func printListingDetail(p *listing.Property) {
	fmt.Printf("%s\n", displayTitle(p))
	fmt.Printf("  ID:        %s\n", p.ID)
	fmt.Printf("  Location:  %s\n", p.Location())
	if p.Category != "" {
		fmt.Printf("  Category:  %s\n", p.Category)
	}
	if p.Type != "" {
		fmt.Printf("  Type:      %s\n", p.Type)
	}
	fmt.Printf("  Price:     %s per night\n", formatPrice(p.Price))
	if owner := strings.TrimSpace(p.Creator.FirstName + " " + p.Creator.LastName); owner != "" {
		fmt.Printf("  Host:      %s\n", owner)
	}
	if len(p.PhotoPaths) > 0 {
		fmt.Printf("  Photos:    %d\n", len(p.PhotoPaths))
	}
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
}

// printTripsTable prints the viewer's bookings as a formatted table.
func printTripsTable(trips []booking.Booking) error {
	if len(trips) == 0 {
		fmt.Println("No trips booked yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "PROPERTY\tCHECK-IN\tCHECK-OUT\tNIGHTS\tTOTAL"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--------\t--------\t---------\t------\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, b := range trips {
		name := b.Listing.Title
		if name == "" {
			name = b.Listing.ID
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			truncate(name, 30), b.StartDate, b.EndDate,
			b.Range().Nights(), formatPrice(b.TotalPrice)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d trips\n", len(trips))
	return nil
}

// formatPrice formats an amount as dollars with thousands separators.
// Whole amounts drop the cents.
func formatPrice(amount float64) string {
	cents := ""
	whole := int64(amount)
	if frac := amount - math.Trunc(amount); frac != 0 {
		cents = fmt.Sprintf(".%02d", int64(math.Round(frac*100)))
	}

	s := fmt.Sprintf("%d", whole)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}

	return "$" + s + cents
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
