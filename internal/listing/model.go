// Package listing provides the property listing model shared by the feed,
// booking, and cache layers.
package listing

import (
	"encoding/json"
	"fmt"
)

// CategoryAll selects the unfiltered feed; it is not a real category.
const CategoryAll = "All"

// Categories is the category rail shown when browsing the feed.
var Categories = []string{
	CategoryAll,
	"Beach",
	"Lakefront",
	"Cabin",
	"Countryside",
	"Camping",
	"Castle",
	"Island",
	"Luxury",
}

// ValidCategory returns true if label is a known category.
func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// CreatorRef is a listing's owner reference. Depending on the endpoint the
// server returns it either as a bare user id or as a populated user document.
type CreatorRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UnmarshalJSON accepts both wire shapes of the creator field.
func (c *CreatorRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	type plain CreatorRef
	return json.Unmarshal(data, (*plain)(c))
}

// MarshalJSON writes the populated document shape.
func (c CreatorRef) MarshalJSON() ([]byte, error) {
	type plain CreatorRef
	return json.Marshal(plain(c))
}

// Property is a read-only projection of a rentable unit. Records are owned
// by the marketplace server; this client never mutates them.
type Property struct {
	ID          string     `json:"_id"`
	Creator     CreatorRef `json:"creator"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	City        string     `json:"city"`
	Province    string     `json:"province"`
	Country     string     `json:"country"`
	Category    string     `json:"category"`
	Type        string     `json:"type"`
	Price       float64    `json:"price"`
	PhotoPaths  []string   `json:"listingPhotoPaths"`
}

// Validate checks the invariants a listing must satisfy before it is let
// past the API boundary.
func (p *Property) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("listing: missing id")
	}
	if p.Price <= 0 {
		return fmt.Errorf("listing %s: nightly price must be positive, got %g", p.ID, p.Price)
	}
	return nil
}

// Location formats the listing's location for display.
func (p *Property) Location() string {
	return fmt.Sprintf("%s, %s, %s", p.City, p.Province, p.Country)
}
