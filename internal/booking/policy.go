package booking

import "househunt/internal/listing"

// IsOwner reports whether the viewer owns the property. An absent or
// unauthenticated viewer never owns anything. Presentation uses this to pick
// between delete and book actions; the booking service re-enforces it rather
// than trusting that gating.
func IsOwner(p listing.Property, viewer *Viewer) bool {
	if viewer == nil || viewer.ID == "" {
		return false
	}
	return p.Creator.ID != "" && p.Creator.ID == viewer.ID
}
