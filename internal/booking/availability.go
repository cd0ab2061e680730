package booking

// ConflictMode selects how availability conflicts are detected.
type ConflictMode int

const (
	// ConflictSameProperty flags any existing booking by the guest on the
	// property, whether or not the stays overlap on the calendar. This is
	// the marketplace's one-booking-per-guest-per-property policy.
	ConflictSameProperty ConflictMode = iota

	// ConflictDateOverlap additionally requires the candidate range to
	// overlap an existing stay on the property.
	ConflictDateOverlap
)

// Checker decides whether a candidate stay conflicts with the guest's
// existing bookings.
type Checker struct {
	Mode ConflictMode
}

// HasConflict reports whether booking candidate on the property would
// collide with one of the guest's existing bookings. Bookings on other
// properties are ignored, as are bookings recorded for a different guest.
// An empty booking list never conflicts.
func (c Checker) HasConflict(guestID, propertyID string, candidate DateRange, existing []Booking) bool {
	for _, b := range existing {
		if b.Listing.ID != propertyID {
			continue
		}
		if b.GuestID != "" && b.GuestID != guestID {
			continue
		}
		if c.Mode == ConflictDateOverlap && !candidate.Overlaps(b.Range()) {
			continue
		}
		return true
	}
	return false
}
