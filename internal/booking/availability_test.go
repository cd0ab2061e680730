package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func existingBooking(guestID, listingID, start, end string) Booking {
	return Booking{
		ID:        "b1",
		Listing:   ListingRef{ID: listingID},
		GuestID:   guestID,
		StartDate: start,
		EndDate:   end,
	}
}

func TestHasConflictSamePropertyPolicy(t *testing.T) {
	checker := Checker{Mode: ConflictSameProperty}
	candidate := ParseDateRange("2024-08-01", "2024-08-05")

	t.Run("no bookings means no conflict", func(t *testing.T) {
		assert.False(t, checker.HasConflict("guest1", "prop1", candidate, nil))
	})

	t.Run("booking on another property is ignored", func(t *testing.T) {
		existing := []Booking{existingBooking("guest1", "prop2", "2024-08-01", "2024-08-05")}
		assert.False(t, checker.HasConflict("guest1", "prop1", candidate, existing))
	})

	t.Run("same property conflicts even without date overlap", func(t *testing.T) {
		existing := []Booking{existingBooking("guest1", "prop1", "2024-01-01", "2024-01-05")}
		assert.True(t, checker.HasConflict("guest1", "prop1", candidate, existing))
	})

	t.Run("another guest's booking is ignored", func(t *testing.T) {
		existing := []Booking{existingBooking("guest2", "prop1", "2024-08-01", "2024-08-05")}
		assert.False(t, checker.HasConflict("guest1", "prop1", candidate, existing))
	})

	t.Run("booking without recorded guest still counts", func(t *testing.T) {
		// GET /bookings/user already scopes results to the viewer, so a
		// missing customerId must not defeat the check.
		existing := []Booking{existingBooking("", "prop1", "2024-01-01", "2024-01-05")}
		assert.True(t, checker.HasConflict("guest1", "prop1", candidate, existing))
	})
}

func TestHasConflictDateOverlapMode(t *testing.T) {
	checker := Checker{Mode: ConflictDateOverlap}
	candidate := ParseDateRange("2024-08-01", "2024-08-05")

	t.Run("non-overlapping stay on same property is allowed", func(t *testing.T) {
		existing := []Booking{existingBooking("guest1", "prop1", "2024-01-01", "2024-01-05")}
		assert.False(t, checker.HasConflict("guest1", "prop1", candidate, existing))
	})

	t.Run("overlapping stay conflicts", func(t *testing.T) {
		existing := []Booking{existingBooking("guest1", "prop1", "2024-08-04", "2024-08-08")}
		assert.True(t, checker.HasConflict("guest1", "prop1", candidate, existing))
	})

	t.Run("back-to-back stays do not conflict", func(t *testing.T) {
		existing := []Booking{existingBooking("guest1", "prop1", "2024-08-05", "2024-08-08")}
		assert.False(t, checker.HasConflict("guest1", "prop1", candidate, existing))
	})
}
