// Package booking implements the booking and availability core: date
// ranges, price computation, conflict checks, and the booking service that
// submits confirmed stays to the marketplace.
package booking

import (
	"math"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateRange represents a half-open stay interval [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange builds a range from two calendar dates, normalized to UTC.
func NewDateRange(checkIn, checkOut time.Time) DateRange {
	return DateRange{CheckIn: checkIn.UTC(), CheckOut: checkOut.UTC()}
}

// ParseDateRange builds a range from two ISO calendar date strings. A date
// that fails to parse is left as the zero time, which makes the range
// invalid; callers check IsValid rather than handling an error here.
func ParseDateRange(checkIn, checkOut string) DateRange {
	var r DateRange
	if t, err := time.Parse(DateLayout, checkIn); err == nil {
		r.CheckIn = t.UTC()
	}
	if t, err := time.Parse(DateLayout, checkOut); err == nil {
		r.CheckOut = t.UTC()
	}
	return r
}

// Nights returns the stay length, the ceiling of check-out minus check-in in
// 24-hour days. It is 0, never negative, when check-out is not after
// check-in or either date is missing.
func (r DateRange) Nights() int {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return 0
	}
	n := int(math.Ceil(r.CheckOut.Sub(r.CheckIn).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// IsValid returns true iff both dates are present and the stay is at least
// one night.
func (r DateRange) IsValid() bool {
	return !r.CheckIn.IsZero() && !r.CheckOut.IsZero() && r.Nights() > 0
}

// Overlaps reports whether two half-open ranges share at least one night.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// StartDate returns the check-in date in wire format.
func (r DateRange) StartDate() string {
	return r.CheckIn.Format(DateLayout)
}

// EndDate returns the check-out date in wire format.
func (r DateRange) EndDate() string {
	return r.CheckOut.Format(DateLayout)
}
