package booking

import "encoding/json"

// ListingRef is a booking's property reference. `GET /bookings/user` returns
// it populated; other endpoints return the bare id.
type ListingRef struct {
	ID    string  `json:"_id"`
	Title string  `json:"title"`
	City  string  `json:"city"`
	Price float64 `json:"price"`
}

// UnmarshalJSON accepts both wire shapes of the listingId field.
func (l *ListingRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &l.ID)
	}
	type plain ListingRef
	return json.Unmarshal(data, (*plain)(l))
}

// MarshalJSON writes the populated document shape.
func (l ListingRef) MarshalJSON() ([]byte, error) {
	type plain ListingRef
	return json.Marshal(plain(l))
}

// Booking is a guest's reservation of a property. Records are owned by the
// marketplace server and are immutable from this client's perspective.
type Booking struct {
	ID         string     `json:"_id"`
	Listing    ListingRef `json:"listingId"`
	GuestID    string     `json:"customerId"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	TotalPrice float64    `json:"totalPrice"`
}

// Range returns the booking's stay interval.
func (b Booking) Range() DateRange {
	return ParseDateRange(b.StartDate, b.EndDate)
}

// Viewer is the authenticated user identity, supplied by the external
// credential service and never mutated here.
type Viewer struct {
	ID    string
	Name  string
	Token string
}
