package booking

import (
	"context"
	"fmt"
	"log/slog"

	"househunt/internal/listing"
)

// SubmitRequest is the body of POST /bookings.
type SubmitRequest struct {
	ListingID  string  `json:"listingId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
}

// Submitter is the remote side of booking creation and property deletion,
// implemented by api.Client. Calls are made under the viewer's credential.
type Submitter interface {
	CreateBooking(ctx context.Context, req SubmitRequest) (*Booking, error)
	DeleteProperty(ctx context.Context, propertyID string) error
}

// Service orchestrates booking creation and property deletion.
type Service struct {
	remote  Submitter
	checker Checker
}

// NewService creates a booking service.
func NewService(remote Submitter, checker Checker) *Service {
	return &Service{remote: remote, checker: checker}
}

// Create validates a booking request and, only when every local check
// passes, submits it to the marketplace. Checks run in a fixed order and the
// first failure wins; a validation failure never reaches the network. The
// existing bookings are the viewer's, as returned by GET /bookings/user.
//
// Remote errors pass through unwrapped for the caller to classify: a
// server-side rejection carries the server's message, a transport failure
// matches api.ErrTransport.
func (s *Service) Create(ctx context.Context, viewer *Viewer, prop listing.Property, r DateRange, existing []Booking) (*Booking, error) {
	if viewer == nil || viewer.ID == "" {
		return nil, ErrUnauthenticated
	}
	if IsOwner(prop, viewer) {
		return nil, ErrOwnerCannotBook
	}
	if !r.IsValid() {
		return nil, ErrInvalidDateRange
	}
	if s.checker.HasConflict(viewer.ID, prop.ID, r, existing) {
		return nil, ErrAlreadyBooked
	}
	total := TotalPrice(prop.Price, r)
	if total <= 0 {
		return nil, ErrInvalidPrice
	}

	created, err := s.remote.CreateBooking(ctx, SubmitRequest{
		ListingID:  prop.ID,
		StartDate:  r.StartDate(),
		EndDate:    r.EndDate(),
		TotalPrice: total,
	})
	if err != nil {
		// Not retried: the server hands out no dedupe key, so a blind
		// retry could double-book.
		return nil, err
	}
	slog.Info("booking created", "booking", created.ID, "listing", prop.ID, "nights", r.Nights(), "total", total)
	return created, nil
}

// DeleteProperty removes one of the viewer's own listings. No local cleanup
// happens here; the caller refreshes its feeds afterwards.
func (s *Service) DeleteProperty(ctx context.Context, viewer *Viewer, prop listing.Property) error {
	if !IsOwner(prop, viewer) {
		return ErrNotOwner
	}
	if err := s.remote.DeleteProperty(ctx, prop.ID); err != nil {
		return fmt.Errorf("deleting property %s: %w", prop.ID, err)
	}
	slog.Info("property deleted", "listing", prop.ID)
	return nil
}
