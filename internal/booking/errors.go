package booking

import "errors"

var (
	ErrUnauthenticated  = errors.New("booking: log in to book a property")
	ErrOwnerCannotBook  = errors.New("booking: you cannot book your own property")
	ErrNotOwner         = errors.New("booking: only the owner can delete a property")
	ErrInvalidDateRange = errors.New("booking: check-out date must be after check-in date")
	ErrAlreadyBooked    = errors.New("booking: you already have a booking for this property")
	ErrInvalidPrice     = errors.New("booking: invalid booking price")
)
