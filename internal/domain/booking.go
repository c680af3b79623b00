package domain

import "time"

type Booking struct {
	ID        string
	EventID   string
	FirstName string
	LastName  string
	Email     string
	Tel       string
	Spots     int
	CreatedAt time.Time
}

// CreateBookingInput carries the request payload as supplied; nil means the
// field was absent.
type CreateBookingInput struct {
	FirstName string
	LastName  string
	Email     *string
	Tel       *string
	Spots     *int
}
