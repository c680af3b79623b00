package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNotEnoughSpots   = errors.New("not enough spots available for this event")
	ErrEventHasBookings = errors.New("cannot delete an event with existing bookings")
)

var (
	ErrContactRequired = errors.New("email or tel is required for a booking")
	ErrSpotsRequired   = errors.New("spots is required for a booking")
	ErrInvalidSpots    = errors.New("spots must be a positive integer")
)

var (
	ErrValidation = errors.New("incorrect format of request body")
)
