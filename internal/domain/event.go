package domain

import "time"

type Event struct {
	ID          string
	Name        string
	Capacity    int
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Location    string
	// Version is internal revision metadata, never rendered.
	Version   int
	CreatedAt time.Time
}

type EventDetails struct {
	Event      Event
	BookingIDs []string
}

type CreateEventInput struct {
	Name        string     `validate:"required"`
	// Capacity must fit a 32-bit column in every store.
	Capacity    *int       `validate:"required,gte=0,lte=2147483647"`
	StartDate   *time.Time `validate:"required"`
	EndDate     *time.Time `validate:"required"`
	Description string
	Location    string
}
