package dto

import (
	"time"

	"github.com/stpnv0/EventBackend/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type EventResponse struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Bookings    []string `json:"bookings"`
}

type EventListItemResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type BookingResponse struct {
	ID        string `json:"_id"`
	EventID   string `json:"eventId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Tel       string `json:"tel,omitempty"`
	Spots     int    `json:"spots"`
}

// EventBookingResponse is a booking listed under its event's path.
type EventBookingResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Tel       string `json:"tel,omitempty"`
	Spots     int    `json:"spots"`
}

type CapacityResponse struct {
	EventID   string `json:"eventId"`
	Capacity  int    `json:"capacity"`
	Reserved  int    `json:"reserved"`
	Remaining int    `json:"remaining"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func ToEventResponse(e *domain.Event, bookingIDs []string) EventResponse {
	if bookingIDs == nil {
		bookingIDs = []string{}
	}
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Capacity:    e.Capacity,
		StartDate:   formatTime(e.StartDate),
		EndDate:     formatTime(e.EndDate),
		Description: e.Description,
		Location:    e.Location,
		Bookings:    bookingIDs,
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventResponse {
	return ToEventResponse(&d.Event, d.BookingIDs)
}

func ToEventListItemResponse(e *domain.Event) EventListItemResponse {
	return EventListItemResponse{
		ID:        e.ID,
		Name:      e.Name,
		Capacity:  e.Capacity,
		StartDate: formatTime(e.StartDate),
		EndDate:   formatTime(e.EndDate),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		EventID:   b.EventID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Tel:       b.Tel,
		Spots:     b.Spots,
	}
}

func ToEventBookingResponse(b *domain.Booking) EventBookingResponse {
	return EventBookingResponse{
		ID:        b.ID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Tel:       b.Tel,
		Spots:     b.Spots,
	}
}

func ToCapacityResponse(u *domain.CapacityUsage) CapacityResponse {
	return CapacityResponse{
		EventID:   u.EventID,
		Capacity:  u.Capacity,
		Reserved:  u.Reserved,
		Remaining: u.Remaining(),
	}
}
