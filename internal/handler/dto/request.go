package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventBackend/internal/domain"
)

type CreateEventRequest struct {
	Name        string     `json:"name"`
	Capacity    *int       `json:"capacity"`
	StartDate   *Timestamp `json:"startDate"`
	EndDate     *Timestamp `json:"endDate"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
}

func (r CreateEventRequest) ToInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Name:        r.Name,
		Capacity:    r.Capacity,
		StartDate:   r.StartDate.timePtr(),
		EndDate:     r.EndDate.timePtr(),
		Description: r.Description,
		Location:    r.Location,
	}
}

type CreateBookingRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
	Tel       *string `json:"tel"`
	Spots     *int    `json:"spots"`
}

func (r CreateBookingRequest) ToInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Tel:       r.Tel,
		Spots:     r.Spots,
	}
}

// ErrInvalidTimestamp is returned for dates that cannot be parsed or fall
// outside years 1 to 9999.
var ErrInvalidTimestamp = errors.New("startDate and endDate must be an RFC 3339 date, YYYY-MM-DD, or epoch milliseconds within years 1 to 9999")

var (
	minTimestamp = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxTimestamp = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// Timestamp accepts an RFC 3339 string, a YYYY-MM-DD date, or epoch
// milliseconds.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := parseTimestamp(bytes.TrimSpace(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}

	parsed = parsed.UTC()
	if parsed.Before(minTimestamp) || parsed.After(maxTimestamp) {
		return fmt.Errorf("%w: %s is out of range", ErrInvalidTimestamp, string(data))
	}

	t.Time = parsed
	return nil
}

func parseTimestamp(data []byte) (time.Time, error) {
	if len(data) == 0 {
		return time.Time{}, errors.New("empty timestamp")
	}

	if data[0] != '"' {
		var ms int64
		if err := json.Unmarshal(data, &ms); err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms), nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return time.Time{}, err
	}

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func (t *Timestamp) timePtr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}
