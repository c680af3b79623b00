package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/stpnv0/EventBackend/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
	validate    *validator.Validate
}

func NewEventService(repo ports.EventRepo, bookingRepo ports.BookingRepo) *EventService {
	return &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
		validate:    validator.New(),
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, describeValidation(err))
	}

	event := &domain.Event{
		ID:          domain.NewID(),
		Name:        input.Name,
		Capacity:    *input.Capacity,
		StartDate:   input.StartDate.UTC(),
		EndDate:     input.EndDate.UTC(),
		Description: input.Description,
		Location:    input.Location,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, rawID string) (*domain.EventDetails, error) {
	id, ok := domain.ParseID(rawID)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.EventDetails{
		Event:      *event,
		BookingIDs: make([]string, len(bookings)),
	}
	for i, b := range bookings {
		details.BookingIDs[i] = b.ID
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// Delete refuses to remove an event that still has bookings.
func (s *EventService) Delete(ctx context.Context, rawID string) (*domain.Event, error) {
	id, ok := domain.ParseID(rawID)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if len(bookings) > 0 {
		return nil, domain.ErrEventHasBookings
	}

	event, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}

	return event, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return strings.Join(msgs, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
