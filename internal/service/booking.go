package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/stpnv0/EventBackend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	capacity    *CapacityEngine
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	capacity *CapacityEngine,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		capacity:    capacity,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Book(ctx context.Context, rawEventID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	eventID, ok := domain.ParseID(rawEventID)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	email, tel := trimmed(input.Email), trimmed(input.Tel)
	if email == "" && tel == "" {
		return nil, domain.ErrContactRequired
	}
	if input.Spots == nil {
		return nil, domain.ErrSpotsRequired
	}
	spots := *input.Spots
	if spots <= 0 {
		return nil, domain.ErrInvalidSpots
	}

	fits, err := s.capacity.CanAccept(ctx, event, spots)
	if err != nil {
		return nil, fmt.Errorf("check capacity: %w", err)
	}
	if !fits {
		return nil, domain.ErrNotEnoughSpots
	}

	booking := &domain.Booking{
		ID:        domain.NewID(),
		EventID:   event.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Tel:       tel,
		Spots:     spots,
		CreatedAt: time.Now().UTC(),
	}
	// the store re-checks capacity under lock
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
		logger.Int("spots", spots),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), event, booking)

	return booking, nil
}

func (s *BookingService) ListByEvent(ctx context.Context, rawEventID string) ([]*domain.Booking, error) {
	eventID, ok := domain.ParseID(rawEventID)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

// Get looks the booking up by both ids, so a booking is never reachable
// through another event's path.
func (s *BookingService) Get(ctx context.Context, rawEventID, rawBookingID string) (*domain.Booking, error) {
	eventID, bookingID, err := parseBookingPath(rawEventID, rawBookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByEventAndID(ctx, eventID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, rawEventID, rawBookingID string) (*domain.Booking, error) {
	eventID, bookingID, err := parseBookingPath(rawEventID, rawBookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.DeleteByEventAndID(ctx, eventID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.Int("spots", booking.Spots),
	)

	go s.notifier.NotifyBookingDeleted(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func parseBookingPath(rawEventID, rawBookingID string) (eventID, bookingID string, err error) {
	eventID, ok := domain.ParseID(rawEventID)
	if !ok {
		return "", "", domain.ErrEventNotFound
	}
	bookingID, ok = domain.ParseID(rawBookingID)
	if !ok {
		return "", "", domain.ErrBookingNotFound
	}
	return eventID, bookingID, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
