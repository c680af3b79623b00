package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/stpnv0/EventBackend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CapacityEngine derives remaining capacity from the live bookings of an
// event instead of keeping a counter on the event itself.
//
// Its checks are read-only and therefore racy between the read and a later
// write; BookingRepo.Create repeats the check atomically and is the
// authoritative one.
type CapacityEngine struct {
	eventRepo   ports.EventRepo
	bookingRepo ports.BookingRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewCapacityEngine(
	eventRepo ports.EventRepo,
	bookingRepo ports.BookingRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *CapacityEngine {
	return &CapacityEngine{
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Usage resolves the event by its raw id and reports its capacity usage.
func (c *CapacityEngine) Usage(ctx context.Context, rawEventID string) (*domain.CapacityUsage, error) {
	eventID, ok := domain.ParseID(rawEventID)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	event, err := c.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return c.UsageOf(ctx, event)
}

func (c *CapacityEngine) UsageOf(ctx context.Context, event *domain.Event) (*domain.CapacityUsage, error) {
	reserved, err := c.bookingRepo.SumSpots(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("sum spots: %w", err)
	}

	return &domain.CapacityUsage{
		EventID:  event.ID,
		Capacity: event.Capacity,
		Reserved: reserved,
	}, nil
}

// RemainingCapacity is the event's capacity minus the spots of all its
// bookings. It is negative only if the invariant was broken outside the
// service.
func (c *CapacityEngine) RemainingCapacity(ctx context.Context, event *domain.Event) (int, error) {
	usage, err := c.UsageOf(ctx, event)
	if err != nil {
		return 0, err
	}
	return usage.Remaining(), nil
}

// CanAccept expects spots to be positive; callers reject anything else first.
func (c *CapacityEngine) CanAccept(ctx context.Context, event *domain.Event, spots int) (bool, error) {
	remaining, err := c.RemainingCapacity(ctx, event)
	if err != nil {
		return false, err
	}
	return spots <= remaining, nil
}

func (c *CapacityEngine) AuditOverbooked(ctx context.Context) ([]domain.CapacityUsage, error) {
	overbooked, err := c.bookingRepo.ListOverbooked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overbooked: %w", err)
	}

	if len(overbooked) > 0 {
		c.logger.Warn("overbooked events detected",
			logger.Int("count", len(overbooked)),
		)

		go c.notifyOverbooked(context.WithoutCancel(ctx), overbooked)
	}

	return overbooked, nil
}

func (c *CapacityEngine) notifyOverbooked(ctx context.Context, usages []domain.CapacityUsage) {
	for _, u := range usages {
		c.notifier.NotifyOverbooked(ctx, u)
	}
}
