package ports

import (
	"context"

	"github.com/stpnv0/EventBackend/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking only if its spots still fit the event's
	// remaining capacity; otherwise it returns domain.ErrNotEnoughSpots.
	Create(ctx context.Context, b *domain.Booking) error
	GetByEventAndID(ctx context.Context, eventID, id string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	DeleteByEventAndID(ctx context.Context, eventID, id string) (*domain.Booking, error)
	SumSpots(ctx context.Context, eventID string) (int, error)
	ListOverbooked(ctx context.Context) ([]domain.CapacityUsage, error)
}
