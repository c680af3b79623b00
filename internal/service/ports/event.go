package ports

import (
	"context"

	"github.com/stpnv0/EventBackend/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// Delete removes the event unless bookings still reference it, in which
	// case it returns domain.ErrEventHasBookings. The check and the delete
	// are atomic.
	Delete(ctx context.Context, id string) (*domain.Event, error)
}
