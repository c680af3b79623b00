package ports

import (
	"context"

	"github.com/stpnv0/EventBackend/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, event *domain.Event, booking *domain.Booking)
	NotifyBookingDeleted(ctx context.Context, booking *domain.Booking)
	NotifyOverbooked(ctx context.Context, usage domain.CapacityUsage)
}
