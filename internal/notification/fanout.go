package notification

import (
	"context"

	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/stpnv0/EventBackend/internal/service/ports"
)

// Fanout delivers every notification to each wrapped notifier in order.
type Fanout []ports.BookingNotifier

func (f Fanout) NotifyBookingCreated(ctx context.Context, event *domain.Event, booking *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingCreated(ctx, event, booking)
	}
}

func (f Fanout) NotifyBookingDeleted(ctx context.Context, booking *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingDeleted(ctx, booking)
	}
}

func (f Fanout) NotifyOverbooked(ctx context.Context, usage domain.CapacityUsage) {
	for _, n := range f {
		n.NotifyOverbooked(ctx, usage)
	}
}
