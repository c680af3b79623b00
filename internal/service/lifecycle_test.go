package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memState backs both in-memory repos so the capacity check in
// memBookings.Create sees the same data the event repo does.
type memState struct {
	mu       sync.Mutex
	events   map[string]*domain.Event
	bookings []*domain.Booking
}

type memEvents struct{ s *memState }

type memBookings struct{ s *memState }

func newMemStore() (*memEvents, *memBookings) {
	s := &memState{events: map[string]*domain.Event{}}
	return &memEvents{s}, &memBookings{s}
}

func (r *memEvents) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.events[e.ID] = &cp
	return nil
}

func (r *memEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEvents) List(_ context.Context) ([]*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Event, 0, len(r.s.events))
	for _, e := range r.s.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memEvents) Delete(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	for _, b := range r.s.bookings {
		if b.EventID == id {
			return nil, domain.ErrEventHasBookings
		}
	}
	delete(r.s.events, id)
	return e, nil
}

func (r *memBookings) reservedLocked(eventID string) int {
	total := 0
	for _, b := range r.s.bookings {
		if b.EventID == eventID {
			total += b.Spots
		}
	}
	return total
}

func (r *memBookings) Create(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[b.EventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	usage := domain.CapacityUsage{EventID: e.ID, Capacity: e.Capacity, Reserved: r.reservedLocked(e.ID)}
	if !usage.Fits(b.Spots) {
		return domain.ErrNotEnoughSpots
	}
	cp := *b
	r.s.bookings = append(r.s.bookings, &cp)
	return nil
}

func (r *memBookings) GetByEventAndID(_ context.Context, eventID, id string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.EventID == eventID && b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *memBookings) ListByEvent(_ context.Context, eventID string) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Booking
	for _, b := range r.s.bookings {
		if b.EventID == eventID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memBookings) DeleteByEventAndID(_ context.Context, eventID, id string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, b := range r.s.bookings {
		if b.EventID == eventID && b.ID == id {
			r.s.bookings = append(r.s.bookings[:i], r.s.bookings[i+1:]...)
			return b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *memBookings) SumSpots(_ context.Context, eventID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.reservedLocked(eventID), nil
}

func (r *memBookings) ListOverbooked(_ context.Context) ([]domain.CapacityUsage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.CapacityUsage
	for _, e := range r.s.events {
		u := domain.CapacityUsage{EventID: e.ID, Capacity: e.Capacity, Reserved: r.reservedLocked(e.ID)}
		if u.Overbooked() {
			out = append(out, u)
		}
	}
	return out, nil
}

type nopNotifier struct{}

func (nopNotifier) NotifyBookingCreated(context.Context, *domain.Event, *domain.Booking) {}
func (nopNotifier) NotifyBookingDeleted(context.Context, *domain.Booking)               {}
func (nopNotifier) NotifyOverbooked(context.Context, domain.CapacityUsage)              {}

type services struct {
	events   *EventService
	bookings *BookingService
	capacity *CapacityEngine
}

func newMemServices(t *testing.T) services {
	t.Helper()
	events, bookings := newMemStore()
	log := newTestLogger(t)
	capacity := NewCapacityEngine(events, bookings, nopNotifier{}, log)
	return services{
		events:   NewEventService(events, bookings),
		bookings: NewBookingService(bookings, events, capacity, nopNotifier{}, log),
		capacity: capacity,
	}
}

func TestLifecycle_BookCancelDelete(t *testing.T) {
	ctx := context.Background()
	svc := newMemServices(t)

	input := validEventInput()
	input.Capacity = intPtr(10)
	event, err := svc.events.CreateEvent(ctx, input)
	require.NoError(t, err)

	first, err := svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Email: strPtr("a@x.io"), Spots: intPtr(4)})
	require.NoError(t, err)
	second, err := svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Tel: strPtr("555"), Spots: intPtr(6)})
	require.NoError(t, err)

	_, err = svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Email: strPtr("c@x.io"), Spots: intPtr(1)})
	require.ErrorIs(t, err, domain.ErrNotEnoughSpots)

	details, err := svc.events.GetDetails(ctx, event.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, details.BookingIDs)

	_, err = svc.events.Delete(ctx, event.ID)
	require.ErrorIs(t, err, domain.ErrEventHasBookings)

	_, err = svc.bookings.Delete(ctx, event.ID, first.ID)
	require.NoError(t, err)

	usage, err := svc.capacity.Usage(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, usage.Remaining())

	_, err = svc.bookings.Delete(ctx, event.ID, second.ID)
	require.NoError(t, err)

	deleted, err := svc.events.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, deleted.ID)

	_, err = svc.events.GetDetails(ctx, event.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestLifecycle_BookingNotReachableThroughOtherEvent(t *testing.T) {
	ctx := context.Background()
	svc := newMemServices(t)

	a, err := svc.events.CreateEvent(ctx, validEventInput())
	require.NoError(t, err)
	b, err := svc.events.CreateEvent(ctx, validEventInput())
	require.NoError(t, err)

	booking, err := svc.bookings.Book(ctx, a.ID, domain.CreateBookingInput{Email: strPtr("a@x.io"), Spots: intPtr(1)})
	require.NoError(t, err)

	_, err = svc.bookings.Get(ctx, b.ID, booking.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = svc.bookings.Delete(ctx, b.ID, booking.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	got, err := svc.bookings.Get(ctx, a.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
}

func TestLifecycle_ConcurrentBookingsNeverOverbook(t *testing.T) {
	ctx := context.Background()
	svc := newMemServices(t)

	input := validEventInput()
	input.Capacity = intPtr(10)
	event, err := svc.events.CreateEvent(ctx, input)
	require.NoError(t, err)

	const attempts = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Email: strPtr("x@x.io"), Spots: intPtr(1)})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, domain.ErrNotEnoughSpots):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	assert.Equal(t, attempts-10, rejected)

	overbooked, err := svc.capacity.AuditOverbooked(ctx)
	require.NoError(t, err)
	assert.Empty(t, overbooked)
}

func TestLifecycle_CapacityScenario(t *testing.T) {
	ctx := context.Background()
	svc := newMemServices(t)

	input := validEventInput()
	input.Name = "Test Event"
	input.Capacity = intPtr(10)
	event, err := svc.events.CreateEvent(ctx, input)
	require.NoError(t, err)

	details, err := svc.events.GetDetails(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, details.BookingIDs)

	first, err := svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Email: strPtr("a@b.com"), Spots: intPtr(2)})
	require.NoError(t, err)

	remaining, err := svc.capacity.RemainingCapacity(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 8, remaining)

	_, err = svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Email: strPtr("c@d.com"), Spots: intPtr(9)})
	require.ErrorIs(t, err, domain.ErrNotEnoughSpots)

	bookings, err := svc.bookings.ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	_, err = svc.bookings.Delete(ctx, event.ID, first.ID)
	require.NoError(t, err)

	remaining, err = svc.capacity.RemainingCapacity(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 10, remaining)

	_, err = svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Email: strPtr("e@f.com"), Spots: intPtr(10)})
	require.NoError(t, err)

	_, err = svc.bookings.Book(ctx, event.ID, domain.CreateBookingInput{Tel: strPtr("1"), Spots: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotEnoughSpots)
}
