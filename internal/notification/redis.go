package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	TypeBookingCreated = "booking_created"
	TypeBookingDeleted = "booking_deleted"
	TypeOverbooked     = "event_overbooked"
)

// Message is the envelope published on the change feed channel.
type Message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

type bookingPayload struct {
	BookingID string `json:"bookingId"`
	EventID   string `json:"eventId"`
	Spots     int    `json:"spots"`
}

type usagePayload struct {
	EventID  string `json:"eventId"`
	Capacity int    `json:"capacity"`
	Reserved int    `json:"reserved"`
}

type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisPublisher streams booking changes to a redis pub/sub channel.
type RedisPublisher struct {
	client  publisher
	channel string
	logger  logger.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, logger logger.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

func (p *RedisPublisher) NotifyBookingCreated(ctx context.Context, _ *domain.Event, booking *domain.Booking) {
	p.publish(ctx, TypeBookingCreated, bookingPayload{
		BookingID: booking.ID,
		EventID:   booking.EventID,
		Spots:     booking.Spots,
	})
}

func (p *RedisPublisher) NotifyBookingDeleted(ctx context.Context, booking *domain.Booking) {
	p.publish(ctx, TypeBookingDeleted, bookingPayload{
		BookingID: booking.ID,
		EventID:   booking.EventID,
		Spots:     booking.Spots,
	})
}

func (p *RedisPublisher) NotifyOverbooked(ctx context.Context, usage domain.CapacityUsage) {
	p.publish(ctx, TypeOverbooked, usagePayload{
		EventID:  usage.EventID,
		Capacity: usage.Capacity,
		Reserved: usage.Reserved,
	})
}

func (p *RedisPublisher) publish(ctx context.Context, msgType string, payload any) {
	data, err := json.Marshal(Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		p.logger.Error("failed to encode change message",
			logger.String("type", msgType),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		p.logger.Error("failed to publish change message",
			logger.String("channel", p.channel),
			logger.String("type", msgType),
			logger.String("error", err.Error()),
		)
	}
}
