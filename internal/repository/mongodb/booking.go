package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/EventBackend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	store *Store
}

// Create inserts the booking in a transaction that first touches the event,
// so concurrent bookings of one event are serialized by write conflicts.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	doc, ok := toBookingDoc(b)
	if !ok {
		return domain.ErrEventNotFound
	}

	_, err := r.store.withTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		event, err := r.store.touchEvent(sc, doc.EventID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrEventNotFound
			}
			return nil, fmt.Errorf("lock event: %w", err)
		}

		reserved, err := r.store.sumSpots(sc, doc.EventID)
		if err != nil {
			return nil, err
		}

		usage := domain.CapacityUsage{EventID: b.EventID, Capacity: event.Capacity, Reserved: reserved}
		if !usage.Fits(b.Spots) {
			return nil, domain.ErrNotEnoughSpots
		}

		if _, err = r.store.bookings.InsertOne(sc, doc); err != nil {
			return nil, fmt.Errorf("insert booking: %w", err)
		}

		return nil, nil
	})

	return err
}

func (r *BookingRepository) GetByEventAndID(ctx context.Context, eventID, id string) (*domain.Booking, error) {
	filter, ok := scopedFilter(eventID, id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	var doc bookingDoc
	if err := r.store.bookings.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	oid, ok := objectID(eventID)
	if !ok {
		return []*domain.Booking{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.store.bookings.Find(ctx, bson.M{"eventId": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}

	var docs []bookingDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	res := make([]*domain.Booking, 0, len(docs))
	for i := range docs {
		res = append(res, docs[i].toDomain())
	}

	return res, nil
}

func (r *BookingRepository) DeleteByEventAndID(ctx context.Context, eventID, id string) (*domain.Booking, error) {
	filter, ok := scopedFilter(eventID, id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	var doc bookingDoc
	if err := r.store.bookings.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *BookingRepository) SumSpots(ctx context.Context, eventID string) (int, error) {
	oid, ok := objectID(eventID)
	if !ok {
		return 0, nil
	}
	return r.store.sumSpots(ctx, oid)
}

func (r *BookingRepository) ListOverbooked(ctx context.Context) ([]domain.CapacityUsage, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: bookingsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "eventId"},
			{Key: "as", Value: "bookings"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "capacity", Value: 1},
			{Key: "reserved", Value: bson.D{{Key: "$sum", Value: "$bookings.spots"}}},
		}}},
		{{Key: "$match", Value: bson.D{
			{Key: "$expr", Value: bson.D{{Key: "$gt", Value: bson.A{"$reserved", "$capacity"}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.store.events.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list overbooked: %w", err)
	}

	var rows []struct {
		ID       primitive.ObjectID `bson:"_id"`
		Capacity int                `bson:"capacity"`
		Reserved int                `bson:"reserved"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode overbooked: %w", err)
	}

	var res []domain.CapacityUsage
	for _, row := range rows {
		res = append(res, domain.CapacityUsage{
			EventID:  row.ID.Hex(),
			Capacity: row.Capacity,
			Reserved: row.Reserved,
		})
	}

	return res, nil
}

func scopedFilter(eventID, id string) (bson.M, bool) {
	eventOID, ok := objectID(eventID)
	if !ok {
		return nil, false
	}
	oid, ok := objectID(id)
	if !ok {
		return nil, false
	}
	return bson.M{"_id": oid, "eventId": eventOID}, true
}
