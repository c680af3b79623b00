package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/EventBackend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository struct {
	store *Store
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	doc, ok := toEventDoc(e)
	if !ok {
		return fmt.Errorf("insert event: malformed id %q", e.ID)
	}

	if _, err := r.store.events.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	var doc eventDoc
	if err := r.store.events.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.store.events.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var docs []eventDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	res := make([]*domain.Event, 0, len(docs))
	for i := range docs {
		res = append(res, docs[i].toDomain())
	}

	return res, nil
}

// Delete removes the event only while it has no bookings. Touching the
// event first makes a concurrent booking of the same event conflict.
func (r *EventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	res, err := r.store.withTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		doc, err := r.store.touchEvent(sc, oid)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrEventNotFound
			}
			return nil, fmt.Errorf("lock event: %w", err)
		}

		n, err := r.store.bookings.CountDocuments(sc, bson.M{"eventId": oid}, options.Count().SetLimit(1))
		if err != nil {
			return nil, fmt.Errorf("count bookings: %w", err)
		}
		if n > 0 {
			return nil, domain.ErrEventHasBookings
		}

		if _, err = r.store.events.DeleteOne(sc, bson.M{"_id": oid}); err != nil {
			return nil, fmt.Errorf("delete event: %w", err)
		}

		return doc.toDomain(), nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*domain.Event), nil
}
