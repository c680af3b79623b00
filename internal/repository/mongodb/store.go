// Package mongodb is the document-store backend. Booking creation and event
// deletion run in multi-document transactions, so the server must be a
// replica set.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	eventsCollection   = "events"
	bookingsCollection = "bookings"
)

type Store struct {
	client   *mongo.Client
	events   *mongo.Collection
	bookings *mongo.Collection
}

func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client:   client,
		events:   db.Collection(eventsCollection),
		bookings: db.Collection(bookingsCollection),
	}

	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "eventId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create bookings index: %w", err)
	}
	return nil
}

func (s *Store) Events() *EventRepository {
	return &EventRepository{store: s}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (any, error)) (any, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}

// touchEvent bumps the event revision inside the current transaction.
// Two transactions touching the same event conflict on this write, and the
// driver retries the loser against the committed state.
func (s *Store) touchEvent(sc mongo.SessionContext, id primitive.ObjectID) (*eventDoc, error) {
	var doc eventDoc
	err := s.events.FindOneAndUpdate(sc,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"__v": 1}},
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) sumSpots(ctx context.Context, eventID primitive.ObjectID) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "eventId", Value: eventID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$spots"}}},
		}}},
	}

	cursor, err := s.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate spots: %w", err)
	}

	var res []struct {
		Total int `bson:"total"`
	}
	if err = cursor.All(ctx, &res); err != nil {
		return 0, fmt.Errorf("decode spots: %w", err)
	}
	if len(res) == 0 {
		return 0, nil
	}

	return res[0].Total, nil
}
