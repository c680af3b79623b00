package mongodb

import (
	"time"

	"github.com/stpnv0/EventBackend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type eventDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Capacity    int                `bson:"capacity"`
	StartDate   time.Time          `bson:"startDate"`
	EndDate     time.Time          `bson:"endDate"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Version     int                `bson:"__v"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type bookingDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	EventID   primitive.ObjectID `bson:"eventId"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Tel       string             `bson:"tel"`
	Spots     int                `bson:"spots"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func objectID(hex string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(hex)
	return oid, err == nil
}

func toEventDoc(e *domain.Event) (*eventDoc, bool) {
	oid, ok := objectID(e.ID)
	if !ok {
		return nil, false
	}
	return &eventDoc{
		ID:          oid,
		Name:        e.Name,
		Capacity:    e.Capacity,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		Location:    e.Location,
		Version:     e.Version,
		CreatedAt:   e.CreatedAt,
	}, true
}

func (d *eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Capacity:    d.Capacity,
		StartDate:   d.StartDate.UTC(),
		EndDate:     d.EndDate.UTC(),
		Description: d.Description,
		Location:    d.Location,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

func toBookingDoc(b *domain.Booking) (*bookingDoc, bool) {
	oid, ok := objectID(b.ID)
	if !ok {
		return nil, false
	}
	eventOID, ok := objectID(b.EventID)
	if !ok {
		return nil, false
	}
	return &bookingDoc{
		ID:        oid,
		EventID:   eventOID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Tel:       b.Tel,
		Spots:     b.Spots,
		CreatedAt: b.CreatedAt,
	}, true
}

func (d *bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        d.ID.Hex(),
		EventID:   d.EventID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Tel:       d.Tel,
		Spots:     d.Spots,
		CreatedAt: d.CreatedAt.UTC(),
	}
}
