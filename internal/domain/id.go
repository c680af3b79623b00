package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a fresh 24-character hex identifier.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ParseID reports whether s is a well-formed identifier and returns its
// canonical lowercase form. A malformed id must be treated exactly like an
// absent one.
func ParseID(s string) (string, bool) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", false
	}
	return oid.Hex(), true
}
