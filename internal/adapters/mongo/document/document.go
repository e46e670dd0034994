// Package document holds the stored shapes of catalog records.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

type Document interface {
	GetID() primitive.ObjectID
}

// Now is the timestamp stored on writes. BSON dates keep milliseconds, so anything finer
// would not survive a round trip.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
