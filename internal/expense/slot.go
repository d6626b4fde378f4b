// Package expense owns the canonical expense collection, persists it on
// every mutation and derives the filtered and grouped views the
// presentation layer draws.
package expense

import "errors"

// SlotKey is the fixed key-value slot the collection is stored under.
const SlotKey = "Items"

// ErrNoData is returned by a Slot that holds no value yet.
var ErrNoData = errors.New("no persisted data")

var (
	errMissingID       = errors.New("record without id")
	errDuplicateID     = errors.New("duplicate record id")
	errMissingName     = errors.New("record without name")
	errMissingCategory = errors.New("record without category")
	errAmountNotNumber = errors.New("amount is not a JSON number")
)

// Slot is a single durable value holding the serialized collection.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
}
