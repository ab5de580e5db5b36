package types

import "errors"

// Store is the durable key-value capability backing persisted collections.
// One key holds one serialized collection; every write is a full rewrite of
// the slot. Implementations live in internal/sqlite (durable) and
// internal/memory (test fake). The capability is passed into each
// collection explicitly so tests can substitute a fake.
type Store interface {
	// Get retrieves the raw value for key. ok is false when no value
	// exists for the key.
	Get(key string) (value string, ok bool, err error)

	// Set writes the full value for key, replacing any previous value.
	Set(key, value string) error
}

// Entity is implemented by all domain records. The collection owns the ID:
// it mints one on creation and preserves it across updates.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
}

// Collection operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrAmbiguousID = errors.New("id prefix matches more than one entity")
)

// Entity field errors.
var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidStatus   = errors.New("invalid status value")
)
