// Package collection implements the generic persisted collection: the
// authoritative in-memory sequence for one entity type, mirrored to a
// durable key-value slot.
package collection

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shringar-studio/shringar/pkg/types"
)

// SchemaVersion tags the persisted envelope so a future layout change can
// be detected and migrated instead of misparsed.
const SchemaVersion = 1

// envelope is the durable form of a collection: a version tag plus the
// full record sequence.
type envelope[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// Persisted owns the in-memory sequence for one entity type and keeps a
// durable mirror in sync. T is the entity value type; PT is its pointer
// type, which carries the ID accessors. All mutation goes through Replace:
// each operation computes a new full sequence and rewrites the slot in one
// self-contained write, so no partial-write recovery is needed.
//
// Two handles opened on the same key do not observe each other's writes;
// single-writer usage is assumed.
type Persisted[T any, PT interface {
	*T
	types.Entity
}] struct {
	store   types.Store
	key     string
	records []T
}

// Open loads the collection stored under key. On first access the sequence
// is seeded with seed and persisted immediately. A malformed durable value
// falls back to seed without error: corruption degrades to defaults, never
// a crash. A bare-array value written before envelope versioning is
// accepted on read and rewritten in envelope form by the next Replace.
func Open[T any, PT interface {
	*T
	types.Entity
}](store types.Store, key string, seed []T) (*Persisted[T, PT], error) {
	p := &Persisted[T, PT]{store: store, key: key}

	raw, ok, err := store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		if err := p.Replace(seed); err != nil {
			return nil, err
		}
		return p, nil
	}

	p.records = decode(raw, seed)
	return p, nil
}

// decode parses a durable value, accepting both the versioned envelope and
// the legacy bare array. Anything unparseable, including an envelope with
// an unknown version, degrades to seed.
func decode[T any](raw string, seed []T) []T {
	var env envelope[T]
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Version == SchemaVersion {
		return env.Records
	}
	var bare []T
	if err := json.Unmarshal([]byte(raw), &bare); err == nil {
		return bare
	}
	return append([]T(nil), seed...)
}

// Replace swaps in records and rewrites the durable slot. This is the only
// mutation primitive; Add, Update, and Delete are all expressed through
// it. The in-memory sequence changes only after the write succeeds.
func (p *Persisted[T, PT]) Replace(records []T) error {
	data, err := json.Marshal(envelope[T]{Version: SchemaVersion, Records: records})
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.key, err)
	}
	if err := p.store.Set(p.key, string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", p.key, err)
	}
	p.records = records
	return nil
}

// Items returns a copy of the current sequence in storage order.
func (p *Persisted[T, PT]) Items() []T {
	return append([]T(nil), p.records...)
}

// Len returns the number of records in the collection.
func (p *Persisted[T, PT]) Len() int { return len(p.records) }

// Get returns the record with the given id.
// Returns ErrNotFound if no record has that id.
func (p *Persisted[T, PT]) Get(id string) (T, error) {
	for i := range p.records {
		if PT(&p.records[i]).EntityID() == id {
			return p.records[i], nil
		}
	}
	var zero T
	return zero, types.ErrNotFound
}

// Resolve returns the record whose id equals prefix or uniquely starts
// with it. An exact match wins regardless of how many other ids share the
// prefix. Returns ErrNotFound when nothing matches and ErrAmbiguousID when
// the prefix matches more than one record without matching any exactly.
func (p *Persisted[T, PT]) Resolve(prefix string) (T, error) {
	var zero T
	if prefix == "" {
		return zero, types.ErrNotFound
	}
	for i := range p.records {
		if PT(&p.records[i]).EntityID() == prefix {
			return p.records[i], nil
		}
	}
	found := -1
	for i := range p.records {
		if strings.HasPrefix(PT(&p.records[i]).EntityID(), prefix) {
			if found >= 0 {
				return zero, types.ErrAmbiguousID
			}
			found = i
		}
	}
	if found < 0 {
		return zero, types.ErrNotFound
	}
	return p.records[found], nil
}

// Add appends record with a freshly minted id and persists the new
// sequence. Any id already present on the record is overwritten.
// Returns the assigned id.
func (p *Persisted[T, PT]) Add(record T) (string, error) {
	id := mintID()
	PT(&record).SetEntityID(id)
	if err := p.Replace(append(p.Items(), record)); err != nil {
		return "", err
	}
	return id, nil
}

// Update replaces the record with the given id by payload, preserving the
// id. The payload's own id field is ignored.
// Returns ErrNotFound if no record has that id.
func (p *Persisted[T, PT]) Update(id string, payload T) error {
	next := p.Items()
	for i := range next {
		if PT(&next[i]).EntityID() == id {
			PT(&payload).SetEntityID(id)
			next[i] = payload
			return p.Replace(next)
		}
	}
	return types.ErrNotFound
}

// Delete removes exactly the record with the given id, leaving all others
// in their original relative order.
// Returns ErrNotFound if no record has that id.
func (p *Persisted[T, PT]) Delete(id string) error {
	next := p.Items()
	for i := range next {
		if PT(&next[i]).EntityID() == id {
			return p.Replace(append(next[:i], next[i+1:]...))
		}
	}
	return types.ErrNotFound
}

// mintID generates a new UUID v7 for entity IDs.
func mintID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
