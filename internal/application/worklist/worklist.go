// Package worklist implements the working-list editing model shared by the
// Experience, Projects and Skills admin sections: a list of entries is edited
// in memory, entries added locally stay pending until an explicit Save, and
// Save reconciles the list against the store with one insert per pending
// entry and one update per persisted entry.
package worklist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Item is the minimal shape a working list needs from its records: access
// to the store-assigned identifier.
type Item interface {
	EntityID() uuid.UUID
}

// Store is the owner-scoped record contract a working list reconciles
// against. List returns records ordered by creation time descending; Insert
// assigns the record id and timestamps.
type Store[T Item] interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]T, error)
	Insert(ctx context.Context, ownerID uuid.UUID, item T) (T, error)
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item T) (T, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

type State int

const (
	// Pending marks an entry created locally and not yet confirmed by the
	// store. The state is an explicit marker on the entry, never derived
	// from the shape of an identifier.
	Pending State = iota
	Persisted
)

type Entry[T Item] struct {
	// Key addresses the entry within this list. For persisted entries it is
	// the record id string; pending entries get a local placeholder key.
	Key   string
	ID    uuid.UUID
	State State
	Item  T
}

// SaveResult reports the outcome of one Save pass. Inserts and updates are
// issued independently, so Failed can be non-zero while others succeeded.
type SaveResult struct {
	Inserted int
	Updated  int
	Failed   int
}

// List is a working list of one entity type for one owner. All mutating
// operations are serialized through an internal mutex, so an in-flight Save
// and a concurrent Delete cannot interleave.
type List[T Item] struct {
	store   Store[T]
	ownerID uuid.UUID

	mu      sync.Mutex
	entries []Entry[T]
	seq     int
}

func New[T Item](store Store[T], ownerID uuid.UUID) *List[T] {
	return &List[T]{store: store, ownerID: ownerID}
}

// Load replaces the entire working list with the store's canonical records.
// On store failure the list is left empty and the error is returned to the
// caller as recoverable.
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reload(ctx)
}

func (l *List[T]) reload(ctx context.Context) error {
	items, err := l.store.List(ctx, l.ownerID)
	if err != nil {
		l.entries = nil
		return fmt.Errorf("load working list: %w", err)
	}
	entries := make([]Entry[T], len(items))
	for i, item := range items {
		id := item.EntityID()
		entries[i] = Entry[T]{Key: id.String(), ID: id, State: Persisted, Item: item}
	}
	l.entries = entries
	return nil
}

// Add appends a pending entry and returns its local key. No store call is
// made; the entry stays at the end of the list until the next reload
// re-sorts it by creation time.
func (l *List[T]) Add(item T) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	key := fmt.Sprintf("pending-%d", l.seq)
	l.entries = append(l.entries, Entry[T]{Key: key, State: Pending, Item: item})
	return key
}

// Restore appends an entry already known to be persisted under id. Used when
// a client submits its working list back for reconciliation.
func (l *List[T]) Restore(id uuid.UUID, item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry[T]{Key: id.String(), ID: id, State: Persisted, Item: item})
}

// Update applies mutate to the entry addressed by key. An unknown key is a
// silent no-op. Pure in-memory operation.
func (l *List[T]) Update(key string, mutate func(item T)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].Key == key {
			mutate(l.entries[i].Item)
			return
		}
	}
}

// Delete removes the entry addressed by key. A pending entry is removed
// locally without any store call. A persisted entry is deleted from the
// store first and kept in the list when that call fails, so the visible list
// never drops a record the store still holds.
func (l *List[T]) Delete(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].Key != key {
			continue
		}
		if l.entries[i].State == Persisted {
			if err := l.store.Delete(ctx, l.entries[i].ID, l.ownerID); err != nil {
				return fmt.Errorf("delete entry %s: %w", key, err)
			}
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		return nil
	}
	return nil
}

// Save walks the working list and issues one Insert per pending entry and
// one Update per persisted entry. The calls are independent: a failure does
// not roll back earlier writes. Afterwards the list is reloaded
// unconditionally so it reflects whatever the store now holds, and the
// individual failures are returned joined together.
func (l *List[T]) Save(ctx context.Context) (SaveResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var res SaveResult
	var errs []error
	for _, e := range l.entries {
		switch e.State {
		case Pending:
			if _, err := l.store.Insert(ctx, l.ownerID, e.Item); err != nil {
				res.Failed++
				errs = append(errs, fmt.Errorf("insert %s: %w", e.Key, err))
				continue
			}
			res.Inserted++
		case Persisted:
			if _, err := l.store.Update(ctx, e.ID, l.ownerID, e.Item); err != nil {
				res.Failed++
				errs = append(errs, fmt.Errorf("update %s: %w", e.Key, err))
				continue
			}
			res.Updated++
		}
	}

	if err := l.reload(ctx); err != nil {
		errs = append(errs, err)
	}
	return res, errors.Join(errs...)
}

// Entries returns a snapshot of the working list.
func (l *List[T]) Entries() []Entry[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry[T], len(l.entries))
	copy(out, l.entries)
	return out
}

// Items returns the entry payloads in list order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Item
	}
	return out
}

func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
