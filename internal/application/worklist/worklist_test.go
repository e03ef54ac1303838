package worklist

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID        uuid.UUID
	Title     string
	CreatedAt time.Time
}

func (n *note) EntityID() uuid.UUID { return n.ID }

// fakeStore is an in-memory Store with per-call failure switches.
type fakeStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*note
	clock   int

	failInsertTitle string
	failUpdateID    uuid.UUID
	failDelete      bool
	failList        bool

	insertCalls int
	updateCalls int
	deleteCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[uuid.UUID]*note{}}
}

var errStore = errors.New("store unavailable")

func (s *fakeStore) List(ctx context.Context, ownerID uuid.UUID) ([]*note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList {
		return nil, errStore
	}
	out := make([]*note, 0, len(s.records))
	for _, n := range s.records {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) Insert(ctx context.Context, ownerID uuid.UUID, item *note) (*note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertCalls++
	if item.Title == s.failInsertTitle && s.failInsertTitle != "" {
		return nil, errStore
	}
	s.clock++
	stored := &note{
		ID:        uuid.New(),
		Title:     item.Title,
		CreatedAt: time.Unix(int64(s.clock), 0),
	}
	s.records[stored.ID] = stored
	return stored, nil
}

func (s *fakeStore) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item *note) (*note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	if id == s.failUpdateID && s.failUpdateID != uuid.Nil {
		return nil, errStore
	}
	existing, ok := s.records[id]
	if !ok {
		return nil, errors.New("not found")
	}
	existing.Title = item.Title
	return existing, nil
}

func (s *fakeStore) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	if s.failDelete {
		return errStore
	}
	if _, ok := s.records[id]; !ok {
		return errors.New("not found")
	}
	delete(s.records, id)
	return nil
}

func (s *fakeStore) seed(titles ...string) []*note {
	out := make([]*note, len(titles))
	for i, t := range titles {
		n, _ := s.Insert(context.Background(), uuid.Nil, &note{Title: t})
		out[i] = n
	}
	s.insertCalls = 0
	return out
}

func TestAdd_IsLocalOnly(t *testing.T) {
	store := newFakeStore()
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	key := wl.Add(&note{Title: "draft"})

	assert.Equal(t, 0, store.insertCalls)
	assert.Equal(t, 1, wl.Len())

	entries := wl.Entries()
	assert.Equal(t, key, entries[0].Key)
	assert.Equal(t, Pending, entries[0].State)
}

func TestUpdate_UnknownKeyIsNoOp(t *testing.T) {
	store := newFakeStore()
	store.seed("one")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	wl.Update("no-such-key", func(n *note) { n.Title = "mutated" })

	assert.Equal(t, "one", wl.Items()[0].Title)
}

func TestUpdate_MutatesByKey(t *testing.T) {
	store := newFakeStore()
	store.seed("one")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	key := wl.Entries()[0].Key
	wl.Update(key, func(n *note) { n.Title = "renamed" })

	assert.Equal(t, "renamed", wl.Items()[0].Title)
	assert.Equal(t, 0, store.updateCalls, "Update must not touch the store")
}

func TestDelete_PendingNeverCallsStore(t *testing.T) {
	store := newFakeStore()
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	key := wl.Add(&note{Title: "draft"})
	require.NoError(t, wl.Delete(context.Background(), key))

	assert.Equal(t, 0, store.deleteCalls)
	assert.Equal(t, 0, wl.Len())
}

func TestDelete_PersistedFailureKeepsEntry(t *testing.T) {
	store := newFakeStore()
	store.seed("keep-me")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	store.failDelete = true
	key := wl.Entries()[0].Key

	err := wl.Delete(context.Background(), key)

	assert.Error(t, err)
	assert.Equal(t, 1, wl.Len(), "a record the store still holds must stay visible")
}

func TestDelete_PersistedRemovesImmediately(t *testing.T) {
	store := newFakeStore()
	seeded := store.seed("gone")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	require.NoError(t, wl.Delete(context.Background(), seeded[0].ID.String()))

	assert.Equal(t, 1, store.deleteCalls)
	assert.Equal(t, 0, wl.Len())
	assert.Empty(t, store.records)
}

func TestSave_InsertsPendingAndUpdatesPersisted(t *testing.T) {
	store := newFakeStore()
	store.seed("old")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	key := wl.Entries()[0].Key
	wl.Update(key, func(n *note) { n.Title = "old-renamed" })
	wl.Add(&note{Title: "new"})

	res, err := wl.Save(context.Background())

	require.NoError(t, err)
	assert.Equal(t, SaveResult{Inserted: 1, Updated: 1}, res)
	assert.Equal(t, 2, wl.Len())

	for _, e := range wl.Entries() {
		assert.Equal(t, Persisted, e.State, "after Save every surviving entry is persisted")
	}

	titles := map[string]bool{}
	for _, n := range wl.Items() {
		titles[n.Title] = true
	}
	assert.True(t, titles["old-renamed"])
	assert.True(t, titles["new"])
}

func TestSave_PartialFailureStillReloads(t *testing.T) {
	store := newFakeStore()
	seeded := store.seed("stable")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	wl.Add(&note{Title: "good"})
	wl.Add(&note{Title: "bad"})
	store.failInsertTitle = "bad"
	store.failUpdateID = seeded[0].ID

	res, err := wl.Save(context.Background())

	assert.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, SaveResult{Inserted: 1, Updated: 0, Failed: 2}, res)

	// The reload reflects exactly what the store now holds: the original
	// record plus the one insert that went through. The failed pending
	// entry is gone from the list.
	assert.Equal(t, 2, wl.Len())
	titles := map[string]bool{}
	for _, n := range wl.Items() {
		titles[n.Title] = true
	}
	assert.True(t, titles["stable"])
	assert.True(t, titles["good"])
	assert.False(t, titles["bad"])
}

func TestSave_ReloadOrdersByCreationDescending(t *testing.T) {
	store := newFakeStore()
	store.seed("first", "second")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	wl.Add(&note{Title: "third"})
	_, err := wl.Save(context.Background())
	require.NoError(t, err)

	items := wl.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "first", items[2].Title)
}

func TestLoad_FailureLeavesListEmpty(t *testing.T) {
	store := newFakeStore()
	store.seed("unreachable")
	store.failList = true
	wl := New[*note](store, uuid.New())

	err := wl.Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 0, wl.Len())
}

func TestConcurrentMutations_DoNotRace(t *testing.T) {
	store := newFakeStore()
	store.seed("a", "b", "c")
	wl := New[*note](store, uuid.New())
	require.NoError(t, wl.Load(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wl.Add(&note{Title: "burst"})
			wl.Save(context.Background())
		}()
	}
	wg.Wait()

	// Every goroutine's pending entry was inserted exactly once.
	assert.Equal(t, 8+3, len(store.records))
	assert.Equal(t, wl.Len(), len(store.records))
}
