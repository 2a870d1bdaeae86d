package channel

import (
	"sync"

	"github.com/blackjack3d/meshkit/arena"
	"github.com/blackjack3d/meshkit/mesherr"
)

// entry pairs a Channel with the per-channel lease lock that enforces
// spec.md §4.3's single-writer/multi-reader policy: Read acquires
// TryRLock, Write acquires TryLock, and a conflicting acquisition fails
// fast with ChannelBorrowed rather than blocking (spec.md §5).
type entry[K comparable, V any] struct {
	mu   sync.RWMutex
	name string
	ch   *Channel[K, V]
}

// Group is a named collection of channels sharing the same (K, V)
// shape, keyed by both name and a type-safe ChannelID (spec.md §3).
// Group itself is guarded by a single mutex protecting the name/id
// catalog; each channel's data is separately guarded by its own lease
// lock, mirroring the teacher's per-resource-mutex convention
// (core.Graph's muVert/muEdgeAdj split) rather than one coarse lock.
type Group[K comparable, V any] struct {
	mu       sync.RWMutex
	byName   map[string]ID[K, V]
	channels *arena.Arena[*entry[K, V]]
}

// ID is a type-safe channel identifier: it compares equal only to IDs
// produced for the same (K, V) instantiation and the same underlying
// arena slot, so a VertexID-keyed ChannelID cannot be confused with a
// FaceID-keyed one even if the raw arena.ID happened to collide.
type ID[K comparable, V any] struct {
	raw arena.ID
}

// Valid reports whether id was produced by an Ensure/Create call (the
// zero ID is never a live channel).
func (id ID[K, V]) Valid() bool { return id.raw.Valid() }

// NewGroup constructs an empty channel Group.
func NewGroup[K comparable, V any]() *Group[K, V] {
	return &Group[K, V]{
		byName:   make(map[string]ID[K, V]),
		channels: arena.New[*entry[K, V]](),
	}
}

// Ensure returns the ID of the channel named name, creating it with
// default def if absent. Idempotent: calling it twice with the same
// name returns the same ID and does not reset an existing default.
//
// Complexity: O(1) amortized.
func (g *Group[K, V]) Ensure(name string, def V) ID[K, V] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.byName[name]; ok {
		return id
	}
	raw := g.channels.Allocate(&entry[K, V]{name: name, ch: NewChannel[K, V](def)})
	id := ID[K, V]{raw: raw}
	g.byName[name] = id
	return id
}

// Create behaves like Ensure but fails if name already exists, for
// callers that must not silently reuse another channel's data.
func (g *Group[K, V]) Create(name string, def V) (ID[K, V], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.byName[name]; ok {
		return ID[K, V]{}, mesherr.New(mesherr.KindChannelMissing, "channel %q already exists", name)
	}
	raw := g.channels.Allocate(&entry[K, V]{name: name, ch: NewChannel[K, V](def)})
	id := ID[K, V]{raw: raw}
	g.byName[name] = id
	return id, nil
}

// Lookup resolves an existing channel by name without creating it.
func (g *Group[K, V]) Lookup(name string) (ID[K, V], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.byName[name]
	return id, ok
}

// Remove deletes the channel identified by id, failing with
// ChannelMissing if it doesn't exist and ChannelBorrowed if a read or
// write lease is currently live (spec.md §4.3: "removal fails if any
// shared lease is live").
func (g *Group[K, V]) Remove(id ID[K, V]) (*Channel[K, V], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.channels.Get(id.raw)
	if !ok {
		return nil, mesherr.New(mesherr.KindChannelMissing, "channel not found")
	}
	if !(*e).mu.TryLock() {
		return nil, mesherr.New(mesherr.KindChannelBorrowed, "channel %q has a live lease", (*e).name)
	}
	defer (*e).mu.Unlock()

	g.channels.Free(id.raw)
	delete(g.byName, (*e).name)
	return (*e).ch, nil
}

// ReadGuard is a live read lease on a channel's data. Release must be
// called exactly once to give up the lease.
type ReadGuard[K comparable, V any] struct {
	e *entry[K, V]
}

// Get reads k through the lease (see Channel.Get).
func (r *ReadGuard[K, V]) Get(k K) V { return r.e.ch.Get(k) }

// TryGet reads k through the lease without substituting the default.
func (r *ReadGuard[K, V]) TryGet(k K) (V, bool) { return r.e.ch.TryGet(k) }

// Len reports the number of explicitly-set entries.
func (r *ReadGuard[K, V]) Len() int { return r.e.ch.Len() }

// Iter walks explicitly-set entries through the lease.
func (r *ReadGuard[K, V]) Iter(fn func(K, V) bool) { r.e.ch.Iter(fn) }

// Default returns the channel's default value.
func (r *ReadGuard[K, V]) Default() V { return r.e.ch.Default() }

// Release gives up the read lease. Safe to call exactly once.
func (r *ReadGuard[K, V]) Release() { r.e.mu.RUnlock() }

// WriteGuard is a live exclusive write lease on a channel's data.
type WriteGuard[K comparable, V any] struct {
	e *entry[K, V]
}

// Get reads k through the lease.
func (w *WriteGuard[K, V]) Get(k K) V { return w.e.ch.Get(k) }

// Set writes v at k through the lease.
func (w *WriteGuard[K, V]) Set(k K, v V) { w.e.ch.Set(k, v) }

// Delete removes k through the lease.
func (w *WriteGuard[K, V]) Delete(k K) { w.e.ch.Delete(k) }

// Clear empties the channel through the lease.
func (w *WriteGuard[K, V]) Clear() { w.e.ch.Clear() }

// SetDefault updates the channel's default through the lease.
func (w *WriteGuard[K, V]) SetDefault(v V) { w.e.ch.SetDefault(v) }

// Iter walks explicitly-set entries through the lease.
func (w *WriteGuard[K, V]) Iter(fn func(K, V) bool) { w.e.ch.Iter(fn) }

// Len reports the number of explicitly-set entries.
func (w *WriteGuard[K, V]) Len() int { return w.e.ch.Len() }

// Release gives up the write lease. Safe to call exactly once.
func (w *WriteGuard[K, V]) Release() { w.e.mu.Unlock() }

// Read acquires a shared read lease on the channel named id, failing
// with ChannelBorrowed if a write lease is currently live.
func (g *Group[K, V]) Read(id ID[K, V]) (*ReadGuard[K, V], error) {
	e, err := g.lookupEntry(id)
	if err != nil {
		return nil, err
	}
	if !e.mu.TryRLock() {
		return nil, mesherr.New(mesherr.KindChannelBorrowed, "channel %q is being written", e.name)
	}
	return &ReadGuard[K, V]{e: e}, nil
}

// Write acquires an exclusive write lease on the channel named id,
// failing with ChannelBorrowed if any read or write lease is live.
func (g *Group[K, V]) Write(id ID[K, V]) (*WriteGuard[K, V], error) {
	e, err := g.lookupEntry(id)
	if err != nil {
		return nil, err
	}
	if !e.mu.TryLock() {
		return nil, mesherr.New(mesherr.KindChannelBorrowed, "channel %q has a live lease", e.name)
	}
	return &WriteGuard[K, V]{e: e}, nil
}

func (g *Group[K, V]) lookupEntry(id ID[K, V]) (*entry[K, V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.channels.Get(id.raw)
	if !ok {
		return nil, mesherr.New(mesherr.KindChannelMissing, "channel not found")
	}
	return *e, nil
}

// Names returns every channel name currently in the group, for
// introspection.
func (g *Group[K, V]) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.byName))
	for name := range g.byName {
		names = append(names, name)
	}
	return names
}

// Clone deep-copies every channel in the group, preserving each
// channel's ID exactly (by cloning the backing arena rather than
// reallocating): any ID obtained from g, including one cached outside
// the group (e.g. HalfEdgeMesh.DefaultChannels), resolves to the
// corresponding cloned channel in the result. Leases are never copied
// — a cloned mesh starts with no live leases.
func (g *Group[K, V]) Clone() *Group[K, V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clonedArena := g.channels.Clone()
	clonedArena.All(func(_ arena.ID, e *(*entry[K, V])) bool {
		orig := *e
		*e = &entry[K, V]{name: orig.name, ch: orig.ch.Clone()}
		return true
	})

	clone := &Group[K, V]{
		byName:   make(map[string]ID[K, V], len(g.byName)),
		channels: clonedArena,
	}
	for name, id := range g.byName {
		clone.byName[name] = id
	}
	return clone
}
