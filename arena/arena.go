// Package arena implements a generational slot-map allocator: the
// backing store for every mesh element kind (vertex, face, halfedge)
// and for channel identifiers. An ID is a (slot, generation) pair, so a
// handle into a freed-and-reused slot is detectable as stale rather
// than silently aliasing a new element.
//
// Freed slots are reused before the backing slice grows, and an ID
// compares by total order so it can key a map or sort a slice.
package arena

// ID identifies an element allocated by an Arena. Two IDs with the same
// slot but different generations are unequal: the first is stale.
//
// ID is 8 bytes and trivially copyable, per spec.md §4.1's "cheap to
// copy (<= 8 bytes)" requirement.
type ID struct {
	slot       uint32
	generation uint32
}

// Nil is the zero ID. No Arena ever allocates it, so it is safe to use
// as a "no element" sentinel (mirrors spec.md's Option<Id> fields).
var Nil = ID{}

// Valid reports whether id could have been produced by an allocation
// (i.e. is not the zero ID). It does not check liveness against any
// particular Arena; use Arena.Get for that.
func (id ID) Valid() bool { return id != Nil }

// Less defines the arena's total order over IDs: primarily by slot,
// then by generation. It lets IDs be sorted deterministically, which
// selection.Expression's positional ranges rely on indirectly via
// Arena.All's iteration order.
func (id ID) Less(other ID) bool {
	if id.slot != other.slot {
		return id.slot < other.slot
	}
	return id.generation < other.generation
}

type slot[T any] struct {
	generation uint32
	occupied   bool
	value      T
}

// Arena is a generational slot-map of elements of type T. The zero
// value is not usable; construct one with New.
type Arena[T any] struct {
	slots    []slot[T]
	freeList []uint32
	liveLen  int
}

// New constructs an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Allocate inserts value into the arena and returns its fresh ID,
// reusing a freed slot (and bumping its generation) before growing the
// backing slice.
//
// Complexity: amortized O(1).
func (a *Arena[T]) Allocate(value T) ID {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		s := &a.slots[idx]
		s.occupied = true
		s.value = value
		a.liveLen++
		return ID{slot: idx, generation: s.generation}
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{generation: 1, occupied: true, value: value})
	a.liveLen++
	return ID{slot: idx, generation: 1}
}

// Free releases the element at id, bumping the slot's generation so any
// lingering copy of id becomes stale. Freeing an already-free or
// out-of-range id is a no-op and reports false.
//
// Complexity: O(1).
func (a *Arena[T]) Free(id ID) bool {
	s, ok := a.slotFor(id)
	if !ok {
		return false
	}
	var zero T
	s.value = zero
	s.occupied = false
	s.generation++
	a.freeList = append(a.freeList, id.slot)
	a.liveLen--
	return true
}

// Get returns a pointer to the live element at id, or (nil, false) if
// id is stale, out of range, or was freed.
//
// Complexity: O(1). The returned pointer is invalidated by any further
// Allocate/Free call that reuses id.slot; callers within a single
// exclusive-borrow operation may hold it across reads but must not
// retain it past the operation.
func (a *Arena[T]) Get(id ID) (*T, bool) {
	s, ok := a.slotFor(id)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether id currently names a live element.
func (a *Arena[T]) Contains(id ID) bool {
	_, ok := a.slotFor(id)
	return ok
}

func (a *Arena[T]) slotFor(id ID) (*slot[T], bool) {
	if int(id.slot) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.slot]
	if !s.occupied || s.generation != id.generation {
		return nil, false
	}
	return s, true
}

// Len returns the number of currently live elements.
func (a *Arena[T]) Len() int { return a.liveLen }

// All calls fn for every live element in ascending slot-index order.
// Iteration order matches spec.md §5's "arena's insertion-minus-removal
// order": a freed slot is revisited (with a new ID) the next time it is
// reused, before any slot added by growth, so removal/reallocation can
// reorder subsequent iterations. If fn returns false, iteration stops
// early.
func (a *Arena[T]) All(fn func(ID, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		if !fn(ID{slot: uint32(i), generation: s.generation}, &s.value) {
			return
		}
	}
}

// IDs returns the live IDs in the same order as All, as a convenience
// for callers that need a materialized slice (e.g. selection
// resolution's positional indexing).
func (a *Arena[T]) IDs() []ID {
	ids := make([]ID, 0, a.liveLen)
	a.All(func(id ID, _ *T) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Clone returns a deep copy of a, suitable for HalfEdgeMesh.Clone's
// connectivity duplication. T is copied by value; if T contains
// reference types, the caller is responsible for any deeper copy.
func (a *Arena[T]) Clone() *Arena[T] {
	clone := &Arena[T]{
		slots:    make([]slot[T], len(a.slots)),
		freeList: make([]uint32, len(a.freeList)),
		liveLen:  a.liveLen,
	}
	copy(clone.slots, a.slots)
	copy(clone.freeList, a.freeList)
	return clone
}
