package colony

// unoccupied is the free-list node an empty slot carries: two optional
// neighbor indices forming one entry in the pool's intrusive doubly linked
// free list (spec.md §3).
type unoccupied struct {
	prev, next indexOpt
}

// slot is the pool's per-position storage: a guard of type G plus a
// payload. Occupancy is tracked externally (by the skipfield and the
// guard), never by a tag stored in the slot itself, per spec.md §3 — but
// unlike the original's untagged union, value and free are ordinary struct
// fields rather than an overlapping byte buffer. Go generics give no safe
// way to reinterpret an arbitrary T's bytes as another type without risking
// the garbage collector losing track of pointers T might contain, so the
// "external discriminant" rule is kept while the storage itself is not
// overlaid (see DESIGN.md).
type slot[T any, G any] struct {
	guard G
	value T
	free  unoccupied
}

// newOccupiedSlot builds a freshly touched, occupied slot, mirroring
// original_source's Slot::new_full — newOccupied is the owning guard's
// occupied-state constructor (spec.md §4.4).
func newOccupiedSlot[T any, G any](value T, newOccupied func() G) slot[T, G] {
	return slot[T, G]{guard: newOccupied(), value: value}
}

// fill reoccupies a slot that was the head of a free skipblock, mirroring
// original_source's Slot::fill.
func (s *slot[T, G]) fill(value T, fill func(*G)) {
	fill(&s.guard)
	s.value = value
}

// empty clears an occupied slot's value and free-list node and retires its
// guard, mirroring original_source's Slot::empty. It returns the slot's
// former value and whether the guard permits the slot to be reused.
func (s *slot[T, G]) empty(empty func(*G) bool) (T, bool) {
	value := s.value
	var zero T
	s.value = zero
	s.free = unoccupied{prev: noIndex, next: noIndex}
	return value, empty(&s.guard)
}
