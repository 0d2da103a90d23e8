package colony

// spillMarker is the escape value: when a run length would not fit in a
// single byte cell, the cell holds spillMarker and the true length lives in
// the parallel spill word for that logical index.
const spillMarker = uint8(255)

// skipfield is a jump-counting skipfield over a logical array of length n.
// Two sentinel cells flank the logical range so reads at -1 and at n always
// see zero, letting skip()/unskipLeftmost() treat the array ends like any
// other skipblock boundary.
//
// cells[i+1] holds the cell for logical index i (cells[0] is the sentinel at
// -1, cells[len(cells)-1] is the sentinel at n). spill mirrors cells 1:1 and
// is only meaningful where the matching cell equals spillMarker.
type skipfield struct {
	cells []uint8
	spill []uint64
}

// newSkipfield allocates a skipfield for n logical slots, all unskipped.
func newSkipfield(n int) *skipfield {
	return &skipfield{
		cells: make([]uint8, n+2),
		spill: make([]uint64, n+2),
	}
}

// copyFrom copies the first touched+2 cells (both sentinels included) from
// old into s, per spec.md §4.5's grow procedure. s must already be sized for
// the new capacity; any remaining cells are left zeroed by newSkipfield.
func (s *skipfield) copyFrom(old *skipfield, touched int) {
	n := touched + 2
	copy(s.cells[:n], old.cells[:n])
	copy(s.spill[:n], old.spill[:n])
}

// read returns the skip count stored at logical index i, where i may be -1
// or len(cells)-2 (the sentinel positions).
func (s *skipfield) read(i int) int {
	c := s.cells[i+1]
	if c != spillMarker {
		return int(c)
	}
	return int(s.spill[i+1])
}

// write stores the skip count v at logical index i, spilling to the side
// table when v does not fit in a byte.
func (s *skipfield) write(i, v int) {
	if v < int(spillMarker) {
		s.cells[i+1] = uint8(v)
		return
	}
	s.cells[i+1] = spillMarker
	s.spill[i+1] = uint64(v)
}

// readLeft and readRight are named aliases for read kept for call-site
// fidelity with spec.md §4.2's read<DIR>; direction no longer selects a
// distinct storage location in this struct-of-arrays layout (see
// DESIGN.md), so both simply read the cell at i.
func (s *skipfield) readLeft(i int) int  { return s.read(i) }
func (s *skipfield) readRight(i int) int { return s.read(i) }
func (s *skipfield) writeLeft(i, v int)  { s.write(i, v) }
func (s *skipfield) writeRight(i, v int) { s.write(i, v) }

// skip marks logical index i as unoccupied, merging with any adjacent
// skipblocks, and returns the merged block's [start, end] endpoints.
//
// Preconditions: i is in [0, n), i is currently unskipped.
func (s *skipfield) skip(i int) (start, end int) {
	left := s.readLeft(i - 1)
	right := s.readRight(i + 1)

	size := left + right + 1
	start = i - left
	end = i + right

	s.writeRight(start, size)
	s.writeLeft(end, size)

	return start, end
}

// unskipLeftmost marks the head of a skipblock (logical index i) as
// occupied again, shrinking the block from the left, and returns the
// block's size before the shrink.
//
// Preconditions: i is the head of a skipblock.
func (s *skipfield) unskipLeftmost(i int) (oldSize int) {
	oldSize = s.readRight(i)

	s.writeRight(i, 0)

	newSize := oldSize - 1
	if newSize > 0 {
		s.writeRight(i+1, newSize)
		s.writeLeft(i+oldSize-1, newSize)
	}

	return oldSize
}
