package colony

import "iter"

// iterSource is the subset of core a Cursor needs, expressed as an
// interface so Cursor itself stays free of the guard/handle type
// parameters core carries. touchedLen, readRight, mintAt, valueAt and Len
// are implemented by core in pool.go.
type iterSource[T any, H comparable] interface {
	touchedLen() int
	readRight(i int) int
	mintAt(i int) H
	valueAt(i int) *T
	Len() int
}

// Cursor walks a pool's occupied slots in index order, jumping whole
// skipblocks at a time via the skipfield rather than visiting every empty
// slot in between (spec.md §6's O(1)-amortized iteration). A Cursor is
// restartable (Clone), reports its exact remaining count (Len) up front,
// and is fused: once exhausted it keeps returning false forever, even if
// the pool is mutated afterward, since a Cursor never re-reads touchedLen.
type Cursor[T any, H comparable] struct {
	src     iterSource[T, H]
	i       int
	touched int
	remain  int
}

func newCursor[T any, H comparable](src iterSource[T, H]) Cursor[T, H] {
	return Cursor[T, H]{src: src, touched: src.touchedLen(), remain: src.Len()}
}

// Next advances the cursor to the next occupied slot and returns its
// handle and a pointer to its value. The second return is false once the
// cursor is exhausted, and stays false on every subsequent call.
func (c *Cursor[T, H]) Next() (H, *T, bool) {
	var zero H
	for c.i < c.touched {
		skip := c.src.readRight(c.i)
		if skip == 0 {
			idx := c.i
			c.i++
			c.remain--
			return c.src.mintAt(idx), c.src.valueAt(idx), true
		}
		c.i += skip
	}
	return zero, nil, false
}

// Len returns the number of elements this cursor has not yet visited.
func (c *Cursor[T, H]) Len() int { return c.remain }

// Clone returns an independent copy of the cursor at its current position;
// advancing the clone does not affect the original and vice versa.
func (c *Cursor[T, H]) Clone() Cursor[T, H] {
	return *c
}

// Iter returns a cursor positioned at the pool's first occupied slot.
func (c *core[T, G, H]) Iter() Cursor[T, H] {
	return newCursor[T, H](c)
}

// All returns an iterator over every (handle, *value) pair in the pool, in
// index order. Mutating the pool while ranging over All has unspecified
// effect on which elements are subsequently visited, same as Rust's
// iterator invalidation rules that spec.md §7 inherits.
func (c *core[T, G, H]) All() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		cur := newCursor[T, H](c)
		for {
			h, v, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(h, v) {
				return
			}
		}
	}
}

// Values returns an iterator over every value in the pool, in index order,
// without handles.
func (c *core[T, G, H]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		cur := newCursor[T, H](c)
		for {
			_, v, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Extend inserts every value produced by seq into the pool.
func (c *core[T, G, H]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		c.Insert(v)
	}
}

// FromIterator builds a new GenerationPool containing every value produced
// by seq, in order.
func FromIterator[T any](seq iter.Seq[T]) *GenerationPool[T] {
	p := New[T]()
	p.Extend(seq)
	return p
}

// FromIteratorFlagged builds a new FlagPool containing every value produced
// by seq, in order.
func FromIteratorFlagged[T any](seq iter.Seq[T]) *FlagPool[T] {
	p := Flagged[T]()
	p.Extend(seq)
	return p
}

// FromIteratorUnguarded builds a new UnguardedPool containing every value
// produced by seq, in order.
func FromIteratorUnguarded[T any](seq iter.Seq[T]) *UnguardedPool[T] {
	p := Unguarded[T]()
	p.Extend(seq)
	return p
}
