package colony

import "testing"

func TestSkipfieldReadWriteRoundTrip(t *testing.T) {
	tests := []int{0, 1, 254, 255, 256, 1000, 1 << 20}

	sf := newSkipfield(10)
	for _, v := range tests {
		sf.write(3, v)
		if got := sf.read(3); got != v {
			t.Errorf("write(3, %d) then read(3) = %d, want %d", v, got, v)
		}
	}
}

func TestSkipfieldSpillUsesSideTable(t *testing.T) {
	sf := newSkipfield(10)

	sf.write(0, 500)
	if sf.cells[1] != spillMarker {
		t.Errorf("expected spill marker in cell, got %d", sf.cells[1])
	}
	if sf.spill[1] != 500 {
		t.Errorf("expected spill word 500, got %d", sf.spill[1])
	}
}

func TestSkipfieldSkipSingleton(t *testing.T) {
	sf := newSkipfield(10)

	start, end := sf.skip(5)
	if start != 5 || end != 5 {
		t.Fatalf("skip(5) on isolated index = (%d, %d), want (5, 5)", start, end)
	}
	if got := sf.readRight(5); got != 1 {
		t.Errorf("readRight(5) = %d, want 1", got)
	}
	if got := sf.readLeft(5); got != 1 {
		t.Errorf("readLeft(5) = %d, want 1", got)
	}
}

func TestSkipfieldSkipMergesLeftAndRight(t *testing.T) {
	sf := newSkipfield(10)

	sf.skip(5)
	sf.skip(7)

	// 6 has an unoccupied neighbor on both sides, so skipping it merges all
	// three into one block [5, 7].
	start, end := sf.skip(6)
	if start != 5 || end != 7 {
		t.Fatalf("skip(6) merge = (%d, %d), want (5, 7)", start, end)
	}
	if got := sf.readRight(5); got != 3 {
		t.Errorf("readRight(5) = %d, want 3", got)
	}
	if got := sf.readLeft(7); got != 3 {
		t.Errorf("readLeft(7) = %d, want 3", got)
	}
}

func TestSkipfieldSkipMergesLeftOnly(t *testing.T) {
	sf := newSkipfield(10)

	sf.skip(4)
	start, end := sf.skip(5)
	if start != 4 || end != 5 {
		t.Fatalf("skip(5) merging left = (%d, %d), want (4, 5)", start, end)
	}
	if got := sf.readRight(4); got != 2 {
		t.Errorf("readRight(4) = %d, want 2", got)
	}
	if got := sf.readLeft(5); got != 2 {
		t.Errorf("readLeft(5) = %d, want 2", got)
	}
}

func TestSkipfieldSkipMergesRightOnly(t *testing.T) {
	sf := newSkipfield(10)

	sf.skip(5)
	start, end := sf.skip(4)
	if start != 4 || end != 5 {
		t.Fatalf("skip(4) merging right = (%d, %d), want (4, 5)", start, end)
	}
	if got := sf.readRight(4); got != 2 {
		t.Errorf("readRight(4) = %d, want 2", got)
	}
	if got := sf.readLeft(5); got != 2 {
		t.Errorf("readLeft(5) = %d, want 2", got)
	}
}

func TestSkipfieldUnskipLeftmostShrinksFromLeft(t *testing.T) {
	sf := newSkipfield(10)

	sf.skip(4)
	sf.skip(5)
	sf.skip(6) // merges to a single block [4, 6] of length 3

	oldSize := sf.unskipLeftmost(4)
	if oldSize != 3 {
		t.Fatalf("unskipLeftmost(4) old size = %d, want 3", oldSize)
	}
	if got := sf.readRight(4); got != 0 {
		t.Errorf("readRight(4) after unskip = %d, want 0 (now occupied)", got)
	}
	if got := sf.readRight(5); got != 2 {
		t.Errorf("readRight(5) = %d, want 2 (new head of shrunk block)", got)
	}
	if got := sf.readLeft(6); got != 2 {
		t.Errorf("readLeft(6) = %d, want 2", got)
	}
}

func TestSkipfieldUnskipLeftmostSingletonVanishes(t *testing.T) {
	sf := newSkipfield(10)

	sf.skip(5)
	oldSize := sf.unskipLeftmost(5)
	if oldSize != 1 {
		t.Fatalf("unskipLeftmost(5) old size = %d, want 1", oldSize)
	}
	if got := sf.readRight(5); got != 0 {
		t.Errorf("readRight(5) after unskip = %d, want 0", got)
	}
}

func TestSkipfieldSentinelsStayZero(t *testing.T) {
	sf := newSkipfield(10)

	sf.skip(0)
	sf.skip(9)

	if got := sf.read(-1); got != 0 {
		t.Errorf("sentinel at -1 = %d, want 0", got)
	}
	if got := sf.read(10); got != 0 {
		t.Errorf("sentinel at n = %d, want 0", got)
	}
}

func TestSkipfieldLongRunSpills(t *testing.T) {
	const n = 300
	sf := newSkipfield(n)

	// Build a single skipblock spanning the whole range by skipping right to
	// left, so each step merges into the growing right neighbor.
	for i := n - 1; i >= 0; i-- {
		sf.skip(i)
	}

	if got := sf.readRight(0); got != n {
		t.Errorf("readRight(0) = %d, want %d", got, n)
	}
	if got := sf.readLeft(n - 1); got != n {
		t.Errorf("readLeft(%d) = %d, want %d", n-1, got, n)
	}
	if sf.cells[1] != spillMarker {
		t.Errorf("expected head cell to hold the spill marker for a run of length %d", n)
	}

	oldSize := sf.unskipLeftmost(0)
	if oldSize != n {
		t.Fatalf("unskipLeftmost(0) old size = %d, want %d", oldSize, n)
	}
	if got := sf.readRight(1); got != n-1 {
		t.Errorf("readRight(1) after unskip = %d, want %d", got, n-1)
	}
}
