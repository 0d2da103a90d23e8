package colony

import "sync/atomic"

// Index identifies an element in a FlagPool or an UnguardedPool. It is a
// raw slot index with no generation information, so a reused slot mints an
// Index equal to the one it replaced (see spec.md §4.3).
type Index int

// poolIDBits/generationBits split a single uint64 generation word into a
// pool identity and a per-slot counter, matching original_source's
// Generation bit layout (44 bits id / 20 bits generation).
const (
	poolIDBits     = 44
	generationBits = 64 - poolIDBits

	maxPoolID     = uint64(1)<<poolIDBits - 1
	maxGeneration = uint32(1)<<generationBits - 1

	// sentinelPoolID is reserved for pools that have never allocated, so
	// their handles (none exist at that identity) can never validate.
	// spec.md §9 prefers this variant over the original's "0 is the first
	// real id" scheme.
	sentinelPoolID = uint64(0)
)

var nextPoolIDCounter atomic.Uint64

// nextPoolID hands out a fresh, process-unique pool identity. It panics if
// the identity space is exhausted, which spec.md §7 documents as
// effectively unreachable in normal use.
func nextPoolID() uint64 {
	id := nextPoolIDCounter.Add(1)
	if id > maxPoolID {
		panic(ErrPoolIdentityExhausted)
	}
	return id
}

func encodeGeneration(poolID uint64, generation uint32) uint64 {
	return poolID<<generationBits | uint64(generation)
}

func decodeGeneration(word uint64) (poolID uint64, generation uint32) {
	return word >> generationBits, uint32(word & uint64(maxGeneration))
}

// Handle identifies an element in a GenerationPool. It carries both the
// slot index and a generation word encoding the owning pool's identity and
// a per-slot counter, so a handle from one pool — or from a since-removed
// occupant of the same slot — never validates against a different element.
type Handle struct {
	Index int
	gen   uint64
}

// genState is the per-slot Generation guard state: an even counter means
// occupied, odd means retired-empty (spec.md §4.3 invariant 8).
type genState struct {
	generation uint32
}

func genNewOccupied() genState {
	return genState{generation: 0}
}

// genFill reuses a retired-empty slot, per spec.md §4.3's fill contract:
// the counter is odd going in and becomes even (occupied) coming out.
func genFill(g *genState) {
	g.generation++
}

// genEmpty retires an occupied slot. It returns whether the slot may be
// added back to the free list: false means the generation counter has
// reached its reserved retirement sentinel and the slot must never be
// reused, preventing ABA once the counter space is exhausted.
func genEmpty(g *genState) bool {
	g.generation++
	return g.generation != maxGeneration
}

func genMint(g *genState, index int, poolID uint64) Handle {
	return Handle{Index: index, gen: encodeGeneration(poolID, g.generation)}
}

func genCheck(g *genState, h Handle, poolID uint64) bool {
	hPoolID, hGeneration := decodeGeneration(h.gen)
	return hPoolID == poolID && hGeneration == g.generation
}

func genIndex(h Handle) int {
	return h.Index
}

func genOps() guardOps[genState, Handle] {
	return guardOps[genState, Handle]{
		newOccupied: genNewOccupied,
		fill:        genFill,
		empty:       genEmpty,
		mint:        genMint,
		check:       genCheck,
		index:       genIndex,
		newID:       nextPoolID,
	}
}

// flagState is the per-slot Flag guard state: a single occupied bit.
type flagState struct {
	occupied bool
}

func flagNewOccupied() flagState {
	return flagState{occupied: true}
}

func flagFill(g *flagState) {
	g.occupied = true
}

func flagEmpty(g *flagState) bool {
	g.occupied = false
	return true
}

func flagMint(_ *flagState, index int, _ uint64) Index {
	return Index(index)
}

func flagCheck(g *flagState, _ Index, _ uint64) bool {
	return g.occupied
}

func flagIndex(h Index) int {
	return int(h)
}

func flagOps() guardOps[flagState, Index] {
	return guardOps[flagState, Index]{
		newOccupied: flagNewOccupied,
		fill:        flagFill,
		empty:       flagEmpty,
		mint:        flagMint,
		check:       flagCheck,
		index:       flagIndex,
		newID:       noPoolIdentity,
	}
}

// noGuardNewOccupied, noGuardFill and noGuardEmpty implement the zero-sized
// None guard: it carries no per-slot state and provides no validation (see
// spec.md §4.3), so its "check" is never wired up — UnguardedPool has no
// checked API at all, see pool.go.
func noGuardNewOccupied() struct{} { return struct{}{} }
func noGuardFill(*struct{})        {}
func noGuardEmpty(*struct{}) bool  { return true }

func noGuardMint(_ *struct{}, index int, _ uint64) Index {
	return Index(index)
}

func noGuardIndex(h Index) int {
	return int(h)
}

func noGuardOps() guardOps[struct{}, Index] {
	return guardOps[struct{}, Index]{
		newOccupied: noGuardNewOccupied,
		fill:        noGuardFill,
		empty:       noGuardEmpty,
		mint:        noGuardMint,
		check:       nil,
		index:       noGuardIndex,
		newID:       noPoolIdentity,
	}
}

// noPoolIdentity is the newID implementation for guards that carry no pool
// identity of their own (Flag, None): minting a handle never consults
// poolID (flagMint/noGuardMint both ignore it), so allocating one from the
// process-wide counter would only burn identity space for no benefit. Only
// the Generation guard's nextPoolID touches that counter (spec.md §5).
func noPoolIdentity() uint64 { return sentinelPoolID }
