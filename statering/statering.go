// Package statering implements the bounded ring buffer of recent AntState
// snapshots the loop detector scans.
//
// The ring uses a struct-of-arrays layout so a scan over thousands of
// snapshots touches only the fields it needs, rather than striding
// across interleaved struct fields.
package statering

import "turmite/gridstore"

// AntState is one per-step snapshot, recorded after the step executes:
// the heading and color just produced by that step, the position the ant
// now occupies, and the running maximum of x²+y² seen so far.
type AntState struct {
	Heading     byte // heading.Heading, stored as byte to keep the struct small
	Color       byte
	Position    gridstore.Position
	MaxRadiusSq int64
}

// StateRing is a fixed-capacity circular buffer of AntState, FIFO: once
// full, pushing a new entry silently evicts the oldest. Capacity bounds
// both memory and the largest detectable loop period (capacity/2).
type StateRing struct {
	capacity int
	headings []byte
	colors   []byte
	posX     []int
	posY     []int
	maxRSq   []int64

	// head is the index one past the most recently written entry,
	// modulo capacity. count is min(pushed, capacity).
	head  int
	count int
}

// New returns a StateRing with the given fixed capacity. capacity must be
// > 0.
func New(capacity int) *StateRing {
	return &StateRing{
		capacity: capacity,
		headings: make([]byte, capacity),
		colors:   make([]byte, capacity),
		posX:     make([]int, capacity),
		posY:     make([]int, capacity),
		maxRSq:   make([]int64, capacity),
	}
}

// Push appends a new snapshot, evicting the oldest if the ring is full.
func (r *StateRing) Push(s AntState) {
	r.headings[r.head] = s.Heading
	r.colors[r.head] = s.Color
	r.posX[r.head] = s.Position.X
	r.posY[r.head] = s.Position.Y
	r.maxRSq[r.head] = s.MaxRadiusSq
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	}
}

// Len returns the number of live entries, min(pushed-so-far, capacity).
func (r *StateRing) Len() int {
	return r.count
}

// Capacity returns the ring's fixed capacity W.
func (r *StateRing) Capacity() int {
	return r.capacity
}

// slot translates a Python-style index (0 is oldest live entry, -1 is the
// newest, negative indices count back from the newest) into a physical
// slot in the backing arrays. i must satisfy -count <= i < count.
func (r *StateRing) slot(i int) int {
	if i < 0 {
		i = r.count + i
	}
	// newest entry lives at (head-1); oldest live entry at (head-count).
	physical := (r.head - r.count + i) % r.capacity
	if physical < 0 {
		physical += r.capacity
	}
	return physical
}

// At returns the snapshot at logical index i, where i may be negative to
// index from the newest entry (-1 is the newest, -2 the one before it,
// and so on), matching the deque-style negative indexing the detector
// algorithms are defined in terms of.
func (r *StateRing) At(i int) AntState {
	p := r.slot(i)
	return AntState{
		Heading:     r.headings[p],
		Color:       r.colors[p],
		Position:    gridstore.Position{X: r.posX[p], Y: r.posY[p]},
		MaxRadiusSq: r.maxRSq[p],
	}
}
