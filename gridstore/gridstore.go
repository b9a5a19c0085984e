// Package gridstore implements the sparse mapping from integer lattice
// coordinates to color symbols that backs a turmite's unbounded board.
//
// A dense array is disqualified because the grid is unbounded, so cells
// are grouped into fixed-size chunks and addressed by a chunk key: a
// hash-keyed chunk map gives locality without committing to a dense
// allocation up front.
package gridstore

const chunkBits = 6
const chunkSize = 1 << chunkBits // 64
const chunkMask = chunkSize - 1

type chunkKey struct {
	cx, cy int
}

type chunk struct {
	colors  [chunkSize * chunkSize]byte
	written [chunkSize * chunkSize]bool
}

// GridStore is a sparse (x,y) -> color map. Absence is semantically
// equivalent to the background color C0; callers must supply C0
// themselves on a miss (see Get).
type GridStore struct {
	chunks map[chunkKey]*chunk
	count  int
}

// New returns an empty GridStore.
func New() *GridStore {
	return &GridStore{chunks: make(map[chunkKey]*chunk)}
}

func chunkAndOffset(p Position) (key chunkKey, idx int) {
	cx := floorDiv(p.X, chunkSize)
	cy := floorDiv(p.Y, chunkSize)
	ox := p.X - cx*chunkSize
	oy := p.Y - cy*chunkSize
	return chunkKey{cx, cy}, oy*chunkSize + ox
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Get returns the color written at p and true, or (0, false) if the cell
// was never written (the caller should substitute C0).
func (g *GridStore) Get(p Position) (color byte, ok bool) {
	key, idx := chunkAndOffset(p)
	c, present := g.chunks[key]
	if !present || !c.written[idx] {
		return 0, false
	}
	return c.colors[idx], true
}

// Set writes color unconditionally to p. There is no "write only if
// different" shortcut: every call marks p as written, even when color
// equals the cell's current color or C0.
func (g *GridStore) Set(p Position, color byte) {
	key, idx := chunkAndOffset(p)
	c, present := g.chunks[key]
	if !present {
		c = &chunk{}
		g.chunks[key] = c
	}
	if !c.written[idx] {
		g.count++
	}
	c.colors[idx] = color
	c.written[idx] = true
}

// Len returns the number of distinct cells ever written.
func (g *GridStore) Len() int {
	return g.count
}

// Bounds returns the tight bounding box of all written cells. ok is false
// if no cell has ever been written.
func (g *GridStore) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	first := true
	for key, c := range g.chunks {
		for oy := 0; oy < chunkSize; oy++ {
			for ox := 0; ox < chunkSize; ox++ {
				idx := oy*chunkSize + ox
				if !c.written[idx] {
					continue
				}
				x := key.cx*chunkSize + ox
				y := key.cy*chunkSize + oy
				if first {
					minX, maxX, minY, maxY = x, x, y, y
					first = false
					continue
				}
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	return minX, minY, maxX, maxY, !first
}

// Visit calls fn once for every written cell. Iteration order is
// unspecified.
func (g *GridStore) Visit(fn func(p Position, color byte)) {
	for key, c := range g.chunks {
		for oy := 0; oy < chunkSize; oy++ {
			for ox := 0; ox < chunkSize; ox++ {
				idx := oy*chunkSize + ox
				if !c.written[idx] {
					continue
				}
				fn(Position{X: key.cx*chunkSize + ox, Y: key.cy*chunkSize + oy}, c.colors[idx])
			}
		}
	}
}
