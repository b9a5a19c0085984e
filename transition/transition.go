// Package transition implements the immutable per-color rewrite rules
// that drive a turmite: for each color and incoming heading, the rule to
// follow is (new heading, new color).
//
// Rows are addressed by a small interned integer color id computed once
// at parse time rather than by string-keyed lookup in the simulator's
// inner loop.
package transition

import "turmite/heading"

// Rule is one (new heading, new color) pair.
type Rule struct {
	NextHeading heading.Heading
	NextColor   byte
}

// Row holds the four rules for one color, indexed by incoming heading.
type Row [heading.NumHeadings]Rule

// Table is an immutable color -> Row mapping, addressed by interned color
// id. It is deep-copied on handoff from the parser (see Builder.Build) so
// the caller may freely mutate its own working buffer between ants.
type Table struct {
	rows  []Row
	ids   map[byte]int
	chars []byte // ids[chars[i]] == i
}

// Lookup returns the rule for (color, h). ok is false if color was never
// defined.
func (t *Table) Lookup(color byte, h heading.Heading) (Rule, bool) {
	id, ok := t.ids[color]
	if !ok {
		return Rule{}, false
	}
	return t.rows[id][h], true
}

// Has reports whether color has a defined row.
func (t *Table) Has(color byte) bool {
	_, ok := t.ids[color]
	return ok
}

// Colors returns every color with a defined row, in definition order.
func (t *Table) Colors() []byte {
	out := make([]byte, len(t.chars))
	copy(out, t.chars)
	return out
}

// Builder accumulates DNA rows before an immutable Table is built. The
// parser owns a Builder and mutates it freely; Build deep-copies into a
// Table the Simulator can keep without aliasing the builder's buffer, so
// each ant gets its own owned, immutable Table from a reused Builder.
type Builder struct {
	ids   map[byte]int
	rows  []Row
	chars []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{ids: make(map[byte]int)}
}

func (b *Builder) idFor(color byte) int {
	if id, ok := b.ids[color]; ok {
		return id
	}
	id := len(b.rows)
	b.ids[color] = id
	b.rows = append(b.rows, Row{})
	b.chars = append(b.chars, color)
	return id
}

// Define sets the row for color. Calling Define twice for the same color
// overwrites the earlier row.
func (b *Builder) Define(color byte, row Row) {
	id := b.idFor(color)
	b.rows[id] = row
}

// Build returns an immutable, independently-owned Table. Subsequent
// mutation of b (via Reset or Define) does not alias the returned Table.
func (b *Builder) Build() *Table {
	rows := make([]Row, len(b.rows))
	copy(rows, b.rows)
	chars := make([]byte, len(b.chars))
	copy(chars, b.chars)
	ids := make(map[byte]int, len(b.ids))
	for k, v := range b.ids {
		ids[k] = v
	}
	return &Table{rows: rows, ids: ids, chars: chars}
}

// Reset clears the builder for reuse on the next ant's DNA block.
func (b *Builder) Reset() {
	b.ids = make(map[byte]int)
	b.rows = b.rows[:0]
	b.chars = b.chars[:0]
}

// Len reports how many colors are currently defined.
func (b *Builder) Len() int {
	return len(b.rows)
}
