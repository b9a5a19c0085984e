// Package simulator owns a single turmite's position, heading, and step
// budget, and executes one tick at a time against a GridStore and
// TransitionTable.
//
// A single ant runs strictly single-threaded and non-suspending: each
// call to Step looks up the rule for the current state, mutates the
// grid and the ant in place, and appends a snapshot to the trace. There
// is exactly one ant per invocation and no concurrent state to
// coordinate.
package simulator

import (
	"turmite/gridstore"
	"turmite/heading"
	"turmite/simerr"
	"turmite/statering"
	"turmite/transition"
)

// Simulator is a single turmite's mutable runtime state.
type Simulator struct {
	Grid       *gridstore.GridStore
	Table      *transition.Table
	Background byte // C0
	Ring       *statering.StateRing

	Position   gridstore.Position
	Heading    heading.Heading
	StepBudget int

	maxRadiusSq int64
}

// New constructs a Simulator at the origin, facing N, with the given
// step budget, background color, transition table, and ring capacity.
// The origin is seeded with the background color so the board's initial
// state is t=0, (0,0)=C0, matching the board every ant starts on.
func New(table *transition.Table, background byte, stepBudget int, ringCapacity int) *Simulator {
	s := &Simulator{
		Grid:       gridstore.New(),
		Table:      table,
		Background: background,
		Ring:       statering.New(ringCapacity),
		Position:   gridstore.Position{X: 0, Y: 0},
		Heading:    heading.N,
		StepBudget: stepBudget,
	}
	s.Grid.Set(s.Position, background)
	return s
}

// Step executes exactly one tick: read the current cell's color (or the
// background if never written), look up the rewrite rule, write the new
// color, move, update the running max radius, and append a snapshot to
// the ring. Returns UnknownColor if the current cell's color has no
// defined row.
func (s *Simulator) Step() error {
	color, ok := s.Grid.Get(s.Position)
	if !ok {
		color = s.Background
	}

	rule, ok := s.Table.Lookup(color, s.Heading)
	if !ok {
		return simerr.New(simerr.UnknownColor, "no transition rule for color '"+string(color)+"'")
	}

	s.Grid.Set(s.Position, rule.NextColor)

	delta := rule.NextHeading.Delta()
	s.Position = s.Position.Add(delta.DX, delta.DY)
	s.Heading = rule.NextHeading

	if r := s.Position.RadiusSq(); r > s.maxRadiusSq {
		s.maxRadiusSq = r
	}

	s.Ring.Push(statering.AntState{
		Heading:     byte(s.Heading),
		Color:       rule.NextColor,
		Position:    s.Position,
		MaxRadiusSq: s.maxRadiusSq,
	})

	s.StepBudget--
	return nil
}
