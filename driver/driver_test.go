package driver

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"turmite/config"
	"turmite/heading"
	"turmite/simulator"
	"turmite/transition"
)

// straightLineTable moves forever in heading N without recoloring.
func straightLineTable() *transition.Table {
	b := transition.NewBuilder()
	var row transition.Row
	for h := heading.N; h <= heading.W; h++ {
		row[h] = transition.Rule{NextHeading: heading.N, NextColor: 'w'}
	}
	b.Define('w', row)
	return b.Build()
}

// turnRight and turnLeft are the two relative 90-degree turns used by the
// classic Langton's-ant rule, expressed over the absolute heading order
// N,E,S,W (heading.N=0 .. heading.W=3).
func turnRight(h heading.Heading) heading.Heading { return (h + 1) % 4 }
func turnLeft(h heading.Heading) heading.Heading  { return (h + 3) % 4 }

// langtonsAntTable builds the two-color turmite DNA equivalent to the
// textbook Langton's ant: on a white cell, turn right and paint it black;
// on a black cell, turn left and paint it white. The turn is the same for
// every incoming heading, so the row is filled uniformly across all four
// incoming-heading slots.
func langtonsAntTable() *transition.Table {
	b := transition.NewBuilder()

	var whiteRow, blackRow transition.Row
	for h := heading.N; h <= heading.W; h++ {
		whiteRow[h] = transition.Rule{NextHeading: turnRight(h), NextColor: 'b'}
		blackRow[h] = transition.Rule{NextHeading: turnLeft(h), NextColor: 'w'}
	}
	b.Define('w', whiteRow)
	b.Define('b', blackRow)
	return b.Build()
}

func runSim(tbl *transition.Table, background byte, budget int, detect bool) (Result, error) {
	sim := simulator.New(tbl, background, budget, 1000)
	return Run(sim, detect, config.Default(), nil)
}

func TestEndToEndScenarios(t *testing.T) {
	Convey("Any DNA with a zero step budget lands at the origin", t, func() {
		res, err := runSim(straightLineTable(), 'w', 0, true)
		So(err, ShouldBeNil)
		So(res.FinalPosition.X, ShouldEqual, 0)
		So(res.FinalPosition.Y, ShouldEqual, 0)
	})

	Convey("A trivial straight-line DNA facing N moves R steps north", t, func() {
		res, err := runSim(straightLineTable(), 'w', 50, true)
		So(err, ShouldBeNil)
		So(res.FinalPosition.X, ShouldEqual, 0)
		So(res.FinalPosition.Y, ShouldEqual, 50)
	})

	Convey("Turning right every step with no recoloring closes a 4-cycle at the origin", t, func() {
		b := transition.NewBuilder()
		var row transition.Row
		for h := heading.N; h <= heading.W; h++ {
			row[h] = transition.Rule{NextHeading: turnRight(h), NextColor: 'w'}
		}
		b.Define('w', row)
		tbl := b.Build()

		res, err := runSim(tbl, 'w', 4, true)
		So(err, ShouldBeNil)
		So(res.FinalPosition.X, ShouldEqual, 0)
		So(res.FinalPosition.Y, ShouldEqual, 0)
		So(res.FastForwarded, ShouldBeFalse) // ring never reaches 2*L=8 snapshots in only 4 steps
	})

	Convey("Classic Langton's ant agrees between simple and loop-detecting mode", t, func() {
		Convey("at R=10000", func() {
			simple, err := runSim(langtonsAntTable(), 'w', 10000, false)
			So(err, ShouldBeNil)
			detected, err := runSim(langtonsAntTable(), 'w', 10000, true)
			So(err, ShouldBeNil)
			So(detected.FinalPosition, ShouldResemble, simple.FinalPosition)
		})

		Convey("at R=11000, past the step where the textbook highway emerges", func() {
			simple, err := runSim(langtonsAntTable(), 'w', 11000, false)
			So(err, ShouldBeNil)
			detected, err := runSim(langtonsAntTable(), 'w', 11000, true)
			So(err, ShouldBeNil)
			So(detected.FinalPosition, ShouldResemble, simple.FinalPosition)
		})
	})

	Convey("Revisiting a self-painted cell with no defined row fails with UnknownColor", t, func() {
		// dirs encodes an immediate reversal (incoming N -> S, incoming S ->
		// N), so the ant oscillates onto the same two cells. Each step
		// writes the current cell before moving, so the earliest a
		// previously self-painted, undefined color can be read back is the
		// *third* Step call: tick 1 paints the origin 'x' and departs
		// south, tick 2 paints (0,-1) 'x' and returns to the origin, tick 3
		// reads the origin's 'x' and has no row for it.
		b := transition.NewBuilder()
		var row transition.Row
		row[heading.N] = transition.Rule{NextHeading: heading.S, NextColor: 'x'}
		row[heading.S] = transition.Rule{NextHeading: heading.N, NextColor: 'x'}
		row[heading.E] = transition.Rule{NextHeading: heading.S, NextColor: 'x'}
		row[heading.W] = transition.Rule{NextHeading: heading.S, NextColor: 'x'}
		b.Define('w', row)
		tbl := b.Build()

		sim := simulator.New(tbl, 'w', 100, 1000)
		So(sim.Step(), ShouldBeNil)
		So(sim.Step(), ShouldBeNil)
		err := sim.Step()
		So(err, ShouldNotBeNil)
	})
}
