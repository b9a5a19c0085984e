package simulator

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"turmite/gridstore"
	"turmite/heading"
	"turmite/transition"
)

// straightLineRow never turns and never recolors: every incoming heading
// maps to itself, every color maps to itself.
func straightLineRow(color byte) transition.Row {
	var row transition.Row
	for h := heading.N; h <= heading.W; h++ {
		row[h] = transition.Rule{NextHeading: h, NextColor: color}
	}
	return row
}

// straightLineTable returns a DNA table that never turns and never
// recolors.
func straightLineTable(color byte) *transition.Table {
	b := transition.NewBuilder()
	b.Define(color, straightLineRow(color))
	return b.Build()
}

func TestSimulatorStep(t *testing.T) {
	Convey("Given a simulator whose DNA never turns and never recolors", t, func() {
		tbl := straightLineTable('w')
		sim := New(tbl, 'w', 50, 1000)

		Convey("After 50 steps heading N, it has moved straight to (0,50)", func() {
			for sim.StepBudget > 0 {
				err := sim.Step()
				So(err, ShouldBeNil)
			}
			So(sim.Position.X, ShouldEqual, 0)
			So(sim.Position.Y, ShouldEqual, 50)
		})

		Convey("The grid is unchanged: every visited cell still reads C0", func() {
			for i := 0; i < 10; i++ {
				So(sim.Step(), ShouldBeNil)
			}
			var seen int
			sim.Grid.Visit(func(p gridstore.Position, c byte) { seen++ })
			So(seen, ShouldEqual, 10)
			c, ok := sim.Grid.Get(sim.Position.Add(0, -1))
			So(ok, ShouldBeTrue)
			So(c, ShouldEqual, byte('w'))
		})
	})

	Convey("Given a simulator whose background color has no defined row", t, func() {
		b := transition.NewBuilder()
		b.Define('w', straightLineRow('w'))
		tbl := b.Build()
		sim := New(tbl, 'z', 100, 1000) // background 'z' is never Define'd

		Convey("The very first step fails with UnknownColor", func() {
			err := sim.Step()
			So(err, ShouldNotBeNil)
		})
	})
}
