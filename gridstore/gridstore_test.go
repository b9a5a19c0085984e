package gridstore

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGridStore(t *testing.T) {
	Convey("Given an empty GridStore", t, func() {
		g := New()

		Convey("A cell that was never written reports absent", func() {
			_, ok := g.Get(Position{X: 0, Y: 0})
			So(ok, ShouldBeFalse)
			So(g.Len(), ShouldEqual, 0)
		})

		Convey("Writing a cell makes it present and increments Len", func() {
			g.Set(Position{X: 3, Y: -4}, 'b')
			c, ok := g.Get(Position{X: 3, Y: -4})
			So(ok, ShouldBeTrue)
			So(c, ShouldEqual, byte('b'))
			So(g.Len(), ShouldEqual, 1)
		})

		Convey("Re-writing the same cell does not double-count Len", func() {
			g.Set(Position{X: 0, Y: 0}, 'b')
			g.Set(Position{X: 0, Y: 0}, 'w')
			So(g.Len(), ShouldEqual, 1)
			c, _ := g.Get(Position{X: 0, Y: 0})
			So(c, ShouldEqual, byte('w'))
		})

		Convey("Writing a color equal to C0 still marks the cell as defined (invariant 2)", func() {
			g.Set(Position{X: 5, Y: 5}, 'w')
			c, ok := g.Get(Position{X: 5, Y: 5})
			So(ok, ShouldBeTrue)
			So(c, ShouldEqual, byte('w'))
		})

		Convey("Cells spanning multiple chunks and negative coordinates all round-trip", func() {
			coords := []Position{
				{X: 0, Y: 0}, {X: 63, Y: 63}, {X: 64, Y: 64},
				{X: -1, Y: -1}, {X: -64, Y: -64}, {X: -65, Y: 200},
			}
			for _, p := range coords {
				g.Set(p, 'x')
			}
			for _, p := range coords {
				c, ok := g.Get(p)
				So(ok, ShouldBeTrue)
				So(c, ShouldEqual, byte('x'))
			}
			So(g.Len(), ShouldEqual, len(coords))
		})

		Convey("Bounds is false for an empty store and tight for a written one", func() {
			_, _, _, _, ok := g.Bounds()
			So(ok, ShouldBeFalse)

			g.Set(Position{X: -2, Y: 3}, 'a')
			g.Set(Position{X: 5, Y: -1}, 'b')
			minX, minY, maxX, maxY, ok := g.Bounds()
			So(ok, ShouldBeTrue)
			So(minX, ShouldEqual, -2)
			So(minY, ShouldEqual, -1)
			So(maxX, ShouldEqual, 5)
			So(maxY, ShouldEqual, 3)
		})
	})
}

func TestPositionArithmetic(t *testing.T) {
	Convey("Given two positions", t, func() {
		p := Position{X: 2, Y: -3}
		Convey("Add translates by (dx,dy)", func() {
			So(p.Add(1, 1), ShouldResemble, Position{X: 3, Y: -2})
		})
		Convey("Sub returns p - other", func() {
			other := Position{X: 1, Y: -1}
			So(p.Sub(other), ShouldResemble, Position{X: 1, Y: -2})
		})
		Convey("RadiusSq is x²+y²", func() {
			So(Position{X: 3, Y: 4}.RadiusSq(), ShouldEqual, int64(25))
		})
	})
}
