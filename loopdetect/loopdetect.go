// Package loopdetect implements the online periodic-behavior detector:
// suffix-match, stationary-orbit test, highway test, and the find_loops
// search that combines them.
//
// Every snapshot is recorded after its step executes, so the ring's
// newest entry always reflects the heading, color, and position the
// step just produced; the detectors below are defined in terms of that
// "record after step" convention and StateRing.At's negative indexing
// from the newest entry.
package loopdetect

import "turmite/statering"

// DetectLoop returns true iff the L snapshots in the ring ending
// stepsBack positions before the newest are pairwise equal, in both
// heading and color, to the L snapshots that precede them. Position is
// not compared: highways have translated positions between successive
// copies of the motif.
func DetectLoop(ring *statering.StateRing, stepsBack, loopLen int) bool {
	for i := 0; i < loopLen; i++ {
		a := ring.At(-1 - stepsBack - i)
		b := ring.At(-1 - stepsBack - i - loopLen)
		if a.Heading != b.Heading || a.Color != b.Color {
			return false
		}
	}
	return true
}

// DetectStationary returns true iff the position stored loopLen steps
// back from the newest equals the position stored 2*loopLen steps back.
// Combined with a true DetectLoop, this proves a closed orbit: the ant
// revisits the same position in the same heading with the same cell
// colors it last saw, so the local rewrite is idempotent and the orbit
// repeats forever.
func DetectStationary(ring *statering.StateRing, loopLen int) bool {
	return ring.At(-loopLen).Position == ring.At(-2 * loopLen).Position
}

// DetectHighway returns true iff the ant has traced out a repeating
// motif that has escaped every previous excursion, proving an unbounded
// straight-line trajectory: an earlier occurrence of the same L-motif
// lying entirely inside a disc strictly smaller than the disc the
// latest motif lies outside of means the motif is translating
// monotonically outward, so the cells it now writes are virgin (color
// C0) and the next iteration behaves identically.
func DetectHighway(ring *statering.StateRing, loopLen int) bool {
	ringLen := ring.Len()

	latestMinRSq := minRadiusOverLastL(ring, loopLen)

	k := ringLen - loopLen - 1
	for k > 2*loopLen && DetectLoop(ring, ringLen-k, loopLen) {
		prevMaxRSq := ring.At(-(ringLen - k)).MaxRadiusSq
		if prevMaxRSq < latestMinRSq {
			return true
		}
		k -= loopLen
	}
	return false
}

// minRadiusOverLastL computes min(x²+y²) over the last loopLen snapshots
// (indices -1 .. -loopLen).
func minRadiusOverLastL(ring *statering.StateRing, loopLen int) int64 {
	min := ring.At(-1).Position.RadiusSq()
	for i := 2; i <= loopLen; i++ {
		r := ring.At(-i).Position.RadiusSq()
		if r < min {
			min = r
		}
	}
	return min
}

// FindLoops searches L = 1, 2, ..., floor(ring.Len()/2) in ascending
// order for the smallest period that is both a suffix-match and either a
// stationary orbit or a highway. found is false if no such L exists.
func FindLoops(ring *statering.StateRing) (loopLen int, found bool) {
	maxL := ring.Len() / 2
	for l := 1; l <= maxL; l++ {
		if DetectLoop(ring, 0, l) && (DetectStationary(ring, l) || DetectHighway(ring, l)) {
			return l, true
		}
	}
	return 0, false
}
