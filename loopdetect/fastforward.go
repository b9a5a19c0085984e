package loopdetect

import (
	"turmite/gridstore"
	"turmite/statering"
)

// FastForward computes the ant's final position analytically given a
// detected period loopLen and the remaining step budget, without
// executing any further steps.
func FastForward(ring *statering.StateRing, loopLen int, stepBudget int, currentPos gridstore.Position) gridstore.Position {
	extra := stepBudget % loopLen
	full := (stepBudget - extra) / loopLen

	last := ring.At(-1)
	loopStart := ring.At(-1 - loopLen)
	deltaFull := last.Position.Sub(loopStart.Position)

	extraEnd := ring.At(-1 - loopLen + extra)
	deltaExtra := extraEnd.Position.Sub(loopStart.Position)

	return currentPos.Add(
		deltaFull.X*full+deltaExtra.X,
		deltaFull.Y*full+deltaExtra.Y,
	)
}
