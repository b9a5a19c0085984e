// Package driver couples the Simulator and LoopDetector: it decides when
// to probe for loops, when to step, and when to stop.
package driver

import (
	"turmite/config"
	"turmite/loopdetect"
	"turmite/simulator"
)

// ProbeEvent describes one loop-detector invocation, for tests and
// diagnostics. It is never required for correct operation.
type ProbeEvent struct {
	AtBudget   int
	FoundLoop  bool
	LoopLength int
}

// TraceFunc is an optional callback invoked after every probe. It must
// return quickly; it exists purely for observability.
type TraceFunc func(ProbeEvent)

// Result is the outcome of running a turmite to budget exhaustion.
type Result struct {
	FinalPosition     struct{ X, Y int }
	FastForwarded     bool
	FastForwardedAt   int // step budget remaining at the moment of detection
	FastForwardedLoop int
	StepsExecuted     int
}

// Run executes sim to budget exhaustion. When detectLoops is false (the
// CLI's -s/--simple mode, or the image-output mode that implies it),
// every step runs naively and the loop detector is never consulted, so
// the result matches a reference naive simulator bit-for-bit. tuning
// supplies the probe schedule's starting interval and backoff factor.
func Run(sim *simulator.Simulator, detectLoops bool, tuning config.Tuning, trace TraceFunc) (Result, error) {
	var res Result

	if !detectLoops {
		for sim.StepBudget > 0 {
			if err := sim.Step(); err != nil {
				return res, err
			}
			res.StepsExecuted++
		}
		res.FinalPosition.X, res.FinalPosition.Y = sim.Position.X, sim.Position.Y
		return res, nil
	}

	probeAt := sim.StepBudget - 1
	interval := tuning.InitialProbeInterval

	for sim.StepBudget > 0 {
		if sim.StepBudget == probeAt {
			loopLen, found := loopdetect.FindLoops(sim.Ring)
			if trace != nil {
				trace(ProbeEvent{AtBudget: sim.StepBudget, FoundLoop: found, LoopLength: loopLen})
			}
			if found {
				newPos := loopdetect.FastForward(sim.Ring, loopLen, sim.StepBudget, sim.Position)
				sim.Position = newPos
				sim.StepBudget = 0
				res.FastForwarded = true
				res.FastForwardedAt = probeAt
				res.FastForwardedLoop = loopLen
				break
			}
			interval *= tuning.ProbeBackoffFactor
			probeAt = sim.StepBudget - int(interval)
		}

		if err := sim.Step(); err != nil {
			return res, err
		}
		res.StepsExecuted++
	}

	res.FinalPosition.X, res.FinalPosition.Y = sim.Position.X, sim.Position.Y
	return res, nil
}
