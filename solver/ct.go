package solver

import (
	"context"
	"math"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	ctmsg "github.com/katalvlaran/dmpsolve/messages/ct"
)

// CTSolver runs alternating conflict<->detection message passing over a
// finalized CT graph's conflict factors.
type CTSolver struct {
	common
	conflicts []int
}

// NewCTSolver returns a solver over every conflict factor in g.
func NewCTSolver(g *graph.Graph, opts ...Option) *CTSolver {
	o := resolveOptions(opts...)
	conflicts := make([]int, g.NumConflicts())
	for i := range conflicts {
		conflicts[i] = i
	}
	s := &CTSolver{common: newCommon(g), conflicts: conflicts}
	s.verbose = o.Verbose
	return s
}

// LowerBound returns the sum of every detection's and conflict factor's
// own LowerBound.
func (s *CTSolver) LowerBound() core.Cost {
	var total core.Cost
	for i := 0; i < s.g.NumDetections(); i++ {
		total += s.g.Detection(i).LowerBound()
	}
	for _, c := range s.conflicts {
		total += s.g.Conflict(c).LowerBound()
	}
	return total
}

// UpperBound returns the total primal cost if RoundPrimal has been called,
// or +∞ otherwise.
func (s *CTSolver) UpperBound() core.Cost {
	if s.state != PrimalRounded {
		return core.Infinity
	}
	var total core.Cost
	for i := 0; i < s.g.NumDetections(); i++ {
		total += s.g.Detection(i).EvaluatePrimal()
	}
	for _, c := range s.conflicts {
		total += s.g.Conflict(c).EvaluatePrimal()
	}
	return total
}

// Run performs up to maxIterations rounds of (send to conflict, send to
// detection) over every conflict factor, stopping early on context
// cancellation or bound convergence.
func (s *CTSolver) Run(ctx context.Context, maxIterations int) error {
	if maxIterations < 1 {
		return usagef("maxIterations must be >= 1, got %d", maxIterations)
	}
	prevBound := math.Inf(-1)
	for iter := 0; iter < maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var sweepErr error
		s.timeIt(func() {
			for _, c := range s.conflicts {
				if sweepErr = ctmsg.SendMessagesToConflict(s.g, c); sweepErr != nil {
					return
				}
			}
			for _, c := range s.conflicts {
				if sweepErr = ctmsg.SendMessagesToDetection(s.g, c); sweepErr != nil {
					return
				}
			}
		})
		if sweepErr != nil {
			return sweepErr
		}
		bound := s.LowerBound()
		s.logIteration(iter, bound)
		if bound < prevBound-core.Epsilon {
			return core.CheckNonDecreasing("solver/ct: iteration", prevBound, bound)
		}
		if bound <= prevBound+core.Epsilon {
			break
		}
		prevBound = bound
	}
	s.state = Iterating
	return nil
}

// RoundPrimal rounds every detection's on/off state, then derives each
// conflict factor's chosen slot and re-propagates it back to resolve any
// detections that now conflict with each other. If a prior call already
// rounded a primal, the new one only replaces it when it is at least as
// good.
func (s *CTSolver) RoundPrimal() {
	s.roundKeepingBest(func() {
		for i := 0; i < s.g.NumDetections(); i++ {
			s.g.Detection(i).RoundPrimal()
		}
		for _, c := range s.conflicts {
			ctmsg.PropagatePrimalToConflict(s.g, c)
		}
		for _, c := range s.conflicts {
			ctmsg.PropagatePrimalToDetections(s.g, c)
		}
	}, s.UpperBound)
}

// ResetPrimal clears every detection's and conflict factor's rounded
// primal.
func (s *CTSolver) ResetPrimal() {
	for i := 0; i < s.g.NumDetections(); i++ {
		s.g.Detection(i).ResetPrimal()
	}
	for _, c := range s.conflicts {
		s.g.Conflict(c).ResetPrimal()
	}
	if s.state == PrimalRounded {
		s.state = Iterating
	}
}

// State reports the solver's current lifecycle state.
func (s *CTSolver) State() State { return s.state }
