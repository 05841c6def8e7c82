package solver

import (
	"context"
	"math"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	qapmsg "github.com/katalvlaran/dmpsolve/messages/qap"
)

// QAPSolver runs alternating unary<->uniqueness message passing over a
// finalized QAP graph's uniqueness factors.
type QAPSolver struct {
	common
	uniquenesses []int
}

// NewQAPSolver returns a solver over every uniqueness factor in g.
func NewQAPSolver(g *graph.Graph, opts ...Option) *QAPSolver {
	o := resolveOptions(opts...)
	uniquenesses := make([]int, g.NumUniqueness())
	for i := range uniquenesses {
		uniquenesses[i] = i
	}
	s := &QAPSolver{common: newCommon(g), uniquenesses: uniquenesses}
	s.verbose = o.Verbose
	return s
}

// LowerBound returns the sum of every unary's and uniqueness factor's own
// LowerBound.
func (s *QAPSolver) LowerBound() core.Cost {
	var total core.Cost
	for i := 0; i < s.g.NumUnaries(); i++ {
		total += s.g.Unary(i).LowerBound()
	}
	for _, uq := range s.uniquenesses {
		total += s.g.Uniqueness(uq).LowerBound()
	}
	return total
}

// UpperBound returns the total primal cost if RoundPrimal has been called,
// or +∞ otherwise.
func (s *QAPSolver) UpperBound() core.Cost {
	if s.state != PrimalRounded {
		return core.Infinity
	}
	var total core.Cost
	for i := 0; i < s.g.NumUnaries(); i++ {
		total += s.g.Unary(i).EvaluatePrimal()
	}
	for _, uq := range s.uniquenesses {
		total += s.g.Uniqueness(uq).EvaluatePrimal()
	}
	return total
}

// Run performs up to maxIterations rounds of (send to uniqueness, send to
// unary) over every uniqueness factor, stopping early on context
// cancellation or bound convergence.
func (s *QAPSolver) Run(ctx context.Context, maxIterations int) error {
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
			for _, uq := range s.uniquenesses {
				if sweepErr = qapmsg.SendMessagesToUniqueness(s.g, uq); sweepErr != nil {
					return
				}
			}
			for _, uq := range s.uniquenesses {
				if sweepErr = qapmsg.SendMessagesToUnary(s.g, uq); sweepErr != nil {
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
			return core.CheckNonDecreasing("solver/qap: iteration", prevBound, bound)
		}
		if bound <= prevBound+core.Epsilon {
			break
		}
		prevBound = bound
	}
	s.state = Iterating
	return nil
}

// RoundPrimal rounds every unary's label, then derives each uniqueness
// factor's primal slot from the unaries that claim it. If a prior call
// already rounded a primal, the new one only replaces it when it is at
// least as good.
func (s *QAPSolver) RoundPrimal() {
	s.roundKeepingBest(func() {
		for i := 0; i < s.g.NumUnaries(); i++ {
			s.g.Unary(i).RoundPrimal()
		}
		for _, uq := range s.uniquenesses {
			qapmsg.PropagatePrimalToUniqueness(s.g, uq)
		}
	}, s.UpperBound)
}

// ResetPrimal clears every unary's and uniqueness factor's rounded primal.
func (s *QAPSolver) ResetPrimal() {
	for i := 0; i < s.g.NumUnaries(); i++ {
		s.g.Unary(i).ResetPrimal()
	}
	for _, uq := range s.uniquenesses {
		s.g.Uniqueness(uq).ResetPrimal()
	}
	if s.state == PrimalRounded {
		s.state = Iterating
	}
}

// State reports the solver's current lifecycle state.
func (s *QAPSolver) State() State { return s.state }
