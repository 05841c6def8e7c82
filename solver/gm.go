package solver

import (
	"context"
	"math"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	gmmsg "github.com/katalvlaran/dmpsolve/messages/gm"
)

// GMSolver runs TRW-S style forward/backward sweeps over a finalized GM
// graph's unaries, in the given order (a BFS traversal of the pairwise
// adjacency by default — see NewGMSolver — so pairwise edges' endpoints
// stay close together in the sweep regardless of topology).
type GMSolver struct {
	common
	order []int
}

// NewGMSolver returns a solver over g's unaries, swept in order (or a
// breadth-first traversal order over g's pairwise adjacency if order is
// nil — see graph.Graph.TraversalOrder).
func NewGMSolver(g *graph.Graph, order []int, opts ...Option) *GMSolver {
	o := resolveOptions(opts...)
	if order == nil {
		order = g.TraversalOrder()
	}
	s := &GMSolver{common: newCommon(g), order: order}
	s.verbose = o.Verbose
	return s
}

// LowerBound returns the sum of every unary's and pairwise factor's own
// LowerBound.
func (s *GMSolver) LowerBound() core.Cost {
	var total core.Cost
	for i := 0; i < s.g.NumUnaries(); i++ {
		total += s.g.Unary(i).LowerBound()
	}
	for i := 0; i < s.g.NumPairwise(); i++ {
		total += s.g.Pairwise(i).LowerBound()
	}
	return total
}

// UpperBound returns the total primal cost if RoundPrimal has been called,
// or +∞ otherwise.
func (s *GMSolver) UpperBound() core.Cost {
	if s.state != PrimalRounded {
		return core.Infinity
	}
	var total core.Cost
	for i := 0; i < s.g.NumUnaries(); i++ {
		total += s.g.Unary(i).EvaluatePrimal()
	}
	for i := 0; i < s.g.NumPairwise(); i++ {
		total += s.g.Pairwise(i).EvaluatePrimal()
	}
	return total
}

func (s *GMSolver) sweep(dir core.Direction) error {
	order := s.order
	if dir == core.Backward {
		order = reversed(order)
	}
	for _, u := range order {
		if err := gmmsg.Receive(s.g, u, dir); err != nil {
			return err
		}
		if err := gmmsg.Send(s.g, u, dir); err != nil {
			return err
		}
	}
	return nil
}

// Run performs up to maxIterations forward+backward sweep pairs, stopping
// early if ctx is canceled or the lower bound stops improving by more than
// core.Epsilon.
func (s *GMSolver) Run(ctx context.Context, maxIterations int) error {
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
			if sweepErr = s.sweep(core.Forward); sweepErr != nil {
				return
			}
			sweepErr = s.sweep(core.Backward)
		})
		if sweepErr != nil {
			return sweepErr
		}
		bound := s.LowerBound()
		s.logIteration(iter, bound)
		if bound < prevBound-core.Epsilon {
			return core.CheckNonDecreasing("solver/gm: iteration", prevBound, bound)
		}
		if bound <= prevBound+core.Epsilon {
			break
		}
		prevBound = bound
	}
	s.state = Iterating
	return nil
}

// RoundPrimal rounds every unary's label in sweep order, propagating each
// one's choice into its pairwise factors before rounding the next. If a
// prior call already rounded a primal, the new one only replaces it when
// it is at least as good.
func (s *GMSolver) RoundPrimal() {
	s.roundKeepingBest(func() {
		for _, u := range s.order {
			gmmsg.RoundPrimal(s.g, u, core.Forward)
			gmmsg.PropagatePrimal(s.g, u)
		}
	}, s.UpperBound)
}

// ResetPrimal clears every unary's and pairwise factor's rounded primal.
func (s *GMSolver) ResetPrimal() {
	for i := 0; i < s.g.NumUnaries(); i++ {
		s.g.Unary(i).ResetPrimal()
	}
	for i := 0; i < s.g.NumPairwise(); i++ {
		s.g.Pairwise(i).ResetPrimal()
	}
	if s.state == PrimalRounded {
		s.state = Iterating
	}
}

// State reports the solver's current lifecycle state.
func (s *GMSolver) State() State { return s.state }

func reversed(xs []int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
