// Package solver drives the message-passing kernels in messages/gm,
// messages/qap, and messages/ct to convergence, owning the iteration
// loop, the lower/upper bound bookkeeping, and the Finalized →
// Iterating → PrimalRounded lifecycle state each concrete solver tracks. There is deliberately no generic Run shared by all
// three: each problem class sweeps its own factor kinds in its own
// order, and Go's interface model has no default method to fall back
// to — a concrete solver either implements Run or it isn't a Solver.
package solver

import (
	"context"
	"log"
	"time"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	"github.com/katalvlaran/dmpsolve/primal"
)

// State tracks a solver's lifecycle.
type State int

const (
	// Building names the underlying graph's pre-Finalize state. No solver
	// reports it: constructors start every solver in Finalized and do not
	// check whether the graph was finalized.
	Building State = iota
	// Finalized means the graph is ready but Run has not been called yet.
	Finalized
	// Iterating means at least one Run call has completed.
	Iterating
	// PrimalRounded means RoundPrimal has produced a complete solution.
	PrimalRounded
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Finalized:
		return "finalized"
	case Iterating:
		return "iterating"
	case PrimalRounded:
		return "primal-rounded"
	default:
		return "unknown"
	}
}

// Solver is the common surface every concrete solver (GMSolver, QAPSolver,
// CTSolver) implements. It covers the dual message-passing loop and primal
// rounding only; exact ILP solving and the CombiLP subproblem driver are
// separate, optional escape hatches layered on top of a Solver's graph (see
// adapters/mip and adapters/combilp) rather than methods on this interface —
// a caller reaches for them explicitly instead of every Solver carrying
// stubs for features most graphs never need.
type Solver interface {
	// LowerBound returns the current dual bound: the sum of every
	// factor's own LowerBound.
	LowerBound() core.Cost
	// UpperBound returns EvaluatePrimal if a complete primal solution has
	// been rounded, or +∞ otherwise.
	UpperBound() core.Cost
	// ResetPrimal clears every factor's rounded primal; a PrimalRounded
	// solver moves to Iterating, any other state is kept.
	ResetPrimal()
	// Run performs up to maxIterations sweeps, stopping early if ctx is
	// canceled or the bound stops improving by more than core.Epsilon.
	Run(ctx context.Context, maxIterations int) error
	// RoundPrimal rounds a complete primal solution from the current dual
	// state.
	RoundPrimal()
	// State reports the solver's current lifecycle state.
	State() State
}

// common holds the bookkeeping shared by every concrete solver: the graph,
// verbosity, elapsed-time accumulation, and lifecycle state.
type common struct {
	g       *graph.Graph
	storage *primal.Storage
	verbose bool
	state   State
	elapsed time.Duration
}

func newCommon(g *graph.Graph) common {
	return common{g: g, storage: primal.NewStorage(g), state: Finalized}
}

func (c *common) logIteration(iteration int, bound core.Cost) {
	if c.verbose {
		log.Printf("dmpsolve: iteration %d lower bound %.6f", iteration, bound)
	}
}

// Elapsed returns the cumulative wall-clock time spent in Run across all
// calls, measured with the monotonic clock.
func (c *common) Elapsed() time.Duration { return c.elapsed }

func (c *common) timeIt(f func()) {
	start := time.Now()
	f()
	c.elapsed += time.Since(start)
}

// roundKeepingBest runs round to produce a new rounded primal, but only
// keeps it over whatever was rounded before if upperBound reports it is no
// worse: a solver's RoundPrimal may be called again after further Run
// iterations, and a later, less-converged sweep order can round worse than
// an earlier one did, so the incumbent is snapshotted through storage
// before round runs and restored if the new attempt regressed.
func (c *common) roundKeepingBest(round func(), upperBound func() core.Cost) {
	hadIncumbent := c.state == PrimalRounded
	var before core.Cost
	if hadIncumbent {
		before = upperBound()
		c.storage.Save()
	}
	round()
	if hadIncumbent && upperBound() > before+core.Epsilon {
		_ = c.storage.Restore()
	}
	c.state = PrimalRounded
}
