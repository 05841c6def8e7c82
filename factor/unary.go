// Package factor implements the dense cost-table primitives of the solver:
// unary, pairwise, uniqueness, conflict, and detection factors. Each owns a
// contiguous cost slice allocated once at construction (never relocated, per
// the source's resource model) and a primal label slot, and exposes the
// small vocabulary of operations every message kernel composes:
// LowerBound, EvaluatePrimal, the Repam family, MinMarginal, RoundPrimal,
// and ResetPrimal.
package factor

import (
	"math"

	"github.com/katalvlaran/dmpsolve/core"
)

// Unary is a cost-per-label factor over L labels: spec.md's "unary factor".
type Unary struct {
	costs  []core.Cost
	primal core.Index
}

// NewUnary allocates an L-label Unary with every cell set to the NaN
// "uninitialized" sentinel. Finalize (see package graph) rejects a graph
// containing a factor that still has an unset cell.
func NewUnary(numLabels int) *Unary {
	costs := make([]core.Cost, numLabels)
	for i := range costs {
		costs[i] = core.UnsetCost
	}
	return &Unary{costs: costs, primal: core.Unset}
}

// Size returns the number of labels.
func (u *Unary) Size() int { return len(u.costs) }

// assertLabel panics on an out-of-range label, matching the source's
// assert_index contract. The panic value is an error wrapping
// core.ErrUsage; no caller recovers it into a returned error.
func (u *Unary) assertLabel(l core.Index) {
	if l < 0 || int(l) >= len(u.costs) {
		panic(newUsageError(errLabelOutOfRange))
	}
}

// Set writes the cost of label l.
func (u *Unary) Set(l core.Index, c core.Cost) {
	u.assertLabel(l)
	u.costs[l] = c
}

// Get reads the cost of label l.
func (u *Unary) Get(l core.Index) core.Cost {
	u.assertLabel(l)
	return u.costs[l]
}

// Repam adds msg to the cost of label l (reparametrization primitive). The
// caller is responsible for applying the matching inverse amount to the
// factor on the other end of the message (see messages/gm).
func (u *Unary) Repam(l core.Index, msg core.Cost) {
	u.assertLabel(l)
	u.costs[l] += msg
}

// LowerBound returns the minimum cost over all labels.
func (u *Unary) LowerBound() core.Cost {
	best := math.Inf(1)
	for _, c := range u.costs {
		if c < best {
			best = c
		}
	}
	return best
}

// Prepared reports whether every cell has been written (no NaN remains).
func (u *Unary) Prepared() bool {
	for _, c := range u.costs {
		if core.IsUnset(c) {
			return false
		}
	}
	return true
}

// Primal returns the currently chosen label, or core.Unset.
func (u *Unary) Primal() core.Index { return u.primal }

// SetPrimal forces the chosen label (used by primal-propagation and
// primal-storage restore).
func (u *Unary) SetPrimal(l core.Index) { u.primal = l }

// ResetPrimal clears the chosen label.
func (u *Unary) ResetPrimal() { u.primal = core.Unset }

// EvaluatePrimal returns the cost of the chosen label, or +∞ if unset.
func (u *Unary) EvaluatePrimal() core.Cost {
	if !u.primal.IsSet() {
		return core.Infinity
	}
	return u.costs[u.primal]
}

// RoundPrimal sets the primal to the argmin label, breaking ties toward the
// lowest index.
func (u *Unary) RoundPrimal() {
	best := core.Index(0)
	bestCost := u.costs[0]
	for i := 1; i < len(u.costs); i++ {
		if u.costs[i] < bestCost {
			bestCost = u.costs[i]
			best = core.Index(i)
		}
	}
	u.primal = best
}

// Clone returns a deep copy of u, including its current primal.
func (u *Unary) Clone() *Unary {
	costs := make([]core.Cost, len(u.costs))
	copy(costs, u.costs)
	return &Unary{costs: costs, primal: u.primal}
}
