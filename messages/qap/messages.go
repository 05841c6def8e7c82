// Package qap implements the message-passing kernel for QAP graphs:
// updates between a unary's per-label costs and the uniqueness factors
// those labels are linked to, enforcing that each uniqueness slot is
// claimed by at most one unary.
//
// Unlike messages/gm's pairwise edges, a uniqueness link is a singleton
// on the unary side: a given (unary, label) pair links to exactly one
// uniqueness slot, so the marginal cost of "choosing this label" from the
// unary's own perspective is simply its cost relative to the unary's own
// lower bound — there is no second axis to minimize over, the way a
// pairwise factor's other side provides one.
package qap

import (
	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	"github.com/katalvlaran/dmpsolve/messages"
)

// localBound sums a uniqueness factor's own lower bound with every unary
// it links to, the local neighborhood a send call reparametrizes.
func localBound(g *graph.Graph, uniquenessIdx int) core.Cost {
	total := g.Uniqueness(uniquenessIdx).LowerBound()
	for _, e := range g.UniquenessEdges(uniquenessIdx) {
		total += g.Unary(e.UnaryIdx).LowerBound()
	}
	return total
}

// SendMessagesToUniqueness absorbs each linked (unary, label) edge's cost,
// relative to that unary's own lower bound, into the uniqueness factor's
// matching slot.
func SendMessagesToUniqueness(g *graph.Graph, uniquenessIdx int) error {
	before := localBound(g, uniquenessIdx)
	u := g.Uniqueness(uniquenessIdx)
	for slot, e := range g.UniquenessEdges(uniquenessIdx) {
		un := g.Unary(e.UnaryIdx)
		msg := un.Get(e.Label) - un.LowerBound()
		un.Repam(e.Label, -msg)
		u.Repam(core.Index(slot), msg)
	}
	return messages.CheckKernel("qap.sendToUniqueness", before, localBound(g, uniquenessIdx))
}

// SendMessagesToUnary absorbs the uniqueness factor's cost, relative to its
// own lower bound, back out to each linked unary's label.
func SendMessagesToUnary(g *graph.Graph, uniquenessIdx int) error {
	before := localBound(g, uniquenessIdx)
	u := g.Uniqueness(uniquenessIdx)
	lb := u.LowerBound()
	for slot, e := range g.UniquenessEdges(uniquenessIdx) {
		un := g.Unary(e.UnaryIdx)
		msg := u.Get(core.Index(slot)) - lb
		u.Repam(core.Index(slot), -msg)
		un.Repam(e.Label, msg)
	}
	return messages.CheckKernel("qap.sendToUnary", before, localBound(g, uniquenessIdx))
}

// CheckPrimalConsistencySlot reports whether one uniqueness slot agrees
// with its linked unary's chosen label: the slot must be the uniqueness
// factor's primal exactly when the unary's chosen label is the one linked
// to that slot.
func CheckPrimalConsistencySlot(g *graph.Graph, uniquenessIdx int, slot core.Index) core.Consistency {
	u := g.Uniqueness(uniquenessIdx)
	e := g.UniquenessEdges(uniquenessIdx)[slot]
	un := g.Unary(e.UnaryIdx)

	if !u.Primal().IsSet() || !un.Primal().IsSet() {
		return core.Unknown
	}
	claimsSlot := un.Primal() == e.Label
	if slot == u.Primal() {
		if !claimsSlot {
			return core.Inconsistent
		}
		return core.Satisfied
	}
	if claimsSlot {
		return core.Inconsistent
	}
	return core.Satisfied
}

// CheckPrimalConsistency folds CheckPrimalConsistencySlot over every real
// slot of a uniqueness factor.
func CheckPrimalConsistency(g *graph.Graph, uniquenessIdx int) core.Consistency {
	edges := g.UniquenessEdges(uniquenessIdx)
	results := make([]core.Consistency, len(edges))
	for i := range edges {
		results[i] = CheckPrimalConsistencySlot(g, uniquenessIdx, core.Index(i))
	}
	return core.MergeAll(results...)
}

// PropagatePrimalToUniqueness sets the uniqueness factor's chosen slot to
// whichever linked unary has claimed it via its own primal label, or to
// NoneSlot if no linked unary currently claims any slot.
func PropagatePrimalToUniqueness(g *graph.Graph, uniquenessIdx int) {
	u := g.Uniqueness(uniquenessIdx)
	u.SetPrimal(u.NoneSlot())
	for slot, e := range g.UniquenessEdges(uniquenessIdx) {
		un := g.Unary(e.UnaryIdx)
		if un.Primal().IsSet() && un.Primal() == e.Label {
			u.SetPrimal(core.Index(slot))
			return
		}
	}
}
