// Package ct implements the message-passing kernel for CT graphs: updates
// between conflict and detection factors, grounded on the same
// reparametrization discipline as messages/gm but with conflict-specific
// schedules (a shrinking per-detection weight toward the conflict, a
// least-two-elements clamp toward detections).
package ct

import (
	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
	"github.com/katalvlaran/dmpsolve/graph"
	"github.com/katalvlaran/dmpsolve/messages"
)

// localBound sums a conflict factor's own lower bound with every
// detection it links to, the local neighborhood a send call
// reparametrizes.
func localBound(g *graph.Graph, conflictIdx int) core.Cost {
	total := g.Conflict(conflictIdx).LowerBound()
	for _, e := range g.ConflictEdges(conflictIdx) {
		total += g.Detection(e.DetectionIdx).LowerBound()
	}
	return total
}

// SendMessagesToConflict absorbs each linked detection's on-cost into the
// conflict factor, weighted so that a detection's last remaining
// unprocessed conflict link receives its full remaining cost (weight 1)
// while earlier links take a proportionally smaller share. The weight for
// a detection at ordinal k among N total conflict links is 1/(N-k).
func SendMessagesToConflict(g *graph.Graph, conflictIdx int) error {
	before := localBound(g, conflictIdx)
	c := g.Conflict(conflictIdx)
	for _, e := range g.ConflictEdges(conflictIdx) {
		d := g.Detection(e.DetectionIdx)
		numConflicts := len(g.DetectionConflicts(e.DetectionIdx))
		weight := 1.0 / core.Cost(numConflicts-int(e.DetOrdinal))
		msg := d.MinDetection() * weight
		d.RepamDetection(-msg)
		c.Repam(e.Slot, msg)
	}
	return messages.CheckKernel("ct.sendToConflict", before, localBound(g, conflictIdx))
}

// SendMessagesToDetection absorbs the conflict's cost back out to its
// linked detections, clamping the shared baseline at the lesser of 0 and
// the mean of the two smallest slot costs so the conflict never donates
// more than it can recover from the "all off" alternative.
func SendMessagesToDetection(g *graph.Graph, conflictIdx int) error {
	before := localBound(g, conflictIdx)
	c := g.Conflict(conflictIdx)
	it1, it2 := c.LeastTwo()
	m := 0.5 * (it1 + it2)
	if m > 0 {
		m = 0
	}
	for _, e := range g.ConflictEdges(conflictIdx) {
		d := g.Detection(e.DetectionIdx)
		msg := c.Get(e.Slot) - m
		c.Repam(e.Slot, -msg)
		d.RepamDetection(msg)
	}
	return messages.CheckKernel("ct.sendToDetection", before, localBound(g, conflictIdx))
}

// CheckPrimalConsistencySlot reports whether one detection edge of a
// conflict agrees with the conflict's chosen slot: the detection must be
// on exactly when its slot is the conflict's primal choice.
func CheckPrimalConsistencySlot(g *graph.Graph, conflictIdx int, slot core.Index) core.Consistency {
	c := g.Conflict(conflictIdx)
	edges := g.ConflictEdges(conflictIdx)
	d := g.Detection(edges[slot].DetectionIdx)

	if !c.Primal().IsSet() || !d.Primal().IsSet() {
		return core.Unknown
	}
	if slot == c.Primal() {
		if !d.IsOn() {
			return core.Inconsistent
		}
		return core.Satisfied
	}
	if !d.IsOff() {
		return core.Inconsistent
	}
	return core.Satisfied
}

// CheckPrimalConsistency folds CheckPrimalConsistencySlot over every slot
// of a conflict.
func CheckPrimalConsistency(g *graph.Graph, conflictIdx int) core.Consistency {
	edges := g.ConflictEdges(conflictIdx)
	results := make([]core.Consistency, len(edges))
	for i := range edges {
		results[i] = CheckPrimalConsistencySlot(g, conflictIdx, core.Index(i))
	}
	return core.MergeAll(results...)
}

// PropagatePrimalToConflict sets the conflict's chosen slot to whichever
// linked detection is on, or to AllOffSlot if every detection is off.
func PropagatePrimalToConflict(g *graph.Graph, conflictIdx int) {
	c := g.Conflict(conflictIdx)
	allOff := true
	for i, e := range g.ConflictEdges(conflictIdx) {
		d := g.Detection(e.DetectionIdx)
		if d.IsOn() {
			c.SetPrimal(core.Index(i))
		}
		if !d.IsOff() {
			allOff = false
		}
	}
	if allOff {
		c.SetPrimal(c.AllOffSlot())
	}
}

// PropagatePrimalToDetections sets every linked detection's primal to off
// unless its slot matches the conflict's chosen slot, leaving that one
// detection's own primal untouched (it is expected to already be on).
func PropagatePrimalToDetections(g *graph.Graph, conflictIdx int) {
	c := g.Conflict(conflictIdx)
	if !c.Primal().IsSet() {
		return
	}
	for i, e := range g.ConflictEdges(conflictIdx) {
		if core.Index(i) == c.Primal() {
			continue
		}
		g.Detection(e.DetectionIdx).SetPrimal(factor.Off)
	}
}
