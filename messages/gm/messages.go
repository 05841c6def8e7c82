// Package gm implements the message-passing kernel for GM graphs: dual
// block-coordinate updates between unary and pairwise factors that shift
// cost mass across a shared edge without changing the graph's total
// energy, plus TRW-S style rounding and primal-consistency checks.
//
// Every update operates on one unary factor's adjacency. Which edge list a
// sweep touches is keyed off core.Direction: a Direction-d sweep receives
// messages from the opposite-direction edges (already visited this pass)
// and sends to the Direction-d edges (not yet visited), mirroring a single
// forward or backward TRW-S pass over a chain-ordered sequence of unaries.
package gm

import (
	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	"github.com/katalvlaran/dmpsolve/messages"
)

// localBound sums unaryIdx's own lower bound with every pairwise factor in
// edges, the local neighborhood a Receive or Send call reparametrizes.
func localBound(g *graph.Graph, unaryIdx int, edges []int) core.Cost {
	total := g.Unary(unaryIdx).LowerBound()
	for _, pwIdx := range edges {
		total += g.Pairwise(pwIdx).LowerBound()
	}
	return total
}

// receiveEdges returns, for a given sweep direction, the edge list a receive
// pass should pull from (the opposite side) together with the factor axis
// that list corresponds to on each pairwise factor (always this unary's
// own side of that edge).
func receiveEdges(g *graph.Graph, unaryIdx int, dir core.Direction) ([]int, core.Direction) {
	if dir == core.Forward {
		return g.BackwardEdges(unaryIdx), core.Backward
	}
	return g.ForwardEdges(unaryIdx), core.Forward
}

func sendEdges(g *graph.Graph, unaryIdx int, dir core.Direction) ([]int, core.Direction) {
	if dir == core.Forward {
		return g.ForwardEdges(unaryIdx), core.Forward
	}
	return g.BackwardEdges(unaryIdx), core.Backward
}

// Receive absorbs min-marginals from the already-visited side of unaryIdx's
// adjacency (per dir) into the unary factor, canceling the same amount on
// the pairwise factor's matching axis. Total energy is unchanged.
func Receive(g *graph.Graph, unaryIdx int, dir core.Direction) error {
	edges, axis := receiveEdges(g, unaryIdx, dir)
	u := g.Unary(unaryIdx)
	before := localBound(g, unaryIdx, edges)
	for _, pwIdx := range edges {
		pw := g.Pairwise(pwIdx)
		for l := 0; l < u.Size(); l++ {
			idx := core.Index(l)
			msg := pw.MinMarginal(axis, idx)
			pw.Repam(axis, idx, -msg)
			u.Repam(idx, msg)
		}
	}
	return messages.CheckKernel("gm.receive", before, localBound(g, unaryIdx, edges))
}

// Send pushes unaryIdx's own cost out onto the not-yet-visited side of its
// adjacency (per dir), split across that side's edges using a denominator
// that starts at the larger of the unary's forward/backward degree and
// shrinks by one per edge processed — so a unary with fewer edges in the
// sweep direction than in the other retains some of its own cost rather
// than distributing all of it on this pass.
func Send(g *graph.Graph, unaryIdx int, dir core.Direction) error {
	edges, axis := sendEdges(g, unaryIdx, dir)
	u := g.Unary(unaryIdx)
	before := localBound(g, unaryIdx, edges)
	split := len(g.ForwardEdges(unaryIdx))
	if b := len(g.BackwardEdges(unaryIdx)); b > split {
		split = b
	}
	for _, pwIdx := range edges {
		pw := g.Pairwise(pwIdx)
		for l := 0; l < u.Size(); l++ {
			idx := core.Index(l)
			msg := u.Get(idx) / core.Cost(split)
			u.Repam(idx, -msg)
			pw.Repam(axis, idx, msg)
		}
		split--
	}
	return messages.CheckKernel("gm.send", before, localBound(g, unaryIdx, edges))
}
