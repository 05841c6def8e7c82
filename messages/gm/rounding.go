package gm

import (
	"math"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
)

// RoundPrimal picks unaryIdx's label by minimizing its own cost plus the
// pairwise cost against whichever neighbors (per dir, the already-rounded
// side) have already chosen a label, breaking ties toward the lowest
// label index. It does not write the chosen label back into those
// pairwise factors; call PropagatePrimal afterward for that.
func RoundPrimal(g *graph.Graph, unaryIdx int, dir core.Direction) {
	edges, axis := receiveEdges(g, unaryIdx, dir)
	u := g.Unary(unaryIdx)

	best := core.Index(0)
	bestValue := math.Inf(1)
	for l := 0; l < u.Size(); l++ {
		idx := core.Index(l)
		value := u.Get(idx)
		for _, pwIdx := range edges {
			pw := g.Pairwise(pwIdx)
			p0, p1 := pw.Primal()
			var neighbor core.Index
			if axis == core.Forward {
				neighbor = p1
			} else {
				neighbor = p0
			}
			if !neighbor.IsSet() {
				continue
			}
			if axis == core.Forward {
				value += pw.Get(idx, neighbor)
			} else {
				value += pw.Get(neighbor, idx)
			}
		}
		if value < bestValue {
			bestValue = value
			best = idx
		}
	}
	u.SetPrimal(best)
}

// PropagatePrimal writes unaryIdx's chosen label into the matching axis of
// every pairwise factor it touches.
func PropagatePrimal(g *graph.Graph, unaryIdx int) {
	u := g.Unary(unaryIdx)
	label := u.Primal()
	for _, pwIdx := range g.ForwardEdges(unaryIdx) {
		g.Pairwise(pwIdx).SetPrimal0(label)
	}
	for _, pwIdx := range g.BackwardEdges(unaryIdx) {
		g.Pairwise(pwIdx).SetPrimal1(label)
	}
}

// CheckUnaryConsistency reports whether unaryIdx's chosen label agrees with
// the primal side of every pairwise factor it touches.
func CheckUnaryConsistency(g *graph.Graph, unaryIdx int) core.Consistency {
	u := g.Unary(unaryIdx)
	if !u.Primal().IsSet() {
		return core.Unknown
	}
	result := core.Satisfied
	for _, pwIdx := range g.ForwardEdges(unaryIdx) {
		l0, _ := g.Pairwise(pwIdx).Primal()
		result = core.Merge(result, agreement(l0, u.Primal()))
	}
	for _, pwIdx := range g.BackwardEdges(unaryIdx) {
		_, l1 := g.Pairwise(pwIdx).Primal()
		result = core.Merge(result, agreement(l1, u.Primal()))
	}
	return result
}

// CheckPairwiseConsistency reports whether a pairwise factor's chosen pair
// agrees with both of its unaries' chosen labels.
func CheckPairwiseConsistency(g *graph.Graph, pairwiseIdx int) core.Consistency {
	pw := g.Pairwise(pairwiseIdx)
	l0, l1 := pw.Primal()
	if !l0.IsSet() || !l1.IsSet() {
		return core.Unknown
	}
	unary0, unary1 := g.PairwiseEndpoints(pairwiseIdx)
	result := agreement(g.Unary(unary0).Primal(), l0)
	result = core.Merge(result, agreement(g.Unary(unary1).Primal(), l1))
	return result
}

func agreement(have, want core.Index) core.Consistency {
	if !have.IsSet() {
		return core.Unknown
	}
	if have != want {
		return core.Inconsistent
	}
	return core.Satisfied
}
