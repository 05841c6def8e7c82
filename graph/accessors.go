package graph

import (
	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
)

// NumUnaries returns the number of unary factors in the graph.
func (g *Graph) NumUnaries() int { return len(g.unaries) }

// Unary returns the unary factor at idx.
func (g *Graph) Unary(idx int) *factor.Unary { return g.unaries[idx].fac }

// NumPairwise returns the number of pairwise factors in the graph.
func (g *Graph) NumPairwise() int { return len(g.pairwise) }

// Pairwise returns the pairwise factor at idx.
func (g *Graph) Pairwise(idx int) *factor.Pairwise { return g.pairwise[idx].fac }

// PairwiseEndpoints returns the (unary0, unary1) indices a pairwise factor
// was linked to, or (-1, -1) if it has not been linked yet.
func (g *Graph) PairwiseEndpoints(idx int) (int, int) {
	pw := g.pairwise[idx]
	return pw.unary0, pw.unary1
}

// ForwardEdges returns the pairwise indices where unaryIdx is the left (0)
// endpoint.
func (g *Graph) ForwardEdges(unaryIdx int) []int { return g.unaries[unaryIdx].forward }

// BackwardEdges returns the pairwise indices where unaryIdx is the right
// (1) endpoint.
func (g *Graph) BackwardEdges(unaryIdx int) []int { return g.unaries[unaryIdx].backward }

// Edges returns ForwardEdges or BackwardEdges depending on dir.
func (g *Graph) Edges(unaryIdx int, dir core.Direction) []int {
	if dir == core.Forward {
		return g.ForwardEdges(unaryIdx)
	}
	return g.BackwardEdges(unaryIdx)
}

// UnaryUniquenessLink reports the uniqueness factor and slot a unary's
// label is linked to, if any.
func (g *Graph) UnaryUniquenessLink(unaryIdx int, label core.Index) (uniquenessIdx int, slot core.Index, ok bool) {
	ref := g.unaries[unaryIdx].uniquenessLinks[label]
	return ref.uniqueness, ref.slot, ref.linked
}

// NumUniqueness returns the number of uniqueness factors in the graph.
func (g *Graph) NumUniqueness() int { return len(g.uniqueness) }

// Uniqueness returns the uniqueness factor at idx.
func (g *Graph) Uniqueness(idx int) *factor.Uniqueness { return g.uniqueness[idx].fac }

// UniquenessEdges returns the (unary, label) back-references for a
// uniqueness factor, indexed by slot. An edge with UnaryIdx == -1 means
// that slot has not been linked.
func (g *Graph) UniquenessEdges(idx int) []UniquenessEdge {
	edges := g.uniqueness[idx].edges
	out := make([]UniquenessEdge, len(edges))
	for i, e := range edges {
		if !e.linked {
			out[i] = UniquenessEdge{UnaryIdx: unlinked, Label: core.Unset}
			continue
		}
		out[i] = UniquenessEdge{UnaryIdx: e.unary, Label: e.label}
	}
	return out
}

// NumConflicts returns the number of conflict factors in the graph.
func (g *Graph) NumConflicts() int { return len(g.conflicts) }

// Conflict returns the conflict factor at idx.
func (g *Graph) Conflict(idx int) *factor.Conflict { return g.conflicts[idx].fac }

// ConflictEdges returns the detection back-references for a conflict
// factor, indexed by slot.
func (g *Graph) ConflictEdges(idx int) []ConflictEdge {
	edges := g.conflicts[idx].edges
	out := make([]ConflictEdge, len(edges))
	for i, e := range edges {
		if !e.linked {
			out[i] = ConflictEdge{DetectionIdx: unlinked, Slot: core.Unset}
			continue
		}
		out[i] = ConflictEdge{DetectionIdx: e.detection, Slot: e.slot, DetOrdinal: e.detOrdinal}
	}
	return out
}

// NumDetections returns the number of detection factors in the graph.
func (g *Graph) NumDetections() int { return len(g.detections) }

// Detection returns the detection factor at idx.
func (g *Graph) Detection(idx int) *factor.Detection { return g.detections[idx].fac }

// DetectionConflicts returns every conflict a detection participates in,
// in link order.
func (g *Graph) DetectionConflicts(idx int) []DetectionConflictEdge {
	refs := g.detections[idx].conflicts
	out := make([]DetectionConflictEdge, len(refs))
	for i, r := range refs {
		out[i] = DetectionConflictEdge{ConflictIdx: r.conflict, Slot: r.slot}
	}
	return out
}
