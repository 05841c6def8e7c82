package graph

import (
	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
)

const unlinked = -1

// Graph is an arena of factors of every kind plus the adjacency a solver
// needs to sweep them, for one ProblemClass. Construct with NewGraph, add
// factors and links while in the Building state, then call Finalize before
// handing the graph to a solver.
type Graph struct {
	class ProblemClass
	state buildState

	unaries     []unaryNode
	pairwise    []pairwiseNode
	uniqueness  []uniquenessNode
	conflicts   []conflictNode
	detections  []detectionNode
}

// NewGraph returns an empty graph for the given problem class.
func NewGraph(class ProblemClass) *Graph {
	return &Graph{class: class, state: building}
}

// Class reports the problem class this graph was built for.
func (g *Graph) Class() ProblemClass { return g.class }

// Finalized reports whether Finalize has already succeeded on this graph.
func (g *Graph) Finalized() bool { return g.state == finalized }

func (g *Graph) requireBuilding() error {
	if g.state == finalized {
		return usagef("%w", errAlreadyFinalized)
	}
	return nil
}

// AddUnary appends a new unary factor with numLabels labels and returns its
// index.
func (g *Graph) AddUnary(numLabels int) (int, error) {
	if err := g.requireBuilding(); err != nil {
		return 0, err
	}
	idx := len(g.unaries)
	g.unaries = append(g.unaries, unaryNode{
		fac:             factor.NewUnary(numLabels),
		uniquenessLinks: make([]uniquenessRef, numLabels),
	})
	return idx, nil
}

// AddPairwise appends a new pairwise factor sized for unary0's and unary1's
// label counts and returns its index. It is not yet connected to those
// unaries in the adjacency sense until AddPairwiseLink is called.
func (g *Graph) AddPairwise(numLabels0, numLabels1 int) (int, error) {
	if err := g.requireBuilding(); err != nil {
		return 0, err
	}
	idx := len(g.pairwise)
	g.pairwise = append(g.pairwise, pairwiseNode{
		fac:    factor.NewPairwise(numLabels0, numLabels1),
		unary0: unlinked,
		unary1: unlinked,
	})
	return idx, nil
}

// AddUniqueness appends a new uniqueness factor with the given number of
// real slots (plus the implicit "none" slot) and returns its index.
func (g *Graph) AddUniqueness(numSlots int) (int, error) {
	if err := g.requireBuilding(); err != nil {
		return 0, err
	}
	if g.class != QAP {
		return 0, structuralf("%w: uniqueness factors require a QAP graph, got %s", errWrongProblemClass, g.class)
	}
	idx := len(g.uniqueness)
	g.uniqueness = append(g.uniqueness, uniquenessNode{
		fac:   factor.NewUniqueness(numSlots),
		edges: make([]uniquenessEdge, numSlots),
	})
	return idx, nil
}

// AddConflict appends a new conflict factor with the given number of real
// slots (plus the implicit "all off" slot) and returns its index.
func (g *Graph) AddConflict(numSlots int) (int, error) {
	if err := g.requireBuilding(); err != nil {
		return 0, err
	}
	if g.class != CT {
		return 0, structuralf("%w: conflict factors require a CT graph, got %s", errWrongProblemClass, g.class)
	}
	idx := len(g.conflicts)
	g.conflicts = append(g.conflicts, conflictNode{
		fac:   factor.NewConflict(numSlots),
		edges: make([]conflictEdge, numSlots),
	})
	return idx, nil
}

// AddDetection appends a new detection factor and returns its index.
func (g *Graph) AddDetection() (int, error) {
	if err := g.requireBuilding(); err != nil {
		return 0, err
	}
	if g.class != CT {
		return 0, structuralf("%w: detection factors require a CT graph, got %s", errWrongProblemClass, g.class)
	}
	idx := len(g.detections)
	g.detections = append(g.detections, detectionNode{fac: factor.NewDetection()})
	return idx, nil
}

// AddPairwiseLink connects an already-added pairwise factor to its two
// unaries, recording the forward/backward adjacency on both sides. The
// pairwise factor's dimensions must already match the unaries' label
// counts (checked via Size/NumLabels parity established at construction).
func (g *Graph) AddPairwiseLink(unary0, unary1, pairwiseIdx int) error {
	if err := g.requireBuilding(); err != nil {
		return err
	}
	if g.class != GM && g.class != QAP {
		return structuralf("%w: pairwise links require a GM or QAP graph, got %s", errWrongProblemClass, g.class)
	}
	if unary0 < 0 || unary0 >= len(g.unaries) {
		return structuralf("%w: unary0=%d", errUnknownUnary, unary0)
	}
	if unary1 < 0 || unary1 >= len(g.unaries) {
		return structuralf("%w: unary1=%d", errUnknownUnary, unary1)
	}
	if pairwiseIdx < 0 || pairwiseIdx >= len(g.pairwise) {
		return structuralf("%w: pairwise=%d", errUnknownPairwise, pairwiseIdx)
	}
	pw := &g.pairwise[pairwiseIdx]
	if pw.unary0 != unlinked || pw.unary1 != unlinked {
		return structuralf("%w: pairwise=%d already linked", errSlotTaken, pairwiseIdx)
	}
	pwSize0, pwSize1 := pw.fac.Size()
	if g.unaries[unary0].fac.Size() != pwSize0 || g.unaries[unary1].fac.Size() != pwSize1 {
		return structuralf("%w: pairwise=%d", errDimensionMismatch, pairwiseIdx)
	}
	pw.unary0 = unary0
	pw.unary1 = unary1
	g.unaries[unary0].forward = append(g.unaries[unary0].forward, pairwiseIdx)
	g.unaries[unary1].backward = append(g.unaries[unary1].backward, pairwiseIdx)
	return nil
}

// AddUniquenessLink connects one (unary, label) pair to a caller-chosen
// slot of a uniqueness factor. Each slot may be linked at most once, and
// each (unary, label) pair may be linked to at most one uniqueness factor.
func (g *Graph) AddUniquenessLink(unaryIdx int, label core.Index, uniquenessIdx int, slot core.Index) error {
	if err := g.requireBuilding(); err != nil {
		return err
	}
	if g.class != QAP {
		return structuralf("%w: uniqueness links require a QAP graph, got %s", errWrongProblemClass, g.class)
	}
	if unaryIdx < 0 || unaryIdx >= len(g.unaries) {
		return structuralf("%w: unary=%d", errUnknownUnary, unaryIdx)
	}
	un := &g.unaries[unaryIdx]
	if int(label) < 0 || int(label) >= len(un.uniquenessLinks) {
		return structuralf("%w: label=%d", errSlotOutOfRange, label)
	}
	if uniquenessIdx < 0 || uniquenessIdx >= len(g.uniqueness) {
		return structuralf("%w: uniqueness=%d", errUnknownUniqueness, uniquenessIdx)
	}
	un2 := &g.uniqueness[uniquenessIdx]
	if int(slot) < 0 || int(slot) >= len(un2.edges) {
		return structuralf("%w: slot=%d", errSlotOutOfRange, slot)
	}
	if un.uniquenessLinks[label].linked {
		return structuralf("%w: unary=%d label=%d", errSlotTaken, unaryIdx, label)
	}
	if un2.edges[slot].linked {
		return structuralf("%w: uniqueness=%d slot=%d", errSlotTaken, uniquenessIdx, slot)
	}
	un.uniquenessLinks[label] = uniquenessRef{linked: true, uniqueness: uniquenessIdx, slot: slot}
	un2.edges[slot] = uniquenessEdge{linked: true, unary: unaryIdx, label: label}
	return nil
}

// AddConflictLink connects a detection to a caller-chosen slot of a
// conflict factor. slot is this detection's position within the conflict's
// participant list (spec wording); the detection's internal ordinal among
// all conflicts it belongs to is derived automatically and used only by
// the ct message kernel.
func (g *Graph) AddConflictLink(conflictIdx, detectionIdx int, slot core.Index) error {
	if err := g.requireBuilding(); err != nil {
		return err
	}
	if g.class != CT {
		return structuralf("%w: conflict links require a CT graph, got %s", errWrongProblemClass, g.class)
	}
	if conflictIdx < 0 || conflictIdx >= len(g.conflicts) {
		return structuralf("%w: conflict=%d", errUnknownConflict, conflictIdx)
	}
	if detectionIdx < 0 || detectionIdx >= len(g.detections) {
		return structuralf("%w: detection=%d", errUnknownDetection, detectionIdx)
	}
	cn := &g.conflicts[conflictIdx]
	if int(slot) < 0 || int(slot) >= len(cn.edges) {
		return structuralf("%w: slot=%d", errSlotOutOfRange, slot)
	}
	if cn.edges[slot].linked {
		return structuralf("%w: conflict=%d slot=%d", errSlotTaken, conflictIdx, slot)
	}
	dn := &g.detections[detectionIdx]
	ordinal := core.Index(len(dn.conflicts))
	cn.edges[slot] = conflictEdge{linked: true, detection: detectionIdx, slot: slot, detOrdinal: ordinal}
	dn.conflicts = append(dn.conflicts, detectionConflictRef{conflict: conflictIdx, slot: slot})
	return nil
}
