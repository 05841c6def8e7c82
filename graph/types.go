// Package graph implements spec.md's factor graph: indexed arenas of each
// factor kind plus the adjacency each problem class (GM, QAP, CT) needs,
// immutable after Finalize. The graph owns all factor storage; adjacency
// lists hold plain integer indices into the arenas (never pointers), the
// "arena + index" back-reference scheme Design Notes §9 recommends in place
// of pointer-chasing back-references.
package graph

import (
	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
)

// ProblemClass selects which link kinds (and therefore which message
// kernel) a Graph supports. A graph built for one class rejects link calls
// belonging to another with a structural error at link time.
type ProblemClass int

const (
	// GM graphs link unaries to pairwise factors (forward/backward).
	GM ProblemClass = iota
	// QAP graphs link unaries (by label) to uniqueness factors, and may
	// also carry pairwise factors (QAP instances are commonly posed as GM
	// plus uniqueness constraints).
	QAP
	// CT graphs link detections to conflict factors.
	CT
)

func (pc ProblemClass) String() string {
	switch pc {
	case GM:
		return "GM"
	case QAP:
		return "QAP"
	case CT:
		return "CT"
	default:
		return "unknown"
	}
}

// buildState tracks the construction lifecycle: Building allows Add*/link
// calls, Finalized freezes structure (spec.md §3 Lifecycle).
type buildState int

const (
	building buildState = iota
	finalized
)

// unaryNode bundles a Unary factor with its GM adjacency (forward/backward
// pairwise indices) and its QAP adjacency (one optional uniqueness link per
// label).
type unaryNode struct {
	fac             *factor.Unary
	forward         []int // pairwise indices where this unary is the left (0) side
	backward        []int // pairwise indices where this unary is the right (1) side
	uniquenessLinks []uniquenessRef // len == fac.Size(); zero value means unlinked
}

// uniquenessRef is a per-label back-reference from a unary to the
// uniqueness factor/slot its label activates, or the zero value (Linked ==
// false) if that label has no uniqueness constraint.
type uniquenessRef struct {
	linked     bool
	uniqueness int
	slot       core.Index
}

// pairwiseNode bundles a Pairwise factor with the two unary indices it
// connects. Both are core.Unset (-1 is out of range for a real index, so we
// use -1 as the graph-private "unlinked" sentinel) until AddPairwiseLink.
type pairwiseNode struct {
	fac    *factor.Pairwise
	unary0 int
	unary1 int
}

// uniquenessEdge is one (unary, label) back-reference held by a uniqueness
// node, at a caller-chosen slot.
type uniquenessEdge struct {
	linked bool
	unary  int
	label  core.Index
}

type uniquenessNode struct {
	fac   *factor.Uniqueness
	edges []uniquenessEdge // len == fac.NumSlots()
}

// conflictEdge is one (detection, slot) back-reference held by a conflict
// node. detOrdinal is this detection's own per-detection index among all
// conflicts it participates in (assigned sequentially as links are added),
// which is the quantity messages/ct's shrinking-denominator schedule needs
// — see ConflictEdge for why this differs from Slot.
type conflictEdge struct {
	linked     bool
	detection  int
	slot       core.Index
	detOrdinal core.Index
}

type conflictNode struct {
	fac   *factor.Conflict
	edges []conflictEdge // len == fac.NumSlots()
}

// detectionConflictRef is one conflict a detection participates in, in the
// order the detection was linked (so its index in this slice equals
// conflictEdge.detOrdinal for that conflict).
type detectionConflictRef struct {
	conflict int
	slot     core.Index
}

type detectionNode struct {
	fac       *factor.Detection
	conflicts []detectionConflictRef
}

// ConflictEdge is the public, read-only view of a conflict's detection
// edge. DetOrdinal is the detection's own position among all conflicts it
// participates in (distinct from Slot, its position within this one
// conflict) — the quantity messages/ct's shrinking-denominator schedule
// needs.
type ConflictEdge struct {
	DetectionIdx int
	Slot         core.Index
	DetOrdinal   core.Index
}

// UniquenessEdge is the public, read-only view of a uniqueness factor's
// (unary, label) edge.
type UniquenessEdge struct {
	UnaryIdx int
	Label    core.Index
}

// DetectionConflictEdge is the public, read-only view of a detection's
// participation in one conflict.
type DetectionConflictEdge struct {
	ConflictIdx int
	Slot        core.Index
}
