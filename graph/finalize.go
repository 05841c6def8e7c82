package graph

// Finalize checks that every factor in the graph is Prepared (all costs
// written) and that conflict edges honor the ascending-slot traversal
// contract messages/ct relies on, then transitions the graph to the
// Finalized state. It is not idempotent: calling it again on an already
// finalized graph is a usage error, not a silent no-op, since a caller
// asking to finalize twice almost always indicates a logic error upstream.
func (g *Graph) Finalize() error {
	if g.state == finalized {
		return usagef("%w", errAlreadyFinalized)
	}

	for i, n := range g.unaries {
		if !n.fac.Prepared() {
			return notPreparedf("unary=%d not prepared", i)
		}
	}
	for i, n := range g.pairwise {
		if n.unary0 == unlinked || n.unary1 == unlinked {
			return structuralf("pairwise=%d never linked to a pair of unaries", i)
		}
		if !n.fac.Prepared() {
			return notPreparedf("pairwise=%d not prepared", i)
		}
	}
	for i, n := range g.uniqueness {
		if !n.fac.Prepared() {
			return notPreparedf("uniqueness=%d not prepared", i)
		}
	}
	for i, n := range g.conflicts {
		if !n.fac.Prepared() {
			return notPreparedf("conflict=%d not prepared", i)
		}
		for slot, e := range n.edges {
			if int(e.slot) != slot {
				return structuralf("%w: conflict=%d slot=%d holds edge.slot=%d", errConflictSlotOrder, i, slot, e.slot)
			}
		}
	}
	for i, n := range g.detections {
		if !n.fac.Prepared() {
			return notPreparedf("detection=%d not prepared", i)
		}
		for ordinal, ref := range n.conflicts {
			cn := g.conflicts[ref.conflict]
			edge := cn.edges[ref.slot]
			if int(edge.detOrdinal) != ordinal {
				return structuralf("%w: detection=%d conflict=%d", errConflictSlotOrder, i, ref.conflict)
			}
		}
	}

	g.state = finalized
	return nil
}
