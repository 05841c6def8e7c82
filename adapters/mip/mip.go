// Package mip is the optional exact-ILP escape hatch described by spec §6:
// the solver hands a Builder a visit over every unary, pairwise, and
// uniqueness factor, the Builder emits binary variables and the equality
// constraints linking them, an external commercial MIP solver is run, and
// the winning assignment is written back onto the graph's primals.
//
// No MIP solver ships with this package — Builder is satisfied by whatever
// the caller wires in (an external process, a cgo binding, a hosted
// service). SolveILP fails fast with core.ErrFeatureDisabled when no
// Builder is supplied, mirroring spec.md §7's "solve_ilp() ... fails with
// FeatureDisabled when the adapter is absent".
package mip

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
)

// VarID identifies one binary decision variable the Builder created.
type VarID int

// Builder is the visitor a concrete MIP backend implements. SolveILP calls
// UnaryVar/PairwiseVar/UniquenessVar once per relevant factor entry during
// the model-building pass, then Equals for every link the graph records,
// then Solve to run the external solver and report the winning variables.
type Builder interface {
	// UnaryVar declares the binary variable for choosing label on unaryIdx.
	UnaryVar(unaryIdx int, label core.Index) VarID
	// PairwiseVar declares the binary variable for choosing (l0,l1) on pairwiseIdx.
	PairwiseVar(pairwiseIdx int, l0, l1 core.Index) VarID
	// UniquenessVar declares the binary variable for choosing slot on uniquenessIdx.
	UniquenessVar(uniquenessIdx int, slot core.Index) VarID
	// Equals records the equality constraint lhs == rhs (e.g. a pairwise
	// variable tied to the two unary variables it's consistent with).
	Equals(lhs, rhs VarID)
	// Solve runs the external MIP and returns the set of variables chosen
	// true in the optimal (or best found) solution.
	Solve(ctx context.Context) (map[VarID]bool, error)
}

// SolveILP builds the full binary-variable model for g via b, solves it,
// and writes the winning labels back onto g's unary, pairwise, and
// uniqueness primals. b == nil is the disabled-feature path.
func SolveILP(ctx context.Context, g *graph.Graph, b Builder) error {
	if b == nil {
		return disabledf("no Builder registered")
	}
	if !g.Finalized() {
		return usagef("graph not finalized")
	}

	unaryVars := make([]map[core.Index]VarID, g.NumUnaries())
	for i := range unaryVars {
		u := g.Unary(i)
		unaryVars[i] = make(map[core.Index]VarID, u.Size())
		for l := 0; l < u.Size(); l++ {
			unaryVars[i][core.Index(l)] = b.UnaryVar(i, core.Index(l))
		}
	}

	pairwiseVars := make([]map[[2]core.Index]VarID, g.NumPairwise())
	for i := range pairwiseVars {
		size0, size1 := g.Pairwise(i).Size()
		endpoint0, endpoint1 := g.PairwiseEndpoints(i)
		pairwiseVars[i] = make(map[[2]core.Index]VarID, size0*size1)
		for l0 := 0; l0 < size0; l0++ {
			for l1 := 0; l1 < size1; l1++ {
				key := [2]core.Index{core.Index(l0), core.Index(l1)}
				v := b.PairwiseVar(i, key[0], key[1])
				pairwiseVars[i][key] = v
				b.Equals(v, unaryVars[endpoint0][key[0]])
				b.Equals(v, unaryVars[endpoint1][key[1]])
			}
		}
	}

	uniquenessVars := make([]map[core.Index]VarID, g.NumUniqueness())
	for i := range uniquenessVars {
		uq := g.Uniqueness(i)
		uniquenessVars[i] = make(map[core.Index]VarID, uq.NumSlots()+1)
		for s := 0; s <= uq.NumSlots(); s++ {
			slot := core.Index(s)
			if s == uq.NumSlots() {
				slot = uq.NoneSlot()
			}
			uniquenessVars[i][slot] = b.UniquenessVar(i, slot)
		}
		for s, e := range g.UniquenessEdges(i) {
			if e.UnaryIdx < 0 {
				continue // slot never linked
			}
			b.Equals(uniquenessVars[i][core.Index(s)], unaryVars[e.UnaryIdx][e.Label])
		}
	}

	chosen, err := b.Solve(ctx)
	if err != nil {
		return fmt.Errorf("mip: external solve failed: %w", err)
	}

	for i, labels := range unaryVars {
		for label, v := range labels {
			if chosen[v] {
				g.Unary(i).SetPrimal(label)
			}
		}
	}
	for i, pairs := range pairwiseVars {
		for key, v := range pairs {
			if chosen[v] {
				g.Pairwise(i).SetPrimal(key[0], key[1])
			}
		}
	}
	for i, slots := range uniquenessVars {
		for slot, v := range slots {
			if chosen[v] {
				g.Uniqueness(i).SetPrimal(slot)
			}
		}
	}
	return nil
}
