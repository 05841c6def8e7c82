package factor

import (
	"math"

	"github.com/katalvlaran/dmpsolve/core"
)

// Pairwise is a cost-per-label-pair factor over L0×L1 labels, stored
// row-major: costs[l0*L1+l1]. Its primal is a pair (l0, l1).
//
// The source's own assert_index used the weaker bound `idx0*idx1 <
// len(costs)`, which the spec's Open Questions flags as admitting
// out-of-range writes. assertIndex here uses the strict linear bound
// instead.
type Pairwise struct {
	costs      []core.Cost
	numLabels0 int
	numLabels1 int
	primal0    core.Index
	primal1    core.Index
}

// NewPairwise allocates an L0×L1 Pairwise with every cell unset.
func NewPairwise(numLabels0, numLabels1 int) *Pairwise {
	costs := make([]core.Cost, numLabels0*numLabels1)
	for i := range costs {
		costs[i] = core.UnsetCost
	}
	return &Pairwise{
		costs:      costs,
		numLabels0: numLabels0,
		numLabels1: numLabels1,
		primal0:    core.Unset,
		primal1:    core.Unset,
	}
}

// Size returns (numLabels0, numLabels1).
func (p *Pairwise) Size() (int, int) { return p.numLabels0, p.numLabels1 }

func (p *Pairwise) toLinear(l0, l1 core.Index) int {
	if l0 < 0 || int(l0) >= p.numLabels0 || l1 < 0 || int(l1) >= p.numLabels1 {
		panic(newUsageError(errLabelOutOfRange))
	}
	idx := int(l0)*p.numLabels1 + int(l1)
	// Strict linear bound check: idx0*L1+idx1 < len(costs), not the weaker
	// idx0*idx1 < len(costs) that the C++ source used.
	if idx < 0 || idx >= len(p.costs) {
		panic(newUsageError(errLabelOutOfRange))
	}
	return idx
}

// Set writes the cost of label pair (l0, l1).
func (p *Pairwise) Set(l0, l1 core.Index, c core.Cost) {
	p.costs[p.toLinear(l0, l1)] = c
}

// Get reads the cost of label pair (l0, l1).
func (p *Pairwise) Get(l0, l1 core.Index) core.Cost {
	return p.costs[p.toLinear(l0, l1)]
}

// Repam0 adds msg to every cell of row l0 (all l1).
func (p *Pairwise) Repam0(l0 core.Index, msg core.Cost) {
	for l1 := 0; l1 < p.numLabels1; l1++ {
		idx := p.toLinear(l0, core.Index(l1))
		p.costs[idx] += msg
	}
}

// Repam1 adds msg to every cell of column l1 (all l0).
func (p *Pairwise) Repam1(l1 core.Index, msg core.Cost) {
	for l0 := 0; l0 < p.numLabels0; l0++ {
		idx := p.toLinear(core.Index(l0), l1)
		p.costs[idx] += msg
	}
}

// Repam dispatches to Repam0 or Repam1 based on dir: Forward means "the
// message concerns the left (0) side", Backward means the right (1) side,
// matching messages/gm's use of Direction to select which side of the
// pairwise factor a neighboring unary is on.
func (p *Pairwise) Repam(dir core.Direction, idx core.Index, msg core.Cost) {
	if dir == core.Forward {
		p.Repam0(idx, msg)
	} else {
		p.Repam1(idx, msg)
	}
}

// MinMarginal computes, for a fixed label l on one side, the minimum cost
// over the other side's labels. dir == Forward computes the marginal for a
// fixed l0 (minimizing over l1); dir == Backward computes it for a fixed l1
// (minimizing over l0).
func (p *Pairwise) MinMarginal(dir core.Direction, l core.Index) core.Cost {
	best := math.Inf(1)
	if dir == core.Forward {
		for l1 := 0; l1 < p.numLabels1; l1++ {
			if c := p.Get(l, core.Index(l1)); c < best {
				best = c
			}
		}
		return best
	}
	for l0 := 0; l0 < p.numLabels0; l0++ {
		if c := p.Get(core.Index(l0), l); c < best {
			best = c
		}
	}
	return best
}

// LowerBound returns the minimum cost over all label pairs.
func (p *Pairwise) LowerBound() core.Cost {
	best := math.Inf(1)
	for _, c := range p.costs {
		if c < best {
			best = c
		}
	}
	return best
}

// Prepared reports whether every cell has been written.
func (p *Pairwise) Prepared() bool {
	for _, c := range p.costs {
		if core.IsUnset(c) {
			return false
		}
	}
	return true
}

// Primal returns the chosen (l0, l1) pair; either may be core.Unset.
func (p *Pairwise) Primal() (core.Index, core.Index) { return p.primal0, p.primal1 }

// SetPrimal0 / SetPrimal1 write one coordinate of the primal pair
// independently — used by primal propagation, which writes only the side
// adjacent to the unary whose label was just rounded.
func (p *Pairwise) SetPrimal0(l0 core.Index) { p.primal0 = l0 }
func (p *Pairwise) SetPrimal1(l1 core.Index) { p.primal1 = l1 }

// SetPrimal writes both coordinates at once (used by primal-storage restore,
// which reconstructs pairwise primals wholesale from unary primals).
func (p *Pairwise) SetPrimal(l0, l1 core.Index) {
	p.primal0 = l0
	p.primal1 = l1
}

// ResetPrimal clears both coordinates.
func (p *Pairwise) ResetPrimal() {
	p.primal0 = core.Unset
	p.primal1 = core.Unset
}

// EvaluatePrimal returns the cost of the chosen pair, or +∞ if either
// coordinate is unset.
func (p *Pairwise) EvaluatePrimal() core.Cost {
	if !p.primal0.IsSet() || !p.primal1.IsSet() {
		return core.Infinity
	}
	return p.Get(p.primal0, p.primal1)
}

// RoundPrimal sets the primal to the argmin cell, row-major tie-break
// (lowest linear index, i.e. lowest l0 then lowest l1).
func (p *Pairwise) RoundPrimal() {
	bestIdx := 0
	bestCost := p.costs[0]
	for i := 1; i < len(p.costs); i++ {
		if p.costs[i] < bestCost {
			bestCost = p.costs[i]
			bestIdx = i
		}
	}
	p.primal0 = core.Index(bestIdx / p.numLabels1)
	p.primal1 = core.Index(bestIdx % p.numLabels1)
}

// Clone returns a deep copy of p, including its current primal.
func (p *Pairwise) Clone() *Pairwise {
	costs := make([]core.Cost, len(p.costs))
	copy(costs, p.costs)
	return &Pairwise{
		costs:      costs,
		numLabels0: p.numLabels0,
		numLabels1: p.numLabels1,
		primal0:    p.primal0,
		primal1:    p.primal1,
	}
}
