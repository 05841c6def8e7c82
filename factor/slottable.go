package factor

import (
	"math"

	"github.com/katalvlaran/dmpsolve/core"
)

// slotTable is the shared dense-array shape behind Uniqueness and Conflict:
// K "real" slots plus one trailing "none"/"all-off" slot at index K. Both
// factor kinds are, bit for bit, the same at-most-one cost table described
// in spec.md §3/§4.3/§4.4; they are kept as distinct exported types (rather
// than one generic type) because their message kernels (messages/qap vs
// messages/ct) give the trailing slot different meaning and different
// neighbors, and callers should not be able to link a QAP uniqueness edge
// where a CT conflict edge belongs or vice versa.
type slotTable struct {
	costs  []core.Cost
	primal core.Index
}

func newSlotTable(numRealSlots int) slotTable {
	costs := make([]core.Cost, numRealSlots+1)
	for i := range costs {
		costs[i] = core.UnsetCost
	}
	return slotTable{costs: costs, primal: core.Unset}
}

// NumRealSlots returns K (excluding the trailing none/all-off slot).
func (t *slotTable) NumRealSlots() int { return len(t.costs) - 1 }

// NoneSlot returns the index of the trailing none/all-off slot (== K).
func (t *slotTable) NoneSlot() core.Index { return core.Index(len(t.costs) - 1) }

func (t *slotTable) assertSlot(slot core.Index) {
	if slot < 0 || int(slot) >= len(t.costs) {
		panic(newUsageError(errSlotOutOfRange))
	}
}

func (t *slotTable) Set(slot core.Index, c core.Cost) {
	t.assertSlot(slot)
	t.costs[slot] = c
}

func (t *slotTable) Get(slot core.Index) core.Cost {
	t.assertSlot(slot)
	return t.costs[slot]
}

func (t *slotTable) Repam(slot core.Index, msg core.Cost) {
	t.assertSlot(slot)
	t.costs[slot] += msg
}

func (t *slotTable) LowerBound() core.Cost {
	best := math.Inf(1)
	for _, c := range t.costs {
		if c < best {
			best = c
		}
	}
	return best
}

func (t *slotTable) Prepared() bool {
	for _, c := range t.costs {
		if core.IsUnset(c) {
			return false
		}
	}
	return true
}

func (t *slotTable) Primal() core.Index      { return t.primal }
func (t *slotTable) SetPrimal(s core.Index)  { t.primal = s }
func (t *slotTable) ResetPrimal()            { t.primal = core.Unset }

func (t *slotTable) EvaluatePrimal() core.Cost {
	if !t.primal.IsSet() {
		return core.Infinity
	}
	return t.costs[t.primal]
}

// leastTwo returns the two smallest entries in the table (it1 <= it2),
// matching the source's least_two_elements helper used by
// ct.SendMessagesToDetection.
func (t *slotTable) leastTwo() (core.Cost, core.Cost) {
	it1, it2 := math.Inf(1), math.Inf(1)
	for _, c := range t.costs {
		if c < it1 {
			it1, it2 = c, it1
		} else if c < it2 {
			it2 = c
		}
	}
	return it1, it2
}

func (t *slotTable) clone() slotTable {
	costs := make([]core.Cost, len(t.costs))
	copy(costs, t.costs)
	return slotTable{costs: costs, primal: t.primal}
}
