package factor

import "github.com/katalvlaran/dmpsolve/core"

// Conflict is a CT "at most one" factor over K detection slots plus a
// trailing "all off" slot (index K): spec.md's conflict factor.
type Conflict struct {
	table slotTable
}

// NewConflict allocates a Conflict factor with K detection slots.
func NewConflict(numSlots int) *Conflict {
	return &Conflict{table: newSlotTable(numSlots)}
}

// NumSlots returns K (the number of real detection slots).
func (c *Conflict) NumSlots() int { return c.table.NumRealSlots() }

// AllOffSlot returns the index of the "all detections off" slot (== K).
func (c *Conflict) AllOffSlot() core.Index { return c.table.NoneSlot() }

func (c *Conflict) Set(slot core.Index, cost core.Cost)   { c.table.Set(slot, cost) }
func (c *Conflict) Get(slot core.Index) core.Cost         { return c.table.Get(slot) }
func (c *Conflict) Repam(slot core.Index, msg core.Cost)  { c.table.Repam(slot, msg) }
func (c *Conflict) LowerBound() core.Cost                 { return c.table.LowerBound() }
func (c *Conflict) Prepared() bool                        { return c.table.Prepared() }
func (c *Conflict) Primal() core.Index                    { return c.table.Primal() }
func (c *Conflict) SetPrimal(s core.Index)                { c.table.SetPrimal(s) }
func (c *Conflict) ResetPrimal()                           { c.table.ResetPrimal() }
func (c *Conflict) EvaluatePrimal() core.Cost              { return c.table.EvaluatePrimal() }

// LeastTwo returns the two smallest slot costs (it1 <= it2), used by
// messages/ct's send-to-detection schedule to find the clamp point m.
func (c *Conflict) LeastTwo() (core.Cost, core.Cost) { return c.table.leastTwo() }

// Clone returns a deep copy of c.
func (c *Conflict) Clone() *Conflict {
	return &Conflict{table: c.table.clone()}
}
