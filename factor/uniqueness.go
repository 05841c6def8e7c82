package factor

import "github.com/katalvlaran/dmpsolve/core"

// Uniqueness is a QAP "at most one" factor over K unary-label slots plus a
// trailing "none/unassigned" slot (index K): spec.md's uniqueness factor.
type Uniqueness struct {
	table slotTable
}

// NewUniqueness allocates a Uniqueness factor with K real slots.
func NewUniqueness(numSlots int) *Uniqueness {
	return &Uniqueness{table: newSlotTable(numSlots)}
}

// NumSlots returns K (the number of real, non-"none" slots).
func (u *Uniqueness) NumSlots() int { return u.table.NumRealSlots() }

// NoneSlot returns the index of the "none selected" slot (== K).
func (u *Uniqueness) NoneSlot() core.Index { return u.table.NoneSlot() }

func (u *Uniqueness) Set(slot core.Index, c core.Cost)   { u.table.Set(slot, c) }
func (u *Uniqueness) Get(slot core.Index) core.Cost      { return u.table.Get(slot) }
func (u *Uniqueness) Repam(slot core.Index, msg core.Cost) { u.table.Repam(slot, msg) }
func (u *Uniqueness) LowerBound() core.Cost              { return u.table.LowerBound() }
func (u *Uniqueness) Prepared() bool                     { return u.table.Prepared() }
func (u *Uniqueness) Primal() core.Index                 { return u.table.Primal() }
func (u *Uniqueness) SetPrimal(s core.Index)             { u.table.SetPrimal(s) }
func (u *Uniqueness) ResetPrimal()                       { u.table.ResetPrimal() }
func (u *Uniqueness) EvaluatePrimal() core.Cost          { return u.table.EvaluatePrimal() }

// Clone returns a deep copy of u.
func (u *Uniqueness) Clone() *Uniqueness {
	return &Uniqueness{table: u.table.clone()}
}
