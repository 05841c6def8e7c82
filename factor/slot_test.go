package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
)

func TestUniquenessNoneSlot(t *testing.T) {
	u := factor.NewUniqueness(2)
	assert.Equal(t, 2, u.NumSlots())
	assert.Equal(t, core.Index(2), u.NoneSlot())
	u.Set(0, 5)
	u.Set(1, 5)
	u.Set(u.NoneSlot(), 0)
	assert.True(t, u.Prepared())
	assert.Equal(t, core.Cost(0), u.LowerBound())
}

func TestConflictLeastTwoAndAllOff(t *testing.T) {
	c := factor.NewConflict(2)
	c.Set(0, -3)
	c.Set(1, -1)
	c.Set(c.AllOffSlot(), 0)
	it1, it2 := c.LeastTwo()
	assert.Equal(t, core.Cost(-3), it1)
	assert.Equal(t, core.Cost(-1), it2)
}

func TestSlotTablePrimalRoundTrip(t *testing.T) {
	u := factor.NewUniqueness(1)
	u.Set(0, 1)
	u.Set(u.NoneSlot(), 0)
	u.SetPrimal(u.NoneSlot())
	assert.Equal(t, core.Cost(0), u.EvaluatePrimal())
	u.ResetPrimal()
	u.ResetPrimal()
	assert.Equal(t, core.Unset, u.Primal())
}

func TestDetectionMinAndRound(t *testing.T) {
	d := factor.NewDetection()
	d.Set(factor.On, -3)
	d.Set(factor.Off, 0)
	assert.Equal(t, core.Cost(-3), d.MinDetection())
	d.RoundPrimal()
	assert.True(t, d.IsOn())
	assert.Equal(t, core.Cost(-3), d.EvaluatePrimal())
}

func TestDetectionRoundTieBreaksOn(t *testing.T) {
	d := factor.NewDetection()
	d.Set(factor.On, 0)
	d.Set(factor.Off, 0)
	d.RoundPrimal()
	assert.True(t, d.IsOn())
}

func TestDetectionTransitionCosts(t *testing.T) {
	tc := factor.TransitionCosts{Appear: 2, Disappear: 1, StayOn: 0, StayOff: 0}
	d := factor.NewDetection()
	d.Set(factor.On, -5)
	d.Set(factor.Off, 0)
	before := d.MinDetection()
	d.ApplyTransition(false, tc) // was off, appearing now costs 2 relative to staying off (0)
	assert.Equal(t, before+2, d.MinDetection())
}
