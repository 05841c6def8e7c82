package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
)

func mkUnary(costs ...core.Cost) *factor.Unary {
	u := factor.NewUnary(len(costs))
	for i, c := range costs {
		u.Set(core.Index(i), c)
	}
	return u
}

func TestUnaryNotPreparedUntilAllSet(t *testing.T) {
	u := factor.NewUnary(3)
	assert.False(t, u.Prepared())
	u.Set(0, 1)
	u.Set(1, 2)
	assert.False(t, u.Prepared())
	u.Set(2, 3)
	assert.True(t, u.Prepared())
}

func TestUnaryLowerBoundAndRound(t *testing.T) {
	u := mkUnary(3, 1, 2)
	assert.Equal(t, core.Cost(1), u.LowerBound())
	u.RoundPrimal()
	assert.Equal(t, core.Index(1), u.Primal())
	assert.Equal(t, core.Cost(1), u.EvaluatePrimal())
}

func TestUnaryRoundTieBreaksLowestIndex(t *testing.T) {
	u := mkUnary(1, 1, 1)
	u.RoundPrimal()
	assert.Equal(t, core.Index(0), u.Primal())
}

func TestUnaryEvaluatePrimalUnsetIsInfinity(t *testing.T) {
	u := mkUnary(1, 2)
	assert.True(t, math.IsInf(u.EvaluatePrimal(), 1))
}

func TestUnaryResetPrimalIdempotent(t *testing.T) {
	u := mkUnary(1, 2)
	u.RoundPrimal()
	u.ResetPrimal()
	u.ResetPrimal()
	assert.Equal(t, core.Unset, u.Primal())
}

func TestUnaryRepamPreservesOrderingAndShiftsLowerBound(t *testing.T) {
	u := mkUnary(3, 1, 2)
	before := u.LowerBound()
	u.Repam(0, 5)
	after := u.LowerBound()
	assert.Equal(t, before+0, after) // min was at label 1, untouched
	assert.Equal(t, core.Cost(8), u.Get(0))
}

func TestUnaryOutOfRangePanics(t *testing.T) {
	u := factor.NewUnary(2)
	require.Panics(t, func() { u.Get(5) })
	require.Panics(t, func() { u.Set(-1, 0) })
}

func TestUnaryClone(t *testing.T) {
	u := mkUnary(1, 2)
	u.RoundPrimal()
	c := u.Clone()
	c.Repam(0, 100)
	assert.NotEqual(t, u.Get(0), c.Get(0))
	assert.Equal(t, u.Primal(), c.Primal())
}
