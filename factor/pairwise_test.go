package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
)

func mkPotts(n int) *factor.Pairwise {
	p := factor.NewPairwise(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				p.Set(core.Index(i), core.Index(j), 0)
			} else {
				p.Set(core.Index(i), core.Index(j), 1)
			}
		}
	}
	return p
}

func TestPairwiseMinMarginal(t *testing.T) {
	p := mkPotts(2)
	assert.Equal(t, core.Cost(0), p.MinMarginal(core.Forward, 0))
	assert.Equal(t, core.Cost(0), p.MinMarginal(core.Backward, 1))
}

func TestPairwiseRepam0AndRepam1(t *testing.T) {
	p := mkPotts(2)
	p.Repam0(0, 10)
	assert.Equal(t, core.Cost(10), p.Get(0, 0))
	assert.Equal(t, core.Cost(11), p.Get(0, 1))
	assert.Equal(t, core.Cost(1), p.Get(1, 0)) // untouched row

	p.Repam1(1, 5)
	assert.Equal(t, core.Cost(16), p.Get(0, 1))
	assert.Equal(t, core.Cost(5), p.Get(1, 1))
}

func TestPairwiseRepamDirectionDispatch(t *testing.T) {
	p := mkPotts(2)
	p.Repam(core.Forward, 0, 2)
	assert.Equal(t, core.Cost(2), p.Get(0, 0))
	p.Repam(core.Backward, 1, 3)
	assert.Equal(t, core.Cost(1+2+3), p.Get(0, 1)) // Potts off-diagonal 1, +2 row, +3 column
}

func TestPairwiseStrictIndexBound(t *testing.T) {
	p := factor.NewPairwise(2, 3)
	// idx0=1, idx1=2 is in range (1*3+2=5 < 6) for a 2x3 table.
	require.NotPanics(t, func() { p.Set(1, 2, 0) })
	// Out-of-range label on either axis panics even though idx0*idx1 would
	// be small (regression check for the strict linear bound).
	require.Panics(t, func() { p.Set(1, 3, 0) })
	require.Panics(t, func() { p.Set(2, 0, 0) })
}

func TestPairwiseRoundPrimalAndEvaluate(t *testing.T) {
	p := mkPotts(2)
	p.RoundPrimal()
	l0, l1 := p.Primal()
	assert.Equal(t, l0, l1) // diagonal (zero-cost) entries win
	assert.Equal(t, core.Cost(0), p.EvaluatePrimal())
}

func TestPairwiseEvaluatePrimalUnsetIsInfinity(t *testing.T) {
	p := mkPotts(2)
	assert.True(t, math.IsInf(p.EvaluatePrimal(), 1))
	p.SetPrimal0(0)
	assert.True(t, math.IsInf(p.EvaluatePrimal(), 1)) // primal1 still unset
}

func TestPairwiseResetPrimal(t *testing.T) {
	p := mkPotts(2)
	p.SetPrimal(0, 1)
	p.ResetPrimal()
	l0, l1 := p.Primal()
	assert.Equal(t, core.Unset, l0)
	assert.Equal(t, core.Unset, l1)
}
