package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dmpsolve/core"
)

func TestMergeIdentityAndAbsorbing(t *testing.T) {
	vals := []core.Consistency{core.Satisfied, core.Unknown, core.Inconsistent}
	for _, v := range vals {
		assert.Equal(t, v, core.Merge(core.Satisfied, v), "satisfied is identity")
		assert.Equal(t, v, core.Merge(v, core.Satisfied), "satisfied is identity (commuted)")
		assert.Equal(t, core.Inconsistent, core.Merge(core.Inconsistent, v), "inconsistent absorbs")
		assert.Equal(t, core.Inconsistent, core.Merge(v, core.Inconsistent), "inconsistent absorbs (commuted)")
	}
}

func TestMergeCommutativeAndAssociative(t *testing.T) {
	vals := []core.Consistency{core.Satisfied, core.Unknown, core.Inconsistent}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, core.Merge(a, b), core.Merge(b, a), "commutative")
			for _, c := range vals {
				left := core.Merge(core.Merge(a, b), c)
				right := core.Merge(a, core.Merge(b, c))
				assert.Equal(t, left, right, "associative")
			}
		}
	}
}

func TestMergeAllEmptyIsSatisfied(t *testing.T) {
	assert.Equal(t, core.Satisfied, core.MergeAll())
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, core.Backward, core.Forward.Opposite())
	assert.Equal(t, core.Forward, core.Backward.Opposite())
}

func TestCheckNonDecreasing(t *testing.T) {
	assert.NoError(t, core.CheckNonDecreasing("test", 1.0, 1.0))
	assert.NoError(t, core.CheckNonDecreasing("test", 1.0, 2.0))
	assert.NoError(t, core.CheckNonDecreasing("test", 1.0, 1.0-core.Epsilon/2))
	err := core.CheckNonDecreasing("test", 2.0, 1.0)
	assert.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvariant)
}
