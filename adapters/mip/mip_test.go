package mip_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmpsolve/adapters/mip"
	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
)

// fakeBuilder picks the label-0 variable of every unary, and derives
// pairwise/uniqueness choices from the Equals it recorded. equal keeps only
// the last rhs given for each lhs, so a pairwise variable follows its
// unary1 endpoint.
type fakeBuilder struct {
	next    mip.VarID
	firstOf map[int]mip.VarID // unaryIdx -> its label-0 variable
	equal   map[mip.VarID]mip.VarID
}

func newFakeBuilder() *fakeBuilder {
	return &fakeBuilder{firstOf: make(map[int]mip.VarID), equal: make(map[mip.VarID]mip.VarID)}
}

func (b *fakeBuilder) alloc() mip.VarID {
	b.next++
	return b.next
}

func (b *fakeBuilder) UnaryVar(unaryIdx int, label core.Index) mip.VarID {
	v := b.alloc()
	if label == 0 {
		b.firstOf[unaryIdx] = v
	}
	return v
}

func (b *fakeBuilder) PairwiseVar(pairwiseIdx int, l0, l1 core.Index) mip.VarID { return b.alloc() }
func (b *fakeBuilder) UniquenessVar(uniquenessIdx int, slot core.Index) mip.VarID {
	return b.alloc()
}

func (b *fakeBuilder) Equals(lhs, rhs mip.VarID) {
	b.equal[lhs] = rhs
}

// Solve "chooses" every unary's label-0 variable, plus every variable whose
// last recorded Equals partner is one of those.
func (b *fakeBuilder) Solve(ctx context.Context) (map[mip.VarID]bool, error) {
	want := make(map[mip.VarID]bool)
	for _, v := range b.firstOf {
		want[v] = true
	}
	for lhs, rhs := range b.equal {
		if want[rhs] {
			want[lhs] = true
		}
	}
	return want, nil
}

func mkChain(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(graph.GM)
	u0, err := g.AddUnary(2)
	require.NoError(t, err)
	u1, err := g.AddUnary(2)
	require.NoError(t, err)
	g.Unary(u0).Set(0, 0)
	g.Unary(u0).Set(1, 1)
	g.Unary(u1).Set(0, 0)
	g.Unary(u1).Set(1, 1)
	pw, err := g.AddPairwise(2, 2)
	require.NoError(t, err)
	p := g.Pairwise(pw)
	p.Set(0, 0, 0)
	p.Set(0, 1, 1)
	p.Set(1, 0, 1)
	p.Set(1, 1, 0)
	require.NoError(t, g.AddPairwiseLink(u0, u1, pw))
	require.NoError(t, g.Finalize())
	return g
}

func TestSolveILPWithoutBuilderIsFeatureDisabled(t *testing.T) {
	g := mkChain(t)
	err := mip.SolveILP(context.Background(), g, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrFeatureDisabled)
}

func TestSolveILPWritesPrimalsFromChosenVars(t *testing.T) {
	g := mkChain(t)
	b := newFakeBuilder()
	require.NoError(t, mip.SolveILP(context.Background(), g, b))

	assert.Equal(t, core.Index(0), g.Unary(0).Primal())
	assert.Equal(t, core.Index(0), g.Unary(1).Primal())
}
