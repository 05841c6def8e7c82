package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmpsolve/graph"
)

func TestTraversalOrderCoversChainInOrder(t *testing.T) {
	g := mkGMChain(t, 5)
	order := g.TraversalOrder()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestTraversalOrderCoversDisconnectedComponents(t *testing.T) {
	g := graph.NewGraph(graph.GM)
	u0, err := g.AddUnary(2)
	require.NoError(t, err)
	u1, err := g.AddUnary(2)
	require.NoError(t, err)
	// No pairwise link: two singleton components.
	g.Unary(u0).Set(0, 0)
	g.Unary(u0).Set(1, 0)
	g.Unary(u1).Set(0, 0)
	g.Unary(u1).Set(1, 0)
	require.NoError(t, g.Finalize())

	order := g.TraversalOrder()
	assert.ElementsMatch(t, []int{u0, u1}, order)
	assert.Len(t, order, 2)
}
