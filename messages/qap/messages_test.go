package qap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	"github.com/katalvlaran/dmpsolve/messages"
	qapmsg "github.com/katalvlaran/dmpsolve/messages/qap"
)

// mk2x2 builds the classic 2x2 assignment instance: two unaries, each with
// two labels (targets), and two uniqueness factors (one per target) each
// linking both unaries' matching label.
func mk2x2(t *testing.T) (*graph.Graph, []int, []int) {
	t.Helper()
	g := graph.NewGraph(graph.QAP)
	u0, err := g.AddUnary(2)
	require.NoError(t, err)
	u1, err := g.AddUnary(2)
	require.NoError(t, err)
	g.Unary(u0).Set(0, 1)
	g.Unary(u0).Set(1, 2)
	g.Unary(u1).Set(0, 2)
	g.Unary(u1).Set(1, 1)

	uq0, err := g.AddUniqueness(2)
	require.NoError(t, err)
	uq1, err := g.AddUniqueness(2)
	require.NoError(t, err)
	for _, uq := range []int{uq0, uq1} {
		q := g.Uniqueness(uq)
		q.Set(0, 0)
		q.Set(1, 0)
		q.Set(q.NoneSlot(), 0)
	}
	require.NoError(t, g.AddUniquenessLink(u0, 0, uq0, 0))
	require.NoError(t, g.AddUniquenessLink(u1, 0, uq0, 1))
	require.NoError(t, g.AddUniquenessLink(u0, 1, uq1, 0))
	require.NoError(t, g.AddUniquenessLink(u1, 1, uq1, 1))
	require.NoError(t, g.Finalize())
	return g, []int{u0, u1}, []int{uq0, uq1}
}

func totalLowerBound(g *graph.Graph) core.Cost {
	var total core.Cost
	for i := 0; i < g.NumUnaries(); i++ {
		total += g.Unary(i).LowerBound()
	}
	for i := 0; i < g.NumUniqueness(); i++ {
		total += g.Uniqueness(i).LowerBound()
	}
	return total
}

func TestSendMessagesPreserveOrGrowLowerBound(t *testing.T) {
	g, _, uniquenesses := mk2x2(t)
	before := totalLowerBound(g)
	for _, uq := range uniquenesses {
		require.NoError(t, qapmsg.SendMessagesToUniqueness(g, uq))
	}
	for _, uq := range uniquenesses {
		require.NoError(t, qapmsg.SendMessagesToUnary(g, uq))
	}
	after := totalLowerBound(g)
	assert.GreaterOrEqual(t, after, before-core.Epsilon)
}

func TestSendMessagesAssertInvariantWhenDebugAssertsEnabled(t *testing.T) {
	messages.DebugAsserts = true
	defer func() { messages.DebugAsserts = false }()

	g, _, uniquenesses := mk2x2(t)
	for _, uq := range uniquenesses {
		require.NoError(t, qapmsg.SendMessagesToUniqueness(g, uq))
	}
	for _, uq := range uniquenesses {
		require.NoError(t, qapmsg.SendMessagesToUnary(g, uq))
	}
}

func TestPropagatePrimalToUniquenessFindsClaimant(t *testing.T) {
	g, unaries, uniquenesses := mk2x2(t)
	g.Unary(unaries[0]).SetPrimal(0)
	g.Unary(unaries[1]).SetPrimal(1)
	qapmsg.PropagatePrimalToUniqueness(g, uniquenesses[0])
	assert.Equal(t, core.Index(0), g.Uniqueness(uniquenesses[0]).Primal())
	assert.Equal(t, core.Satisfied, qapmsg.CheckPrimalConsistency(g, uniquenesses[0]))
}

func TestPropagatePrimalToUniquenessNoneWhenUnclaimed(t *testing.T) {
	g, unaries, uniquenesses := mk2x2(t)
	g.Unary(unaries[0]).SetPrimal(1)
	g.Unary(unaries[1]).SetPrimal(1)
	qapmsg.PropagatePrimalToUniqueness(g, uniquenesses[0])
	assert.Equal(t, g.Uniqueness(uniquenesses[0]).NoneSlot(), g.Uniqueness(uniquenesses[0]).Primal())
}
