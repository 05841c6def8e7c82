package ct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/factor"
	"github.com/katalvlaran/dmpsolve/graph"
	"github.com/katalvlaran/dmpsolve/messages"
	ctmsg "github.com/katalvlaran/dmpsolve/messages/ct"
)

// mkChain builds three detections and two conflicts, detection 1 shared
// between both: conflict 0 = {d0, d1}, conflict 1 = {d1, d2}.
func mkChain(t *testing.T) (*graph.Graph, []int, []int) {
	t.Helper()
	g := graph.NewGraph(graph.CT)
	dets := make([]int, 3)
	for i := range dets {
		idx, err := g.AddDetection()
		require.NoError(t, err)
		g.Detection(idx).Set(factor.On, -2)
		g.Detection(idx).Set(factor.Off, 0)
		dets[i] = idx
	}
	conflicts := make([]int, 2)
	c0, err := g.AddConflict(2)
	require.NoError(t, err)
	c1, err := g.AddConflict(2)
	require.NoError(t, err)
	conflicts[0], conflicts[1] = c0, c1
	for _, c := range conflicts {
		cf := g.Conflict(c)
		cf.Set(0, 0)
		cf.Set(1, 0)
		cf.Set(cf.AllOffSlot(), 0)
	}
	require.NoError(t, g.AddConflictLink(c0, dets[0], 0))
	require.NoError(t, g.AddConflictLink(c0, dets[1], 1))
	require.NoError(t, g.AddConflictLink(c1, dets[1], 0))
	require.NoError(t, g.AddConflictLink(c1, dets[2], 1))
	require.NoError(t, g.Finalize())
	return g, dets, conflicts
}

func totalLowerBound(g *graph.Graph) core.Cost {
	var total core.Cost
	for i := 0; i < g.NumDetections(); i++ {
		total += g.Detection(i).LowerBound()
	}
	for i := 0; i < g.NumConflicts(); i++ {
		total += g.Conflict(i).LowerBound()
	}
	return total
}

func TestSendMessagesPreserveOrGrowLowerBound(t *testing.T) {
	g, _, conflicts := mkChain(t)
	before := totalLowerBound(g)
	for _, c := range conflicts {
		require.NoError(t, ctmsg.SendMessagesToConflict(g, c))
	}
	for _, c := range conflicts {
		require.NoError(t, ctmsg.SendMessagesToDetection(g, c))
	}
	after := totalLowerBound(g)
	assert.GreaterOrEqual(t, after, before-core.Epsilon)
}

func TestSendMessagesAssertInvariantWhenDebugAssertsEnabled(t *testing.T) {
	messages.DebugAsserts = true
	defer func() { messages.DebugAsserts = false }()

	g, _, conflicts := mkChain(t)
	for _, c := range conflicts {
		require.NoError(t, ctmsg.SendMessagesToConflict(g, c))
	}
	for _, c := range conflicts {
		require.NoError(t, ctmsg.SendMessagesToDetection(g, c))
	}
}

func TestPropagatePrimalRoundTrip(t *testing.T) {
	g, dets, conflicts := mkChain(t)
	for _, d := range dets {
		g.Detection(d).RoundPrimal()
	}
	for _, c := range conflicts {
		ctmsg.PropagatePrimalToConflict(g, c)
	}
	for _, c := range conflicts {
		assert.Equal(t, core.Satisfied, ctmsg.CheckPrimalConsistency(g, c))
	}
}

func TestPropagatePrimalToDetectionsTurnsOffLosers(t *testing.T) {
	g, dets, conflicts := mkChain(t)
	g.Conflict(conflicts[0]).SetPrimal(0) // detection 0 wins the slot
	ctmsg.PropagatePrimalToDetections(g, conflicts[0])
	assert.Equal(t, factor.Off, g.Detection(dets[1]).Primal())
}

func TestAllOffPropagatesToAllOffSlot(t *testing.T) {
	g, dets, conflicts := mkChain(t)
	g.Detection(dets[0]).SetPrimal(factor.Off)
	g.Detection(dets[1]).SetPrimal(factor.Off)
	ctmsg.PropagatePrimalToConflict(g, conflicts[0])
	assert.Equal(t, g.Conflict(conflicts[0]).AllOffSlot(), g.Conflict(conflicts[0]).Primal())
}
