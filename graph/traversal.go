package graph

import "github.com/katalvlaran/dmpsolve/core"

// TraversalOrder returns a breadth-first visiting order over g's unaries,
// following pairwise adjacency (both ForwardEdges and BackwardEdges from
// each unary). Disconnected components are covered by restarting the walk
// from the lowest-indexed unvisited unary, so every unary in g appears
// exactly once in the result regardless of topology.
//
// This gives solver.NewGMSolver a traversal-based default sweep order
// instead of raw index order: for an acyclic pairwise topology (a chain,
// a tree) visiting unaries in BFS order keeps each pairwise edge's
// two endpoints close together in the sweep, which is what lets a single
// forward+backward pass propagate a min-marginal across the whole
// component instead of needing many more iterations to converge.
func (g *Graph) TraversalOrder() []int {
	n := g.NumUnaries()
	order := make([]int, 0, n)
	visited := make([]bool, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			order = append(order, u)
			for _, pwIdx := range g.Edges(u, core.Forward) {
				visited, queue = visitPairwiseNeighbor(g, pwIdx, u, visited, queue)
			}
			for _, pwIdx := range g.Edges(u, core.Backward) {
				visited, queue = visitPairwiseNeighbor(g, pwIdx, u, visited, queue)
			}
		}
	}
	return order
}

func visitPairwiseNeighbor(g *Graph, pwIdx, from int, visited []bool, queue []int) ([]bool, []int) {
	e0, e1 := g.PairwiseEndpoints(pwIdx)
	other := e0
	if e0 == from {
		other = e1
	}
	if !visited[other] {
		visited[other] = true
		queue = append(queue, other)
	}
	return visited, queue
}
