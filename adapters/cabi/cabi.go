// Package cabi is an opaque-handle façade over graph/solver, shaped the way
// a real cgo export layer would be (no raw Go pointers cross the boundary,
// every call takes/returns a Handle) without actually importing "C" — so it
// can be exercised and tested like any other Go package.
//
// This is the one package in the module where concurrent access to shared
// state is a real concern: multiple foreign callers may hold handles from
// different goroutines, unlike graph/solver/messages which are
// single-threaded-cooperative per instance. The registry is therefore
// guarded by a sync.RWMutex, and handle allocation uses sync/atomic,
// mirroring core.Graph's muVert/muEdgeAdj split-lock convention and
// methods_clone.go's atomic id-counter.
package cabi

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
	"github.com/katalvlaran/dmpsolve/solver"
)

// Handle is an opaque reference to a graph or solver owned by this package.
// The zero Handle is never issued and always resolves to "not found".
type Handle uint64

type entry struct {
	graph *graph.Graph
	solv  solver.Solver
}

var (
	mu       sync.RWMutex
	nextID   uint64
	registry = make(map[Handle]*entry)
)

func alloc(e *entry) Handle {
	h := Handle(atomic.AddUint64(&nextID, 1))
	mu.Lock()
	registry[h] = e
	mu.Unlock()
	return h
}

func lookup(h Handle) (*entry, bool) {
	mu.RLock()
	e, ok := registry[h]
	mu.RUnlock()
	return e, ok
}

// NewGraph allocates a new graph of the given problem class and returns a
// handle to it.
func NewGraph(class graph.ProblemClass) Handle {
	return alloc(&entry{graph: graph.NewGraph(class)})
}

// Release forgets a handle. Releasing an unknown or already-released handle
// is a no-op, matching the forgiving-double-free stance of most C-ABI
// resource-release functions.
func Release(h Handle) {
	mu.Lock()
	delete(registry, h)
	mu.Unlock()
}

// Graph resolves h to its underlying *graph.Graph, or reports not-found.
func Graph(h Handle) (*graph.Graph, error) {
	e, ok := lookup(h)
	if !ok || e.graph == nil {
		return nil, usagef("unknown graph handle %d", h)
	}
	return e.graph, nil
}

// BindSolver attaches a constructed solver.Solver to the graph handle h so
// later calls can reach it through the same opaque Handle rather than a
// second registry entry. Binding twice replaces the previous solver.
func BindSolver(h Handle, s solver.Solver) error {
	mu.Lock()
	defer mu.Unlock()
	e, ok := registry[h]
	if !ok {
		return usagef("unknown graph handle %d", h)
	}
	e.solv = s
	return nil
}

// Solver resolves h to its bound solver.Solver, or reports not-found.
func Solver(h Handle) (solver.Solver, error) {
	e, ok := lookup(h)
	if !ok || e.solv == nil {
		return nil, usagef("handle %d has no bound solver", h)
	}
	return e.solv, nil
}

// LowerBound is a convenience export: resolve h's solver and read its
// current dual bound in one call, the shape a cgo export function takes
// (handle in, primitive out, error out-of-band).
func LowerBound(h Handle) (core.Cost, error) {
	s, err := Solver(h)
	if err != nil {
		return 0, err
	}
	return s.LowerBound(), nil
}
