// Package dmpsolve is a dual block-coordinate message-passing solver for
// discrete energy minimization over factor graphs.
//
// It implements three problem families, each with its own factor kinds,
// message kernels, and solver:
//
//	GM  — general pairwise graphical models: unary + pairwise factors,
//	      solved by TRW-S style forward/backward sweeps (solver.GMSolver).
//	QAP — quadratic assignment with one-to-one uniqueness constraints:
//	      unary + pairwise + uniqueness factors (solver.QAPSolver).
//	CT  — conflict/detection problems: detection + conflict factors with
//	      a shrinking-weight star message schedule (solver.CTSolver).
//
// Every family shares the same shape: build a graph.Graph of factors and
// links, call Finalize, drive a solver.Solver's Run to tighten a monotone
// non-decreasing dual (lower) bound, then RoundPrimal to derive an integer
// assignment (upper bound). Weak duality — LowerBound() <= UpperBound() —
// holds after every RoundPrimal call, by construction of the message
// kernels in messages/gm, messages/qap, and messages/ct.
//
// Package layout:
//
//	core/       — shared numeric/index types (Cost, Index, Direction,
//	              Consistency) and sentinel error kinds
//	factor/     — Unary, Pairwise, Uniqueness, Conflict, Detection cost
//	              tables: the only places that store NaN-sentineled costs
//	graph/      — the arena-indexed factor graph: staged construction
//	              (Building) finalized once into an immutable adjacency
//	              (Finalized), gated by graph.ProblemClass
//	messages/   — the reparametrization kernels per problem family
//	              (gm, qap, ct), each preserving total energy while
//	              shifting cost mass between overlapping factors
//	primal/     — save/restore of a rounded primal assignment
//	solver/     — the iteration loop, bound bookkeeping, and lifecycle
//	              state machine for each concrete solver
//	adapters/   — optional external escape hatches: an opaque-handle
//	              C-ABI-shaped façade (cabi), an exact-ILP fallback
//	              (mip), and a CombiLP-style decomposition driver
//	              (combilp) — none of these ship a real backend; they
//	              define the interface a caller wires one into
package dmpsolve
