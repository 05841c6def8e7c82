// Package primal implements snapshot/restore of a graph's primal solution,
// grounded on the source's primal_storage: save captures every unary's
// chosen label into a flat slice, and restore writes them back, then
// reconstructs every uniqueness and pairwise factor's primal from the
// restored unary labels rather than snapshotting them directly — cheaper
// to store and guarantees the derived factors stay consistent with
// whatever unary labels were restored.
package primal

import (
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/graph"
)

// Storage holds one saved snapshot of a graph's primal solution: every
// unary's chosen label (GM, QAP) and every detection's on/off state (CT).
// A graph only ever populates the slice relevant to its problem class, so
// the other stays empty and costs nothing to save or restore.
type Storage struct {
	g          *graph.Graph
	labels     []core.Index
	detections []core.Index
}

// NewStorage allocates a Storage bound to g, sized for its current number
// of unaries and detections.
func NewStorage(g *graph.Graph) *Storage {
	return &Storage{
		g:          g,
		labels:     make([]core.Index, g.NumUnaries()),
		detections: make([]core.Index, g.NumDetections()),
	}
}

// Save captures the current primal label of every unary and the current
// on/off state of every detection in the bound graph.
func (s *Storage) Save() {
	if len(s.labels) != s.g.NumUnaries() {
		s.labels = make([]core.Index, s.g.NumUnaries())
	}
	for i := 0; i < s.g.NumUnaries(); i++ {
		s.labels[i] = s.g.Unary(i).Primal()
	}
	if len(s.detections) != s.g.NumDetections() {
		s.detections = make([]core.Index, s.g.NumDetections())
	}
	for i := 0; i < s.g.NumDetections(); i++ {
		s.detections[i] = s.g.Detection(i).Primal()
	}
}

// Restore writes the saved unary labels and detection states back into the
// graph, then derives every uniqueness factor's primal slot (NoneSlot
// unless some linked unary's restored label claims one of its slots),
// every pairwise factor's primal pair (reset, then set from its two
// unaries' restored labels), and every conflict factor's primal slot
// (AllOffSlot unless some linked detection's restored state is on) so the
// whole graph's primal state is self-consistent again.
func (s *Storage) Restore() error {
	if len(s.labels) != s.g.NumUnaries() {
		return fmt.Errorf("primal: %w: saved %d unaries, graph has %d", core.ErrUsage, len(s.labels), s.g.NumUnaries())
	}
	if len(s.detections) != s.g.NumDetections() {
		return fmt.Errorf("primal: %w: saved %d detections, graph has %d", core.ErrUsage, len(s.detections), s.g.NumDetections())
	}
	for i, label := range s.labels {
		s.g.Unary(i).SetPrimal(label)
	}
	for i, state := range s.detections {
		s.g.Detection(i).SetPrimal(state)
	}

	for i := 0; i < s.g.NumUniqueness(); i++ {
		u := s.g.Uniqueness(i)
		u.SetPrimal(u.NoneSlot())
		for slot, e := range s.g.UniquenessEdges(i) {
			if s.g.Unary(e.UnaryIdx).Primal() == e.Label {
				u.SetPrimal(core.Index(slot))
				break
			}
		}
	}

	for i := 0; i < s.g.NumPairwise(); i++ {
		pw := s.g.Pairwise(i)
		pw.ResetPrimal()
		unary0, unary1 := s.g.PairwiseEndpoints(i)
		pw.SetPrimal(s.g.Unary(unary0).Primal(), s.g.Unary(unary1).Primal())
	}

	for i := 0; i < s.g.NumConflicts(); i++ {
		c := s.g.Conflict(i)
		c.SetPrimal(c.AllOffSlot())
		for slot, e := range s.g.ConflictEdges(i) {
			if s.g.Detection(e.DetectionIdx).IsOn() {
				c.SetPrimal(core.Index(slot))
				break
			}
		}
	}

	return nil
}

// Get returns the saved label for unary idx.
func (s *Storage) Get(idx int) core.Index { return s.labels[idx] }

// Set overwrites the saved label for unary idx, without touching the
// graph; used by callers composing a primal solution (e.g. branch-and-
// bound-style search) before calling Restore.
func (s *Storage) Set(idx int, label core.Index) { s.labels[idx] = label }

// GetDetection returns the saved on/off state for detection idx.
func (s *Storage) GetDetection(idx int) core.Index { return s.detections[idx] }

// SetDetection overwrites the saved state for detection idx, without
// touching the graph.
func (s *Storage) SetDetection(idx int, state core.Index) { s.detections[idx] = state }
