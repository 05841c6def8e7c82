// Package combilp is the optional CombiLP-style decomposition driver
// described by spec §6: decompose a large graph into sub-graphs that can be
// solved independently (exactly, via adapters/mip, on the pieces where the
// dual bound is loose) and reconciled back into one primal. Like
// adapters/mip, this package ships no decomposition algorithm — Driver is
// satisfied by whatever external implementation the caller wires in.
//
// A Plan is a static, serializable description of one decomposition: which
// unary indices belong to which sub-graph. It exists so tests (and offline
// tuning tools) have a concrete, YAML-loadable shape to work with instead of
// only an opaque Driver interface.
package combilp

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dmpsolve/graph"
)

// SubGraph names one partition cell by the unary indices it owns.
type SubGraph struct {
	Name         string `yaml:"name"`
	UnaryIndices []int  `yaml:"unary_indices"`
}

// Plan is a static decomposition of a graph's unaries into sub-graphs,
// loadable from YAML for test fixtures and offline-computed partitions.
type Plan struct {
	SubGraphs []SubGraph `yaml:"sub_graphs"`
}

// LoadPlan reads a Plan from a YAML file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("combilp: reading plan %q: %w", path, err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("combilp: parsing plan %q: %w", path, err)
	}
	return &p, nil
}

// Validate reports a StructuralError if the plan's sub-graphs don't
// partition exactly [0, numUnaries) — every index covered once.
func (p *Plan) Validate(numUnaries int) error {
	seen := make([]bool, numUnaries)
	for _, sg := range p.SubGraphs {
		for _, idx := range sg.UnaryIndices {
			if idx < 0 || idx >= numUnaries {
				return structuralf("sub-graph %q references unary %d out of range [0,%d)", sg.Name, idx, numUnaries)
			}
			if seen[idx] {
				return structuralf("unary %d claimed by more than one sub-graph", idx)
			}
			seen[idx] = true
		}
	}
	for idx, ok := range seen {
		if !ok {
			return structuralf("unary %d not covered by any sub-graph in plan", idx)
		}
	}
	return nil
}

// Driver is the external decomposition engine's interface. Decompose splits
// g per plan and solves the loose sub-graphs exactly (typically via
// adapters/mip); Run drives the fixed-point loop of re-solving and
// re-merging sub-graphs until the reconciled primal matches the dual bound
// or no further progress is possible.
type Driver interface {
	// Decompose solves every sub-graph in plan independently and reports
	// whether the union of their primals already matches the dual bound.
	Decompose(ctx context.Context, g *graph.Graph, plan *Plan) (converged bool, err error)
	// Run repeats Decompose-and-reconcile for up to maxRounds rounds.
	Run(ctx context.Context, g *graph.Graph, plan *Plan, maxRounds int) error
}

// ExecuteCombiLP runs d's decomposition loop over g per plan, or fails fast
// with core.ErrFeatureDisabled when d is nil.
func ExecuteCombiLP(ctx context.Context, g *graph.Graph, plan *Plan, d Driver, maxRounds int) error {
	if d == nil {
		return disabledf("no Driver registered")
	}
	if err := plan.Validate(g.NumUnaries()); err != nil {
		return err
	}
	return d.Run(ctx, g, plan, maxRounds)
}
