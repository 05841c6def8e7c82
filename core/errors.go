package core

import "errors"

// Sentinel error kinds shared across factor, graph, messages, and solver
// packages. Concrete errors returned to callers wrap one of these with
// fmt.Errorf("%w: ...") at the boundary that detects the problem, so callers
// can branch with errors.Is against the kind rather than a package-specific
// string.
var (
	// ErrStructural marks a graph-construction usage error: nodes or links
	// added out of order, duplicate indices, or a link to an unknown node.
	ErrStructural = errors.New("dmpsolve: structural error")

	// ErrNotPrepared marks a Finalize or kernel call made while some factor
	// cost entry is still the NaN "uninitialized" sentinel.
	ErrNotPrepared = errors.New("dmpsolve: not prepared")

	// ErrFeatureDisabled marks a call to an external adapter (MIP, CombiLP)
	// that has no implementation registered.
	ErrFeatureDisabled = errors.New("dmpsolve: feature disabled")

	// ErrUsage marks an out-of-range label/slot or a mutation attempted
	// after Finalize.
	ErrUsage = errors.New("dmpsolve: usage error")

	// ErrInvariant marks a reparametrization invariant breach: a local
	// lower bound decreased by more than Epsilon across a message update.
	// Only ever produced by debug-assertion paths (see messages subpackages).
	ErrInvariant = errors.New("dmpsolve: invariant violation")
)
