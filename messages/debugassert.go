// Package messages holds the one thing the gm, qap, and ct kernel
// packages share without depending on each other: the debug-assertion
// toggle that gates their per-kernel reparametrization-invariant checks.
package messages

import "github.com/katalvlaran/dmpsolve/core"

// DebugAsserts gates the before/after lower-bound comparison every message
// kernel (messages/gm's Receive/Send, messages/qap's
// SendMessagesToUniqueness/SendMessagesToUnary, messages/ct's
// SendMessagesToConflict/SendMessagesToDetection) runs around its own
// reparametrization step. Off by default, the way the teacher's
// BoundAlgo testing knob defaults to its cheapest policy; tests that want
// the check flip it for the duration of the test.
var DebugAsserts = false

// CheckKernel reports an *core.InvariantViolationError if DebugAsserts is
// enabled and after is smaller than before by more than core.Epsilon, and
// nil otherwise.
func CheckKernel(where string, before, after core.Cost) error {
	if !DebugAsserts {
		return nil
	}
	return core.CheckNonDecreasing(where, before, after)
}
