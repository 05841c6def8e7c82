package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
)

// Sentinel detail errors, wrapped with core.ErrStructural / core.ErrUsage /
// core.ErrNotPrepared at the call site so callers can still errors.Is
// against the shared kind while getting a specific message.
var (
	errUnknownUnary      = errors.New("unknown unary index")
	errUnknownPairwise   = errors.New("unknown pairwise index")
	errUnknownUniqueness = errors.New("unknown uniqueness index")
	errUnknownConflict   = errors.New("unknown conflict index")
	errUnknownDetection  = errors.New("unknown detection index")
	errSlotTaken         = errors.New("slot already linked")
	errSlotOutOfRange    = errors.New("slot out of range")
	errDimensionMismatch = errors.New("pairwise dimensions do not match linked unaries")
	errWrongProblemClass = errors.New("link kind not legal for this graph's problem class")
	errAlreadyFinalized  = errors.New("graph already finalized")
	errConflictSlotOrder = errors.New("conflict edges not in ascending slot order")
)

func structuralf(format string, args ...any) error {
	return fmt.Errorf("graph: %w: "+format, append([]any{core.ErrStructural}, args...)...)
}

func usagef(format string, args ...any) error {
	return fmt.Errorf("graph: %w: "+format, append([]any{core.ErrUsage}, args...)...)
}

func notPreparedf(format string, args ...any) error {
	return fmt.Errorf("graph: %w: "+format, append([]any{core.ErrNotPrepared}, args...)...)
}
