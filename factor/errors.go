package factor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
)

// errLabelOutOfRange and errSlotOutOfRange name the two flavors of
// out-of-bounds access factor tables guard against; newUsageError wraps
// them together with core.ErrUsage.
var (
	errLabelOutOfRange = errors.New("label out of range")
	errSlotOutOfRange  = errors.New("slot out of range")
)

// newUsageError wraps core.ErrUsage with positional context.
func newUsageError(inner error) error {
	return fmt.Errorf("factor: %w: %w", core.ErrUsage, inner)
}
