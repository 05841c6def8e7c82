package solver

import (
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
)

func usagef(format string, args ...any) error {
	return fmt.Errorf("solver: %w: "+format, append([]any{core.ErrUsage}, args...)...)
}
