package cabi

import (
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
)

func usagef(format string, args ...any) error {
	return fmt.Errorf("cabi: %w: "+format, append([]any{core.ErrUsage}, args...)...)
}
