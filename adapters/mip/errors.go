package mip

import (
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
)

func disabledf(format string, args ...any) error {
	return fmt.Errorf("mip: %w: "+format, append([]any{core.ErrFeatureDisabled}, args...)...)
}

func usagef(format string, args ...any) error {
	return fmt.Errorf("mip: %w: "+format, append([]any{core.ErrUsage}, args...)...)
}
