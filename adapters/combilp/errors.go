package combilp

import (
	"fmt"

	"github.com/katalvlaran/dmpsolve/core"
)

func structuralf(format string, args ...any) error {
	return fmt.Errorf("combilp: %w: "+format, append([]any{core.ErrStructural}, args...)...)
}

func disabledf(format string, args ...any) error {
	return fmt.Errorf("combilp: %w: "+format, append([]any{core.ErrFeatureDisabled}, args...)...)
}
