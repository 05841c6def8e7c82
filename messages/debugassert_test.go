package messages_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dmpsolve/core"
	"github.com/katalvlaran/dmpsolve/messages"
)

func TestCheckKernelDisabledByDefault(t *testing.T) {
	assert.False(t, messages.DebugAsserts)
	assert.NoError(t, messages.CheckKernel("test.kernel", 5, 0))
}

func TestCheckKernelFlaggedWhenEnabled(t *testing.T) {
	messages.DebugAsserts = true
	defer func() { messages.DebugAsserts = false }()

	err := messages.CheckKernel("test.kernel", 5, 0)
	var violation *core.InvariantViolationError
	assert.True(t, errors.As(err, &violation))
	assert.ErrorIs(t, err, core.ErrInvariant)
}

func TestCheckKernelAllowsNonDecreaseWhenEnabled(t *testing.T) {
	messages.DebugAsserts = true
	defer func() { messages.DebugAsserts = false }()

	assert.NoError(t, messages.CheckKernel("test.kernel", 5, 5))
	assert.NoError(t, messages.CheckKernel("test.kernel", 5, 6))
}
