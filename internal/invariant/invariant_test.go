package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-pinbo/ROBDD/internal/invariant"
)

func TestPreconditionPassesWhenTrue(t *testing.T) {
	assert.NotPanics(t, func() {
		invariant.Precondition(true, "unreachable")
	})
}

func TestPreconditionPanicsWhenFalse(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, r.(string), "PRECONDITION VIOLATION: boom")
	}()
	invariant.Precondition(false, "boom")
}

func TestPositiveVarRejectsZeroAndNegative(t *testing.T) {
	assert.Panics(t, func() { invariant.PositiveVar(0, "k") })
	assert.Panics(t, func() { invariant.PositiveVar(-1, "k") })
	assert.NotPanics(t, func() { invariant.PositiveVar(1, "k") })
}

func TestVarInRange(t *testing.T) {
	assert.NotPanics(t, func() { invariant.VarInRange(1, 3, "k") })
	assert.NotPanics(t, func() { invariant.VarInRange(3, 3, "k") })
	assert.Panics(t, func() { invariant.VarInRange(0, 3, "k") })
	assert.Panics(t, func() { invariant.VarInRange(4, 3, "k") })
}
