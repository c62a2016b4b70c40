package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-pinbo/ROBDD/internal/registry"
)

func TestInternIsStableAndAppendOnly(t *testing.T) {
	r := registry.New()
	a := r.Intern("x")
	b := r.Intern("y")
	again := r.Intern("x")

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, a, again, "re-interning an existing key must return the same uniqid")
}

func TestInternDistinguishesIndices(t *testing.T) {
	r := registry.New()
	a := r.Intern("data", 2, 3)
	b := r.Intern("data", 2, 4)
	assert.NotEqual(t, a, b)
}

func TestLookupMissingKey(t *testing.T) {
	r := registry.New()
	_, ok := r.Lookup("unknown")
	assert.False(t, ok)
}

func TestNameRoundTrip(t *testing.T) {
	r := registry.New()
	id := r.Intern("data", 7)
	name, indices, ok := r.Name(id)
	assert.True(t, ok)
	assert.Equal(t, "data", name)
	assert.Equal(t, []int{7}, indices)
}

func TestOrderIsAscending(t *testing.T) {
	r := registry.New()
	r.Intern("c")
	r.Intern("a")
	r.Intern("b")
	assert.Equal(t, []int{1, 2, 3}, r.Order())
}

func TestSuggestRanksCloseMatches(t *testing.T) {
	r := registry.New()
	r.Intern("enable")
	r.Intern("enabled")
	r.Intern("disable")

	suggestions := r.Suggest("enabl")
	assert.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions, "enable")
}
