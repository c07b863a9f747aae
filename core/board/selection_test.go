package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_toggleComparison(t *testing.T) {
	var sel Selection

	assert.True(t, sel.toggleComparison(1, true))
	assert.True(t, sel.toggleComparison(2, true))
	assert.Equal(t, []int{1, 2}, sel.Comparison)

	// slot full: rejected, state unchanged
	assert.False(t, sel.toggleComparison(3, true))
	assert.Equal(t, []int{1, 2}, sel.Comparison)

	// re-checking an already selected id is accepted and idempotent
	assert.True(t, sel.toggleComparison(1, true))
	assert.Equal(t, []int{1, 2}, sel.Comparison)

	// unchecking never fails, even for ids not in the slot
	assert.True(t, sel.toggleComparison(9, false))
	assert.True(t, sel.toggleComparison(1, false))
	assert.Equal(t, []int{2}, sel.Comparison)
}

func TestSelection_purge(t *testing.T) {
	sel := Selection{Comparison: []int{4, 7}, Focused: 7}

	sel.purge(7)
	assert.Equal(t, []int{4}, sel.Comparison)
	assert.Equal(t, 0, sel.Focused)

	// focus survives a purge of an unrelated id
	sel.Focused = 4
	sel.purge(3)
	assert.Equal(t, 4, sel.Focused)
	assert.Equal(t, []int{4}, sel.Comparison)
}

func TestSelection_cloneIsIndependent(t *testing.T) {
	sel := Selection{Comparison: []int{1, 2}, Focused: 1}

	c := sel.clone()
	c.Comparison[0] = 9

	assert.Equal(t, []int{1, 2}, sel.Comparison)
}
