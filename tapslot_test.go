package swipelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapSlot_DeliversToRegisteredListener(t *testing.T) {
	var slot tapSlot
	var got []int

	assert.False(t, slot.deliver(1), "no listener yet")

	slot.register(func(index int) { got = append(got, index) })
	assert.True(t, slot.deliver(3))
	assert.Equal(t, []int{3}, got)
}

func TestTapSlot_NilRegistrationKeepsRealListener(t *testing.T) {
	var slot tapSlot
	calls := 0
	slot.register(func(int) { calls++ })

	// A nil registration is an explicit no-op, not a forget.
	slot.register(nil)
	assert.True(t, slot.deliver(0))
	assert.Equal(t, 1, calls)
}

func TestTapSlot_DetachSuppressesWithoutForgetting(t *testing.T) {
	var slot tapSlot
	calls := 0
	slot.register(func(int) { calls++ })

	slot.detach()
	assert.False(t, slot.attached())
	assert.False(t, slot.deliver(2))
	assert.Equal(t, 0, calls)

	slot.reattach()
	assert.True(t, slot.attached())
	assert.True(t, slot.deliver(2))
	assert.Equal(t, 1, calls)
}

func TestTapSlot_RegistrationDuringDetachTakesEffectOnReattach(t *testing.T) {
	var slot tapSlot
	first, second := 0, 0
	slot.register(func(int) { first++ })

	slot.detach()
	slot.register(func(int) { second++ })
	assert.False(t, slot.deliver(0), "still detached")

	slot.reattach()
	assert.True(t, slot.deliver(0))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestTapSlot_RepeatedDetachReattachIdempotent(t *testing.T) {
	var slot tapSlot
	calls := 0
	slot.register(func(int) { calls++ })

	slot.detach()
	slot.detach()
	slot.reattach()
	slot.reattach()

	assert.True(t, slot.deliver(0))
	assert.Equal(t, 1, calls)
}
