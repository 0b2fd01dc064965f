package pin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwin/pinwin/internal/model"
)

func TestToggle_PinThenUnpin(t *testing.T) {
	desk := newFakeDesktop()
	desk.add(42, "Notepad", true)
	c := NewController(desk, desk)

	res := c.Toggle(42)
	assert.True(t, res.Pinned)
	assert.Equal(t, model.Handle(42), res.Handle)
	assert.Equal(t, "Notepad", res.Title)
	assert.True(t, desk.windows[42].topmost)
	assert.True(t, c.IsPinned(42))
	assert.Equal(t, []model.Handle{42}, c.Tracked())

	res = c.Toggle(42)
	assert.False(t, res.Pinned)
	assert.False(t, desk.windows[42].topmost)
	assert.False(t, c.IsPinned(42))
	assert.Empty(t, c.Tracked())
}

func TestToggle_DoubleToggleRestoresAttribute(t *testing.T) {
	for _, initial := range []bool{false, true} {
		desk := newFakeDesktop()
		desk.add(7, "Editor", true).topmost = initial
		c := NewController(desk, desk)

		c.Toggle(7)
		c.Toggle(7)

		assert.Equal(t, initial, desk.windows[7].topmost,
			"double toggle must restore the attribute (initial=%v)", initial)
	}
}

func TestIsPinned_DetectsExternalPin(t *testing.T) {
	desk := newFakeDesktop()
	desk.add(9, "Calculator", true)
	c := NewController(desk, desk)

	// Attribute flipped by means outside this process: the tracking set
	// stays empty but the OS truth wins.
	desk.windows[9].topmost = true

	assert.True(t, c.IsPinned(9))
	assert.Empty(t, c.Tracked())
}

func TestToggle_ExternallyPinnedWindowUnpins(t *testing.T) {
	desk := newFakeDesktop()
	desk.add(9, "Calculator", true)
	desk.windows[9].topmost = true
	c := NewController(desk, desk)

	// The toggle decision comes from the OS attribute, not the set, so
	// a window pinned elsewhere toggles to unpinned.
	res := c.Toggle(9)
	assert.False(t, res.Pinned)
	assert.False(t, desk.windows[9].topmost)
}

func TestToggleForeground(t *testing.T) {
	desk := newFakeDesktop()
	desk.add(42, "Notepad", true)
	desk.foreground = 42
	c := NewController(desk, desk)

	res, ok := c.ToggleForeground()
	require.True(t, ok)
	assert.True(t, res.Pinned)
	assert.Equal(t, model.Handle(42), res.Handle)
}

func TestToggleForeground_NoFocusedWindow(t *testing.T) {
	desk := newFakeDesktop()
	desk.add(42, "Notepad", true)
	c := NewController(desk, desk)

	_, ok := c.ToggleForeground()
	assert.False(t, ok)
	assert.Zero(t, desk.setCalls, "no z-order request may be issued")
	assert.Empty(t, c.Tracked())
}

func TestToggle_StaleHandleIsOptimistic(t *testing.T) {
	desk := newFakeDesktop()
	c := NewController(desk, desk)

	// Handle 1000 closed between enumeration and toggle. The reorder
	// request fails; the reported state is the intent regardless.
	res := c.Toggle(1000)
	assert.True(t, res.Pinned)
	assert.True(t, c.IsPinned(1000))
	assert.Equal(t, []model.Handle{1000}, c.Tracked())
}

func TestUnpinAll(t *testing.T) {
	desk := newFakeDesktop()
	desk.add(1, "One", true)
	desk.add(2, "Two", true)
	desk.add(3, "Three", true)
	c := NewController(desk, desk)

	c.Toggle(1)
	c.Toggle(2)
	desk.windows[3].topmost = true // pinned by someone else

	n := c.UnpinAll()
	assert.Equal(t, 2, n)
	assert.False(t, desk.windows[1].topmost)
	assert.False(t, desk.windows[2].topmost)
	assert.True(t, desk.windows[3].topmost, "externally pinned windows stay untouched")
	assert.Empty(t, c.Tracked())
}
