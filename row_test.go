package swipelist

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// highlightAlpha reads the rendered press-highlight alpha for a row.
func highlightAlpha(r *swipeRow) uint8 {
	_, _, _, a := r.highlight.FillColor.RGBA()
	return uint8(a >> 8)
}

func TestSwipeRow_SelectorFadesOutAfterLatch(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})

	r := h.row(2)
	h.sl.pointerDown(r, fyne.NewPos(0, 100))
	require.True(t, r.pressed)
	require.Greater(t, highlightAlpha(r), uint8(0), "pressed row shows the highlight")

	h.advance(20 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(40, 100), fyne.Delta{DX: 40})
	require.True(t, h.sl.IsSwiping())

	fade := h.anim.last()
	assert.Equal(t, SelectorFadeDuration, fade.duration)

	// The highlight must stay visible while its alpha animates out, not
	// vanish the instant the swipe latches.
	fade.tick(0.01)
	assert.True(t, r.pressed)
	assert.InDelta(t, 0.99, r.selectorAlpha, 0.001)
	assert.Greater(t, highlightAlpha(r), uint8(0))

	fade.tick(0.5)
	assert.Greater(t, highlightAlpha(r), uint8(0))

	fade.tick(1)
	assert.Equal(t, uint8(0), highlightAlpha(r))
}

func TestSwipeRow_SelectorFadesBackInOnRelease(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})

	r := h.row(2)
	h.sl.pointerDown(r, fyne.NewPos(100, 100))
	h.advance(100 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(150, 100), fyne.Delta{DX: 50})
	fadeOut := h.anim.last()
	fadeOut.tick(1)
	require.Equal(t, uint8(0), highlightAlpha(r))

	// A reverted swipe fades the highlight back in before the snap-back
	// settles the row.
	h.advance(400 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(200, 100), fyne.Delta{DX: 50})
	h.sl.pointerUp()

	var fadeIn *stubAnimation
	for _, anim := range h.anim.anims {
		if anim.duration == SelectorFadeDuration && anim != fadeOut {
			fadeIn = anim
		}
	}
	require.NotNil(t, fadeIn, "release must start a highlight fade-in")

	fadeIn.tick(0.5)
	assert.InDelta(t, 0.5, r.selectorAlpha, 0.001)
	assert.Greater(t, highlightAlpha(r), uint8(0))
}

func TestWithAlpha(t *testing.T) {
	// A premultiplied source must be un-premultiplied before scaling so
	// translucent colours keep their channel values.
	src := color.RGBA{R: 88, G: 108, B: 131, A: 140} // 160/197/239 at alpha 140
	got := withAlpha(src, 1).(color.NRGBA)
	assert.InDelta(t, 160, int(got.R), 1)
	assert.InDelta(t, 197, int(got.G), 1)
	assert.InDelta(t, 239, int(got.B), 1)
	assert.Equal(t, uint8(140), got.A)

	half := withAlpha(color.NRGBA{R: 10, G: 20, B: 30, A: 140}, 0.5).(color.NRGBA)
	assert.Equal(t, uint8(70), half.A)
	assert.Equal(t, uint8(10), half.R)

	assert.Equal(t, color.Transparent, withAlpha(color.White, 0))
	full := withAlpha(color.NRGBA{A: 200}, 2).(color.NRGBA)
	assert.Equal(t, uint8(200), full.A, "factor is clamped to 1")
}
