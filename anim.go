package swipelist

import (
	"time"

	"fyne.io/fyne/v2"
)

// Animation timing constants
const (
	// SwipeOutDuration is how long a committed row takes to leave the
	// screen, and how long a rejected row takes to snap back.
	SwipeOutDuration = 250 * time.Millisecond

	// SelectorFadeDuration is how long the press highlight takes to fade
	// out when a swipe latches and back in when the pointer lifts.
	SelectorFadeDuration = 500 * time.Millisecond

	// ResetDelay is the pause between the swipe callback and the visual
	// reset of the dismissed row. Resetting immediately causes a visible
	// flash when the list reuses the row for new content.
	ResetDelay = 50 * time.Millisecond
)

// animator runs a timed animation. tick receives progress in [0, 1] and
// is guaranteed a final call with 1; done runs exactly once after that
// final tick unless the animation is cancelled first. The returned
// function cancels the animation.
type animator interface {
	Animate(d time.Duration, tick func(progress float32), done func()) (cancel func())
}

// fyneAnimator drives animations through the toolkit's animation engine,
// which delivers ticks on the UI event loop.
type fyneAnimator struct{}

func (fyneAnimator) Animate(d time.Duration, tick func(float32), done func()) func() {
	finished := false
	anim := fyne.NewAnimation(d, func(p float32) {
		tick(p)
		if p >= 1 && !finished {
			finished = true
			if done != nil {
				done()
			}
		}
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
	return anim.Stop
}

// scheduleOnMain runs fn on the UI event loop after the given delay.
func scheduleOnMain(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}
