package swipelist

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipekit/swipelist/internal/gesture"
)

// stubAnimation records one Animate call so tests can drive completion
// explicitly instead of waiting on the toolkit's animation engine.
type stubAnimation struct {
	duration  time.Duration
	tick      func(float32)
	done      func()
	finished  bool
	cancelled bool
}

type stubAnimator struct {
	anims []*stubAnimation
}

func (a *stubAnimator) Animate(d time.Duration, tick func(float32), done func()) func() {
	anim := &stubAnimation{duration: d, tick: tick, done: done}
	a.anims = append(a.anims, anim)
	return func() { anim.cancelled = true }
}

// runAll completes every pending animation in submission order, including
// ones queued by completion callbacks.
func (a *stubAnimator) runAll() {
	for i := 0; i < len(a.anims); i++ {
		anim := a.anims[i]
		if anim.finished || anim.cancelled {
			continue
		}
		anim.finished = true
		anim.tick(0.5)
		anim.tick(1)
		if anim.done != nil {
			anim.done()
		}
	}
}

// last returns the most recently submitted animation.
func (a *stubAnimator) last() *stubAnimation {
	return a.anims[len(a.anims)-1]
}

// harness wires a SwipeList to a stub animator, a recorded deferred
// queue, and a manual clock.
type harness struct {
	sl       *SwipeList
	anim     *stubAnimator
	deferred []func()
	now      time.Time
}

func newHarness(t *testing.T, rows int) *harness {
	t.Helper()
	test.NewApp()

	sl := NewSwipeList(
		func() int { return rows },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(fmt.Sprintf("row %d", id))
		},
	)
	sl.StableID = func(index int) string { return fmt.Sprintf("id-%d", index) }

	h := &harness{
		sl:   sl,
		anim: &stubAnimator{},
		now:  time.Unix(50, 0),
	}
	sl.anim = h.anim
	sl.deferCall = func(_ time.Duration, fn func()) {
		h.deferred = append(h.deferred, fn)
	}
	sl.clock = func() time.Time { return h.now }

	win := test.NewWindow(sl)
	win.Resize(fyne.NewSize(400, 240))
	t.Cleanup(win.Close)

	return h
}

// row materializes and binds the wrapper row for an index, sized like a
// laid out list row.
func (h *harness) row(index int) *swipeRow {
	r := h.sl.List.CreateItem().(*swipeRow)
	h.sl.List.UpdateItem(index, r)
	r.Resize(fyne.NewSize(400, 40))
	return r
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
}

func (h *harness) runDeferred() {
	pending := h.deferred
	h.deferred = nil
	for _, fn := range pending {
		fn()
	}
}

// flick performs a committed swipe on the row: latch at 40 points, then
// 150 points of travel in 100ms (1500 points/s).
func (h *harness) flick(r *swipeRow) {
	h.sl.pointerDown(r, fyne.NewPos(50, 100))
	h.advance(20 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(90, 100), fyne.Delta{DX: 40})
	h.advance(50 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(165, 100), fyne.Delta{DX: 75})
	h.advance(50 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(240, 100), fyne.Delta{DX: 75})
	h.sl.pointerUp()
}

func TestSwipeList_CommitFlow(t *testing.T) {
	h := newHarness(t, 5)
	var swiped []string
	h.sl.SetOnRowSwiped(func(list *SwipeList, row fyne.CanvasObject, index int, id string) {
		assert.Same(t, h.sl, list)
		swiped = append(swiped, fmt.Sprintf("%d/%s", index, id))
	})

	r := h.row(3)
	h.sl.pointerDown(r, fyne.NewPos(50, 100))
	assert.False(t, h.sl.IsSwiping())

	h.advance(20 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(90, 100), fyne.Delta{DX: 40})
	assert.True(t, h.sl.IsSwiping())

	h.advance(50 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(165, 100), fyne.Delta{DX: 75})
	assert.InDelta(t, 75*0.75, r.offset, 0.001)
	assert.InDelta(t, 1-75.0/400, r.opacity, 0.001)

	h.advance(50 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(240, 100), fyne.Delta{DX: 75})
	h.sl.pointerUp()

	// Committed: input blocked, taps detached, listener not yet called.
	assert.False(t, h.sl.IsSwiping())
	assert.True(t, h.sl.interp.Blocked())
	assert.True(t, h.sl.taps.detached)
	assert.Empty(t, swiped)

	// A new pointer-down is ignored entirely while blocked.
	other := h.row(1)
	h.sl.pointerDown(other, fyne.NewPos(10, 10))
	assert.Equal(t, gesture.PhaseCommitting, h.sl.interp.Phase())

	h.anim.runAll()

	// Animation done: row fully off-screen, listener notified once, taps
	// restored, but the deferred reset still blocks input.
	assert.Equal(t, []string{"3/id-3"}, swiped)
	assert.InDelta(t, 400, r.offset, 0.001)
	assert.False(t, h.sl.taps.detached)
	assert.True(t, h.sl.interp.Blocked())
	require.Len(t, h.deferred, 1)

	h.runDeferred()
	assert.Equal(t, float32(0), r.offset)
	assert.Equal(t, float32(1), r.opacity)
	assert.False(t, h.sl.interp.Blocked())

	// Input works again.
	h.sl.pointerDown(other, fyne.NewPos(10, 10))
	assert.Equal(t, gesture.PhaseArmed, h.sl.interp.Phase())
}

func TestSwipeList_SnapBackFlow(t *testing.T) {
	h := newHarness(t, 5)
	swipes := 0
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) { swipes++ })

	r := h.row(3)
	h.sl.pointerDown(r, fyne.NewPos(100, 100))
	h.advance(100 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(150, 100), fyne.Delta{DX: 50})
	require.True(t, h.sl.IsSwiping())

	// Drift slowly to 55 points past the re-baselined down point.
	h.advance(300 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(175, 100), fyne.Delta{DX: 25})
	h.advance(300 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(205, 100), fyne.Delta{DX: 30})
	assert.InDelta(t, 55*0.75, r.offset, 0.001)

	h.sl.pointerUp()
	assert.False(t, h.sl.IsSwiping())
	assert.Equal(t, gesture.PhaseSnapping, h.sl.interp.Phase())
	assert.True(t, h.sl.taps.detached)

	h.anim.runAll()

	assert.Equal(t, float32(0), r.offset)
	assert.Equal(t, float32(1), r.opacity)
	assert.False(t, h.sl.taps.detached)
	assert.Equal(t, gesture.PhaseIdle, h.sl.interp.Phase())
	assert.Zero(t, swipes, "a reverted swipe must not notify")
	assert.Empty(t, h.deferred)
}

func TestSwipeList_DecorationRowsRejected(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})
	h.sl.SetDecorationRows(1, 1)

	for _, index := range []int{0, 4} {
		h.sl.pointerDown(h.row(index), fyne.NewPos(10, 10))
		assert.Equal(t, gesture.PhaseIdle, h.sl.interp.Phase(), "row %d is decoration", index)
		assert.Nil(t, h.sl.active)
	}

	h.sl.pointerDown(h.row(2), fyne.NewPos(10, 10))
	assert.Equal(t, gesture.PhaseArmed, h.sl.interp.Phase())
}

func TestSwipeList_IgnoredKindRejected(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})
	h.sl.KindOf = func(index int) int {
		if index == 2 {
			return 7
		}
		return 0
	}
	h.sl.SetIgnoredKind(7)

	h.sl.pointerDown(h.row(2), fyne.NewPos(10, 10))
	assert.Equal(t, gesture.PhaseIdle, h.sl.interp.Phase())

	h.sl.pointerDown(h.row(1), fyne.NewPos(10, 10))
	assert.Equal(t, gesture.PhaseArmed, h.sl.interp.Phase())

	h.sl.pointerUp()
	h.sl.SetIgnoredKind(KindNone)
	h.sl.pointerDown(h.row(2), fyne.NewPos(10, 10))
	assert.Equal(t, gesture.PhaseArmed, h.sl.interp.Phase())
}

func TestSwipeList_NoListenerNoSession(t *testing.T) {
	h := newHarness(t, 5)

	h.sl.pointerDown(h.row(2), fyne.NewPos(10, 10))
	assert.Equal(t, gesture.PhaseIdle, h.sl.interp.Phase())
	assert.Nil(t, h.sl.active)
}

func TestSwipeList_VerticalDragScrollsNotSwipes(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})

	r := h.row(2)
	h.sl.pointerDown(r, fyne.NewPos(100, 50))
	h.advance(20 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(100, 95), fyne.Delta{DY: 45})
	assert.Equal(t, gesture.PhaseScrolling, h.sl.interp.Phase())

	// Horizontal travel afterwards must not move the row.
	h.advance(20 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(300, 95), fyne.Delta{DX: 200})
	assert.False(t, h.sl.IsSwiping())
	assert.Equal(t, float32(0), r.offset)

	h.sl.pointerUp()
	assert.Equal(t, gesture.PhaseIdle, h.sl.interp.Phase())
}

func TestSwipeList_CancelResolvesLikeRelease(t *testing.T) {
	h := newHarness(t, 5)
	swipes := 0
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) { swipes++ })

	r := h.row(2)
	h.sl.pointerDown(r, fyne.NewPos(0, 100))
	h.advance(20 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(40, 100), fyne.Delta{DX: 40})
	h.advance(40 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(240, 100), fyne.Delta{DX: 200})

	// 200 points of travel is past width/2.5; cancellation still commits.
	h.sl.pointerCancel()
	assert.Equal(t, gesture.PhaseCommitting, h.sl.interp.Phase())

	h.anim.runAll()
	h.runDeferred()
	assert.Equal(t, 1, swipes)
}

func TestSwipeList_SameListenerTwiceNotifiesOnce(t *testing.T) {
	h := newHarness(t, 5)
	swipes := 0
	listener := func(*SwipeList, fyne.CanvasObject, int, string) { swipes++ }
	h.sl.SetOnRowSwiped(listener)
	h.sl.SetOnRowSwiped(listener)

	h.flick(h.row(2))
	h.anim.runAll()
	h.runDeferred()

	assert.Equal(t, 1, swipes)
}

func TestSwipeList_TapListenerDetachedDuringResolution(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})
	var taps []int
	h.sl.SetOnRowTapped(func(index int) { taps = append(taps, index) })

	r := h.row(2)
	h.flick(r)

	// The toolkit's synthetic tap at the end of the gesture must not
	// reach the host.
	h.sl.rowTapped(r)
	assert.Empty(t, taps)

	h.anim.runAll()
	h.runDeferred()

	h.sl.rowTapped(r)
	assert.Equal(t, []int{2}, taps)
}

func TestSwipeList_SetOnRowTappedNilKeepsListener(t *testing.T) {
	h := newHarness(t, 5)
	taps := 0
	h.sl.SetOnRowTapped(func(int) { taps++ })
	h.sl.SetOnRowTapped(nil)

	h.sl.rowTapped(h.row(1))
	assert.Equal(t, 1, taps)
}

func TestSwipeList_NewDownDuringSnapBackSettlesImmediately(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})

	r := h.row(2)
	h.sl.pointerDown(r, fyne.NewPos(100, 100))
	h.advance(100 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(150, 100), fyne.Delta{DX: 50})
	h.advance(400 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(200, 100), fyne.Delta{DX: 50})
	h.sl.pointerUp()
	require.Equal(t, gesture.PhaseSnapping, h.sl.interp.Phase())
	snapAnim := h.anim.last()

	// The next touch beats the snap-back: the animation is cancelled and
	// its completion duties run synchronously so the new session starts
	// from settled state.
	h.advance(50 * time.Millisecond)
	h.sl.pointerDown(r, fyne.NewPos(60, 60))
	assert.True(t, snapAnim.cancelled)
	assert.Equal(t, float32(0), r.offset)
	assert.Equal(t, float32(1), r.opacity)
	assert.False(t, h.sl.taps.detached)
	assert.Equal(t, gesture.PhaseArmed, h.sl.interp.Phase())
}

func TestSwipeList_RecycledRowDropsSwipeVisuals(t *testing.T) {
	h := newHarness(t, 5)

	r := h.row(1)
	r.setOffset(120)
	r.setOpacity(0.5)

	// Rebinding to new content must not inherit the offset.
	h.sl.List.UpdateItem(4, r)
	assert.Equal(t, float32(0), r.offset)
	assert.Equal(t, float32(1), r.opacity)
	assert.Equal(t, "id-4", r.stableID)

	// Unless the row is the one a swipe animation currently owns.
	r.setOffset(120)
	h.sl.animating = r
	h.sl.List.UpdateItem(0, r)
	assert.Equal(t, float32(120), r.offset)
}

func TestSwipeList_RowAt(t *testing.T) {
	h := newHarness(t, 5)

	height := h.sl.rowHeight()
	require.Greater(t, height, float32(0))

	assert.Equal(t, 0, h.sl.RowAt(height/2))
	assert.Equal(t, 2, h.sl.RowAt(height*2+1))
	assert.Equal(t, 4, h.sl.RowAt(height*5-1))
	assert.Equal(t, -1, h.sl.RowAt(height*5+1), "below the last row")
	assert.Equal(t, -1, h.sl.RowAt(-1))
}

func TestSwipeList_OpacityFloorDuringDeepSwipe(t *testing.T) {
	h := newHarness(t, 5)
	h.sl.SetOnRowSwiped(func(*SwipeList, fyne.CanvasObject, int, string) {})

	r := h.row(2)
	h.sl.pointerDown(r, fyne.NewPos(0, 100))
	h.advance(20 * time.Millisecond)
	h.sl.pointerMove(r, fyne.NewPos(40, 100), fyne.Delta{DX: 40})

	prev := float32(1)
	for i, x := range []float32{120, 200, 300, 420} {
		h.advance(30 * time.Millisecond)
		h.sl.pointerMove(r, fyne.NewPos(40+x, 100), fyne.Delta{DX: 0})
		assert.LessOrEqual(t, r.opacity, prev, "step %d", i)
		assert.GreaterOrEqual(t, r.opacity, gesture.MinOpacity)
		prev = r.opacity
	}
	assert.Equal(t, gesture.MinOpacity, prev)
}
