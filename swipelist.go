package swipelist

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/swipekit/swipelist/internal/gesture"
)

// KindNone is the default ignored row kind; no kind matches it, so every
// row is swipeable until SetIgnoredKind is called.
const KindNone = -1

// RowSwipedFunc is notified after a row has been fully swiped away and
// its dismiss animation finished. index and stableID identify the item as
// captured at pointer-down; row is the canvas object that displayed it
// and may already be recycled for other content.
type RowSwipedFunc func(list *SwipeList, row fyne.CanvasObject, index int, stableID string)

// SwipeList is a widget.List whose rows can be dismissed with a
// horizontal swipe. Vertical drags scroll the list as usual; once a drag
// is classified as horizontal the touched row follows the pointer with a
// damped offset and a fade, and on release either animates off-screen
// (notifying the registered swipe listener) or snaps back.
//
// All methods must be called from the Fyne event loop; the widget keeps
// no locks of its own.
type SwipeList struct {
	widget.List

	// StableID supplies an identity for a row's data that survives view
	// recycling. When nil, the index itself is used, which is only safe
	// for lists that never reorder.
	StableID func(index int) string

	// KindOf tags rows with an application kind so one kind can be made
	// non-swipeable with SetIgnoredKind. Kinds must be non-negative.
	KindOf func(index int) int

	// MinSwipeDistance, SpeedDamping and SwipeVelocityThreshold tune the
	// gesture. Zero values fall back to the stock feel. Changes apply
	// from the next pointer-down.
	MinSwipeDistance       float32
	SpeedDamping           float32
	SwipeVelocityThreshold float32

	interp    *gesture.Interpreter
	taps      tapSlot
	onSwiped  RowSwipedFunc
	active    *swipeRow
	animating *swipeRow

	ignoredKind  int
	leadingRows  int
	trailingRows int

	anim       animator
	deferCall  func(time.Duration, func())
	cancelSnap func()
	clock      func() time.Time
}

// NewSwipeList creates a swipeable list from the widget.List constructor
// triple. createItem builds the user content for one row; updateItem
// rebinds it to an item index. The wrapper row the list actually manages
// is invisible to both callbacks.
func NewSwipeList(length func() int, createItem func() fyne.CanvasObject, updateItem func(widget.ListItemID, fyne.CanvasObject)) *SwipeList {
	sl := &SwipeList{
		interp:      gesture.NewInterpreter(gesture.DefaultConfig()),
		ignoredKind: KindNone,
		anim:        fyneAnimator{},
		deferCall:   scheduleOnMain,
		clock:       time.Now,
	}
	sl.List.Length = length
	sl.List.CreateItem = func() fyne.CanvasObject {
		return newSwipeRow(sl, createItem())
	}
	sl.List.UpdateItem = func(id widget.ListItemID, item fyne.CanvasObject) {
		row, ok := item.(*swipeRow)
		if !ok {
			updateItem(id, item)
			return
		}
		row.bind(id, sl.stableID(id))
		updateItem(id, row.content)
	}
	sl.ExtendBaseWidget(sl)
	return sl
}

// SetOnRowSwiped registers the single swipe-completion listener. Passing
// nil disables swiping entirely: without a listener no gesture session is
// started. Registering the same listener again has no additional effect;
// exactly one notification fires per dismissed row.
func (l *SwipeList) SetOnRowSwiped(fn RowSwipedFunc) {
	l.onSwiped = fn
}

// SetOnRowTapped registers the host's row-tap listener. The widget wraps
// the registration so it can temporarily detach the listener while a
// swipe resolves; a nil argument is treated as an explicit no-op
// registration and the previously remembered listener is kept.
func (l *SwipeList) SetOnRowTapped(fn func(index int)) {
	l.taps.register(fn)
}

// SetIgnoredKind disables swiping for rows whose KindOf tag equals kind.
// Pass KindNone to make every row swipeable again.
func (l *SwipeList) SetIgnoredKind(kind int) {
	l.ignoredKind = kind
}

// SetDecorationRows declares how many leading and trailing rows are
// non-swipeable decoration (headers, footers, summary rows). Pointer
// input on them is left entirely to the list's default handling.
func (l *SwipeList) SetDecorationRows(leading, trailing int) {
	if leading < 0 {
		leading = 0
	}
	if trailing < 0 {
		trailing = 0
	}
	l.leadingRows = leading
	l.trailingRows = trailing
}

// IsSwiping reports whether a swipe is in progress right now.
func (l *SwipeList) IsSwiping() bool {
	return l.interp.Swiping()
}

// RowAt hit-tests a y coordinate in list content space to a row index,
// or -1 when the position falls on no row. Rows are uniform height in
// widget.List, so the index follows from the scroll offset and the
// first row's height.
func (l *SwipeList) RowAt(y float32) int {
	n := 0
	if l.Length != nil {
		n = l.Length()
	}
	if n == 0 {
		return -1
	}
	h := l.rowHeight()
	if h <= 0 {
		return -1
	}
	idx := int((l.GetScrollOffset() + y) / h)
	if idx < 0 || idx >= n {
		return -1
	}
	return idx
}

// stableID resolves the stable identity for an index.
func (l *SwipeList) stableID(index int) string {
	if l.StableID != nil {
		return l.StableID(index)
	}
	return strconv.Itoa(index)
}

// rowHeight returns the uniform row height derived from the item
// template's minimum size.
func (l *SwipeList) rowHeight() float32 {
	if l.List.CreateItem == nil {
		return 0
	}
	return l.List.CreateItem().MinSize().Height
}

// canSwipe validates a pointer-down target. Every rejection is silent:
// the event simply keeps flowing to the list's default handling.
func (l *SwipeList) canSwipe(index int) bool {
	if l.onSwiped == nil {
		return false
	}
	n := 0
	if l.Length != nil {
		n = l.Length()
	}
	if index < 0 || index >= n {
		return false
	}
	if index < l.leadingRows || index >= n-l.trailingRows {
		return false
	}
	if l.KindOf != nil && l.ignoredKind != KindNone && l.KindOf(index) == l.ignoredKind {
		return false
	}
	return true
}

// pointerDown begins a gesture session for the touched row, unless input
// is blocked by an in-flight dismiss or the row is not a valid swipe
// target. A touch that lands while the same machinery is still snapping
// a row back finishes that animation immediately so the new session
// starts from settled state.
func (l *SwipeList) pointerDown(r *swipeRow, pos fyne.Position) {
	if l.interp.Blocked() {
		return
	}
	if l.cancelSnap != nil {
		l.cancelSnap()
		l.cancelSnap = nil
		l.finishSnap()
	}
	if !l.canSwipe(r.itemID) {
		return
	}

	l.interp.SetConfig(gesture.Config{
		MinDistance:       l.MinSwipeDistance,
		SpeedDamping:      l.SpeedDamping,
		VelocityThreshold: l.SwipeVelocityThreshold,
	})
	target := gesture.Target{
		Index:    r.itemID,
		StableID: r.stableID,
		OriginX:  r.offset,
		RowWidth: r.width(),
	}
	if l.interp.Down(target, pos.X, pos.Y, l.clock()) {
		l.active = r
		r.setPressed(true)
	}
}

// pointerMove feeds a drag event through the interpreter. While the
// session is swiping the event is consumed and the row follows the
// pointer; otherwise the vertical component is handed to the list's own
// scroller so panning keeps working even though the row is the drag
// receiver.
func (l *SwipeList) pointerMove(r *swipeRow, pos fyne.Position, delta fyne.Delta) {
	if l.active == r {
		m := l.interp.Move(pos.X, pos.Y, l.clock())
		if m.Began {
			// The row stays pressed so the highlight remains visible
			// while its alpha animates out.
			r.fadeSelector(false)
		}
		if m.Swiping {
			r.setOffset(m.Frame.OffsetX)
			r.setOpacity(m.Frame.Opacity)
			return
		}
	}
	l.ScrollToOffset(l.GetScrollOffset() - delta.DY)
}

// pointerUp resolves the session at release.
func (l *SwipeList) pointerUp() {
	l.resolve(l.interp.Up(l.clock()))
}

// pointerCancel resolves the session for a cancelled pointer, which is
// treated exactly like a release.
func (l *SwipeList) pointerCancel() {
	l.resolve(l.interp.Cancel(l.clock()))
}

// resolve applies a gesture resolution: nothing for taps and scrolls, a
// dismiss animation for commits, a snap-back for reverts. For both swipe
// branches the tap listener is detached until the branch's animation
// completes and the press highlight is queued to fade back in.
func (l *SwipeList) resolve(res gesture.Resolution) {
	r := l.active
	l.active = nil

	switch res.Outcome {
	case gesture.OutcomeNone:
		if r != nil {
			r.setPressed(false)
		}
	case gesture.OutcomeCommit:
		l.taps.detach()
		if r == nil {
			// The row reference is gone; skip the animation but never
			// leave input blocked or the listener detached.
			l.taps.reattach()
			l.interp.FinishCommit()
			return
		}
		r.fadeSelector(true)
		l.commitOut(r, res)
	case gesture.OutcomeRevert:
		l.taps.detach()
		if r == nil {
			l.taps.reattach()
			l.interp.FinishSnap()
			return
		}
		r.fadeSelector(true)
		l.snapBack(r)
	}
}

// commitOut animates the row off-screen in the direction of travel, then
// notifies the swipe listener and, after a short delay, resets the row's
// visuals. Input stays blocked until the very end so no new session can
// observe a half-dismissed row.
func (l *SwipeList) commitOut(r *swipeRow, res gesture.Resolution) {
	start := r.offset
	final := res.Target.RowWidth
	if res.DeltaX < 0 {
		final = -final
	}

	l.animating = r
	l.anim.Animate(SwipeOutDuration, func(p float32) {
		r.setOffset(start + (final-start)*p)
	}, func() {
		l.taps.reattach()
		if cb := l.onSwiped; cb != nil {
			cb(l, r.content, res.Target.Index, res.Target.StableID)
		}
		l.deferCall(ResetDelay, func() {
			l.animating = nil
			r.resetVisual()
			l.interp.FinishCommit()
		})
	})
}

// snapBack animates the row's offset and opacity back to neutral. The
// tap listener is restored only once the animation settles; a new touch
// arriving earlier cancels the animation and pointerDown performs the
// same restoration synchronously.
func (l *SwipeList) snapBack(r *swipeRow) {
	startOffset := r.offset
	startOpacity := r.opacity

	l.animating = r
	l.cancelSnap = l.anim.Animate(SwipeOutDuration, func(p float32) {
		r.setOffset(startOffset * (1 - p))
		r.setOpacity(startOpacity + (1-startOpacity)*p)
	}, func() {
		l.cancelSnap = nil
		l.finishSnap()
	})
}

// finishSnap performs the snap-back completion duties: settle the row,
// restore the tap listener, release the gesture machine.
func (l *SwipeList) finishSnap() {
	if r := l.animating; r != nil {
		r.resetVisual()
		l.animating = nil
	}
	l.taps.reattach()
	l.interp.FinishSnap()
}

// rowTapped routes a row tap through the interception slot.
func (l *SwipeList) rowTapped(r *swipeRow) {
	l.taps.deliver(r.itemID)
}
