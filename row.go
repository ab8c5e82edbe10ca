package swipelist

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Interface conformance for the input paths the row must intercept.
var (
	_ fyne.Widget       = (*swipeRow)(nil)
	_ fyne.Tappable     = (*swipeRow)(nil)
	_ fyne.Draggable    = (*swipeRow)(nil)
	_ mobile.Touchable  = (*swipeRow)(nil)
	_ desktop.Mouseable = (*swipeRow)(nil)
)

// swipeRow wraps one item of user content inside the list. It renders a
// press highlight behind the content and a fade shade above it, forwards
// pointer input to the owning list's gesture interpreter, and applies the
// horizontal offset and opacity the interpreter dictates.
//
// Rows are recycled by the underlying list: bind is called whenever the
// row starts representing a different item, and resets any leftover swipe
// visuals unless the row is the one a swipe animation currently owns.
type swipeRow struct {
	widget.BaseWidget

	list    *SwipeList
	content fyne.CanvasObject

	itemID   widget.ListItemID
	stableID string

	offset        float32
	opacity       float32
	pressed       bool
	selectorAlpha float32

	highlight *canvas.Rectangle
	shade     *canvas.Rectangle
}

func newSwipeRow(list *SwipeList, content fyne.CanvasObject) *swipeRow {
	r := &swipeRow{
		list:          list,
		content:       content,
		itemID:        -1,
		opacity:       1,
		selectorAlpha: 1,
		highlight:     canvas.NewRectangle(color.Transparent),
		shade:         canvas.NewRectangle(color.Transparent),
	}
	r.ExtendBaseWidget(r)
	return r
}

// bind points the row at a new item. Recycled rows must not inherit the
// previous item's swipe offset, except for the row a commit animation is
// still driving; that one is reset by the animation's deferred cleanup.
func (r *swipeRow) bind(id widget.ListItemID, stableID string) {
	r.itemID = id
	r.stableID = stableID
	if r.list.animating != r {
		r.resetVisual()
	}
}

// CreateRenderer implements fyne.Widget.
func (r *swipeRow) CreateRenderer() fyne.WidgetRenderer {
	return &swipeRowRenderer{row: r}
}

// width returns the best available row width for gesture math: the laid
// out size when present, otherwise the list's, otherwise the content's
// minimum.
func (r *swipeRow) width() float32 {
	if w := r.Size().Width; w > 0 {
		return w
	}
	if w := r.list.Size().Width; w > 0 {
		return w
	}
	return r.content.MinSize().Width
}

// setOffset moves the content horizontally.
func (r *swipeRow) setOffset(offset float32) {
	if r.offset == offset {
		return
	}
	r.offset = offset
	r.Refresh()
}

// setOpacity fades the row. Canvas objects carry no alpha channel, so
// the fade is rendered as a background-coloured shade above the content.
func (r *swipeRow) setOpacity(opacity float32) {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	if r.opacity == opacity {
		return
	}
	r.opacity = opacity
	r.Refresh()
}

// setPressed toggles the press highlight.
func (r *swipeRow) setPressed(pressed bool) {
	if r.pressed == pressed {
		return
	}
	r.pressed = pressed
	r.Refresh()
}

// resetVisual restores the neutral visual state: no offset, fully
// opaque, highlight released.
func (r *swipeRow) resetVisual() {
	r.offset = 0
	r.opacity = 1
	r.pressed = false
	r.selectorAlpha = 1
	r.Refresh()
}

// fadeSelector animates the press highlight out (swipe latched) or back
// in (gesture over).
func (r *swipeRow) fadeSelector(in bool) {
	from := r.selectorAlpha
	to := float32(0)
	if in {
		to = 1
	}
	r.list.anim.Animate(SelectorFadeDuration, func(p float32) {
		r.selectorAlpha = from + (to-from)*p
		r.Refresh()
	}, nil)
}

// Tapped implements fyne.Tappable. Taps route through the list's tap
// slot so the host listener can be temporarily detached around a swipe.
func (r *swipeRow) Tapped(_ *fyne.PointEvent) {
	r.list.rowTapped(r)
}

// MouseDown implements desktop.Mouseable.
func (r *swipeRow) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	r.list.pointerDown(r, ev.AbsolutePosition)
}

// MouseUp implements desktop.Mouseable.
func (r *swipeRow) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	r.list.pointerUp()
}

// TouchDown implements mobile.Touchable.
func (r *swipeRow) TouchDown(ev *mobile.TouchEvent) {
	r.list.pointerDown(r, ev.AbsolutePosition)
}

// TouchUp implements mobile.Touchable.
func (r *swipeRow) TouchUp(_ *mobile.TouchEvent) {
	r.list.pointerUp()
}

// TouchCancel implements mobile.Touchable. Cancellation resolves the
// gesture exactly like a release.
func (r *swipeRow) TouchCancel(_ *mobile.TouchEvent) {
	r.list.pointerCancel()
}

// Dragged implements fyne.Draggable.
func (r *swipeRow) Dragged(ev *fyne.DragEvent) {
	r.list.pointerMove(r, ev.AbsolutePosition, ev.Dragged)
}

// DragEnd implements fyne.Draggable.
func (r *swipeRow) DragEnd() {
	r.list.pointerUp()
}

// swipeRowRenderer lays the highlight, the user content, and the fade
// shade out on top of each other; content and shade follow the swipe
// offset while the highlight stays put.
type swipeRowRenderer struct {
	row *swipeRow
}

func (rr *swipeRowRenderer) Layout(size fyne.Size) {
	rr.row.highlight.Resize(size)
	rr.row.highlight.Move(fyne.NewPos(0, 0))
	rr.row.content.Resize(size)
	rr.row.content.Move(fyne.NewPos(rr.row.offset, 0))
	rr.row.shade.Resize(size)
	rr.row.shade.Move(fyne.NewPos(rr.row.offset, 0))
}

func (rr *swipeRowRenderer) MinSize() fyne.Size {
	return rr.row.content.MinSize()
}

func (rr *swipeRowRenderer) Refresh() {
	r := rr.row

	highlightAlpha := float32(0)
	if r.pressed {
		highlightAlpha = r.selectorAlpha
	}
	r.highlight.FillColor = withAlpha(theme.Color(theme.ColorNameSelection), highlightAlpha)
	r.highlight.Refresh()

	r.shade.FillColor = withAlpha(theme.Color(theme.ColorNameBackground), 1-r.opacity)
	r.shade.Refresh()

	rr.Layout(r.Size())
	canvas.Refresh(r)
}

func (rr *swipeRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{rr.row.highlight, rr.row.content, rr.row.shade}
}

func (rr *swipeRowRenderer) Destroy() {}

// withAlpha scales a colour's alpha channel by the given factor in
// [0, 1]. The colour is converted to non-premultiplied form first so
// translucent sources keep their channel values instead of darkening.
func withAlpha(c color.Color, factor float32) color.Color {
	if factor <= 0 {
		return color.Transparent
	}
	if factor > 1 {
		factor = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * factor)
	return n
}
