// Package swipelist provides a Fyne list widget whose rows can be
// dismissed with a horizontal swipe. It extends widget.List with touch
// interpretation that separates vertical scrolling from horizontal
// swiping, live translation and fading of the touched row, and swipe-out
// or snap-back animations once the pointer is released. The host
// application registers a single swipe listener and is notified with the
// row's position and stable id after the dismiss animation completes.
package swipelist
