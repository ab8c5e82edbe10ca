package gesture

// Package gesture implements the touch interpretation used by the swipe
// list widget: classifying a pointer session as a tap, a vertical scroll,
// or a horizontal swipe, tracking pointer velocity, and deciding whether a
// released swipe commits (row dismissed) or reverts (row snaps back).
// The package is toolkit-free; the widget layer feeds it pointer events
// and applies the frames and resolutions it returns.
