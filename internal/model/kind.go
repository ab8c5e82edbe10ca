package model

// Kind categorizes list rows. The numeric values feed the swipe widget's
// ignored-kind filter, so they must be non-negative.
type Kind int

const (
	// KindNote is an ordinary dismissible row.
	KindNote Kind = iota
	// KindPinned marks rows the user has pinned; the demo disables
	// swiping for them.
	KindPinned
)

// String returns the display name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNote:
		return "Note"
	case KindPinned:
		return "Pinned"
	default:
		return "Unknown"
	}
}
