package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconPinned   = "📌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	HeaderTitleFormat  = "Inbox (%d)"
	StatusSwipedFormat = "Dismissed %q"
	StatusTappedFormat = "Opened %q"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640

	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 320
)

// Status line behavior
const (
	StatusAutoClear = 4 * time.Second
)
