package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme defines a compact theme for the demo with reduced padding
// and a selection colour that reads well as the swipe press highlight.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSelection:
		// The swipe widget renders its press highlight in the selection
		// colour; keep it soft so fading it looks smooth.
		if variant == theme.VariantDark {
			return color.RGBA{R: 66, G: 103, B: 146, A: 140}
		}
		return color.RGBA{R: 160, G: 196, B: 238, A: 140}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 22, G: 22, B: 24, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
