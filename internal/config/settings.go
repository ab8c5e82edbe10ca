package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyMinSwipeDistance  = "min_swipe_distance"
	KeySpeedDamping      = "speed_damping"
	KeyVelocityThreshold = "swipe_velocity_threshold"
	KeySwipePinnedRows   = "swipe_pinned_rows"
)

// Default values
const (
	DefaultMinSwipeDistance  = 40.0
	DefaultSpeedDamping      = 0.75
	DefaultVelocityThreshold = 1200.0
	DefaultSwipePinnedRows   = false
)

// Tuning bounds
const (
	MinSwipeDistanceFloor   = 8.0
	MinSwipeDistanceCeiling = 200.0
	SpeedDampingFloor       = 0.1
	SpeedDampingCeiling     = 1.0
	VelocityThresholdFloor  = 100.0
)

// Settings manages the demo's gesture configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMinSwipeDistance returns the minimum pointer travel before a swipe
// or scroll is detected, in points
func (s *Settings) GetMinSwipeDistance() float32 {
	value := s.app.Preferences().Float(KeyMinSwipeDistance)
	if value <= 0 {
		s.SetMinSwipeDistance(DefaultMinSwipeDistance)
		return DefaultMinSwipeDistance
	}
	return float32(value)
}

// SetMinSwipeDistance sets the swipe detection distance, clamped to a
// usable range
func (s *Settings) SetMinSwipeDistance(distance float64) {
	if distance < MinSwipeDistanceFloor {
		distance = MinSwipeDistanceFloor
	}
	if distance > MinSwipeDistanceCeiling {
		distance = MinSwipeDistanceCeiling
	}
	s.app.Preferences().SetFloat(KeyMinSwipeDistance, distance)
}

// GetSpeedDamping returns the multiplier applied to pointer displacement
// before moving a row
func (s *Settings) GetSpeedDamping() float32 {
	value := s.app.Preferences().Float(KeySpeedDamping)
	if value <= 0 {
		s.SetSpeedDamping(DefaultSpeedDamping)
		return DefaultSpeedDamping
	}
	return float32(value)
}

// SetSpeedDamping sets the swipe damping factor, clamped to a usable
// range
func (s *Settings) SetSpeedDamping(damping float64) {
	if damping < SpeedDampingFloor {
		damping = SpeedDampingFloor
	}
	if damping > SpeedDampingCeiling {
		damping = SpeedDampingCeiling
	}
	s.app.Preferences().SetFloat(KeySpeedDamping, damping)
}

// GetVelocityThreshold returns the fast-flick commit threshold in points
// per second
func (s *Settings) GetVelocityThreshold() float32 {
	value := s.app.Preferences().Float(KeyVelocityThreshold)
	if value <= 0 {
		s.SetVelocityThreshold(DefaultVelocityThreshold)
		return DefaultVelocityThreshold
	}
	return float32(value)
}

// SetVelocityThreshold sets the flick threshold, clamped to a sane floor
func (s *Settings) SetVelocityThreshold(threshold float64) {
	if threshold < VelocityThresholdFloor {
		threshold = VelocityThresholdFloor
	}
	s.app.Preferences().SetFloat(KeyVelocityThreshold, threshold)
}

// GetSwipePinnedRows returns whether pinned rows may be swiped away
func (s *Settings) GetSwipePinnedRows() bool {
	return s.app.Preferences().BoolWithFallback(KeySwipePinnedRows, DefaultSwipePinnedRows)
}

// SetSwipePinnedRows sets whether pinned rows may be swiped away
func (s *Settings) SetSwipePinnedRows(enabled bool) {
	s.app.Preferences().SetBool(KeySwipePinnedRows, enabled)
}
