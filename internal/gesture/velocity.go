package gesture

import "time"

// Velocity tracking constants
const (
	// VelocityWindow is how far back movement samples are considered when
	// computing the instantaneous velocity. Older samples are pruned.
	VelocityWindow = 100 * time.Millisecond

	// maxSamples bounds the ring buffer; at typical input rates the window
	// prunes first.
	maxSamples = 20
)

// sample is one recorded pointer position.
type sample struct {
	x  float32
	at time.Time
}

// VelocityTracker estimates the horizontal pointer velocity from the
// recent movement history, in points per second. A fresh tracker (or one
// that has been Reset) reports zero velocity until it has at least two
// samples inside the window.
type VelocityTracker struct {
	samples []sample
}

// NewVelocityTracker creates an empty velocity tracker.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{samples: make([]sample, 0, maxSamples)}
}

// Reset discards all recorded samples. Called on every pointer-down so a
// new gesture never inherits the previous one's history.
func (vt *VelocityTracker) Reset() {
	vt.samples = vt.samples[:0]
}

// Add records a pointer position at the given time and prunes samples
// that fell out of the tracking window.
func (vt *VelocityTracker) Add(x float32, at time.Time) {
	cutoff := at.Add(-VelocityWindow)
	keep := 0
	for keep < len(vt.samples) && vt.samples[keep].at.Before(cutoff) {
		keep++
	}
	if keep > 0 {
		vt.samples = append(vt.samples[:0], vt.samples[keep:]...)
	}
	if len(vt.samples) == maxSamples {
		copy(vt.samples, vt.samples[1:])
		vt.samples = vt.samples[:maxSamples-1]
	}
	vt.samples = append(vt.samples, sample{x: x, at: at})
}

// VelocityX returns the current horizontal velocity in points per second,
// computed across the oldest and newest samples still inside the window.
func (vt *VelocityTracker) VelocityX() float32 {
	if len(vt.samples) < 2 {
		return 0
	}
	first := vt.samples[0]
	last := vt.samples[len(vt.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / float32(dt)
}
