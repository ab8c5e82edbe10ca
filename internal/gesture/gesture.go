package gesture

import "time"

// Default gesture tuning, matching the widget's stock feel
const (
	// DefaultMinDistance is the minimum pointer travel, in points, before
	// a session is classified as a scroll or a swipe instead of a tap.
	DefaultMinDistance float32 = 40

	// DefaultSpeedDamping slows the row translation relative to the
	// pointer, giving rows a heavier feel.
	DefaultSpeedDamping float32 = 0.75

	// DefaultVelocityThreshold is the horizontal velocity, in points per
	// second, above which a fast flick dismisses the row regardless of
	// how far it has traveled.
	DefaultVelocityThreshold float32 = 1200
)

// MinOpacity is the floor for the row fade while swiping.
const MinOpacity float32 = 0.4

// fullSwipeDivisor is the fraction of the row width that counts as
// "swiped most of the way": |delta| >= width/fullSwipeDivisor commits.
const fullSwipeDivisor float32 = 2.5

// Phase identifies where a pointer session is in the gesture machine.
type Phase int

const (
	// PhaseIdle means no pointer session is being tracked.
	PhaseIdle Phase = iota
	// PhaseArmed means the pointer is down on a swipeable row but the
	// session has not yet been classified.
	PhaseArmed
	// PhaseScrolling means vertical movement won; swiping is disabled for
	// the remainder of the session.
	PhaseScrolling
	// PhaseSwiping means horizontal movement won; the row follows the
	// pointer and move events are consumed.
	PhaseSwiping
	// PhaseCommitting means a swipe-out animation is in flight. All
	// pointer input is ignored until FinishCommit.
	PhaseCommitting
	// PhaseSnapping means a snap-back animation is in flight. A new
	// pointer-down may start a fresh session.
	PhaseSnapping
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseScrolling:
		return "scrolling"
	case PhaseSwiping:
		return "swiping"
	case PhaseCommitting:
		return "committing"
	case PhaseSnapping:
		return "snapping"
	default:
		return "unknown"
	}
}

// Config holds the gesture tuning for an interpreter.
type Config struct {
	// MinDistance is the classification threshold in points.
	MinDistance float32
	// SpeedDamping is the multiplier (<1) applied to pointer displacement
	// before moving the row.
	SpeedDamping float32
	// VelocityThreshold is the fast-flick commit threshold in points per
	// second.
	VelocityThreshold float32
}

// DefaultConfig returns the stock gesture tuning.
func DefaultConfig() Config {
	return Config{
		MinDistance:       DefaultMinDistance,
		SpeedDamping:      DefaultSpeedDamping,
		VelocityThreshold: DefaultVelocityThreshold,
	}
}

// sanitized replaces zero or negative fields with their defaults so a
// partially filled Config cannot disable classification entirely.
func (c Config) sanitized() Config {
	if c.MinDistance <= 0 {
		c.MinDistance = DefaultMinDistance
	}
	if c.SpeedDamping <= 0 || c.SpeedDamping > 1 {
		c.SpeedDamping = DefaultSpeedDamping
	}
	if c.VelocityThreshold <= 0 {
		c.VelocityThreshold = DefaultVelocityThreshold
	}
	return c
}

// Target describes the row captured at pointer-down. The stable id lets
// the widget re-validate the row after recycling; the interpreter only
// carries it through to the resolution.
type Target struct {
	Index    int
	StableID string
	OriginX  float32
	RowWidth float32
}

// Frame is the per-move visual directive while a swipe is active.
type Frame struct {
	// OffsetX is the horizontal position the row should move to.
	OffsetX float32
	// Opacity is the row opacity, in [MinOpacity, 1].
	Opacity float32
}

// Move reports the interpreter's reaction to a pointer-move event.
type Move struct {
	// Began is true when this event latched the swipe; the widget fades
	// the press highlight out in response.
	Began bool
	// Swiping is true while the swipe is latched. The event must be
	// consumed and Frame applied to the row.
	Swiping bool
	// Frame is the visual state to apply; valid only when Swiping.
	Frame Frame
}

// Outcome is the commit-vs-revert decision for a released swipe.
type Outcome int

const (
	// OutcomeNone means no swipe was in progress at release.
	OutcomeNone Outcome = iota
	// OutcomeCommit accepts the swipe; the row animates off-screen.
	OutcomeCommit
	// OutcomeRevert rejects the swipe; the row animates back to neutral.
	OutcomeRevert
)

// Resolution is returned from Up/Cancel and tells the widget which
// animation to run for the captured target.
type Resolution struct {
	Outcome   Outcome
	Target    Target
	DeltaX    float32
	VelocityX float32
}

// Interpreter is the single-session gesture state machine. It is not
// safe for concurrent use; the widget drives it from the UI event loop
// only.
type Interpreter struct {
	cfg     Config
	phase   Phase
	target  Target
	downX   float32
	downY   float32
	deltaX  float32
	tracker *VelocityTracker
}

// NewInterpreter creates an interpreter with the given tuning. Zero
// fields fall back to the defaults.
func NewInterpreter(cfg Config) *Interpreter {
	return &Interpreter{
		cfg:     cfg.sanitized(),
		tracker: NewVelocityTracker(),
	}
}

// Config returns the sanitized tuning in effect.
func (in *Interpreter) Config() Config { return in.cfg }

// SetConfig replaces the tuning. Callers apply it between sessions; a
// session already in flight keeps reading whatever is current.
func (in *Interpreter) SetConfig(cfg Config) {
	in.cfg = cfg.sanitized()
}

// Phase returns the current phase.
func (in *Interpreter) Phase() Phase { return in.phase }

// Swiping reports whether a swipe is latched right now.
func (in *Interpreter) Swiping() bool { return in.phase == PhaseSwiping }

// Blocked reports whether pointer input is being ignored because a
// swipe-out animation is in flight.
func (in *Interpreter) Blocked() bool { return in.phase == PhaseCommitting }

// Target returns the row captured by the current session.
func (in *Interpreter) Target() Target { return in.target }

// Down starts a session for an already validated target. It returns
// false, leaving the machine untouched, while a swipe-out animation is
// blocking input. A down during a snap-back abandons that animation's
// bookkeeping and arms a fresh session.
func (in *Interpreter) Down(t Target, x, y float32, at time.Time) bool {
	if in.phase == PhaseCommitting {
		return false
	}
	in.phase = PhaseArmed
	in.target = t
	in.downX = x
	in.downY = y
	in.deltaX = 0
	in.tracker.Reset()
	in.tracker.Add(x, at)
	return true
}

// Move feeds a pointer-move event through the machine.
//
// While armed, vertical travel past MinDistance latches scrolling for the
// remainder of the session; horizontal travel past MinDistance latches
// the swipe and re-baselines the down point so the row does not jump.
// While swiping, the returned frame carries the damped row offset and the
// faded opacity.
func (in *Interpreter) Move(x, y float32, at time.Time) Move {
	switch in.phase {
	case PhaseArmed:
		dx := x - in.downX
		dy := y - in.downY
		if abs(dy) >= in.cfg.MinDistance {
			// A scroll won; the event must keep propagating so the list
			// can pan.
			in.phase = PhaseScrolling
			return Move{}
		}
		if abs(dx) >= in.cfg.MinDistance {
			in.phase = PhaseSwiping
			in.downX = x
			in.deltaX = 0
			in.tracker.Add(x, at)
			return Move{Began: true, Swiping: true, Frame: in.frame()}
		}
		return Move{}
	case PhaseSwiping:
		in.deltaX = x - in.downX
		in.tracker.Add(x, at)
		return Move{Swiping: true, Frame: in.frame()}
	default:
		return Move{}
	}
}

// Up resolves the session at pointer release. If a swipe was latched the
// resolution carries the commit-vs-revert outcome and the captured
// target; otherwise the outcome is OutcomeNone. Phases that have no
// session (idle, or an animation already in flight) are left untouched.
func (in *Interpreter) Up(at time.Time) Resolution {
	switch in.phase {
	case PhaseSwiping:
		v := in.tracker.VelocityX()
		res := Resolution{
			Outcome:   Decide(in.cfg, in.deltaX, v, in.target.RowWidth),
			Target:    in.target,
			DeltaX:    in.deltaX,
			VelocityX: v,
		}
		if res.Outcome == OutcomeCommit {
			in.phase = PhaseCommitting
		} else {
			in.phase = PhaseSnapping
		}
		return res
	case PhaseArmed, PhaseScrolling:
		in.phase = PhaseIdle
		return Resolution{Outcome: OutcomeNone}
	default:
		return Resolution{Outcome: OutcomeNone}
	}
}

// Cancel resolves the session for a pointer-cancel event. It is treated
// identically to Up: a latched swipe still gets its commit-vs-revert
// decision.
func (in *Interpreter) Cancel(at time.Time) Resolution {
	return in.Up(at)
}

// FinishCommit clears the input block once the swipe-out animation, its
// completion callback, and the deferred row reset have all run.
func (in *Interpreter) FinishCommit() {
	if in.phase == PhaseCommitting {
		in.phase = PhaseIdle
	}
}

// FinishSnap marks the snap-back animation complete. If a new session
// already started during the animation it is left alone.
func (in *Interpreter) FinishSnap() {
	if in.phase == PhaseSnapping {
		in.phase = PhaseIdle
	}
}

// frame computes the visual directive for the current swipe delta.
func (in *Interpreter) frame() Frame {
	return Frame{
		OffsetX: in.target.OriginX + in.deltaX*in.cfg.SpeedDamping,
		Opacity: FadeOpacity(in.deltaX, in.target.RowWidth),
	}
}

// Decide returns the commit-vs-revert outcome for a released swipe. A
// fast flick (velocity past the threshold with at least twice the minimum
// travel) commits, as does dragging the row most of the way across its
// own width; anything else reverts.
func Decide(cfg Config, deltaX, velocityX, rowWidth float32) Outcome {
	cfg = cfg.sanitized()
	swipedFast := abs(velocityX) >= cfg.VelocityThreshold && abs(deltaX) >= cfg.MinDistance*2
	swipedFull := abs(deltaX) >= rowWidth/fullSwipeDivisor
	if swipedFast || swipedFull {
		return OutcomeCommit
	}
	return OutcomeRevert
}

// FadeOpacity returns the row opacity for a swipe displacement: it falls
// linearly with |deltaX| relative to the row width and never drops below
// MinOpacity.
func FadeOpacity(deltaX, rowWidth float32) float32 {
	if rowWidth <= 0 {
		return 1
	}
	alpha := 1 - abs(deltaX)/rowWidth
	if alpha < MinOpacity {
		return MinOpacity
	}
	return alpha
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
