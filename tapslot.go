package swipelist

// tapSlot is the single registration slot for the host's row-tap
// listener. The widget temporarily detaches the listener around swipe
// resolution so the toolkit's synthetic tap at the end of a gesture never
// reaches the host; the slot remembers the real listener across those
// detach/reattach cycles so it is never lost.
type tapSlot struct {
	real     func(index int)
	detached bool
}

// register records a new listener. A nil listener is an explicit no-op
// registration: the remembered listener is kept, so the widget's own
// temporary detach can never erase the host's callback.
func (s *tapSlot) register(fn func(index int)) {
	if fn != nil {
		s.real = fn
	}
}

// detach suppresses delivery without forgetting the listener.
func (s *tapSlot) detach() {
	s.detached = true
}

// reattach restores delivery to the remembered listener.
func (s *tapSlot) reattach() {
	s.detached = false
}

// attached reports whether taps currently reach the host.
func (s *tapSlot) attached() bool {
	return !s.detached && s.real != nil
}

// deliver invokes the remembered listener, if any and not detached, and
// reports whether the tap reached the host.
func (s *tapSlot) deliver(index int) bool {
	if s.detached || s.real == nil {
		return false
	}
	s.real(index)
	return true
}
