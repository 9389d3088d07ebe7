package game

// FrameScheduler holds at most one pending tick. The presentation layer
// calls RunPending once per frame; tests call it in a loop to step the
// simulation deterministically.
type FrameScheduler struct {
	pending func()
}

var _ Scheduler = &FrameScheduler{}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// RequestTick replaces any tick that has not run yet.
func (s *FrameScheduler) RequestTick(tick func()) {
	s.pending = tick
}

// Pending reports whether a tick is waiting for the next frame.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// RunPending runs the pending tick, if any, and reports whether one ran.
// A tick may request the next one while running.
func (s *FrameScheduler) RunPending() bool {
	tick := s.pending
	if tick == nil {
		return false
	}
	s.pending = nil
	tick()
	return true
}

// Cancel drops the pending tick.
func (s *FrameScheduler) Cancel() {
	s.pending = nil
}
