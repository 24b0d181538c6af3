package frame

// Manual is a Scheduler advanced by hand, one frame at a time.
// Tests use it in place of a real display-refresh driver.
type Manual struct {
	loop Loop
}

// NewManual creates a manual scheduler with nothing pending.
func NewManual() *Manual {
	return &Manual{}
}

// RequestFrame implements Scheduler.
func (m *Manual) RequestFrame(fn func()) Handle {
	return m.loop.RequestFrame(fn)
}

// Cancel implements Scheduler.
func (m *Manual) Cancel(h Handle) {
	m.loop.Cancel(h)
}

// Advance runs a single frame and reports whether anything ran.
func (m *Manual) Advance() bool {
	return m.loop.RunFrame() > 0
}

// AdvanceN runs n frames.
func (m *Manual) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		m.loop.RunFrame()
	}
}

// RunUntilIdle advances frames until nothing is pending or max frames have run.
// It returns the number of frames that ran a callback.
func (m *Manual) RunUntilIdle(max int) int {
	ran := 0
	for ran < max && m.loop.Pending() > 0 {
		m.loop.RunFrame()
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (m *Manual) Pending() int {
	return m.loop.Pending()
}
