// Package frame provides a small scheduled-task abstraction for work that runs
// once per display refresh. The host loop (Ebiten's Update, the terminal loop,
// or a test) decides when a frame happens; callers only request "run this on
// the next frame" and may cancel a request before it runs.
package frame

// Handle identifies a pending frame request.
type Handle uint64

// Scheduler queues callbacks for the next frame.
type Scheduler interface {
	// RequestFrame queues fn to run once on the next frame.
	RequestFrame(fn func()) Handle

	// Cancel drops a pending request. Cancelling a request that already ran
	// or was never issued is a no-op.
	Cancel(h Handle)
}

type request struct {
	handle Handle
	fn     func()
}

// Loop is a Scheduler driven by a host frame loop.
// Callbacks requested while frame k is running are deferred to frame k+1,
// so a callback that reschedules itself runs exactly once per frame.
// Loop is not safe for concurrent use; all calls happen on the loop goroutine.
type Loop struct {
	next    Handle
	pending []request
	frames  uint64
}

// NewLoop creates an idle frame loop scheduler.
func NewLoop() *Loop {
	return &Loop{}
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn func()) Handle {
	l.next++
	l.pending = append(l.pending, request{handle: l.next, fn: fn})
	return l.next
}

// Cancel implements Scheduler.
func (l *Loop) Cancel(h Handle) {
	for i, r := range l.pending {
		if r.handle == h {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
}

// RunFrame runs every callback that was pending when the frame started.
// It returns the number of callbacks run.
func (l *Loop) RunFrame() int {
	l.frames++
	if len(l.pending) == 0 {
		return 0
	}

	batch := l.pending
	l.pending = nil

	for _, r := range batch {
		r.fn()
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}
