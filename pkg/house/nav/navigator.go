// Package nav holds the active-room index and the operations that move it.
package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned by GoTo for an index outside [0, N-1].
var ErrInvalidIndex = errors.New("nav: room index out of range")

// ChangeFunc is called after the active index changes.
type ChangeFunc func(prev, next int)

// Navigator owns the active-room index for a house of N rooms.
// The index is always in [0, N-1]. Navigator is not safe for concurrent use.
type Navigator struct {
	n         int
	active    int
	listeners []ChangeFunc
}

// New creates a navigator for n rooms with room 0 active. It panics if n < 1.
func New(n int) *Navigator {
	if n < 1 {
		panic(fmt.Sprintf("nav: need at least one room, got %d", n))
	}
	return &Navigator{n: n}
}

// Len returns the number of rooms.
func (nv *Navigator) Len() int {
	return nv.n
}

// Active returns the active room index.
func (nv *Navigator) Active() int {
	return nv.active
}

// CanGoPrevious reports whether GoToPrevious would change the index.
func (nv *Navigator) CanGoPrevious() bool {
	return nv.active > 0
}

// CanGoNext reports whether GoToNext would change the index.
func (nv *Navigator) CanGoNext() bool {
	return nv.active < nv.n-1
}

// OnChange registers fn to be called whenever the active index changes.
func (nv *Navigator) OnChange(fn ChangeFunc) {
	nv.listeners = append(nv.listeners, fn)
}

// GoToPrevious moves to the previous room. It is a no-op at the first room.
func (nv *Navigator) GoToPrevious() {
	nv.set(max(0, nv.active-1))
}

// GoToNext moves to the next room. It is a no-op at the last room.
func (nv *Navigator) GoToNext() {
	nv.set(min(nv.n-1, nv.active+1))
}

// GoTo makes room i active. An out-of-range index is rejected and the active
// index is left unchanged.
func (nv *Navigator) GoTo(i int) error {
	if i < 0 || i >= nv.n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidIndex, i, nv.n-1)
	}
	nv.set(i)
	return nil
}

func (nv *Navigator) set(i int) {
	if i == nv.active {
		return
	}
	prev := nv.active
	nv.active = i
	for _, fn := range nv.listeners {
		fn(prev, i)
	}
}
