// Package visibility decides which rooms are mounted for rendering.
//
// Only the active room and its immediate neighbours are mounted, so at most
// three room renderers run regardless of how many rooms the house has.
package visibility

import (
	"github.com/zyedidia/generic/mapset"

	"portfoliohouse/pkg/house/rooms"
)

// Radius is how many rooms either side of the active room stay mounted.
const Radius = 1

// Window returns the inclusive index range [lo, hi] of mounted rooms for a
// house of n rooms. An active index outside [0, n-1] is clamped first.
// For n <= 0 it returns (0, -1), an empty range.
func Window(n, active int) (lo, hi int) {
	if n <= 0 {
		return 0, -1
	}
	active = clamp(active, 0, n-1)
	return clamp(active-Radius, 0, n-1), clamp(active+Radius, 0, n-1)
}

// IsVisible reports whether room i is mounted when active is the active room.
func IsVisible(n, active, i int) bool {
	lo, hi := Window(n, active)
	return i >= lo && i <= hi
}

// VisibleRooms returns the ids of the rooms that must be mounted this frame.
func VisibleRooms(reg *rooms.Registry, active int) mapset.Set[string] {
	visible := mapset.New[string]()
	lo, hi := Window(reg.Len(), active)
	for i := lo; i <= hi; i++ {
		visible.Put(reg.At(i).ID)
	}
	return visible
}

// VisibleIndices returns the mounted room indices in navigation order.
func VisibleIndices(n, active int) []int {
	lo, hi := Window(n, active)
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
