// Package rooms defines the fixed, ordered list of rooms in the house.
// Rooms sit along a single navigation axis; order is navigation order and
// axis positions strictly increase with index.
package rooms

import (
	"errors"
	"fmt"
)

// Icon is a symbolic reference to a room's icon. Renderers map it to a glyph.
type Icon int

const (
	IconHome Icon = iota
	IconUser
	IconCode
	IconBriefcase
	IconFolder
	IconMessage
)

// String returns the icon's symbolic name.
func (i Icon) String() string {
	switch i {
	case IconHome:
		return "home"
	case IconUser:
		return "user"
	case IconCode:
		return "code"
	case IconBriefcase:
		return "briefcase"
	case IconFolder:
		return "folder-open"
	case IconMessage:
		return "message-square"
	default:
		return "unknown"
	}
}

// Room ids of the reference house.
const (
	Entrance   = "entrance"
	About      = "about"
	Skills     = "skills"
	Experience = "experience"
	Projects   = "projects"
	Contact    = "contact"
)

// RoomSpacing is the distance between neighbouring rooms in the reference house.
const RoomSpacing = 15.0

// Descriptor describes one room.
type Descriptor struct {
	ID          string  // Unique id, also the key for the room's scene builder
	DisplayName string  // Label shown on the navigation control (a gettext key)
	Icon        Icon    // Symbolic icon reference
	Axis        float64 // Position along the navigation axis
}

var (
	// ErrEmpty is returned when a registry would have no rooms.
	ErrEmpty = errors.New("rooms: registry has no rooms")
	// ErrDuplicateID is returned when two rooms share an id.
	ErrDuplicateID = errors.New("rooms: duplicate room id")
	// ErrNotIncreasing is returned when axis positions do not strictly increase.
	ErrNotIncreasing = errors.New("rooms: axis positions must strictly increase")
)

// Registry is an immutable, ordered list of rooms.
type Registry struct {
	rooms []Descriptor
	index map[string]int
}

// New builds a registry from the given descriptors, in navigation order.
func New(descs ...Descriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, ErrEmpty
	}

	r := &Registry{
		rooms: make([]Descriptor, len(descs)),
		index: make(map[string]int, len(descs)),
	}
	copy(r.rooms, descs)

	for i, d := range r.rooms {
		if _, dup := r.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		r.index[d.ID] = i

		if i > 0 && d.Axis <= r.rooms[i-1].Axis {
			return nil, fmt.Errorf("%w: %q at %v after %q at %v",
				ErrNotIncreasing, d.ID, d.Axis, r.rooms[i-1].ID, r.rooms[i-1].Axis)
		}
	}

	return r, nil
}

// Default returns the reference house: six rooms spaced 15 units apart.
func Default() *Registry {
	r, err := New(
		Descriptor{ID: Entrance, DisplayName: "ROOM_ENTRANCE", Icon: IconHome, Axis: 0},
		Descriptor{ID: About, DisplayName: "ROOM_ABOUT", Icon: IconUser, Axis: RoomSpacing},
		Descriptor{ID: Skills, DisplayName: "ROOM_SKILLS", Icon: IconCode, Axis: 2 * RoomSpacing},
		Descriptor{ID: Experience, DisplayName: "ROOM_EXPERIENCE", Icon: IconBriefcase, Axis: 3 * RoomSpacing},
		Descriptor{ID: Projects, DisplayName: "ROOM_PROJECTS", Icon: IconFolder, Axis: 4 * RoomSpacing},
		Descriptor{ID: Contact, DisplayName: "ROOM_CONTACT", Icon: IconMessage, Axis: 5 * RoomSpacing},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// ListRooms returns a copy of the rooms in navigation order.
func (r *Registry) ListRooms() []Descriptor {
	out := make([]Descriptor, len(r.rooms))
	copy(out, r.rooms)
	return out
}

// Len returns the number of rooms.
func (r *Registry) Len() int {
	return len(r.rooms)
}

// At returns the room at index i. It panics if i is out of range.
func (r *Registry) At(i int) Descriptor {
	return r.rooms[i]
}

// Valid reports whether i is a valid room index.
func (r *Registry) Valid(i int) bool {
	return i >= 0 && i < len(r.rooms)
}

// IndexOf returns the index of the room with the given id, or -1.
func (r *Registry) IndexOf(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}
