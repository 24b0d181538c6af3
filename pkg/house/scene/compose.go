package scene

import (
	"github.com/zyedidia/generic/mapset"

	"portfoliohouse/pkg/engine/geom"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/theme"
)

// Compose builds the frame's draw list: global lights followed by every
// visible room, in navigation order. Each node is tagged with its room id.
func Compose(reg *rooms.Registry, visible mapset.Set[string], isDark bool, doc *content.Document) []Node {
	nodes := []Node{
		ambientLight("ambient", pick[float32](isDark, 0.4, 0.6)),
		pointLight("sun", theme.Hex("#ffffff"), pick[float32](isDark, 0.3, 0.5), 0, geom.At(10, 10, 5)),
	}

	for _, d := range reg.ListRooms() {
		if !visible.Has(d.ID) {
			continue
		}
		build, ok := BuilderFor(d.ID)
		if !ok {
			continue
		}
		for _, n := range build(geom.V3(float32(d.Axis), 0, 0), isDark, doc) {
			n.Room = d.ID
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Stats summarises a draw list.
type Stats struct {
	Nodes  int
	Lights int
	Rooms  mapset.Set[string]
	Kinds  map[Kind]int
}

// Summarize counts nodes by kind and room.
func Summarize(nodes []Node) Stats {
	s := Stats{Rooms: mapset.New[string](), Kinds: make(map[Kind]int)}
	for _, n := range nodes {
		s.Nodes++
		s.Kinds[n.Kind]++
		if n.Kind.IsLight() {
			s.Lights++
		}
		if n.Room != "" {
			s.Rooms.Put(n.Room)
		}
	}
	return s
}
