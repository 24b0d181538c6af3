package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"portfoliohouse/pkg/house/scene"
	"portfoliohouse/pkg/house/state"
	"portfoliohouse/pkg/house/theme"
)

const sceneDumpFilename = "scene.txt"

// DumpScene writes the current frame's draw list to path, or to scene.txt in
// the working directory when path is empty. It returns the path written.
func DumpScene(path string, v *state.View) (string, error) {
	if path == "" {
		path = sceneDumpFilename
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create dump dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create scene dump: %w", err)
	}
	defer f.Close()

	if err := WriteScene(f, v); err != nil {
		return "", err
	}
	return path, nil
}

// WriteScene writes the draw list in a key: value format, one block per node.
func WriteScene(w io.Writer, v *state.View) error {
	nodes := v.DrawList()
	stats := scene.Summarize(nodes)

	visible := v.VisibleRooms()
	var ids []string
	for _, d := range v.Rooms.ListRooms() {
		if visible.Has(d.ID) {
			ids = append(ids, d.ID)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "active: %s\n", v.ActiveRoom().ID)
	fmt.Fprintf(&b, "visible: %s\n", strings.Join(ids, ", "))
	fmt.Fprintf(&b, "camera: %.3f -> %.3f\n", v.Camera.Position(), v.Camera.Target())
	fmt.Fprintf(&b, "dark: %v\n", v.Theme.IsDark())
	fmt.Fprintf(&b, "nodes: %d\n", stats.Nodes)
	fmt.Fprintf(&b, "lights: %d\n", stats.Lights)

	for i, n := range nodes {
		p := n.Position()
		fmt.Fprintf(&b, "\n[%d]\n", i)
		fmt.Fprintf(&b, "kind: %s\n", n.Kind)
		fmt.Fprintf(&b, "name: %s\n", n.Name)
		if n.Room != "" {
			fmt.Fprintf(&b, "room: %s\n", n.Room)
		}
		fmt.Fprintf(&b, "position: %.2f %.2f %.2f\n", p.X, p.Y, p.Z)
		fmt.Fprintf(&b, "size: %.2f %.2f %.2f\n", n.Size.X, n.Size.Y, n.Size.Z)
		fmt.Fprintf(&b, "color: %s\n", theme.CSS(n.Material.Color))
		if n.Text != "" {
			fmt.Fprintf(&b, "text: %q\n", n.Text)
		}
		for _, line := range n.Lines {
			fmt.Fprintf(&b, "line: %q\n", line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
