package devtools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/house/camera"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/state"
)

func newView() *state.View {
	return state.New(rooms.Default(), content.Default(), frame.NewManual(), camera.DefaultConfig())
}

func TestExportHTML(t *testing.T) {
	v := newView()
	path, err := ExportHTML(t.TempDir(), v)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)

	for _, id := range []string{rooms.Entrance, rooms.About, rooms.Skills, rooms.Experience, rooms.Projects, rooms.Contact} {
		assert.Contains(t, page, `<section id="`+id+`"`)
	}
	assert.Contains(t, page, v.Doc.Personal.Name)
}

func TestHighlight(t *testing.T) {
	got := Highlight("I build ERP systems with Frappe.", []string{"ERP systems", ""})
	assert.Equal(t, "I build **ERP systems** with Frappe.", got)
}

func TestMarkdown(t *testing.T) {
	got := Markdown("some **bold** text <script>x</script>")
	assert.Contains(t, got, "<strong>bold</strong>")
	assert.NotContains(t, got, "<script>")
}

func TestDumpScene(t *testing.T) {
	v := newView()
	path := filepath.Join(t.TempDir(), "dump", "scene.txt")
	got, err := DumpScene(path, v)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	dump := string(data)

	assert.True(t, strings.HasPrefix(dump, "active: entrance\n"))
	assert.Contains(t, dump, "visible: entrance, about\n")
	assert.Contains(t, dump, "dark: true\n")
}
