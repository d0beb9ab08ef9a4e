package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysdrill/pkg/world"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"Absolute", "/var/log/syslog", []string{"var", "log", "syslog"}},
		{"Root", "/", nil},
		{"Empty", "", nil},
		{"TrailingSlash", "/home/sysadmin/", []string{"home", "sysadmin"}},
		{"DoubledSlash", "//etc//passwd", []string{"etc", "passwd"}},
		{"Relative", "var/log", []string{"var", "log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, world.SplitPath(tt.path))
		})
	}
}

func TestDirNamesSorted(t *testing.T) {
	d := world.NewDir()
	d.Put("zeta", world.NewFile(""))
	d.Put("alpha", world.NewDir())
	d.Put("mid", world.NewFile(""))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, d.Names())
}

func TestDirRemove(t *testing.T) {
	d := world.NewDir()
	d.Put("a", world.NewFile("x"))

	assert.True(t, d.Remove("a"))
	assert.False(t, d.Remove("a"), "second remove should find nothing")
	assert.Equal(t, 0, d.Len())
}

func TestWalkVisitsDepthFirstSorted(t *testing.T) {
	root := world.NewDir()
	sub := world.NewDir()
	sub.Put("inner.txt", world.NewFile(""))
	root.Put("b", sub)
	root.Put("a.txt", world.NewFile(""))

	var visited []string
	root.Walk("", func(path string, _ world.Entry) {
		visited = append(visited, path)
	})

	assert.Equal(t, []string{"/a.txt", "/b", "/b/inner.txt"}, visited)
}

func TestCloneEntryIsDeep(t *testing.T) {
	orig := world.NewDir()
	docs := world.NewDir()
	docs.Put("note.txt", world.NewFile("original"))
	orig.Put("docs", docs)

	clone, ok := world.CloneEntry(orig).(*world.Dir)
	require.True(t, ok)

	cloneDocs, ok := clone.Lookup("docs")
	require.True(t, ok)
	cloneDocs.(*world.Dir).Put("extra.txt", world.NewFile("new"))

	_, ok = docs.Lookup("extra.txt")
	assert.False(t, ok, "mutating the clone must not touch the original")

	f, ok := docs.Lookup("note.txt")
	require.True(t, ok)
	assert.Equal(t, "original", f.(*world.File).Content)
}

func TestContains(t *testing.T) {
	root := world.NewDir()
	child := world.NewDir()
	grand := world.NewDir()
	child.Put("grand", grand)
	root.Put("child", child)
	other := world.NewDir()

	assert.True(t, root.Contains(root))
	assert.True(t, root.Contains(grand))
	assert.True(t, child.Contains(grand))
	assert.False(t, child.Contains(root))
	assert.False(t, root.Contains(other))
}
