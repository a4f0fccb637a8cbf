package filesys

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"mosi-wildcard/pkg/wildcard"
)

type mapFS struct {
	dirs  map[string][]Entry
	locks int
}

func (m *mapFS) List(ctx context.Context, dir string) ([]Entry, error) {
	entries, ok := m.dirs[dir]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entries, nil
}

func (m *mapFS) Lock() func() {
	m.locks++
	return func() { m.locks-- }
}

func newMapFS() *mapFS {
	return &mapFS{dirs: map[string][]Entry{
		"": {
			{Name: ".git", IsDir: true},
			{Name: "README.md"},
			{Name: "docs", IsDir: true},
			{Name: "src", IsDir: true},
		},
		".git":         {{Name: "HEAD"}},
		"docs":         {{Name: "index.md"}, {Name: "logo.PNG"}},
		"src":          {{Name: "main.go"}, {Name: "main_test.go"}, {Name: "pkg", IsDir: true}},
		"src/pkg":      {{Name: "util.go"}, {Name: "deep", IsDir: true}},
		"src/pkg/deep": {{Name: "x.go"}},
	}}
}

func writeTree(t *testing.T, root string, files ...string) {
	for _, f := range files {
		fn := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
		require.NoError(t, os.WriteFile(fn, []byte(f), 0644))
	}
}

func TestCleanPath(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", cleanPath(""))
	assert.Equal("", cleanPath("."))
	assert.Equal("", cleanPath("/"))
	assert.Equal("a/b", cleanPath("a/b/"))
	assert.Equal("a/b", cleanPath("/a//b"))
	assert.Equal("b", cleanPath("../a/../b"))
	assert.Equal("a/b", cleanPath(`a\b`))
}

func TestWalk(t *testing.T) {
	assert := assert.New(t)

	var visited []string
	err := Walk(context.Background(), newMapFS(), "", func(step Step) ([]Entry, error) {
		visited = append(visited, step.Path)
		return step.Dirs, nil
	})
	require.NoError(t, err)
	assert.Equal([]string{"", ".git", "docs", "src", "src/pkg", "src/pkg/deep"}, visited)

	visited = nil
	err = Walk(context.Background(), newMapFS(), "src", func(step Step) ([]Entry, error) {
		visited = append(visited, step.Path)
		if step.Path == "src" {
			assert.Len(step.Files, 2)
			assert.Equal([]Entry{{Name: "pkg", IsDir: true}}, step.Dirs)
		}
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal([]string{"src"}, visited)
}

func TestWalkErrors(t *testing.T) {
	assert := assert.New(t)

	err := Walk(context.Background(), newMapFS(), "missing", func(step Step) ([]Entry, error) {
		return step.Dirs, nil
	})
	assert.ErrorIs(err, os.ErrNotExist)

	stop := errors.New("stop")
	err = Walk(context.Background(), newMapFS(), "", func(step Step) ([]Entry, error) {
		return nil, stop
	})
	assert.ErrorIs(err, stop)
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, err := wildcard.NewService(16)
	require.NoError(t, err)

	fsys := newMapFS()

	found, err := Find(ctx, fsys, "", Filter{CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{".git/HEAD", "README.md", "docs/index.md", "docs/logo.PNG", "src/main.go", "src/main_test.go", "src/pkg/deep/x.go", "src/pkg/util.go"}, found)
	assert.Equal(0, fsys.locks)

	found, err = Find(ctx, fsys, "", Filter{
		Include:       []string{"*.go"},
		Exclude:       []string{"*_test.go"},
		ExcludeDirs:   []string{".git", "deep"},
		CaseSensitive: true,
	}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"src/main.go", "src/pkg/util.go"}, found)

	found, err = Find(ctx, fsys, "", Filter{Include: []string{"*.png"}}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"docs/logo.PNG"}, found)

	found, err = Find(ctx, fsys, "", Filter{IncludeDirs: []string{"src"}, CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"README.md", "src/main.go", "src/main_test.go"}, found)

	found, err = Find(ctx, fsys, "src", Filter{CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"main.go", "main_test.go", "pkg/deep/x.go", "pkg/util.go"}, found)
}

func TestFindPaths(t *testing.T) {
	assert := assert.New(t)

	svc, err := wildcard.NewService(16)
	require.NoError(t, err)

	var visited []string
	fsys := newMapFS()
	counting := &countingFS{FS: fsys, listed: &visited}

	found, err := Find(context.Background(), counting, "", Filter{Paths: []string{"src/*.go"}, CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"src/main.go", "src/main_test.go"}, found)
	// "src/pkg/" can never match "src/*.go", so it is not listed
	assert.Equal([]string{"", "src"}, visited)

	visited = nil
	found, err = Find(context.Background(), counting, "", Filter{Paths: []string{"src/**.go"}, CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"src/main.go", "src/main_test.go", "src/pkg/deep/x.go", "src/pkg/util.go"}, found)
	assert.Equal([]string{"", "src", "src/pkg", "src/pkg/deep"}, visited)
}

type countingFS struct {
	FS
	listed *[]string
}

func (c *countingFS) List(ctx context.Context, dir string) ([]Entry, error) {
	*c.listed = append(*c.listed, dir)
	return c.FS.List(ctx, dir)
}

func TestFindInvalidPattern(t *testing.T) {
	svc, err := wildcard.NewService(16)
	require.NoError(t, err)

	_, err = Find(context.Background(), newMapFS(), "", Filter{ExcludeDirs: []string{"[x"}}, svc)
	assert.ErrorIs(t, err, wildcard.ErrInvalidPattern)
}

func TestOS(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	writeTree(t, root, "a.txt", "b/c.txt", "b/d/e.log")

	fsys, err := NewOS(root)
	require.NoError(t, err)

	entries, err := fsys.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal([]Entry{{Name: "a.txt", Size: 5}, {Name: "b", IsDir: true}}, entries)

	svc, err := wildcard.NewService(16)
	require.NoError(t, err)
	found, err := Find(context.Background(), fsys, "", Filter{Include: []string{"*.txt"}, CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"a.txt", "b/c.txt"}, found)

	_, err = NewOS(filepath.Join(root, "a.txt"))
	assert.ErrorIs(err, ErrNotDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fsys.List(ctx, "")
	assert.ErrorIs(err, context.Canceled)
}

func TestAFS(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	writeTree(t, root, "a.txt", "b/c.txt", "b/d/e.log")

	fsys := NewAFS("file://" + filepath.ToSlash(root) + "/")
	assert.Equal("file://"+filepath.ToSlash(root)+"/b", fsys.URL("b/"))

	svc, err := wildcard.NewService(16)
	require.NoError(t, err)
	found, err := Find(context.Background(), fsys, "", Filter{Exclude: []string{"*.txt"}, CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"b/d/e.log"}, found)
}

func TestAFSMem(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	base := "mem://localhost/" + strings.ReplaceAll(t.Name(), "/", "_")
	service := afs.New()
	for _, f := range []string{"a.txt", "b/c.txt", "b/b/c.txt", "b/d/e.log"} {
		require.NoError(t, service.Upload(ctx, base+"/"+f, 0644, strings.NewReader(f)))
	}

	fsys := NewAFSWithService(service, base)

	entries, err := fsys.List(ctx, "b")
	require.NoError(t, err)
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name)
	}
	// the child named like its parent is kept
	assert.Equal([]string{"b", "c.txt", "d"}, names)

	svc, err := wildcard.NewService(16)
	require.NoError(t, err)
	found, err := Find(ctx, fsys, "", Filter{CaseSensitive: true}, svc)
	require.NoError(t, err)
	assert.Equal([]string{"a.txt", "b/b/c.txt", "b/c.txt", "b/d/e.log"}, found)
}
