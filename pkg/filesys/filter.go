package filesys

import (
	"context"

	"golang.org/x/exp/slices"

	"mosi-wildcard/pkg/wildcard"
)

// Filter selects files during a walk. Name patterns are matched against the
// entry name, Paths against the slash separated path relative to the walk
// root. Empty include lists select everything.
type Filter struct {
	Include       []string
	Exclude       []string
	IncludeDirs   []string
	ExcludeDirs   []string
	Paths         []string
	CaseSensitive bool
}

type selector struct {
	include     func(string) bool
	exclude     func(string) bool
	includeDir  func(string) bool
	excludeDir  func(string) bool
	path        func(string) bool
	partialPath func(string) bool
}

func matchNone(string) bool { return false }

func (f Filter) compile(svc *wildcard.Service) (*selector, error) {
	s := &selector{exclude: matchNone, excludeDir: matchNone}
	var err error

	if s.include, err = svc.NewMatcherFunc(f.Include, f.CaseSensitive, false); err != nil {
		return nil, err
	}
	if s.includeDir, err = svc.NewMatcherFunc(f.IncludeDirs, f.CaseSensitive, false); err != nil {
		return nil, err
	}
	if s.path, err = svc.NewMatcherFunc(f.Paths, f.CaseSensitive, false); err != nil {
		return nil, err
	}
	if s.partialPath, err = svc.NewMatcherFunc(f.Paths, f.CaseSensitive, true); err != nil {
		return nil, err
	}
	if len(f.Exclude) > 0 {
		if s.exclude, err = svc.NewMatcherFunc(f.Exclude, f.CaseSensitive, false); err != nil {
			return nil, err
		}
	}
	if len(f.ExcludeDirs) > 0 {
		if s.excludeDir, err = svc.NewMatcherFunc(f.ExcludeDirs, f.CaseSensitive, false); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *selector) file(dir string, entry Entry) bool {
	return s.include(entry.Name) && !s.exclude(entry.Name) && s.path(joinPath(dir, entry.Name))
}

// dir reports whether a walk should descend into entry. Path patterns are
// tested in prefix mode, so a directory is kept as long as some file below it
// could still match.
func (s *selector) dir(dir string, entry Entry) bool {
	return s.includeDir(entry.Name) && !s.excludeDir(entry.Name) && s.partialPath(joinPath(dir, entry.Name)+"/")
}

// Find walks fsys from root and returns the paths, relative to root, of all
// files selected by filter. The FS is locked for the duration of the walk.
func Find(ctx context.Context, fsys FS, root string, filter Filter, svc *wildcard.Service) ([]string, error) {
	sel, err := filter.compile(svc)
	if err != nil {
		return nil, err
	}

	unlock := fsys.Lock()
	defer unlock()

	root = cleanPath(root)
	found := []string{}
	err = Walk(ctx, fsys, root, func(step Step) ([]Entry, error) {
		rel := relPath(root, step.Path)
		for _, entry := range step.Files {
			if sel.file(rel, entry) {
				found = append(found, joinPath(rel, entry.Name))
			}
		}

		dirs := make([]Entry, 0, len(step.Dirs))
		for _, entry := range step.Dirs {
			if sel.dir(rel, entry) {
				dirs = append(dirs, entry)
			}
		}
		return dirs, nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(found)
	return found, nil
}

func relPath(root, p string) string {
	if root == "" {
		return p
	}
	if p == root {
		return ""
	}
	return p[len(root)+1:]
}
