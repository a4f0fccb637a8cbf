// Package filesys walks directory trees and selects files with wildcard
// filters. Trees are read through the FS interface, which is implemented for
// the local filesystem and for any storage reachable through afs.
package filesys

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"
)

const LOG = "FILESYS"

var ErrNotDirectory = errors.New("not a directory")

type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

type FS interface {
	// List returns the immediate children of dir, a slash separated path
	// relative to the FS root. "" is the root itself.
	List(ctx context.Context, dir string) ([]Entry, error)
	// Lock acquires exclusive use of the FS and returns its release.
	Lock() func()
}

func cleanPath(p string) string {
	p = path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "/")
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
