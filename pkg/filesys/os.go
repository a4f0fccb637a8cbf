package filesys

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// OS is an FS rooted at a local directory.
type OS struct {
	mu   sync.Mutex
	root string
}

func NewOS(root string) (*OS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}
	return &OS{root: abs}, nil
}

func (o *OS) Root() string {
	return o.root
}

func (o *OS) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	des, err := os.ReadDir(filepath.Join(o.root, filepath.FromSlash(cleanPath(dir))))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		entry := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if !entry.IsDir {
			info, err := de.Info()
			if err != nil {
				// removed while listing
				if os.IsNotExist(err) {
					continue
				}
				return nil, err
			}
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}
	sortEntries(entries)
	return entries, nil
}

func (o *OS) Lock() func() {
	o.mu.Lock()
	return o.mu.Unlock
}
