package filesys

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/viant/afs"
)

// AFS is an FS rooted at an afs URL, e.g. file:///data, mem://localhost/x
// or s3://bucket/prefix.
type AFS struct {
	mu      sync.Mutex
	service afs.Service
	baseURL string
}

func NewAFS(baseURL string) *AFS {
	return NewAFSWithService(afs.New(), baseURL)
}

func NewAFSWithService(service afs.Service, baseURL string) *AFS {
	return &AFS{service: service, baseURL: strings.TrimRight(baseURL, "/")}
}

func (a *AFS) URL(dir string) string {
	dir = cleanPath(dir)
	if dir == "" {
		return a.baseURL
	}
	return a.baseURL + "/" + dir
}

func (a *AFS) List(ctx context.Context, dir string) ([]Entry, error) {
	URL := a.URL(dir)
	objects, err := a.service.List(ctx, URL)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(objects))
	for i, object := range objects {
		// afs lists the directory itself first
		if i == 0 && object.IsDir() && (strings.TrimRight(object.URL(), "/") == URL || object.Name() == path.Base(URL)) {
			continue
		}
		entries = append(entries, Entry{Name: object.Name(), IsDir: object.IsDir(), Size: object.Size()})
	}
	sortEntries(entries)
	return entries, nil
}

func (a *AFS) Lock() func() {
	a.mu.Lock()
	return a.mu.Unlock
}
