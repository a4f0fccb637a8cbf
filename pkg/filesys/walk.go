package filesys

import (
	"context"

	"mosi-wildcard/pkg/logging"
)

// Step is one visited directory with its immediate children split into
// directories and files.
type Step struct {
	Path  string
	Dirs  []Entry
	Files []Entry
}

// VisitFunc handles one Step and returns the directories to descend into.
type VisitFunc func(step Step) ([]Entry, error)

// Walk visits root and its descendants top-down, depth first, children in name
// order.
func Walk(ctx context.Context, fsys FS, root string, visit VisitFunc) error {
	stack := []string{cleanPath(root)}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := fsys.List(ctx, dir)
		if err != nil {
			return err
		}

		step := Step{Path: dir}
		for _, entry := range entries {
			if entry.IsDir {
				step.Dirs = append(step.Dirs, entry)
			} else {
				step.Files = append(step.Files, entry)
			}
		}
		logging.Debug(LOG, "walk %q: %d dirs, %d files", dir, len(step.Dirs), len(step.Files))

		dirs, err := visit(step)
		if err != nil {
			return err
		}
		for i := len(dirs) - 1; i >= 0; i-- {
			stack = append(stack, joinPath(dir, dirs[i].Name))
		}
	}
	return nil
}
