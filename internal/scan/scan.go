// Package scan lists the files a run reads.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentflare-ai/mdgen/internal/skip"
)

// ErrNotFound is returned when the target is neither a file nor a directory.
var ErrNotFound = errors.New("directory or file not found")

// Target is a resolved scan target.
type Target struct {
	// Path is the target as given, with "/" separators. Single-file
	// targets are cleaned.
	Path string
	// Root is the directory the output is written to and display names are
	// relative to. It equals Path for directories and is the parent of a
	// single file.
	Root string
	// IsDir reports whether Path is a directory.
	IsDir bool
}

// Resolve stats target and derives its root.
func Resolve(target string) (Target, error) {
	if target == "" {
		return Target{}, fmt.Errorf("%w: empty path", ErrNotFound)
	}
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Target{}, fmt.Errorf("%w: '%s'", ErrNotFound, target)
		}
		return Target{}, err
	}
	p := filepath.ToSlash(target)
	if info.IsDir() {
		return Target{Path: p, Root: trimRoot(p), IsDir: true}, nil
	}
	if !info.Mode().IsRegular() {
		return Target{}, fmt.Errorf("%w: '%s' is not a regular file", ErrNotFound, target)
	}
	p = path.Clean(p)
	return Target{Path: p, Root: path.Dir(p)}, nil
}

func trimRoot(p string) string {
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}

// OutputPath returns the path of the generated document for name.
func (t Target) OutputPath(name string) string {
	return joinRoot(t.Root, strings.Trim(name, "/"))
}

// DisplayName strips the root from p, keeping the leading separator.
func (t Target) DisplayName(p string) string {
	switch {
	case t.Root == "/":
		return p
	case t.Root == "." && !strings.HasPrefix(p, "./"):
		return "/" + p
	}
	return strings.TrimPrefix(p, t.Root)
}

func joinRoot(root, name string) string {
	if root == "/" {
		return "/" + name
	}
	return root + "/" + name
}

// Collect returns the files to read, sorted by full path. A single-file
// target is returned as is; skip rules only apply to directory scans.
// Skipped directories are not descended into.
func Collect(t Target, f *skip.Filter) ([]string, error) {
	if !t.IsDir {
		return []string{t.Path}, nil
	}
	var files []string
	err := walk(t, func(p string, d fs.DirEntry) error {
		if f.Skipped(p) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// walk visits every entry below t.Root with "/" separated paths that keep
// the root prefix as given.
func walk(t Target, fn func(p string, d fs.DirEntry) error) error {
	base := filepath.FromSlash(t.Path)
	return filepath.WalkDir(base, func(osPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if osPath == base {
			return nil
		}
		rel, err := filepath.Rel(base, osPath)
		if err != nil {
			return err
		}
		return fn(joinRoot(t.Root, filepath.ToSlash(rel)), d)
	})
}

// Entry is a path seen while walking a directory target.
type Entry struct {
	Path    string
	IsDir   bool
	Skipped bool
}

// Entries returns every path below a directory target in walk order,
// marking the ones the filter skips. Skipped directories are reported but
// not descended into.
func Entries(t Target, f *skip.Filter) ([]Entry, error) {
	if !t.IsDir {
		return []Entry{{Path: t.Path}}, nil
	}
	var entries []Entry
	err := walk(t, func(p string, d fs.DirEntry) error {
		e := Entry{Path: p, IsDir: d.IsDir(), Skipped: f.Skipped(p)}
		entries = append(entries, e)
		if e.Skipped && e.IsDir {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
