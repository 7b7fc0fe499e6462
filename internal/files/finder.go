package files

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultIgnore lists the subtrees that are never searched.
var DefaultIgnore = []string{
	"node_modules",
	".git",
	"__pycache__",
	".venv",
}

// Finder searches and reads the files under a root directory.
type Finder struct {
	fsys   fs.FS
	ignore []string
}

// NewFinder creates a Finder rooted at dir. Patterns use path.Match syntax
// and are tested against both the entry name and its path relative to dir;
// a trailing "/**" is accepted and means the directory itself.
func NewFinder(dir string, ignore []string) *Finder {
	return NewFinderFS(os.DirFS(dir), ignore)
}

// NewFinderFS creates a Finder over an arbitrary file system.
func NewFinderFS(fsys fs.FS, ignore []string) *Finder {
	patterns := make([]string, 0, len(ignore))
	for _, p := range ignore {
		p = strings.TrimSuffix(strings.TrimSpace(p), "/**")
		p = strings.Trim(p, "/")
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return &Finder{fsys: fsys, ignore: patterns}
}

// Search returns every regular file whose relative path contains query,
// ignoring case. The result is sorted. An empty query matches nothing.
func (f *Finder) Search(query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}
	needle := strings.ToLower(query)

	all, err := f.List()
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, p := range all {
		if strings.Contains(strings.ToLower(p), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// List returns every regular file under the root that is not ignored, as
// slash-separated relative paths in lexical order.
func (f *Finder) List() ([]string, error) {
	var out []string
	err := fs.WalkDir(f.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return err
			}
			// Unreadable entries below the root are skipped.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if p == "." {
			return nil
		}
		if f.ignored(p, d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

// ReadFile returns the contents of the file at rel.
func (f *Finder) ReadFile(rel string) (string, error) {
	rel = path.Clean(filepath.ToSlash(rel))
	if !fs.ValidPath(rel) {
		return "", &fs.PathError{Op: "read", Path: rel, Err: fs.ErrInvalid}
	}
	data, err := fs.ReadFile(f.fsys, rel)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *Finder) ignored(rel, name string) bool {
	for _, pattern := range f.ignore {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
		if ok, err := path.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
