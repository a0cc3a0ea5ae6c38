// Package discovery walks a project tree collecting the source files the
// scanners operate on.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	".git":             true,
	".svn":             true,
	".hg":              true,
	"node_modules":     true,
	"vendor":           true,
	"bower_components": true,
	"dist":             true,
	"build":            true,
	"out":              true,
	"bin":              true,
	"coverage":         true,
	"__pycache__":      true,
	".next":            true,
	".cache":           true,
}

// Walker implements file discovery over the local filesystem.
type Walker struct{}

func New() *Walker {
	return &Walker{}
}

// Discover returns the absolute paths under root whose filename ends with
// one of the given extensions, sorted alphabetically. Directories in the
// skip set are pruned; unreadable directories are treated as empty rather
// than failing the walk.
func (w *Walker) Discover(root string, extensions ...string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != absRoot && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		for _, ext := range extensions {
			if strings.HasSuffix(name, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Skipped reports whether a directory name is in the built-in ignore set.
// The fixers share it so their recursive mode prunes the same trees.
func Skipped(dirName string) bool {
	return skipDirs[dirName]
}
