package fsutil

import (
	"fmt"
	"io/fs"
	"strings"
)

// Filter selects candidate files by path.
type Filter struct {
	Extensions []string // accepted file name suffixes
	Exclude    []string // substrings rejecting any path containing them
}

// Excluded reports whether path contains one of the exclude substrings.
func (f Filter) Excluded(path string) bool {
	for _, s := range f.Exclude {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// Match reports whether path is a candidate file name.
func (f Filter) Match(path string) bool {
	if f.Excluded(path) {
		return false
	}
	for _, ext := range f.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// FindFiles recursively searches root for regular files accepted by filter.
// Symbolic links to regular files are included. Excluded directories are not
// descended into.
func FindFiles(fsys FS, root string, filter Filter) ([]string, error) {
	var files []string
	err := fsys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && filter.Excluded(path) {
				return fs.SkipDir
			}
			return nil
		}
		if !filter.Match(path) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Links are followed; dangling ones and links to directories are skipped.
			info, err := fsys.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files in '%s': %w", root, err)
	}
	return files, nil
}

// FindDirs returns root and every directory below it that is not excluded.
func FindDirs(fsys FS, root string, filter Filter) ([]string, error) {
	var dirs []string
	err := fsys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && filter.Excluded(path) {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list directories in '%s': %w", root, err)
	}
	return dirs, nil
}
