// Package source discovers and reads shader sources and include fragments.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"

	"shinc/common"
)

// WalkFunc is the type of the function called for each regular file visited
// by Walk. The path argument is full path to the file. If an error is
// returned, processing stops.
type WalkFunc func(path string, info fs.FileInfo) error

// Walk visits regular files located directly in dir in natural order of their
// names, calling walkFn for each. Symbolic links are followed, directories
// and other special entries are skipped. Inability to list dir is reported as
// common.ErrorKindMissingDirectory, entry which cannot be examined as
// common.ErrorKindUnreadableFile.
func Walk(dir string, walkFn WalkFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return common.NewPathError(common.ErrorKindMissingDirectory, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Sort(natural.StringSlice(names))

	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			// dangling link or entry removed while we were looking
			continue
		}
		if err != nil {
			return common.NewPathError(common.ErrorKindUnreadableFile, path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if err := walkFn(path, info); err != nil {
			return err
		}
	}
	return nil
}

// Stem returns file name without its extension. Names starting with a dot
// and having no other dots are returned unchanged.
func Stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return name[:len(name)-len(ext)]
}

func isDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return common.NewPathError(common.ErrorKindMissingDirectory, path, err)
	}
	if !fi.IsDir() {
		return common.NewPathError(common.ErrorKindMissingDirectory, path, fmt.Errorf("not a directory"))
	}
	return nil
}
