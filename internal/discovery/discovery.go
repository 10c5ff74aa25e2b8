// Package discovery enumerates the files a folder-scoped report considers.
// Patterns use doublestar globs relative to the walked folder; oversized
// files are skipped up front so the report never stalls on generated blobs.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MaxFileSize is the cutoff above which files are ignored (256 KiB).
const MaxFileSize = 256 * 1024

// Walker finds candidate report files under a folder.
type Walker struct {
	include        []string
	exclude        []string
	followSymlinks bool
}

// NewWalker builds a Walker. Empty include means "every file".
func NewWalker(include, exclude []string, followSymlinks bool) *Walker {
	return &Walker{include: include, exclude: exclude, followSymlinks: followSymlinks}
}

// Walk returns the files under folder that pass the include/exclude patterns
// and the size cap. Paths are returned slash-normalized and relative to the
// walked folder's parent layout, matching how documents are keyed in the
// snapshot.
func (w *Walker) Walk(folder string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(folder, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if w.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 && !w.followSymlinks {
			return nil
		}
		if w.excluded(rel) || !w.included(rel) {
			return nil
		}

		info, statErr := os.Stat(path)
		if statErr != nil || info.Size() >= MaxFileSize {
			return nil
		}

		files = append(files, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (w *Walker) included(rel string) bool {
	if len(w.include) == 0 {
		return true
	}
	for _, pattern := range w.include {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func (w *Walker) excluded(rel string) bool {
	if rel == "." {
		return false
	}
	for _, pattern := range w.exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
