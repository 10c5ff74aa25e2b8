// Package project locates the project root a folder-scoped report walks
// when no folders are given explicitly.
package project

import (
	"os"
	"path/filepath"
)

// rootMarkers are the files/directories that identify a project root.
var rootMarkers = []string{".git", ".lintnavrc.json", ".lintnavrc.yaml", ".lintnavrc.yml"}

// FindRoot searches for a project root starting from the given path and
// climbing up the directory tree. Falls back to the start path when no
// marker is found.
func FindRoot(startPath string) (string, error) {
	if startPath == "" {
		startPath = "."
	}
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		if isRoot(currentDir) {
			return currentDir, nil
		}
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}
	return absPath, nil
}

func isRoot(path string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	return false
}
