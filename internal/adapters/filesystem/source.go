package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source implements ports.CourseSource by opening files on disk
type Source struct {
	baseDir string
}

// NewSource creates a source resolving relative paths against baseDir.
// An empty baseDir means the working directory.
func NewSource(baseDir string) *Source {
	return &Source{baseDir: ExpandHome(baseDir)}
}

// Open opens the catalog file at path
func (s *Source) Open(path string) (io.ReadCloser, error) {
	resolved := s.Resolve(path)

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("catalog path is a directory: %s", resolved)
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return f, nil
}

// Resolve expands ~ and joins relative paths onto the base directory
func (s *Source) Resolve(path string) string {
	path = ExpandHome(strings.TrimSpace(path))
	if s.baseDir != "" && !filepath.IsAbs(path) {
		return filepath.Join(s.baseDir, path)
	}
	return path
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
