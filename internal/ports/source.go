package ports

import "io"

// CourseSource opens catalog input by path
type CourseSource interface {
	// Open returns a reader over the raw catalog text. The caller closes it.
	Open(path string) (io.ReadCloser, error)
}
