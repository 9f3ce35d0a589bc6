// Package sink provides output targets for rendered documents.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("sink closed")

// File is a buffered file target. Open never fails outright: a failed open
// is recorded and reported by Err, so callers can check the sink before
// rendering into it.
//
// Output goes to a temporary file next to the target. Close renames it over
// the target and Abort removes it, so the target is never left truncated.
type File struct {
	path string
	f    *os.File
	w    *bufio.Writer
	err  error
}

// Open prepares a sink for path. Missing parent directories are created
// when mkdir is true.
func Open(path string, mkdir bool) *File {
	s := &File{path: path}
	dir := filepath.Dir(path)
	if mkdir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.err = fmt.Errorf("create output dir: %w", err)
			return s
		}
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		s.err = fmt.Errorf("open output: %w", err)
		return s
	}
	s.f = f
	s.w = bufio.NewWriter(f)
	return s
}

// Path returns the target path.
func (s *File) Path() string { return s.path }

// Err reports the open error, if any.
func (s *File) Err() error { return s.err }

func (s *File) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.w == nil {
		return 0, ErrClosed
	}
	return s.w.Write(p)
}

// Close flushes buffered output and moves it onto the target path. It is
// safe to call on a sink that failed to open.
func (s *File) Close() error {
	if s.f == nil {
		return nil
	}
	tmp := s.f.Name()
	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	s.f, s.w = nil, nil
	if flushErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("flush output: %w", flushErr)
	}
	if closeErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("close output: %w", closeErr)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}

// Abort discards anything written and leaves the target path as it was.
func (s *File) Abort() error {
	if s.f == nil {
		return nil
	}
	tmp := s.f.Name()
	s.f.Close()
	s.f, s.w = nil, nil
	if err := os.Remove(tmp); err != nil {
		return fmt.Errorf("discard output: %w", err)
	}
	return nil
}
