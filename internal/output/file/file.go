// Package file writes parse results to an NDJSON file with buffered I/O
// and optional size-based rotation.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/wagescope/ladder/internal/model"
)

const defaultBufSize = 64 * 1024

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize sets the file size in bytes at which rotation triggers.
// 0 (the default) disables rotation.
func WithMaxSize(bytes int64) Option {
	return func(o *Output) { o.maxSize = bytes }
}

// WithBufSize sets the write buffer size. Default 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output appends NDJSON lines to a file. Safe for concurrent writers.
type Output struct {
	mu      sync.Mutex
	f       *os.File
	buf     []byte
	path    string
	maxSize int64
	written int64
	bufSize int
}

// New creates a file Output writing to path, creating or appending.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{path: path, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.open(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Output) open() error {
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file output: %w", err)
	}
	o.f = f
	o.written = info.Size()
	o.buf = o.buf[:0]
	return nil
}

// Write appends the result as one JSON line, rotating first when the file
// has grown past the configured size.
func (o *Output) Write(_ context.Context, result model.ParseResult) error {
	line, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	line = append(line, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.maxSize > 0 && o.written+int64(len(o.buf))+int64(len(line)) > o.maxSize {
		if err := o.rotateLocked(); err != nil {
			return err
		}
	}

	o.buf = append(o.buf, line...)
	if len(o.buf) >= o.bufSize {
		return o.flushLocked()
	}
	return nil
}

// rotateLocked flushes, closes, renames the current file aside with a
// numeric suffix, and reopens a fresh one.
func (o *Output) rotateLocked() error {
	if err := o.flushLocked(); err != nil {
		return err
	}
	if err := o.f.Close(); err != nil {
		return fmt.Errorf("file output: %w", err)
	}

	for i := 1; ; i++ {
		rotated := fmt.Sprintf("%s.%d", o.path, i)
		if _, err := os.Stat(rotated); os.IsNotExist(err) {
			if err := os.Rename(o.path, rotated); err != nil {
				return fmt.Errorf("file output: rotate: %w", err)
			}
			break
		}
	}
	return o.open()
}

func (o *Output) flushLocked() error {
	if len(o.buf) == 0 {
		return nil
	}
	n, err := o.f.Write(o.buf)
	o.written += int64(n)
	o.buf = o.buf[:0]
	if err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	return nil
}

// Flush forces buffered lines to disk.
func (o *Output) Flush() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.flushLocked()
}

// Close flushes and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.flushLocked(); err != nil {
		o.f.Close()
		return err
	}
	return o.f.Close()
}
