// Package source supplies raw title strings to the batch pipeline. All the
// per-source ingestion machinery (CSV column mapping, portal scraping) lives
// outside this repository; whatever it is, it hands the pipeline one title
// per line.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Read buffer and line limits. A single title should never be near these;
// lines beyond maxLine are a malformed upstream export and are skipped
// with a warning, the rest of the input keeps flowing.
const (
	readBuf = 64 * 1024
	maxLine = 1024 * 1024
)

// Source streams raw titles until exhausted or the context is cancelled.
type Source interface {
	Stream(ctx context.Context) (<-chan string, error)
	Close() error
}

// LineSource reads one raw title per line from an io.Reader, skipping
// blank lines.
type LineSource struct {
	r      io.Reader
	closer io.Closer
}

// New creates a LineSource over an arbitrary reader.
func New(r io.Reader) *LineSource {
	return &LineSource{r: r}
}

// Open creates a LineSource for a file path; "-" means stdin.
func Open(path string) (*LineSource, error) {
	if path == "-" {
		return New(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return &LineSource{r: f, closer: f}, nil
}

// Stream starts a goroutine that feeds lines into the returned channel.
// The channel closes when the input is exhausted, the input fails, or ctx
// is cancelled. Over-long lines are skipped, not fatal; a read error is
// logged before the channel closes.
func (s *LineSource) Stream(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 256)
	r := bufio.NewReaderSize(s.r, readBuf)

	go func() {
		defer close(ch)
		for {
			line, tooLong, err := readLine(r)
			if err != nil {
				if err != io.EOF {
					slog.Error("source: read failed", "error", err)
				}
				return
			}
			if tooLong {
				slog.Warn("source: line over limit skipped", "limit_bytes", maxLine)
				continue
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			select {
			case ch <- line:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// readLine assembles one full line from fragments. Once a line grows past
// maxLine its content is discarded but the reader still consumes through
// to the newline, so the following lines survive.
func readLine(r *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLine {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Close releases the underlying file, if any.
func (s *LineSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
