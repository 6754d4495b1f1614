// Package stream adapts filesystem paths into the readable text sources and
// writable text sinks consumed by the engine. Callers that already hold an
// open io.Reader or io.Writer pass it to the engine directly; this package
// only handles the path-opening side, including character-encoding conversion
// on input.
package stream

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

const defaultBufSize = 64 * 1024 // 64KB

// Stdio is the path sentinel for stdin (sources) or stdout (sinks).
const Stdio = "-"

// Source is a readable text source backed by a file or stdin.
type Source struct {
	r io.Reader
	f *os.File // nil for stdin
}

// OpenSource opens path for reading, decoding its bytes from the named
// character encoding into UTF-8. An empty name or "utf-8" reads the bytes
// verbatim. The Stdio sentinel reads stdin.
func OpenSource(path, encoding string) (*Source, error) {
	if path == Stdio {
		r, err := decodeReader(os.Stdin, encoding)
		if err != nil {
			return nil, err
		}
		return &Source{r: r}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stream: open %s", path)
	}
	r, err := decodeReader(f, encoding)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Source{r: r, f: f}, nil
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close closes the underlying file. Closing a stdin-backed source is a no-op.
func (s *Source) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}

// decodeReader wraps r with a decoder for the named IANA character encoding.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, errors.Newf("stream: unknown encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Sink is a buffered writable text sink backed by a file or stdout.
type Sink struct {
	w *bufio.Writer
	f *os.File // nil for stdout
}

// CreateSink creates (or truncates) path for writing. The Stdio sentinel
// writes to stdout.
func CreateSink(path string) (*Sink, error) {
	if path == Stdio {
		return &Sink{w: bufio.NewWriterSize(os.Stdout, defaultBufSize)}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "stream: create %s", path)
	}
	return &Sink{w: bufio.NewWriterSize(f, defaultBufSize), f: f}, nil
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close flushes the buffer and closes the underlying file. Stdout-backed
// sinks are flushed but left open.
func (s *Sink) Close() error {
	if err := s.w.Flush(); err != nil {
		if s.f != nil {
			s.f.Close()
		}
		return errors.Wrap(err, "stream: flush")
	}
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
