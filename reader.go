package citi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/oleg578/citi/keyword"
)

const defaultBufferSize = 4 << 10 // 4096 bytes

// Reader reads a CITIfile record from a byte stream, one line at a time.
type Reader struct {
	src io.Reader

	// Name identifies the source in ErrCannotOpen diagnostics.
	Name string

	buf    []byte
	bufPos int
	bufLen int
	bufErr error

	lineBuf  []byte
	line     int
	finished bool
}

// NewReader creates a Reader that consumes CITIfile data from r, panicking if
// r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("citi: reader source cannot be nil")
	}

	return &Reader{
		src:     r,
		Name:    sourceName(r),
		buf:     make([]byte, defaultBufferSize),
		lineBuf: make([]byte, 0, 128),
	}
}

// Read consumes the whole source and returns the validated record. Blank
// lines are skipped but still counted, so the Line of a *LineError or
// *KeywordError is the zero-based index of the offending line in the input.
// Read returns io.EOF when called again after the source was consumed.
func (r *Reader) Read() (*Record, error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}
	if r.finished {
		return nil, io.EOF
	}
	r.finished = true

	m := newMachine()
	for {
		raw, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrCannotOpen, r.Name, err)
		}
		n := r.line
		r.line++

		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		kw, err := keyword.Parse(string(raw))
		if err != nil {
			return nil, &LineError{Line: n, Err: err}
		}
		if err := m.process(kw); err != nil {
			return nil, &KeywordError{Line: n, Keyword: kw, Err: err}
		}
	}
	return m.finish()
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// Read reads a single record from src.
func Read(src io.Reader) (*Record, error) {
	return NewReader(src).Read()
}

// ReadFile reads a single record from the named file. Open failures wrap
// ErrCannotOpen.
func ReadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCannotOpen, path, err)
	}
	defer f.Close()

	r := NewReader(f)
	r.Name = path
	return r.Read()
}

// readLine returns the next line without its terminator. LF, CRLF and a lone
// CR all end a line. The returned slice is valid until the next call.
func (r *Reader) readLine() ([]byte, error) {
	r.lineBuf = r.lineBuf[:0]
	pending := false

	for {
		if err := r.fill(); err != nil {
			if err == io.EOF && pending {
				// Final line without a terminator.
				return r.lineBuf, nil
			}
			return nil, err
		}

		// Locate the closest line terminator within the buffered bytes.
		data := r.buf[r.bufPos:r.bufLen]
		next := len(data)
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			next = i
		}
		if i := bytes.IndexByte(data[:next], '\r'); i >= 0 {
			next = i
		}

		if next == len(data) {
			r.lineBuf = append(r.lineBuf, data...)
			r.bufPos = r.bufLen
			pending = true
			continue
		}

		r.lineBuf = append(r.lineBuf, data[:next]...)
		r.bufPos += next + 1
		if data[next] == '\r' {
			// Support CRLF by peeking ahead for '\n' and consuming it together.
			err := r.fill()
			if err == nil && r.buf[r.bufPos] == '\n' {
				r.bufPos++
			} else if err != nil && err != io.EOF {
				return nil, err
			}
		}
		return r.lineBuf, nil
	}
}

// fill refills the buffer from src when it is exhausted and reports the
// source error once no buffered bytes remain.
func (r *Reader) fill() error {
	for r.bufPos >= r.bufLen {
		if r.bufErr != nil {
			return r.bufErr
		}
		n, err := r.src.Read(r.buf)
		r.bufPos = 0
		r.bufLen = n
		r.bufErr = err
	}
	return nil
}

// sourceName returns the name of named sources such as *os.File.
func sourceName(v any) string {
	if n, ok := v.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", v)
}
