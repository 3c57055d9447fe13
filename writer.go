package citi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/oleg578/citi/keyword"
)

var (
	errNilWriter      = errors.New("citi: writer is nil")
	errWriterNoTarget = errors.New("citi: writer destination cannot be nil")
)

// Writer emits CITIfile records in canonical order through an internal buffer.
type Writer struct {
	dst *bufio.Writer

	// Name identifies the destination in ErrCannotWrite diagnostics.
	Name string

	err error
}

// NewWriter creates a new Writer with internal buffering. Name defaults to the
// destination's Name method when it has one, as *os.File does.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:  bufio.NewWriterSize(w, defaultBufferSize),
		Name: sourceName(w),
	}
}

// Reset updates the underlying writer and clears any sticky error.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.Name = sourceName(dst)
	w.err = nil
}

// Write checks rec and emits its canonical keyword sequence, one line per
// keyword terminated by '\n'. Nothing is written when the check fails. Call
// Flush to push buffered output to the destination.
func (w *Writer) Write(rec *Record) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := Check(rec); err != nil {
		return err
	}
	for _, kw := range rec.Keywords() {
		if err := w.WriteKeyword(kw); err != nil {
			return err
		}
	}
	return nil
}

// WriteKeyword emits a single keyword line without checking its context.
func (w *Writer) WriteKeyword(kw keyword.Keyword) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if _, err := w.dst.WriteString(keyword.Format(kw)); err != nil {
		return w.fail(err)
	}
	if err := w.dst.WriteByte('\n'); err != nil {
		return w.fail(err)
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		return w.fail(err)
	}
	return nil
}

// Error reports the first I/O error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) fail(err error) error {
	w.err = &WriteError{Index: -1, Sink: w.Name, Err: fmt.Errorf("%w: %w", ErrCannotWrite, err)}
	return w.err
}

// Check reports whether rec carries everything the writer needs and reads
// back unchanged once written. Missing header fields, unnamed or unformatted
// data arrays and fields failing ErrBadToken are returned as *WriteError;
// remaining inconsistencies are reported by Validate.
func Check(rec *Record) error {
	if rec == nil {
		return &WriteError{Index: -1, Err: ErrNoVersion}
	}
	h := &rec.Header
	switch {
	case h.Version == "":
		return &WriteError{Index: -1, Err: ErrNoVersion}
	case h.Name == "":
		return &WriteError{Index: -1, Err: ErrNoName}
	case h.Var.Name == "":
		return &WriteError{Index: -1, Err: ErrNoVarName}
	}
	if err := checkHeader(h); err != nil {
		return err
	}
	for i := range rec.Data {
		d := &rec.Data[i]
		switch {
		case d.Name == "":
			return &WriteError{Index: i, Err: ErrNoDataName}
		case d.Format == "":
			return &WriteError{Index: i, Err: ErrNoDataFormat}
		case !isToken(d.Name):
			return badField(i, "data name", d.Name)
		case !isToken(d.Format) || !isTrimmed(d.Format):
			return badField(i, "data format", d.Format)
		}
		for _, s := range d.Samples {
			if !isFinite(real(s)) || !isFinite(imag(s)) {
				return badField(i, "sample", fmt.Sprint(s))
			}
		}
	}
	return rec.Validate()
}

// fieldSpace is the whitespace that separates keyword fields.
const fieldSpace = " \t\n\f\r"

func checkHeader(h *Header) error {
	switch {
	case !isText(h.Version):
		return badField(-1, "version", h.Version)
	case !isText(h.Name):
		return badField(-1, "name", h.Name)
	case !isToken(h.Var.Name):
		return badField(-1, "independent variable name", h.Var.Name)
	case h.Var.Format != "" && !isToken(h.Var.Format):
		return badField(-1, "independent variable format", h.Var.Format)
	}
	for _, v := range h.Var.Data {
		if !isFinite(v) {
			return badField(-1, "independent variable value", fmt.Sprint(v))
		}
	}
	for _, c := range h.Constants {
		if !isToken(c.Name) {
			return badField(-1, "constant name", c.Name)
		}
		if !isText(c.Value) {
			return badField(-1, "constant value", c.Value)
		}
	}
	for _, c := range h.Comments {
		if strings.ContainsAny(c, "\r\n") {
			return badField(-1, "comment", c)
		}
	}
	for i, d := range h.Devices {
		if !isToken(d.Name) || h.DeviceIndex(d.Name) != i {
			return badField(-1, "device name", d.Name)
		}
		if len(d.Entries) == 0 {
			return badField(-1, "device without entries", d.Name)
		}
		for _, e := range d.Entries {
			if !isText(e) {
				return badField(-1, "device entry", e)
			}
		}
	}
	return nil
}

func badField(index int, field, value string) *WriteError {
	return &WriteError{Index: index, Err: fmt.Errorf("%w: %s %q", ErrBadToken, field, value)}
}

// isToken reports whether s is a single whitespace-free field.
func isToken(s string) bool {
	return s != "" && !strings.ContainsAny(s, fieldSpace)
}

// isText reports whether s can end a keyword line: free text on one line that
// neither starts with a field separator nor ends in whitespace.
func isText(s string) bool {
	return s != "" &&
		!strings.ContainsAny(s, "\r\n") &&
		!strings.ContainsAny(s[:1], fieldSpace) &&
		isTrimmed(s)
}

func isTrimmed(s string) bool {
	return strings.TrimRightFunc(s, unicode.IsSpace) == s
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Keywords returns the canonical keyword sequence for the record without
// checking it:
//
//	CITIFILE, NAME, VAR, the VAR_LIST block when the variable has values,
//	constants, comments, device entries, every DATA declaration, then one
//	BEGIN..END block per data array.
//
// Segment lists are never produced; values are always listed explicitly.
func (r *Record) Keywords() []keyword.Keyword {
	h := &r.Header
	n := 3 + len(h.Constants) + len(h.Comments) + 3*len(r.Data)
	if len(h.Var.Data) > 0 {
		n += len(h.Var.Data) + 2
	}
	for _, d := range h.Devices {
		n += len(d.Entries)
	}
	for _, d := range r.Data {
		n += len(d.Samples)
	}

	kws := make([]keyword.Keyword, 0, n)
	kws = append(kws,
		keyword.CitiFile{Version: h.Version},
		keyword.Name{Name: h.Name},
		keyword.Var{Name: h.Var.Name, Format: h.Var.Format, Length: len(h.Var.Data)},
	)
	if len(h.Var.Data) > 0 {
		kws = append(kws, keyword.VarListBegin{})
		for _, v := range h.Var.Data {
			kws = append(kws, keyword.VarListItem{Value: v})
		}
		kws = append(kws, keyword.VarListEnd{})
	}
	for _, c := range h.Constants {
		kws = append(kws, keyword.Constant{Name: c.Name, Value: c.Value})
	}
	for _, c := range h.Comments {
		kws = append(kws, keyword.Comment{Text: c})
	}
	for _, d := range h.Devices {
		for _, e := range d.Entries {
			kws = append(kws, keyword.Device{Name: d.Name, Value: e})
		}
	}
	for _, d := range r.Data {
		kws = append(kws, keyword.Data{Name: d.Name, Format: d.Format})
	}
	for _, d := range r.Data {
		kws = append(kws, keyword.Begin{})
		for _, s := range d.Samples {
			kws = append(kws, keyword.DataPair{Real: real(s), Imag: imag(s)})
		}
		kws = append(kws, keyword.End{})
	}
	return kws
}

// WriteTo writes the record in canonical form to dst. It implements
// io.WriterTo.
func (r *Record) WriteTo(dst io.Writer) (int64, error) {
	cw := &countingWriter{w: dst}
	w := NewWriter(cw)
	w.Name = sourceName(dst)
	if err := w.Write(r); err != nil {
		return cw.n, err
	}
	err := w.Flush()
	return cw.n, err
}

// Write writes rec to dst and flushes.
func Write(dst io.Writer, rec *Record) error {
	w := NewWriter(dst)
	if err := w.Write(rec); err != nil {
		return err
	}
	return w.Flush()
}

// WriteFile writes rec to the named file, creating or truncating it. The
// record is checked before the file is touched.
func WriteFile(path string, rec *Record) error {
	if err := Check(rec); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Index: -1, Sink: path, Err: fmt.Errorf("%w: %w", ErrCannotWrite, err)}
	}
	w := NewWriter(f)
	w.Name = path
	if err := w.Write(rec); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &WriteError{Index: -1, Sink: path, Err: fmt.Errorf("%w: %w", ErrCannotWrite, err)}
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
