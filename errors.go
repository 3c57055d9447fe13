package citi

import (
	"errors"
	"fmt"

	"github.com/oleg578/citi/keyword"
)

// Reader errors.
var (
	// ErrDataArrayOverIndex is returned when a data pair arrives for a data array that was never declared.
	ErrDataArrayOverIndex = errors.New("citi: data pair without a declared data array")
	// ErrIndependentVariableDefinedTwice is returned when a second VAR_LIST or SEG_LIST follows a completed one.
	ErrIndependentVariableDefinedTwice = errors.New("citi: independent variable defined twice")
	// ErrSingleUseKeywordDefinedTwice is returned when CITIFILE, NAME or VAR appears more than once.
	ErrSingleUseKeywordDefinedTwice = errors.New("citi: single use keyword defined twice")
	// ErrIndependentVariableTooLong is returned when a VAR_LIST or SEG_LIST would grow the independent variable past 1<<20 values.
	ErrIndependentVariableTooLong = errors.New("citi: independent variable too long")
	// ErrOutOfOrderKeyword is returned when a keyword is not allowed in the current section.
	ErrOutOfOrderKeyword = errors.New("citi: keyword out of order")
	// ErrCannotOpen is returned when the source cannot be opened or read.
	ErrCannotOpen = errors.New("citi: cannot open source")
)

// Record validation errors. ErrNoVersion and ErrNoName are also reported by
// the writer, wrapped in *WriteError.
var (
	ErrNoVersion                  = errors.New("citi: no version")
	ErrNoName                     = errors.New("citi: no name")
	ErrNoIndependentVariable      = errors.New("citi: no independent variable")
	ErrNoData                     = errors.New("citi: no data arrays")
	ErrVarAndDataDifferentLengths = errors.New("citi: independent variable and data array lengths differ")
	ErrRealImagDoNotMatch         = errors.New("citi: real and imaginary lengths differ")
)

// Writer errors.
var (
	ErrNoVarName    = errors.New("citi: no independent variable name")
	ErrNoDataName   = errors.New("citi: data array has no name")
	ErrNoDataFormat = errors.New("citi: data array has no format")
	// ErrBadToken is returned when a field would not read back as written:
	// names containing whitespace, free text with line breaks or padding,
	// devices without entries and non-finite values.
	ErrBadToken = errors.New("citi: field cannot be written as a keyword line")
	// ErrCannotWrite is returned when the destination rejects a write.
	ErrCannotWrite = errors.New("citi: cannot write")
)

// LineError reports a line that could not be lexed.
type LineError struct {
	// Line is the zero-based index of the line in the input, blank lines included.
	Line int
	// Err is the lexing failure, usually a *keyword.SyntaxError.
	Err error
}

// Error formats the failure with its line number.
func (e *LineError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("citi: line %d: %v", e.Line, e.Err)
}

// Unwrap returns Err so LineError participates in errors.Is and errors.As.
func (e *LineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KeywordError reports a keyword that is structurally invalid where it appears.
type KeywordError struct {
	// Line is the zero-based index of the offending line.
	Line int
	// Keyword is the offending keyword.
	Keyword keyword.Keyword
	// Err is one of the reader sentinels.
	Err error
}

// Error formats the failure with the offending keyword and line.
func (e *KeywordError) Error() string {
	if e == nil {
		return ""
	}
	if e.Keyword == nil {
		return fmt.Sprintf("citi: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("citi: line %d: %v: %s", e.Line, e.Err, e.Keyword.Kind())
}

// Unwrap returns the underlying sentinel.
func (e *KeywordError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LengthError reports two sequences whose lengths should match.
type LengthError struct {
	Expected int
	Actual   int
	// Index is the zero-based data array index, or -1 when no array is involved.
	Index int
	// Err is ErrVarAndDataDifferentLengths or ErrRealImagDoNotMatch.
	Err error
}

// Error formats the mismatch.
func (e *LengthError) Error() string {
	if e == nil {
		return ""
	}
	if e.Index < 0 {
		return fmt.Sprintf("%v: expected %d, got %d", e.Err, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%v: data array %d: expected %d, got %d", e.Err, e.Index, e.Expected, e.Actual)
}

// Unwrap returns the underlying sentinel.
func (e *LengthError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteError reports why a record could not be serialized.
type WriteError struct {
	// Index is the zero-based data array index, or -1 when the failure is not
	// tied to a data array.
	Index int
	// Sink identifies the destination for ErrCannotWrite failures.
	Sink string
	Err  error
}

// Error formats the failure.
func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Sink != "":
		return fmt.Sprintf("citi: write %s: %v", e.Sink, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("citi: write: data array %d: %v", e.Index, e.Err)
	default:
		return fmt.Sprintf("citi: write: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
