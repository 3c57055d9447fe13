package keyword

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrBadKeyword is returned when a line matches no keyword form.
	ErrBadKeyword = errors.New("citi: bad keyword")
	// ErrNumberParse is returned when a numeric field of a recognised keyword cannot be converted.
	ErrNumberParse = errors.New("citi: cannot parse number")
	// ErrBadRegex is returned when a keyword pattern yields an unexpected number of captures.
	ErrBadRegex = errors.New("citi: bad keyword pattern")
)

// SyntaxError describes a line that could not be lexed.
type SyntaxError struct {
	// Text is the offending line, or the offending field for ErrNumberParse.
	Text string
	Err  error
}

// Error formats the failure with the offending text.
func (e *SyntaxError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Text)
}

// Unwrap returns the underlying sentinel.
func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

const number = `[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`

var numberRE = regexp.MustCompile(`^` + number + `$`)

type rule struct {
	re       *regexp.Regexp
	captures int
	build    func(m []string) (Keyword, error)
}

// rules are tried in order; the first match wins.
var rules = []rule{
	{
		re:       regexp.MustCompile(`^CITIFILE\s+(.+)$`),
		captures: 1,
		build: func(m []string) (Keyword, error) {
			return CitiFile{Version: m[1]}, nil
		},
	},
	{
		re:       regexp.MustCompile(`^NAME\s+(.+)$`),
		captures: 1,
		build: func(m []string) (Keyword, error) {
			return Name{Name: m[1]}, nil
		},
	},
	{
		re:       regexp.MustCompile(`^VAR\s+(\S+)\s+(?:(\S+)\s+)?(\S+)$`),
		captures: 3,
		build: func(m []string) (Keyword, error) {
			n, err := parseCount(m[3])
			if err != nil {
				return nil, err
			}
			return Var{Name: m[1], Format: m[2], Length: n}, nil
		},
	},
	{
		re:       regexp.MustCompile(`^CONSTANT\s+(\S+)\s+(.+)$`),
		captures: 2,
		build: func(m []string) (Keyword, error) {
			return Constant{Name: m[1], Value: m[2]}, nil
		},
	},
	{
		re:       regexp.MustCompile(`^#(\S+)\s+(.+)$`),
		captures: 2,
		build: func(m []string) (Keyword, error) {
			return Device{Name: m[1], Value: m[2]}, nil
		},
	},
	{
		re:    regexp.MustCompile(`^SEG_LIST_BEGIN$`),
		build: func([]string) (Keyword, error) { return SegListBegin{}, nil },
	},
	{
		re:       regexp.MustCompile(`^SEG\s+(\S+)\s+(\S+)\s+(\S+)$`),
		captures: 3,
		build: func(m []string) (Keyword, error) {
			first, err := parseReal(m[1])
			if err != nil {
				return nil, err
			}
			last, err := parseReal(m[2])
			if err != nil {
				return nil, err
			}
			n, err := parseCount(m[3])
			if err != nil {
				return nil, err
			}
			return SegItem{First: first, Last: last, Number: n}, nil
		},
	},
	{
		re:    regexp.MustCompile(`^SEG_LIST_END$`),
		build: func([]string) (Keyword, error) { return SegListEnd{}, nil },
	},
	{
		re:    regexp.MustCompile(`^VAR_LIST_BEGIN$`),
		build: func([]string) (Keyword, error) { return VarListBegin{}, nil },
	},
	{
		re:       regexp.MustCompile(`^(` + number + `)$`),
		captures: 1,
		build: func(m []string) (Keyword, error) {
			v, err := parseReal(m[1])
			if err != nil {
				return nil, err
			}
			return VarListItem{Value: v}, nil
		},
	},
	{
		re:    regexp.MustCompile(`^VAR_LIST_END$`),
		build: func([]string) (Keyword, error) { return VarListEnd{}, nil },
	},
	{
		re:       regexp.MustCompile(`^DATA\s+(\S+)\s+(\S+)$`),
		captures: 2,
		build: func(m []string) (Keyword, error) {
			return Data{Name: m[1], Format: m[2]}, nil
		},
	},
	{
		re:       regexp.MustCompile(`^(` + number + `)\s*,\s*(` + number + `)$`),
		captures: 2,
		build: func(m []string) (Keyword, error) {
			re, err := parseReal(m[1])
			if err != nil {
				return nil, err
			}
			im, err := parseReal(m[2])
			if err != nil {
				return nil, err
			}
			return DataPair{Real: re, Imag: im}, nil
		},
	},
	{
		re:    regexp.MustCompile(`^BEGIN$`),
		build: func([]string) (Keyword, error) { return Begin{}, nil },
	},
	{
		re:    regexp.MustCompile(`^END$`),
		build: func([]string) (Keyword, error) { return End{}, nil },
	},
	{
		re:       regexp.MustCompile(`^!(.*)$`),
		captures: 1,
		build: func(m []string) (Keyword, error) {
			return Comment{Text: m[1]}, nil
		},
	},
}

// Parse lexes a single line into a Keyword. Surrounding whitespace is
// ignored, except that comment text keeps its trailing spaces and only loses
// the line terminator. Blank lines are not keywords and must be skipped by the
// caller; Parse reports them as ErrBadKeyword.
//
// Failures are returned as *SyntaxError wrapping ErrBadKeyword or
// ErrNumberParse.
func Parse(line string) (Keyword, error) {
	text := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(text, "!") {
		text = strings.TrimRight(text, "\r\n")
	} else {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}
	for i := range rules {
		m := rules[i].re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) != rules[i].captures+1 {
			return nil, &SyntaxError{Text: text, Err: ErrBadRegex}
		}
		return rules[i].build(m)
	}
	return nil, &SyntaxError{Text: text, Err: ErrBadKeyword}
}

// parseReal accepts decimal and scientific forms only; strconv alone would
// also take hex floats, infinities and NaN.
func parseReal(s string) (float64, error) {
	if !numberRE.MatchString(s) {
		return 0, &SyntaxError{Text: s, Err: ErrNumberParse}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &SyntaxError{Text: s, Err: ErrNumberParse}
	}
	return v, nil
}

// parseCount accepts non-negative decimal integers only.
func parseCount(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &SyntaxError{Text: s, Err: ErrNumberParse}
	}
	return int(v), nil
}
