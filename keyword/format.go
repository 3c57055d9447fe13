package keyword

import (
	"math"
	"strconv"
	"strings"
)

// Format renders k as a single line without a terminator.
//
// DataPair components use uppercase scientific notation with a compact
// exponent (8.6303E-2). VarListItem and SegItem values use plain decimal
// notation for ordinary magnitudes, so integer-valued reals such as
// frequencies carry no exponent.
func Format(k Keyword) string {
	switch k := k.(type) {
	case CitiFile:
		return "CITIFILE " + k.Version
	case Name:
		return "NAME " + k.Name
	case Var:
		var b strings.Builder
		b.WriteString("VAR ")
		b.WriteString(k.Name)
		if k.Format != "" {
			b.WriteByte(' ')
			b.WriteString(k.Format)
		}
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(k.Length))
		return b.String()
	case Constant:
		return "CONSTANT " + k.Name + " " + k.Value
	case Device:
		return "#" + k.Name + " " + k.Value
	case SegListBegin:
		return "SEG_LIST_BEGIN"
	case SegItem:
		return "SEG " + FormatDecimal(k.First) + " " + FormatDecimal(k.Last) + " " + strconv.Itoa(k.Number)
	case SegListEnd:
		return "SEG_LIST_END"
	case VarListBegin:
		return "VAR_LIST_BEGIN"
	case VarListItem:
		return FormatDecimal(k.Value)
	case VarListEnd:
		return "VAR_LIST_END"
	case Data:
		return "DATA " + k.Name + " " + k.Format
	case DataPair:
		return FormatScientific(k.Real) + "," + FormatScientific(k.Imag)
	case Begin:
		return "BEGIN"
	case End:
		return "END"
	case Comment:
		return "!" + k.Text
	}
	return ""
}

// FormatScientific formats v in the shortest uppercase scientific form that
// parses back to v, e.g. -3.54545E-2 or 1E9.
func FormatScientific(v float64) string {
	s := strconv.FormatFloat(v, 'E', -1, 64)
	i := strings.IndexByte(s, 'E')
	if i < 0 {
		// NaN and infinities have no exponent.
		return s
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s
	}
	return s[:i+1] + strconv.Itoa(exp)
}

// FormatDecimal formats v in the shortest plain decimal form that parses back
// to v, e.g. 1000000000 or 0.25. Magnitudes below 1e-6 or from 1e21 upward
// would need long runs of zeros and fall back to FormatScientific.
func FormatDecimal(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-6 || a >= 1e21) {
		return FormatScientific(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
