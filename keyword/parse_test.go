package keyword

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Keyword
	}{
		{name: "citifile", line: "CITIFILE A.01.00", want: CitiFile{Version: "A.01.00"}},
		{name: "citifileVerbatim", line: "CITIFILE A.01.01 extra", want: CitiFile{Version: "A.01.01 extra"}},
		{name: "name", line: "NAME MEMORY", want: Name{Name: "MEMORY"}},
		{name: "varWithFormat", line: "VAR FREQ MAG 201", want: Var{Name: "FREQ", Format: "MAG", Length: 201}},
		{name: "varWithoutFormat", line: "VAR FREQ 3", want: Var{Name: "FREQ", Length: 3}},
		{name: "varZeroLength", line: "VAR TIME MAG 0", want: Var{Name: "TIME", Format: "MAG", Length: 0}},
		{name: "constant", line: "CONSTANT TIME 0.5", want: Constant{Name: "TIME", Value: "0.5"}},
		{name: "constantWithSpaces", line: "CONSTANT LABEL two words", want: Constant{Name: "LABEL", Value: "two words"}},
		{name: "device", line: "#NA VERSION HP8510B.05.00", want: Device{Name: "NA", Value: "VERSION HP8510B.05.00"}},
		{name: "deviceSingleValue", line: "#NA REGISTER 1", want: Device{Name: "NA", Value: "REGISTER 1"}},
		{name: "segListBegin", line: "SEG_LIST_BEGIN", want: SegListBegin{}},
		{name: "segItem", line: "SEG 1000000000 4000000000 10", want: SegItem{First: 1e9, Last: 4e9, Number: 10}},
		{name: "segItemScientific", line: "SEG 1E9 -4.5e-1 2", want: SegItem{First: 1e9, Last: -0.45, Number: 2}},
		{name: "segListEnd", line: "SEG_LIST_END", want: SegListEnd{}},
		{name: "varListBegin", line: "VAR_LIST_BEGIN", want: VarListBegin{}},
		{name: "varListItemInteger", line: "1000000000", want: VarListItem{Value: 1e9}},
		{name: "varListItemScientific", line: "-1.5E-3", want: VarListItem{Value: -1.5e-3}},
		{name: "varListItemLeadingDot", line: ".25", want: VarListItem{Value: 0.25}},
		{name: "varListEnd", line: "VAR_LIST_END", want: VarListEnd{}},
		{name: "data", line: "DATA S[1,1] RI", want: Data{Name: "S[1,1]", Format: "RI"}},
		{name: "dataPair", line: "-3.54545E-2,-1.38601E-3", want: DataPair{Real: -3.54545e-2, Imag: -1.38601e-3}},
		{name: "dataPairSpaceAfterComma", line: "0.23491E-3, -1.39883E-3", want: DataPair{Real: 0.23491e-3, Imag: -1.39883e-3}},
		{name: "dataPairPlusSign", line: "+1,+2", want: DataPair{Real: 1, Imag: 2}},
		{name: "begin", line: "BEGIN", want: Begin{}},
		{name: "end", line: "END", want: End{}},
		{name: "comment", line: "!Date: 2024-05-01", want: Comment{Text: "Date: 2024-05-01"}},
		{name: "emptyComment", line: "!", want: Comment{Text: ""}},
		{name: "commentKeepsLeadingSpace", line: "! spaced", want: Comment{Text: " spaced"}},
		{name: "commentKeepsTrailingSpace", line: "!x  \t", want: Comment{Text: "x  \t"}},
		{name: "commentDropsTerminator", line: "!x \r\n", want: Comment{Text: "x "}},
		{name: "indentedComment", line: "  !x", want: Comment{Text: "x"}},
		{name: "deviceTrailingSpace", line: "#NA REGISTER 1  ", want: Device{Name: "NA", Value: "REGISTER 1"}},
		{name: "carriageReturn", line: "END\r", want: End{}},
		{name: "surroundingWhitespace", line: "   2.5E0,1E0  ", want: DataPair{Real: 2.5, Imag: 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
			assert.Equal(t, tc.want.Kind(), got.Kind())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want error
	}{
		{name: "empty", line: "", want: ErrBadKeyword},
		{name: "blank", line: "   ", want: ErrBadKeyword},
		{name: "unknownKeyword", line: "FOO BAR", want: ErrBadKeyword},
		{name: "citifileWithoutVersion", line: "CITIFILE", want: ErrBadKeyword},
		{name: "nameWithoutValue", line: "NAME", want: ErrBadKeyword},
		{name: "varMissingLength", line: "VAR FREQ", want: ErrBadKeyword},
		{name: "varTooManyFields", line: "VAR FREQ MAG 3 4", want: ErrBadKeyword},
		{name: "dataMissingFormat", line: "DATA S", want: ErrBadKeyword},
		{name: "deviceWithoutValue", line: "#NA", want: ErrBadKeyword},
		{name: "lowercase", line: "begin", want: ErrBadKeyword},
		{name: "pairMissingImag", line: "1.0,", want: ErrBadKeyword},
		{name: "notANumber", line: "1.2.3", want: ErrBadKeyword},
		{name: "varNegativeLength", line: "VAR FREQ MAG -3", want: ErrNumberParse},
		{name: "varFractionalLength", line: "VAR FREQ MAG 3.5", want: ErrNumberParse},
		{name: "segBadFirst", line: "SEG abc 10 3", want: ErrNumberParse},
		{name: "segInfinity", line: "SEG inf 10 3", want: ErrNumberParse},
		{name: "segNegativeCount", line: "SEG 1 10 -3", want: ErrNumberParse},
		{name: "pairOverflow", line: "1E999,0", want: ErrNumberParse},
		{name: "itemOverflow", line: "-1e400", want: ErrNumberParse},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.line)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.want)

			var syn *SyntaxError
			require.True(t, errors.As(err, &syn), "error %T is not a *SyntaxError", err)
			assert.NotEmpty(t, syn.Error())
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	keywords := []Keyword{
		CitiFile{Version: "A.01.00"},
		Name{Name: "CAL_SET"},
		Var{Name: "FREQ", Format: "MAG", Length: 201},
		Var{Name: "POWER", Length: 0},
		Constant{Name: "TIME", Value: "1.5E-3"},
		Device{Name: "NA", Value: "VERSION HP8510B.05.00"},
		SegListBegin{},
		SegItem{First: 1e9, Last: 2.5e9, Number: 51},
		SegItem{First: -0.125, Last: 0.125, Number: 0},
		SegListEnd{},
		VarListBegin{},
		VarListItem{Value: 1e9},
		VarListItem{Value: 0.1},
		VarListItem{Value: -2.5e-7},
		VarListItem{Value: 1.25e-300},
		VarListItem{Value: 3e22},
		VarListEnd{},
		Data{Name: "S[2,1]", Format: "RI"},
		DataPair{Real: 8.6303e-2, Imag: -1.38601e-3},
		DataPair{Real: 0, Imag: 1e300},
		Begin{},
		End{},
		Comment{Text: "SOURCE: 10 dBm"},
		Comment{Text: " padded  "},
	}

	for _, k := range keywords {
		line := Format(k)
		assert.Equal(t, line, k.String())

		got, err := Parse(line)
		require.NoError(t, err, "Parse(%q)", line)
		if diff := cmp.Diff(k, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", line, diff)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CITIFILE", KindCitiFile.String())
	assert.Equal(t, "SEG_LIST_BEGIN", SegListBegin{}.Kind().String())
	assert.Equal(t, "DATA_PAIR", DataPair{}.Kind().String())
	assert.Equal(t, "COMMENT", KindComment.String())
	assert.Equal(t, "UNKNOWN", Kind(0).String())
	assert.Equal(t, "UNKNOWN", Kind(99).String())
}
