package keyword

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func FuzzParseFormat(f *testing.F) {
	seeds := []string{
		"",
		"CITIFILE A.01.00",
		"NAME MEMORY",
		"VAR FREQ MAG 3",
		"VAR FREQ 3",
		"CONSTANT A b c",
		"#NA VERSION HP8510B.05.00",
		"SEG 10 100 3",
		"SEG_LIST_BEGIN",
		"1E9",
		"-3.54545E-2,-1.38601E-3",
		"DATA S RI",
		"! comment",
		"BEGIN\r",
		"1.2.3",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		if len(line) > 1<<10 {
			t.Skip()
		}

		kw, err := Parse(line)
		if err != nil {
			return
		}
		text := Format(kw)
		again, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(Format(%#v)) = %q failed: %v", kw, text, err)
		}
		if diff := cmp.Diff(kw, again); diff != "" {
			t.Fatalf("round trip mismatch for %q (-first +second):\n%s", line, diff)
		}
	})
}
