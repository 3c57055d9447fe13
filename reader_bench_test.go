package citi

import (
	"bytes"
	"io"
	"testing"
)

func benchmarkRecord() *Record {
	rec := NewRecord(DefaultVersion, "BENCH")
	rec.Header.AddComment("generated sweep")
	rec.Header.AddDevice("NA", "VERSION HP8510B.05.00")
	rec.Header.Var.Name = "FREQ"
	rec.Header.Var.Format = "MAG"
	rec.Header.Var.AppendSeg(1e9, 20e9, 1601)
	for _, name := range []string{"S[1,1]", "S[2,1]", "S[1,2]", "S[2,2]"} {
		d := rec.AddData(name, "RI")
		for i := 0; i < 1601; i++ {
			d.Append(complex(float64(i)*1.25e-3, -float64(i)*3.5e-4))
		}
	}
	return rec
}

func benchmarkData(b *testing.B) []byte {
	var buf bytes.Buffer
	if err := Write(&buf, benchmarkRecord()); err != nil {
		b.Fatal(err)
	}
	return buf.Bytes()
}

func BenchmarkRead(b *testing.B) {
	data := benchmarkData(b)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := Read(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWrite(b *testing.B) {
	rec := benchmarkRecord()
	data := benchmarkData(b)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	w := NewWriter(io.Discard)
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		if err := w.Write(rec); err != nil {
			b.Fatal(err)
		}
		if err := w.Flush(); err != nil {
			b.Fatal(err)
		}
	}
}
