package citi

// Validate checks that the record is complete and internally consistent.
// It stops at the first failure and returns ErrNoVersion, ErrNoName,
// ErrNoIndependentVariable, ErrNoData, or a *LengthError wrapping
// ErrVarAndDataDifferentLengths.
//
// When the independent variable has no values, the first data array's length
// is the reference length for the others.
func (r *Record) Validate() error {
	switch {
	case r.Header.Version == "":
		return ErrNoVersion
	case r.Header.Name == "":
		return ErrNoName
	case r.Header.Var.Name == "":
		return ErrNoIndependentVariable
	case len(r.Data) == 0:
		return ErrNoData
	}

	want := len(r.Header.Var.Data)
	if want == 0 {
		want = len(r.Data[0].Samples)
	}
	for i := range r.Data {
		if got := len(r.Data[i].Samples); got != want {
			return &LengthError{Expected: want, Actual: got, Index: i, Err: ErrVarAndDataDifferentLengths}
		}
	}
	return nil
}
