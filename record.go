package citi

// DefaultVersion is the format version assigned by New.
const DefaultVersion = "A.01.00"

// Record is a single CITIfile record: a header and data arrays that are
// parallel-indexed by the header's independent variable.
type Record struct {
	Header Header
	Data   []DataArray
}

// Header holds the record metadata.
type Header struct {
	Version   string
	Name      string
	Comments  []string
	Devices   []Device
	Var       Var
	Constants []Constant
}

// Device groups the free-form entries of one #<name> device.
type Device struct {
	Name    string
	Entries []string
}

// Var is the independent variable. An empty Format means none was declared.
type Var struct {
	Name   string
	Format string
	Data   []float64
}

// Constant is a CONSTANT <name> <value> declaration.
type Constant struct {
	Name  string
	Value string
}

// DataArray is one named series of complex samples.
type DataArray struct {
	Name    string
	Format  string
	Samples []complex128
}

// New returns an empty record with DefaultVersion and no name.
func New() *Record {
	return NewRecord(DefaultVersion, "")
}

// NewRecord returns an empty record with the given version and name.
func NewRecord(version, name string) *Record {
	return &Record{Header: Header{Version: version, Name: name}}
}

// AddData appends an empty data array and returns it for filling.
func (r *Record) AddData(name, format string) *DataArray {
	r.Data = append(r.Data, DataArray{Name: name, Format: format})
	return &r.Data[len(r.Data)-1]
}

// DataByName returns the first data array with the given name.
func (r *Record) DataByName(name string) (*DataArray, bool) {
	for i := range r.Data {
		if r.Data[i].Name == name {
			return &r.Data[i], true
		}
	}
	return nil, false
}

// AddDevice appends entry to the device called name, creating the device
// when it does not exist yet. Device order is first-occurrence order.
func (h *Header) AddDevice(name, entry string) {
	if i := h.DeviceIndex(name); i >= 0 {
		h.Devices[i].Entries = append(h.Devices[i].Entries, entry)
		return
	}
	h.Devices = append(h.Devices, Device{Name: name, Entries: []string{entry}})
}

// Device returns the device called name.
func (h *Header) Device(name string) (*Device, bool) {
	if i := h.DeviceIndex(name); i >= 0 {
		return &h.Devices[i], true
	}
	return nil, false
}

// DeviceIndex returns the index of the device called name, or -1.
func (h *Header) DeviceIndex(name string) int {
	for i := range h.Devices {
		if h.Devices[i].Name == name {
			return i
		}
	}
	return -1
}

// AddComment appends a comment. Leading and trailing spaces are kept; the
// writer rejects comments containing line breaks.
func (h *Header) AddComment(text string) {
	h.Comments = append(h.Comments, text)
}

// AddConstant appends a constant. Names are not deduplicated.
func (h *Header) AddConstant(name, value string) {
	h.Constants = append(h.Constants, Constant{Name: name, Value: value})
}

// Constant returns the value of the first constant called name.
func (h *Header) Constant(name string) (string, bool) {
	for _, c := range h.Constants {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Set overwrites every field of the independent variable.
func (v *Var) Set(name, format string, data []float64) {
	v.Name = name
	v.Format = format
	v.Data = data
}

// Append adds values to the independent variable.
func (v *Var) Append(values ...float64) {
	v.Data = append(v.Data, values...)
}

// AppendSeg appends n equally spaced values from first to last inclusive.
// The endpoints are exact; n == 1 appends first only.
func (v *Var) AppendSeg(first, last float64, n int) {
	switch {
	case n <= 0:
		return
	case n == 1:
		v.Data = append(v.Data, first)
		return
	}
	delta := (last - first) / float64(n-1)
	for i := 0; i < n-1; i++ {
		v.Data = append(v.Data, first+float64(i)*delta)
	}
	v.Data = append(v.Data, last)
}

// Len returns the number of independent variable values.
func (v *Var) Len() int {
	return len(v.Data)
}

// NewDataArray returns an empty data array.
func NewDataArray(name, format string) DataArray {
	return DataArray{Name: name, Format: format}
}

// Append adds samples to the array.
func (d *DataArray) Append(samples ...complex128) {
	d.Samples = append(d.Samples, samples...)
}

// Len returns the number of samples.
func (d *DataArray) Len() int {
	return len(d.Samples)
}

// Real returns the real components of the samples.
func (d *DataArray) Real() []float64 {
	out := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = real(s)
	}
	return out
}

// Imag returns the imaginary components of the samples.
func (d *DataArray) Imag() []float64 {
	out := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = imag(s)
	}
	return out
}

// SetParts replaces the samples from separate real and imaginary slices.
// It returns a *LengthError wrapping ErrRealImagDoNotMatch, with Index -1,
// when the slices differ in length; the array is left unchanged.
func (d *DataArray) SetParts(re, im []float64) error {
	if len(re) != len(im) {
		return &LengthError{Expected: len(re), Actual: len(im), Index: -1, Err: ErrRealImagDoNotMatch}
	}
	samples := make([]complex128, len(re))
	for i := range re {
		samples[i] = complex(re[i], im[i])
	}
	d.Samples = samples
	return nil
}
