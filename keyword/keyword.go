// Package keyword implements the line grammar of CITIfile records.
//
// Every non-empty line of a CITIfile maps to exactly one Keyword. Parse lexes
// a line into a Keyword and Format renders a Keyword back into a line; the two
// are inverse up to the textual form of real numbers.
package keyword

// Kind identifies the variant of a Keyword.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindCitiFile
	KindName
	KindVar
	KindConstant
	KindDevice
	KindSegListBegin
	KindSegItem
	KindSegListEnd
	KindVarListBegin
	KindVarListItem
	KindVarListEnd
	KindData
	KindDataPair
	KindBegin
	KindEnd
	KindComment
)

var kindNames = [...]string{
	KindCitiFile:     "CITIFILE",
	KindName:         "NAME",
	KindVar:          "VAR",
	KindConstant:     "CONSTANT",
	KindDevice:       "DEVICE",
	KindSegListBegin: "SEG_LIST_BEGIN",
	KindSegItem:      "SEG",
	KindSegListEnd:   "SEG_LIST_END",
	KindVarListBegin: "VAR_LIST_BEGIN",
	KindVarListItem:  "VAR_LIST_ITEM",
	KindVarListEnd:   "VAR_LIST_END",
	KindData:         "DATA",
	KindDataPair:     "DATA_PAIR",
	KindBegin:        "BEGIN",
	KindEnd:          "END",
	KindComment:      "COMMENT",
}

// String returns the keyword name as it appears in a file, or a synthetic
// name for the keywords that have no literal spelling.
func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Keyword is one lexed line. The concrete types in this package are the only
// implementations.
type Keyword interface {
	// Kind reports the variant.
	Kind() Kind
	// String returns the formatted line, identical to Format.
	String() string

	keyword()
}

// CitiFile declares the file format version: CITIFILE <version>.
type CitiFile struct {
	Version string
}

// Name declares the record name: NAME <name>.
type Name struct {
	Name string
}

// Var declares the independent variable: VAR <name> [<format>] <length>.
// An empty Format means the format was omitted.
type Var struct {
	Name   string
	Format string
	Length int
}

// Constant declares a named constant: CONSTANT <name> <value>.
type Constant struct {
	Name  string
	Value string
}

// Device is a device entry: #<name> <value>. Value may contain spaces.
type Device struct {
	Name  string
	Value string
}

// SegListBegin opens a segment list: SEG_LIST_BEGIN.
type SegListBegin struct{}

// SegItem is a segment of equally spaced values: SEG <first> <last> <number>.
type SegItem struct {
	First  float64
	Last   float64
	Number int
}

// SegListEnd closes a segment list: SEG_LIST_END.
type SegListEnd struct{}

// VarListBegin opens an explicit value list: VAR_LIST_BEGIN.
type VarListBegin struct{}

// VarListItem is a single independent variable value on its own line.
type VarListItem struct {
	Value float64
}

// VarListEnd closes an explicit value list: VAR_LIST_END.
type VarListEnd struct{}

// Data declares a data array: DATA <name> <format>.
type Data struct {
	Name   string
	Format string
}

// DataPair is one complex sample: <real>,<imag>.
type DataPair struct {
	Real float64
	Imag float64
}

// Begin opens a data block: BEGIN.
type Begin struct{}

// End closes a data block: END.
type End struct{}

// Comment is a free-form comment line: !<text>.
type Comment struct {
	Text string
}

func (CitiFile) Kind() Kind     { return KindCitiFile }
func (Name) Kind() Kind         { return KindName }
func (Var) Kind() Kind          { return KindVar }
func (Constant) Kind() Kind     { return KindConstant }
func (Device) Kind() Kind       { return KindDevice }
func (SegListBegin) Kind() Kind { return KindSegListBegin }
func (SegItem) Kind() Kind      { return KindSegItem }
func (SegListEnd) Kind() Kind   { return KindSegListEnd }
func (VarListBegin) Kind() Kind { return KindVarListBegin }
func (VarListItem) Kind() Kind  { return KindVarListItem }
func (VarListEnd) Kind() Kind   { return KindVarListEnd }
func (Data) Kind() Kind         { return KindData }
func (DataPair) Kind() Kind     { return KindDataPair }
func (Begin) Kind() Kind        { return KindBegin }
func (End) Kind() Kind          { return KindEnd }
func (Comment) Kind() Kind      { return KindComment }

func (k CitiFile) String() string     { return Format(k) }
func (k Name) String() string         { return Format(k) }
func (k Var) String() string          { return Format(k) }
func (k Constant) String() string     { return Format(k) }
func (k Device) String() string       { return Format(k) }
func (k SegListBegin) String() string { return Format(k) }
func (k SegItem) String() string      { return Format(k) }
func (k SegListEnd) String() string   { return Format(k) }
func (k VarListBegin) String() string { return Format(k) }
func (k VarListItem) String() string  { return Format(k) }
func (k VarListEnd) String() string   { return Format(k) }
func (k Data) String() string         { return Format(k) }
func (k DataPair) String() string     { return Format(k) }
func (k Begin) String() string        { return Format(k) }
func (k End) String() string          { return Format(k) }
func (k Comment) String() string      { return Format(k) }

func (CitiFile) keyword()     {}
func (Name) keyword()         {}
func (Var) keyword()          {}
func (Constant) keyword()     {}
func (Device) keyword()       {}
func (SegListBegin) keyword() {}
func (SegItem) keyword()      {}
func (SegListEnd) keyword()   {}
func (VarListBegin) keyword() {}
func (VarListItem) keyword()  {}
func (VarListEnd) keyword()   {}
func (Data) keyword()         {}
func (DataPair) keyword()     {}
func (Begin) keyword()        {}
func (End) keyword()          {}
func (Comment) keyword()      {}
