package citi

import (
	"github.com/oleg578/citi/keyword"
)

// state is the section of the record the machine is currently inside.
type state int

const (
	stateHeader state = iota
	stateData
	stateVarList
	stateSeqList
)

func (s state) String() string {
	switch s {
	case stateHeader:
		return "Header"
	case stateData:
		return "Data"
	case stateVarList:
		return "VarList"
	case stateSeqList:
		return "SeqList"
	default:
		return "unknown"
	}
}

// maxVarPoints bounds the independent variable so a single SEG line cannot
// expand into an arbitrary allocation.
const maxVarPoints = 1 << 20

// machine assembles a Record from a keyword stream. It owns the record until
// finish hands it over. process never mutates anything when it fails.
type machine struct {
	state  state
	record *Record

	// dataIndex selects the data array receiving data pairs.
	dataIndex int
	// ivSealed is set once a VAR_LIST or SEG_LIST has been closed.
	ivSealed bool

	haveVersion bool
	haveName    bool
	haveVar     bool
}

func newMachine() *machine {
	return &machine{state: stateHeader, record: New()}
}

// process applies one keyword. Failures are reader sentinels; the caller adds
// the line and keyword.
func (m *machine) process(kw keyword.Keyword) error {
	switch m.state {
	case stateHeader:
		return m.header(kw)
	case stateData:
		return m.data(kw)
	case stateVarList:
		return m.varList(kw)
	case stateSeqList:
		return m.seqList(kw)
	}
	return ErrOutOfOrderKeyword
}

func (m *machine) header(kw keyword.Keyword) error {
	h := &m.record.Header
	switch kw := kw.(type) {
	case keyword.CitiFile:
		if m.haveVersion {
			return ErrSingleUseKeywordDefinedTwice
		}
		h.Version = kw.Version
		m.haveVersion = true
	case keyword.Name:
		if m.haveName {
			return ErrSingleUseKeywordDefinedTwice
		}
		h.Name = kw.Name
		m.haveName = true
	case keyword.Var:
		if m.haveVar {
			return ErrSingleUseKeywordDefinedTwice
		}
		h.Var.Name = kw.Name
		h.Var.Format = kw.Format
		m.haveVar = true
	case keyword.Constant:
		h.AddConstant(kw.Name, kw.Value)
	case keyword.Device:
		h.AddDevice(kw.Name, kw.Value)
	case keyword.Comment:
		h.AddComment(kw.Text)
	case keyword.Data:
		m.record.AddData(kw.Name, kw.Format)
	case keyword.VarListBegin:
		if m.ivSealed {
			return ErrIndependentVariableDefinedTwice
		}
		m.state = stateVarList
	case keyword.SegListBegin:
		if m.ivSealed {
			return ErrIndependentVariableDefinedTwice
		}
		m.state = stateSeqList
	case keyword.Begin:
		m.state = stateData
	default:
		return ErrOutOfOrderKeyword
	}
	return nil
}

func (m *machine) data(kw keyword.Keyword) error {
	switch kw := kw.(type) {
	case keyword.DataPair:
		if m.dataIndex >= len(m.record.Data) {
			return ErrDataArrayOverIndex
		}
		m.record.Data[m.dataIndex].Append(complex(kw.Real, kw.Imag))
	case keyword.End:
		m.dataIndex++
		m.state = stateHeader
	default:
		return ErrOutOfOrderKeyword
	}
	return nil
}

func (m *machine) varList(kw keyword.Keyword) error {
	switch kw := kw.(type) {
	case keyword.VarListItem:
		if m.record.Header.Var.Len() >= maxVarPoints {
			return ErrIndependentVariableTooLong
		}
		m.record.Header.Var.Append(kw.Value)
	case keyword.VarListEnd:
		m.ivSealed = true
		m.state = stateHeader
	default:
		return ErrOutOfOrderKeyword
	}
	return nil
}

func (m *machine) seqList(kw keyword.Keyword) error {
	switch kw := kw.(type) {
	case keyword.SegItem:
		if kw.Number > maxVarPoints-m.record.Header.Var.Len() {
			return ErrIndependentVariableTooLong
		}
		m.record.Header.Var.AppendSeg(kw.First, kw.Last, kw.Number)
	case keyword.SegListEnd:
		m.ivSealed = true
		m.state = stateHeader
	default:
		return ErrOutOfOrderKeyword
	}
	return nil
}

// finish validates the record and releases it.
func (m *machine) finish() (*Record, error) {
	if err := m.record.Validate(); err != nil {
		return nil, err
	}
	rec := m.record
	m.record = nil
	return rec, nil
}
