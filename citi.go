// # citi: CITIfile Records for Go
//
// citi reads and writes CITIfile records, the line-oriented ASCII interchange
// format used by network analyzers and other instruments for measurement data.
// A record carries a textual header (version, name, comments, devices,
// constants and the independent variable) plus one or more data arrays of
// complex samples indexed by that variable.
//
// # Features
//
//   - Line reader driving a strict four-state machine (Header, Data, VarList,
//     SeqList) that assembles and validates a Record.
//   - Canonical writer that emits the header and data blocks in a fixed order,
//     converting SEG_LIST segments into explicit VAR_LIST values.
//   - Structured errors: *LineError for lexing failures, *KeywordError for
//     structural failures, *LengthError for inconsistent arrays, *WriteError
//     for records that cannot be serialized. Every variant has a sentinel that
//     works with errors.Is.
//   - The line grammar lives in the keyword subpackage for callers that need to
//     lex or emit single lines.
//
// # Getting Started
//
//	rec, err := citi.ReadFile("measurement.cti")
//	if err != nil {
//		return err
//	}
//	fmt.Println(rec.Header.Name, rec.Header.Var.Len(), len(rec.Data))
//	return citi.WriteFile("canonical.cti", rec)
package citi
