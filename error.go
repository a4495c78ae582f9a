package jsonpad

import "fmt"

var (
	// Base error; every error in jsonpad inherits from this
	Err = fmt.Errorf("jsonpad error")

	// Parse and serialization errors
	ErrDecode = fmt.Errorf("decoding error (%w)", Err)
	ErrEncode = fmt.Errorf("encoding error (%w)", Err)
	ErrFormat = fmt.Errorf("format error (%w)", ErrEncode)
	ErrMinify = fmt.Errorf("minify error (%w)", ErrEncode)

	// Export and conversion errors
	ErrUnknownFormat = fmt.Errorf("unknown format (%w)", Err)
	ErrInvalidType   = fmt.Errorf("invalid type (%w)", Err)

	// Repair collaborator errors
	ErrRepair           = fmt.Errorf("repair error (%w)", Err)
	ErrRepairUnverified = fmt.Errorf("repaired text still invalid (%w)", ErrRepair)
)

// SyntaxError is a located JSON parse failure. Line and Column are 1-based;
// 0 means the position could not be determined. Offset is the 0-based
// character offset derived from Line/Column; it is 0 when either is unknown,
// so callers must treat 0 as "unknown" rather than "start of document".
type SyntaxError struct {
	Message string
	Line    int
	Column  int
	Offset  int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("line %d column %d: %s", e.Line, e.Column, e.Message)
	}

	return e.Message
}

func (e *SyntaxError) Unwrap() error {
	return ErrDecode
}
