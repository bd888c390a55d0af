package decerr

import "fmt"

// The kinds of failure a decode run can hit. Every one of them is fatal
// to the file being decoded; there is no partial-result recovery.
const (
	Framing = iota + 1
	UnsupportedFormat
	IdentifierOutOfRange
	UnknownToken
	TruncatedInput
)

// Error reports where decoding stopped and why. Offset is the byte
// position in the input file at which the problem was detected.
type Error struct {
	Kind   int
	Offset int
	detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset 0x%04X: %s", TextForKind(e.Kind), e.Offset, e.detail)
}

// New builds an Error of the given kind at the given byte offset
func New(kind int, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, detail: fmt.Sprintf(format, args...)}
}

// TextForKind returns the error text based on error kind
func TextForKind(kind int) string {
	switch kind {
	case Framing:
		return "Framing error"
	case UnsupportedFormat:
		return "Unsupported format"
	case IdentifierOutOfRange:
		return "Identifier out of range"
	case UnknownToken:
		return "Unknown token"
	case TruncatedInput:
		return "Truncated input"
	}

	return "Unprintable error"
}

// IsKind tells whether err is a decode Error of the given kind
func IsKind(err error, kind int) bool {
	de, ok := err.(*Error)

	return ok && (de.Kind == kind)
}
