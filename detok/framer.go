package detok

import (
	"github.com/BinaryMelodies/msbasic-savefile-re/decerr"
)

// LineRecord is one physical program line as framed in the save file.
// Payload still holds the token-encoded bytes; PayloadOff is the file
// offset of its first byte.
type LineRecord struct {
	HasLineNumber bool
	LineNumber    uint16
	LeadingSpaces byte
	Payload       []byte
	PayloadOff    int
}

// bit 15 of the length word flags the presence of a line number
const hasNumFlag = 0x8000

// nextRecord reads one line record from the cursor. At the zero length
// end-of-program sentinel it returns nil with no error.
//
// The length word counts itself, the leading-space byte, the optional
// line number word and the payload. The 0x00 terminator byte follows the
// payload and is not counted.
func nextRecord(rdr *progRdr) (*LineRecord, error) {
	start := rdr.offset()

	word, err := rdr.readU16()

	if err != nil {
		return nil, err
	}

	if word == 0 {
		return nil, nil
	}

	rec := &LineRecord{HasLineNumber: word&hasNumFlag != 0}
	length := int(word &^ hasNumFlag)

	header := 3
	if rec.HasLineNumber {
		header += 2
	}

	if length < header {
		return nil, decerr.New(decerr.Framing, start, "line length %d below minimum header size %d", length, header)
	}

	rec.LeadingSpaces, err = rdr.readByte()

	if err != nil {
		return nil, err
	}

	if rec.HasLineNumber {
		rec.LineNumber, err = rdr.readU16()

		if err != nil {
			return nil, err
		}
	}

	rec.PayloadOff = rdr.offset()
	rec.Payload, err = rdr.readBytes(length - header)

	if err != nil {
		return nil, err
	}

	term, err := rdr.readByte()

	if err != nil {
		return nil, err
	}

	if term != 0 {
		return nil, decerr.New(decerr.Framing, rdr.offset()-1, "expected line terminator, got 0x%02X, declared length inconsistent", term)
	}

	return rec, nil
}
