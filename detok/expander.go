package detok

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/BinaryMelodies/msbasic-savefile-re/bastoken"
	"github.com/BinaryMelodies/msbasic-savefile-re/decerr"
)

// expander walks one line's payload bytes left to right and grows the
// rendered text. Each token's byte width is fixed by its leading byte,
// so the scan never backtracks.
type expander struct {
	rdr    *progRdr
	idents *IdentTable
	lookup func(byte) (bastoken.Entry, bool)
	cm     *charmap.Charmap

	line       string
	inStr      bool // inside a string literal, bytes copy verbatim
	comment    bool // inside a comment, bytes copy verbatim to end of line
	remPending bool // REM just emitted, next byte may be the apostrophe token
	tickStarts bool // a literal apostrophe opens a comment (near-text dialect)
}

// expandMacLine renders one tokenized Macintosh payload
func expandMacLine(rec *LineRecord, idents *IdentTable) (string, error) {
	e := &expander{
		rdr:    &progRdr{src: rec.Payload, base: rec.PayloadOff, order: binary.BigEndian},
		idents: idents,
		lookup: bastoken.Mac,
		cm:     charmap.Macintosh,
	}

	return e.expand()
}

func (e *expander) expand() (string, error) {
	for e.rdr.remaining() > 0 {
		off := e.rdr.offset()
		bt, err := e.rdr.readByte()

		if err != nil {
			return "", err
		}

		// the byte right after a REM token is either the apostrophe
		// token, making the whole thing a "'" comment, or the first
		// byte of the comment text
		if e.remPending {
			e.remPending = false

			if tok, ok := e.lookup(bt); ok && (tok.Kind == bastoken.Keyword) && (tok.Text == "'") && strings.HasSuffix(e.line, ":REM") {
				e.line = strings.TrimSuffix(e.line, ":REM") + "'"
				e.comment = true
				continue
			}

			e.comment = true
			e.line += decodeByte(bt, e.cm)
			continue
		}

		switch {
		case e.comment:
			e.line += decodeByte(bt, e.cm)
		case e.inStr:
			e.line += decodeByte(bt, e.cm)
			if bt == '"' {
				e.inStr = false
			}
		case (bt >= 0x20) && (bt <= 0x7E):
			e.line += string(rune(bt))
			if bt == '"' {
				e.inStr = true
			}
			if (bt == '\'') && e.tickStarts {
				e.comment = true
			}
		default:
			if err := e.expandToken(bt, off); err != nil {
				return "", err
			}
		}
	}

	return e.line, nil
}

// expandToken dispatches one non-printable leading byte through the
// dialect's token table
func (e *expander) expandToken(bt byte, off int) error {
	tok, ok := e.lookup(bt)

	if !ok {
		return decerr.New(decerr.UnknownToken, off, "byte 0x%02X has no entry in the token table", bt)
	}

	switch tok.Kind {
	case bastoken.Keyword:
		e.emitKeyword(tok.Text)

	case bastoken.Extended:
		sub, err := e.rdr.readByte()

		if err != nil {
			return err
		}

		text, ok := tok.Ext[sub]

		if !ok {
			return decerr.New(decerr.UnknownToken, off, "bytes 0x%02X 0x%02X have no entry in the token table", bt, sub)
		}

		e.line += text

	case bastoken.IdentRef:
		idx, err := e.rdr.readU16()

		if err != nil {
			return err
		}

		name, err := e.idents.Lookup(int(idx), off)

		if err != nil {
			return err
		}

		e.line += name

	case bastoken.IdentDef:
		n, err := e.rdr.readByte()

		if err != nil {
			return err
		}

		bts, err := e.rdr.readBytes(int(n))

		if err != nil {
			return err
		}

		name := decodeBytes(bts, e.cm)
		e.idents.Add(name)
		e.line += name

	case bastoken.LabelRef:
		idx, err := e.rdr.readU32()

		if err != nil {
			return err
		}

		name, err := e.idents.Lookup(int(idx), off)

		if err != nil {
			return err
		}

		e.line += name

	case bastoken.LineRef:
		num, err := e.rdr.readU32()

		if err != nil {
			return err
		}

		e.line += strconv.FormatUint(uint64(num), 10)

	case bastoken.Internal:
		if _, err := e.rdr.readBytes(4); err != nil {
			return err
		}

	case bastoken.OctalLit:
		n, err := e.rdr.readU16()

		if err != nil {
			return err
		}

		e.line += fmt.Sprintf("&O%o", n)

	case bastoken.HexLit:
		n, err := e.rdr.readU16()

		if err != nil {
			return err
		}

		e.line += fmt.Sprintf("&H%X", n)

	case bastoken.HexLongLit:
		n, err := e.rdr.readU32()

		if err != nil {
			return err
		}

		e.line += fmt.Sprintf("&H%X&", n)

	case bastoken.ByteLit:
		n, err := e.rdr.readByte()

		if err != nil {
			return err
		}

		e.line += strconv.Itoa(int(n))

	case bastoken.IntLit:
		n, err := e.rdr.readU16()

		if err != nil {
			return err
		}

		e.line += strconv.Itoa(int(int16(n)))

	case bastoken.LongLit:
		n, err := e.rdr.readU32()

		if err != nil {
			return err
		}

		e.line += strconv.Itoa(int(int32(n))) + "&"

	case bastoken.SingleLit:
		f, err := e.rdr.readF32()

		if err != nil {
			return err
		}

		e.line += strconv.FormatFloat(float64(f), 'G', -1, 32)

	case bastoken.DoubleLit:
		f, err := e.rdr.readF64()

		if err != nil {
			return err
		}

		e.line += strconv.FormatFloat(f, 'G', -1, 64) + "#"
	}

	return nil
}

// emitKeyword appends fixed keyword text, applying the rendering quirks
// the original interpreter baked into the token stream
func (e *expander) emitKeyword(text string) {
	switch text {
	case "ELSE":
		// stored as ":ELSE", listed without the colon
		e.line = strings.TrimSuffix(e.line, ":") + "ELSE"
		return

	case "'":
		// an apostrophe comment reaching here without a REM token
		if strings.HasSuffix(e.line, ":REM") {
			e.line = strings.TrimSuffix(e.line, ":REM")
		}
		e.line += "'"
		e.comment = true
		return

	case "+":
		// WHILE carries a trailing '+' token that LIST never shows
		if strings.HasSuffix(e.line, "WHILE") {
			return
		}

	case "REM":
		e.line += "REM"
		e.remPending = true
		return
	}

	e.line += text
}
