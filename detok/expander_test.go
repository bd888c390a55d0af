package detok

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BinaryMelodies/msbasic-savefile-re/decerr"
)

func expandMac(t *testing.T, payload []byte, names ...string) (string, error) {
	t.Helper()

	tbl := &IdentTable{}
	for _, nm := range names {
		tbl.Add(nm)
	}

	rec := &LineRecord{Payload: payload, PayloadOff: 0x20}

	return expandMacLine(rec, tbl)
}

func Test_ExpandKeywords(t *testing.T) {
	tests := []struct {
		name string
		inp  []byte
		exp  string
	}{
		{name: "literal passthrough", inp: []byte("X = Y"), exp: "X = Y"},
		{name: "single byte keyword", inp: []byte{0x94}, exp: "FOR"},
		{name: "digit tokens", inp: []byte{0x12, 0x11}, exp: "10"},
		{name: "keyword with text", inp: []byte{0xAC, ' ', 'X'}, exp: "PRINT X"},
		{name: "extended statement page", inp: []byte{0xF8, 0x8F}, exp: "END"},
		{name: "extended misc page", inp: []byte{0xF9, 0xF9}, exp: "STEP"},
		{name: "extended draw page", inp: []byte{0xFB, 0xF2}, exp: "MOVETO"},
		{name: "operators", inp: []byte{'A', 0xEA, 'B', 0xEC, 'C'}, exp: "A=B+C"},
		{name: "else after colon", inp: []byte{'X', ':', 0x8E}, exp: "XELSE"},
		{name: "else standalone", inp: []byte{0x8E}, exp: "ELSE"},
		{name: "while swallows plus", inp: []byte{0xBE, 0xEC}, exp: "WHILE"},
		{name: "plus without while", inp: []byte{'A', 0xEC}, exp: "A+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandMac(t, tt.inp)

			assert.Nil(t, err)
			assert.Equal(t, tt.exp, got)
		})
	}
}

func Test_ExpandNumerics(t *testing.T) {
	tests := []struct {
		name string
		inp  []byte
		exp  string
	}{
		{name: "one byte int", inp: []byte{0x0F, 0x0A}, exp: "10"},
		{name: "two byte int", inp: []byte{0x1C, 0x01, 0x00}, exp: "256"},
		{name: "two byte int negative", inp: []byte{0x1C, 0xFF, 0xFF}, exp: "-1"},
		{name: "octal", inp: []byte{0x0B, 0x00, 0x08}, exp: "&O10"},
		{name: "hex", inp: []byte{0x0C, 0x00, 0xFF}, exp: "&HFF"},
		{name: "hex long", inp: []byte{0x1B, 0x00, 0x01, 0x00, 0x00}, exp: "&H10000&"},
		{name: "long", inp: []byte{0x1E, 0xFF, 0xFF, 0xFF, 0xFF}, exp: "-1&"},
		{name: "line number literal", inp: []byte{0x0E, 0x00, 0x00, 0x03, 0xE8}, exp: "1000"},
		{name: "single one", inp: []byte{0x1D, 0x3F, 0x80, 0x00, 0x00}, exp: "1"},
		{name: "single half", inp: []byte{0x1D, 0x3F, 0x00, 0x00, 0x00}, exp: "0.5"},
		{name: "double one", inp: []byte{0x1F, 0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, exp: "1#"},
		{name: "internal marker is silent", inp: []byte{0xE6, 0x08, 0x00, 0x00, 0x00, 0x00}, exp: "THEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandMac(t, tt.inp)

			assert.Nil(t, err)
			assert.Equal(t, tt.exp, got)
		})
	}
}

func Test_ExpandIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		inp   []byte
		names []string
		exp   string
	}{
		{name: "variable reference", inp: []byte{0x01, 0x00, 0x00}, names: []string{"COUNT"}, exp: "COUNT"},
		{name: "second variable", inp: []byte{0x01, 0x00, 0x01}, names: []string{"I", "XPOS"}, exp: "XPOS"},
		{name: "label definition", inp: []byte{0x02, 0x00, 0x00, ':'}, names: []string{"LOOP"}, exp: "LOOP:"},
		{name: "label reference", inp: []byte{0x97, 0x20, 0x03, 0x00, 0x00, 0x00, 0x00}, names: []string{"LOOP"}, exp: "GOTO LOOP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandMac(t, tt.inp, tt.names...)

			assert.Nil(t, err)
			assert.Equal(t, tt.exp, got)
		})
	}
}

func Test_ExpandStringsAndComments(t *testing.T) {
	tests := []struct {
		name string
		inp  []byte
		exp  string
	}{
		{name: "string literal", inp: []byte{0x22, 'H', 'i', 0x22}, exp: `"Hi"`},
		// token bytes inside a string are text, not tokens
		{name: "token byte inside string", inp: []byte{0x22, 0x8E, 0x22}, exp: `"é"`},
		{name: "unclosed string runs to eol", inp: []byte{0x22, 'H', 'i'}, exp: `"Hi`},
		{name: "rem comment", inp: []byte{0xAF, ' ', 'h', 'i'}, exp: "REM hi"},
		{name: "token byte inside comment", inp: []byte{0xAF, ' ', 0x8E}, exp: "REM é"},
		{name: "apostrophe comment", inp: []byte{':', 0xAF, 0xE8, 'h', 'i'}, exp: "'hi"},
		{name: "apostrophe token alone", inp: []byte{0xE8, 'h', 'i'}, exp: "'hi"},
		{name: "rem at end of line", inp: []byte{0xAF}, exp: "REM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandMac(t, tt.inp)

			assert.Nil(t, err)
			assert.Equal(t, tt.exp, got)
		})
	}
}

func Test_ExpandErrors(t *testing.T) {
	tests := []struct {
		name  string
		inp   []byte
		names []string
		kind  int
	}{
		{name: "unknown token", inp: []byte{0xA0}, kind: decerr.UnknownToken},
		{name: "unknown token in hole", inp: []byte{0xC4}, kind: decerr.UnknownToken},
		{name: "unknown extended token", inp: []byte{0xF8, 0x00}, kind: decerr.UnknownToken},
		{name: "identifier out of range", inp: []byte{0x01, 0x00, 0x05}, names: []string{"COUNT"}, kind: decerr.IdentifierOutOfRange},
		{name: "identifier with empty table", inp: []byte{0x01, 0x00, 0x00}, kind: decerr.IdentifierOutOfRange},
		{name: "label out of range", inp: []byte{0x03, 0x00, 0x00, 0x00, 0x09}, names: []string{"LOOP"}, kind: decerr.IdentifierOutOfRange},
		{name: "truncated int literal", inp: []byte{0x1C, 0x00}, kind: decerr.TruncatedInput},
		{name: "truncated double literal", inp: []byte{0x1F, 0x3F, 0xF0}, kind: decerr.TruncatedInput},
		{name: "truncated extended token", inp: []byte{0xF8}, kind: decerr.TruncatedInput},
		{name: "truncated identifier index", inp: []byte{0x01, 0x00}, kind: decerr.TruncatedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expandMac(t, tt.inp, tt.names...)

			assert.NotNil(t, err)
			assert.Truef(t, decerr.IsKind(err, tt.kind), "wanted kind %d, got %v", tt.kind, err)
		})
	}
}
