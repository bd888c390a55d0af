// Package detok reconstructs source text from binary BASIC save files.
// Two dialects are supported: the Macintosh MS BASIC tokenized format and
// the MS-DOS QuickBASIC near-text format. Decoding is a pure function of
// the input bytes; any corruption fails the whole file with the byte
// offset where it was found.
package detok

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"

	"github.com/BinaryMelodies/msbasic-savefile-re/decerr"
)

// format marker values, the first byte of every save file
const (
	MAC_TOKEN_FILE = 0xf1
	MAC_PROT_FILE  = 0xf0
	DOS_TEXT_FILE  = 0xfc
	GW_MEM_DUMP    = 0xfd
	GW_PROT_FILE   = 0xfe
	GW_TOKEN_FILE  = 0xff
)

// Decode reconstructs the textual listing from the raw bytes of a save
// file. The dialect is selected by the format marker byte.
func Decode(src []byte) (*Listing, error) {
	if len(src) == 0 {
		return nil, decerr.New(decerr.TruncatedInput, 0, "empty file")
	}

	switch src[0] {
	case MAC_TOKEN_FILE:
		return decodeMac(src)
	case DOS_TEXT_FILE:
		return decodeDOS(src)
	case MAC_PROT_FILE:
		return nil, decerr.New(decerr.UnsupportedFormat, 0, "protected Macintosh BASIC file, unable to parse")
	case GW_MEM_DUMP:
		return nil, decerr.New(decerr.UnsupportedFormat, 0, "GW-BASIC memory dump, not supported")
	case GW_PROT_FILE:
		return nil, decerr.New(decerr.UnsupportedFormat, 0, "GW-BASIC protected file or MSX-BASIC memory dump, not supported")
	case GW_TOKEN_FILE:
		return nil, decerr.New(decerr.UnsupportedFormat, 0, "GW-BASIC or MSX-BASIC tokenized file, not supported")
	}

	return nil, decerr.New(decerr.UnsupportedFormat, 0, "marker byte 0x%02X is not a BASIC save file", src[0])
}

// Supported reports whether the marker byte names a dialect this decoder
// handles.
func Supported(marker byte) bool {
	return (marker == MAC_TOKEN_FILE) || (marker == DOS_TEXT_FILE)
}

// FormatName returns the human readable name for a marker byte.
func FormatName(marker byte) string {
	switch marker {
	case MAC_TOKEN_FILE:
		return "Macintosh BASIC tokenized"
	case MAC_PROT_FILE:
		return "Macintosh BASIC protected"
	case DOS_TEXT_FILE:
		return "QuickBASIC for MS-DOS"
	case GW_MEM_DUMP:
		return "GW-BASIC memory dump"
	case GW_PROT_FILE:
		return "GW-BASIC protected"
	case GW_TOKEN_FILE:
		return "GW-BASIC tokenized"
	}

	return "unknown"
}

func decodeMac(src []byte) (*Listing, error) {
	rdr := &progRdr{src: src, pos: 1, order: binary.BigEndian}

	var recs []*LineRecord
	for {
		rec, err := nextRecord(rdr)

		if err != nil {
			return nil, err
		}

		if rec == nil {
			break
		}

		recs = append(recs, rec)
	}

	// the name table sits past the end-of-program sentinel and every
	// line indexes into it, so it loads before any line expands
	idents, warn := loadIdentTable(rdr, charmap.Macintosh)

	lst := &Listing{}
	lst.warn(warn)

	for _, rec := range recs {
		text, err := expandMacLine(rec, idents)

		if err != nil {
			return nil, err
		}

		lst.addLine(rec, text)
	}

	return lst, nil
}
