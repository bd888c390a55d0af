package detok

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/BinaryMelodies/msbasic-savefile-re/decerr"
)

// IdentTable is the ordered list of identifier names a save file
// references by index. Index order is definition order, starting at 0.
type IdentTable struct {
	names []string
}

func (tbl *IdentTable) Len() int { return len(tbl.names) }

// Add appends a name; its index is implicit in the order of definition
func (tbl *IdentTable) Add(name string) {
	tbl.names = append(tbl.names, name)
}

// Lookup resolves an index reference found at the given file offset
func (tbl *IdentTable) Lookup(idx int, offset int) (string, error) {
	if (idx < 0) || (idx >= len(tbl.names)) {
		return "", decerr.New(decerr.IdentifierOutOfRange, offset, "index %d, table holds %d names", idx, len(tbl.names))
	}

	return tbl.names[idx], nil
}

// loadIdentTable reads the name section that follows the end-of-program
// sentinel in the tokenized format: a null pad byte when the section
// would otherwise start on an odd offset, then length-prefixed names out
// to the end of the file. The format defines no terminator for the
// section, so a name running past end of file stops the load and comes
// back as a warning rather than an error.
func loadIdentTable(rdr *progRdr, cm *charmap.Charmap) (*IdentTable, string) {
	tbl := &IdentTable{}

	if (rdr.offset()%2 == 1) && (rdr.remaining() > 0) {
		rdr.readByte()
	}

	for rdr.remaining() > 0 {
		n, _ := rdr.readByte()

		if int(n) > rdr.remaining() {
			return tbl, fmt.Sprintf("%d residual bytes after identifier table", rdr.remaining()+1)
		}

		bts, _ := rdr.readBytes(int(n))
		tbl.Add(decodeBytes(bts, cm))
	}

	return tbl, ""
}

// decodeBytes transcodes raw name/string/comment bytes into text
func decodeBytes(bts []byte, cm *charmap.Charmap) string {
	name := ""
	for _, bt := range bts {
		name += decodeByte(bt, cm)
	}

	return name
}

// decodeByte maps one byte through the dialect's character set, ASCII
// passes through untouched
func decodeByte(bt byte, cm *charmap.Charmap) string {
	if bt < 0x80 {
		return string(rune(bt))
	}

	return string(cm.DecodeByte(bt))
}
