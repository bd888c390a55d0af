package detok

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/BinaryMelodies/msbasic-savefile-re/bastoken"
)

// The MS-DOS QuickBASIC near-text save keeps keywords as literal ASCII
// and only marker-codes identifiers and numeric literals. Framing is the
// same record layout as the Macintosh format, little-endian. Identifier
// definitions appear inline, so the table grows while lines decode and
// later lines may reference names defined earlier.

// expandDOSLine renders one near-text payload, growing idents as
// definitions appear
func expandDOSLine(rec *LineRecord, idents *IdentTable) (string, error) {
	e := &expander{
		rdr:        &progRdr{src: rec.Payload, base: rec.PayloadOff, order: binary.LittleEndian},
		idents:     idents,
		lookup:     bastoken.DOS,
		cm:         charmap.CodePage437,
		tickStarts: true,
	}

	return e.expand()
}

func decodeDOS(src []byte) (*Listing, error) {
	rdr := &progRdr{src: src, pos: 1, order: binary.LittleEndian}

	idents := &IdentTable{}
	lst := &Listing{}

	for {
		rec, err := nextRecord(rdr)

		if err != nil {
			return nil, err
		}

		if rec == nil {
			break
		}

		text, err := expandDOSLine(rec, idents)

		if err != nil {
			return nil, err
		}

		lst.addLine(rec, text)
	}

	if n := rdr.remaining(); n > 0 {
		lst.warn(fmt.Sprintf("%d residual bytes after end-of-program sentinel", n))
	}

	return lst, nil
}
