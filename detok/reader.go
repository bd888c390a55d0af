package detok

import (
	"encoding/binary"
	"math"

	"github.com/BinaryMelodies/msbasic-savefile-re/decerr"
)

// progRdr is a cursor over an in-memory byte slice. base holds the file
// offset of src[0] so that readers over payload slices still report
// offsets relative to the whole file.
type progRdr struct {
	src   []byte
	pos   int
	base  int
	order binary.ByteOrder
}

func (rdr *progRdr) offset() int { return rdr.base + rdr.pos }

func (rdr *progRdr) remaining() int { return len(rdr.src) - rdr.pos }

func (rdr *progRdr) readByte() (byte, error) {
	if rdr.remaining() < 1 {
		return 0, decerr.New(decerr.TruncatedInput, rdr.offset(), "needed 1 byte, stream exhausted")
	}

	bt := rdr.src[rdr.pos]
	rdr.pos++

	return bt, nil
}

func (rdr *progRdr) readBytes(n int) ([]byte, error) {
	if rdr.remaining() < n {
		return nil, decerr.New(decerr.TruncatedInput, rdr.offset(), "needed %d bytes, only %d left", n, rdr.remaining())
	}

	bts := rdr.src[rdr.pos : rdr.pos+n]
	rdr.pos += n

	return bts, nil
}

func (rdr *progRdr) readU16() (uint16, error) {
	bts, err := rdr.readBytes(2)

	if err != nil {
		return 0, err
	}

	return rdr.order.Uint16(bts), nil
}

func (rdr *progRdr) readU32() (uint32, error) {
	bts, err := rdr.readBytes(4)

	if err != nil {
		return 0, err
	}

	return rdr.order.Uint32(bts), nil
}

func (rdr *progRdr) readF32() (float32, error) {
	n, err := rdr.readU32()

	if err != nil {
		return 0, err
	}

	return math.Float32frombits(n), nil
}

func (rdr *progRdr) readF64() (float64, error) {
	bts, err := rdr.readBytes(8)

	if err != nil {
		return 0, err
	}

	return math.Float64frombits(rdr.order.Uint64(bts)), nil
}
