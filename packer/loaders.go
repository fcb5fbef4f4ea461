package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/taotao54321/starsoldier-ground-compress/codec"
)

// Region of an input file holding the rows, e.g. the ground table inside a ROM image.
type InputWindow struct {
	offset int
	size   int // 0 means up to the end of the file
}

// Cut the window out of the file data and check it holds whole rows.
func SliceWindow(data []byte, w InputWindow) ([]byte, error) {
	if w.offset < 0 || w.offset > len(data) {
		return nil, fmt.Errorf("offset %d outside input of %d bytes", w.offset, len(data))
	}
	end := len(data)
	if w.size != 0 {
		end = w.offset + w.size
		if w.size < 0 || end > len(data) {
			return nil, fmt.Errorf("size %d at offset %d outside input of %d bytes", w.size, w.offset, len(data))
		}
	}
	rows := data[w.offset:end]
	if len(rows)%codec.RowWidth != 0 {
		return nil, fmt.Errorf("%w: size=%d width=%d", codec.ErrInputSize, len(rows), codec.RowWidth)
	}
	return rows, nil
}

// Load an input file and return the raw rows in the window.
func LoadRows(inputPath string, w InputWindow) ([]byte, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}
	return SliceWindow(data, w)
}

// Command-line value for a 16-bit target address, "0xD90C" style.
type addrFlag uint16

func (a *addrFlag) String() string {
	return fmt.Sprintf("0x%04X", uint16(*a))
}

func (a *addrFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("not a 16-bit address: %q", s)
	}
	*a = addrFlag(v)
	return nil
}

// Command-line value for a byte count or file offset; accepts 0x, 0o and 0b prefixes.
type sizeFlag int

func (n *sizeFlag) String() string {
	return strconv.Itoa(int(*n))
}

func (n *sizeFlag) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 0)
	if err != nil || v < 0 {
		return fmt.Errorf("not a byte count: %q", s)
	}
	*n = sizeFlag(v)
	return nil
}
