package codec

import "fmt"

// DecodeRow expands the row code at offset into exactly RowWidth bytes appended to dst.
// It returns the extended dst and the number of stream bytes consumed.
func DecodeRow(stream []byte, offset int, dst []byte) ([]byte, int, error) {
	r := &sliceByteReader{data: stream, pos: offset}
	dst, err := decodeRow(r, dst)
	return dst, r.pos - offset, err
}

func decodeRow(r *sliceByteReader, dst []byte) ([]byte, error) {
	start := r.pos
	cells := 0
	for cells < RowWidth {
		op, err := r.ReadByte()
		if err != nil {
			return dst, err
		}
		unit, repeat, ok := opcodeRun(op)
		if !ok {
			dst = append(dst, op)
			cells++
			continue
		}

		if cells+unit*repeat > RowWidth {
			return dst, fmt.Errorf("%w: row at offset %d reaches %d cells at offset %d",
				ErrRowOverflow, start, cells+unit*repeat, r.pos-1)
		}
		seq, err := r.ReadSlice(unit)
		if err != nil {
			return dst, err
		}
		for k := 0; k < repeat; k++ {
			dst = append(dst, seq...)
		}
		cells += unit * repeat
	}
	return dst, nil
}

// Decode expands a stream produced by Encode with the same origin.
func Decode(stream []byte, origin uint16) ([]byte, error) {
	out := make([]byte, 0, 2*len(stream))

	// Row start offsets seen so far; true for back-reference markers.
	rowStarts := make(map[int]bool)

	r := &sliceByteReader{data: stream}
	for r.pos < len(stream) {
		at := r.pos
		op, err := r.PeekByte()
		if err != nil {
			return nil, err
		}

		if op != OpBackRef {
			rowStarts[at] = false
			if out, err = decodeRow(r, out); err != nil {
				return nil, err
			}
			continue
		}

		rowStarts[at] = true
		r.pos++
		addr, err := r.ReadWord()
		if err != nil {
			return nil, err
		}
		target, err := resolveBackRef(rowStarts, at, addr, origin)
		if err != nil {
			return nil, err
		}

		// The referenced row is read with its own cursor; r stays just past the marker.
		ref := &sliceByteReader{data: stream, pos: target}
		if out, err = decodeRow(ref, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// resolveBackRef turns the address of the marker at offset at into the offset of an earlier row code.
func resolveBackRef(rowStarts map[int]bool, at int, addr uint16, origin uint16) (int, error) {
	if addr < origin {
		return 0, fmt.Errorf("%w: offset=%d addr=0x%04X origin=0x%04X", ErrAddressUnderflow, at, addr, origin)
	}
	target := int(addr - origin)
	isRef, ok := rowStarts[target]
	if !ok || target >= at {
		return 0, fmt.Errorf("%w: offset=%d target=%d", ErrForwardRef, at, target)
	}
	if isRef {
		return 0, fmt.Errorf("%w: offset=%d target=%d", ErrNestedBackRef, at, target)
	}
	return target, nil
}
