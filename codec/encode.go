package codec

import "fmt"

// Stats describes how a stream was encoded.
type Stats struct {
	Rows       int // rows in the input
	SelfRows   int // rows emitted as their own code and recorded in the address table
	ShortRows  int // rows whose code is 3 bytes or less, emitted without a table lookup
	RefRows    int // rows emitted as a back-reference
	Literals   int // literal tokens emitted
	Runs       [MaxUnit + 1]int
	CodeLens   map[int]int // own code length of every input row -> number of rows
	RawSize    int
	PackedSize int
}

func newStats(rawSize int) *Stats {
	return &Stats{
		CodeLens: make(map[int]int),
		RawSize:  rawSize,
	}
}

// Record the tokens of a code that went to the output.
func (s *Stats) addTokens(tokens []Token) {
	for _, t := range tokens {
		if t.IsRun() {
			s.Runs[t.Unit]++
		} else {
			s.Literals++
		}
	}
}

// TotalRuns returns the number of run tokens of any unit.
func (s *Stats) TotalRuns() int {
	total := 0
	for _, n := range s.Runs {
		total += n
	}
	return total
}

// Encode compresses raw, whose length must be a multiple of RowWidth, for a stream loaded at origin.
func Encode(raw []byte, origin uint16) ([]byte, error) {
	packed, _, err := EncodeWithStats(raw, origin)
	return packed, err
}

// EncodeWithStats is Encode, also returning statistics about the choices made.
func EncodeWithStats(raw []byte, origin uint16) ([]byte, *Stats, error) {
	if len(raw)%RowWidth != 0 {
		return nil, nil, fmt.Errorf("%w: size=%d width=%d", ErrInputSize, len(raw), RowWidth)
	}

	stats := newStats(len(raw))
	output := NewPackStream(origin, len(raw))
	table := NewAddrTable()

	numRows := len(raw) / RowWidth
	for i := 0; i < numRows; i++ {
		row := RowAt(raw, i)
		tokens, err := TokenizeRow(row)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row=%d", err, i)
		}
		code := EncodeTokens(tokens, row[:])
		stats.Rows++
		stats.CodeLens[len(code)]++

		// A back-reference is 3 bytes, so it can't beat these; they are also cheaper to expand on the target.
		if len(code) <= refLen {
			output.AddBytes(code)
			stats.addTokens(tokens)
			stats.ShortRows++
			continue
		}

		if addr, ok := table.Lookup(row); ok {
			output.AddBackRef(addr)
			stats.RefRows++
			continue
		}

		addr, ok := output.Addr()
		if !ok {
			return nil, nil, fmt.Errorf("%w: row=%d origin=0x%04X offset=0x%X",
				ErrAddressOverflow, i, origin, output.Len())
		}
		table.Record(row, addr)
		output.AddBytes(code)
		stats.addTokens(tokens)
		stats.SelfRows++
	}

	stats.PackedSize = output.Len()
	return output.Bytes(), stats, nil
}
