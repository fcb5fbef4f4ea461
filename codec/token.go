package codec

import "fmt"

// Describes a literal or a run inside one row.
type Token struct {
	Unit   int // 0 for a literal, otherwise run unit length in bytes (1..4)
	Repeat int // number of copies of the unit; 1 for a literal
	Pos    int // position in the row of the literal, or of the first copy of the unit
}

// IsRun reports whether the token expands a repeated unit.
func (t Token) IsRun() bool {
	return t.Unit != 0
}

// Cells returns the number of decoded bytes the token produces.
func (t Token) Cells() int {
	if t.Unit == 0 {
		return 1
	}
	return t.Unit * t.Repeat
}

// Cost returns the encoded size of the token in bytes.
func (t Token) Cost() int {
	return runCost(t.Unit)
}

// Cost in bytes of a literal (unit 0) or of a run of the given unit, whatever its repeat.
func runCost(unit int) int {
	if unit == 0 {
		return 1
	}
	return 1 + unit
}

// Encode appends the serialized token to output, reading the unit or literal from cells.
func (t Token) Encode(output []byte, cells []byte) []byte {
	if t.Unit == 0 {
		return append(output, cells[t.Pos])
	}
	output = append(output, runBase[t.Unit]+byte(t.Repeat))
	return append(output, cells[t.Pos:t.Pos+t.Unit]...)
}

func (t Token) String() string {
	if t.Unit == 0 {
		return fmt.Sprintf("lit@%d", t.Pos)
	}
	return fmt.Sprintf("run%dx%d@%d", t.Unit, t.Repeat, t.Pos)
}

// EncodeTokens serializes a token sequence describing cells.
func EncodeTokens(tokens []Token, cells []byte) []byte {
	output := make([]byte, 0, len(cells))
	for _, t := range tokens {
		output = t.Encode(output, cells)
	}
	return output
}
