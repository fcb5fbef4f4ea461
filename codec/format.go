package codec

// Row and address constants.
const (
	RowWidth      = 20     // Decoded bytes per row.
	DefaultOrigin = 0xD90C // Load address of the encoded stream on the target.
	maxAddr       = 0xFFFF
	refLen        = 3 // Marker byte plus little-endian address.
)

// Opcode table. A byte below OpRun4 at any position other than a row start is a literal.
const (
	OpBackRef = 0xDB // Row-start back-reference marker, followed by a LE 16-bit address.
	OpRun4    = 0xDC // 0xDC..0xDF: unit 4, repeat = op - 0xDA
	OpRun3    = 0xE0 // 0xE0..0xE4: unit 3, repeat = op - 0xDE
	OpRun2    = 0xE5 // 0xE5..0xED: unit 2, repeat = op - 0xE3
	OpRun1    = 0xEE // 0xEE..0xFF: unit 1, repeat = op - 0xEB
)

// MaxUnit is the longest run unit the opcode grammar can express.
const MaxUnit = 4

// runBase is the value added to the repeat count to form the opcode, indexed by unit.
var runBase = [MaxUnit + 1]byte{0, 0xEB, 0xE3, 0xDE, 0xDA}

// Repeat limits per unit. Unit 1 starts at 3 since two copies cost the same as two literals.
var (
	minRepeat = [MaxUnit + 1]int{0, 3, 2, 2, 2}
	maxRepeat = [MaxUnit + 1]int{0, 20, 10, 6, 5}
)

// opcodeRun splits a run opcode into its unit and repeat count.
// ok is false for literals and the back-reference marker.
func opcodeRun(op byte) (unit int, repeat int, ok bool) {
	switch {
	case op >= OpRun1:
		return 1, int(op - runBase[1]), true
	case op >= OpRun2:
		return 2, int(op - runBase[2]), true
	case op >= OpRun3:
		return 3, int(op - runBase[3]), true
	case op >= OpRun4:
		return 4, int(op - runBase[4]), true
	}
	return 0, 0, false
}
