package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpcodeRun(t *testing.T) {
	var ops = []struct {
		op     byte
		unit   int
		repeat int
		ok     bool
	}{
		{0x00, 0, 0, false},
		{0xDA, 0, 0, false},
		{OpBackRef, 0, 0, false},
		{0xDC, 4, 2, true},
		{0xDF, 4, 5, true},
		{0xE0, 3, 2, true},
		{0xE4, 3, 6, true},
		{0xE5, 2, 2, true},
		{0xED, 2, 10, true},
		{0xEE, 1, 3, true},
		{0xFF, 1, 20, true},
	}
	for _, tt := range ops {
		unit, repeat, ok := opcodeRun(tt.op)
		require.Equal(t, tt.ok, ok, "op 0x%02X", tt.op)
		require.Equal(t, tt.unit, unit, "op 0x%02X", tt.op)
		require.Equal(t, tt.repeat, repeat, "op 0x%02X", tt.op)
	}
}

func TestRepeatLimitsMatchOpcodes(t *testing.T) {
	for unit := 1; unit <= MaxUnit; unit++ {
		lo := runBase[unit] + byte(minRepeat[unit])
		hi := runBase[unit] + byte(maxRepeat[unit])
		u, r, ok := opcodeRun(lo)
		require.True(t, ok)
		require.Equal(t, unit, u)
		require.Equal(t, minRepeat[unit], r)
		u, r, ok = opcodeRun(hi)
		require.True(t, ok)
		require.Equal(t, unit, u)
		require.Equal(t, maxRepeat[unit], r)
		require.LessOrEqual(t, unit*maxRepeat[unit], RowWidth)
	}
}
