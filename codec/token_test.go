package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenCost(t *testing.T) {
	var costs = []struct {
		tok   Token
		cells int
		want  int
	}{
		{Token{0, 1, 0}, 1, 1}, // literal == 1 byte
		{Token{1, 3, 0}, 3, 2},
		{Token{1, 20, 0}, 20, 2},
		{Token{2, 2, 0}, 4, 3},
		{Token{3, 6, 0}, 18, 4},
		{Token{4, 5, 0}, 20, 5},
	}
	for _, tt := range costs {
		t.Run(tt.tok.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.tok.Cost())
			require.Equal(t, tt.cells, tt.tok.Cells())
		})
	}
}

func TestTokenEncode(t *testing.T) {
	cells := []byte{0x10, 0x20, 0x10, 0x20, 0x10, 0x20, 0x7F}
	tokens := []Token{
		{Unit: 2, Repeat: 3, Pos: 0},
		{Unit: 0, Repeat: 1, Pos: 6},
	}
	got := EncodeTokens(tokens, cells)
	require.Equal(t, []byte{0xE3 + 3, 0x10, 0x20, 0x7F}, got)

	for unit := 1; unit <= MaxUnit; unit++ {
		tok := Token{Unit: unit, Repeat: maxRepeat[unit]}
		out := tok.Encode(nil, make([]byte, RowWidth))
		require.Len(t, out, tok.Cost(), fmt.Sprint(tok))
	}
}
