package codec

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeExamples(t *testing.T) {
	dec, err := Decode([]byte{0xFF, 0x00}, DefaultOrigin)
	require.NoError(t, err)
	require.Equal(t, make([]byte, RowWidth), dec)

	row := distinctRow(0)
	dec, err = Decode(row, DefaultOrigin)
	require.NoError(t, err)
	require.Equal(t, row, dec)

	enc := append(append([]byte{}, row...), OpBackRef, 0x0C, 0xD9)
	dec, err = Decode(enc, DefaultOrigin)
	require.NoError(t, err)
	require.Equal(t, append(append([]byte{}, row...), row...), dec)
}

func TestDecodeRowConsumed(t *testing.T) {
	stream := []byte{
		0x55,                              // not part of the row
		0xE5, 0x01, 0x02,                  // 4 cells
		0xDC, 0x0A, 0x0B, 0x0C, 0x0D,      // 8 cells
		0xEE, 0x07,                        // 3 cells
		0x09, 0x09, OpBackRef, 0x10, 0x11, // 5 cells
		0x77,                              // next row
	}
	dec, n, err := DecodeRow(stream, 1, []byte{0xAA})
	require.NoError(t, err)
	require.Equal(t, 15, n)
	want := []byte{0xAA,
		0x01, 0x02, 0x01, 0x02,
		0x0A, 0x0B, 0x0C, 0x0D, 0x0A, 0x0B, 0x0C, 0x0D,
		0x07, 0x07, 0x07,
		0x09, 0x09, OpBackRef, 0x10, 0x11}
	require.Equal(t, want, dec)
}

func TestDecodeErrors(t *testing.T) {
	row := distinctRow(0)
	var cases = []struct {
		name   string
		stream []byte
		origin uint16
		want   error
	}{
		{"truncated mid-run", []byte{0x01, 0xE5, 0x02}, 0, ErrStreamBounds},
		{"truncated row", row[:RowWidth-1], 0, ErrStreamBounds},
		{"truncated marker", append(append([]byte{}, row...), OpBackRef, 0x00), 0, ErrStreamBounds},
		{"run to 21 cells", []byte{0x01, 0xFF, 0x00}, 0, ErrRowOverflow},
		{"run past width", append(append([]byte{}, row[:17]...), 0xE5, 0x01, 0x02), 0, ErrRowOverflow},
		{"address below origin", append(append([]byte{}, row...), OpBackRef, 0x00, 0x10), 0x2000, ErrAddressUnderflow},
		{"forward reference", append(append([]byte{}, row...), OpBackRef, 0x17, 0x00), 0, ErrForwardRef},
		{"self reference", append(append([]byte{}, row...), OpBackRef, 0x14, 0x00), 0, ErrForwardRef},
		{"mid-row reference", append(append([]byte{}, row...), OpBackRef, 0x05, 0x00), 0, ErrForwardRef},
		{"nested reference", append(append([]byte{}, row...), OpBackRef, 0x00, 0x00, OpBackRef, 0x14, 0x00), 0, ErrNestedBackRef},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := Decode(tt.stream, tt.origin)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, dec)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	origins := []uint16{0, 0x0100, DefaultOrigin}
	for iter := 0; iter < 50; iter++ {
		raw := randomStream(rng, 1+rng.Intn(100))
		origin := origins[iter%len(origins)]

		enc, err := Encode(raw, origin)
		require.NoError(t, err)
		require.LessOrEqual(t, len(enc), len(raw))

		dec, err := Decode(enc, origin)
		require.NoError(t, err)
		require.True(t, bytes.Equal(raw, dec), "origin 0x%04X", origin)
	}
}

func TestRoundTripRepeatBounds(t *testing.T) {
	var raw []byte
	for unit := 1; unit <= MaxUnit; unit++ {
		for _, repeat := range []int{minRepeat[unit], maxRepeat[unit]} {
			seq := distinctRow(byte(0x30 + unit))[:unit]
			row := bytes.Repeat(seq, repeat)
			row = append(row, distinctRow(0x90)[:RowWidth-len(row)]...)
			raw = append(raw, row...)
		}
	}
	raw = append(raw, raw...)

	enc, err := Encode(raw, DefaultOrigin)
	require.NoError(t, err)
	dec, err := Decode(enc, DefaultOrigin)
	require.NoError(t, err)
	require.Equal(t, raw, dec)
}
