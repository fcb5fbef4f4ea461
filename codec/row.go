package codec

import (
	"bytes"
	"math"
)

// Row is one fixed-width line of raw tile data. Rows compare by value and key the address table.
type Row [RowWidth]byte

// RowAt copies the i-th row out of raw.
func RowAt(raw []byte, i int) Row {
	var row Row
	copy(row[:], raw[i*RowWidth:(i+1)*RowWidth])
	return row
}

// EncodeRow returns the shortest code that expands to row.
func EncodeRow(row Row) ([]byte, error) {
	tokens, err := TokenizeRow(row)
	if err != nil {
		return nil, err
	}
	return EncodeTokens(tokens, row[:]), nil
}

// TokenizeRow returns a minimal-cost token sequence for row, in row order.
func TokenizeRow(row Row) ([]Token, error) {
	return tokenizeCells(row[:])
}

const unreachable = math.MaxInt

// literalOK reports whether b can be stored as a literal at row position pos.
// Bytes from OpRun4 up read back as run opcodes, and 0xDB opening a row reads back as a marker.
func literalOK(b byte, pos int) bool {
	return b < OpBackRef || (b == OpBackRef && pos != 0)
}

// tokenizeCells runs the row DP over at most RowWidth cells.
//
// dp[i] is the smallest encoded size of cells[:i]; from[i] is the token entering i.
// Runs cost 1+unit regardless of repeat, so every repeat reachable from i is offered.
func tokenizeCells(cells []byte) ([]Token, error) {
	n := len(cells)
	if n == 0 {
		return nil, nil
	}

	var dp [RowWidth + 1]int
	var from [RowWidth + 1]Token
	for i := 1; i <= n; i++ {
		dp[i] = unreachable
	}

	for i := 0; i < n; i++ {
		if dp[i] == unreachable {
			continue
		}

		if literalOK(cells[i], i) {
			if c := dp[i] + runCost(0); c < dp[i+1] {
				dp[i+1] = c
				from[i+1] = Token{Unit: 0, Repeat: 1, Pos: i}
			}
		}

		for unit := 1; unit <= MaxUnit && i+unit <= n; unit++ {
			seq := cells[i : i+unit]
			c := dp[i] + runCost(unit)
			for repeat := 2; repeat <= maxRepeat[unit]; repeat++ {
				r := i + repeat*unit
				if r > n || !bytes.Equal(cells[r-unit:r], seq) {
					break
				}
				if repeat < minRepeat[unit] {
					continue
				}
				if c < dp[r] {
					dp[r] = c
					from[r] = Token{Unit: unit, Repeat: repeat, Pos: i}
				}
			}
		}
	}

	if dp[n] == unreachable {
		return nil, ErrUnencodableRow
	}

	count := 0
	for i := n; i > 0; i -= from[i].Cells() {
		count++
	}
	tokens := make([]Token, count)
	for i := n; i > 0; i -= from[i].Cells() {
		count--
		tokens[count] = from[i]
	}
	return tokens, nil
}
