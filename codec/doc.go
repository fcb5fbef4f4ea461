/*
Package codec packs fixed-width ground rows for a 16-bit little-endian target.

Every row is RowWidth (20) bytes. Each row is emitted either as its own code or, when an
identical row was emitted before and its code is longer than 3 bytes, as a back-reference:

	0x00..0xDA  literal byte
	0xDB lo hi  back-reference (row start only) to the row code at absolute address hi<<8|lo
	0xDC..0xDF  unit 4, repeat op-0xDA (2..5), followed by 4 bytes
	0xE0..0xE4  unit 3, repeat op-0xDE (2..6), followed by 3 bytes
	0xE5..0xED  unit 2, repeat op-0xE3 (2..10), followed by 2 bytes
	0xEE..0xFF  unit 1, repeat op-0xEB (3..20), followed by 1 byte

There is no header and no row terminator: a row ends when it has expanded to exactly 20 bytes.
Addresses are the origin (the stream's load address, DefaultOrigin) plus the row code's offset.

Round trip:

	enc, err := codec.Encode(raw, codec.DefaultOrigin)
	if err != nil {
		return err
	}
	dec, err := codec.Decode(enc, codec.DefaultOrigin)
	// dec equals raw
*/
package codec
