package codec

// PackStream accumulates the encoded output of a stream.
// Offsets into it are turned into target addresses by adding the origin.
type PackStream struct {
	byteData []byte
	origin   int
}

func NewPackStream(origin uint16, sizeHint int) *PackStream {
	p := PackStream{
		byteData: make([]byte, 0, sizeHint),
		origin:   int(origin),
	}
	return &p
}

func (p *PackStream) AddBytes(input []byte) {
	p.byteData = append(p.byteData, input...)
}

func (p *PackStream) AddByte(input byte) {
	p.byteData = append(p.byteData, input)
}

// AddWord appends a little-endian 16-bit value, the target's byte order.
func (p *PackStream) AddWord(input uint16) {
	p.byteData = append(p.byteData, byte(input&255))
	p.byteData = append(p.byteData, byte(input>>8))
}

// AddBackRef appends a back-reference marker pointing at addr.
func (p *PackStream) AddBackRef(addr uint16) {
	p.AddByte(OpBackRef)
	p.AddWord(addr)
}

// Addr returns the absolute address the next appended byte will have.
// ok is false when it does not fit in 16 bits.
func (p *PackStream) Addr() (uint16, bool) {
	addr := p.origin + len(p.byteData)
	if addr > maxAddr {
		return 0, false
	}
	return uint16(addr), true
}

func (p *PackStream) Len() int {
	return len(p.byteData)
}

func (p *PackStream) Bytes() []byte {
	return p.byteData
}
