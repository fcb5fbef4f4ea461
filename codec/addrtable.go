package codec

// AddrTable maps raw rows to the absolute address of their first code in a stream.
// It only grows; the first recorded address of a row wins.
type AddrTable struct {
	addrs map[Row]uint16
}

func NewAddrTable() *AddrTable {
	return &AddrTable{addrs: make(map[Row]uint16)}
}

func (t *AddrTable) Lookup(row Row) (uint16, bool) {
	addr, ok := t.addrs[row]
	return addr, ok
}

// Record stores addr for row unless the row is already known.
func (t *AddrTable) Record(row Row, addr uint16) {
	if _, ok := t.addrs[row]; ok {
		return
	}
	t.addrs[row] = addr
}

func (t *AddrTable) Len() int {
	return len(t.addrs)
}
