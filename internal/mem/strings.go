package mem

// Strings implements an append-only paged memory of strings.
//
// Pages are allocated with a fixed capacity and filled in place; a full page
// is never reallocated, so a slot keeps its address and value for the lifetime
// of the memory. Pages need not share a size, since PageSize may change.
type Strings struct {
	PagedCore
	pages [][]string
	size  uint
}

// Size returns the number of values stored, which is also the address that
// the next Append will return.
func (m *Strings) Size() uint { return m.size }

// Load returns the value stored at addr, or an IndexError if addr has not
// been stored.
func (m *Strings) Load(addr uint) (string, error) {
	if addr >= m.size {
		return "", &IndexError{addr, m.size}
	}
	pageID := m.findPage(addr)
	return m.pages[pageID][addr-m.bases[pageID]], nil
}

// LoadInto reads len(buf) values from memory starting at addr.
// Returns an IndexError if any of the range has not been stored; no partial
// load is done.
func (m *Strings) LoadInto(addr uint, buf []string) error {
	if len(buf) == 0 {
		return nil
	}

	end := addr + uint(len(buf))
	if end > m.size {
		return &IndexError{end - 1, m.size}
	}

	for pageID := m.findPage(addr); addr < end; pageID++ {
		page := m.pages[pageID][addr-m.bases[pageID]:]
		n := copy(buf, page)
		buf = buf[n:]
		addr += uint(n)
	}

	return nil
}

// Append stores s at the next address, allocating a page if necessary.
// Returns a LimitError if Limit would be exceeded.
func (m *Strings) Append(s string) (uint, error) {
	addr := m.size
	if err := m.checkLimit(addr+1, "append"); err != nil {
		return 0, err
	}

	i := len(m.pages) - 1
	if i < 0 || len(m.pages[i]) == cap(m.pages[i]) {
		size := m.allocPage(addr)
		m.pages = append(m.pages, make([]string, 0, size))
		i++
	}

	m.pages[i] = append(m.pages[i], s)
	m.size++
	return addr, nil
}
