package mem

import "fmt"

// DefaultPageSize provides a default for PagedCore.PageSize.
const DefaultPageSize = 256

// PagedCore provides functionality common to any paged memory model.
type PagedCore struct {
	// PageSize specifies the capacity for newly allocated pages; changing it
	// only affects pages allocated afterwards.
	PageSize uint

	// Limit specifies a limit on the number of stored values, past which any
	// append should result in an error.
	Limit uint

	bases []uint
	sizes []uint
}

// LimitError indicates that a memory operation exceeded a limit.
type LimitError struct {
	Limit uint
	Op    string
}

func (lim *LimitError) Error() string {
	return fmt.Sprintf("memory limit of %v exceeded by %v", lim.Limit, lim.Op)
}

// IndexError indicates a load from an address that was never stored.
type IndexError struct {
	Index uint
	Size  uint
}

func (ie *IndexError) Error() string {
	return fmt.Sprintf("index %v out of range [0:%v]", ie.Index, ie.Size)
}

func (m *PagedCore) findPage(addr uint) int {
	i, j := 0, len(m.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(m.bases) && m.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

// allocPage records a new page starting at base, returning its capacity.
// Pages are only ever added at the end, so existing pages never move.
func (m *PagedCore) allocPage(base uint) (size uint) {
	if m.PageSize == 0 {
		m.PageSize = DefaultPageSize
	}
	size = m.PageSize
	m.bases = append(m.bases, base)
	m.sizes = append(m.sizes, size)
	return size
}

func (m *PagedCore) checkLimit(size uint, op string) error {
	if limit := m.Limit; limit != 0 && size > limit {
		return &LimitError{limit, op}
	}
	return nil
}
