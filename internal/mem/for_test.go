package mem

// StringsDump provides data for testing.
type StringsDump struct {
	Bases []uint
	Sizes []uint
	Pages [][]string
}

// Dump memory data for testing.
func (m *Strings) Dump() (d StringsDump) {
	d.Bases = m.bases
	d.Sizes = m.sizes
	d.Pages = m.pages
	return d
}
