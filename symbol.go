package symtab

import (
	"fmt"
	"strings"
)

// Symbol is a cheap, comparable reference to a string interned in a Table.
//
// A full Symbol refers to a whole stored string, and compares to other full
// Symbols by index alone. A sliced Symbol, made by Slice, refers to a byte
// range within a stored string; any comparison involving one compares text.
//
// The zero Symbol belongs to no Table and has empty text.
type Symbol struct {
	tab    *Table
	index  uint
	lo, hi int
	sliced bool
}

// String returns the Symbol's text. The text of a sliced Symbol shares
// memory with its stored string, so this never copies.
func (sym Symbol) String() string {
	if sym.tab == nil {
		return ""
	}
	s := sym.tab.string(sym.index)
	if sym.sliced {
		return s[sym.lo:sym.hi]
	}
	return s
}

// Table returns the Table that the Symbol came from, nil for the zero Symbol.
func (sym Symbol) Table() *Table { return sym.tab }

// Index returns the index of the Symbol's stored string within its Table.
// Sliced Symbols share the index of the string that they slice.
func (sym Symbol) Index() uint { return sym.index }

// Sliced returns true if the Symbol refers to only part of its stored string.
func (sym Symbol) Sliced() bool { return sym.sliced }

// IsZero returns true for the zero Symbol.
func (sym Symbol) IsZero() bool { return sym == Symbol{} }

// Len returns the byte length of the Symbol's text.
func (sym Symbol) Len() int {
	if sym.sliced {
		return sym.hi - sym.lo
	}
	return len(sym.String())
}

// Bounds returns the byte range of the Symbol's text within its stored
// string; a full Symbol spans the whole string.
func (sym Symbol) Bounds() (lo, hi int) {
	if sym.sliced {
		return sym.lo, sym.hi
	}
	return 0, sym.Len()
}

// Slice returns a sliced Symbol for bytes [lo:hi] of sym's text. Bounds are
// relative to sym, so slicing a slice narrows it further: if world is
// "hello world"[6:11], then world.Slice(1, 3) is "orl".
//
// Returns a *RangeError unless 0 <= lo <= hi <= sym.Len(); bounds are never
// clamped. Bounds are byte offsets, and may split a multi-byte rune.
func (sym Symbol) Slice(lo, hi int) (Symbol, error) {
	if sym.tab == nil {
		return Symbol{}, ErrNoTable
	}
	if n := sym.Len(); lo < 0 || lo > hi || hi > n {
		return Symbol{}, &RangeError{lo, hi, n}
	}
	return Symbol{
		tab:    sym.tab,
		index:  sym.index,
		lo:     sym.lo + lo,
		hi:     sym.lo + hi,
		sliced: true,
	}, nil
}

// Deslice returns a full Symbol for sym's text, interning it if necessary.
// Full Symbols are returned as is.
//
// Deslice interns through Get, so it panics if the Table is full.
func (sym Symbol) Deslice() Symbol {
	if !sym.sliced {
		return sym
	}
	return sym.tab.Get(sym.String())
}

// Equal returns true if both Symbols come from the same Table and have the
// same text. Two full Symbols are compared by index only.
//
// Symbols from different Tables are never equal.
func (sym Symbol) Equal(other Symbol) bool {
	switch {
	case sym == other:
		return true
	case sym.tab != other.tab:
		return false
	case !sym.sliced && !other.sliced:
		return false
	case sym.Len() != other.Len():
		return false
	default:
		return sym.String() == other.String()
	}
}

// EqualString returns true if the Symbol's text is s.
func (sym Symbol) EqualString(s string) bool {
	return sym.String() == s
}

// Compare returns an integer comparing the text of two Symbols
// lexicographically, as strings.Compare does. Index order is insertion
// order, so it is never used.
func (sym Symbol) Compare(other Symbol) int {
	if sym == other {
		return 0
	}
	return strings.Compare(sym.String(), other.String())
}

// CompareString compares the Symbol's text with s, as strings.Compare does.
func (sym Symbol) CompareString(s string) int {
	return strings.Compare(sym.String(), s)
}

// Format formats the Symbol's text as fmt would a string, honoring every
// string verb, width, precision and flag. The %+v verb instead writes the
// quoted text with the index and any slice bounds, like "world"#3[6:11].
func (sym Symbol) Format(f fmt.State, c rune) {
	if c != 'v' || !f.Flag('+') {
		fmt.Fprintf(f, fmt.FormatString(f, c), sym.String())
		return
	}
	fmt.Fprintf(f, "%q", sym.String())
	if sym.tab == nil {
		return
	}
	fmt.Fprintf(f, "#%v", sym.index)
	if sym.sliced {
		fmt.Fprintf(f, "[%v:%v]", sym.lo, sym.hi)
	}
}
