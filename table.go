package symtab

import (
	"iter"
	"sync"
)

// Table interns strings, handing out Symbols in their place.
// The zero value is an empty Table ready to use.
type Table struct {
	mu    sync.RWMutex
	st    store
	logfn func(mess string, args ...interface{})
}

// New creates an empty Table.
func New(opts ...Option) *Table {
	var tab Table
	Options(opts...).apply(&tab)
	return &tab
}

// Get interns s if it isn't already in the Table, and returns its full
// Symbol. Get only fails if the Table was created WithLimit and is full, in
// which case it panics with a *LimitError; use Intern to handle that case.
func (tab *Table) Get(s string) Symbol {
	sym, err := tab.Intern(s)
	if err != nil {
		panic(err)
	}
	return sym
}

// Intern is like Get, but returns any *LimitError instead of panicking.
func (tab *Table) Intern(s string) (Symbol, error) {
	if sym, defined := tab.Lookup(s); defined {
		return sym, nil
	}

	tab.mu.Lock()
	defer tab.mu.Unlock()
	id, isNew, err := tab.st.symbolicate(s)
	if err != nil {
		return Symbol{}, err
	}
	if isNew && tab.logfn != nil {
		// traced under lock, so that trace order is index order
		tab.logfn("intern #%v %q", id, s)
	}
	return Symbol{tab: tab, index: id}, nil
}

// Lookup returns the full Symbol for s only if s has already been interned.
func (tab *Table) Lookup(s string) (Symbol, bool) {
	tab.mu.RLock()
	id, defined := tab.st.symbol(s)
	tab.mu.RUnlock()
	if !defined {
		return Symbol{}, false
	}
	return Symbol{tab: tab, index: id}, true
}

// Has returns true if s has been interned.
func (tab *Table) Has(s string) bool {
	_, defined := tab.Lookup(s)
	return defined
}

// Len returns the number of unique strings in the Table; slices are not
// counted, since they store nothing.
func (tab *Table) Len() int {
	tab.mu.RLock()
	defer tab.mu.RUnlock()
	return int(tab.st.len())
}

// At returns the full Symbol for the string at index, or an *IndexError if
// the Table has not assigned index yet.
func (tab *Table) At(index uint) (Symbol, error) {
	tab.mu.RLock()
	_, err := tab.st.string(index)
	tab.mu.RUnlock()
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{tab: tab, index: index}, nil
}

// All iterates over the strings in the Table in index order. Strings interned
// after All is called are not visited.
func (tab *Table) All() iter.Seq2[uint, string] {
	size := uint(tab.Len())
	return func(yield func(uint, string) bool) {
		for id := uint(0); id < size; id++ {
			if !yield(id, tab.string(id)) {
				return
			}
		}
	}
}

// Strings returns a copy of every string in the Table, in index order.
func (tab *Table) Strings() []string {
	tab.mu.RLock()
	defer tab.mu.RUnlock()
	strs := make([]string, tab.st.len())
	if err := tab.st.strings.LoadInto(0, strs); err != nil {
		panic(err)
	}
	return strs
}

// string resolves an index that the Table must have assigned; failing to
// do so means a Symbol was forged, so it panics with an *IndexError.
func (tab *Table) string(id uint) string {
	tab.mu.RLock()
	s, err := tab.st.string(id)
	tab.mu.RUnlock()
	if err != nil {
		panic(err)
	}
	return s
}
