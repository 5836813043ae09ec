package symtab

// Option configures a Table created by New.
type Option interface{ apply(tab *Table) }

// Options combines any number of options into one.
func Options(opts ...Option) Option { return options(opts) }

// WithPageSize sets how many strings each page of backing memory holds.
func WithPageSize(n uint) Option { return pageSizeOption(n) }

// WithLimit caps the number of unique strings a Table will store; once full,
// Intern returns a *LimitError and Get panics with one. Zero means no limit.
func WithLimit(n uint) Option { return limitOption(n) }

// WithLogf sets a function to trace every newly interned string. It is called
// while the Table is locked for writing, one call at a time and in index
// order; it must not call back into the Table.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type options []Option
type pageSizeOption uint
type limitOption uint
type withLogfn func(mess string, args ...interface{})

func (opts options) apply(tab *Table) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(tab)
		}
	}
}

func (n pageSizeOption) apply(tab *Table) { tab.st.strings.PageSize = uint(n) }
func (n limitOption) apply(tab *Table)    { tab.st.strings.Limit = uint(n) }
func (logfn withLogfn) apply(tab *Table)  { tab.logfn = logfn }
