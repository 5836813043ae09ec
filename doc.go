/*
Package symtab provides cheap symbols for strings.

A Table stores a unique list of strings. Interning a string into a Table
returns a Symbol: a small value holding the string's index in the Table.
Symbols are cheap to copy and store, and two full Symbols compare by index
alone, without reading any text.

	tab := symtab.New()
	hello := tab.Get("hello")
	hello.Equal(tab.Get("hello")) // true, same index
	hello.EqualString("hello")    // true, compares text

Symbols may also be narrowed into slices of their string. A sliced Symbol
still refers to the same stored string, so slicing never copies or allocates
table space; the price is that any comparison involving a slice falls back to
comparing text. Offsets given to Slice are relative to the Symbol being
sliced, not to the stored string, so repeated slicing behaves like repeated
Go string slicing.

	world, _ := tab.Get("hello world").Slice(6, 11)
	world.EqualString("world") // true
	world.Deslice()            // interns "world", returning a full Symbol

Deslice turns a slice back into a full Symbol by interning its text, after
which comparisons are cheap again.

Ordering between Symbols (Compare) follows the lexicographic order of their
text; index order is only insertion order, and means nothing to callers.

Strings are never removed from a Table: every Symbol stays valid for as long
as its Table lives, and indices are never reused. Programs that need to
reclaim space should drop the whole Table and start a new one.

Symbols carry a pointer to the Table that made them. Symbols from different
Tables are never Equal, even when their text matches.

A Table is safe for concurrent use: lookups share a read lock, and only
inserting a new string takes the write lock. Stored strings live in pages
that are never moved, so text handed out earlier stays valid as the Table
grows.
*/
package symtab
