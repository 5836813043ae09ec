package symtab_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/jcorbin/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlice(t *testing.T, sym symtab.Symbol, lo, hi int) symtab.Symbol {
	t.Helper()
	slice, err := sym.Slice(lo, hi)
	require.NoError(t, err, "must slice %q[%v:%v]", sym, lo, hi)
	return slice
}

func Test_Symbol_Slice(t *testing.T) {
	tab := symtab.New()
	hw := tab.Get("hello world")
	for _, tc := range []struct {
		lo, hi int
		want   string
	}{
		{0, 5, "hello"},
		{6, 11, "world"},
		{4, 7, "o w"},
		{0, 0, ""},
		{11, 11, ""},
		{0, 11, "hello world"},
	} {
		t.Run(fmt.Sprintf("[%v:%v]", tc.lo, tc.hi), func(t *testing.T) {
			slice := mustSlice(t, hw, tc.lo, tc.hi)
			assert.Equal(t, tc.want, slice.String())
			assert.True(t, slice.Sliced(), "expected a sliced symbol")
			assert.Equal(t, hw.Index(), slice.Index(), "expected slice to share its index")
			assert.Equal(t, len(tc.want), slice.Len())
			lo, hi := slice.Bounds()
			assert.Equal(t, []int{tc.lo, tc.hi}, []int{lo, hi}, "expected bounds")
		})
	}
	assert.Equal(t, 1, tab.Len(), "slicing must not intern")
}

func Test_Symbol_Slice_bounds(t *testing.T) {
	tab := symtab.New()
	for _, s := range []string{"", "x", "hello world"} {
		sym := tab.Get(s)
		for lo := -2; lo <= len(s)+2; lo++ {
			for hi := -2; hi <= len(s)+2; hi++ {
				slice, err := sym.Slice(lo, hi)
				if 0 <= lo && lo <= hi && hi <= len(s) {
					if assert.NoError(t, err, "expected %q[%v:%v] to be valid", s, lo, hi) {
						assert.Equal(t, s[lo:hi], slice.String(), "expected %q[%v:%v]", s, lo, hi)
					}
					continue
				}
				var re *symtab.RangeError
				if assert.True(t, errors.As(err, &re), "expected a range error for %q[%v:%v], got %v", s, lo, hi, err) {
					assert.Equal(t, symtab.RangeError{Lo: lo, Hi: hi, Len: len(s)}, *re)
				}
				assert.True(t, slice.IsZero(), "expected no symbol on error")
			}
		}
	}
}

func Test_Symbol_Slice_composes(t *testing.T) {
	tab := symtab.New()
	hw := tab.Get("hello world!")

	world := mustSlice(t, hw, 6, 11)
	assert.Equal(t, "world", world.String())

	orl := mustSlice(t, world, 1, 4)
	assert.Equal(t, "orl", orl.String())
	lo, hi := orl.Bounds()
	assert.Equal(t, []int{7, 10}, []int{lo, hi}, "expected bounds within the stored string")

	r := mustSlice(t, orl, 1, 2)
	assert.Equal(t, "r", r.String())

	_, err := world.Slice(1, 6)
	assert.EqualError(t, err, "symtab: slice bounds [1:6] out of range with length 5",
		"the range can't reach past the slice into the stored string")
	_, err = world.Slice(3, 2)
	assert.EqualError(t, err, "symtab: inverted slice bounds [3:2]")
}

func Test_Symbol_Slice_bytes(t *testing.T) {
	tab := symtab.New()
	sym := tab.Get("héllo")
	assert.Equal(t, 6, sym.Len(), "expected byte length")
	assert.Equal(t, "llo", mustSlice(t, sym, 3, 6).String())
	assert.Equal(t, "\xc3", mustSlice(t, sym, 1, 2).String(), "bounds may split a rune")
}

func Test_Symbol_Equal(t *testing.T) {
	tab := symtab.New()
	hw1 := tab.Get("hello world 1")
	hw2 := tab.Get("hello world 2")
	assert.False(t, hw1.Equal(hw2), "the stored strings are different")

	hello1, world1 := mustSlice(t, hw1, 0, 5), mustSlice(t, hw1, 6, 11)
	hello2, world2 := mustSlice(t, hw2, 0, 5), mustSlice(t, hw2, 6, 11)
	assert.True(t, hello1.Equal(hello2), "slices compare text")
	assert.True(t, world1.Equal(world2), "slices compare text")
	assert.True(t, hello1.Equal(tab.Get("hello")), "slices compare with full symbols")
	assert.True(t, world1.Equal(tab.Get("world")), "slices compare with full symbols")

	hellos := tab.Get("hello hello world")
	hello3, hello4 := mustSlice(t, hellos, 0, 5), mustSlice(t, hellos, 6, 11)
	world3 := mustSlice(t, hellos, 12, 17)
	assert.True(t, hello3.Equal(hello4), "different slices of one string compare text")
	assert.False(t, hello3.Equal(world3), "different slices of one string compare text")

	same := []symtab.Symbol{
		tab.Get("hello"),
		hello1, hello2, hello3, hello4,
		mustSlice(t, tab.Get("say hello"), 4, 9),
		mustSlice(t, hello1, 0, 5),
		mustSlice(t, hello1, 0, 5).Deslice(),
	}
	for i, a := range same {
		assert.True(t, a.Equal(a), "expected #%v reflexive", i)
		for j, b := range same {
			assert.True(t, a.Equal(b), "expected #%v %+v == #%v %+v", i, a, j, b)
			assert.Equal(t, 0, a.Compare(b), "expected #%v %+v to compare equal to #%v %+v", i, a, j, b)
		}
		assert.True(t, a.EqualString("hello"), "expected #%v to equal the plain string", i)
		for _, other := range []symtab.Symbol{world1, world3, hw1, mustSlice(t, hw1, 0, 4)} {
			assert.False(t, a.Equal(other), "expected %+v != %+v", a, other)
			assert.False(t, other.Equal(a), "expected %+v != %+v", other, a)
		}
	}
}

func Test_Symbol_Equal_tables(t *testing.T) {
	tab1, tab2 := symtab.New(), symtab.New()
	a1, a2 := tab1.Get("a"), tab2.Get("a")
	assert.Equal(t, a1.Index(), a2.Index(), "expected the same index in both tables")
	assert.False(t, a1.Equal(a2), "symbols from different tables are never equal")

	ab1 := mustSlice(t, tab1.Get("ab"), 0, 1)
	assert.True(t, ab1.Equal(a1))
	assert.False(t, ab1.Equal(a2), "symbols from different tables are never equal")
	assert.True(t, ab1.EqualString(a2.String()), "text is still text")

	var zero symtab.Symbol
	assert.False(t, zero.Equal(tab1.Get("")), "the zero symbol belongs to no table")
	assert.True(t, zero.Equal(symtab.Symbol{}))
}

func Test_Symbol_Deslice(t *testing.T) {
	tab := symtab.New()
	hw := tab.Get("hello world")
	hello := mustSlice(t, hw, 0, 5)
	assert.True(t, tab.Has("hello world"), "hello world is present")
	assert.False(t, tab.Has("hello"), "hello is not present")

	full := hello.Deslice()
	assert.True(t, tab.Has("hello"), "hello is now present")
	assert.False(t, full.Sliced(), "expected a full symbol")
	assert.Equal(t, "hello", full.String())
	assert.Equal(t, tab.Get("hello").Index(), full.Index())
	assert.True(t, full.Equal(tab.Get("hello")))
	assert.Equal(t, full, hello.Deslice(), "expected deslicing again to find the same entry")

	assert.Equal(t, hw, hw.Deslice(), "full symbols deslice to themselves")

	world := mustSlice(t, hw, 6, 11)
	prior := tab.Get("world")
	assert.Equal(t, prior, world.Deslice(), "expected deslice to find an existing entry")
	assert.Equal(t, 3, tab.Len())
}

func Test_Symbol_Compare(t *testing.T) {
	tab := symtab.New()
	fruit := tab.Get("fig banana apple cherry")
	syms := []symtab.Symbol{
		tab.Get("date"),
		mustSlice(t, fruit, 0, 3),
		mustSlice(t, fruit, 4, 10),
		mustSlice(t, fruit, 11, 16),
		tab.Get("apricot"),
		tab.Get("cherry"),
		mustSlice(t, fruit, 17, 23),
	}
	slices.SortStableFunc(syms, symtab.Symbol.Compare)

	var got []string
	for _, sym := range syms {
		got = append(got, sym.String())
	}
	assert.Equal(t, []string{"apple", "apricot", "banana", "cherry", "cherry", "date", "fig"}, got,
		"expected text order, not insertion order")

	assert.Negative(t, tab.Get("b").CompareString("c"))
	assert.Positive(t, tab.Get("b").CompareString("a"))
	assert.Zero(t, mustSlice(t, fruit, 0, 3).CompareString("fig"))
}

func Test_Symbol_Format(t *testing.T) {
	tab := symtab.New()
	hello := tab.Get("hello")
	hw := tab.Get("hello world")
	world := mustSlice(t, hw, 6, 11)
	var zero symtab.Symbol

	for _, tc := range []struct {
		format string
		sym    symtab.Symbol
		want   string
	}{
		{"%s", hello, "hello"},
		{"%v", hello, "hello"},
		{"%q", hello, `"hello"`},
		{"%+v", hello, `"hello"#0`},
		{"%s", world, "world"},
		{"%q", world, `"world"`},
		{"%+v", world, `"world"#1[6:11]`},
		{"%-7s", hello, "hello  "},
		{"%7v", hello, "  hello"},
		{"%.3s", hello, "hel"},
		{"%x", hello, "68656c6c6f"},
		{"% X", world, "77 6F 72 6C 64"},
		{"%#q", world, "`world`"},
		{"%d", world, "%!d(string=world)"},
		{"%s", zero, ""},
		{"%+v", zero, `""`},
	} {
		assert.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.sym), "expected %v of %+v", tc.format, tc.sym)
	}
	assert.Equal(t, "hello world", fmt.Sprint(hello, " ", world))
	assert.Equal(t, "[ab      ][      cd][6869]",
		fmt.Sprintf("[%-8s][%8v][%x]", tab.Get("ab"), tab.Get("cd"), tab.Get("hi")))
}

func Test_Symbol_zero(t *testing.T) {
	var zero symtab.Symbol
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
	assert.Equal(t, 0, zero.Len())
	assert.Nil(t, zero.Table())
	assert.True(t, zero.EqualString(""))
	assert.Equal(t, zero, zero.Deslice())

	_, err := zero.Slice(0, 0)
	assert.True(t, errors.Is(err, symtab.ErrNoTable), "expected ErrNoTable, got %v", err)

	tab := symtab.New()
	assert.False(t, tab.Get("").IsZero(), "the empty string is a real symbol")
}
