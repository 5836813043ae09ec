package runeio

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// c0Names holds the ASCII mnemonics for the C0 controls, indexed by rune.
var c0Names = [0x20]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "NL", "VT", "NP", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// controlWords maps <NAME> mnemonics, in either case, and caret forms like
// ^I or ^[@ to the control rune that they name.
var controlWords = make(map[string]rune, 2*len(c0Names)+4+0xa0)

func init() {
	named := func(name string, r rune) {
		controlWords["<"+strings.ToUpper(name)+">"] = r
		controlWords["<"+strings.ToLower(name)+">"] = r
	}
	for r, name := range c0Names {
		named(name, rune(r))
	}
	named("SP", 0x20)
	named("DEL", 0x7f)
	for r := rune(0); r <= 0x9f; r++ {
		if caret := CaretForm(r); caret != "" {
			controlWords[caret] = r
		}
	}
}

// CaretForm computes the ^-escaped printable form of a control rune, or
// returns "" if r is not a control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

var errInvalidRune = errors.New(`rune literal must be "^X" "<NAME>" 'X' or a single rune`)

// UnquoteRune parses a rune given as a control mnemonic like <HT>, a
// caret-form like ^I, a quoted literal like ':' or '\t', or a single
// unquoted rune.
func UnquoteRune(token string) (rune, error) {
	if r, defined := controlWords[token]; defined {
		return r, nil
	}

	runes := []rune(token)
	switch {
	case len(runes) == 1 && runes[0] != utf8.RuneError:
		return runes[0], nil
	case len(runes) < 3 || runes[0] != '\'' || runes[len(runes)-1] != '\'':
		return 0, errInvalidRune
	}

	value, _, tail, err := strconv.UnquoteChar(token[1:len(token)-1], '\'')
	if err == nil && tail != "" {
		err = errInvalidRune
	}
	return value, err
}
