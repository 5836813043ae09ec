package symtab

import (
	"errors"
	"fmt"

	"github.com/jcorbin/symtab/internal/mem"
)

// ErrNoTable is returned when slicing the zero Symbol.
var ErrNoTable = errors.New("symtab: symbol has no table")

// RangeError indicates slice bounds outside of a Symbol's text.
type RangeError struct {
	Lo, Hi int
	Len    int
}

func (re *RangeError) Error() string {
	if re.Lo > re.Hi && re.Lo >= 0 && re.Hi <= re.Len {
		return fmt.Sprintf("symtab: inverted slice bounds [%v:%v]", re.Lo, re.Hi)
	}
	return fmt.Sprintf("symtab: slice bounds [%v:%v] out of range with length %v", re.Lo, re.Hi, re.Len)
}

// IndexError indicates an index that a Table never assigned.
type IndexError = mem.IndexError

// LimitError indicates that a Table created WithLimit is full.
type LimitError = mem.LimitError
