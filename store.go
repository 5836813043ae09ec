package symtab

import (
	"strings"

	"github.com/jcorbin/symtab/internal/mem"
)

type store struct {
	strings mem.Strings
	symbols map[string]uint
}

func (st *store) len() uint { return st.strings.Size() }

func (st *store) string(id uint) (string, error) {
	return st.strings.Load(id)
}

func (st *store) symbol(s string) (id uint, defined bool) {
	id, defined = st.symbols[s]
	return id, defined
}

func (st *store) symbolicate(s string) (id uint, isNew bool, err error) {
	if id, defined := st.symbols[s]; defined {
		return id, false, nil
	}
	// don't retain whatever larger string s may be a substring of
	s = strings.Clone(s)
	if id, err = st.strings.Append(s); err != nil {
		return 0, false, err
	}
	if st.symbols == nil {
		st.symbols = make(map[string]uint)
	}
	st.symbols[s] = id
	return id, true, nil
}
