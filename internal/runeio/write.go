package runeio

import "io"

// WriteCaretString writes s to w, replacing every control rune with its
// CaretForm, so that the output stays on one line and prints legibly.
func WriteCaretString(w io.Writer, s string) (n int, err error) {
	start := 0
	flush := func(end int) error {
		if start < end {
			m, err := io.WriteString(w, s[start:end])
			n += m
			return err
		}
		return nil
	}
	for i, r := range s {
		caret := CaretForm(r)
		if caret == "" {
			continue
		}
		if err := flush(i); err != nil {
			return n, err
		}
		m, err := io.WriteString(w, caret)
		n += m
		if err != nil {
			return n, err
		}
		start = i + len(string(r))
	}
	return n, flush(len(s))
}
