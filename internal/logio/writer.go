package logio

import (
	"bytes"
	"sync"
)

// Writer adapts a printf-style logging function, like Logger.Leveledf
// returns, into an io.Writer: each complete line written becomes one log
// message.
type Writer struct {
	Logf func(mess string, args ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then logs any completed lines. Safe for use from multiple
// goroutines; never returns an error.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Close logs any incomplete final line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		i := bytes.IndexByte(line, '\n')
		switch {
		case i >= 0:
			line = line[:i]
		case !all:
			return
		}
		lw.Logf("%s", line)
		lw.buf.Next(len(line))
		if i >= 0 {
			lw.buf.Next(1)
		}
	}
}
