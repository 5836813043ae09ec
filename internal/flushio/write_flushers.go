package flushio

import (
	"errors"
	"io"
)

// WriteFlushers tees output into every given WriteFlusher; nil ones are
// skipped, and tees given to it are flattened into the result.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch wf := wf.(type) {
		case nil:
		case tee:
			all = append(all, wf...)
		default:
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return discardWriteFlusher
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

// Write writes p to every writer, even after one fails, and reports the first
// failure.
func (t tee) Write(p []byte) (int, error) {
	var first error
	for _, wf := range t {
		n, err := wf.Write(p)
		if err == nil && n != len(p) {
			err = io.ErrShortWrite
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return 0, first
	}
	return len(p), nil
}

// Flush flushes every writer, joining all of their errors.
func (t tee) Flush() error {
	errs := make([]error, 0, len(t))
	for _, wf := range t {
		errs = append(errs, wf.Flush())
	}
	return errors.Join(errs...)
}
