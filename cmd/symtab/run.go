package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/symtab"
	"github.com/jcorbin/symtab/internal/config"
	"github.com/jcorbin/symtab/internal/fileinput"
	"github.com/jcorbin/symtab/internal/flushio"
	"github.com/jcorbin/symtab/internal/logio"
	"github.com/jcorbin/symtab/internal/panicerr"
	"github.com/jcorbin/symtab/internal/runeio"
)

const stdinName = "-"

type runner struct {
	cfg    config.Config
	log    *logio.Logger
	stdin  io.Reader
	stdout io.Writer

	tab   *symtab.Table
	words atomic.Int64
}

func (r *runner) run(ctx context.Context, names []string) (rerr error) {
	opts := []symtab.Option{
		symtab.WithPageSize(r.cfg.PageSize),
		symtab.WithLimit(r.cfg.Limit),
	}
	if r.cfg.Trace {
		opts = append(opts, symtab.WithLogf(r.log.Leveledf("DEBUG")))
	}
	r.tab = symtab.New(opts...)

	out := flushio.NewWriteFlusher(r.stdout)
	if r.cfg.Tee != "" {
		f, err := os.Create(r.cfg.Tee)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); rerr == nil {
				rerr = err
			}
		}()
		out = flushio.WriteFlushers(out, flushio.NewWriteFlusher(f))
	}

	if len(names) == 0 {
		names = []string{stdinName}
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Jobs)
	for _, name := range names {
		name := name
		g.Go(panicerr.Guard(name, func() error {
			return r.internFile(ctx, name)
		}))
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if r.cfg.Dump {
		if err := r.dump(out); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "words: %v unique: %v\n", r.words.Load(), r.tab.Len())
	return out.Flush()
}

func (r *runner) internFile(ctx context.Context, name string) error {
	var src io.Reader
	if name == stdinName {
		src = runeio.Named(r.stdin, "<stdin>")
	} else {
		f, err := os.Open(name)
		if err != nil {
			r.log.Errorf("%v", err)
			return nil
		}
		src = f
	}

	in := fileinput.Input{Queue: []io.Reader{src}}
	defer in.Close()

	for ctx.Err() == nil {
		word, err := in.ScanWord()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("%v: %w", in.Scan.Location, err)
		}

		sym, err := r.tab.Intern(word.Text)
		if err != nil {
			return fmt.Errorf("%v: %w", word.Location, err)
		}
		r.words.Add(1)

		if n := r.cfg.Prefix; n > 0 {
			prefix, err := sym.Slice(0, min(n, sym.Len()))
			if err != nil {
				return fmt.Errorf("%v: %w", word.Location, err)
			}
			// panics over any limit, recovered by the per-file guard
			prefix.Deslice()
		}
	}
	return ctx.Err()
}

func (r *runner) dump(w io.Writer) error {
	for id, s := range r.tab.All() {
		if _, err := fmt.Fprintf(w, "%v%c", id, r.cfg.Sep()); err != nil {
			return err
		}
		if _, err := runeio.WriteCaretString(w, s); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
