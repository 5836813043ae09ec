package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jcorbin/symtab/internal/config"
	"github.com/jcorbin/symtab/internal/logio"
	"github.com/jcorbin/symtab/internal/panicerr"
)

func newRootCmd(stdin io.Reader, stdout io.Writer, log *logio.Logger) *cobra.Command {
	cfg := config.Default()
	cmd := &cobra.Command{
		Use:   "symtab [flags] [file...]",
		Short: "Intern the words of files into a symbol table",
		Long: `symtab reads whitespace-separated words from each file, or from standard
input when no files are named, and interns them all into one symbol table.
Files are read concurrently. It reports how many words were read and how many
of them were unique, and can dump the table in index order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Resolve(cmd.Flags()); err != nil {
				return err
			}
			r := runner{
				cfg:    cfg,
				log:    log,
				stdin:  stdin,
				stdout: stdout,
			}
			return panicerr.Recover("symtab", func() error {
				return r.run(cmd.Context(), args)
			})
		},
	}
	cfg.BindFlags(cmd.Flags())
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(&logio.Writer{Logf: log.Leveledf("ERROR")})
	return cmd
}
