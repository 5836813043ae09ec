package main

import (
	"os"

	"github.com/jcorbin/symtab/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	cmd := newRootCmd(os.Stdin, os.Stdout, &log)
	log.ErrorIf(cmd.Execute())
	os.Exit(log.ExitCode())
}
