package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/symtab/internal/mem"
	"github.com/jcorbin/symtab/internal/runeio"
)

// Config captures all runtime configuration for the symtab command.
type Config struct {
	PageSize  uint   `yaml:"page_size"`
	Limit     uint   `yaml:"limit"`
	Trace     bool   `yaml:"trace"`
	Prefix    int    `yaml:"prefix"`
	Dump      bool   `yaml:"dump"`
	Separator string `yaml:"separator"`
	Tee       string `yaml:"tee"`
	Jobs      int    `yaml:"jobs"`

	// Path names a YAML file to read; flags set explicitly override it.
	Path string `yaml:"-"`

	sep rune
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		PageSize:  mem.DefaultPageSize,
		Separator: "<HT>",
		Jobs:      runtime.GOMAXPROCS(0),
	}
}

// BindFlags registers command-line flags that populate cfg when parsed.
func (cfg *Config) BindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&cfg.Path, "config", "c", cfg.Path, "YAML file to read settings from")
	flags.UintVar(&cfg.PageSize, "page-size", cfg.PageSize, "Number of strings per page of table memory")
	flags.UintVar(&cfg.Limit, "limit", cfg.Limit, "Maximum number of unique strings to intern (0 for no limit)")
	flags.BoolVarP(&cfg.Trace, "trace", "t", cfg.Trace, "Log every newly interned string")
	flags.IntVar(&cfg.Prefix, "prefix", cfg.Prefix, "Also intern the first N bytes of every word")
	flags.BoolVarP(&cfg.Dump, "dump", "d", cfg.Dump, "Write every interned string, in index order")
	flags.StringVar(&cfg.Separator, "separator", cfg.Separator, "Rune between index and text when dumping, like <HT> ^I or ':'")
	flags.StringVar(&cfg.Tee, "tee", cfg.Tee, "Also write output to this file")
	flags.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Number of files to read concurrently")
}

// Resolve reads any config file named by Path, keeping the value of every
// flag explicitly set in flags, and then validates the result.
func (cfg *Config) Resolve(flags *pflag.FlagSet) error {
	if cfg.Path != "" {
		file := *cfg
		if err := file.ReadFile(cfg.Path); err != nil {
			return err
		}
		var err error
		flags.Visit(func(f *pflag.Flag) {
			if err == nil {
				err = file.copyFlag(f.Name, cfg)
			}
		})
		if err != nil {
			return err
		}
		*cfg = file
	}
	return cfg.Validate()
}

// ReadFile decodes the YAML file at path over cfg.
func (cfg *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config: %w", err)
	}
	if err := cfg.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}
	return nil
}

// Decode reads YAML settings over cfg, rejecting unknown keys.
func (cfg *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (cfg *Config) copyFlag(name string, from *Config) error {
	switch name {
	case "config":
	case "page-size":
		cfg.PageSize = from.PageSize
	case "limit":
		cfg.Limit = from.Limit
	case "trace":
		cfg.Trace = from.Trace
	case "prefix":
		cfg.Prefix = from.Prefix
	case "dump":
		cfg.Dump = from.Dump
	case "separator":
		cfg.Separator = from.Separator
	case "tee":
		cfg.Tee = from.Tee
	case "jobs":
		cfg.Jobs = from.Jobs
	default:
		return fmt.Errorf("unhandled flag --%v", name)
	}
	return nil
}

// Validate ensures the values meet the expected constraints, normalizing
// them where required.
func (cfg *Config) Validate() error {
	if cfg.PageSize == 0 {
		cfg.PageSize = mem.DefaultPageSize
	}
	if cfg.Prefix < 0 {
		return fmt.Errorf("invalid prefix %v: must not be negative", cfg.Prefix)
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	cfg.Tee = strings.TrimSpace(cfg.Tee)

	sep, err := runeio.UnquoteRune(cfg.Separator)
	if err != nil {
		return fmt.Errorf("invalid separator %q: %w", cfg.Separator, err)
	}
	cfg.sep = sep
	return nil
}

// Sep returns the parsed Separator, valid after Validate.
func (cfg Config) Sep() rune { return cfg.sep }
