// Package main provides the CLI entrypoint for dotmerge.
//
// dotmerge merges YAML and JSON documents left to right:
//   - nested mappings are merged key by key (or replaced wholesale with -flat)
//   - -set path=value overrides are applied last, values are parsed as YAML
//   - the result is printed as yaml, json or a dump of the plain maps
//
// Usage:
//
//	dotmerge [-format yaml|json|dump] [-o out.yaml] [-flat] [-set a.b=1]... base.yaml override.json...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	"dotdict/dot"
	"dotdict/internal/document"
	"dotdict/internal/log"
)

type setFlags []string

func (s *setFlags) String() string {
	return strings.Join(*s, ",")
}

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type options struct {
	format   string
	output   string
	flat     bool
	sets     setFlags
	logLevel string
	files    []string
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "dotmerge: %v\n", err)
		os.Exit(2)
	}

	logger, err := log.InitLogger(opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dotmerge: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts, os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "merge failed", "err", err)
		os.Exit(1)
	}
}

func parseArgs(args []string, errOut io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("dotmerge", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.format, "format", string(document.FormatYAML), "output format (yaml/json/dump)")
	fs.StringVar(&opts.output, "o", "", "write the result to this file instead of stdout, format from its extension")
	fs.BoolVar(&opts.flat, "flat", false, "replace nested mappings wholesale instead of merging them")
	fs.Var(&opts.sets, "set", "override path=value after merging (repeatable)")
	fs.StringVar(&opts.logLevel, "log.level", "info", "log level (debug/info/warn/error)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.files = fs.Args()
	if len(opts.files) == 0 {
		return opts, errors.New("at least one input document is required")
	}

	return opts, nil
}

func run(opts options, out io.Writer, logger kitlog.Logger) error {
	var (
		merged  dot.Container
		convert func(any) any
	)

	if opts.flat {
		merged = &dot.Dict{}
		convert = func(v any) any { return dot.ToDot[dot.Dict](v, true) }
	} else {
		merged = &dot.AutoDict{}
		convert = func(v any) any { return dot.ToDot[dot.AutoDict](v, true) }
	}

	level.Info(logger).Log("msg", "merging documents", "documents", len(opts.files), "flat", opts.flat)

	for _, file := range opts.files {
		doc, err := document.LoadFile(file)
		if err != nil {
			return err
		}

		if err := merged.Update(doc); err != nil {
			return fmt.Errorf("failed to merge %s: %w", file, err)
		}

		level.Debug(logger).Log("msg", "merged document", "file", file, "keys", doc.Len())
	}

	for _, assignment := range opts.sets {
		path, raw, ok := strings.Cut(assignment, "=")
		if !ok || path == "" {
			return fmt.Errorf("invalid -set %q: expected path=value", assignment)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return fmt.Errorf("invalid -set %q: %w", assignment, err)
		}

		if err := dot.SetPath(merged, path, convert(value)); err != nil {
			return fmt.Errorf("failed to apply -set %q: %w", assignment, err)
		}

		level.Debug(logger).Log("msg", "applied override", "path", path)
	}

	if opts.output != "" {
		if err := document.WriteFile(merged, opts.output); err != nil {
			return err
		}

		level.Info(logger).Log("msg", "wrote merged document", "file", opts.output)

		return nil
	}

	data, err := document.Marshal(merged, document.Format(opts.format))
	if err != nil {
		return err
	}

	_, err = out.Write(data)

	return err
}
