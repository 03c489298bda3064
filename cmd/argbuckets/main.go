// Command argbuckets splits its arguments into integers, decimals, strings and
// named arguments and prints the result.
//
//	argbuckets [flags] [--] args...
//	argbuckets [flags] -input "123 45.67 hello --key=value"
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	fluentargs "github.com/cardinalby/go-fluent-args"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/peterbourgon/ff/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// stringList accumulates values of a repeatable flag in order
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "argbuckets: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flagset := flag.NewFlagSet("argbuckets", flag.ContinueOnError)
	flagset.SetOutput(stderr)
	var (
		flArgSeps stringList
		flKVSeps  stringList
		flInput   = flagset.String("input", "", "string to parse instead of the positional arguments")
		flFormat  = flagset.String("format", "yaml", "output format: yaml or json")
		flDebug   = flagset.Bool("debug", false, "enable debug logging")
	)
	flagset.Var(&flArgSeps, "arg-sep", "argument separator, repeatable, earlier ones win (default \" \")")
	flagset.Var(&flKVSeps, "kv-sep", "key/value separator, repeatable, earlier ones win (default \":\" then \"=\")")

	if err := ff.Parse(flagset, args, ff.WithEnvVarPrefix("ARGBUCKETS")); err != nil {
		return errors.Wrap(err, "parsing flags")
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if *flDebug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	builder := fluentargs.Configure().
		AddArgumentSeparators(flArgSeps...).
		AddKeyValueSeparators(flKVSeps...).
		WithLogger(logger)

	var parsed fluentargs.ParsedArgs
	if *flInput != "" {
		parsed = builder.Parse(*flInput)
	} else {
		parsed = builder.ParseArgs(flagset.Args())
	}
	level.Debug(logger).Log(
		"msg", "parsed arguments",
		"tokens", parsed.Len(),
		"named", parsed.NamedCount(),
	)

	return errors.Wrap(write(stdout, *flFormat, parsed), "writing result")
}

func write(w io.Writer, format string, parsed fluentargs.ParsedArgs) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(parsed); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
