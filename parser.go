package fluentargs

import (
	"strings"

	"github.com/cardinalby/go-fluent-args/cmdargs"
	"github.com/cardinalby/go-fluent-args/iterator"
	"github.com/cardinalby/go-fluent-args/separators"
	"github.com/go-kit/kit/log"
)

// Parser splits and classifies arguments using a fixed separators configuration.
// It is immutable and safe for concurrent use.
type Parser struct {
	config separators.Config
	logger log.Logger
}

// NewParser creates a Parser with the given separators. Duplicates are removed keeping
// the first occurrence.
// Nil `argumentSeparators` means separators.DefaultArgumentSeparators, nil
// `keyValueSeparators` means separators.DefaultKeyValueSeparators.
// Empty non-nil slices disable splitting (the whole input is one token) and named
// arguments respectively.
func NewParser(argumentSeparators, keyValueSeparators []string) *Parser {
	return newParser(separators.Config{
		Arguments: dedupeOrDefault(argumentSeparators, separators.DefaultArgumentSeparators),
		KeyValues: dedupeOrDefault(keyValueSeparators, separators.DefaultKeyValueSeparators),
	}, nil)
}

func newParser(config separators.Config, logger log.Logger) *Parser {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Parser{
		config: config,
		logger: logger,
	}
}

// Parse splits the input by the argument separators and classifies the tokens
func (p *Parser) Parse(input string) ParsedArgs {
	tokens := iterator.Tokens(input, p.config.Arguments)
	args := cmdargs.NewArgs(tokens).WithKeyValueSeparators(p.config.KeyValues...)
	return newParsedArgs(args, p.logger)
}

// ParseArgs joins the arguments with a single space and parses the result.
// This way key/value pairs split by a shell, like ["--key", "value"] with " " key/value
// separator, are recombined.
func (p *Parser) ParseArgs(args []string) ParsedArgs {
	return p.Parse(strings.Join(args, " "))
}

// ArgumentSeparators returns the argument separators in the order they are tried
func (p *Parser) ArgumentSeparators() []string {
	return append([]string(nil), p.config.Arguments...)
}

// KeyValueSeparators returns the key/value separators in the order they are tried
func (p *Parser) KeyValueSeparators() []string {
	return append([]string(nil), p.config.KeyValues...)
}

func dedupeOrDefault(values []string, defaults []string) []string {
	if values == nil {
		return append([]string(nil), defaults...)
	}
	return separators.Dedupe(values)
}
