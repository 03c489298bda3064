package fluentargs

import (
	"github.com/cardinalby/go-fluent-args/separators"
	"github.com/go-kit/kit/log"
)

// Builder accumulates separators and creates parsers. Separators of each kind keep
// the order they were first added in, repeated values are ignored.
// If no separator of a kind is added, the defaults are used: " " for arguments and
// ":", "=" for key/value pairs.
// Builder is not safe for concurrent modification. Use Parser() to get an immutable
// snapshot that can be shared.
type Builder struct {
	argumentSeparators *separators.Set
	keyValueSeparators *separators.Set
	logger             log.Logger
}

// Configure creates a new Builder with no separators added
func Configure() *Builder {
	return &Builder{
		argumentSeparators: separators.NewSet(),
		keyValueSeparators: separators.NewSet(),
	}
}

// AddArgumentSeparator adds a string that separates arguments. At the same position of
// the input, separators added earlier take priority.
func (b *Builder) AddArgumentSeparator(separator string) *Builder {
	return b.AddArgumentSeparators(separator)
}

// AddArgumentSeparators adds several argument separators in order
func (b *Builder) AddArgumentSeparators(seps ...string) *Builder {
	b.argumentSeparators.Add(seps...)
	return b
}

// AddKeyValueSeparator adds a string that separates the key and the value of a named
// argument. Separators are tried in the order they were added: the first one found
// in an argument (not at its start) wins, even if another one appears earlier in it.
func (b *Builder) AddKeyValueSeparator(separator string) *Builder {
	return b.AddKeyValueSeparators(separator)
}

// AddKeyValueSeparators adds several key/value separators in order
func (b *Builder) AddKeyValueSeparators(seps ...string) *Builder {
	b.keyValueSeparators.Add(seps...)
	return b
}

// WithLogger sets the logger for debug output of created parsers
func (b *Builder) WithLogger(logger log.Logger) *Builder {
	b.logger = logger
	return b
}

// Parser returns a Parser with the current configuration. Further changes of the
// Builder don't affect it.
func (b *Builder) Parser() *Parser {
	return newParser(separators.Freeze(b.argumentSeparators, b.keyValueSeparators), b.logger)
}

// Parse parses the input with the current configuration. See Parser.Parse
func (b *Builder) Parse(input string) ParsedArgs {
	return b.Parser().Parse(input)
}

// ParseArgs parses pre-split arguments with the current configuration. See Parser.ParseArgs
func (b *Builder) ParseArgs(args []string) ParsedArgs {
	return b.Parser().ParseArgs(args)
}
