package fluentargs

import (
	"github.com/cardinalby/go-fluent-args/cmdargs"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ParsedArgs is the immutable result of parsing. Every token lands in exactly one of
// Integers, Decimals, Strings or the named arguments; All keeps every token.
// Accessors return copies, so a ParsedArgs value can be shared between goroutines.
type ParsedArgs struct {
	all         []string
	integers    []int64
	decimals    []decimal.Decimal
	strings     []string
	named       map[string]string
	namedTokens int
}

func newParsedArgs(args cmdargs.Args, logger log.Logger) ParsedArgs {
	res := ParsedArgs{
		all:      make([]string, 0, len(args.Args)),
		integers: make([]int64, 0),
		decimals: make([]decimal.Decimal, 0),
		strings:  make([]string, 0),
		named:    make(map[string]string),
	}
	args.IterateTokens(func(token cmdargs.Token) bool {
		res.all = append(res.all, token.Arg)
		switch token.Kind {
		case cmdargs.KindNamed:
			if prev, exists := res.named[token.Key]; exists {
				level.Debug(logger).Log(
					"msg", "named argument overwritten",
					"key", token.Key,
					"old", prev,
					"new", token.Value,
				)
			}
			res.named[token.Key] = token.Value
			res.namedTokens++
		case cmdargs.KindInteger:
			res.integers = append(res.integers, token.Integer)
		case cmdargs.KindDecimal:
			res.decimals = append(res.decimals, token.Decimal)
		default:
			res.strings = append(res.strings, token.Arg)
		}
		level.Debug(logger).Log("msg", "classified token", "arg", token.Arg, "kind", token.Kind)
		return true
	})
	return res
}

// All returns every token in input order, including named ones in their raw form
func (pa ParsedArgs) All() []string {
	return slices.Clone(pa.all)
}

// Len returns the number of tokens
func (pa ParsedArgs) Len() int {
	return len(pa.all)
}

// Integers returns the tokens classified as integers in input order
func (pa ParsedArgs) Integers() []int64 {
	return slices.Clone(pa.integers)
}

// Decimals returns the tokens classified as fixed-point decimals in input order
func (pa ParsedArgs) Decimals() []decimal.Decimal {
	return slices.Clone(pa.decimals)
}

// Strings returns the tokens that are neither named nor numeric in input order
func (pa ParsedArgs) Strings() []string {
	return slices.Clone(pa.strings)
}

// NamedArgs returns a copy of the named arguments. For repeated keys the last value wins.
func (pa ParsedArgs) NamedArgs() map[string]string {
	return maps.Clone(pa.named)
}

// NamedKeys returns the keys of the named arguments sorted
func (pa ParsedArgs) NamedKeys() []string {
	keys := maps.Keys(pa.named)
	slices.Sort(keys)
	return keys
}

// NamedCount returns the number of distinct named argument keys
func (pa ParsedArgs) NamedCount() int {
	return len(pa.named)
}

// NamedTokenCount returns the number of tokens classified as named, counting repeated keys
func (pa ParsedArgs) NamedTokenCount() int {
	return pa.namedTokens
}

// LookupNamed returns the value of the named argument and whether it's present
func (pa ParsedArgs) LookupNamed(key string) (value string, has bool) {
	value, has = pa.named[key]
	return value, has
}

// Named returns the value of the named argument or an error matching ErrKeyNotFound
func (pa ParsedArgs) Named(key string) (string, error) {
	value, has := pa.named[key]
	if !has {
		return "", errors.Wrapf(ErrKeyNotFound, "key %q", key)
	}
	return value, nil
}
