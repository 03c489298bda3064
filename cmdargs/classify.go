package cmdargs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Classify determines the kind of the token. The checks are made in the following order
// and the first successful one wins:
//  1. named: key/value separators are checked in the given order, for each of them
//     only its first occurrence counts. The first separator found at index >= 1 splits
//     the token into the key and the trimmed value. A separator at index 0 would give
//     an empty key and is skipped.
//  2. base-10 int64
//  3. fixed-point decimal
//  4. text
func Classify(arg string, keyValueSeparators []string) Token {
	if key, value, ok := splitNamed(arg, keyValueSeparators); ok {
		return Token{Arg: arg, Kind: KindNamed, Key: key, Value: value}
	}
	if i, ok := ParseInteger(arg); ok {
		return Token{Arg: arg, Kind: KindInteger, Integer: i}
	}
	if d, ok := ParseDecimal(arg); ok {
		return Token{Arg: arg, Kind: KindDecimal, Decimal: d}
	}
	return Token{Arg: arg, Kind: KindText}
}

// ParseInteger parses a base-10 signed integer with an optional sign
func ParseInteger(s string) (int64, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

var fixedPointRegexp = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// ParseDecimal parses a fixed-point number: optional sign, digits and an optional
// fractional part. Exponents are not accepted.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	if !fixedPointRegexp.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func splitNamed(arg string, keyValueSeparators []string) (key, value string, ok bool) {
	for _, sep := range keyValueSeparators {
		if sep == "" {
			continue
		}
		if i := strings.Index(arg, sep); i >= 1 {
			return arg[:i], strings.TrimSpace(arg[i+len(sep):]), true
		}
	}
	return "", "", false
}
