package fluentargs

import (
	"strconv"
	"time"

	"github.com/cardinalby/go-fluent-args/cmdargs"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NamedInt64 returns the named argument value parsed the same way integer tokens are
func (pa ParsedArgs) NamedInt64(key string) (int64, error) {
	value, err := pa.Named(key)
	if err != nil {
		return 0, err
	}
	i, ok := cmdargs.ParseInteger(value)
	if !ok {
		return 0, invalidValueErr(key, value, "integer")
	}
	return i, nil
}

// NamedDecimal returns the named argument value parsed as an integer or fixed-point decimal
func (pa ParsedArgs) NamedDecimal(key string) (decimal.Decimal, error) {
	value, err := pa.Named(key)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, ok := cmdargs.ParseDecimal(value)
	if !ok {
		return decimal.Decimal{}, invalidValueErr(key, value, "decimal")
	}
	return d, nil
}

// NamedBool returns the named argument value parsed with strconv.ParseBool
func (pa ParsedArgs) NamedBool(key string) (bool, error) {
	value, err := pa.Named(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, invalidValueErr(key, value, "bool")
	}
	return b, nil
}

// NamedDuration returns the named argument value parsed with time.ParseDuration
func (pa ParsedArgs) NamedDuration(key string) (time.Duration, error) {
	value, err := pa.Named(key)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, invalidValueErr(key, value, "duration")
	}
	return d, nil
}

func invalidValueErr(key, value, typeName string) error {
	return errors.Wrapf(ErrInvalidValue, "key %q: %q is not a valid %s", key, value, typeName)
}
