package cmdargs

import (
	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindText Kind = iota
	KindNamed
	KindInteger
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

type Token struct {
	// Arg is the trimmed token as it appeared in the input
	Arg string
	// Kind defines which of the fields below are set:
	// KindNamed   - Key and Value
	// KindInteger - Integer
	// KindDecimal - Decimal
	// KindText    - none, Arg is the value
	Kind    Kind
	Key     string
	Value   string
	Integer int64
	Decimal decimal.Decimal
}
