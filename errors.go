package fluentargs

import (
	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by named argument lookups when the key is absent.
// A present key with an empty value is not an error.
var ErrKeyNotFound = errors.New("named argument not found")

// ErrInvalidValue is returned by typed named argument lookups when the value
// can't be converted to the requested type
var ErrInvalidValue = errors.New("invalid named argument value")
