package fluentargs

import (
	"fmt"
	"iter"

	"golang.org/x/text/cases"
)

// EnumArgs returns a sequence of the variants whose String() matches one of the string
// arguments ignoring case. The sequence follows ParsedArgs.Strings() order, so repeated
// arguments give repeated variants.
// Named, integer and decimal arguments are never matched: a number could otherwise be
// confused with an enum's underlying value.
func EnumArgs[T fmt.Stringer](args ParsedArgs, variants ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		// Caser is stateful, don't share it
		caser := cases.Fold()
		byName := make(map[string]T, len(variants))
		for _, variant := range variants {
			name := caser.String(variant.String())
			if _, exists := byName[name]; !exists {
				byName[name] = variant
			}
		}
		for _, arg := range args.strings {
			if variant, ok := byName[caser.String(arg)]; ok {
				if !yield(variant) {
					return
				}
			}
		}
	}
}
