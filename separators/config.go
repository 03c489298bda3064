package separators

// DefaultArgumentSeparators are used when no argument separator is configured
var DefaultArgumentSeparators = []string{" "}

// DefaultKeyValueSeparators are used when no key/value separator is configured.
// Order matters: ":" is tried before "=".
var DefaultKeyValueSeparators = []string{":", "="}

// Config is a frozen pair of separator sequences consumed by the parsing pipeline.
// Both slices are ordered and free of duplicates.
type Config struct {
	Arguments []string
	KeyValues []string
}

// Freeze snapshots the sets into a Config. A set with no values is replaced by
// the corresponding defaults.
func Freeze(arguments, keyValues *Set) Config {
	return Config{
		Arguments: valuesOrDefault(arguments, DefaultArgumentSeparators),
		KeyValues: valuesOrDefault(keyValues, DefaultKeyValueSeparators),
	}
}

// Dedupe returns values without duplicates keeping the first occurrence of each.
// Nil is returned as nil so that callers can tell "not set" from "empty".
func Dedupe(values []string) []string {
	if values == nil {
		return nil
	}
	return NewSet(values...).Values()
}

func valuesOrDefault(s *Set, defaults []string) []string {
	if s.Len() == 0 {
		return append([]string(nil), defaults...)
	}
	return s.Values()
}
