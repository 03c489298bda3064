package fluentargs

import (
	"encoding/json"
)

type parsedArgsDoc struct {
	All      []string          `json:"all" yaml:"all"`
	Integers []int64           `json:"integers" yaml:"integers"`
	Decimals []string          `json:"decimals" yaml:"decimals"`
	Strings  []string          `json:"strings" yaml:"strings"`
	Named    map[string]string `json:"named" yaml:"named"`
}

func (pa ParsedArgs) doc() parsedArgsDoc {
	decimals := make([]string, len(pa.decimals))
	for i, d := range pa.decimals {
		decimals[i] = d.String()
	}
	return parsedArgsDoc{
		All:      pa.All(),
		Integers: pa.Integers(),
		Decimals: decimals,
		Strings:  pa.Strings(),
		Named:    pa.NamedArgs(),
	}
}

// MarshalJSON encodes decimals as strings to keep their precision
func (pa ParsedArgs) MarshalJSON() ([]byte, error) {
	return json.Marshal(pa.doc())
}

// MarshalYAML implements yaml.Marshaler. Decimals are encoded as strings.
func (pa ParsedArgs) MarshalYAML() (any, error) {
	return pa.doc(), nil
}
