package cmdargs

type Args struct {
	Args               []string
	keyValueSeparators []string
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

func (args Args) WithKeyValueSeparators(separators ...string) Args {
	args.keyValueSeparators = append([]string(nil), separators...)
	return args
}

func (args Args) KeyValueSeparators() []string {
	return append([]string(nil), args.keyValueSeparators...)
}

func (args Args) IterateTokens(yield func(token Token) bool) {
	for _, arg := range args.Args {
		if !yield(Classify(arg, args.keyValueSeparators)) {
			return
		}
	}
}

// LookupNamed returns the last named token with the given key
func (args Args) LookupNamed(key string) (res Token, has bool) {
	args.IterateTokens(func(token Token) bool {
		if token.Kind == KindNamed && token.Key == key {
			res = token
			has = true
		}
		return true
	})
	return res, has
}

func (args Args) CountKinds() map[Kind]int {
	res := make(map[Kind]int)
	args.IterateTokens(func(token Token) bool {
		res[token.Kind]++
		return true
	})
	return res
}
