package iterator

import (
	"strings"
)

// Split calls yield for each token of the input in order. Tokens are separated by any of
// the given separators. At a given position separators are tested in the order they are
// passed and the first one matching there wins, so with {"-", "--"} a "--" in the input
// is consumed as two "-" separators.
// Every token is trimmed of surrounding whitespace, tokens that end up empty are skipped.
// Empty separators never match. With no separators the whole input is one token.
// Iteration stops when yield returns false.
func Split(input string, separators []string, yield func(token string) bool) {
	tokenStart := 0
	for i := 0; i < len(input); {
		sepLen := matchSeparator(input[i:], separators)
		if sepLen == 0 {
			i++
			continue
		}
		if !yieldTrimmed(input[tokenStart:i], yield) {
			return
		}
		i += sepLen
		tokenStart = i
	}
	yieldTrimmed(input[tokenStart:], yield)
}

// Tokens collects the result of Split
func Tokens(input string, separators []string) []string {
	res := make([]string, 0)
	Split(input, separators, func(token string) bool {
		res = append(res, token)
		return true
	})
	return res
}

// matchSeparator returns the length of the first separator `s` starts with, 0 if none
func matchSeparator(s string, separators []string) int {
	for _, sep := range separators {
		if sep != "" && strings.HasPrefix(s, sep) {
			return len(sep)
		}
	}
	return 0
}

func yieldTrimmed(candidate string, yield func(token string) bool) (getNext bool) {
	if token := strings.TrimSpace(candidate); token != "" {
		return yield(token)
	}
	return true
}
