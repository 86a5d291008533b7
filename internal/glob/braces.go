package glob

import (
	"errors"
	"fmt"
)

var (
	errUnclosedBrace   = errors.New("unbalanced braces: '{' is never closed")
	errUnexpectedBrace = errors.New("unbalanced braces: '}' has no matching '{'")
)

// expandBraces rewrites every {a,b,...} group into separate globs, outermost
// group first. Backslash escapes are skipped and left in place for the
// matcher.
func expandBraces(pattern string) ([]string, error) {
	start, end, err := firstGroup(pattern)
	if err != nil {
		return nil, err
	}
	if start < 0 {
		return []string{pattern}, nil
	}

	prefix, body, suffix := pattern[:start], pattern[start+1:end], pattern[end+1:]
	var out []string
	for _, alt := range splitAlternatives(body) {
		expanded, err := expandBraces(prefix + alt + suffix)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
		if len(out) > maxAlternatives {
			return nil, fmt.Errorf("brace expansion exceeds %d alternatives", maxAlternatives)
		}
	}
	return out, nil
}

// firstGroup locates the first top-level brace group. It returns start = -1
// when the pattern contains no group.
func firstGroup(pattern string) (start, end int, err error) {
	start = -1
	depth := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				return -1, -1, errUnexpectedBrace
			}
			depth--
			if depth == 0 {
				return start, i, nil
			}
		}
	}
	if depth > 0 {
		return -1, -1, errUnclosedBrace
	}
	return -1, -1, nil
}

// splitAlternatives splits a group body on commas that are not nested in an
// inner group.
func splitAlternatives(body string) []string {
	var alts []string
	depth, last := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				alts = append(alts, body[last:i])
				last = i + 1
			}
		}
	}
	return append(alts, body[last:])
}
