package glob

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// maxAlternatives bounds brace expansion of a single pattern.
const maxAlternatives = 1024

// InvalidPatternError is returned when a content pattern cannot be compiled.
type InvalidPatternError struct {
	// Pattern is the pattern exactly as it was supplied.
	Pattern string
	// Index is the position of the pattern in the content list.
	Index  int
	Reason string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid content pattern %q (entry %d): %s", e.Pattern, e.Index, e.Reason)
}

// Pattern is a compiled content pattern. The zero value matches nothing.
type Pattern struct {
	raw          string
	normalized   string
	alternatives []string
}

// Compile compiles every pattern in order. The returned slice has the same
// length and order as patterns.
func Compile(patterns []string) ([]Pattern, error) {
	compiled := make([]Pattern, 0, len(patterns))
	for i, p := range patterns {
		c, err := compile(p, i)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}

// CompileOne compiles a single pattern.
func CompileOne(pattern string) (Pattern, error) {
	return compile(pattern, 0)
}

func compile(raw string, index int) (Pattern, error) {
	fail := func(reason string) (Pattern, error) {
		return Pattern{}, &InvalidPatternError{Pattern: raw, Index: index, Reason: reason}
	}

	normalized := normalizePattern(raw)
	if normalized == "" {
		return fail("pattern is empty")
	}

	alternatives, err := expandBraces(normalized)
	if err != nil {
		return fail(err.Error())
	}
	for _, alt := range alternatives {
		if !doublestar.ValidatePattern(alt) {
			return fail(fmt.Sprintf("alternative %q is not a valid glob", alt))
		}
	}

	return Pattern{raw: raw, normalized: normalized, alternatives: alternatives}, nil
}

// Raw returns the pattern as it was authored.
func (p Pattern) Raw() string { return p.raw }

// String returns the normalized pattern.
func (p Pattern) String() string { return p.normalized }

// MarshalText encodes the normalized pattern.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.normalized), nil
}

// Alternatives returns the brace-free globs the pattern expands to.
func (p Pattern) Alternatives() []string {
	out := make([]string, len(p.alternatives))
	copy(out, p.alternatives)
	return out
}

// Match reports whether the candidate path is selected by any alternative.
func (p Pattern) Match(candidate string) bool {
	name := normalizePath(candidate)
	for _, alt := range p.alternatives {
		// Alternatives were validated at compile time, so Match cannot fail.
		if ok, _ := doublestar.Match(alt, name); ok {
			return true
		}
	}
	return false
}

// MatchAny reports whether any of the patterns selects the candidate path.
func MatchAny(patterns []Pattern, candidate string) bool {
	for _, p := range patterns {
		if p.Match(candidate) {
			return true
		}
	}
	return false
}

func normalizePattern(raw string) string {
	p := strings.TrimSpace(raw)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimLeft(p[2:], "/")
	}
	return p
}

func normalizePath(candidate string) string {
	return path.Clean(filepath.ToSlash(candidate))
}
