package theme

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

// defaultTokens contains the built-in token set, compiled into the binary.
//
//go:embed defaults.toml
var defaultTokens string

// defaults is parsed once and never mutated; Defaults hands out copies.
var defaults = mustParseDefaults(defaultTokens)

// Tree is a nested mapping from token category to either a scalar token value
// or another Tree.
type Tree map[string]any

// Defaults returns a copy of the built-in token tree.
func Defaults() Tree {
	return defaults.Clone()
}

// Parse decodes a TOML document into a Tree.
func Parse(data string) (Tree, error) {
	var m map[string]any
	if err := toml.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return FromMap(m), nil
}

func mustParseDefaults(data string) Tree {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded theme defaults: %v", err))
	}
	return t
}

// FromMap converts a decoded document (nested map[string]any, as produced by
// the TOML, YAML and JSON decoders) into a Tree. The input is not retained.
// A nil map yields a nil Tree.
func FromMap(m map[string]any) Tree {
	if m == nil {
		return nil
	}
	out := make(Tree, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = cloneValue(v)
	}
	return out
}

// Lookup walks the tree along path and returns the value found there, which
// may be a scalar or a subtree.
func (t Tree) Lookup(path ...string) (any, bool) {
	var cur any = t
	for _, key := range path {
		sub, ok := asTree(cur)
		if !ok {
			return nil, false
		}
		cur, ok = sub[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// asTree reports whether v is a subtree. Plain maps count, so callers may
// build extensions without converting them first.
func asTree(v any) (Tree, bool) {
	switch sub := v.(type) {
	case Tree:
		return sub, true
	case map[string]any:
		return Tree(sub), true
	case map[any]any:
		return cloneValue(sub).(Tree), true
	}
	return nil, false
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Tree:
		return val.Clone()
	case map[string]any:
		return Tree(val).Clone()
	case map[any]any:
		// yaml.v3 decodes mappings with non-string keys (e.g. 50: "#fff")
		// this way.
		out := make(Tree, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, m := range val {
			out[i] = Tree(m).Clone()
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	}
	return v
}
