package theme

// Merge layers extension on top of defaults and returns a new tree:
//
//   - keys present in only one tree are carried over,
//   - keys holding a subtree on both sides are merged recursively,
//   - otherwise the extension value replaces the default outright.
//
// A nil extension yields a copy of defaults. Neither input is modified and the
// result shares no maps or slices with them.
func Merge(defaults, extension Tree) Tree {
	out := defaults.Clone()
	if out == nil {
		out = Tree{}
	}
	for key, ext := range extension {
		if base, ok := asTree(out[key]); ok {
			if sub, ok := asTree(ext); ok {
				out[key] = Merge(base, sub)
				continue
			}
		}
		out[key] = cloneValue(ext)
	}
	return out
}

// Override replaces whole top-level categories of base with the ones in
// overrides, without merging into them.
func Override(base, overrides Tree) Tree {
	out := base.Clone()
	if out == nil {
		out = Tree{}
	}
	for key, v := range overrides {
		out[key] = cloneValue(v)
	}
	return out
}
