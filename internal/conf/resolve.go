package conf

import (
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tributes/styleconf/internal/glob"
	"github.com/tributes/styleconf/internal/mode"
	"github.com/tributes/styleconf/internal/theme"
)

// extendKey names the theme subtree that is merged into the defaults instead
// of replacing them.
const extendKey = "extend"

// ResolvedConfig is a validated configuration with every default applied.
// It is never modified after Resolve returns and may be shared between
// goroutines.
type ResolvedConfig struct {
	patterns []glob.Pattern
	mode     mode.Strategy
	theme    theme.Tree
}

// Resolve validates raw and assembles a ResolvedConfig. Errors from the
// content patterns (*glob.InvalidPatternError) and the dark mode strategy
// (*mode.UnknownStrategyError) are returned unchanged. When both are invalid
// the pattern error is reported.
func Resolve(raw RawConfig) (*ResolvedConfig, error) {
	var (
		patterns   []glob.Pattern
		strategy   mode.Strategy
		tokens     theme.Tree
		patternErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		patterns, patternErr = glob.Compile(raw.Content)
		return patternErr
	})
	g.Go(func() error {
		var err error
		strategy, err = mode.Resolve(raw.DarkMode)
		return err
	})
	g.Go(func() error {
		tokens = resolveTheme(raw.Theme)
		return nil
	})
	if err := g.Wait(); err != nil {
		if patternErr != nil {
			return nil, patternErr
		}
		return nil, err
	}

	slog.Debug("resolved configuration",
		"patterns", len(patterns),
		"darkMode", strategy.String(),
		"categories", len(tokens))

	return &ResolvedConfig{patterns: patterns, mode: strategy, theme: tokens}, nil
}

// resolveTheme applies a theme document to the defaults. Top-level keys other
// than "extend" replace the default category of the same name; the "extend"
// subtree is then deep-merged on top.
func resolveTheme(doc theme.Tree) theme.Tree {
	base := theme.Defaults()
	if doc == nil {
		return base
	}

	overrides := theme.Tree{}
	var extension theme.Tree
	for key, value := range doc {
		if key != extendKey {
			overrides[key] = value
			continue
		}
		switch sub := value.(type) {
		case theme.Tree:
			extension = sub
		case map[string]any:
			extension = theme.FromMap(sub)
		default:
			slog.Warn("ignoring theme.extend that is not a table", "value", value)
		}
	}

	return theme.Merge(theme.Override(base, overrides), extension)
}

// Patterns returns the compiled content patterns in authored order.
func (c *ResolvedConfig) Patterns() []glob.Pattern {
	out := make([]glob.Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// Mode returns the dark mode strategy.
func (c *ResolvedConfig) Mode() mode.Strategy {
	return c.mode
}

// Theme returns a copy of the resolved token tree.
func (c *ResolvedConfig) Theme() theme.Tree {
	return c.theme.Clone()
}

// Match reports whether any content pattern selects the path.
func (c *ResolvedConfig) Match(path string) bool {
	return glob.MatchAny(c.patterns, path)
}

// MarshalJSON encodes the configuration in the shape it was authored in,
// with defaults filled in.
func (c *ResolvedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Content  []glob.Pattern `json:"content"`
		DarkMode mode.Strategy  `json:"darkMode"`
		Theme    theme.Tree     `json:"theme"`
	}{
		Content:  c.patterns,
		DarkMode: c.mode,
		Theme:    c.theme,
	})
}
