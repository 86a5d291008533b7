// Package scan walks a file tree and selects the files named by a
// configuration's content patterns.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/tributes/styleconf/internal/glob"
)

// Files returns the slash-separated paths under fsys matched by any of the
// patterns, sorted. Paths are relative to the root of fsys, which is where
// patterns such as "./src/**/*.rs" are anchored.
func Files(ctx context.Context, fsys fs.FS, patterns []glob.Pattern) ([]string, error) {
	var matched []string
	if len(patterns) == 0 {
		return matched, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if glob.MatchAny(patterns, path) {
			matched = append(matched, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	sort.Strings(matched)
	slog.Debug("scanned content files", "matched", len(matched), "patterns", len(patterns))

	return matched, nil
}
