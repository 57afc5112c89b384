package rulefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Exported variables.
var (
	ErrNoPatterns     = errors.New("no rule file patterns provided")
	ErrUnmatchedBrace = errors.New("unmatched brace in pattern")
)

// Match expands rule file patterns using fish-style globs ("**" and "{a,b}").
// Only regular files are returned, sorted and without duplicates.
func Match(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	var matches []string

	for _, pattern := range patterns {
		alternatives, err := expandAlternatives(filepath.Clean(pattern))
		if err != nil {
			return nil, err
		}

		for _, alt := range alternatives {
			root, rel := splitRoot(alt)

			found, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(rel), doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("matching pattern %q: %w", alt, err)
			}

			for _, f := range found {
				matches = append(matches, filepath.Join(root, filepath.FromSlash(f)))
			}
		}
	}

	slices.Sort(matches)

	return slices.Compact(matches), nil
}

// expandAlternatives expands the first "{...}" group and recurses, so nested and
// repeated groups all expand.
func expandAlternatives(pattern string) ([]string, error) {
	open := strings.IndexByte(pattern, '{')
	if open == -1 {
		return []string{pattern}, nil
	}

	end := closingBrace(pattern, open)
	if end == -1 {
		return nil, fmt.Errorf("%w: %q", ErrUnmatchedBrace, pattern)
	}

	prefix, suffix := pattern[:open], pattern[end+1:]

	var out []string

	for _, option := range splitOptions(pattern[open+1 : end]) {
		expanded, err := expandAlternatives(prefix + option + suffix)
		if err != nil {
			return nil, err
		}

		out = append(out, expanded...)
	}

	return out, nil
}

func closingBrace(pattern string, open int) int {
	depth := 0

	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// splitOptions splits brace content on top-level commas.
func splitOptions(content string) []string {
	var (
		options []string
		depth   int
		start   int
	)

	for i := range len(content) {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth = max(depth-1, 0)
		case ',':
			if depth == 0 {
				options = append(options, content[start:i])
				start = i + 1
			}
		}
	}

	return append(options, content[start:])
}

// splitRoot returns the filesystem root to glob from and the pattern relative to it.
// Relative patterns glob from the working directory.
func splitRoot(pattern string) (root, rel string) {
	if !filepath.IsAbs(pattern) {
		return ".", pattern
	}

	root = filepath.VolumeName(pattern) + string(filepath.Separator)

	return root, strings.TrimPrefix(pattern, root)
}
