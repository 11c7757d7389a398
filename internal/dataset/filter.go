package dataset

import (
	"fmt"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidatePatterns checks that every exclude glob is well formed.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if p == "" {
			return fmt.Errorf("exclude pattern must not be empty")
		}
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return nil
}

// MatchesExclude returns true if file matches any of the exclude patterns,
// either as a full path or by base name.
func MatchesExclude(file string, patterns []string) bool {
	for _, p := range patterns {
		if matched, err := doublestar.Match(p, file); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(p, path.Base(file)); err == nil && matched {
			return true
		}
	}
	return false
}

// Filter returns a copy of d without the files matching patterns. Order is
// preserved. With no patterns d itself is returned.
func Filter(d *Dataset, patterns []string) *Dataset {
	if len(patterns) == 0 {
		return d
	}
	out := &Dataset{Root: d.Root, Files: make([]FileRecord, 0, len(d.Files))}
	for _, f := range d.Files {
		if MatchesExclude(f.File, patterns) {
			continue
		}
		out.Files = append(out.Files, f)
	}
	return out
}
