package index

import "github.com/sahilm/fuzzy"

// Suggest returns up to n candidates that fuzzily match query, best first.
func Suggest(query string, candidates []string, n int) []string {
	matches := fuzzy.Find(query, candidates)
	out := make([]string, 0, n)
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
