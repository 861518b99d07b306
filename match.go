package dbg

import "sync"

// Match reports whether namespace matches pattern, where '*' matches any run
// of characters (including none, including delimiters) and every other byte
// must match exactly. Matching is case-sensitive and anchored at both ends.
// Match is the uncached primitive; the resolver path goes through a
// process-lifetime cache keyed by (namespace, pattern, polarity).
func Match(namespace, pattern string) bool {
	return globMatch(pattern, namespace)
}

type matchKey struct {
	namespace string
	pattern   string
	exclude   bool
}

// matchCache memoizes glob evaluations. The function is pure, so entries are
// never invalidated; the cache is append-only and unbounded. Namespace
// cardinality is small in practice; callers that need a bound should front
// this with their own eviction rather than expect one here.
var matchCache sync.Map // matchKey -> bool

func ruleMatches(namespace string, r Rule) bool {
	key := matchKey{namespace: namespace, pattern: r.Pattern, exclude: r.Exclude}
	if v, ok := matchCache.Load(key); ok {
		return v.(bool)
	}
	matched := globMatch(r.Pattern, namespace)
	matchCache.Store(key, matched)
	return matched
}

// globMatch is a linear scan with single-star backtracking: on mismatch it
// rewinds to the most recent '*' and lets it absorb one more byte. Byte-wise
// comparison is UTF-8 safe because '*' may split anywhere and literal runs
// compare byte for byte.
func globMatch(pattern, name string) bool {
	px, nx := 0, 0
	starPx, starNx := -1, 0
	for nx < len(name) {
		if px < len(pattern) {
			if c := pattern[px]; c == '*' {
				starPx, starNx = px, nx
				px++
				continue
			} else if c == name[nx] {
				px++
				nx++
				continue
			}
		}
		if starPx >= 0 {
			starNx++
			px, nx = starPx+1, starNx
			continue
		}
		return false
	}
	for px < len(pattern) && pattern[px] == '*' {
		px++
	}
	return px == len(pattern)
}
