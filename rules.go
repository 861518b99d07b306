package dbg

import (
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
)

// Rule is one compiled token of an enable specification: a namespace glob
// plus a polarity. Rules are immutable values; the pattern matcher caches
// results keyed by the full rule so identical pattern text with the opposite
// polarity can never collide.
type Rule struct {
	// Pattern is a namespace glob where '*' matches any run of characters,
	// including none and including delimiter characters. Matching is
	// case-sensitive and anchored at both ends.
	Pattern string
	// Exclude marks the rule as an exclusion (the token carried a '-' prefix).
	Exclude bool
}

// String re-serializes the rule in enable-spec token form.
func (r Rule) String() string {
	if r.Exclude {
		return "-" + r.Pattern
	}
	return r.Pattern
}

// ParseSpec compiles an enable specification into its ordered rule list
// without installing it. Tokens are separated by commas and/or whitespace; a
// '-' prefix marks an exclusion; empty tokens are skipped silently. ParseSpec
// never fails: a malformed spec simply yields fewer rules.
func ParseSpec(spec string) []Rule {
	var rules []Rule
	for token := range strings.FieldsFuncSeq(spec, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}) {
		exclude := strings.HasPrefix(token, "-")
		if exclude {
			token = token[1:]
		}
		if token == "" {
			continue
		}
		rules = append(rules, Rule{Pattern: token, Exclude: exclude})
	}
	return rules
}

// EnabledIn evaluates namespace against rules without touching the active
// specification. The policy is the one Enabled uses: default disabled, rules
// processed strictly left to right, each matching inclusion turns the verdict
// on, each matching exclusion turns it off, last match wins.
func EnabledIn(namespace string, rules []Rule) bool {
	verdict := false
	for _, r := range rules {
		if ruleMatches(namespace, r) {
			verdict = !r.Exclude
		}
	}
	return verdict
}

// ruleSet is one immutable compiled enable specification plus its
// resolver-level verdict cache. The cache is a field of the set itself, so
// swapping in a new set atomically discards every cached verdict; the
// pattern-match cache survives the swap because rule values recur across
// generations.
type ruleSet struct {
	rules      []Rule
	generation uint64
	verdicts   sync.Map // namespace string -> bool
}

var ruleSetGeneration atomic.Uint64

func compileSpec(spec string) *ruleSet {
	return &ruleSet{
		rules:      ParseSpec(spec),
		generation: ruleSetGeneration.Add(1),
	}
}

func (s *ruleSet) enabled(namespace string) bool {
	if v, ok := s.verdicts.Load(namespace); ok {
		return v.(bool)
	}
	verdict := EnabledIn(namespace, s.rules)
	s.verdicts.Store(namespace, verdict)
	return verdict
}

// String re-serializes the specification that produced the set: rules joined
// by commas with exclusions re-prefixed by '-'.
func (s *ruleSet) String() string {
	if len(s.rules) == 0 {
		return ""
	}
	tokens := make([]string, len(s.rules))
	for i, r := range s.rules {
		tokens[i] = r.String()
	}
	return strings.Join(tokens, ",")
}
