package dbg

import (
	"sync/atomic"
	"time"
)

// current holds the active rule-set snapshot. Readers load the pointer once
// per query, so an Enable swap can never be observed mid-update: a query sees
// either the old set with its old verdict cache or the new set with an empty
// one, never a mix.
var current atomic.Pointer[ruleSet]

func init() {
	current.Store(compileSpec(""))
}

// timeNow is the monotonic time source for elapsed-time metadata.
// Overridable in tests.
var timeNow = time.Now

// Enable replaces the active enable specification. spec is a comma and/or
// whitespace separated list of namespace globs; a '-' prefix excludes the
// namespaces the glob matches. The empty string disables everything.
//
//	dbg.Enable("app:*,-app:secret")
func Enable(spec string) {
	current.Store(compileSpec(spec))
}

// Disable turns every namespace off and returns the previous specification
// re-serialized, so callers can restore it later with Enable.
func Disable() string {
	prev := current.Swap(compileSpec(""))
	return prev.String()
}

// Enabled reports whether namespace is on under the active specification.
// Verdicts are cached per rule-set generation; the cache is discarded
// wholesale whenever Enable installs a new specification.
func Enabled(namespace string) bool {
	return current.Load().enabled(namespace)
}

// Namespaces returns the active specification re-serialized in the same form
// Disable returns: rules joined by commas, exclusions prefixed by '-'.
func Namespaces() string {
	return current.Load().String()
}

// Rules returns a copy of the active specification's compiled rules in
// input order.
func Rules() []Rule {
	rules := current.Load().rules
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Generation returns the revision counter of the active rule set. It
// increases on every Enable or Disable call, including no-op replacements
// with an identical spec.
func Generation() uint64 {
	return current.Load().generation
}
