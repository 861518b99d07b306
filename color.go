package dbg

import (
	"sync"

	"pkt.systems/dbg/ansi"
)

// colorCache memoizes namespace->color assignments for the lifetime of the
// process. The selection is a pure function of the namespace string, so
// entries are never invalidated.
var colorCache sync.Map // namespace string -> ansi.ColorID

// SelectColor deterministically maps namespace to a color in the active
// palette. The same namespace always yields the same ColorID within one
// process run; distinct namespaces spread across the palette via a rolling
// hash.
func SelectColor(namespace string) ansi.ColorID {
	if v, ok := colorCache.Load(namespace); ok {
		return v.(ansi.ColorID)
	}
	id := hashColor(namespace, ansi.Active().Len())
	actual, _ := colorCache.LoadOrStore(namespace, id)
	return actual.(ansi.ColorID)
}

// hashColor is the classic h = h*31 + c rolling hash, wrapped to 32-bit
// signed, indexed by absolute value. The wrap is deliberate: the assignment
// must stay stable across runs and across implementations of this scheme.
func hashColor(namespace string, size int) ansi.ColorID {
	if size <= 0 {
		return 0
	}
	var h int32
	for _, r := range namespace {
		h = h*31 + int32(r)
	}
	h64 := int64(h)
	if h64 < 0 {
		h64 = -h64
	}
	return ansi.ColorID(h64 % int64(size))
}
