package dbg

import (
	"io"
	"sync"
	"time"

	"pkt.systems/dbg/internal/istty"
)

type fdWriter interface {
	Fd() uintptr
}

// colorProbeTTL bounds how often the console sink re-asks the operating
// system whether its destination is a terminal. Descriptors rarely change
// nature mid-run, but redirection through tools like logrotate makes a
// forever-cached answer wrong; one second keeps the probe off the hot path
// without going stale.
const colorProbeTTL = time.Second

// colorProbe caches the terminal check for a writer with a short TTL. The
// probe is cheap but still a syscall; log-per-iteration workloads would
// otherwise pay it on every line.
type colorProbe struct {
	w     io.Writer
	ttl   time.Duration
	now   func() time.Time
	probe func(io.Writer) bool

	mu      sync.Mutex
	checked time.Time
	result  bool
}

func newColorProbe(w io.Writer) *colorProbe {
	return &colorProbe{w: w, ttl: colorProbeTTL, now: timeNow, probe: writerIsTerminal}
}

func (p *colorProbe) supported() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	if !p.checked.IsZero() && now.Sub(p.checked) < p.ttl {
		return p.result
	}
	p.checked = now
	p.result = p.probe(p.w)
	return p.result
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return istty.IsTerminal(int(f.Fd()))
}
