package dbg

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// UnserializableMarker replaces a %j argument whose JSON encoding fails
// (cycles, channels, functions). Rendering never propagates the error:
// logging must not crash or abort the caller.
const UnserializableMarker = "[Unserializable]"

// VerbFunc renders one positional argument for a placeholder verb.
type VerbFunc func(arg any) string

var (
	verbsMu sync.RWMutex
	verbs   = map[byte]VerbFunc{
		's': formatString,
		'd': formatInt,
		'i': formatInt,
		'f': formatFloat,
		'j': formatJSON,
		'o': formatInspect,
		'O': formatInspectVerbose,
	}
)

// RegisterVerb installs fn as the renderer for %<verb> placeholders,
// replacing any existing handler. Registration is process-wide and applies
// to format strings compiled after the call; a nil fn removes the verb, so
// later format strings treat %<verb> as literal text.
func RegisterVerb(verb byte, fn VerbFunc) {
	verbsMu.Lock()
	defer verbsMu.Unlock()
	if fn == nil {
		delete(verbs, verb)
		return
	}
	verbs[verb] = fn
}

func lookupVerb(verb byte) (VerbFunc, bool) {
	verbsMu.RLock()
	defer verbsMu.RUnlock()
	fn, ok := verbs[verb]
	return fn, ok
}

// token is one entry of a compiled format string: either a literal run or a
// placeholder that consumes one positional argument.
type token struct {
	literal string // literal text when verb == 0, raw "%x" fallback otherwise
	verb    byte   // placeholder verb, 0 for literal tokens
	render  VerbFunc
}

// compileFormat splits format into literal runs and placeholder tokens.
// '%%' collapses to a literal percent; a verb with no registered handler and
// a trailing bare '%' stay literal text.
func compileFormat(format string) []token {
	var tokens []token
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{literal: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			literal.WriteByte(c)
			continue
		}
		if i+1 >= len(format) {
			literal.WriteByte('%')
			break
		}
		next := format[i+1]
		i++
		if next == '%' {
			literal.WriteByte('%')
			continue
		}
		fn, ok := lookupVerb(next)
		if !ok {
			literal.WriteByte('%')
			literal.WriteByte(next)
			continue
		}
		flush()
		tokens = append(tokens, token{literal: format[i-1 : i+1], verb: next, render: fn})
	}
	flush()
	return tokens
}

// renderTokens replays a compiled sequence against args. Placeholders consume
// one argument each in order; when arguments run out the placeholder renders
// as its literal %verb text. Extra trailing arguments are appended to the
// message space-separated in inspected form.
func renderTokens(tokens []token, args []any) string {
	var b strings.Builder
	next := 0
	for _, tok := range tokens {
		if tok.verb == 0 {
			b.WriteString(tok.literal)
			continue
		}
		if next >= len(args) {
			b.WriteString(tok.literal)
			continue
		}
		b.WriteString(tok.render(args[next]))
		next++
	}
	for ; next < len(args); next++ {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatInspect(args[next]))
	}
	return b.String()
}

// FormatCacheStats reports cumulative counters for one instance's compiled
// format cache.
type FormatCacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// formatCache memoizes compiled format strings for a single Logger. It is
// instance-scoped and grow-only; in practice it is bounded by the number of
// distinct format strings the instance ever sees.
type formatCache struct {
	mu      sync.Mutex
	entries map[string][]token
	hits    uint64
	misses  uint64
}

func (c *formatCache) compiled(format string) []token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tokens, ok := c.entries[format]; ok {
		c.hits++
		return tokens
	}
	tokens := compileFormat(format)
	if c.entries == nil {
		c.entries = make(map[string][]token)
	}
	c.entries[format] = tokens
	c.misses++
	return tokens
}

func (c *formatCache) render(format string, args []any) string {
	return renderTokens(c.compiled(format), args)
}

func (c *formatCache) stats() FormatCacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FormatCacheStats{Hits: c.hits, Misses: c.misses, Size: len(c.entries)}
}

func formatString(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(arg)
	}
}

func formatInt(arg any) string {
	switch v := arg.(type) {
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatInt(int64(v), 10)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%d", arg)
	}
}

func formatFloat(arg any) string {
	switch v := arg.(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case int64:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	default:
		return fmt.Sprintf("%f", arg)
	}
}

func formatJSON(arg any) string {
	data, err := json.Marshal(arg)
	if err != nil {
		return UnserializableMarker
	}
	return string(data)
}

func formatInspect(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case error:
		return v.Error()
	}
	return fmt.Sprintf("%+v", arg)
}

func formatInspectVerbose(arg any) string {
	return fmt.Sprintf("%#v", arg)
}
