package dbg

import (
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/dbg/ansi"
)

// EnvOption customizes FromEnv behavior.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix  string
	writer  io.Writer
	spec    string
	hasSpec bool
}

// WithEnvPrefix overrides the environment variable prefix used by FromEnv.
// The default is "DEBUG".
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvWriter seeds FromEnv with the sink's output writer. The default is
// os.Stderr.
func WithEnvWriter(w io.Writer) EnvOption {
	return func(cfg *envConfig) {
		cfg.writer = w
	}
}

// WithEnvSpec seeds FromEnv with an enable specification used when the
// environment does not carry one.
func WithEnvSpec(spec string) EnvOption {
	return func(cfg *envConfig) {
		cfg.spec = spec
		cfg.hasSpec = true
	}
}

// FromEnv configures the package from the process environment and installs
// the resulting console sink as the process default. The core never reads
// the environment on its own; this constructor is the one place the
// environment collaborator is consulted.
//
// Recognised variables (default prefix "DEBUG"): {prefix} holds the enable
// specification, {prefix}_COLORS forces color on or off, {prefix}_HIDE_DATE
// suppresses the timestamp on non-terminal output, and {prefix}_PALETTE
// selects a named ansi palette.
//
//	DEBUG="app:*,-app:secret" DEBUG_COLORS=1 ./server
func FromEnv(opts ...EnvOption) Sink {
	cfg := envConfig{prefix: "DEBUG"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	writer := cfg.writer
	if writer == nil {
		writer = os.Stderr
	}

	spec, hasSpec := os.LookupEnv(cfg.prefix)
	if !hasSpec && cfg.hasSpec {
		spec, hasSpec = cfg.spec, true
	}
	if hasSpec {
		Enable(spec)
	}

	var sinkOpts ConsoleOptions
	if value, ok := lookupEnv(cfg.prefix, "COLORS"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			if parsed {
				sinkOpts.ForceColor = true
			} else {
				sinkOpts.NoColor = true
			}
		}
	}
	if value, ok := lookupEnv(cfg.prefix, "HIDE_DATE"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			sinkOpts.HideDate = parsed
		}
	}
	if value, ok := lookupEnv(cfg.prefix, "PALETTE"); ok {
		sinkOpts.Palette = ansi.PaletteByName(value)
	}

	sink := NewConsoleSink(writer, sinkOpts)
	SetSink(sink)
	return sink
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + "_" + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}
