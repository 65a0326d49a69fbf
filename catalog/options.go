package catalog

import (
	"github.com/hupe1980/hypervec/archive"
	"github.com/hupe1980/hypervec/codec"
)

// DefaultConcurrency bounds the SaveAll and LoadAll fan-out.
const DefaultConcurrency = 8

type options struct {
	prefix           string
	compression      archive.Compression
	codec            codec.Codec
	logger           *Logger
	metricsCollector MetricsCollector
	writeLimit       int64
	memoryLimit      int64
	concurrency      int
}

func defaultOptions() options {
	return options{
		compression:      archive.CompressionNone,
		codec:            codec.Default,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		concurrency:      DefaultConcurrency,
	}
}

// Option configures a Catalog.
type Option func(*options)

// WithPrefix stores collections under prefix ("<prefix>/<name>.hvec").
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithCompression configures the archive body compression used by Save.
func WithCompression(c archive.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec configures the per-vector codec used by Save.
//
// If nil is passed, codec.Default is used. Load reads the codec from the
// archive header, so collections written with different codecs coexist.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
//
// Example:
//
//	logger := catalog.NewJSONLogger(slog.LevelDebug)
//	cat := catalog.New(store, catalog.WithLogger(logger))
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed,
// metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithWriteLimit throttles archive writes to bytesPerSec. Zero disables
// throttling.
func WithWriteLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.writeLimit = bytesPerSec
	}
}

// WithMemoryLimit bounds the encoded archive bytes held in flight across
// concurrent operations. Zero disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithConcurrency bounds the number of collections SaveAll and LoadAll
// process at once. Values below 1 select DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultConcurrency
		}
		o.concurrency = n
	}
}
