package resource

import (
	"context"
	"io"
)

// RateLimitedWriter charges every write against a Controller's IO budget
// before passing it on. The catalog encodes archives through it so that
// WithWriteLimit paces Save.
type RateLimitedWriter struct {
	ctx context.Context
	dst io.Writer
	rc  *Controller
}

// NewRateLimitedWriter returns a writer that waits on rc before each write
// to dst. Waiting stops with ctx's error when ctx is done. A nil rc writes
// without waiting.
func NewRateLimitedWriter(ctx context.Context, dst io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{ctx: ctx, dst: dst, rc: rc}
}

// Write waits for len(p) bytes of budget, then writes p.
func (w *RateLimitedWriter) Write(p []byte) (int, error) {
	if err := w.rc.AcquireIO(w.ctx, len(p)); err != nil {
		return 0, err
	}
	return w.dst.Write(p)
}
