package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hypervec"
	"github.com/hupe1980/hypervec/archive"
	"github.com/hupe1980/hypervec/blobstore"
	"github.com/hupe1980/hypervec/codec"
	"github.com/hupe1980/hypervec/resource"
)

// Extension is appended to collection names to form blob names.
const Extension = ".hvec"

var (
	// ErrInvalidName is returned for empty names and names containing a path
	// separator or starting with a dot.
	ErrInvalidName = errors.New("catalog: invalid collection name")
	// ErrNotFound is returned when a collection does not exist.
	ErrNotFound = errors.New("catalog: collection not found")
)

// Catalog persists named collections of vectors as archives in a BlobStore.
// It is safe for concurrent use.
type Catalog struct {
	store blobstore.BlobStore
	opts  options
	rc    *resource.Controller
}

// New creates a Catalog on top of store.
func New(store blobstore.BlobStore, optFns ...Option) *Catalog {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &Catalog{
		store: store,
		opts:  o,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes:   o.memoryLimit,
			IOLimitBytesPerSec: o.writeLimit,
		}),
	}
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (c *Catalog) blobName(name string) string {
	if c.opts.prefix == "" {
		return name + Extension
	}
	return path.Join(c.opts.prefix, name+Extension)
}

func (c *Catalog) listPrefix() string {
	if c.opts.prefix == "" {
		return ""
	}
	return strings.TrimSuffix(c.opts.prefix, "/") + "/"
}

// Save encodes vectors as an archive and stores it under name, replacing
// any existing collection with the same name.
func (c *Catalog) Save(ctx context.Context, name string, vectors []hypervec.Vector) error {
	start := time.Now()
	size, err := c.save(ctx, name, vectors)

	c.opts.metricsCollector.RecordSave(len(vectors), size, time.Since(start), err)
	c.opts.logger.LogSave(ctx, name, len(vectors), size, err)
	return err
}

func (c *Catalog) save(ctx context.Context, name string, vectors []hypervec.Vector) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}

	// The reservation is held from the first encoded byte until Put returns.
	reserved := encodeEstimate(vectors, c.opts.codec)
	if err := c.rc.AcquireMemory(ctx, reserved); err != nil {
		return 0, err
	}
	defer c.rc.ReleaseMemory(reserved)

	var buf bytes.Buffer
	w := archive.NewWriter(resource.NewRateLimitedWriter(ctx, &buf, c.rc),
		archive.WithCompression(c.opts.compression),
		archive.WithCodec(c.opts.codec),
	)
	for _, v := range vectors {
		if err := w.Append(v); err != nil {
			return 0, err
		}
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	if err := c.store.Put(ctx, c.blobName(name), buf.Bytes()); err != nil {
		return 0, fmt.Errorf("catalog: put %q: %w", name, err)
	}
	return buf.Len(), nil
}

// archiveOverhead bounds the archive header, block header, zero mask and
// trailer for small collections.
const archiveOverhead = 512

// encodeEstimate bounds the bytes held while vectors are encoded: the record
// body plus the framed copy written on Close. Binary records take 8 bytes
// per component; text codecs are bounded by the longest float rendering.
func encodeEstimate(vectors []hypervec.Vector, cd codec.Codec) int64 {
	perComponent, perVector := int64(8), int64(4+1)
	if cd.Name() != (codec.Binary{}).Name() {
		perComponent, perVector = 32, 4+2
	}
	var body int64
	for _, v := range vectors {
		body += perVector + perComponent*int64(v.Len())
	}
	return 2*body + archiveOverhead
}

// Load reads and decodes the named collection.
func (c *Catalog) Load(ctx context.Context, name string) (*archive.Archive, error) {
	start := time.Now()
	a, size, err := c.load(ctx, name)

	var n int
	if a != nil {
		n = a.Len()
	}
	c.opts.metricsCollector.RecordLoad(n, size, time.Since(start), err)
	c.opts.logger.LogLoad(ctx, name, n, err)
	return a, err
}

func (c *Catalog) load(ctx context.Context, name string) (*archive.Archive, int, error) {
	if err := validateName(name); err != nil {
		return nil, 0, err
	}

	blob, err := c.store.Open(ctx, c.blobName(name))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, 0, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, 0, fmt.Errorf("catalog: open %q: %w", name, err)
	}
	defer func() { _ = blob.Close() }()

	size := blob.Size()
	if err := c.rc.AcquireMemory(ctx, size); err != nil {
		return nil, 0, err
	}
	defer c.rc.ReleaseMemory(size)

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog: read %q: %w", name, err)
	}

	a, err := archive.Decode(data)
	if err != nil {
		return nil, len(data), fmt.Errorf("catalog: decode %q: %w", name, err)
	}
	return a, len(data), nil
}

// Delete removes the named collection.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := c.delete(ctx, name)

	c.opts.metricsCollector.RecordDelete(time.Since(start), err)
	c.opts.logger.LogDelete(ctx, name, err)
	return err
}

// delete checks for the collection before removing it. The two steps are
// not atomic, so two concurrent Deletes of one name may both succeed.
func (c *Catalog) delete(ctx context.Context, name string) error {
	ok, err := c.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err := c.store.Delete(ctx, c.blobName(name)); err != nil {
		return fmt.Errorf("catalog: delete %q: %w", name, err)
	}
	return nil
}

// Exists reports whether the named collection exists.
func (c *Catalog) Exists(ctx context.Context, name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	blob, err := c.store.Open(ctx, c.blobName(name))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	_ = blob.Close()
	return true, nil
}

// Names returns the sorted names of all stored collections.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	prefix := c.listPrefix()
	blobs, err := c.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}

	names := make([]string, 0, len(blobs))
	for _, b := range blobs {
		rel := strings.TrimPrefix(b, prefix)
		name, ok := strings.CutSuffix(rel, Extension)
		if !ok || validateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// SaveAll saves every collection in the map concurrently. It stops at the
// first error and returns it.
func (c *Catalog) SaveAll(ctx context.Context, collections map[string][]hypervec.Vector) error {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	slices.Sort(names)

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.concurrency)
	for _, name := range names {
		g.Go(func() error {
			if err := c.Save(gctx, name, collections[name]); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}
	err := g.Wait()

	c.opts.logger.LogBatch(ctx, "save all", len(names), int(failed.Load()))
	return err
}

// LoadAll loads the named collections concurrently. It stops at the first
// error and returns it.
func (c *Catalog) LoadAll(ctx context.Context, names []string) (map[string]*archive.Archive, error) {
	var (
		mu     sync.Mutex
		result = make(map[string]*archive.Archive, len(names))
		failed atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.concurrency)
	for _, name := range names {
		g.Go(func() error {
			a, err := c.Load(gctx, name)
			if err != nil {
				failed.Add(1)
				return err
			}
			mu.Lock()
			result[name] = a
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	c.opts.logger.LogBatch(ctx, "load all", len(names), int(failed.Load()))
	if err != nil {
		return nil, err
	}
	return result, nil
}
