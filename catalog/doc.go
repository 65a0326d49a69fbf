// Package catalog stores named collections of vectors in a blobstore.
//
// Each collection is written as one archive blob named "<name>.hvec",
// optionally under a prefix:
//
//	store := blobstore.NewLocalStore("./data")
//	cat := catalog.New(store,
//	    catalog.WithCompression(archive.CompressionZSTD),
//	    catalog.WithLogger(catalog.NewTextLogger(slog.LevelInfo)),
//	)
//
//	if err := cat.Save(ctx, "points", vectors); err != nil {
//	    return err
//	}
//	a, err := cat.Load(ctx, "points")
//
// SaveAll and LoadAll fan out over an errgroup bounded by WithConcurrency.
// WithWriteLimit throttles archive writes and WithMemoryLimit bounds the
// archive bytes held in flight.
package catalog
