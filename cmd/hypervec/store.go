package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/hypervec/blobstore"
	"github.com/hupe1980/hypervec/blobstore/minio"
	"github.com/hupe1980/hypervec/blobstore/s3"
)

// openStore resolves the --store location to a BlobStore.
func openStore(ctx context.Context, cfg Config) (blobstore.BlobStore, error) {
	loc := cfg.Store
	if !strings.Contains(loc, "://") {
		return blobstore.NewLocalStore(loc), nil
	}

	u, err := url.Parse(loc)
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", loc, err)
	}

	switch u.Scheme {
	case "file":
		return blobstore.NewLocalStore(u.Path), nil
	case "mem":
		return blobstore.NewMemoryStore(), nil
	case "s3":
		var opts []s3.Option
		if p := strings.TrimPrefix(u.Path, "/"); p != "" {
			opts = append(opts, s3.WithPrefix(p))
		}
		if cfg.S3Region != "" {
			opts = append(opts, s3.WithRegion(cfg.S3Region))
		}
		if cfg.S3Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(cfg.S3Endpoint))
		}
		return s3.New(ctx, u.Host, opts...)
	case "minio":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if bucket == "" {
			return nil, fmt.Errorf("store %q: missing bucket", loc)
		}
		client, err := miniogo.New(u.Host, &miniogo.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
			Secure: cfg.MinioSecure,
		})
		if err != nil {
			return nil, fmt.Errorf("store %q: %w", loc, err)
		}
		return minio.NewStore(client, bucket, prefix), nil
	default:
		return nil, fmt.Errorf("store %q: unsupported scheme %q", loc, u.Scheme)
	}
}
