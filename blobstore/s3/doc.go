// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("vectors/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	cat := catalog.New(store)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads for large archives
//   - CRC32C upload checksums
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
