// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so exported datasets can be written to AWS S3
// or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface exposes only the calls the exporter needs, which keeps
// the testify mock in core/storage/mocks small.
//
// # Helpers
//
//   - EnsureBucket: creates the export bucket on first use.
//   - ListKeys: flattens a recursive listing into object keys.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
