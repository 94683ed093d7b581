// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the catalog
// source and the asset integrity check can be tested with core/storage/mocks.
// Both AWS S3 and self-hosted MinIO are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks, see EnsureBucket.
//   - PutObject: publishes a catalog document.
//   - GetObject: reads the catalog document.
//   - ListObjects: lists the mesh assets referenced by the catalog.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
