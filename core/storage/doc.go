// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface used by the
// seeder: checking bucket existence, downloading seed sources and uploading
// run reports. Both AWS S3 and self-hosted MinIO are supported.
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.CheckBucket(ctx, client, cfg.Storage.Bucket)
//	err = storage.PutBytes(ctx, client, cfg.Storage.Bucket, "reports/run.json", data, "application/json")
package storage
