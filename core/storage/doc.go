// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the operations
// the registry needs: reading snapshot exports, checking that they exist, and listing
// prefixes. This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	rc, err := client.GetObject(ctx, "ships", "snapshots/latest/picturebook.json", minio.GetObjectOptions{})
package storage
