package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ship-registry/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned by a Source for a missing object.
var ErrNotFound = errors.New("snapshot object not found")

// Source opens snapshot objects by path.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Name identifies the source in cache keys and logs.
	Name() string
}

// BucketSource reads snapshot objects from object storage.
type BucketSource struct {
	client storage.Client
	bucket string
}

// NewBucketSource creates a source reading from bucket.
func NewBucketSource(client storage.Client, bucket string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket}
}

// Name implements Source.
func (s *BucketSource) Name() string {
	return "bucket:" + s.bucket
}

// Open implements Source. The object is stat'ed first since GetObject only
// reports a missing key on the first read.
func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, s.bucket, name)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return obj, nil
}

// DirSource reads snapshot objects from a local directory.
type DirSource struct {
	dir string
}

// NewDirSource creates a source reading below dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Name implements Source.
func (s *DirSource) Name() string {
	return "dir:" + s.dir
}

// Open implements Source.
func (s *DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.FromSlash(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}
