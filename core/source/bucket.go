package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"bulk-seeder/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSource reads records from objects in an S3/MinIO bucket.
// Unit paths are object keys relative to prefix.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSource creates a bucket-backed source.
func NewBucketSource(client storage.Client, bucket, prefix string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Read downloads and decodes the object at p.
func (s *BucketSource) Read(ctx context.Context, p string) (*Result, error) {
	key := strings.TrimPrefix(p, "/")
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap(key, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.wrap(key, err)
	}

	return Decode(key, raw)
}

func (s *BucketSource) wrap(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s/%s: %w", s.bucket, key, ErrNotFound)
	}
	return fmt.Errorf("failed to get object %s/%s: %w", s.bucket, key, err)
}
