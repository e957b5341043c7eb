package ports

import (
	"context"
	"io"
)

// BlobStore is the durable storage behind the upload pipeline.
// Put must not return before the write is durable; the returned
// string is the public URL of the stored object.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
	GetBucket() string
}
