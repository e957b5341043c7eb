package blob

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"media-share-api/config"
)

// Store persists uploaded binaries in a MinIO/S3 bucket and resolves
// their public URLs. Objects are immutable once written.
type Store struct {
	logger  *zap.Logger
	client  *minio.Client
	bucket  string
	baseURL string
}

func New(ctx context.Context, logger *zap.Logger, cfg config.S3, baseURL string) (*Store, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.BucketUploads == "" {
		return nil, fmt.Errorf("incomplete S3 config")
	}

	endpoint, secure, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	// Sanity check: bucket must exist.
	exists, err := client.BucketExists(ctx, cfg.BucketUploads)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket does not exist: %s", cfg.BucketUploads)
	}

	logger.Info("blob store connected successfully", zap.String("bucket", cfg.BucketUploads))

	return &Store{
		logger:  logger,
		client:  client,
		bucket:  cfg.BucketUploads,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put streams r into the bucket under key and returns the public URL.
// It returns only after the object store acknowledged the whole write.
func (s *Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		r,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", err
	}

	return s.PublicURL(key), nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *Store) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
}

func (s *Store) GetBucket() string { return s.bucket }

// normalizeEndpoint accepts "minio:9000" as well as
// "http://minio:9000" / "https://minio:9000".
func normalizeEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		secure = (u.Scheme == "https")
		return u.Host, secure, nil
	}

	// No scheme provided, treat as host:port (insecure by default for local MinIO).
	return raw, false, nil
}
