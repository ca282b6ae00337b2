package knowledgesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/legal-assistant/internal/domain/knowledge"
	"github.com/yanqian/legal-assistant/internal/infra/config"
)

// maxObjectSize bounds how much of the knowledge object is read.
const maxObjectSize = 8 << 20

// R2Source reads the knowledge document from Cloudflare R2 (or any
// S3-compatible store) via the S3 API.
type R2Source struct {
	client *minio.Client
	bucket string
	key    string
	logger *slog.Logger
}

// NewR2Source constructs the source. No network I/O happens until Read.
func NewR2Source(cfg config.R2Config, logger *slog.Logger) (*R2Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(cfg.Bucket) == "" || strings.TrimSpace(cfg.Key) == "" {
		return nil, errors.New("r2 bucket and key are required")
	}
	cleanEndpoint := sanitizeEndpoint(cfg.Endpoint)
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(cfg.Endpoint)), "http://")
	client, err := minio.New(cleanEndpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init r2 client: %w", err)
	}
	return &R2Source{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.Key,
		logger: logger.With("component", "knowledgesource.r2"),
	}, nil
}

// Name returns the object location.
func (s *R2Source) Name() string {
	return "r2://" + s.bucket + "/" + s.key
}

// Read downloads the object.
func (s *R2Source) Read(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get knowledge object: %w", err)
	}
	defer obj.Close()
	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat knowledge object: %w", err)
	}
	if info.Size > maxObjectSize {
		return nil, fmt.Errorf("knowledge object too large: %d bytes", info.Size)
	}
	data, err := io.ReadAll(io.LimitReader(obj, maxObjectSize))
	if err != nil {
		return nil, fmt.Errorf("read knowledge object: %w", err)
	}
	s.logger.Info("knowledge object fetched", "bucket", s.bucket, "key", s.key, "bytes", len(data), "etag", info.ETag)
	return data, nil
}

var _ knowledge.Source = (*R2Source)(nil)

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}
