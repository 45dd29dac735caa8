package media

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	defaultPresignTTL = 15 * time.Minute
	// Fixing the region skips the bucket location lookup when presigning.
	defaultRegion = "us-east-1"
)

type minioPresigner struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
	logger *logger.Logger
}

func NewMinioPresigner(cfg config.Media, log *logger.Logger) (Presigner, error) {
	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: defaultRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}

	log.Info().
		Str("endpoint", endpoint).
		Str("bucket", cfg.Bucket).
		Dur("presign_ttl", ttl).
		Msg("media storage enabled")

	return &minioPresigner{
		client: client,
		bucket: cfg.Bucket,
		ttl:    ttl,
		logger: log,
	}, nil
}

func (m *minioPresigner) PresignedURL(ctx context.Context, key string) (*url.URL, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return nil, ErrEmptyKey
	}

	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, m.ttl, url.Values{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("failed to presign media url")
		return nil, fmt.Errorf("%w: %w", ErrPresigning, err)
	}

	return u, nil
}

func (m *minioPresigner) Check(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("minio connection failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketMissing, m.bucket)
	}
	return nil
}

func (m *minioPresigner) Enabled() bool { return true }

// normaliseEndpoint accepts "minio:9000" as well as "http://minio:9000" or
// "https://minio:9000". A bare host:port is treated as plain HTTP.
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("%w: empty endpoint", ErrInvalidEndpoint)
	}

	if !strings.Contains(raw, "://") {
		return raw, false, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	if u.Path != "" && u.Path != "/" {
		return "", false, fmt.Errorf("%w: endpoint must not contain a path", ErrInvalidEndpoint)
	}

	return u.Host, u.Scheme == "https", nil
}
