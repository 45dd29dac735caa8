// Package media presigns download links for speech recordings kept in an
// S3-compatible object store.
package media

import (
	"context"
	"errors"
	"net/url"

	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/logger"
)

//go:generate mockgen -source=media.go -destination=../mock/media_mock.go -package=mock

var (
	ErrMediaDisabled   = errors.New("media storage is not configured")
	ErrEmptyKey        = errors.New("speech has no media")
	ErrInvalidEndpoint = errors.New("invalid media endpoint")
	ErrBucketMissing   = errors.New("media bucket does not exist")
	ErrPresigning      = errors.New("error presigning media url")
)

// Presigner issues temporary URLs for media objects.
type Presigner interface {
	// PresignedURL returns a GET URL for key, valid for the configured TTL.
	PresignedURL(ctx context.Context, key string) (*url.URL, error)
	// Check verifies that the bucket is reachable.
	Check(ctx context.Context) error
	Enabled() bool
}

// New returns a MinIO-backed [Presigner], or a disabled one when cfg is not
// fully configured.
func New(cfg config.Media, log *logger.Logger) (Presigner, error) {
	if !cfg.Configured() {
		log.Info().Msg("media storage disabled")
		return DisabledPresigner{}, nil
	}

	return NewMinioPresigner(cfg, log)
}

// DisabledPresigner is used when no object store is configured.
type DisabledPresigner struct{}

func (DisabledPresigner) PresignedURL(context.Context, string) (*url.URL, error) {
	return nil, ErrMediaDisabled
}

func (DisabledPresigner) Check(context.Context) error { return ErrMediaDisabled }

func (DisabledPresigner) Enabled() bool { return false }
