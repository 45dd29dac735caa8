package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/go-jose/go-jose/v4"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

const (
	// ForcedRefreshInterval limits refreshes caused by unknown key ids.
	ForcedRefreshInterval = 10 * time.Second

	defaultKeysTTL   = time.Hour
	fetchRetries     = 2
	fetchBackoffBase = 100 * time.Millisecond
	userAgent        = "speech-analytics"
	refreshKey       = "jwks"
)

type keycloakKeyProvider struct {
	client   *utils.HTTPClient
	certsURL string
	ttl      time.Duration
	logger   *logger.Logger

	group singleflight.Group

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	fetchedAt   time.Time
	lastForced  time.Time
	now         func() time.Time
	backoffBase time.Duration
}

// NewKeycloakKeyProvider returns a [KeyProvider] reading the realm's JWKS
// document from cfg.CertsURL. Keys are fetched lazily on first use.
func NewKeycloakKeyProvider(cfg config.Keycloak, log *logger.Logger) KeyProvider {
	return newKeycloakKeyProvider(cfg, log)
}

func newKeycloakKeyProvider(cfg config.Keycloak, log *logger.Logger) *keycloakKeyProvider {
	log = log.WithComponent("keycloak")

	ttl := cfg.KeysTTL
	if ttl <= 0 {
		ttl = defaultKeysTTL
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:   cfg.HTTPTimeout,
		UserAgent: userAgent,
		Logger:    log,
	})

	return &keycloakKeyProvider{
		client:      client,
		certsURL:    cfg.CertsURL,
		ttl:         ttl,
		logger:      log,
		keys:        make(map[string]*rsa.PublicKey),
		now:         time.Now,
		backoffBase: fetchBackoffBase,
	}
}

func (p *keycloakKeyProvider) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	key, found, fresh := p.lookup(kid)
	if found && fresh {
		return key, nil
	}

	if !fresh {
		if err := p.Refresh(ctx); err != nil {
			if found {
				p.logger.Warn().Str("kid", kid).Msg("serving stale signing key")
				return key, nil
			}
			return nil, err
		}
		if key, found, _ = p.lookup(kid); found {
			return key, nil
		}
		// The set was fetched just now; it counts as the forced refresh.
		p.markForced()
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
	}

	if !p.allowForcedRefresh() {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
	}

	p.logger.Info().Str("kid", kid).Msg("unknown key id, refreshing key set")
	if err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	if key, found, _ = p.lookup(kid); found {
		return key, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
}

func (p *keycloakKeyProvider) Refresh(ctx context.Context) error {
	// The shared fetch must not die with the first caller's request.
	ctx = context.WithoutCancel(ctx)

	_, err, shared := p.group.Do(refreshKey, func() (any, error) {
		keys, err := p.fetch(ctx)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.keys = keys
		p.fetchedAt = p.now()
		p.mu.Unlock()

		p.logger.Info().Int("keys", len(keys)).Msg("signing keys refreshed")
		return nil, nil
	})
	if err != nil {
		p.logger.Err(err).Bool("shared", shared).Str("url", p.certsURL).Msg("failed to refresh signing keys")
		return err
	}

	return nil
}

func (p *keycloakKeyProvider) Status() KeySetStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	status := KeySetStatus{Keys: len(p.keys), FetchedAt: p.fetchedAt}
	if !p.fetchedAt.IsZero() {
		status.ExpiresAt = p.fetchedAt.Add(p.ttl)
	}
	return status
}

// lookup returns the cached key and whether the key set is still fresh.
func (p *keycloakKeyProvider) lookup(kid string) (*rsa.PublicKey, bool, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	fresh := !p.fetchedAt.IsZero() && p.now().Before(p.fetchedAt.Add(p.ttl))
	key, found := p.keys[kid]
	return key, found, fresh
}

func (p *keycloakKeyProvider) allowForcedRefresh() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if !p.lastForced.IsZero() && now.Sub(p.lastForced) < ForcedRefreshInterval {
		return false
	}
	p.lastForced = now
	return true
}

func (p *keycloakKeyProvider) markForced() {
	p.mu.Lock()
	p.lastForced = p.now()
	p.mu.Unlock()
}

func (p *keycloakKeyProvider) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	backoff := retry.WithMaxRetries(fetchRetries, retry.NewExponential(p.backoffBase))

	var keys map[string]*rsa.PublicKey
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := p.client.R().SetContext(ctx).Get(p.certsURL)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %w", ErrFetchingKeys, err))
		}

		if err = mapHTTPError(resp); err != nil {
			err = fmt.Errorf("%w: %w", ErrFetchingKeys, err)
			if retryableStatus(resp.StatusCode()) {
				return retry.RetryableError(err)
			}
			return err
		}

		keys, err = parseKeySet(resp.Body())
		return err
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// parseKeySet keeps the RSA keys usable for signatures. Encryption keys
// published next to them are skipped.
func parseKeySet(body []byte) (map[string]*rsa.PublicKey, error) {
	var set jose.JSONWebKeySet
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingKeySet, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, jwk := range set.Keys {
		if jwk.Use != "" && jwk.Use != "sig" {
			continue
		}
		if jwk.KeyID == "" {
			continue
		}

		rsaKey, ok := jwk.Key.(*rsa.PublicKey)
		if !ok {
			continue
		}
		keys[jwk.KeyID] = rsaKey
	}

	if len(keys) == 0 {
		return nil, ErrNoSigningKeys
	}
	return keys, nil
}
