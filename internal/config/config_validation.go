// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Every violation is reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Database.URL == "" {
		errs = append(errs, ErrMissingDatabaseURL)
	}
	if cfg.Database.TimeoutMillis == 0 || cfg.Database.ConnectAttempts == 0 {
		errs = append(errs, ErrInvalidDatabaseConfigs)
	}

	if cfg.Keycloak.CertsURL == "" {
		errs = append(errs, ErrMissingKeycloakCertsURL)
	} else if u, err := url.Parse(cfg.Keycloak.CertsURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: certs url %q", ErrInvalidKeycloakConfigs, cfg.Keycloak.CertsURL))
	}
	if cfg.Keycloak.KeysTTL <= 0 || cfg.Keycloak.Audience == "" || cfg.Keycloak.PermissionsClaim == "" {
		errs = append(errs, ErrInvalidKeycloakConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Cache.IsEnabled() && (cfg.Cache.Shards < 1 || cfg.Cache.TTL <= 0) {
		errs = append(errs, ErrInvalidCacheConfigs)
	}

	if cfg.Media.partiallyConfigured() {
		errs = append(errs, ErrInvalidMediaConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
	}

	return errors.Join(errs...)
}
