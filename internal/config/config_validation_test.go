package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing database url",
			mutate:  func(cfg *StructuredConfig) { cfg.Database.URL = "" },
			wantErr: ErrMissingDatabaseURL,
		},
		{
			name:    "zero database timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Database.TimeoutMillis = 0 },
			wantErr: ErrInvalidDatabaseConfigs,
		},
		{
			name:    "missing certs url",
			mutate:  func(cfg *StructuredConfig) { cfg.Keycloak.CertsURL = "" },
			wantErr: ErrMissingKeycloakCertsURL,
		},
		{
			name:    "certs url without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Keycloak.CertsURL = "keycloak/certs" },
			wantErr: ErrInvalidKeycloakConfigs,
		},
		{
			name:    "empty permissions claim",
			mutate:  func(cfg *StructuredConfig) { cfg.Keycloak.PermissionsClaim = "" },
			wantErr: ErrInvalidKeycloakConfigs,
		},
		{
			name:    "empty http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "no cache shards",
			mutate:  func(cfg *StructuredConfig) { cfg.Cache.Shards = 0 },
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name: "no cache shards but cache disabled",
			mutate: func(cfg *StructuredConfig) {
				disabled := false
				cfg.Cache.Enabled = &disabled
				cfg.Cache.Shards = 0
			},
		},
		{
			name:    "media partially configured",
			mutate:  func(cfg *StructuredConfig) { cfg.Media.Bucket = "speeches" },
			wantErr: ErrInvalidMediaConfigs,
		},
		{
			name: "media fully configured",
			mutate: func(cfg *StructuredConfig) {
				cfg.Media = Media{Endpoint: "minio:9000", AccessKey: "a", SecretKey: "s", Bucket: "b"}
			},
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "verbose" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
