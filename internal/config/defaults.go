package config

import "time"

const (
	defaultHTTPAddress      = "0.0.0.0:3000"
	defaultKeycloakAudience = "speech-analytics-front-end"
)

func defaultConfig() *StructuredConfig {
	enabled := true

	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Database: Database{
			TimeoutMillis:   100,
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnectAttempts: 5,
		},
		Keycloak: Keycloak{
			Audience:         defaultKeycloakAudience,
			KeysTTL:          time.Hour,
			PermissionsClaim: "permissions",
			HTTPTimeout:      5 * time.Second,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Cache: Cache{
			Enabled: &enabled,
			Shards:  16,
			TTL:     30 * time.Second,
		},
		Media: Media{
			PresignTTL: 15 * time.Minute,
		},
		Workers: Workers{
			HealthProbeInterval: 15 * time.Second,
		},
		Log: Log{
			Level: "debug",
		},
		EnvFilePath: ".env",
	}
}
