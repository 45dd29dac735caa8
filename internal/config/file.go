package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
// Durations accept both Go duration strings and integer nanoseconds.
type fileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Database struct {
		URL             string `json:"url" yaml:"url"`
		TimeoutMillis   uint   `json:"timeout_ms" yaml:"timeout_ms"`
		MaxOpenConns    int    `json:"max_open_conns" yaml:"max_open_conns"`
		MaxIdleConns    int    `json:"max_idle_conns" yaml:"max_idle_conns"`
		ConnectAttempts uint64 `json:"connect_attempts" yaml:"connect_attempts"`
	} `json:"database" yaml:"database"`

	Keycloak struct {
		CertsURL         string   `json:"certs_url" yaml:"certs_url"`
		Audience         string   `json:"audience" yaml:"audience"`
		Issuer           string   `json:"issuer" yaml:"issuer"`
		KeysTTL          Duration `json:"keys_ttl" yaml:"keys_ttl"`
		PermissionsClaim string   `json:"permissions_claim" yaml:"permissions_claim"`
		HTTPTimeout      Duration `json:"http_timeout" yaml:"http_timeout"`
	} `json:"keycloak" yaml:"keycloak"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		GRPCAddress     string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Cache struct {
		Enabled  *bool    `json:"enabled" yaml:"enabled"`
		Shards   int      `json:"shards" yaml:"shards"`
		MaxBytes uint64   `json:"max_bytes" yaml:"max_bytes"`
		TTL      Duration `json:"ttl" yaml:"ttl"`
	} `json:"cache" yaml:"cache"`

	Media struct {
		Endpoint   string   `json:"endpoint" yaml:"endpoint"`
		AccessKey  string   `json:"access_key" yaml:"access_key"`
		SecretKey  string   `json:"secret_key" yaml:"secret_key"`
		Bucket     string   `json:"bucket" yaml:"bucket"`
		PresignTTL Duration `json:"presign_ttl" yaml:"presign_ttl"`
	} `json:"media" yaml:"media"`

	Workers struct {
		KeysRefreshInterval  Duration `json:"keys_refresh_interval" yaml:"keys_refresh_interval"`
		CacheJanitorInterval Duration `json:"cache_janitor_interval" yaml:"cache_janitor_interval"`
		HealthProbeInterval  Duration `json:"health_probe_interval" yaml:"health_probe_interval"`
	} `json:"workers" yaml:"workers"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile decodes a JSON or YAML config file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingConfigFile, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &fc)
	default:
		err = json.Unmarshal(raw, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingConfigFile, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: fc.App.Version,
		},
		Database: Database{
			URL:             fc.Database.URL,
			TimeoutMillis:   fc.Database.TimeoutMillis,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnectAttempts: fc.Database.ConnectAttempts,
		},
		Keycloak: Keycloak{
			CertsURL:         fc.Keycloak.CertsURL,
			Audience:         fc.Keycloak.Audience,
			Issuer:           fc.Keycloak.Issuer,
			KeysTTL:          time.Duration(fc.Keycloak.KeysTTL),
			PermissionsClaim: fc.Keycloak.PermissionsClaim,
			HTTPTimeout:      time.Duration(fc.Keycloak.HTTPTimeout),
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			GRPCAddress:     fc.Server.GRPCAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Cache: Cache{
			Enabled:  fc.Cache.Enabled,
			Shards:   fc.Cache.Shards,
			MaxBytes: fc.Cache.MaxBytes,
			TTL:      time.Duration(fc.Cache.TTL),
		},
		Media: Media{
			Endpoint:   fc.Media.Endpoint,
			AccessKey:  fc.Media.AccessKey,
			SecretKey:  fc.Media.SecretKey,
			Bucket:     fc.Media.Bucket,
			PresignTTL: time.Duration(fc.Media.PresignTTL),
		},
		Workers: Workers{
			KeysRefreshInterval:  time.Duration(fc.Workers.KeysRefreshInterval),
			CacheJanitorInterval: time.Duration(fc.Workers.CacheJanitorInterval),
			HealthProbeInterval:  time.Duration(fc.Workers.HealthProbeInterval),
		},
		Log: Log{
			Level: fc.Log.Level,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	return d.UnmarshalText([]byte(node.Value))
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
