// Package config loads runtime settings for the stallkeeper client.
//
// Sources are applied in order, later ones winning:
// defaults, environment (optionally via a .env file), JSON file (-c/-config),
// command-line flags.
package config

import "time"

// Config holds the client's runtime settings.
//
// Fields:
//   - RecordStoreDSN: PostgreSQL DSN of the remote record store (pgx).
//   - LocalDBPath: path of the on-device SQLite database.
//   - RequestTimeout: per-operation deadline for store calls.
//   - ObjectStore*: S3-compatible endpoint document images are submitted to.
type Config struct {
	RecordStoreDSN string
	LocalDBPath    string
	RequestTimeout time.Duration

	ObjectStoreRegion    string
	ObjectStoreEndpoint  string
	ObjectStoreAccessKey string
	ObjectStoreSecretKey string
	ObjectStoreBucket    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RecordStoreDSN = "postgres://localhost:5432/stallmarket"
	c.LocalDBPath = "stallkeeper.db"
	c.RequestTimeout = 10 * time.Second
	c.ObjectStoreRegion = "ap-southeast-1"
	c.ObjectStoreBucket = "stall-documents"
}

// LoadConfig builds the runtime Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
