package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString := func(key string, target *string) {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}

	setString("STALLKEEPER_RECORD_STORE_DSN", &cfg.RecordStoreDSN)
	setString("STALLKEEPER_LOCAL_DB", &cfg.LocalDBPath)
	setString("STALLKEEPER_S3_REGION", &cfg.ObjectStoreRegion)
	setString("STALLKEEPER_S3_ENDPOINT", &cfg.ObjectStoreEndpoint)
	setString("STALLKEEPER_S3_ACCESS_KEY", &cfg.ObjectStoreAccessKey)
	setString("STALLKEEPER_S3_SECRET_KEY", &cfg.ObjectStoreSecretKey)
	setString("STALLKEEPER_S3_BUCKET", &cfg.ObjectStoreBucket)

	if v, ok := os.LookupEnv("STALLKEEPER_REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
