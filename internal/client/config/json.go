package config

import (
	"encoding/json"
	"os"

	"github.com/mepo/stallkeeper/internal/flagx"
	"github.com/mepo/stallkeeper/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. timex.Duration
// lets intervals be spelled either as "10s" or as integer nanoseconds.
type jsonConfig struct {
	RecordStoreDSN       *string         `json:"record_store_dsn"`
	LocalDBPath          *string         `json:"local_db_path"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	ObjectStoreRegion    *string         `json:"object_store_region"`
	ObjectStoreEndpoint  *string         `json:"object_store_endpoint"`
	ObjectStoreAccessKey *string         `json:"object_store_access_key"`
	ObjectStoreSecretKey *string         `json:"object_store_secret_key"`
	ObjectStoreBucket    *string         `json:"object_store_bucket"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// Absent file path means no JSON layer. Read or decode failures panic; the
// program cannot run on a config it cannot understand.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.RecordStoreDSN != nil {
		cfg.RecordStoreDSN = *jc.RecordStoreDSN
	}
	if jc.LocalDBPath != nil {
		cfg.LocalDBPath = *jc.LocalDBPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ObjectStoreRegion != nil {
		cfg.ObjectStoreRegion = *jc.ObjectStoreRegion
	}
	if jc.ObjectStoreEndpoint != nil {
		cfg.ObjectStoreEndpoint = *jc.ObjectStoreEndpoint
	}
	if jc.ObjectStoreAccessKey != nil {
		cfg.ObjectStoreAccessKey = *jc.ObjectStoreAccessKey
	}
	if jc.ObjectStoreSecretKey != nil {
		cfg.ObjectStoreSecretKey = *jc.ObjectStoreSecretKey
	}
	if jc.ObjectStoreBucket != nil {
		cfg.ObjectStoreBucket = *jc.ObjectStoreBucket
	}
}
