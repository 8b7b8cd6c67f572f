package config

import (
	"flag"
	"os"
	"time"

	"github.com/mepo/stallkeeper/internal/flagx"
)

// parseFlags overlays Config with command-line flags.
//
// Supported flags:
//
//	-r string   record store DSN
//	-l string   local database path
//	-t int      request timeout in seconds
//	-b string   object store bucket
//
// Arguments are filtered to only the flags handled here so config flags from
// other layers (-c/-config) pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-l", "-t", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.RecordStoreDSN, "r", cfg.RecordStoreDSN, "record store DSN")
	fs.StringVar(&cfg.LocalDBPath, "l", cfg.LocalDBPath, "local database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.ObjectStoreBucket, "b", cfg.ObjectStoreBucket, "object store bucket")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
