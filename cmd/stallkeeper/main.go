package main

import (
	"context"
	"log"
	"os"

	"github.com/mepo/stallkeeper/internal/client/cli"
	"github.com/mepo/stallkeeper/internal/client/config"
	"github.com/mepo/stallkeeper/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
