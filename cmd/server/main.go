package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server"
	"github.com/dmitrijs2005/staffql/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg, logging.New(cfg.Env, os.Stdout))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
