package main

import (
	"context"
	"os"

	"github.com/baustelle-app/lager/migrations/inventory"
	"github.com/baustelle-app/lager/pkg/config"
	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg)
	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, inventory.FS, log); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}
}
