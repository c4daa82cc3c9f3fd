package main

import (
	"context"
	"os"

	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.IsLocal())

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := database.Seed(context.Background(), db, log); err != nil {
		log.Error("Failed to seed database", "error", err)
		os.Exit(1)
	}
}
