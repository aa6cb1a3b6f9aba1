// Command migrate creates or updates the database schema and exits.
package main

import (
	"go.uber.org/zap"

	"github.com/peplike/backend/internal/infrastructure/config"
	"github.com/peplike/backend/internal/infrastructure/localstore"
	"github.com/peplike/backend/internal/infrastructure/logger"
	"github.com/peplike/backend/internal/infrastructure/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	store := localstore.NewStore(db.DB)
	if err := store.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration complete",
		zap.String("driver", cfg.Database.Driver))
}
