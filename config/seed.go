package config

import (
	"context"
	"time"

	"frushh/repositories"

	"github.com/go-logr/logr"
)

// SeedCatalog loads AppConfig.SeedFile into the database when it is set.
func SeedCatalog(logger logr.Logger) {
	if AppConfig.SeedFile == "" || DB == nil {
		return
	}

	data, err := repositories.LoadSeedFile(AppConfig.SeedFile)
	if err != nil {
		logger.Error(err, "skipping seed", "file", AppConfig.SeedFile)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repositories.Seed(ctx, DB, data); err != nil {
		logger.Error(err, "seeding failed")
		return
	}
	logger.Info("seeded catalog", "products", len(data.Products), "addons", len(data.Addons), "coupons", len(data.Coupons))
}
