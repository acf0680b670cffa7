// Package bootstrap wires up the runtime dependencies shared by commands.
package bootstrap

import (
	"fmt"
	"strings"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData && !strings.EqualFold(cfg.Env, "production") {
		if err := seed.DemoData(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
