package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/urbancare/urbancare-api/internal/bootstrap"
	"github.com/urbancare/urbancare-api/internal/config"
	"github.com/urbancare/urbancare-api/internal/server"
	"github.com/urbancare/urbancare-api/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.SeedDemoData {
		if err := bootstrap.SeedDemoAccounts(db); err != nil {
			log.Fatalf("failed to seed demo accounts: %v", err)
		}
	}

	redisClient := connectRedis(cfg)

	srv := server.NewServer(cfg, db, redisClient)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// connectRedis is best-effort: without Redis the login rate limiter and the
// stats cache are disabled, but the API stays functional.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		log.Println("REDIS_URL not set, running without redis")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, running without redis: %v", err)
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable, running without redis: %v", err)
		return nil
	}

	log.Println("connected to redis")
	return client
}
