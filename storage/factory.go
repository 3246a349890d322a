package storage

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// New selects a backend from STORAGE_BACKEND: "file" (default), "redis"
// or "postgres".
func New(logger *zap.Logger) (Store, error) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "file"
	}

	switch backend {
	case "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "./data"
		}
		logger.Info("storage: using file backend", zap.String("dir", dir))
		return NewFileStore(dir)

	case "redis":
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			redisURL = "redis://localhost:6379/0"
		}
		logger.Info("storage: using redis backend")
		return NewRedisStore(redisURL)

	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		logger.Info("storage: using postgres backend")
		return NewGormStore(dsn)

	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
