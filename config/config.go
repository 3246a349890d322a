package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/oguzhnsglm/diyet-sub000/storage"
)

var (
	Store  storage.Store
	Logger *zap.Logger
)

// Init loads the environment, builds the process logger and connects the
// storage backend. Called once from main.
func Init() {
	// .env is optional; in containers everything comes from real env vars.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Logger = logger

	store, err := storage.New(Logger)
	if err != nil {
		Logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	Store = store
}

// Port returns the HTTP listen port, default 8080.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
