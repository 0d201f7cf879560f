package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Backend selects the snapshot storage medium.
const (
	BackendFile    = "file"
	BackendMemory  = "memory"
	BackendMongo   = "mongo"
	BackendSpanner = "spanner"
)

// Config holds process configuration, read from the environment with an
// optional .env overlay for local development.
type Config struct {
	AppEnv   string
	LogLevel string

	CartID string

	StorageBackend string
	SnapshotPath   string
	MongoURI       string
	MongoDB        string
	SpannerDB      string
}

// Load reads configuration. A .env file in the working directory is
// applied first when present; real environment variables win over it.
func Load() Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("warning: failed to load .env file:", err)
		}
	}

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CartID:         getEnv("CART_ID", ""),
		StorageBackend: getEnv("CART_STORAGE", BackendFile),
		SnapshotPath:   getEnv("CART_SNAPSHOT_PATH", "cart.json"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "pcshop"),
		SpannerDB:      getEnv("SPANNER_DB", ""),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
