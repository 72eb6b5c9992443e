package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port        string
	DataDir     string // JSON dataset directory
	DBPath      string // pre-imported sqlite dataset; takes precedence when set
	JWTSecret   string
	RequireAuth bool
	RateLimit   int // requests per minute per client, 0 disables
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	rateLimit := 0
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rateLimit = n
		}
	}

	return &Config{
		Port:        port,
		DataDir:     dataDir,
		DBPath:      os.Getenv("DB_PATH"),
		JWTSecret:   jwtSecret,
		RequireAuth: os.Getenv("REQUIRE_AUTH") == "true",
		RateLimit:   rateLimit,
	}
}
