package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration. It is loaded once at process
// start and treated as read-only afterwards; in particular the JWT
// secret is never rotated at runtime.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration from environment variables. Database
// coordinates are required; the rest fall back to defaults. Note the
// JWT_SECRET fallback: it exists so legacy deployments keep working,
// but running with it makes tokens forgeable.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBName:       must("DB_NAME"),
		JWTSecret:    getenv("JWT_SECRET", "default_secret"),
		AccessTTLMin: getint("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:   getint("BCRYPT_COST", 10),
	}
}

// must retrieves a required environment variable and exits the process
// when it is unset or empty.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
