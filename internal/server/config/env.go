package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from the process environment. A .env
// file in the working directory is loaded first if present (ok if missing
// in prod). Only variables that are actually set override earlier values.
//
// Recognized variables: ADDRESS, DATABASE_DSN, CAT_API_BASE_URL, KEY,
// CAT_FACTS_BASE_URL, REQUEST_TIMEOUT_SECONDS.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("CAT_API_BASE_URL"); v != "" {
		config.CatAPIBaseURL = v
	}
	// KEY matches the variable name TheCatAPI key has always been
	// deployed under.
	if v := os.Getenv("KEY"); v != "" {
		config.CatAPIKey = v
	}
	if v := os.Getenv("CAT_FACTS_BASE_URL"); v != "" {
		config.CatFactsBaseURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			config.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
