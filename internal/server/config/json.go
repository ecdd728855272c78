package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/catcurious/catcurious/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, non-zero fields are copied
// into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string `json:"endpoint_addr_http"`
	DatabaseDSN           string `json:"database_dsn"`
	CatAPIBaseURL         string `json:"cat_api_base_url"`
	CatAPIKey             string `json:"cat_api_key"`
	CatFactsBaseURL       string `json:"cat_facts_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags, if any. Only fields present in the
// file override the current values. If the file cannot be read or contains
// invalid JSON, the function panics: a requested but broken config file is
// a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.CatAPIBaseURL != "" {
		config.CatAPIBaseURL = c.CatAPIBaseURL
	}
	if c.CatAPIKey != "" {
		config.CatAPIKey = c.CatAPIKey
	}
	if c.CatFactsBaseURL != "" {
		config.CatFactsBaseURL = c.CatFactsBaseURL
	}
	if c.RequestTimeoutSeconds > 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
}
