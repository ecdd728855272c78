package config

import (
	"flag"
	"os"
	"time"

	"github.com/catcurious/catcurious/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-b string   TheCatAPI base URL
//	-k string   TheCatAPI key
//	-f string   Cat Facts API base URL
//	-t int      outbound request timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-b", "-k", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.CatAPIBaseURL, "b", config.CatAPIBaseURL, "TheCatAPI base URL")
	fs.StringVar(&config.CatAPIKey, "k", config.CatAPIKey, "TheCatAPI key")
	fs.StringVar(&config.CatFactsBaseURL, "f", config.CatFactsBaseURL, "Cat Facts API base URL")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "outbound request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
