package main

import (
	"flag"
	"os"
	"strconv"
)

// cliConfig represents the command-line parameters for the generator.
// Defaults come from STARLANE_* environment variables where present, so
// precedence is flags over environment over built-ins.
type cliConfig struct {
	ConfigPath  string
	OutDir      string
	Seed        int64
	Systems     int
	Concurrency int
	LogLevel    string
	LogJSON     bool
}

// newCLIConfig returns a cliConfig populated from the environment with
// sensible fallbacks.
func newCLIConfig() *cliConfig {
	seed, err := strconv.ParseInt(getEnv("STARLANE_SEED", "42"), 10, 64)
	if err != nil {
		seed = 42
	}
	return &cliConfig{
		ConfigPath:  getEnv("STARLANE_CONFIG", ""),
		OutDir:      getEnv("STARLANE_OUT", "galaxy-out"),
		Seed:        seed,
		Systems:     0,
		Concurrency: 0,
		LogLevel:    getEnv("STARLANE_LOG_LEVEL", "info"),
		LogJSON:     getEnv("STARLANE_LOG_JSON", "") == "true",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *cliConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML galaxy config")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "export directory")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "galaxy seed")
	fs.IntVar(&c.Systems, "systems", c.Systems, "override the configured system count (0 keeps it)")
	fs.IntVar(&c.Concurrency, "concurrency", c.Concurrency, "parallel export writers (0 means one per artifact)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "emit JSON logs")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
