package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"qibla.arahkiblat.org/internal/appconf"
)

// parseConfig loads the layered configuration and applies any command line
// flags that were set explicitly. Flags win over file and environment values.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	fs := flag.NewFlagSet("qibla-api", flag.ContinueOnError)
	fs.SetOutput(output)

	configPath := fs.String("config", "", "Path to a config.yaml file")
	port := fs.Int("port", 4000, "API server port")
	env := fs.String("env", "development", "Environment (development|test|production)")
	apiKeys := fs.String("api-keys", "test", "Comma Separated API Keys (test, etc)")
	rateLimit := fs.Int("rate-limit", 100, "Requests per second allowed for each API key")
	logLevel := fs.String("log-level", "info", "Log level (debug|info|warn|error)")
	logFormat := fs.String("log-format", "json", "Log format (json|text)")
	sessionTTL := fs.Duration("session-ttl", 30*time.Minute, "Idle lifetime of an orientation session")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	var (
		cfg appconf.Config
		err error
	)
	if *configPath != "" {
		cfg, err = appconf.LoadFile(*configPath)
	} else {
		cfg, err = appconf.Load()
	}
	if err != nil {
		return appconf.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "env":
			cfg.EnvName = *env
			cfg.Env = appconf.EnvFlagToEnvironment(*env)
		case "api-keys":
			cfg.ApiKeys = appconf.SplitAPIKeys(*apiKeys)
		case "rate-limit":
			cfg.RateLimit = *rateLimit
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "session-ttl":
			cfg.SessionTTL = *sessionTTL
		}
	})

	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
