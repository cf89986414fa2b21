package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort     = 5000
	defaultDataFile = "rankings_data.json"
)

// Config holds the runtime settings of the server.
type Config struct {
	Port     int
	DataFile string
	// Locking makes every increment atomic. Without it, concurrent updates
	// for the same player may be lost.
	Locking bool
}

// LoadConfig resolves defaults, then environment, then args.
func LoadConfig(args []string) (Config, error) {
	cfg := Config{
		Port:     defaultPort,
		DataFile: defaultDataFile,
		Locking:  true,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("RANKINGS_LOCKING"); v != "" {
		locking, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid RANKINGS_LOCKING %q: %w", v, err)
		}
		cfg.Locking = locking
	}

	fs := flag.NewFlagSet("doce-api", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	fs.StringVar(&cfg.DataFile, "data", cfg.DataFile, "data storage file")
	fs.BoolVar(&cfg.Locking, "lock", cfg.Locking, "serialize rankings updates")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("port out of range: %d", cfg.Port)
	}
	if cfg.DataFile == "" {
		return cfg, errors.New("data file must not be empty")
	}
	return cfg, nil
}
