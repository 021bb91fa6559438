package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "turing.yaml"

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// ErrUnknownStore is returned by Validate for an unsupported store backend.
var ErrUnknownStore = errors.New("unknown store backend")

// Redis holds the connection settings of the redis store.
type Redis struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

// HTTP holds the settings of the HTTP server.
type HTTP struct {
	Port int `yaml:"port" json:"port"`
}

// Config represents the structure of turing.yaml.
type Config struct {
	Start       string `yaml:"start" json:"start"`
	EmptySymbol string `yaml:"empty_symbol" json:"empty_symbol"`
	MaxSteps    int    `yaml:"max_steps" json:"max_steps"`
	GrowChunk   int    `yaml:"grow_chunk" json:"grow_chunk"`

	Store     string `yaml:"store" json:"store"`
	StorePath string `yaml:"store_path" json:"store_path"`
	Redis     Redis  `yaml:"redis" json:"redis"`
	HTTP      HTTP   `yaml:"http" json:"http"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Start:       domain.DefaultStart,
		EmptySymbol: domain.DefaultEmptySymbol,
		MaxSteps:    1_000_000,
		GrowChunk:   1,
		Store:       StoreMemory,
		StorePath:   ".turing/programs",
		Redis: Redis{
			Addr:   "localhost:6379",
			Prefix: "turing:program:",
		},
		HTTP: HTTP{Port: 8080},
	}
}

// Load reads a configuration file (YAML or JSON) over the defaults.
// A missing file is not an error when path is DefaultPath or empty.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != "" && path != DefaultPath
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.Store)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.GrowChunk < 0 {
		return fmt.Errorf("grow_chunk must not be negative, got %d", c.GrowChunk)
	}
	return nil
}

// Params returns the machine defaults of the configuration.
func (c Config) Params() domain.MachineParams {
	return domain.MachineParams{Start: c.Start, EmptySymbol: c.EmptySymbol}
}
