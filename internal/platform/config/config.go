// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env struct tags.
// Resolves the pet project root from STAR_PROJECT_ROOT or by walking up from the
// working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// maxRootWalkDepth bounds the upward search for state.json.
const maxRootWalkDepth = 5

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"38470"`
	ProjectRoot string `env:"STAR_PROJECT_ROOT"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if cfg.ProjectRoot == "" {
		cfg.ProjectRoot = discoverProjectRoot()
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	info, err := os.Stat(cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("project root %s: %w", cfg.ProjectRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project root %s is not a directory", cfg.ProjectRoot)
	}

	return nil
}

// discoverProjectRoot walks upward from the working directory looking for
// state.json. Falls back to the working directory itself when nothing is found.
func discoverProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := wd
	for i := 0; i < maxRootWalkDepth; i++ {
		if _, err := os.Stat(filepath.Join(dir, "state.json")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return wd
}

// StatePath returns the absolute path of the pet state file.
func (c *Config) StatePath() string {
	return filepath.Join(c.ProjectRoot, "state.json")
}

// LayersDir returns the directory holding layers.json and scene images.
func (c *Config) LayersDir() string {
	return filepath.Join(c.ProjectRoot, "layers")
}
