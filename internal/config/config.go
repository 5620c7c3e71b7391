package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Andersonspita/tempo-pago-dash/internal/storage"
)

// Config is the application configuration, stored in ~/.horas/config.yaml.
// The entry data itself lives in the durable store; this file only selects
// where and how that store is kept.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects the durable backend.
type StorageConfig struct {
	// Backend is "file" (one JSON file per key) or "sqlite" (one database
	// file with a kv table).
	Backend string `yaml:"backend"`
	// Dir is the data directory. Empty means ~/.horas.
	Dir string `yaml:"dir"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// configTemplate is the annotated config written on first run.
const configTemplate = `# horas configuration
#
# All settings are optional; the defaults below work out of the box.
storage:
  # Durable backend for entries and settings:
  #   file   - one JSON file per record in the data directory (default)
  #   sqlite - a single horas.db database file in the data directory
  backend: file

  # Data directory. Empty means ~/.horas.
  dir: ""
`

// Load reads the config file at path, creating it with annotated defaults
// on first run. An empty path means ~/.horas/config.yaml. Environment
// variables HORAS_BACKEND and HORAS_DIR override the file.
func Load(path string) (Config, error) {
	cfg := Config{Storage: StorageConfig{Backend: BackendFile}}

	if path == "" {
		dir, err := storage.BaseDir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	} else if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if v := os.Getenv("HORAS_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("HORAS_DIR"); v != "" {
		cfg.Storage.Dir = v
	}

	// Fill zero-value fields so callers always get a usable Config even if
	// the user only partially fills in the file.
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	if cfg.Storage.Dir == "" {
		dir, err := storage.BaseDir()
		if err != nil {
			return cfg, err
		}
		cfg.Storage.Dir = dir
	}

	if cfg.Storage.Backend != BackendFile && cfg.Storage.Backend != BackendSQLite {
		return cfg, fmt.Errorf("unknown storage backend %q (use %q or %q)",
			cfg.Storage.Backend, BackendFile, BackendSQLite)
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
