// Package adapter contains infrastructure adapters for the fretmap CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/fretmap/internal/model"
	"gopkg.in/yaml.v3"
)

// ConfigStore loads and creates fretmap configuration files.
type ConfigStore interface {
	// Load reads the config at path. Fields missing from the file keep their defaults.
	Load(path m.Path) (m.Config, error)
	// LoadOrCreate behaves like Load but writes a default file first when path does not exist.
	LoadOrCreate(path m.Path) (m.Config, error)
	// DefaultPath returns $HOME/.fretmap/fretmap.yaml.
	DefaultPath() (m.Path, error)
}

type configStore struct{}

// NewConfigStore constructs a ConfigStore backed by the local filesystem.
func NewConfigStore() ConfigStore {
	return &configStore{}
}

func (cs *configStore) DefaultPath() (m.Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}

	return m.Path(filepath.Join(home, ".fretmap", "fretmap.yaml")), nil
}

func (cs *configStore) Load(path m.Path) (m.Config, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	cfg := m.DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m.Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	if len(cfg.Tuning) == 0 {
		cfg.Tuning = m.StandardTuning()
	}

	if cfg.View != m.ViewNames && cfg.View != m.ViewNumbers {
		return m.Config{}, fmt.Errorf("config file %s: unknown view %q", path, cfg.View)
	}

	return cfg, nil
}

func (cs *configStore) LoadOrCreate(path m.Path) (m.Config, error) {
	if _, err := os.Stat(string(path)); errors.Is(err, os.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return m.Config{}, err
		}
	}

	return cs.Load(path)
}

func createDefault(path m.Path) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory %w", err)
	}

	data, err := yaml.Marshal(m.DefaultConfig())
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), data, 0o644)
}
