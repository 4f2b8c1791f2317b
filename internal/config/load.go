//go:build !js

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ThatOtherAndrew/backdrop/internal/logger"
)

const EnvPrefix = "BACKDROP_"

func GetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "backdrop")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.yaml"), nil
}

// Load reads settings from the YAML file at path, then overlays BACKDROP_*
// environment variables. A missing file is created with the defaults.
// Nested keys use a double underscore: BACKDROP_GRID__NODES=16.
func Load(path string) (*Settings, error) {
	log := logger.For("config")
	settings := Default()
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			log.Warn("invalid settings file, using defaults", "path", path, "err", err)
			k = koanf.New(".")
		}
	} else if os.IsNotExist(err) {
		log.Info("creating default settings file", "path", path)
		if err := settings.Save(path); err != nil {
			log.Warn("failed to create default settings file", "path", path, "err", err)
		}
	} else {
		return nil, fmt.Errorf("accessing settings %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	known := KnownKeys()
	for _, key := range k.Keys() {
		if !known[key] {
			log.Warn("unrecognised setting key", "key", key)
		}
	}

	if err := k.Unmarshal("", settings); err != nil {
		return nil, fmt.Errorf("unmarshalling settings: %w", err)
	}

	settings.Normalize()
	return settings, nil
}

func (s *Settings) Save(path string) error {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings to %s: %w", path, err)
	}
	return nil
}
