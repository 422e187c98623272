package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LocalDir is the project-relative directory searched for config overrides.
var LocalDir = "configs"

// load fills a config for gameID. Files are decoded on top of the defaults, so
// an override only needs the keys it changes.
// Search order: customPath -> ~/.arcade/configs/<id>.{yaml,toml} ->
// ./configs/<id>.{yaml,toml} -> embedded default -> hardcoded default.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(gameID) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := fallback()
		if err := decode(path, data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if data := DefaultYAML(gameID); data != nil {
		embedded := fallback()
		if err := yaml.Unmarshal(data, &embedded); err == nil {
			return embedded, nil
		}
	}
	return cfg, nil
}

func searchPaths(gameID string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".arcade", "configs")
		paths = append(paths, filepath.Join(dir, gameID+".yaml"), filepath.Join(dir, gameID+".toml"))
	}
	return append(paths,
		filepath.Join(LocalDir, gameID+".yaml"),
		filepath.Join(LocalDir, gameID+".toml"),
	)
}

// decode picks the format from the file extension; anything but .toml is YAML.
func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), v)
		return err
	}
	return yaml.Unmarshal(data, v)
}

// LoadDodge loads Cosmic Dodge configuration.
func LoadDodge(customPath string) (DodgeConfig, error) {
	return load("dodge", customPath, DefaultDodgeConfig)
}

// LoadPong loads Cyber Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, DefaultPongConfig)
}

// LoadBlaster loads Neon Blaster configuration.
func LoadBlaster(customPath string) (BlasterConfig, error) {
	return load("blaster", customPath, DefaultBlasterConfig)
}

// LoadBayam loads Bayam configuration.
func LoadBayam(customPath string) (BayamConfig, error) {
	return load("bayam", customPath, DefaultBayamConfig)
}

// LoadWhack loads Whack-a-Droid configuration.
func LoadWhack(customPath string) (WhackConfig, error) {
	return load("whack", customPath, DefaultWhackConfig)
}
