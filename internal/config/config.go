// Package config loads the optional erptk.yaml defaults file. Values
// from the file sit between built-in defaults and command-line flags:
// flags always win over the file, the file wins over the defaults.
package config

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config holds the toolkit-wide defaults a user can persist instead of
// repeating them as flags on every invocation.
type Config struct {
	// CommunityPath is the checkout of the community repository; its
	// addons live under <CommunityPath>/addons.
	CommunityPath string `yaml:"community_path"`
	// EnterprisePath is the checkout of the enterprise repository; the
	// checkout root is itself an addons directory.
	EnterprisePath string `yaml:"enterprise_path"`
	// AddonsPaths lists extra addons directories to scan.
	AddonsPaths []string `yaml:"addons_paths"`
	// Languages is the default language selection for the po commands.
	Languages []string `yaml:"languages"`
}

// Default returns the built-in configuration used when no file and no
// flags supply a value.
func Default() *Config {
	return &Config{
		CommunityPath:  "community",
		EnterprisePath: "enterprise",
	}
}

// Load reads the configuration. When path is non-empty it names the file
// explicitly and a read or parse failure is an error. Otherwise the
// conventional locations are tried in order (./erptk.yaml, then
// $XDG_CONFIG_HOME/erptk/config.yaml) and a missing file simply yields
// the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	for _, candidate := range candidates() {
		cfg, err := loadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		log.Debugf("loaded configuration from %s", candidate)
		return cfg, nil
	}
	return Default(), nil
}

func candidates() []string {
	paths := []string{"erptk.yaml"}
	if dir := configDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "erptk", "config.yaml"))
	}
	return paths
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return ""
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
