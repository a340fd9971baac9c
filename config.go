package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"snes816/log"
)

// RunConfig is the persistent, user-editable configuration loaded from
// the OS's config directory, separate from the one-shot CLI flags.
type RunConfig struct {
	Frames     int    `toml:"frames"`
	TraceFile  string `toml:"trace_file"`
	LogModules string `toml:"log_modules"`
}

const defaultFileMode = os.FileMode(0755)
const configFilename = "config.toml"

var configDir = sync.OnceValue(func() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.ModSystem.Fatalf("failed to get user config directory: %v", err)
	}
	dir = filepath.Join(dir, "snes816")
	if err := os.MkdirAll(dir, defaultFileMode); err != nil {
		log.ModSystem.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

var defaultRunConfig = RunConfig{
	Frames: 60,
}

// LoadRunConfigOrDefault loads config.toml from the user config
// directory, falling back to defaultRunConfig if it is missing or
// malformed.
func LoadRunConfigOrDefault() RunConfig {
	var cfg RunConfig
	if _, err := toml.DecodeFile(filepath.Join(configDir(), configFilename), &cfg); err != nil {
		return defaultRunConfig
	}
	return cfg
}

// SaveRunConfig writes cfg into the user config directory.
func SaveRunConfig(cfg RunConfig) error {
	f, err := os.Create(filepath.Join(configDir(), configFilename))
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
