package app

import (
	"os"
	"path/filepath"
)

// App is the configured application handed to CLI commands.
type App struct {
	Config Config
	*Wire
}

// New resolves cfg against defaults and the config file in its home
// directory, creates the home directory, and wires dependencies. Values
// already set in cfg take precedence over the file.
func New(cfg Config, configPath string) (*App, error) {
	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return nil, err
		}
		cfg.Home = home
	}
	if configPath == "" {
		configPath = filepath.Join(cfg.Home, ConfigFilename)
	}
	fileCfg, err := LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg = cfg.Merge(fileCfg)

	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}
