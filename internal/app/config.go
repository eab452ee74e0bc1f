package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the name of the optional config file inside Home.
const ConfigFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string       `yaml:"-"`                       // state directory, e.g. $HOME/.chemcalc
	Passphrase   string       `yaml:"-"`                       // seals stored state when set
	RemoteURL    string       `yaml:"remote,omitempty"`        // chemcalcd base URL, e.g. http://127.0.0.1:8080
	SessionID    string       `yaml:"session,omitempty"`       // existing remote session to reuse
	HistoryLimit int          `yaml:"history_limit,omitempty"` // entries kept in history.json
	HTTP         *http.Client `yaml:"-"`                       // optional; defaults to http.DefaultClient
}

// DefaultHome returns $HOME/.chemcalc.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".chemcalc"), nil
}

// LoadConfigFile reads the YAML config at path. A missing file yields a
// zero Config and no error.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Merge returns c with every zero field filled from fallback.
func (c Config) Merge(fallback Config) Config {
	if c.Home == "" {
		c.Home = fallback.Home
	}
	if c.Passphrase == "" {
		c.Passphrase = fallback.Passphrase
	}
	if c.RemoteURL == "" {
		c.RemoteURL = fallback.RemoteURL
	}
	if c.SessionID == "" {
		c.SessionID = fallback.SessionID
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = fallback.HistoryLimit
	}
	if c.HTTP == nil {
		c.HTTP = fallback.HTTP
	}
	return c
}
