package config

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"

    "github.com/BurntSushi/toml"
)

const (
    // ConfigEnv overrides the config file location.
    ConfigEnv = "EDITORGRID_CONFIG"
    appDir    = "editorgrid"
    fileName  = "config.toml"
    storeName = "prefs.json"
)

// Config holds settings that are not grid preferences. Grid preferences
// (layout, language, pane contents) live in the preference store.
type Config struct {
    StorePath   string `toml:"store_path"`
    Dark        bool   `toml:"dark"` // initial theme for the session
    LogFile     string `toml:"log_file"`
    LineNumbers bool   `toml:"line_numbers"`
}

// DefaultConfig stores preferences under the user config dir.
func DefaultConfig() *Config {
    return &Config{
        StorePath:   filepath.Join(baseDir(), storeName),
        Dark:        false,
        LineNumbers: true,
    }
}

func baseDir() string {
    if d, err := os.UserConfigDir(); err == nil {
        return filepath.Join(d, appDir)
    }
    return filepath.Join(".", "."+appDir)
}

// Path returns the config file location honoring ConfigEnv.
func Path() string {
    if p := os.Getenv(ConfigEnv); p != "" {
        return p
    }
    return filepath.Join(baseDir(), fileName)
}

// Load reads path over DefaultConfig. A missing file yields the defaults.
func Load(path string) (*Config, error) {
    c := DefaultConfig()
    data, err := os.ReadFile(path)
    if errors.Is(err, os.ErrNotExist) {
        return c, nil
    }
    if err != nil {
        return nil, fmt.Errorf("read config: %w", err)
    }
    if _, err := toml.Decode(string(data), c); err != nil {
        return nil, fmt.Errorf("parse config TOML: %w", err)
    }
    c.StorePath = expandPath(c.StorePath)
    c.LogFile = expandPath(c.LogFile)
    if c.StorePath == "" {
        c.StorePath = DefaultConfig().StorePath
    }
    return c, nil
}

// Save writes c as TOML, creating parent directories.
func Save(path string, c *Config) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("create config dir: %w", err)
    }
    f, err := os.Create(path)
    if err != nil {
        return fmt.Errorf("write config: %w", err)
    }
    defer f.Close()
    if err := toml.NewEncoder(f).Encode(c); err != nil {
        return fmt.Errorf("encode config: %w", err)
    }
    return nil
}

func expandPath(p string) string {
    if len(p) >= 2 && p[:2] == "~/" {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    return os.ExpandEnv(p)
}
