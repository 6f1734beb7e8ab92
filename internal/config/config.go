package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultAPIURL = "http://localhost:8000"

type Config struct {
	APIURL   string        `yaml:"api_url"`
	Refine   bool          `yaml:"refine,omitempty"`
	Theme    string        `yaml:"theme,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
	LogLevel string        `yaml:"log_level,omitempty"`
	LogFile  string        `yaml:"log_file,omitempty"`

	path string
}

func DefaultConfig() *Config {
	return &Config{
		APIURL:   DefaultAPIURL,
		Theme:    "monokai",
		LogLevel: "info",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptsig"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultLogPath is where the TUI writes its log when no log_file is set.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "promptsig.log"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the default config file. A missing file yields (nil, nil).
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, filling unset keys from DefaultConfig.
// A missing file yields (nil, nil).
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.path = path

	return cfg, nil
}

// Path returns the file the config was loaded from, or the default location.
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	path, _ := ConfigPath()
	return path
}

// SetPath makes Save write to path instead of the default location.
func (c *Config) SetPath(path string) {
	c.path = path
}

func (c *Config) Save() error {
	path := c.Path()
	if path == "" {
		return errors.New("no config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ApplyEnv loads a .env file from the working directory if present and lets
// environment variables override file values.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	// API_URL is the legacy name; PROMPTSIG_API_URL wins.
	if v := os.Getenv("API_URL"); v != "" {
		c.APIURL = v
	}
	c.APIURL = getEnv("PROMPTSIG_API_URL", c.APIURL)
	c.Refine = getEnvBool("PROMPTSIG_REFINE", c.Refine)
	c.Theme = getEnv("PROMPTSIG_THEME", c.Theme)
	c.LogLevel = getEnv("PROMPTSIG_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("PROMPTSIG_LOG_FILE", c.LogFile)
	if v := os.Getenv("PROMPTSIG_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
}

// Validate normalizes APIURL and checks it is an absolute http(s) URL.
func (c *Config) Validate() error {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		return errors.New("api_url is required")
	}

	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api_url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api_url %q: missing host", c.APIURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s", c.Timeout)
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
