// Package config loads the suite configuration: the environment under test,
// its base URL and the browser settings.
//
// Sources, later ones winning: built-in defaults, a YAML file, a .env file,
// then the process environment, then any Override passed to Load. Values
// from .env never override variables already set in the process.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/environment"
)

// Environment variables read by Load.
const (
	EnvConfigFile   = "E2E_CONFIG"
	EnvEnvironment  = "TEST_ENVIRONMENT"
	EnvDriver       = "BROWSER_DRIVER"
	EnvHeadless     = "E2E_HEADLESS"
	EnvTimeout      = "E2E_TIMEOUT"
	EnvChromeBin    = "E2E_CHROME_BIN"
	EnvLogLevel     = "E2E_LOG_LEVEL"
	EnvServeFixture = "E2E_SERVE_FIXTURE"
)

const (
	defaultConfigFile = "e2e.yaml"
	dotEnvFile        = ".env"
)

// Config is the resolved suite configuration.
type Config struct {
	Environment environment.Environment `yaml:"environment"`
	// BaseURL is resolved from Environment by Load.
	BaseURL string `yaml:"-"`

	Browser  browser.Config `yaml:"browser"`
	LogLevel string         `yaml:"log_level"`

	// ServeFixture starts the bundled fixture site on the local base URL
	// before the suite runs. Off by default so a developer's own server on
	// that port is the one under test. Ignored for remote environments.
	ServeFixture bool `yaml:"serve_fixture"`
}

// Default returns the configuration before any file or variable is applied.
// Environment is deliberately unset.
func Default() Config {
	return Config{
		Browser:  browser.DefaultConfig(),
		LogLevel: "info",
	}
}

// Override adjusts the merged configuration before it is validated. Command
// line flags reach Load through overrides.
type Override func(*Config)

// WithEnvironment selects the environment by name. An empty name keeps the
// one from the files and variables.
func WithEnvironment(name string) Override {
	return func(c *Config) {
		if name != "" {
			c.Environment = environment.Environment(name)
		}
	}
}

// WithDriver forces the browser driver.
func WithDriver(d browser.Driver) Override {
	return func(c *Config) { c.Browser.Driver = d }
}

// WithLogLevel sets the log level. An empty level is ignored.
func WithLogLevel(level string) Override {
	return func(c *Config) {
		if level != "" {
			c.LogLevel = level
		}
	}
}

// Load resolves the configuration, looking for e2e.yaml and .env in dir.
// It fails when the environment is missing or unknown.
func Load(dir string, overrides ...Override) (*Config, error) {
	cfg := Default()

	path := os.Getenv(EnvConfigFile)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, defaultConfigFile)
	}
	if err := readYAML(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	dotEnv, err := godotenv.Read(filepath.Join(dir, dotEnvFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", dotEnvFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := dotEnv[key]
		return v, ok
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func envOr(lookup lookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBoolOr(lookup lookupFunc, key string, fallback bool) bool {
	v, ok := lookup(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func applyEnv(cfg *Config, lookup lookupFunc) error {
	cfg.Environment = environment.Environment(envOr(lookup, EnvEnvironment, string(cfg.Environment)))
	cfg.Browser.Driver = browser.Driver(envOr(lookup, EnvDriver, string(cfg.Browser.Driver)))
	cfg.Browser.Headless = envBoolOr(lookup, EnvHeadless, cfg.Browser.Headless)
	cfg.Browser.ChromeBin = envOr(lookup, EnvChromeBin, cfg.Browser.ChromeBin)
	cfg.LogLevel = envOr(lookup, EnvLogLevel, cfg.LogLevel)
	cfg.ServeFixture = envBoolOr(lookup, EnvServeFixture, cfg.ServeFixture)

	if v := envOr(lookup, EnvTimeout, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Browser.Timeout = d
	}
	return nil
}

// resolve validates the merged values and fills BaseURL.
func (c *Config) resolve() error {
	env, err := environment.Parse(string(c.Environment))
	if err != nil {
		return err
	}
	c.Environment = env
	c.BaseURL = env.BaseURL()

	if c.Browser.Driver, err = browser.ParseDriver(string(c.Browser.Driver)); err != nil {
		return err
	}
	if c.Browser.Timeout <= 0 {
		return fmt.Errorf("browser timeout must be positive, got %s", c.Browser.Timeout)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zc.Level = level
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// FixtureAddr is the listen address for the fixture site when it stands in
// for the local environment, or "" when no fixture should be served.
func (c *Config) FixtureAddr() string {
	if !c.ServeFixture || c.Environment != environment.Local {
		return ""
	}
	u, err := url.Parse(environment.LocalBaseURL)
	if err != nil {
		return ""
	}
	return ":" + u.Port()
}
