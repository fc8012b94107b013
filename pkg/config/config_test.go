package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/environment"
)

var allVars = []string{
	EnvConfigFile, EnvEnvironment, EnvDriver, EnvHeadless,
	EnvTimeout, EnvChromeBin, EnvLogLevel, EnvServeFixture,
}

// clearEnv blanks every variable Load reads; empty counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEnvironment, "Production")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, environment.Production, cfg.Environment)
	assert.Equal(t, "https://www.xengvang.com", cfg.BaseURL)
	assert.Equal(t, browser.DriverRod, cfg.Browser.Driver)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 30*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.FixtureAddr(), "fixture only stands in for local")
}

func TestLoad_MissingEnvironment(t *testing.T) {
	clearEnv(t)

	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, environment.ErrUnknownEnvironment)
	assert.Contains(t, err.Error(), "local, development, qa, staging, production")
}

func TestLoad_UnknownEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEnvironment, "prod")

	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, environment.ErrUnknownEnvironment)
	assert.Contains(t, err.Error(), `"prod"`)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "e2e.yaml", `
environment: qa
log_level: warn
serve_fixture: false
browser:
  driver: chromedp
  headless: false
  timeout: 45s
`)
	writeFile(t, dir, ".env", "TEST_ENVIRONMENT=staging\nE2E_TIMEOUT=10s\n")
	t.Setenv(EnvTimeout, "5s")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, environment.Staging, cfg.Environment, ".env overrides yaml")
	assert.Equal(t, "https://staging.xengvang.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Browser.Timeout, "process env overrides .env")
	assert.Equal(t, browser.DriverChromedp, cfg.Browser.Driver)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.ServeFixture)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "ci.yaml", "environment: local\nbrowser:\n  driver: static\n")
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, environment.Local, cfg.Environment)
	assert.Equal(t, browser.DriverStatic, cfg.Browser.Driver)
	assert.Empty(t, cfg.FixtureAddr(), "fixture serving is opt-in")
}

func TestLoad_ServeFixture(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "e2e.yaml", "environment: local\nserve_fixture: true\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.FixtureAddr())

	t.Setenv(EnvServeFixture, "false")
	cfg, err = Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.FixtureAddr())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TEST_ENVIRONMENT=staging\nE2E_LOG_LEVEL=warn\n")
	t.Setenv(EnvDriver, "chromedp")

	cfg, err := Load(dir,
		WithEnvironment("QA"),
		WithDriver(browser.DriverStatic),
		WithLogLevel("debug"),
	)
	require.NoError(t, err)
	assert.Equal(t, environment.QA, cfg.Environment)
	assert.Equal(t, "https://qa.xengvang.com", cfg.BaseURL)
	assert.Equal(t, browser.DriverStatic, cfg.Browser.Driver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, os.Getenv(EnvEnvironment), "overrides never touch the process environment")

	cfg, err = Load(dir, WithEnvironment(""), WithLogLevel(""))
	require.NoError(t, err)
	assert.Equal(t, environment.Staging, cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = Load(dir, WithEnvironment("prod"))
	require.ErrorIs(t, err, environment.ErrUnknownEnvironment)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv(EnvEnvironment, "local")

	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "driver", key: EnvDriver, val: "selenium"},
		{name: "timeout", key: EnvTimeout, val: "soon"},
		{name: "negative timeout", key: EnvTimeout, val: "-1s"},
		{name: "log level", key: EnvLogLevel, val: "chatty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvEnvironment, "local")
			t.Setenv(tt.key, tt.val)

			_, err := Load(t.TempDir())
			require.Error(t, err)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "e2e.yaml", "environment: [qa\n")
	t.Setenv(EnvEnvironment, "qa")

	_, err := Load(dir)
	require.Error(t, err)
}

func TestEnvBoolOr(t *testing.T) {
	vars := map[string]string{"yes": "YES", "off": "off", "junk": "maybe"}
	lookup := func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	assert.True(t, envBoolOr(lookup, "yes", false))
	assert.False(t, envBoolOr(lookup, "off", true))
	assert.True(t, envBoolOr(lookup, "junk", true))
	assert.False(t, envBoolOr(lookup, "unset", false))
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	cfg.LogLevel = "loud"
	_, err = cfg.Logger()
	require.Error(t, err)
}
