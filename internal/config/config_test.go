package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accounts = `{
  "s2": {
    "oktaUrl": "https://okta.example.com/oauth2/token",
    "base64Token": "Y2xpZW50OnNlY3JldA==",
    "okta-audience": "wolverine-cert.sabre-gcp.com",
    "rmxApiJson": "https://rmx.example.com/json/",
    "omsApiJson": "https://oms.example.com/json",
    "rmxNdcXml": "https://rmx.example.com/ndc",
    "configuration": {"ownerCode": "NZ"}
  }
}`

func writeAccounts(t *testing.T, environment string, tenant string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, environment, "s2", tenant)

	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "url-and-accounts.json"), []byte(accounts), 0o644))

	return dir
}

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("should load the sub environment block and defaults", func(t *testing.T) {
		dir := writeAccounts(t, "dev", "a1")

		c, err := config.LoadFrom(env(map[string]string{
			"ENVIRONMENT":    "DEV",
			"SUBENVIRONMENT": "S2",
			"TENANT":         "A1",
			"TESTDATA_DIR":   dir,
		}))
		require.NoError(t, err)

		assert.Equal(t, "https://okta.example.com/oauth2/token", c.Accounts.OktaURL)
		assert.Equal(t, "NZ", c.Accounts.Configuration.OwnerCode)
		assert.Equal(t, 4, c.Workers)
		assert.Equal(t, 30*time.Second, c.RequestTimeout)
		assert.Equal(t, "reports", c.ReportDir)
		assert.Equal(t, "wolverine-s2.dev.sabre-gcp.com", c.Audience())

		endpoints, err := c.Endpoints("json")
		require.NoError(t, err)
		assert.Equal(t, config.Endpoints{
			Shop:        "https://rmx.example.com/json/shop",
			Price:       "https://rmx.example.com/json/price",
			CreateOrder: "https://oms.example.com/json/create",
		}, endpoints)

		endpoints, err = c.Endpoints("xml")
		require.NoError(t, err)
		assert.Equal(t, "https://rmx.example.com/ndc/create", endpoints.CreateOrder)

		_, err = c.Endpoints("soap")
		assert.Error(t, err)
	})

	t.Run("should read numeric settings", func(t *testing.T) {
		dir := writeAccounts(t, "dev", "a1")

		c, err := config.LoadFrom(env(map[string]string{
			"ENVIRONMENT":        "dev",
			"SUBENVIRONMENT":     "s2",
			"TENANT":             "a1",
			"TESTDATA_DIR":       dir,
			"WORKERS":            "8",
			"REQUEST_TIMEOUT_MS": "1500",
		}))
		require.NoError(t, err)

		assert.Equal(t, 8, c.Workers)
		assert.Equal(t, 1500*time.Millisecond, c.RequestTimeout)

		_, err = config.LoadFrom(env(map[string]string{
			"ENVIRONMENT":    "dev",
			"SUBENVIRONMENT": "s2",
			"TENANT":         "a1",
			"TESTDATA_DIR":   dir,
			"WORKERS":        "many",
		}))
		assert.ErrorContains(t, err, "WORKERS")
	})

	t.Run("should require the environment selection", func(t *testing.T) {
		_, err := config.LoadFrom(env(map[string]string{"ENVIRONMENT": "dev"}))
		assert.ErrorIs(t, err, config.ErrorMissingVariable)
	})

	t.Run("should fail on missing files and blocks", func(t *testing.T) {
		dir := writeAccounts(t, "dev", "a1")

		_, err := config.LoadAccounts(dir, "dev", "s2", "zz")
		assert.ErrorContains(t, err, "test data file not found")

		_, err = config.LoadAccounts(dir, "dev", "s3", "a1")
		assert.Error(t, err)
	})

	t.Run("should load the bundled sandbox accounts", func(t *testing.T) {
		c, err := config.LoadFrom(env(map[string]string{
			"ENVIRONMENT":    "local",
			"SUBENVIRONMENT": "sandbox",
			"TENANT":         "s2",
			"TESTDATA_DIR":   filepath.Join("..", "..", "testdata"),
		}))
		require.NoError(t, err)

		endpoints, err := c.Endpoints("json")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/json/create", endpoints.CreateOrder)
		assert.Equal(t, "AUD", c.Accounts.Configuration.Currency)
	})
}

func TestAudience(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		tenant      string
		expected    string
	}{
		{name: "default audience", environment: "dev", tenant: "a1", expected: "wolverine-s2.dev.sabre-gcp.com"},
		{name: "cert uses the configured audience", environment: "cert", tenant: "a1", expected: "wolverine-cert.sabre-gcp.com"},
		{name: "b2 tenant wins over cert", environment: "cert", tenant: "b2", expected: "wolverine-b2.dev.sabre-gcp.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &config.Config{
				Environment: tt.environment,
				Tenant:      tt.tenant,
				Accounts:    config.Accounts{OktaAudience: "wolverine-cert.sabre-gcp.com"},
			}

			assert.Equal(t, tt.expected, c.Audience())
			assert.Equal(t, tt.expected, c.Credentials().Audience)
		})
	}
}

func TestLoadSandbox(t *testing.T) {
	assert.Equal(t, config.SandboxConfig{Port: "8080", SigningKey: "sandbox-signing-key"}, config.LoadSandbox(env(nil)))
	assert.Equal(t, "9000", config.LoadSandbox(env(map[string]string{"PORT": "9000"})).Port)
}
