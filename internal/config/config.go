package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/client/tokenprovider"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	accountsFile = "url-and-accounts.json"

	defaultAudience   = "wolverine-s2.dev.sabre-gcp.com"
	b2Audience        = "wolverine-b2.dev.sabre-gcp.com"
	certEnvironment   = "cert"
	b2Tenant          = "b2"
	defaultTestData   = "testdata"
	defaultScenarios  = "testdata/scenarios.yaml"
	defaultReportDir  = "reports"
	defaultWorkers    = 4
	defaultTimeoutMs  = 30000
	defaultSandboxKey = "sandbox-signing-key"
	defaultPort       = "8080"
)

var ErrorMissingVariable = errors.New("missing environment variable")

// Accounts is the sub-environment block of url-and-accounts.json.
type Accounts struct {
	OktaURL       string               `yaml:"oktaUrl"`
	Base64Token   string               `yaml:"base64Token"`
	OktaAudience  string               `yaml:"okta-audience"`
	RmxAPIJSON    string               `yaml:"rmxApiJson"`
	OmsAPIJSON    string               `yaml:"omsApiJson"`
	RmxNdcXML     string               `yaml:"rmxNdcXml"`
	Configuration schema.Configuration `yaml:"configuration"`
}

type Config struct {
	Environment    string
	Subenvironment string
	Tenant         string
	Accounts       Accounts

	LogLevel           string
	ScenarioFile       string
	ReportDir          string
	Workers            int
	RequestTimeout     time.Duration
	TokenCacheRedisURI string
}

// Load reads the suite configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

func LoadFrom(getenv func(string) string) (*Config, error) {
	c := &Config{
		Environment:        strings.ToLower(getenv("ENVIRONMENT")),
		Subenvironment:     strings.ToLower(getenv("SUBENVIRONMENT")),
		Tenant:             strings.ToLower(getenv("TENANT")),
		LogLevel:           getenv("LOG_LEVEL"),
		ScenarioFile:       valueOr(getenv("SCENARIO_FILE"), defaultScenarios),
		ReportDir:          valueOr(getenv("REPORT_DIR"), defaultReportDir),
		TokenCacheRedisURI: getenv("TOKEN_CACHE_REDIS_URI"),
	}

	if c.Environment == "" || c.Subenvironment == "" || c.Tenant == "" {
		return nil, fmt.Errorf("%w: ENVIRONMENT, SUBENVIRONMENT and TENANT are required", ErrorMissingVariable)
	}

	workers, err := cast.ToIntE(valueOr(getenv("WORKERS"), cast.ToString(defaultWorkers)))
	if err != nil || workers < 1 {
		return nil, fmt.Errorf("invalid WORKERS %q", getenv("WORKERS"))
	}
	c.Workers = workers

	timeoutMs, err := cast.ToIntE(valueOr(getenv("REQUEST_TIMEOUT_MS"), cast.ToString(defaultTimeoutMs)))
	if err != nil || timeoutMs < 1 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_MS %q", getenv("REQUEST_TIMEOUT_MS"))
	}
	c.RequestTimeout = time.Duration(timeoutMs) * time.Millisecond

	accounts, err := LoadAccounts(valueOr(getenv("TESTDATA_DIR"), defaultTestData), c.Environment, c.Subenvironment, c.Tenant)
	if err != nil {
		return nil, err
	}
	c.Accounts = accounts

	return c, nil
}

// LoadAccounts reads <dir>/<environment>/<subenvironment>/<tenant>/url-and-accounts.json
// and returns its block for the sub-environment.
func LoadAccounts(dir string, environment string, subenvironment string, tenant string) (Accounts, error) {
	path := filepath.Join(dir, environment, subenvironment, tenant, accountsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		return Accounts{}, fmt.Errorf("test data file not found at path %s: %w", path, err)
	}

	blocks := map[string]Accounts{}

	err = yaml.Unmarshal(content, &blocks)
	if err != nil {
		return Accounts{}, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	accounts, ok := blocks[subenvironment]
	if !ok {
		return Accounts{}, fmt.Errorf("subenvironment '%s' not found in %s", subenvironment, path)
	}

	return accounts, nil
}

// Audience is the token audience of the selected environment and tenant.
func (c *Config) Audience() string {
	audience := defaultAudience

	if c.Environment == certEnvironment {
		audience = c.Accounts.OktaAudience
	}

	if c.Tenant == b2Tenant {
		audience = b2Audience
	}

	return audience
}

func (c *Config) Credentials() tokenprovider.Credentials {
	return tokenprovider.Credentials{
		TokenURL:    c.Accounts.OktaURL,
		Base64Token: c.Accounts.Base64Token,
		Audience:    c.Audience(),
	}
}

type Endpoints struct {
	Shop        string
	Price       string
	CreateOrder string
}

// Endpoints returns the step urls of a platform. JSON orders are created
// through the order management service.
func (c *Config) Endpoints(platform string) (Endpoints, error) {
	switch platform {
	case "json":
		return Endpoints{
			Shop:        joinURL(c.Accounts.RmxAPIJSON, "shop"),
			Price:       joinURL(c.Accounts.RmxAPIJSON, "price"),
			CreateOrder: joinURL(c.Accounts.OmsAPIJSON, "create"),
		}, nil
	case "xml":
		return Endpoints{
			Shop:        joinURL(c.Accounts.RmxNdcXML, "shop"),
			Price:       joinURL(c.Accounts.RmxNdcXML, "price"),
			CreateOrder: joinURL(c.Accounts.RmxNdcXML, "create"),
		}, nil
	}

	return Endpoints{}, fmt.Errorf("no endpoints for platform %s", platform)
}

type SandboxConfig struct {
	Port       string
	SigningKey string
	LogLevel   string
}

func LoadSandbox(getenv func(string) string) SandboxConfig {
	return SandboxConfig{
		Port:       valueOr(getenv("PORT"), defaultPort),
		SigningKey: valueOr(getenv("SANDBOX_SIGNING_KEY"), defaultSandboxKey),
		LogLevel:   getenv("LOG_LEVEL"),
	}
}

func joinURL(base string, path string) string {
	return strings.TrimRight(base, "/") + "/" + path
}

func valueOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
