package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	PortEnv           = "PORT"
	AllowedOriginsEnv = "ALLOWED_ORIGINS"
	PolicyEngineEnv   = "ORIGIN_POLICY_ENGINE"
	LogLevelEnv       = "LOG_LEVEL"
	OPAPolicyFileEnv  = "OPA_POLICY_FILE"

	DefaultPort = 5001
)

// PolicyEngine names the decision maker backing the origin allow-list.
type PolicyEngine string

const (
	PolicyEngineAllowList PolicyEngine = "allowlist"
	PolicyEngineCasbin    PolicyEngine = "casbin"
	PolicyEngineOPA       PolicyEngine = "opa"
)

// DefaultAllowedOrigins is the allow-list used when ALLOWED_ORIGINS is unset.
// The "*" entry is compared literally like every other entry; it does not open the API to any origin.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "*"}

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Port           int
	AllowedOrigins []string
	PolicyEngine   PolicyEngine
	LogLevel       slog.Level

	// OPAPolicyFile is a Rego module read on every decision by the opa engine. Empty selects the built-in policy.
	OPAPolicyFile string
}

// Load reads an optional .env file from the working directory and builds a Config from the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		// Existing variables win over .env values.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from the given lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		Port:           DefaultPort,
		AllowedOrigins: slices.Clone(DefaultAllowedOrigins),
		PolicyEngine:   PolicyEngineAllowList,
		LogLevel:       slog.LevelInfo,
	}

	if v, ok := lookup(PortEnv); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid %s %q: must be a number between 1 and 65535", PortEnv, v)
		}
		cfg.Port = port
	}

	if v, ok := lookup(AllowedOriginsEnv); ok {
		cfg.AllowedOrigins = parseOrigins(v)
	}

	if v, ok := lookup(PolicyEngineEnv); ok && v != "" {
		engine := PolicyEngine(strings.ToLower(strings.TrimSpace(v)))
		switch engine {
		case PolicyEngineAllowList, PolicyEngineCasbin, PolicyEngineOPA:
			cfg.PolicyEngine = engine
		default:
			return nil, fmt.Errorf("invalid %s %q", PolicyEngineEnv, v)
		}
	}

	if v, ok := lookup(LogLevelEnv); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", LogLevelEnv, v, err)
		}
	}

	if v, ok := lookup(OPAPolicyFileEnv); ok {
		cfg.OPAPolicyFile = strings.TrimSpace(v)
	}

	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// parseOrigins splits a comma-separated list, trimming blanks and dropping empty entries.
func parseOrigins(v string) []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}
