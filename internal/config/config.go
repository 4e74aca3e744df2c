// Package config provides Viper-based environment configuration for omniexport
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Required environment variables, in reporting order.
const (
	EnvAPIToken    = "OMNIVORE_API_TOKEN"
	EnvHost        = "OMNIVORE_HOST"
	EnvGraphQLPath = "OMNIVORE_GRAPH_QL_PATH"
)

// Config carries the Omnivore API connection settings for one run.
type Config struct {
	APIToken    string
	Host        string
	GraphQLPath string
}

// MissingVarsError reports every required environment variable that is
// absent, not just the first one found.
type MissingVarsError struct {
	Vars []string
}

func (e *MissingVarsError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Vars, ", ")
}

// Load reads the required OMNIVORE_* environment variables. A value that
// is unset, empty, or whitespace-only counts as missing. No defaults are
// substituted: partial configuration is always an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OMNIVORE")
	v.AutomaticEnv()

	cfg := &Config{
		APIToken:    v.GetString("api_token"),
		Host:        v.GetString("host"),
		GraphQLPath: v.GetString("graph_ql_path"),
	}

	var missing []string
	if strings.TrimSpace(cfg.APIToken) == "" {
		missing = append(missing, EnvAPIToken)
	}
	if strings.TrimSpace(cfg.Host) == "" {
		missing = append(missing, EnvHost)
	}
	if strings.TrimSpace(cfg.GraphQLPath) == "" {
		missing = append(missing, EnvGraphQLPath)
	}
	if len(missing) > 0 {
		return nil, &MissingVarsError{Vars: missing}
	}

	return cfg, nil
}

// Endpoint returns the full GraphQL endpoint URL.
func (c *Config) Endpoint() string {
	return "https://" + c.Host + c.GraphQLPath
}
