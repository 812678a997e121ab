// Package config loads the optional ltlimport.yaml project file, which
// carries connection defaults, per-pipeline column alias overrides, and
// artifact settings.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Username       string `yaml:"username"`
	Database       string `yaml:"database"`
	SSLMode        string `yaml:"sslmode"`
	AuthMethod     string `yaml:"auth_method,omitempty"`
	AzureTenantID  string `yaml:"azure_tenant_id,omitempty"`
	AzureClientID  string `yaml:"azure_client_id,omitempty"`
	AWSRegion      string `yaml:"aws_region,omitempty"`
	GoogleInstance string `yaml:"google_instance,omitempty"`
}

// ProjectConfig is the full ltlimport.yaml document.
//
// Aliases maps pipeline name (carriers, routes, locations) to canonical
// field name to extra accepted header spellings. Overrides extend the
// built-in alias declarations; they never remove them.
type ProjectConfig struct {
	Connection  ConnectionConfig               `yaml:"connection"`
	Aliases     map[string]map[string][]string `yaml:"aliases"`
	ArtifactDir string                         `yaml:"artifact_dir"`
	Timeout     string                         `yaml:"timeout"`
}

const ConfigFileName = "ltlimport.yaml"

// Load reads ltlimport.yaml from dir. Returns ErrConfigNotFound when the
// file is absent, which callers treat as an empty config.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AliasesFor returns the alias overrides for one pipeline, or nil.
func (c *ProjectConfig) AliasesFor(pipeline string) map[string][]string {
	if c == nil || c.Aliases == nil {
		return nil
	}
	return c.Aliases[pipeline]
}
