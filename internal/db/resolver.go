package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ltlops/ltlimport/internal/config"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// GranularConnFlags represents connection parameters from CLI flags,
// following PostgreSQL flag conventions (-h, -p, -U, -d).
//
// Password is deliberately not a flag. Use $PGPASSWORD, a .pgpass file,
// or a connection string with an embedded password.
type GranularConnFlags struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
}

// IsEmpty reports whether the user provided no granular connection flags.
// Database is excluded because it may override the database of a
// connection string.
func (g *GranularConnFlags) IsEmpty() bool {
	return g.Host == "" && g.Port == 0 && g.Username == "" && g.SSLMode == ""
}

// AzureFlags represents Azure Entra ID CLI flags. They override the
// corresponding AZURE_* environment variables. The client secret only
// comes from $AZURE_CLIENT_SECRET.
type AzureFlags struct {
	TenantID string
	ClientID string
}

// IsEmpty reports whether no Azure flags were provided.
func (a *AzureFlags) IsEmpty() bool {
	return a == nil || (a.TenantID == "" && a.ClientID == "")
}

// EnvVars represents the environment variables the resolver consults.
// The PG* names follow libpq; see
// https://www.postgresql.org/docs/current/libpq-envars.html
type EnvVars struct {
	PGHOST     string
	PGPORT     string
	PGUSER     string
	PGPASSWORD string
	PGDATABASE string
	PGSSLMODE  string

	// ConnectionString is $LTLIMPORT_CONNECTION_STRING, with
	// $DATABASE_URL as the fallback convention.
	ConnectionString string

	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string
}

// LoadFromEnvironment reads the recognized environment variables.
func LoadFromEnvironment() *EnvVars {
	connString := os.Getenv("LTLIMPORT_CONNECTION_STRING")
	if connString == "" {
		connString = os.Getenv("DATABASE_URL")
	}

	return &EnvVars{
		PGHOST:            os.Getenv("PGHOST"),
		PGPORT:            os.Getenv("PGPORT"),
		PGUSER:            os.Getenv("PGUSER"),
		PGPASSWORD:        os.Getenv("PGPASSWORD"),
		PGDATABASE:        os.Getenv("PGDATABASE"),
		PGSSLMODE:         os.Getenv("PGSSLMODE"),
		ConnectionString:  connString,
		AzureTenantID:     os.Getenv("AZURE_TENANT_ID"),
		AzureClientID:     os.Getenv("AZURE_CLIENT_ID"),
		AzureClientSecret: os.Getenv("AZURE_CLIENT_SECRET"),
	}
}

// ResolveConnectionParams resolves connection parameters using
// PostgreSQL-standard precedence:
//
//  1. Connection string flag (--connection), parsed directly
//  2. Granular flags (-h, -p, -U, -d)
//  3. Environment variables (PGHOST, PGPORT, ...)
//  4. $LTLIMPORT_CONNECTION_STRING / $DATABASE_URL
//  5. ltlimport.yaml connection section
//  6. Defaults (localhost:5432, prefer SSL)
//
// Providing both --connection and granular flags is an error; the intent
// would be ambiguous.
func ResolveConnectionParams(
	connStringFlag string,
	granularFlags *GranularConnFlags,
	azureFlags *AzureFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*ltlimport.ConnectionConfig, error) {
	if granularFlags == nil {
		granularFlags = &GranularConnFlags{}
	}
	if azureFlags == nil {
		azureFlags = &AzureFlags{}
	}
	if envVars == nil {
		envVars = &EnvVars{}
	}

	if connStringFlag != "" && !granularFlags.IsEmpty() {
		return nil, fmt.Errorf(
			"cannot specify both --connection and granular flags (-h, -p, -U)\n" +
				"Choose one approach:\n" +
				"  1. Connection string: --connection \"postgresql://user@localhost:5432/ltl\"\n" +
				"  2. Granular flags: -h localhost -p 5432 -U loader -d ltl\n" +
				"  3. Environment variables: export PGHOST=localhost PGPORT=5432 PGUSER=loader",
		)
	}

	var cfg *ltlimport.ConnectionConfig
	var err error

	switch {
	case connStringFlag != "":
		cfg, err = resolveFromConnectionString(connStringFlag, envVars)
	case granularFlags.IsEmpty() && envVars.ConnectionString != "":
		cfg, err = resolveFromConnectionString(envVars.ConnectionString, envVars)
	default:
		cfg, err = resolveFromGranularParams(granularFlags, envVars, projectConfig)
	}
	if err != nil {
		return nil, err
	}

	// A -d flag overrides the database from any source.
	if granularFlags.Database != "" {
		cfg.Database = granularFlags.Database
	}

	applyAzureAuth(cfg, azureFlags, envVars)
	applyConfiguredAuthMethod(cfg, projectConfig)

	return cfg, nil
}

// applyAzureAuth switches the config to Azure Entra ID auth when Azure
// credentials are present. Flags win over environment variables.
func applyAzureAuth(cfg *ltlimport.ConnectionConfig, flags *AzureFlags, env *EnvVars) {
	tenantID := flags.TenantID
	if tenantID == "" {
		tenantID = env.AzureTenantID
	}

	clientID := flags.ClientID
	if clientID == "" {
		clientID = env.AzureClientID
	}

	if tenantID != "" || clientID != "" {
		cfg.AuthMethod = ltlimport.AuthMethodAzureEntraID
		cfg.AzureTenantID = tenantID
		cfg.AzureClientID = clientID
		cfg.AzureClientSecret = env.AzureClientSecret
	}
}

// applyConfiguredAuthMethod honors an auth_method from ltlimport.yaml when
// nothing else selected one.
func applyConfiguredAuthMethod(cfg *ltlimport.ConnectionConfig, projectConfig *config.ProjectConfig) {
	if projectConfig == nil || cfg.AuthMethod != ltlimport.AuthMethodStandard {
		return
	}

	pc := projectConfig.Connection
	switch pc.AuthMethod {
	case "aws":
		cfg.AuthMethod = ltlimport.AuthMethodAWSIAM
		if cfg.AWSRegion == "" {
			cfg.AWSRegion = pc.AWSRegion
		}
	case "google":
		cfg.AuthMethod = ltlimport.AuthMethodGoogleIAM
		if cfg.GoogleInstance == "" {
			cfg.GoogleInstance = pc.GoogleInstance
		}
	case "azure":
		cfg.AuthMethod = ltlimport.AuthMethodAzureEntraID
		if cfg.AzureTenantID == "" {
			cfg.AzureTenantID = pc.AzureTenantID
		}
		if cfg.AzureClientID == "" {
			cfg.AzureClientID = pc.AzureClientID
		}
	}
}

// resolveFromConnectionString parses a connection string, applying
// PGSSLMODE as a fallback the way libpq does.
func resolveFromConnectionString(connStr string, envVars *EnvVars) (*ltlimport.ConnectionConfig, error) {
	cfg, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	if cfg.SSLMode == "" && envVars != nil && envVars.PGSSLMODE != "" {
		cfg.SSLMode = envVars.PGSSLMODE
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}

	return cfg, nil
}

// resolveFromGranularParams builds a ConnectionConfig from flags,
// environment variables, and the project config, with flag > env > yaml >
// default precedence per parameter.
func resolveFromGranularParams(
	flags *GranularConnFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*ltlimport.ConnectionConfig, error) {
	cfg := &ltlimport.ConnectionConfig{
		AuthMethod:       ltlimport.AuthMethodStandard,
		AdditionalParams: make(map[string]string),
	}

	var pc config.ConnectionConfig
	if projectConfig != nil {
		pc = projectConfig.Connection
	}

	cfg.Host = flags.Host
	if cfg.Host == "" {
		cfg.Host = envVars.PGHOST
	}
	if cfg.Host == "" {
		cfg.Host = pc.Host
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}

	if flags.Port != 0 {
		cfg.Port = flags.Port
	} else if envVars.PGPORT != "" {
		port, err := strconv.Atoi(envVars.PGPORT)
		if err != nil {
			return nil, fmt.Errorf("invalid $PGPORT value '%s': must be an integer", envVars.PGPORT)
		}
		cfg.Port = port
	} else if pc.Port != 0 {
		cfg.Port = pc.Port
	} else {
		cfg.Port = 5432
	}

	cfg.Username = flags.Username
	if cfg.Username == "" {
		cfg.Username = envVars.PGUSER
	}
	if cfg.Username == "" {
		cfg.Username = pc.Username
	}
	if cfg.Username == "" {
		if currentUser := os.Getenv("USER"); currentUser != "" {
			cfg.Username = currentUser
		} else if currentUser := os.Getenv("USERNAME"); currentUser != "" {
			cfg.Username = currentUser
		}
	}

	cfg.Password = envVars.PGPASSWORD

	cfg.Database = envVars.PGDATABASE
	if cfg.Database == "" {
		cfg.Database = pc.Database
	}

	cfg.SSLMode = flags.SSLMode
	if cfg.SSLMode == "" {
		cfg.SSLMode = envVars.PGSSLMODE
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = pc.SSLMode
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}

	return cfg, nil
}
