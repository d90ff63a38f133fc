package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/tracewell/sqlsanitize/sqltrace"
)

// DatabaseConfig names one entry under the "databases" key of
// sqlsanitize.yaml: a driver name ("sqlserver" or "pgx") and a DSN to open
// it with. Unlike the socks5/Azure-AD-aware config this is adapted from,
// sqlsanitize only ever observes a connection - it never needs an
// authenticated tunnel to a production database, so the DSN is opened
// as-is via sqltrace.Open.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

func (dbcfg DatabaseConfig) Open(_ context.Context, log logrus.FieldLogger) (sqltrace.DB, error) {
	db, err := sqltrace.Open(dbcfg.Driver, dbcfg.DSN)
	if err != nil {
		return nil, err
	}
	return sqltrace.Wrap(db, log), nil
}

// Config is the top-level shape of sqlsanitize.yaml: named database
// connections the query command can run against, plus a cache capacity and
// log level the root command applies before any subcommand runs.
type Config struct {
	Databases     map[string]DatabaseConfig `yaml:"databases"`
	CacheCapacity int                       `yaml:"cache_capacity"`
	LogLevel      string                    `yaml:"log_level"`
}

func LoadConfig(filename string) (Config, error) {
	var result Config

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Config{}, nil
	}

	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(contents, &result); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return result, nil
}

func (c Config) database(name string) (DatabaseConfig, error) {
	dbcfg, ok := c.Databases[name]
	if !ok {
		return DatabaseConfig{}, errors.New("no such database in " + path.Base(configFile) + ": " + name)
	}
	return dbcfg, nil
}
