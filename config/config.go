// config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port              string        `yaml:"port"`
	RequestTimeoutStr string        `yaml:"request_timeout"`
	RequestTimeout    time.Duration `yaml:"-"` // Parsed duration
}

// DatabaseConfig holds the connection options for the MariaDB/MySQL store.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Charset  string `yaml:"charset"`

	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetimeStr string        `yaml:"conn_max_lifetime"`
	ConnMaxLifetime    time.Duration `yaml:"-"` // Parsed duration
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Environment variables that override values from the config file.
const (
	EnvDBHost     = "SKYSQL_DB_HOST"
	EnvDBPort     = "SKYSQL_DB_PORT"
	EnvDBUser     = "SKYSQL_DB_USER"
	EnvDBPassword = "SKYSQL_DB_PASSWORD"
	EnvDBName     = "SKYSQL_DB_NAME"
	EnvDBCharset  = "SKYSQL_DB_CHARSET"
	EnvServerPort = "SKYSQL_SERVER_PORT"
	EnvLogLevel   = "SKYSQL_LOG_LEVEL"
)

// Default returns the configuration used when no file or environment
// overrides are present: a local XAMPP-style MariaDB.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8000",
			RequestTimeoutStr: "30s",
		},
		Database: DatabaseConfig{
			Host:               "localhost",
			Port:               "3306",
			User:               "root",
			Password:           "",
			DBName:             "skysql_intelligence",
			Charset:            "utf8mb4",
			MaxOpenConns:       25,
			MaxIdleConns:       5,
			ConnMaxLifetimeStr: "5m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at
// configPath, a .env file in the working directory and finally SKYSQL_*
// environment variables, in that order of precedence (last wins).
// An empty configPath searches the usual locations and falls back to
// defaults when none exists.
func LoadConfig(configPath string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if configPath == "" {
		potentialPaths := []string{
			"config.yaml",
			"config/config.yaml",
			"../config/config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrides := map[string]*string{
		EnvDBHost:     &cfg.Database.Host,
		EnvDBPort:     &cfg.Database.Port,
		EnvDBUser:     &cfg.Database.User,
		EnvDBPassword: &cfg.Database.Password,
		EnvDBName:     &cfg.Database.DBName,
		EnvDBCharset:  &cfg.Database.Charset,
		EnvServerPort: &cfg.Server.Port,
		EnvLogLevel:   &cfg.Logging.Level,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}
}

func (c *Config) parseDurations() error {
	var err error
	if c.Server.RequestTimeoutStr != "" {
		c.Server.RequestTimeout, err = time.ParseDuration(c.Server.RequestTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse server.request_timeout: %w", err)
		}
	} else {
		c.Server.RequestTimeout = 30 * time.Second
	}

	if c.Database.ConnMaxLifetimeStr != "" {
		c.Database.ConnMaxLifetime, err = time.ParseDuration(c.Database.ConnMaxLifetimeStr)
		if err != nil {
			return fmt.Errorf("failed to parse database.conn_max_lifetime: %w", err)
		}
	} else {
		c.Database.ConnMaxLifetime = 5 * time.Minute
	}

	if _, err := strconv.Atoi(c.Database.Port); err != nil {
		return fmt.Errorf("invalid database port %q: %w", c.Database.Port, err)
	}
	return nil
}
