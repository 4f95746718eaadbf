// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the configuration of the backend.
type Config struct {
	APIURL           *url.URL
	Port             string
	GinMode          string // Empty when GIN_MODE is not set
	LogFormat        string // Empty when LOG_FORMAT is not set
	DBDriver         string
	DatabaseURL      string
	DataDir          string
	JWTSecret        []byte
	CORSAllowOrigins []string
	EnablePprof      bool
	Locale           string
	Currency         string
}

// Load reads the environment into a Config. Variables from a .env file in
// the working directory are added to the environment if they are not set yet.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv reads the configuration from the environment.
func FromEnv() (Config, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, errors.New("environment variable API_URL must be set")
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	pprof, err := strconv.ParseBool(getEnv("ENABLE_PPROF", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable ENABLE_PPROF must be a boolean: %w", err)
	}

	cfg := Config{
		APIURL:           u,
		Port:             getEnv("PORT", "8080"),
		GinMode:          os.Getenv("GIN_MODE"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DataDir:          getEnv("DATA_DIR", "data"),
		JWTSecret:        []byte(os.Getenv("JWT_SECRET")),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      pprof,
		Locale:           getEnv("LOCALE", "pt-BR"),
		Currency:         getEnv("CURRENCY", "BRL"),
	}

	return cfg, cfg.Validate()
}

// Validate returns an error describing all invalid settings.
func (c Config) Validate() error {
	var errs []error

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, errors.New("API_URL must be an absolute URL"))
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q: must be a number between 1 and 65535", c.Port))
	}

	switch c.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL must be set for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid database driver %q: must be one of %s, %s", c.DBDriver, DriverSQLite, DriverPostgres))
	}

	if len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 16 bytes long"))
	}

	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("invalid locale %q: %w", c.Locale, err))
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		errs = append(errs, fmt.Errorf("invalid currency %q: %w", c.Currency, err))
	}

	return errors.Join(errs...)
}

// DSN returns the data source name for the configured database driver.
//
// For SQLite, the database is a file in the data directory.
func (c Config) DSN() string {
	if c.DBDriver == DriverPostgres || c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return filepath.Join(c.DataDir, "moneta.db")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
