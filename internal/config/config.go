// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/budget-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrAPIURLNotSet   = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid  = errors.New("environment variable API_URL must be a valid URL")
	ErrDriverInvalid  = errors.New("environment variable DB_DRIVER is invalid")
	ErrGinModeInvalid = errors.New("environment variable GIN_MODE is invalid")
	ErrTimeoutInvalid = errors.New("environment variable SHUTDOWN_TIMEOUT must be a positive duration")
)

// Config is the configuration of the backend.
type Config struct {
	APIURL           *url.URL      // External URL of the API, used for links
	Port             string        // Port to listen on
	DBDriver         string        // One of models.Drivers
	DBDSN            string        // Data source name for the driver
	LogFormat        string        // "human" or "json". Empty lets the gin mode decide
	GinMode          string        // gin mode, "release" unless set
	CORSAllowOrigins []string      // Allowed origins, glob patterns are supported
	EnablePprof      bool          // Register pprof endpoints
	ShutdownTimeout  time.Duration // Time that running requests get to finish on shutdown
}

// Load reads an optional .env file and then the configuration from the environment.
//
// Variables already set in the environment take precedence over the .env file.
func Load(files ...string) (Config, error) {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	if err == nil {
		log.Debug().Strs("files", files).Msg("Loaded environment files")
	}

	return FromEnv()
}

// FromEnv reads the configuration from the environment.
func FromEnv() (Config, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLNotSet
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("%w: '%s'", ErrAPIURLInvalid, apiURL)
	}

	cfg := Config{
		APIURL:           u,
		Port:             getEnv("PORT", "8080"),
		DBDriver:         getEnv("DB_DRIVER", models.DriverSQLite),
		DBDSN:            getEnv("DB_DSN", "data/budgets.db"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		GinMode:          getEnv("GIN_MODE", gin.ReleaseMode),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
	}

	if !slices.Contains(models.Drivers, cfg.DBDriver) {
		return Config{}, fmt.Errorf("%w: '%s', must be one of %s", ErrDriverInvalid, cfg.DBDriver, strings.Join(models.Drivers, ", "))
	}

	if !slices.Contains([]string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}, cfg.GinMode) {
		return Config{}, fmt.Errorf("%w: '%s'", ErrGinModeInvalid, cfg.GinMode)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("%w: '%s'", ErrTimeoutInvalid, os.Getenv("SHUTDOWN_TIMEOUT"))
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

// HumanLogs reports if logs are written in human readable format.
//
// Without explicit LOG_FORMAT, logs are human readable in debug mode
// and JSON otherwise.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == gin.DebugMode
	}

	return c.LogFormat == "human"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
