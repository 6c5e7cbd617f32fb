package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/logging"
	"github.com/linesmerrill/court-docket-api/models"
)

// Store drivers
const (
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds the project config values
type Config struct {
	URL            string        `envconfig:"DB_URI"`
	DatabaseName   string        `envconfig:"DB_NAME" default:"court"`
	BaseURL        string        `envconfig:"BASE_URL"`
	Port           string        `envconfig:"PORT" default:"8080"`
	Environment    string        `envconfig:"ENVIRONMENT" default:"development"`
	StoreDriver    string        `envconfig:"STORE_DRIVER" default:"memory"`
	SQLitePath     string        `envconfig:"SQLITE_PATH" default:"court.db"`
	PasswordScheme string        `envconfig:"PASSWORD_SCHEME" default:"bcrypt"`
	QueryTimeout   time.Duration `envconfig:"QUERY_TIMEOUT" default:"10s"`
	DigestSchedule string        `envconfig:"DIGEST_SCHEDULE" default:"0 6 * * *"`
	DigestWindow   time.Duration `envconfig:"DIGEST_WINDOW" default:"24h"`
}

// New sets up all config related services
func New() *Config {
	conf := &Config{}
	err := envconfig.Process("", conf)

	//setup zap logger and replace default logger
	logger, logErr := setLogger(conf.Environment)
	if logErr != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	if err != nil {
		zap.S().Warnw("failed to process environment, using defaults", "error", err)
		conf = defaults()
	}
	return conf
}

func defaults() *Config {
	return &Config{
		DatabaseName:   "court",
		Port:           "8080",
		Environment:    "development",
		StoreDriver:    StoreMemory,
		SQLitePath:     "court.db",
		PasswordScheme: "bcrypt",
		QueryTimeout:   10 * time.Second,
		DigestSchedule: "0 6 * * *",
		DigestWindow:   24 * time.Hour,
	}
}

func setLogger(environment string) (*zap.Logger, error) {
	return logging.New(environment)
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	resp := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		resp.Response.Category = domainErr.Category
		resp.Response.Detail = domainErr.Detail
		resp.Response.Invalid = domainErr.Invalid
	} else if err != nil {
		resp.Response.Detail = err.Error()
	}

	if httpStatusCode >= http.StatusInternalServerError {
		zap.S().Errorw(message, "error", err)
	} else {
		zap.S().Debugw(message, "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
