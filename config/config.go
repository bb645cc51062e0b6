package config

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/logging"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

const (
	defaultPort          = "8080"
	defaultQueryTimeout  = 10 * time.Second
	defaultAuditSchedule = "@hourly"
)

// Config holds the project config values
type Config struct {
	URL           string
	DatabaseName  string
	BaseURL       string
	Port          string
	Env           string
	JWTSecret     string
	QueryTimeout  time.Duration
	AuditSchedule string
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the platform provides the environment in production
	_ = godotenv.Load()

	env := os.Getenv("ENV")

	//setup zap logger and replace default logger
	logger, err := logging.New(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:           os.Getenv("DB_URI"),
		DatabaseName:  os.Getenv("DB_NAME"),
		BaseURL:       os.Getenv("BASE_URL"),
		Port:          getEnv("PORT", defaultPort),
		Env:           env,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		QueryTimeout:  getDuration("QUERY_TIMEOUT", defaultQueryTimeout),
		AuditSchedule: getEnv("AUDIT_SCHEDULE", defaultAuditSchedule),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		zap.S().Warnw("invalid duration, using default", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return d
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err. The error itself is only logged, callers get
// the message.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(zap.Error(err)).Errorw(message, "status", httpStatusCode)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.MessageResponse{Success: false, Message: message})
	w.Write(b)
}
