package logging

import "go.uber.org/zap"

// New creates a new zap logger for the given environment. production and
// development map to the zap presets of the same name, anything else gets the
// example logger used for local runs and tests.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
