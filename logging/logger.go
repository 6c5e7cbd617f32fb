package logging

import "go.uber.org/zap"

// New creates a new zap logger for the given environment
func New(environment string) (*zap.Logger, error) {
	switch environment {
	case "production":
		return zap.NewProduction()
	case "local":
		return zap.NewExample(), nil
	default:
		return zap.NewDevelopment()
	}
}
