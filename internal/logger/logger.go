package logger

import (
	"go.uber.org/zap"
)

// NewNamed creates a named zap logger tuned for the given environment:
// JSON output at info level in production, console output at debug level
// otherwise.
func NewNamed(env, name string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
