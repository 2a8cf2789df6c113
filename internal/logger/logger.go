package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/songquiz/internal/config"
)

// New builds a console logger writing to stderr. Only warnings are shown
// unless verbose logging is enabled.
func New(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zc.DisableStacktrace = true
	zc.DisableCaller = true

	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zc.DisableCaller = false
	}

	return zc.Build()
}
