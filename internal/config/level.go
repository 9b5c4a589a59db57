package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-radar/dsp/core"
)

// Level returns the effective log level; Verbose forces debug.
func (c Config) Level() zapcore.Level {
	if c.Verbose {
		return zapcore.DebugLevel
	}
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func parseLevel(s string) (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: log_level %q: %w", s, core.ErrInvalidParameter)
	}
	return l, nil
}
