// Package logs builds the process-wide slog.Logger from config: JSON output
// for machine ingestion, text when the pretty flag asks for readable output.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"cinelog/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds the logger's dependencies, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the root slog.Logger. Handler choice and level both come from
// the environment section of the config.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if params.Config.Env.Log.Pretty {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	return logger, nil
}

// parseLogLevel maps the configured level name onto slog.Level. Unknown
// names are an error rather than a silent default.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
