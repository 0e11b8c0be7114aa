// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the playfair command.
// The cipher packages themselves never log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var (
	// ErrInvalidLevel indicates an unknown log level name.
	ErrInvalidLevel = errors.New("logging: invalid level")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("logging: invalid format")
)

// Config selects verbosity and encoding.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is FormatJSON or FormatConsole.
	Format string `mapstructure:"format"`
}

// New returns a logger writing to out.
// Returns ErrInvalidLevel or ErrInvalidFormat (wrapped) for bad settings.
func New(cfg Config, out io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidLevel, cfg.Level)
	}

	var enc zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case FormatConsole, "":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidFormat, cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))

	return zap.New(core), nil
}
