// SPDX-License-Identifier: EPL-2.0

// Package logging holds the process-wide zap logger used by the loader and
// the command line host. It discards everything until Init is called.
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const unknownTrace = "trace-unknown"

type Config struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

var (
	baseLogger *zap.Logger
	sugar      *zap.SugaredLogger
	traceID    atomic.Value
	mixID      uint64
)

func init() {
	baseLogger = zap.NewNop()
	sugar = baseLogger.Sugar()
}

// InitFromEnv reads LOG_LEVEL and LOG_FORMAT.
func InitFromEnv() error {
	return Init(Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	})
}

// Init replaces the logger. Level defaults to info and Format to console;
// json selects the production encoder. Output goes to stderr so the mixed
// audio can be written to stdout.
func Init(cfg Config) error {
	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" {
		level = "info"
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		format = "console"
	}

	var zapCfg zap.Config
	switch format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	atomLevel := zap.NewAtomicLevel()
	if err := atomLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}
	zapCfg.Level = atomLevel
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	baseLogger = logger
	sugar = logger.Sugar()
	return nil
}

func Sync() {
	if baseLogger != nil {
		_ = baseLogger.Sync()
	}
}

func SetTraceID(id string) {
	if strings.TrimSpace(id) == "" {
		return
	}
	traceID.Store(id)
}

// NewTraceID returns a random UUID for one run of the host.
func NewTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return unknownTrace
	}
	return id.String()
}

// StartMix numbers the next mix call; the number is attached to every line
// logged after it.
func StartMix() uint64 {
	return atomic.AddUint64(&mixID, 1)
}

func Debugf(format string, args ...any) {
	withFields().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	withFields().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	withFields().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	withFields().Errorf(format, args...)
}

func withFields() *zap.SugaredLogger {
	tid, _ := traceID.Load().(string)
	if tid == "" {
		tid = unknownTrace
	}
	fields := []any{"trace_id", tid}
	if current := atomic.LoadUint64(&mixID); current > 0 {
		fields = append(fields, "mix_id", current)
	}
	return sugar.With(fields...)
}
