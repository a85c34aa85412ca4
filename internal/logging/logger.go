package logging

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the plugin logger.
// Stdout belongs to the launcher protocol, so logs only ever go to logFile.
// An empty logFile disables logging.
func NewLogger(logFile, level string, debug bool) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}

	logLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if debug {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create log directory for %s", logFile)
	}

	// zap path sinks read a Windows drive letter as a URL scheme, so the file is opened here.
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", logFile)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), logLevel)

	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(file))), nil
}

// ParseLevel parses a textual log level, defaulting to info
func ParseLevel(level string) (zap.AtomicLevel, error) {
	if level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	logLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.AtomicLevel{}, errors.Wrapf(err, "invalid log level %q", level)
	}
	return logLevel, nil
}
