package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"madison/config"
	"madison/shared/logger"
)

func restoreGlobals(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalFormat
	})
}

func TestInitLogger(t *testing.T) {
	restoreGlobals(t)

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}
}

func TestErrorWithStack(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("booking insert failed"))

	if !bytes.Contains(buf.Bytes(), []byte("booking insert failed")) {
		t.Errorf("expected log output to contain the error message, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "trace", logLevel: "trace", expectedLevel: zerolog.TraceLevel},
		{name: "debug", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "fatal", logLevel: "fatal", expectedLevel: zerolog.FatalLevel},
		{name: "panic", logLevel: "panic", expectedLevel: zerolog.PanicLevel},
		{name: "disabled", logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{name: "unknown level falls back to trace", logLevel: "verbose", expectedLevel: zerolog.TraceLevel},
		{name: "empty level parses as NoLevel", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)

			var buf bytes.Buffer
			log.Logger = log.Output(&buf)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expectedLevel {
				t.Errorf("expected global level %s, got %s", tt.expectedLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestInitThenSetLogLevel(t *testing.T) {
	restoreGlobals(t)

	logger.InitLogger()

	cfg := &config.Config{}
	cfg.Server.LogLevel = "info"
	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected global level %s, got %s", zerolog.InfoLevel, zerolog.GlobalLevel())
	}

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("redis unavailable"))

	if !bytes.Contains(buf.Bytes(), []byte("redis unavailable")) {
		t.Error("expected error output after level change")
	}
}
