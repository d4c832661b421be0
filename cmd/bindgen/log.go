package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/bindgen/gen/typescript"
	"github.com/wippyai/bindgen/postprocess"
	"github.com/wippyai/bindgen/witimport"
)

// levelFor maps the -v count to a log level; warnings are always shown.
func levelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity >= 2:
		return zapcore.DebugLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

// setupLogging builds a console logger and installs it in every package that
// logs.
func setupLogging(cmd *cobra.Command) (*zap.Logger, error) {
	verbosity, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(levelFor(verbosity))
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if useColor(cmd, os.Stderr) {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	typescript.SetLogger(logger.Named("typescript"))
	postprocess.SetLogger(logger.Named("postprocess"))
	witimport.SetLogger(logger.Named("witimport"))
	return logger, nil
}
