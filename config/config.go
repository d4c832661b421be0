// Package config loads generator settings from an optional bindgen.toml.
//
// The file is searched for from a start directory upward to the filesystem
// root. All keys are optional; command-line flags override file values.
//
//	out_dir = "src/bindings"
//	formatter = "prettier"
//	skip = ["debug-dump"]
//	interfaces = ["greeter"]
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/bindgen/errors"
	"github.com/wippyai/bindgen/postprocess"
)

// FileName is the configuration file looked up by Find.
const FileName = "bindgen.toml"

// Config holds generator settings
type Config struct {
	// OutDir is where artifacts are written; relative paths resolve against
	// the directory holding the config file.
	OutDir     string   `toml:"out_dir"`
	Formatter  string   `toml:"formatter"`
	Skip       []string `toml:"skip"`
	Interfaces []string `toml:"interfaces"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{OutDir: "."}
}

// Find walks from startDir toward the root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !stderrors.Is(err, os.ErrNotExist) {
			return "", false, errors.New(errors.PhaseConfig, errors.KindIO).
				Path(candidate).
				Detail("stat config").
				Cause(err).
				Build()
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load parses the file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path(path).
			Detail("parse TOML").
			Cause(err).
			Build()
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(path).
			Value(undecoded[0].String()).
			Detail("unknown key %q", undecoded[0].String()).
			Build()
	}
	if !filepath.IsAbs(cfg.OutDir) {
		cfg.OutDir = filepath.Join(filepath.Dir(path), cfg.OutDir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover finds and loads the nearest config file. When none exists it
// returns Default and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if _, err := postprocess.ParseFormatter(c.Formatter); err != nil {
		return err
	}
	if c.OutDir == "" {
		return errors.InvalidInput(errors.PhaseConfig, "out_dir must not be empty")
	}
	return nil
}

// FormatterKind returns the parsed formatter setting.
func (c Config) FormatterKind() postprocess.Formatter {
	f, _ := postprocess.ParseFormatter(c.Formatter)
	return f
}
