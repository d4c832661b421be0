package main

import (
	"context"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/bindgen"
	"github.com/wippyai/bindgen/config"
	"github.com/wippyai/bindgen/errors"
	"github.com/wippyai/bindgen/gen/typescript"
	"github.com/wippyai/bindgen/idl"
	"github.com/wippyai/bindgen/output"
	"github.com/wippyai/bindgen/postprocess"
	"github.com/wippyai/bindgen/witimport"
)

var guestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Generate bindings for code running inside the webview",
}

var typescriptCmd = &cobra.Command{
	Use:   "typescript <wit.json>...",
	Short: "Generate TypeScript guest bindings",
	Long: "Generate one TypeScript module per WIT interface. Settings are read from the nearest " +
		config.FileName + " and overridden by flags.",
	Args: cobra.MinimumNArgs(1),
	RunE: typescriptExecution,
}

func init() {
	guestCmd.AddCommand(typescriptCmd)

	f := typescriptCmd.Flags()
	f.StringP("out-dir", "o", "", "directory to write bindings to")
	f.Bool("prettier", false, "format output with prettier")
	f.Bool("romefmt", false, "format output with rome")
	f.StringSlice("skip", nil, "functions to omit (name, or resource.method)")
	f.StringSlice("interface", nil, "only generate the named interfaces")
}

// settings merges the discovered config file with command-line flags.
func settings(cmd *cobra.Command, logger *zap.Logger) (config.Config, error) {
	cfg, path, err := config.Discover(".")
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		logger.Debug("loaded config", zap.String("path", path))
	}

	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		if cfg.OutDir, err = flags.GetString("out-dir"); err != nil {
			return config.Config{}, err
		}
	}
	if flags.Changed("skip") {
		if cfg.Skip, err = flags.GetStringSlice("skip"); err != nil {
			return config.Config{}, err
		}
	}
	if flags.Changed("interface") {
		if cfg.Interfaces, err = flags.GetStringSlice("interface"); err != nil {
			return config.Config{}, err
		}
	}

	prettier, err := flags.GetBool("prettier")
	if err != nil {
		return config.Config{}, err
	}
	rome, err := flags.GetBool("romefmt")
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Formatter, err = formatterFlag(cfg.Formatter, prettier, rome); err != nil {
		return config.Config{}, err
	}

	return cfg, cfg.Validate()
}

// formatterFlag applies the mutually exclusive formatter switches.
func formatterFlag(current string, prettier, rome bool) (string, error) {
	switch {
	case prettier && rome:
		return "", errors.Conflict(errors.PhaseConfig, "--prettier", "--romefmt")
	case prettier:
		return postprocess.Prettier.String(), nil
	case rome:
		return postprocess.Rome.String(), nil
	default:
		return current, nil
	}
}

func typescriptExecution(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger, err := setupLogging(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := settings(cmd, logger)
	if err != nil {
		return err
	}

	var ifaces []*idl.Interface
	for _, path := range args {
		loaded, err := witimport.Load(path, witimport.Options{Skip: cfg.Skip})
		if err != nil {
			return err
		}
		ifaces = append(ifaces, loaded...)
	}
	if ifaces, err = witimport.Select(ifaces, cfg.Interfaces); err != nil {
		return err
	}

	p := newPrinter(cmd)
	for _, iface := range ifaces {
		p.status("Generating", "%s", p.path(iface.Name))
	}

	builder := typescript.Builder{Formatter: cfg.FormatterKind()}
	artifacts, err := generateAll(cmd.Context(), builder, ifaces)
	if err != nil {
		return err
	}

	if err := uniquePaths(artifacts); err != nil {
		return err
	}

	w := output.NewWriter(cfg.OutDir, logger)
	for _, a := range artifacts {
		res, err := w.Write(a)
		if err != nil {
			return err
		}
		if res.Written {
			p.status("Wrote", "%s", p.path(res.Path))
		} else {
			p.status("Fresh", "%s", p.path(res.Path))
		}
	}

	p.finished(start)
	return nil
}

// generateAll renders every interface concurrently. Artifacts keep the order
// of ifaces; the first failure cancels the rest.
func generateAll(ctx context.Context, b bindgen.GeneratorBuilder, ifaces []*idl.Interface) ([]bindgen.Artifact, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	artifacts := make([]bindgen.Artifact, len(ifaces))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, iface := range ifaces {
		g.Go(func() error {
			a, err := bindgen.Generate(ctx, b, iface)
			if err != nil {
				return err
			}
			artifacts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// uniquePaths rejects two interfaces that would overwrite the same file.
func uniquePaths(artifacts []bindgen.Artifact) error {
	seen := make(map[string]struct{}, len(artifacts))
	for _, a := range artifacts {
		if _, dup := seen[a.Path]; dup {
			return errors.New(errors.PhaseWrite, errors.KindConflict).
				Path(a.Path).
				Detail("several interfaces map to %s", a.Path).
				Build()
		}
		seen[a.Path] = struct{}{}
	}
	return nil
}
