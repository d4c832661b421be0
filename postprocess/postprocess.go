// Package postprocess pipes generated source through an external formatter.
//
// The draft text is written to the tool's stdin and its stdout replaces the
// draft. Any failure, including a non-zero exit, is returned as an error;
// there is no fallback to unformatted output.
package postprocess

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/bindgen/errors"
)

// Formatter selects at most one external formatting tool
type Formatter int

const (
	None Formatter = iota
	Prettier
	Rome
)

func (f Formatter) String() string {
	switch f {
	case None:
		return "none"
	case Prettier:
		return "prettier"
	case Rome:
		return "rome"
	default:
		return "unknown"
	}
}

// ParseFormatter maps a configuration value to a Formatter. The empty
// string selects None.
func ParseFormatter(s string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "prettier":
		return Prettier, nil
	case "rome", "romefmt":
		return Rome, nil
	default:
		return None, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(s).
			Detail("unknown formatter %q (want none, prettier or rome)", s).
			Build()
	}
}

// Tool is one external command invocation
type Tool struct {
	Name string
	Args []string
}

// Tool returns the command for f; ok is false for None.
func (f Formatter) Tool() (Tool, bool) {
	switch f {
	case Prettier:
		return Tool{Name: "prettier", Args: []string{"--parser=typescript"}}, true
	case Rome:
		return Tool{Name: "rome", Args: []string{"format", "--stdin-file-path", "index.ts"}}, true
	default:
		return Tool{}, false
	}
}

// Run formats src with f. None returns src unchanged.
func Run(ctx context.Context, f Formatter, src string) (string, error) {
	tool, ok := f.Tool()
	if !ok {
		return src, nil
	}
	return RunTool(ctx, tool, src)
}

// RunTool runs tool with src on stdin and returns its stdout.
func RunTool(ctx context.Context, tool Tool, src string) (string, error) {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return "", errors.New(errors.PhaseFormat, errors.KindNotFound).
			Tool(tool.Name).
			Detail("formatter is not installed or not on PATH").
			Cause(err).
			Build()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, tool.Args...)
	cmd.Stdin = strings.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = "formatter failed"
		}
		return "", errors.Process(tool.Name, detail, err)
	}

	Logger().Debug("formatted output",
		zap.String("tool", tool.Name),
		zap.Int("bytes", stdout.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return stdout.String(), nil
}
