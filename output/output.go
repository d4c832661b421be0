// Package output writes generated artifacts to disk.
//
// A Writer leaves files whose contents are already up to date untouched, so
// build tools watching the output directory do not see spurious changes.
package output

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/wippyai/bindgen"
	"github.com/wippyai/bindgen/errors"
)

// Result reports what happened to one artifact.
type Result struct {
	Path    string
	Written bool
}

// Writer writes artifacts under Dir
type Writer struct {
	Dir    string
	Logger *zap.Logger
}

// NewWriter returns a writer rooted at dir.
func NewWriter(dir string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{Dir: dir, Logger: logger}
}

// Write stores a, creating parent directories. The file is not rewritten
// when its current contents hash equal to the new ones.
func (w *Writer) Write(a bindgen.Artifact) (Result, error) {
	path := filepath.Join(w.Dir, a.Path)
	res := Result{Path: path}

	same, err := unchanged(path, a.Contents)
	if err != nil {
		return res, errors.WriteFailed(path, err)
	}
	if same {
		w.Logger.Debug("artifact unchanged", zap.String("path", path))
		return res, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return res, errors.WriteFailed(path, err)
	}
	if err := os.WriteFile(path, []byte(a.Contents), 0o644); err != nil {
		return res, errors.WriteFailed(path, err)
	}

	w.Logger.Debug("artifact written", zap.String("path", path), zap.Int("bytes", len(a.Contents)))
	res.Written = true
	return res, nil
}

// unchanged streams the file at path through xxhash and compares it with
// contents. A missing file or a size mismatch is reported as changed without
// reading.
func unchanged(path, contents string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() != int64(len(contents)) {
		return false, nil
	}

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return false, err
	}
	return h.Sum64() == xxhash.Sum64String(contents), nil
}
