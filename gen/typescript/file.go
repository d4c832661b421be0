package typescript

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/bindgen"
	"github.com/wippyai/bindgen/casing"
	"github.com/wippyai/bindgen/errors"
	"github.com/wippyai/bindgen/idl"
	"github.com/wippyai/bindgen/jscodec"
	"github.com/wippyai/bindgen/postprocess"
	"github.com/wippyai/bindgen/typeinfo"
)

const (
	tsNoCheck  = "// @ts-nocheck\n"
	resultType = "export type Result<T, E> = { tag: 'ok', val: T } | { tag: 'err', val: E };\n"
	extension  = ".ts"
)

// Filename is the output path for an interface.
func Filename(iface *idl.Interface) string {
	return casing.Kebab(iface.Name) + extension
}

// ToFile renders the interface and runs the configured formatter.
func (t *TypeScript) ToFile(ctx context.Context) (bindgen.Artifact, error) {
	start := time.Now()
	if err := t.checkFlags(); err != nil {
		return bindgen.Artifact{}, err
	}
	t.codec = jscodec.NewPrinter(t.iface)

	var decoders, encoders, typedefs, functions []string
	for _, td := range t.iface.TypeDefs {
		if t.infos.Get(td.ID).Contains(typeinfo.Result) {
			decoders = append(decoders, t.codec.DeserializeTypeDef(td.ID))
		}
	}
	for _, td := range t.iface.TypeDefs {
		if t.infos.Get(td.ID).Contains(typeinfo.Param) {
			encoders = append(encoders, t.codec.SerializeTypeDef(td.ID))
		}
	}
	for _, td := range t.iface.TypeDefs {
		typedefs = append(typedefs, t.printTypeDef(td.ID))
	}
	for _, f := range t.iface.Functions {
		functions = append(functions, t.printFunction(f))
	}

	var b strings.Builder
	b.WriteString(tsNoCheck)
	if t.throws() {
		b.WriteString(resultType)
	}
	for _, section := range [][]string{{t.codec.Utils()}, decoders, encoders, typedefs, functions} {
		for _, frag := range section {
			if frag == "" {
				continue
			}
			b.WriteString("\n")
			b.WriteString(frag)
		}
	}
	contents := b.String()

	formatted, err := postprocess.Run(ctx, t.opts.Formatter, contents)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) && len(e.Path) == 0 {
			e.Path = []string{t.iface.Name}
		}
		return bindgen.Artifact{}, err
	}

	Logger().Debug("generated typescript bindings",
		zap.String("interface", t.iface.Name),
		zap.Int("typedefs", len(t.iface.TypeDefs)),
		zap.Int("functions", len(t.iface.Functions)),
		zap.Int("decoders", len(decoders)),
		zap.Int("encoders", len(encoders)),
		zap.Duration("elapsed", time.Since(start)))

	return bindgen.Artifact{Path: Filename(t.iface), Contents: formatted}, nil
}

// throws reports whether any free function or resource method can fail.
func (t *TypeScript) throws() bool {
	for _, f := range typeinfo.Functions(t.iface) {
		if f.Throws() {
			return true
		}
	}
	return false
}

// checkFlags rejects flags sets whose bits a JavaScript number cannot hold.
func (t *TypeScript) checkFlags() error {
	for _, td := range t.iface.TypeDefs {
		f, ok := td.Kind.(*idl.Flags)
		if !ok || len(f.Fields) <= idl.MaxFlagsFields {
			continue
		}
		return errors.New(errors.PhaseGenerate, errors.KindUnsupported).
			Path(t.iface.Name, td.Name).
			WitType("flags").
			Detail("%d fields exceed the limit of %d", len(f.Fields), idl.MaxFlagsFields).
			Build()
	}
	return nil
}
