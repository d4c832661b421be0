package typescript

import (
	"github.com/wippyai/bindgen"
	"github.com/wippyai/bindgen/idl"
	"github.com/wippyai/bindgen/jscodec"
	"github.com/wippyai/bindgen/postprocess"
	"github.com/wippyai/bindgen/typeinfo"
)

// Builder configures the TypeScript backend
type Builder struct {
	// Formatter optionally reformats the output; None keeps it as emitted.
	Formatter postprocess.Formatter
}

var _ bindgen.GeneratorBuilder = Builder{}

// Build computes usage flags over free functions and resource methods and
// returns the generator for iface.
func (b Builder) Build(iface *idl.Interface) bindgen.Generator {
	return NewWithInfos(b, iface, typeinfo.Collect(iface, typeinfo.Functions(iface)))
}

// TypeScript renders one interface. It only reads the interface.
type TypeScript struct {
	opts  Builder
	iface *idl.Interface
	infos typeinfo.Infos
	codec *jscodec.Printer
}

// NewWithInfos returns a generator using precomputed usage flags.
func NewWithInfos(opts Builder, iface *idl.Interface, infos typeinfo.Infos) *TypeScript {
	return &TypeScript{
		opts:  opts,
		iface: iface,
		infos: infos,
		codec: jscodec.NewPrinter(iface),
	}
}
