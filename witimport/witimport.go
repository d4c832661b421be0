// Package witimport turns resolved WIT documents into the interface model
// consumed by code generators.
//
// Input is the JSON form of a resolved WIT package set, as produced by
// `wasm-tools component wit --json`. Every named interface in the document
// becomes one *idl.Interface. Named types declared in, or used by, an
// interface are registered as its type definitions in declaration order.
// Resource methods are attached to their resource; constructors and static
// functions are not supported by the guest calling convention and are
// skipped.
package witimport

import (
	"io"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/bindgen/errors"
	"github.com/wippyai/bindgen/idl"
)

// Options control conversion.
type Options struct {
	// Skip lists functions to omit. Free functions are matched by name,
	// resource methods by "resource.method".
	Skip []string
}

func (o Options) skipped(name string) bool {
	for _, s := range o.Skip {
		if s == name {
			return true
		}
	}
	return false
}

// Load reads a WIT JSON document from path ("-" reads stdin) and converts it.
func Load(path string, opts Options) ([]*idl.Interface, error) {
	res, err := wit.LoadJSON(path)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Path(path).
			Detail("load WIT document").
			Cause(err).
			Build()
	}
	return Convert(res, opts)
}

// Decode reads a WIT JSON document from r and converts it.
func Decode(r io.Reader, opts Options) ([]*idl.Interface, error) {
	res, err := wit.DecodeJSON(r)
	if err != nil {
		return nil, errors.ParseFailed("WIT document", err)
	}
	return Convert(res, opts)
}

// Convert builds one interface per named WIT interface in res.
func Convert(res *wit.Resolve, opts Options) ([]*idl.Interface, error) {
	var out []*idl.Interface
	for _, wi := range res.Interfaces {
		if wi.Name == nil {
			continue
		}
		iface, err := convertInterface(res, wi, opts)
		if err != nil {
			return nil, err
		}
		Logger().Debug("converted interface",
			zap.String("interface", iface.Name),
			zap.Int("typedefs", len(iface.TypeDefs)),
			zap.Int("functions", len(iface.Functions)),
			zap.Int("methods", len(iface.Methods())))
		out = append(out, iface)
	}
	return out, nil
}

// Select returns the interfaces named in names, in the order given. An empty
// names list selects everything.
func Select(ifaces []*idl.Interface, names []string) ([]*idl.Interface, error) {
	if len(names) == 0 {
		return ifaces, nil
	}

	byName := make(map[string]*idl.Interface, len(ifaces))
	for _, iface := range ifaces {
		if _, dup := byName[iface.Name]; !dup {
			byName[iface.Name] = iface
		}
	}

	out := make([]*idl.Interface, 0, len(names))
	for _, name := range names {
		iface, ok := byName[name]
		if !ok {
			return nil, errors.NotFound(errors.PhaseResolve, "interface", name)
		}
		out = append(out, iface)
	}
	return out, nil
}
