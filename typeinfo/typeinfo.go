// Package typeinfo computes, per type definition, whether it is reachable
// from a function parameter and/or a function result.
//
// Backends use the result to emit encoders only for parameter-reachable
// definitions and decoders only for result-reachable ones. Propagation is
// transitive through aliases, composite payloads and anonymous types, and
// terminates on recursive definitions.
package typeinfo

import (
	"github.com/wippyai/bindgen/idl"
)

// Info is a bit set of usage flags
type Info uint8

const (
	// Param marks definitions reachable from a parameter position.
	Param Info = 1 << iota
	// Result marks definitions reachable from a result position.
	Result
)

// Contains reports whether all bits of other are set.
func (i Info) Contains(other Info) bool {
	return i&other == other
}

func (i Info) String() string {
	switch i {
	case 0:
		return "none"
	case Param:
		return "param"
	case Result:
		return "result"
	default:
		return "param|result"
	}
}

// Infos holds one Info per type definition, indexed by TypeDefID
type Infos []Info

// Get returns the flags for id; unknown ids have no flags.
func (in Infos) Get(id idl.TypeDefID) Info {
	if int(id) >= len(in) {
		return 0
	}
	return in[id]
}

// Functions returns the free functions followed by every resource method,
// which together are the roots of the usage analysis.
func Functions(iface *idl.Interface) []*idl.Function {
	funcs := make([]*idl.Function, 0, len(iface.Functions))
	funcs = append(funcs, iface.Functions...)
	return append(funcs, iface.Methods()...)
}

// Collect computes usage flags for every definition of iface, starting from
// the parameters and results of funcs.
func Collect(iface *idl.Interface, funcs []*idl.Function) Infos {
	c := &collector{
		iface: iface,
		infos: make(Infos, len(iface.TypeDefs)),
	}
	for _, f := range funcs {
		for _, p := range f.Params {
			c.mark(p.Type, Param)
		}
		for _, t := range f.Result.Types() {
			c.mark(t, Result)
		}
	}
	return c.infos
}

type collector struct {
	iface *idl.Interface
	infos Infos
}

func (c *collector) mark(t idl.Type, flag Info) {
	switch t := t.(type) {
	case idl.Tuple:
		for _, e := range t.Types {
			c.mark(e, flag)
		}
	case idl.List:
		c.mark(t.Elem, flag)
	case idl.Option:
		c.mark(t.Type, flag)
	case idl.Result:
		if t.OK != nil {
			c.mark(t.OK, flag)
		}
		if t.Err != nil {
			c.mark(t.Err, flag)
		}
	case idl.ID:
		c.markDef(idl.TypeDefID(t), flag)
	}
}

func (c *collector) markDef(id idl.TypeDefID, flag Info) {
	td := c.iface.TypeDef(id)
	if td == nil || c.infos[id].Contains(flag) {
		return
	}
	c.infos[id] |= flag

	switch k := td.Kind.(type) {
	case *idl.Alias:
		c.mark(k.Type, flag)
	case *idl.Record:
		for _, f := range k.Fields {
			c.mark(f.Type, flag)
		}
	case *idl.Variant:
		for _, cs := range k.Cases {
			if cs.Type != nil {
				c.mark(cs.Type, flag)
			}
		}
	case *idl.Union:
		for _, cs := range k.Cases {
			c.mark(cs.Type, flag)
		}
	}
}
