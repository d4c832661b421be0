package jscodec

import (
	"fmt"
	"strings"

	"github.com/wippyai/bindgen/casing"
	"github.com/wippyai/bindgen/idl"
)

// Printer emits codec source for the types of one interface.
// A Printer is not safe for concurrent use.
type Printer struct {
	iface *idl.Interface
	used  map[string]struct{}
}

// NewPrinter creates a printer for iface.
func NewPrinter(iface *idl.Interface) *Printer {
	return &Printer{
		iface: iface,
		used:  make(map[string]struct{}),
	}
}

func (p *Printer) use(name string) string {
	p.used[name] = struct{}{}
	return name
}

// Deserializer returns the decoder class name and records its use.
func (p *Printer) Deserializer() string {
	return p.use("Deserializer")
}

// SerializeName is the encoder function name for a type definition.
func SerializeName(td *idl.TypeDef) string {
	return "serialize" + casing.UpperCamel(td.Name)
}

// DeserializeName is the decoder function name for a type definition.
func DeserializeName(td *idl.TypeDef) string {
	return "deserialize" + casing.UpperCamel(td.Name)
}

// Serialize returns statements appending expr, of type t, to `out`.
func (p *Printer) Serialize(t idl.Type, expr string) string {
	switch t := t.(type) {
	case idl.Bool:
		return p.use("serializeBool") + "(out, " + expr + ")"
	case idl.U8:
		return p.use("serializeU8") + "(out, " + expr + ")"
	case idl.U16:
		return p.use("serializeU16") + "(out, " + expr + ")"
	case idl.U32:
		return p.use("serializeU32") + "(out, " + expr + ")"
	case idl.U64:
		return p.use("serializeU64") + "(out, " + expr + ")"
	case idl.U128:
		return p.use("serializeU128") + "(out, " + expr + ")"
	case idl.S8:
		return p.use("serializeS8") + "(out, " + expr + ")"
	case idl.S16:
		return p.use("serializeS16") + "(out, " + expr + ")"
	case idl.S32:
		return p.use("serializeS32") + "(out, " + expr + ")"
	case idl.S64:
		return p.use("serializeS64") + "(out, " + expr + ")"
	case idl.S128:
		return p.use("serializeS128") + "(out, " + expr + ")"
	case idl.Float32:
		return p.use("serializeF32") + "(out, " + expr + ")"
	case idl.Float64:
		return p.use("serializeF64") + "(out, " + expr + ")"
	case idl.Char:
		return p.use("serializeChar") + "(out, " + expr + ")"
	case idl.String:
		return p.use("serializeString") + "(out, " + expr + ")"
	case idl.Tuple:
		stmts := make([]string, len(t.Types))
		for i, e := range t.Types {
			stmts[i] = p.Serialize(e, fmt.Sprintf("%s[%d]", expr, i))
		}
		return strings.Join(stmts, ";\n")
	case idl.List:
		if arr, ok := ArrayType(p.iface, t.Elem); ok && arr == "Uint8Array" {
			return p.use("serializeUint8Array") + "(out, " + expr + ")"
		}
		return p.use("serializeList") + "(out, " + p.serializeFn(t.Elem) + ", " + expr + ")"
	case idl.Option:
		return p.use("serializeOption") + "(out, " + p.serializeFn(t.Type) + ", " + expr + ")"
	case idl.Result:
		return p.use("serializeResult") + "(out, " + p.serializeFn(t.OK) + ", " + p.serializeFn(t.Err) + ", " + expr + ")"
	case idl.ID:
		return SerializeName(p.iface.TypeDefs[t]) + "(out, " + expr + ")"
	default:
		panic(fmt.Sprintf("jscodec: unexpected type %T", t))
	}
}

// serializeFn wraps Serialize in a callback; a nil type encodes nothing.
func (p *Printer) serializeFn(t idl.Type) string {
	if t == nil {
		return "(out, v) => {}"
	}
	return "(out, v) => { " + p.Serialize(t, "v") + " }"
}

// Deserialize returns an expression decoding a value of type t from `de`.
func (p *Printer) Deserialize(t idl.Type) string {
	switch t := t.(type) {
	case idl.Bool:
		return p.use("deserializeBool") + "(de)"
	case idl.U8:
		return p.use("deserializeU8") + "(de)"
	case idl.U16:
		return p.use("deserializeU16") + "(de)"
	case idl.U32:
		return p.use("deserializeU32") + "(de)"
	case idl.U64:
		return p.use("deserializeU64") + "(de)"
	case idl.U128:
		return p.use("deserializeU128") + "(de)"
	case idl.S8:
		return p.use("deserializeS8") + "(de)"
	case idl.S16:
		return p.use("deserializeS16") + "(de)"
	case idl.S32:
		return p.use("deserializeS32") + "(de)"
	case idl.S64:
		return p.use("deserializeS64") + "(de)"
	case idl.S128:
		return p.use("deserializeS128") + "(de)"
	case idl.Float32:
		return p.use("deserializeF32") + "(de)"
	case idl.Float64:
		return p.use("deserializeF64") + "(de)"
	case idl.Char:
		return p.use("deserializeChar") + "(de)"
	case idl.String:
		return p.use("deserializeString") + "(de)"
	case idl.Tuple:
		elems := make([]string, len(t.Types))
		for i, e := range t.Types {
			elems[i] = p.Deserialize(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case idl.List:
		arr, ok := ArrayType(p.iface, t.Elem)
		switch {
		case ok && arr == "Uint8Array":
			return p.use("deserializeUint8Array") + "(de)"
		case ok:
			return arr + ".from(" + p.use("deserializeList") + "(de, " + p.deserializeFn(t.Elem) + "))"
		default:
			return p.use("deserializeList") + "(de, " + p.deserializeFn(t.Elem) + ")"
		}
	case idl.Option:
		return p.use("deserializeOption") + "(de, " + p.deserializeFn(t.Type) + ")"
	case idl.Result:
		return p.use("deserializeResult") + "(de, " + p.deserializeFn(t.OK) + ", " + p.deserializeFn(t.Err) + ")"
	case idl.ID:
		return DeserializeName(p.iface.TypeDefs[t]) + "(de)"
	default:
		panic(fmt.Sprintf("jscodec: unexpected type %T", t))
	}
}

// deserializeFn wraps Deserialize in a callback; a nil type decodes to null.
func (p *Printer) deserializeFn(t idl.Type) string {
	if t == nil {
		return "(de) => null"
	}
	return "(de) => " + p.Deserialize(t)
}

// Indent prefixes every non-empty line of s with depth levels of four spaces.
func Indent(s string, depth int) string {
	prefix := strings.Repeat("    ", depth)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
