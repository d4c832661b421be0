package jscodec

import (
	"fmt"
	"strings"

	"github.com/wippyai/bindgen/casing"
	"github.com/wippyai/bindgen/idl"
)

// flagsRepr picks the integer used to carry a flags set: fields occupy bits
// 1..n, so up to 31 fields fit in a u32. Larger sets travel as a u64 and are
// capped at idl.MaxFlagsFields.
func flagsRepr(n int) idl.Type {
	if n <= 31 {
		return idl.U32{}
	}
	return idl.U64{}
}

// SerializeTypeDef returns the encoder function for definition id.
func (p *Printer) SerializeTypeDef(id idl.TypeDefID) string {
	td := p.iface.TypeDefs[id]
	var body []string

	switch k := td.Kind.(type) {
	case *idl.Alias:
		body = append(body, p.Serialize(k.Type, "val"))
	case *idl.Record:
		for _, f := range k.Fields {
			body = append(body, p.Serialize(f.Type, "val."+casing.LowerCamel(f.Name)))
		}
	case *idl.Flags:
		switch repr := flagsRepr(len(k.Fields)); repr.(type) {
		case idl.U32:
			body = append(body, p.Serialize(repr, "val"))
		default:
			body = append(body, p.Serialize(repr, "BigInt(val)"))
		}
	case *idl.Variant:
		var b strings.Builder
		b.WriteString("switch (val.tag) {\n")
		for i, c := range k.Cases {
			stmts := []string{p.Serialize(idl.U32{}, fmt.Sprint(i))}
			if c.Type != nil {
				stmts = append(stmts, p.Serialize(c.Type, "val.value"))
			}
			stmts = append(stmts, "break")
			fmt.Fprintf(&b, "    case %d:\n%s\n", i, Indent(strings.Join(stmts, "\n"), 2))
		}
		b.WriteString("    default:\n        throw new Error('unknown variant case ' + val.tag)\n}")
		body = append(body, b.String())
	case *idl.Enum:
		body = append(body, p.Serialize(idl.U32{}, "val"))
	case *idl.Union:
		for i, c := range k.Cases {
			stmts := strings.Join([]string{
				p.Serialize(idl.U32{}, fmt.Sprint(i)),
				p.Serialize(c.Type, "val"),
				"return",
			}, "\n")
			body = append(body, fmt.Sprintf("if (%s) {\n%s\n}", p.guard(c.Type, "val", nil), Indent(stmts, 1)))
		}
		body = append(body, "throw new Error('value matches no case of "+casing.UpperCamel(td.Name)+"')")
	case *idl.Resource:
		body = append(body, p.Serialize(idl.U32{}, casing.UpperCamel(td.Name)+".handleOf(val)"))
	}

	return fmt.Sprintf("function %s(out, val) {\n%s\n}\n", SerializeName(td), Indent(strings.Join(body, "\n"), 1))
}

// DeserializeTypeDef returns the decoder function for definition id.
func (p *Printer) DeserializeTypeDef(id idl.TypeDefID) string {
	td := p.iface.TypeDefs[id]
	var body string

	switch k := td.Kind.(type) {
	case *idl.Alias:
		body = "return " + p.Deserialize(k.Type)
	case *idl.Record:
		var b strings.Builder
		b.WriteString("return {\n")
		for _, f := range k.Fields {
			fmt.Fprintf(&b, "    %s: %s,\n", casing.LowerCamel(f.Name), p.Deserialize(f.Type))
		}
		b.WriteString("}")
		body = b.String()
	case *idl.Flags:
		switch repr := flagsRepr(len(k.Fields)); repr.(type) {
		case idl.U32:
			body = "return " + p.Deserialize(repr)
		default:
			body = "return Number(" + p.Deserialize(repr) + ")"
		}
	case *idl.Variant:
		var b strings.Builder
		b.WriteString("const tag = " + p.Deserialize(idl.U32{}) + "\n\nswitch (tag) {\n")
		for i, c := range k.Cases {
			fmt.Fprintf(&b, "    case %d:\n", i)
			if c.Type != nil {
				fmt.Fprintf(&b, "        return { tag: %d, value: %s }\n", i, p.Deserialize(c.Type))
			} else {
				fmt.Fprintf(&b, "        return { tag: %d }\n", i)
			}
		}
		b.WriteString("    default:\n        throw new Error('unknown variant case ' + tag)\n}")
		body = b.String()
	case *idl.Enum:
		body = fmt.Sprintf("const tag = %s\n\nif (tag >= %d) {\n    throw new Error('unknown enum case ' + tag)\n}\n\nreturn tag",
			p.Deserialize(idl.U32{}), len(k.Cases))
	case *idl.Union:
		var b strings.Builder
		b.WriteString("const tag = " + p.Deserialize(idl.U32{}) + "\n\nswitch (tag) {\n")
		for i, c := range k.Cases {
			fmt.Fprintf(&b, "    case %d:\n        return %s\n", i, p.Deserialize(c.Type))
		}
		b.WriteString("    default:\n        throw new Error('unknown union case ' + tag)\n}")
		body = b.String()
	case *idl.Resource:
		body = fmt.Sprintf("return new %s(%s)", casing.UpperCamel(td.Name), p.Deserialize(idl.U32{}))
	}

	return fmt.Sprintf("function %s(de) {\n%s\n}\n", DeserializeName(td), Indent(body, 1))
}

// guard returns a JS condition that holds when expr structurally matches t.
// Union encoders test guards in case order and pick the first match.
func (p *Printer) guard(t idl.Type, expr string, seen map[idl.TypeDefID]bool) string {
	switch t := t.(type) {
	case idl.Bool:
		return "typeof " + expr + " === 'boolean'"
	case idl.U8, idl.U16, idl.U32, idl.S8, idl.S16, idl.S32, idl.Float32, idl.Float64:
		return "typeof " + expr + " === 'number'"
	case idl.U64, idl.U128, idl.S64, idl.S128:
		return "typeof " + expr + " === 'bigint'"
	case idl.Char, idl.String:
		return "typeof " + expr + " === 'string'"
	case idl.Tuple:
		return fmt.Sprintf("Array.isArray(%s) && %s.length === %d", expr, expr, len(t.Types))
	case idl.List:
		if arr, ok := ArrayType(p.iface, t.Elem); ok {
			return expr + " instanceof " + arr
		}
		return "Array.isArray(" + expr + ")"
	case idl.Option:
		return expr + " === null || (" + p.guard(t.Type, expr, seen) + ")"
	case idl.Result:
		return "typeof " + expr + " === 'object' && " + expr + " !== null && (" +
			expr + ".tag === 'ok' || " + expr + ".tag === 'err')"
	case idl.ID:
		return p.guardDef(idl.TypeDefID(t), expr, seen)
	default:
		return "false"
	}
}

func (p *Printer) guardDef(id idl.TypeDefID, expr string, seen map[idl.TypeDefID]bool) string {
	if seen[id] {
		return "true"
	}
	next := make(map[idl.TypeDefID]bool, len(seen)+1)
	for k := range seen {
		next[k] = true
	}
	next[id] = true

	td := p.iface.TypeDefs[id]
	isObject := "typeof " + expr + " === 'object' && " + expr + " !== null"

	switch k := td.Kind.(type) {
	case *idl.Alias:
		return p.guard(k.Type, expr, next)
	case *idl.Record:
		conds := []string{isObject}
		for _, f := range k.Fields {
			conds = append(conds, "'"+casing.LowerCamel(f.Name)+"' in "+expr)
		}
		return strings.Join(conds, " && ")
	case *idl.Variant:
		return isObject + " && typeof " + expr + ".tag === 'number'"
	case *idl.Enum, *idl.Flags:
		return "typeof " + expr + " === 'number'"
	case *idl.Union:
		alts := make([]string, len(k.Cases))
		for i, c := range k.Cases {
			alts[i] = "(" + p.guard(c.Type, expr, next) + ")"
		}
		return strings.Join(alts, " || ")
	case *idl.Resource:
		return expr + " instanceof " + casing.UpperCamel(td.Name)
	default:
		return "false"
	}
}
