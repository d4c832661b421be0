package typescript

import (
	"fmt"
	"strings"

	"github.com/wippyai/bindgen/casing"
	"github.com/wippyai/bindgen/idl"
	"github.com/wippyai/bindgen/jscodec"
)

func (t *TypeScript) printTypeDef(id idl.TypeDefID) string {
	td := t.iface.TypeDefs[id]
	name := typeName(td)

	switch k := td.Kind.(type) {
	case *idl.Alias:
		return t.printAlias(td.Docs, name, k)
	case *idl.Record:
		return t.printRecord(td.Docs, name, k)
	case *idl.Flags:
		return t.printFlags(td.Docs, name, k)
	case *idl.Variant:
		return t.printVariant(td.Docs, name, k)
	case *idl.Enum:
		return t.printEnum(td.Docs, name, k)
	case *idl.Union:
		return t.printUnion(td.Docs, name, k)
	case *idl.Resource:
		return t.printResource(td.Docs, td.Name, k)
	default:
		panic(fmt.Sprintf("typescript: unexpected kind %T for %s", td.Kind, td.Name))
	}
}

func (t *TypeScript) printAlias(docs, name string, a *idl.Alias) string {
	return withDocs(docs, fmt.Sprintf("export type %s = %s;\n", name, t.printType(a.Type)))
}

func (t *TypeScript) printRecord(docs, name string, r *idl.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", name)
	for _, f := range r.Fields {
		field := withDocs(f.Docs, fmt.Sprintf("%s: %s,", casing.LowerCamel(f.Name), t.printType(f.Type)))
		b.WriteString(jscodec.Indent(field, 1))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return withDocs(docs, b.String())
}

func (t *TypeScript) printFlags(docs, name string, f *idl.Flags) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export enum %s {\n", name)
	for i, field := range f.Fields {
		member := withDocs(field.Docs, fmt.Sprintf("%s = %d,", casing.UpperCamel(field.Name), flagValue(i)))
		b.WriteString(jscodec.Indent(member, 1))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return withDocs(docs, b.String())
}

// flagValue is the bit assigned to the flags field at position i. Bit 0 is
// never used; the host side decodes with the same convention. Callers keep i
// below idl.MaxFlagsFields.
func flagValue(i int) uint64 {
	return 2 << uint(i)
}

func (t *TypeScript) printVariant(docs, name string, v *idl.Variant) string {
	var b strings.Builder
	alts := make([]string, len(v.Cases))

	for i, c := range v.Cases {
		caseName := name + casing.UpperCamel(c.Name)
		alts[i] = caseName

		value := ""
		if c.Type != nil {
			value = ", value: " + t.printType(c.Type)
		}
		b.WriteString(withDocs(c.Docs, fmt.Sprintf("export interface %s { tag: %d%s }\n", caseName, i, value)))
		b.WriteString("\n")
	}

	sum := "never"
	if len(alts) > 0 {
		sum = strings.Join(alts, " | ")
	}
	b.WriteString(withDocs(docs, fmt.Sprintf("export type %s = %s;\n", name, sum)))
	return b.String()
}

func (t *TypeScript) printEnum(docs, name string, e *idl.Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export enum %s {\n", name)
	for _, c := range e.Cases {
		b.WriteString(jscodec.Indent(withDocs(c.Docs, casing.UpperCamel(c.Name)+","), 1))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return withDocs(docs, b.String())
}

func (t *TypeScript) printUnion(docs, name string, u *idl.Union) string {
	documented := false
	types := make([]string, len(u.Cases))
	for i, c := range u.Cases {
		types[i] = t.printType(c.Type)
		documented = documented || c.Docs != ""
	}

	if len(types) == 0 {
		return withDocs(docs, fmt.Sprintf("export type %s = never;\n", name))
	}
	if !documented {
		return withDocs(docs, fmt.Sprintf("export type %s = %s;\n", name, strings.Join(types, " | ")))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export type %s =\n", name)
	for i, c := range u.Cases {
		b.WriteString(jscodec.Indent(withDocs(c.Docs, "| "+types[i]), 1))
		b.WriteString("\n")
	}
	s := strings.TrimSuffix(b.String(), "\n") + ";\n"
	return withDocs(docs, s)
}

func (t *TypeScript) printResource(docs, ident string, r *idl.Resource) string {
	name := casing.UpperCamel(ident)

	var b strings.Builder
	fmt.Fprintf(&b, "export class %s {\n", name)
	b.WriteString("    #id: number;\n\n")
	b.WriteString("    constructor(id: number) {\n        this.#id = id\n    }\n\n")
	fmt.Fprintf(&b, "    static handleOf(res: %s): number {\n        return res.#id\n    }\n", name)

	for _, m := range r.Methods {
		b.WriteString("\n")
		b.WriteString(jscodec.Indent(t.printMethod(ident, m), 1))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return withDocs(docs, b.String())
}
