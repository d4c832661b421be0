package typescript

import (
	"fmt"
	"strings"

	"github.com/wippyai/bindgen/casing"
	"github.com/wippyai/bindgen/idl"
	"github.com/wippyai/bindgen/jscodec"
)

const binaryContentType = "application/octet-stream"

// functionURL is the request target of a free function.
func functionURL(iface, fn string) string {
	return fmt.Sprintf("ipc://localhost/%s/%s", casing.Snake(iface), casing.Snake(fn))
}

// methodURL is the request target of a resource method.
func methodURL(iface, resource, method string) string {
	return fmt.Sprintf("ipc://localhost/%s::resource::%s/%s",
		casing.Snake(iface), casing.Snake(resource), casing.LowerCamel(method))
}

func (t *TypeScript) printFunction(f *idl.Function) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export async function %s (%s) : %s {\n",
		casing.TSIdent(f.Name), t.printParams(f.Params), t.printResult(f.Result))
	b.WriteString(jscodec.Indent(t.printCallBody(f, nil, functionURL(t.iface.Name, f.Name), false), 1))
	b.WriteString("\n}\n")
	return withDocs(f.Docs, b.String())
}

func (t *TypeScript) printMethod(resource string, f *idl.Function) string {
	handle := t.codec.Serialize(idl.U32{}, "this.#id")

	var b strings.Builder
	fmt.Fprintf(&b, "async %s (%s) : %s {\n",
		casing.LowerCamel(f.Name), t.printParams(f.Params), t.printResult(f.Result))
	b.WriteString(jscodec.Indent(t.printCallBody(f, []string{handle}, methodURL(t.iface.Name, resource, f.Name), true), 1))
	b.WriteString("\n}")
	return withDocs(f.Docs, b.String())
}

// printCallBody encodes prefix statements then every parameter, issues the
// request and decodes the response when the function declares results.
func (t *TypeScript) printCallBody(f *idl.Function, prefix []string, url string, binary bool) string {
	stmts := append([]string{"const out = []"}, prefix...)
	for _, p := range f.Params {
		stmts = append(stmts, t.codec.Serialize(p.Type, casing.TSParam(p.Name)))
	}

	init := `{ method: "POST", body: Uint8Array.from(out) }`
	if binary {
		init = fmt.Sprintf(`{ method: "POST", body: Uint8Array.from(out), headers: { 'Content-Type': '%s' } }`, binaryContentType)
	}
	request := fmt.Sprintf("fetch('%s', %s)", url, init)

	types := f.Result.Types()
	if len(types) == 0 {
		return strings.Join(stmts, "\n") + "\n\nawait " + request
	}

	var decode string
	if len(types) == 1 {
		decode = t.codec.Deserialize(types[0])
	} else {
		elems := make([]string, len(types))
		for i, ty := range types {
			elems[i] = t.codec.Deserialize(ty)
		}
		decode = "[" + strings.Join(elems, ", ") + "]"
	}

	var b strings.Builder
	b.WriteString(strings.Join(stmts, "\n"))
	b.WriteString("\n\nreturn " + request + "\n")
	b.WriteString("    .then(r => r.arrayBuffer())\n")
	b.WriteString("    .then(bytes => {\n")
	fmt.Fprintf(&b, "        const de = new %s(new Uint8Array(bytes))\n\n", t.codec.Deserializer())
	fmt.Fprintf(&b, "        return %s\n", decode)
	fmt.Fprintf(&b, "    }) as %s", t.printResult(f.Result))
	return b.String()
}

func (t *TypeScript) printParams(params []idl.Param) string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = casing.TSParam(p.Name) + ": " + t.printType(p.Type)
	}
	return strings.Join(out, ", ")
}

// printResult is the promise type a stub resolves with: void for no
// results, the value for one, a tuple for several.
func (t *TypeScript) printResult(r *idl.FunctionResult) string {
	types := r.Types()
	switch len(types) {
	case 0:
		return "Promise<void>"
	case 1:
		return "Promise<" + t.printType(types[0]) + ">"
	default:
		out := make([]string, len(types))
		for i, ty := range types {
			out[i] = t.printType(ty)
		}
		return "Promise<[" + strings.Join(out, ", ") + "]>"
	}
}
