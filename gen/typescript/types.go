package typescript

import (
	"fmt"
	"strings"

	"github.com/wippyai/bindgen/casing"
	"github.com/wippyai/bindgen/idl"
	"github.com/wippyai/bindgen/jscodec"
)

// printType maps a type reference to a TypeScript type expression.
func (t *TypeScript) printType(ty idl.Type) string {
	switch ty := ty.(type) {
	case idl.Bool:
		return "boolean"
	case idl.U8, idl.U16, idl.U32, idl.S8, idl.S16, idl.S32, idl.Float32, idl.Float64:
		return "number"
	case idl.U64, idl.S64, idl.U128, idl.S128:
		return "bigint"
	case idl.Char, idl.String:
		return "string"
	case idl.Tuple:
		types := make([]string, len(ty.Types))
		for i, e := range ty.Types {
			types[i] = t.printType(e)
		}
		return "[" + strings.Join(types, ", ") + "]"
	case idl.List:
		if arr, ok := jscodec.ArrayType(t.iface, ty.Elem); ok {
			return arr
		}
		elem := t.printType(ty.Elem)
		if needsParens(ty.Elem, elem) {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	case idl.Option:
		return t.printType(ty.Type) + " | null"
	case idl.Result:
		return fmt.Sprintf("Result<%s, %s>", t.printOptionalType(ty.OK), t.printOptionalType(ty.Err))
	case idl.ID:
		return typeName(t.iface.TypeDefs[ty])
	default:
		panic(fmt.Sprintf("typescript: unexpected type %T", ty))
	}
}

func (t *TypeScript) printOptionalType(ty idl.Type) string {
	if ty == nil {
		return "null"
	}
	return t.printType(ty)
}

// needsParens reports whether an array element expression is a union that
// must be parenthesized before appending [].
func needsParens(elem idl.Type, printed string) bool {
	_, isOption := elem.(idl.Option)
	return isOption && strings.Contains(printed, "|")
}

// typeName is the exported TypeScript name of a definition.
func typeName(td *idl.TypeDef) string {
	return casing.UpperCamel(td.Name)
}
