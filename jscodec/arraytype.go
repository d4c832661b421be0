package jscodec

import "github.com/wippyai/bindgen/idl"

// ArrayType returns the typed array class used for list<t>, following
// alias chains. Only fixed-width numeric element types are eligible.
func ArrayType(iface *idl.Interface, t idl.Type) (string, bool) {
	seen := make(map[idl.TypeDefID]struct{})
	for {
		switch v := t.(type) {
		case idl.U8:
			return "Uint8Array", true
		case idl.S8:
			return "Int8Array", true
		case idl.U16:
			return "Uint16Array", true
		case idl.S16:
			return "Int16Array", true
		case idl.U32:
			return "Uint32Array", true
		case idl.S32:
			return "Int32Array", true
		case idl.U64:
			return "BigUint64Array", true
		case idl.S64:
			return "BigInt64Array", true
		case idl.Float32:
			return "Float32Array", true
		case idl.Float64:
			return "Float64Array", true
		case idl.ID:
			id := idl.TypeDefID(v)
			if _, ok := seen[id]; ok {
				return "", false
			}
			seen[id] = struct{}{}
			td := iface.TypeDef(id)
			if td == nil {
				return "", false
			}
			alias, ok := td.Kind.(*idl.Alias)
			if !ok {
				return "", false
			}
			t = alias.Type
		default:
			return "", false
		}
	}
}
