package idl

// Type is a reference to a value type: a primitive, an anonymous
// composite, or a named definition by ID.
type Type interface {
	isType()
}

// Primitive types
type (
	Bool    struct{}
	U8      struct{}
	U16     struct{}
	U32     struct{}
	U64     struct{}
	U128    struct{}
	S8      struct{}
	S16     struct{}
	S32     struct{}
	S64     struct{}
	S128    struct{}
	Float32 struct{}
	Float64 struct{}
	Char    struct{}
	String  struct{}
)

func (Bool) isType()    {}
func (U8) isType()      {}
func (U16) isType()     {}
func (U32) isType()     {}
func (U64) isType()     {}
func (U128) isType()    {}
func (S8) isType()      {}
func (S16) isType()     {}
func (S32) isType()     {}
func (S64) isType()     {}
func (S128) isType()    {}
func (Float32) isType() {}
func (Float64) isType() {}
func (Char) isType()    {}
func (String) isType()  {}

// Tuple is a fixed-length heterogeneous sequence
type Tuple struct {
	Types []Type
}

func (Tuple) isType() {}

// List is a variable-length homogeneous sequence
type List struct {
	Elem Type
}

func (List) isType() {}

// Option is a value that may be absent
type Option struct {
	Type Type
}

func (Option) isType() {}

// Result is a success-or-failure value. Either side may be nil.
type Result struct {
	OK  Type
	Err Type
}

func (Result) isType() {}

// TypeDefID indexes Interface.TypeDefs
type TypeDefID uint32

// ID references a named type definition
type ID TypeDefID

func (ID) isType() {}

// TypeName renders a type in WIT syntax for diagnostics.
func TypeName(iface *Interface, t Type) string {
	switch t := t.(type) {
	case Bool:
		return "bool"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case S8:
		return "s8"
	case S16:
		return "s16"
	case S32:
		return "s32"
	case S64:
		return "s64"
	case S128:
		return "s128"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Char:
		return "char"
	case String:
		return "string"
	case Tuple:
		s := "tuple<"
		for i, e := range t.Types {
			if i > 0 {
				s += ", "
			}
			s += TypeName(iface, e)
		}
		return s + ">"
	case List:
		return "list<" + TypeName(iface, t.Elem) + ">"
	case Option:
		return "option<" + TypeName(iface, t.Type) + ">"
	case Result:
		switch {
		case t.OK == nil && t.Err == nil:
			return "result"
		case t.Err == nil:
			return "result<" + TypeName(iface, t.OK) + ">"
		case t.OK == nil:
			return "result<_, " + TypeName(iface, t.Err) + ">"
		default:
			return "result<" + TypeName(iface, t.OK) + ", " + TypeName(iface, t.Err) + ">"
		}
	case ID:
		if iface != nil && int(t) < len(iface.TypeDefs) {
			return iface.TypeDefs[t].Name
		}
		return "<unresolved>"
	default:
		return "<unknown>"
	}
}
