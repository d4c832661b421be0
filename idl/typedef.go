package idl

// TypeDefKind is the body of a named type definition
type TypeDefKind interface {
	isTypeDefKind()
}

// TypeDef is a named type definition
type TypeDef struct {
	Kind TypeDefKind
	Name string
	Docs string
	ID   TypeDefID
}

// Alias is a type synonym
type Alias struct {
	Type Type
}

func (*Alias) isTypeDefKind() {}

// Record is a product of named fields
type Record struct {
	Fields []Field
}

func (*Record) isTypeDefKind() {}

// Field is a record field
type Field struct {
	Type Type
	Name string
	Docs string
}

// MaxFlagsFields is the largest flags set whose bits stay exact in a
// JavaScript number. Field i occupies bit i+1.
const MaxFlagsFields = 52

// Flags is a set of named bits
type Flags struct {
	Fields []FlagsField
}

func (*Flags) isTypeDefKind() {}

// FlagsField is one named bit
type FlagsField struct {
	Name string
	Docs string
}

// Variant is a tagged sum; cases may carry a payload
type Variant struct {
	Cases []VariantCase
}

func (*Variant) isTypeDefKind() {}

// VariantCase is one variant alternative. Type is nil for payload-less cases.
type VariantCase struct {
	Type Type
	Name string
	Docs string
}

// Enum is a tagged sum without payloads
type Enum struct {
	Cases []EnumCase
}

func (*Enum) isTypeDefKind() {}

// EnumCase is one enum alternative
type EnumCase struct {
	Name string
	Docs string
}

// Union is an untagged sum of types
type Union struct {
	Cases []UnionCase
}

func (*Union) isTypeDefKind() {}

// UnionCase is one union alternative
type UnionCase struct {
	Type Type
	Docs string
}

// Resource is an opaque handle to state held by the serving side
type Resource struct {
	Methods []*Function
}

func (*Resource) isTypeDefKind() {}

// KindName returns the WIT keyword for a definition kind.
func KindName(k TypeDefKind) string {
	switch k.(type) {
	case *Alias:
		return "type"
	case *Record:
		return "record"
	case *Flags:
		return "flags"
	case *Variant:
		return "variant"
	case *Enum:
		return "enum"
	case *Union:
		return "union"
	case *Resource:
		return "resource"
	default:
		return "unknown"
	}
}
