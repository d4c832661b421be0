package idl

// Interface is a resolved unit of type definitions and functions
type Interface struct {
	Name      string
	Docs      string
	TypeDefs  []*TypeDef
	Functions []*Function
}

// AddTypeDef appends a definition and returns a reference to it.
func (i *Interface) AddTypeDef(name, docs string, kind TypeDefKind) ID {
	id := TypeDefID(len(i.TypeDefs))
	i.TypeDefs = append(i.TypeDefs, &TypeDef{ID: id, Name: name, Docs: docs, Kind: kind})
	return ID(id)
}

// TypeDef returns the definition for id, or nil when id is out of range.
func (i *Interface) TypeDef(id TypeDefID) *TypeDef {
	if int(id) >= len(i.TypeDefs) {
		return nil
	}
	return i.TypeDefs[id]
}

// Resources returns the resource definitions in declaration order.
func (i *Interface) Resources() []*TypeDef {
	var out []*TypeDef
	for _, td := range i.TypeDefs {
		if _, ok := td.Kind.(*Resource); ok {
			out = append(out, td)
		}
	}
	return out
}

// Methods returns every resource method in declaration order.
func (i *Interface) Methods() []*Function {
	var out []*Function
	for _, td := range i.Resources() {
		out = append(out, td.Kind.(*Resource).Methods...)
	}
	return out
}
