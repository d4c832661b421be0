package witimport

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/bindgen/errors"
	"github.com/wippyai/bindgen/idl"
)

type converter struct {
	wi    *wit.Interface
	iface *idl.Interface
	ids   map[*wit.TypeDef]idl.ID
}

func convertInterface(res *wit.Resolve, wi *wit.Interface, opts Options) (*idl.Interface, error) {
	c := &converter{
		wi: wi,
		iface: &idl.Interface{
			Name: *wi.Name,
			Docs: wi.Docs.Contents,
		},
		ids: make(map[*wit.TypeDef]idl.ID),
	}

	for _, td := range res.TypeDefs {
		if td.Name == nil || !c.owns(td) {
			continue
		}
		if _, err := c.define(td); err != nil {
			return nil, err
		}
	}

	for _, f := range wi.Functions.All() {
		if err := c.function(f, opts); err != nil {
			return nil, err
		}
	}
	return c.iface, nil
}

func (c *converter) owns(td *wit.TypeDef) bool {
	owner, ok := td.Owner.(*wit.Interface)
	return ok && owner == c.wi
}

// define registers a named WIT definition, converting its body after the
// reference exists so recursive definitions resolve to themselves.
func (c *converter) define(td *wit.TypeDef) (idl.ID, error) {
	if id, ok := c.ids[td]; ok {
		return id, nil
	}

	id := c.iface.AddTypeDef(*td.Name, td.Docs.Contents, nil)
	c.ids[td] = id
	if !c.owns(td) {
		Logger().Debug("imported foreign type",
			zap.String("interface", c.iface.Name),
			zap.String("type", *td.Name))
	}

	kind, err := c.kind(td)
	if err != nil {
		return 0, err
	}
	c.iface.TypeDefs[id].Kind = kind
	return id, nil
}

func (c *converter) kind(td *wit.TypeDef) (idl.TypeDefKind, error) {
	path := []string{c.iface.Name, *td.Name}

	switch k := td.Kind.(type) {
	case *wit.Record:
		fields := make([]idl.Field, len(k.Fields))
		for i, f := range k.Fields {
			ty, err := c.typ(f.Type, append(path, f.Name))
			if err != nil {
				return nil, err
			}
			fields[i] = idl.Field{Name: f.Name, Type: ty, Docs: f.Docs.Contents}
		}
		return &idl.Record{Fields: fields}, nil
	case *wit.Flags:
		fields := make([]idl.FlagsField, len(k.Flags))
		for i, f := range k.Flags {
			fields[i] = idl.FlagsField{Name: f.Name, Docs: f.Docs.Contents}
		}
		if len(fields) > idl.MaxFlagsFields {
			return nil, errors.New(errors.PhaseResolve, errors.KindUnsupported).
				Path(path...).
				WitType("flags").
				Detail("%d fields exceed the limit of %d", len(fields), idl.MaxFlagsFields).
				Build()
		}
		return &idl.Flags{Fields: fields}, nil
	case *wit.Variant:
		cases := make([]idl.VariantCase, len(k.Cases))
		for i, vc := range k.Cases {
			var ty idl.Type
			if vc.Type != nil {
				var err error
				if ty, err = c.typ(vc.Type, append(path, vc.Name)); err != nil {
					return nil, err
				}
			}
			cases[i] = idl.VariantCase{Name: vc.Name, Type: ty, Docs: vc.Docs.Contents}
		}
		return &idl.Variant{Cases: cases}, nil
	case *wit.Enum:
		cases := make([]idl.EnumCase, len(k.Cases))
		for i, ec := range k.Cases {
			cases[i] = idl.EnumCase{Name: ec.Name, Docs: ec.Docs.Contents}
		}
		return &idl.Enum{Cases: cases}, nil
	case *wit.Resource:
		return &idl.Resource{}, nil
	default:
		ty, err := c.anon(td.Kind, path)
		if err != nil {
			return nil, err
		}
		return &idl.Alias{Type: ty}, nil
	}
}

// typ converts a type reference. Named definitions become IDs.
func (c *converter) typ(t wit.Type, path []string) (idl.Type, error) {
	switch t := t.(type) {
	case wit.Bool:
		return idl.Bool{}, nil
	case wit.U8:
		return idl.U8{}, nil
	case wit.U16:
		return idl.U16{}, nil
	case wit.U32:
		return idl.U32{}, nil
	case wit.U64:
		return idl.U64{}, nil
	case wit.S8:
		return idl.S8{}, nil
	case wit.S16:
		return idl.S16{}, nil
	case wit.S32:
		return idl.S32{}, nil
	case wit.S64:
		return idl.S64{}, nil
	case wit.F32:
		return idl.Float32{}, nil
	case wit.F64:
		return idl.Float64{}, nil
	case wit.Char:
		return idl.Char{}, nil
	case wit.String:
		return idl.String{}, nil
	case *wit.TypeDef:
		if t.Name != nil {
			return c.define(t)
		}
		return c.anon(t.Kind, path)
	default:
		return nil, errors.Unsupported(errors.PhaseResolve, path, fmt.Sprintf("%T", t))
	}
}

// anon converts the body of an anonymous definition, or of a named one that
// is only a synonym for another type.
func (c *converter) anon(k wit.TypeDefKind, path []string) (idl.Type, error) {
	switch k := k.(type) {
	case *wit.List:
		elem, err := c.typ(k.Type, path)
		if err != nil {
			return nil, err
		}
		return idl.List{Elem: elem}, nil
	case *wit.Option:
		inner, err := c.typ(k.Type, path)
		if err != nil {
			return nil, err
		}
		return idl.Option{Type: inner}, nil
	case *wit.Result:
		var r idl.Result
		var err error
		if k.OK != nil {
			if r.OK, err = c.typ(k.OK, append(path, "ok")); err != nil {
				return nil, err
			}
		}
		if k.Err != nil {
			if r.Err, err = c.typ(k.Err, append(path, "err")); err != nil {
				return nil, err
			}
		}
		return r, nil
	case *wit.Tuple:
		types := make([]idl.Type, len(k.Types))
		for i, e := range k.Types {
			ty, err := c.typ(e, append(path, fmt.Sprint(i)))
			if err != nil {
				return nil, err
			}
			types[i] = ty
		}
		return idl.Tuple{Types: types}, nil
	case *wit.Own:
		return c.handle(k.Type, path)
	case *wit.Borrow:
		return c.handle(k.Type, path)
	case *wit.Future:
		return nil, errors.Unsupported(errors.PhaseResolve, path, "future")
	case *wit.Stream:
		return nil, errors.Unsupported(errors.PhaseResolve, path, "stream")
	case wit.Type:
		return c.typ(k, path)
	default:
		return nil, errors.Unsupported(errors.PhaseResolve, path, fmt.Sprintf("%T", k))
	}
}

// handle resolves own<R> and borrow<R> to the resource definition itself.
func (c *converter) handle(td *wit.TypeDef, path []string) (idl.Type, error) {
	if td == nil {
		return nil, errors.InvalidData(errors.PhaseResolve, path, "handle without resource")
	}
	for td.Name == nil {
		inner, ok := td.Kind.(*wit.TypeDef)
		if !ok {
			return nil, errors.InvalidData(errors.PhaseResolve, path, "handle to anonymous type")
		}
		td = inner
	}
	return c.define(td)
}

func (c *converter) function(f *wit.Function, opts Options) error {
	switch k := f.Kind.(type) {
	case *wit.Freestanding:
		if opts.skipped(f.Name) {
			Logger().Debug("skipped function", zap.String("interface", c.iface.Name), zap.String("function", f.Name))
			return nil
		}
		fn, err := c.signature(f, f.Name, f.Params)
		if err != nil {
			return err
		}
		c.iface.Functions = append(c.iface.Functions, fn)
		return nil
	case *wit.Method:
		return c.method(f, k, opts)
	default:
		Logger().Debug("skipped unsupported function kind",
			zap.String("interface", c.iface.Name),
			zap.String("function", f.Name),
			zap.String("kind", fmt.Sprintf("%T", k)))
		return nil
	}
}

func (c *converter) method(f *wit.Function, m *wit.Method, opts Options) error {
	path := []string{c.iface.Name, f.Name}

	res, ok := m.Type.(*wit.TypeDef)
	if !ok {
		return errors.InvalidData(errors.PhaseResolve, path, "method receiver is not a resource")
	}
	id, err := c.define(res)
	if err != nil {
		return err
	}
	td := c.iface.TypeDefs[id]
	r, ok := td.Kind.(*idl.Resource)
	if !ok {
		return errors.InvalidData(errors.PhaseResolve, path, "method receiver is not a resource")
	}

	name := baseName(f.Name)
	if opts.skipped(td.Name + "." + name) {
		Logger().Debug("skipped method", zap.String("interface", c.iface.Name), zap.String("method", td.Name+"."+name))
		return nil
	}

	// The first parameter is the implicit self handle.
	params := f.Params
	if len(params) > 0 {
		params = params[1:]
	}
	fn, err := c.signature(f, name, params)
	if err != nil {
		return err
	}
	r.Methods = append(r.Methods, fn)
	return nil
}

func (c *converter) signature(f *wit.Function, name string, params []wit.Param) (*idl.Function, error) {
	path := []string{c.iface.Name, name}
	fn := &idl.Function{Name: name, Docs: f.Docs.Contents}

	for _, p := range params {
		ty, err := c.typ(p.Type, append(path, p.Name))
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, idl.Param{Name: p.Name, Type: ty})
	}

	switch {
	case len(f.Results) == 0:
	case len(f.Results) == 1 && f.Results[0].Name == "":
		ty, err := c.typ(f.Results[0].Type, append(path, "result"))
		if err != nil {
			return nil, err
		}
		fn.Result = idl.AnonResult(ty)
	default:
		named := make([]idl.Param, len(f.Results))
		for i, r := range f.Results {
			ty, err := c.typ(r.Type, append(path, r.Name))
			if err != nil {
				return nil, err
			}
			named[i] = idl.Param{Name: r.Name, Type: ty}
		}
		fn.Result = idl.NamedResults(named...)
	}
	return fn, nil
}

// baseName strips the "[method]resource." prefix from a method name.
func baseName(name string) string {
	if i := strings.Index(name, "]"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
