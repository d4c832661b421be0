package idl

// Param is a named function parameter
type Param struct {
	Type Type
	Name string
}

// Function is a callable free function or resource method
type Function struct {
	Result *FunctionResult
	Name   string
	Docs   string
	Params []Param
}

// FunctionResult holds either one anonymous type or a list of named types.
type FunctionResult struct {
	Anon  Type
	Named []Param
}

// AnonResult returns a result carrying a single unnamed type.
func AnonResult(t Type) *FunctionResult {
	return &FunctionResult{Anon: t}
}

// NamedResults returns a result carrying zero or more named types.
func NamedResults(params ...Param) *FunctionResult {
	return &FunctionResult{Named: params}
}

// Len returns the number of result types.
func (r *FunctionResult) Len() int {
	if r == nil {
		return 0
	}
	if r.Anon != nil {
		return 1
	}
	return len(r.Named)
}

// Types returns the result types in declaration order.
func (r *FunctionResult) Types() []Type {
	if r == nil {
		return nil
	}
	if r.Anon != nil {
		return []Type{r.Anon}
	}
	types := make([]Type, len(r.Named))
	for i, p := range r.Named {
		types[i] = p.Type
	}
	return types
}

// Throws reports whether the function may report a failure outcome, i.e.
// its result is a single anonymous result<..> type.
func (f *Function) Throws() bool {
	if f.Result == nil || f.Result.Anon == nil {
		return false
	}
	_, ok := f.Result.Anon.(Result)
	return ok
}
