package casing

var tsReserved = map[string]struct{}{
	"arguments": {}, "await": {}, "break": {}, "case": {}, "catch": {},
	"class": {}, "const": {}, "continue": {}, "debugger": {}, "default": {},
	"delete": {}, "do": {}, "else": {}, "enum": {}, "eval": {},
	"export": {}, "extends": {}, "false": {}, "finally": {}, "for": {},
	"function": {}, "if": {}, "implements": {}, "import": {}, "in": {},
	"instanceof": {}, "interface": {}, "let": {}, "new": {}, "null": {},
	"package": {}, "private": {}, "protected": {}, "public": {}, "return": {},
	"static": {}, "super": {}, "switch": {}, "this": {}, "throw": {},
	"true": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {},
}

// TSIdent converts to lowerCamelCase and appends an underscore when the
// result is a TypeScript reserved word, so it is usable as a binding name.
func TSIdent(s string) string {
	id := LowerCamel(s)
	if _, ok := tsReserved[id]; ok {
		return id + "_"
	}
	return id
}

// stubLocals are names the generated stubs declare in the same scope as
// their parameters.
var stubLocals = map[string]struct{}{
	"out": {},
}

// TSParam is TSIdent for parameter names; it also escapes the locals a
// generated stub declares alongside its parameters.
func TSParam(s string) string {
	id := TSIdent(s)
	if _, ok := stubLocals[id]; ok {
		return id + "_"
	}
	return id
}
