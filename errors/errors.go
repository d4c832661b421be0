package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig   Phase = "config"   // configuration loading and validation
	PhaseLoad     Phase = "load"     // reading WIT JSON documents
	PhaseResolve  Phase = "resolve"  // WIT model to interface conversion
	PhaseGenerate Phase = "generate" // source emission
	PhaseFormat   Phase = "format"   // external formatter
	PhaseWrite    Phase = "write"    // output files
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindInvalidData  Kind = "invalid_data"
	KindUnsupported  Kind = "unsupported"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindProcess      Kind = "process"
	KindIO           Kind = "io"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	WitType string
	Tool    string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.WitType != "" || e.Tool != "" {
		b.WriteString(": ")
		if e.WitType != "" && e.Tool != "" {
			b.WriteString("WIT type ")
			b.WriteString(e.WitType)
			b.WriteString(", tool ")
			b.WriteString(e.Tool)
		} else if e.WitType != "" {
			b.WriteString("WIT type ")
			b.WriteString(e.WitType)
		} else {
			b.WriteString("tool ")
			b.WriteString(e.Tool)
		}
	}

	if e.Detail != "" {
		if e.WitType != "" || e.Tool != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the item path, e.g. interface, type and field names
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// WitType sets the WIT type name
func (b *Builder) WitType(t string) *Builder {
	b.err.WitType = t
	return b
}

// Tool sets the external tool name
func (b *Builder) Tool(name string) *Builder {
	b.err.Tool = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unsupported creates an unsupported construct error
func Unsupported(phase Phase, path []string, witType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupported,
		Path:    path,
		WitType: witType,
		Detail:  "no TypeScript mapping",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Value:  name,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Conflict creates an error for mutually exclusive settings
func Conflict(phase Phase, a, b string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindConflict,
		Detail: fmt.Sprintf("%s cannot be used with %s", a, b),
	}
}

// Process creates an external process failure error
func Process(tool string, detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseFormat,
		Kind:   KindProcess,
		Tool:   tool,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a document loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// WriteFailed creates an output write error
func WriteFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindIO,
		Detail: fmt.Sprintf("write %s", path),
		Cause:  cause,
		Value:  path,
	}
}
