// Package errors provides structured error types for the binding generator.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: item path, WIT type name, external tool and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindUnsupported).
//		Path("streams", "input-stream", "read").
//		WitType("stream<u8>").
//		Detail("streams have no TypeScript mapping").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseLoad, "interface", "wasi:http/types")
//	err := errors.Conflict(errors.PhaseConfig, "--prettier", "--romefmt")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
