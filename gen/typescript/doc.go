// Package typescript generates TypeScript guest bindings for an interface.
//
// The output is one .ts file holding, in order: a // @ts-nocheck marker, the
// generic Result<T, E> type when any function can fail, the codec helpers the
// file references, decoders for result-reachable definitions, encoders for
// parameter-reachable definitions, every type declaration and every function
// stub. Stubs encode their arguments, POST them to an ipc://localhost address
// and decode the response:
//
//	b := typescript.Builder{Formatter: postprocess.None}
//	artifact, err := b.Build(iface).ToFile(ctx)
package typescript
