// Package bindgen generates client bindings for WIT interfaces.
//
// Generated code lets ordinary code call functions and resource methods of an
// interface as if they were local, while arguments and results are marshaled
// over an asynchronous request/response transport.
//
// # Architecture Overview
//
//	bindgen/            Root package with the Generator strategy contract
//	├── idl/            Resolved interface model (type definitions, functions)
//	├── typeinfo/       Parameter/result usage analysis per type definition
//	├── witimport/      WIT JSON (wasm-tools) to idl conversion
//	├── casing/         Identifier case conversion
//	├── jscodec/        JavaScript wire codec emission
//	├── gen/typescript/ TypeScript guest backend
//	├── postprocess/    External formatter invocation
//	├── config/         bindgen.toml loading and validation
//	├── output/         Artifact writing
//	├── errors/         Structured error types
//	└── cmd/bindgen/    Command line interface
//
// # Quick Start
//
//	ifaces, err := witimport.Load("api.wit.json", witimport.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b := typescript.Builder{Formatter: postprocess.Prettier}
//	artifact, err := bindgen.Generate(ctx, b, ifaces[0])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(artifact.Path) // "api.ts"
//
// # Wire Contract
//
// Free functions are invoked with a POST to
// ipc://localhost/<interface>/<function>, resource methods with a POST to
// ipc://localhost/<interface>::resource::<resource>/<method>. The request
// body is the encoded argument list; the response body is the encoded result.
//
// # Thread Safety
//
// A Generator is used by one goroutine. Independent generators may run
// concurrently; they share no mutable state.
package bindgen
