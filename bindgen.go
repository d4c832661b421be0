package bindgen

import (
	"context"

	"github.com/wippyai/bindgen/idl"
)

// Artifact is one generated output unit. Path is relative to the output
// directory chosen by the caller, who performs the write.
type Artifact struct {
	Path     string
	Contents string
}

// Generator produces the artifact for the interface it was built with.
type Generator interface {
	ToFile(ctx context.Context) (Artifact, error)
}

// GeneratorBuilder constructs a target-specific Generator. The interface is
// passed by read-only reference and must not be mutated.
type GeneratorBuilder interface {
	Build(iface *idl.Interface) Generator
}

// Generate builds a generator for iface and renders its artifact.
func Generate(ctx context.Context, b GeneratorBuilder, iface *idl.Interface) (Artifact, error) {
	return b.Build(iface).ToFile(ctx)
}
