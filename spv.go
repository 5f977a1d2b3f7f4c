package spv

import (
	"os"

	"github.com/gospv/spv/decode"
	"github.com/gospv/spv/module"
	"github.com/gospv/spv/reflect"
)

// Options configures a decode. Strict turns decoration-group opcodes,
// silently skipped by default, into a fatal UnsupportedFeature error.
type Options = decode.Options

// DefaultOptions returns the permissive default: decoration groups are
// silently skipped rather than rejected.
func DefaultOptions() Options {
	return Options{Strict: false}
}

// ParseError is returned by Parse, ParseFile, and Reflect. It carries
// one of five kinds (Truncated, BadMagic, StructuralError,
// UnsupportedFeature, IoFailure) alongside a message and, where known,
// a byte offset into the input.
type ParseError = decode.ParseError

// Re-exported error kinds, for callers matching on err.Kind.
const (
	Truncated          = decode.Truncated
	BadMagic           = decode.BadMagic
	StructuralError    = decode.StructuralError
	UnsupportedFeature = decode.UnsupportedFeature
	IoFailure          = decode.IoFailure
)

// Module is a fully decoded SPIR-V binary. See package module for its
// shape.
type Module = module.Module

// PipelineInfo is the complete pipeline-layout reflection result for a
// module. See package reflect for its shape.
type PipelineInfo = reflect.PipelineInfo

// Parse decodes a raw SPIR-V binary held in memory.
func Parse(data []byte, opts Options) (*Module, *ParseError) {
	return decode.Parse(data, opts)
}

// ParseFile reads path and decodes it as a SPIR-V binary. A read
// failure is reported as an IoFailure ParseError, distinct from the
// decoding failures Parse itself can return.
func ParseFile(path string, opts Options) (*Module, *ParseError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, decode.NewError(decode.IoFailure, "reading %s: %v", path, err)
	}
	return Parse(data, opts)
}

// Reflect scans mod's entry points and produces descriptor-set-layout
// bindings and push-constant ranges for the whole pipeline.
func Reflect(mod *Module) (*PipelineInfo, *ParseError) {
	return reflect.Reflect(mod)
}
