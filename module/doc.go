// Package module defines the in-memory representation of a decoded SPIR-V
// binary: an id-indexed table of instructions plus the side tables
// (entry points, types, variables, functions, decorations) that the
// decode package populates and the reflect package consumes.
//
// Nothing in this package reads or writes SPIR-V bytes; it only describes
// the shape of a module once decoded. See package decode for the binary
// reader and package reflect for pipeline-layout extraction.
package module
