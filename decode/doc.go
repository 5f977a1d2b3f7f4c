// Package decode turns a raw SPIR-V binary into a module.Module: a word
// reader recovers the module's byte order and word stream, an
// instruction scanner splits that stream into individual instructions,
// and a section decoder walks those instructions once, in the fixed
// order SPIR-V binaries always use, filling in the module's id-indexed
// tables and entry-point records.
//
// Parse is the package's main entry point. Besides it, the package
// exports ScanRaw (header and instruction index without section
// decoding, used by the disassembler), Size (the type sizer, used by
// package reflect), and the error and logger helpers. The rest
// (wordReader, the section-by-section decoderState methods, the member
// fixup pass) is unexported machinery.
package decode
